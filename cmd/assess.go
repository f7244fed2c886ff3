package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nsharma/studyblocks/internal/syllabus"
)

var assessCmd = &cobra.Command{
	Use:   "assess <file>",
	Short: "Rate a single assignment's difficulty from its handout",
	Long: "Estimates an assignment's 1-10 difficulty rating from the handout text.\n" +
		"Useful for filling in the difficulty field of a parsed document before\n" +
		"planning.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}

		s, err := openStore(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: LLM requests will not be recorded: %v\n", err)
			s = nil
		}
		if s != nil {
			defer s.Close()
		}

		provider, err := buildProvider(cmd.Context(), cmd, llmLogOrNil(s))
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		extractor := syllabus.NewExtractor(provider, syllabus.DefaultConfig())
		assessment, err := extractor.Assess(cmd.Context(), string(data))
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(assessment, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal assessment: %w", err)
		}
		fmt.Println(string(out))
		return nil
	},
}
