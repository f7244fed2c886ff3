package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nsharma/studyblocks/internal/syllabus"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Extract assignments, tests, and the class schedule from course text",
	Long: "Runs LLM extraction over raw course material and prints the structured\n" +
		"document as JSON. The output can be edited by hand and fed back to\n" +
		"`studyblocks plan`.",
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
		doc, err := extractor.Extract(cmd.Context(), string(data))
		if err != nil {
			return err
		}

		out, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal document: %w", err)
		}
		fmt.Println(string(out))
		return nil
	},
}
