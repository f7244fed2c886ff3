package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nsharma/studyblocks/internal/allocate"
	"github.com/nsharma/studyblocks/internal/estimate"
	"github.com/nsharma/studyblocks/internal/export"
	"github.com/nsharma/studyblocks/internal/syllabus"
	"github.com/nsharma/studyblocks/internal/ui"
)

var planCmd = &cobra.Command{
	Use:   "plan <file>",
	Short: "Build a study schedule from a syllabus",
	Long: "Reads course material and produces a prioritized sequence of one-hour\n" +
		"study blocks. A .json input is treated as an already-extracted document;\n" +
		"anything else is plain text and goes through LLM extraction first.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")
		save, _ := cmd.Flags().GetBool("save")

		doc, err := loadDocument(cmd, args[0])
		if err != nil {
			return err
		}

		items := doc.Items()
		blocks := allocate.Plan(*doc)

		if save {
			s, err := openStore(cmd)
			if err != nil {
				fmt.Fprintf(os.Stderr, "warning: not saving run: %v\n", err)
			} else {
				defer s.Close()
				runID, err := s.SaveRun(cmd.Context(), filepath.Base(args[0]), len(items), blocks)
				if err != nil {
					fmt.Fprintf(os.Stderr, "warning: save run: %v\n", err)
				} else if !asJSON {
					defer fmt.Printf("\nSaved as run %s\n", runID)
				}
			}
		}

		if asJSON {
			out, err := export.JSON(blocks)
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		}

		fmt.Println(ui.RenderItems(items, estimate.Hours))
		fmt.Println()
		fmt.Println(ui.RenderPlan(blocks))
		return nil
	},
}

func init() {
	planCmd.Flags().Bool("json", false, "Emit the block feed as JSON instead of the rendered plan")
	planCmd.Flags().Bool("save", true, "Persist the run to the local database")
}

// loadDocument reads a pre-extracted .json document directly; any other
// file is raw course text and goes through the LLM extractor.
func loadDocument(cmd *cobra.Command, path string) (*syllabus.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		var doc syllabus.Document
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		return &doc, nil
	}

	s, err := openStore(cmd)
	if err != nil {
		// Extraction still works without request logging.
		fmt.Fprintf(os.Stderr, "warning: LLM requests will not be recorded: %v\n", err)
		s = nil
	}
	if s != nil {
		defer s.Close()
	}

	provider, err := buildProvider(cmd.Context(), cmd, llmLogOrNil(s))
	if err != nil {
		return nil, fmt.Errorf("LLM provider not configured: %w", err)
	}

	extractor := syllabus.NewExtractor(provider, syllabus.DefaultConfig())
	doc, err := extractor.Extract(cmd.Context(), string(data))
	if err != nil {
		return nil, err
	}
	return doc, nil
}
