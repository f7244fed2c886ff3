package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/nsharma/studyblocks/internal/allocate"
	"github.com/nsharma/studyblocks/internal/export"
	"github.com/nsharma/studyblocks/internal/store"
	"github.com/nsharma/studyblocks/internal/syllabus"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a saved plan as an ICS calendar",
	RunE: func(cmd *cobra.Command, args []string) error {
		runID, _ := cmd.Flags().GetString("run")
		outPath, _ := cmd.Flags().GetString("out")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		if runID == "" {
			latest, err := s.LatestRun(ctx)
			if err != nil {
				return err
			}
			if latest == nil {
				return fmt.Errorf("no saved runs; run `studyblocks plan` first")
			}
			runID = latest.ID
		}

		records, err := s.BlocksForRun(ctx, runID)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			return fmt.Errorf("run %s has no blocks", runID)
		}

		blocks, err := blocksFromRecords(records)
		if err != nil {
			return err
		}

		fileCfg, err := loadFileConfig(cmd)
		if err != nil {
			return err
		}
		name, _ := cmd.Flags().GetString("name")
		if name == "" {
			name = fileCfg.Export.CalendarName
		}

		ics := export.ICS(blocks, name, time.Now().UTC())
		if outPath == "" {
			fmt.Print(ics)
			return nil
		}
		if err := os.WriteFile(outPath, []byte(ics), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", outPath, err)
		}
		fmt.Printf("Wrote %d events to %s\n", len(blocks), outPath)
		return nil
	},
}

func init() {
	exportCmd.Flags().String("run", "", "Run ID to export (default: most recent)")
	exportCmd.Flags().StringP("out", "o", "", "Output file (default: stdout)")
	exportCmd.Flags().String("name", "", "Calendar name (default: from config, else \"Study Blocks\")")
}

// blocksFromRecords rebuilds schedulable blocks from stored rows.
func blocksFromRecords(records []store.BlockRecord) ([]allocate.Block, error) {
	blocks := make([]allocate.Block, 0, len(records))
	for _, r := range records {
		start, err := time.Parse(syllabus.DateLayout+" 15:04", r.Date+" "+r.Time)
		if err != nil {
			return nil, fmt.Errorf("stored block %d has bad slot %s %s: %w", r.ID, r.Date, r.Time, err)
		}
		blocks = append(blocks, allocate.Block{
			Title:  r.Title,
			Start:  start,
			Kind:   syllabus.Kind(r.Type),
			Course: r.Course,
		})
	}
	return blocks, nil
}
