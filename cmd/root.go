package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nsharma/studyblocks/internal/config"
	"github.com/nsharma/studyblocks/internal/llm"
	"github.com/nsharma/studyblocks/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "studyblocks",
	Short: "Turn a course syllabus into a conflict-free study schedule",
	Long: "Studyblocks extracts assignments, tests, and the weekly class timetable\n" +
		"from course material and fits the required work into one-hour study\n" +
		"blocks around your classes.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides STUDYBLOCKS_DB)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default ~/.config/studyblocks/config.yaml)")

	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(assessCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadFileConfig reads the config file named by --config, or the
// default location when the flag is unset.
func loadFileConfig(cmd *cobra.Command) (config.Config, error) {
	if p, _ := cmd.Flags().GetString("config"); p != "" {
		return config.Load(p)
	}
	return config.LoadDefault()
}

// resolveDBPath picks the database path: --db flag, then STUDYBLOCKS_DB,
// then the config file, then the default XDG data path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if p := os.Getenv("STUDYBLOCKS_DB"); p != "" {
		return p, store.EnsureDir(p)
	}
	fileCfg, err := loadFileConfig(cmd)
	if err != nil {
		return "", err
	}
	if fileCfg.DB != "" {
		return fileCfg.DB, store.EnsureDir(fileCfg.DB)
	}
	return store.DefaultDBPath()
}

// openStore opens the run database. Callers that can work without
// persistence treat a nil store as "don't save".
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// llmLogOrNil converts a possibly-nil store into a RequestLog without
// producing a non-nil interface around a nil pointer.
func llmLogOrNil(s *store.Store) llm.RequestLog {
	if s == nil {
		return nil
	}
	return s
}

// buildProvider assembles the LLM provider: defaults, overlaid with the
// config file, overlaid with env, falling back to key discovery.
func buildProvider(ctx context.Context, cmd *cobra.Command, log llm.RequestLog) (llm.Provider, error) {
	fileCfg, err := loadFileConfig(cmd)
	if err != nil {
		return nil, err
	}

	cfg := llm.DefaultConfig()
	if fileCfg.LLM.Provider != "" {
		cfg.Provider = fileCfg.LLM.Provider
	}
	if fileCfg.LLM.Model != "" {
		switch cfg.Provider {
		case "openai":
			cfg.OpenAI.Model = fileCfg.LLM.Model
		case "anthropic":
			cfg.Anthropic.Model = fileCfg.LLM.Model
		case "gemini":
			cfg.Gemini.Model = fileCfg.LLM.Model
		}
	}
	cfg = llm.OverlayEnv(cfg)

	if err := cfg.Validate(); err != nil {
		discovered, ok := llm.Discover()
		if !ok {
			return nil, err
		}
		cfg = discovered
	}
	return llm.New(ctx, cfg, log)
}
