package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"certdash/internal/logging"
	"certdash/internal/store"
	"certdash/internal/ui"
)

// Set at build time via -ldflags
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagVerbose bool
	flagLogFile string
)

var rootCmd = &cobra.Command{
	Use:   "certdash",
	Short: "Tire model certification dashboard",
	Long: `certdash tracks certification and compliance obligations for tire
models: deadlines, task progress, regional standards coverage and the
catalog-to-ERP workflow, all in one terminal dashboard.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("certdash %s (commit %s, built %s)\n", version, commit, date)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log", "", "log file path (default: XDG state dir)")
	rootCmd.AddCommand(versionCmd)
}

func run() error {
	logger, err := logging.New(flagLogFile, flagVerbose)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer logger.Sync()

	st, err := store.Open()
	if err != nil {
		logger.Error("open store", zap.Error(err))
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	logger.Info("starting", zap.String("version", version))

	p := tea.NewProgram(ui.NewApp(st, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("program exited", zap.Error(err))
		return err
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
