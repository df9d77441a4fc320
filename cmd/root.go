package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/litigation-cli/internal/config"
)

var (
	cfg *config.Config

	dataPath  string
	dataSheet string
)

var rootCmd = &cobra.Command{
	Use:   "litigation-cli",
	Short: "Explore greenwashing litigation case data",
	Long:  "Loads a greenwashing litigation case table (CSV or XLSX), normalizes it, and serves overview, explorer, and case detail views from the terminal or over HTTP.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if dataPath != "" {
			c.Data.Path = dataPath
		}
		if dataSheet != "" {
			c.Data.Sheet = dataSheet
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "path to the case table (default from config)")
	rootCmd.PersistentFlags().StringVar(&dataSheet, "sheet", "", "XLSX sheet name (default first sheet)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
