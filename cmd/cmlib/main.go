package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/titusjan/cmlib/pkg/config"
	"github.com/titusjan/cmlib/pkg/logger"
)

func main() {
	cfg := config.Load("")

	rootCmd := &cobra.Command{
		Use:   "cmlib",
		Short: "Browse and inspect color map catalogs",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logger.Setup(cfg.LogLevel, cfg.LogFile)
		},
	}

	rootCmd.AddCommand(newCatalogsCmd(cfg))
	rootCmd.AddCommand(newListCmd(cfg))
	rootCmd.AddCommand(newShowCmd(cfg))
	rootCmd.AddCommand(newLegendCmd(cfg))
	rootCmd.AddCommand(newInfoCmd(cfg))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
