package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/carline/internal/cli"
	"github.com/example/carline/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "carline",
		Short:   "carline - assign cars to production lines",
		Version: version.String(),
		Long: `carline renders a car form and a set of production lines. Each line
shows the most recent car submitted to it.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.ServeCmd())
	rootCmd.AddCommand(cli.RunCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
