package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/carline/internal/config"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default carline config",
		Long:  `Write .carline/config.json with the default lines, address and backend.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("dir")
			force, _ := cmd.Flags().GetBool("force")
			out := cmd.OutOrStdout()

			path := config.Path(dir)
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}

			if err := config.SaveConfig(dir, config.Default()); err != nil {
				return err
			}

			fmt.Fprintf(out, "✓ Config written to %s\n", path)
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Next steps:")
			fmt.Fprintln(out, "  carline serve")
			fmt.Fprintln(out, "  carline run")
			return nil
		},
	}

	cmd.Flags().String("dir", ".", "Directory to write .carline/config.json into")
	cmd.Flags().Bool("force", false, "Overwrite an existing config")
	return cmd
}
