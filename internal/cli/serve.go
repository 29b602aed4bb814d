package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/example/carline/internal/adapters/web"
)

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the car form and lines over HTTP",
		Long: `Serve the page at the configured address.

Every browser shares one document: a car added in one tab appears on the
lines of every open tab.

Examples:
  carline serve
  carline serve --listen :9000 --backend sqlite
  carline serve --line assembly --line paint`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, logger, err := buildApp(cmd, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()

			lineIDs := make([]string, len(a.Lines))
			for i, l := range a.Lines {
				lineIDs[i] = l.LineID()
			}

			srv := web.NewServer(web.UI{
				Document: a.Document,
				Store:    a.Store,
				Form:     a.Form,
				LineIDs:  lineIDs,
			}, logger)

			ctx, stop := signal.NotifyContext(NewContext(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return srv.ListenAndServe(ctx, a.Config.Listen)
		},
	}

	addAppFlags(cmd)
	cmd.Flags().String("listen", "", "HTTP listen address (default from config)")
	return cmd
}
