package cli

import (
	"bufio"
	gocontext "context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	clicar "github.com/example/carline/internal/adapters/cli"
	"github.com/example/carline/internal/component"
	"github.com/example/carline/internal/ctxutil"
	"github.com/example/carline/internal/wire"
)

const runHelp = `Commands:
  add <brand> <model> <doors> <line>   Submit a car through the form
  board                                Show the latest car on every line
  show                                 List every car
  html                                 Print the rendered page
  export json|yaml                     Print every car as JSON or YAML
  help                                 Show this help
  quit                                 Exit`

// RunCmd returns the run command
func RunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Drive the form and lines from the terminal",
		Long: `Read commands from stdin and apply them to the form, printing the
line board after every accepted car.

` + runHelp,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, _, err := buildApp(cmd, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()

			return runSession(ctxutil.WithOrigin(NewContext(), ctxutil.OriginTerminal), a, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	addAppFlags(cmd)
	return cmd
}

// session holds the state of one interactive run.
type session struct {
	app     *wire.App
	adapter *clicar.CarAdapter
	out     io.Writer
}

// runSession executes commands from in until EOF or quit.
func runSession(ctx gocontext.Context, a *wire.App, in io.Reader, out io.Writer) error {
	s := &session{
		app:     a,
		adapter: clicar.NewCarAdapter(a.Store, a.Config.Lines, out),
		out:     out,
	}
	s.adapter.Watch()

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "quit" || fields[0] == "exit" {
			return nil
		}
		if err := s.exec(ctx, fields[0], fields[1:]); err != nil {
			fmt.Fprintf(out, "%s %v\n", color.RedString("error:"), err)
		}
	}
	return scanner.Err()
}

func (s *session) exec(ctx gocontext.Context, name string, args []string) error {
	switch name {
	case "add":
		return s.add(ctx, args)
	case "board":
		return s.adapter.Board(ctx)
	case "show":
		_, err := s.adapter.List(ctx)
		return err
	case "html":
		if err := s.app.Document.Render(s.out); err != nil {
			return fmt.Errorf("failed to render page: %w", err)
		}
		fmt.Fprintln(s.out)
		return nil
	case "export":
		if len(args) != 1 {
			return fmt.Errorf("usage: export json|yaml")
		}
		return s.adapter.Export(ctx, args[0])
	case "help":
		fmt.Fprintln(s.out, runHelp)
		return nil
	default:
		return fmt.Errorf("unknown command %q (try help)", name)
	}
}

// add fills the form field by field so missing arguments reach validation
// as empty inputs.
func (s *session) add(ctx gocontext.Context, args []string) error {
	if len(args) > 4 {
		return fmt.Errorf("usage: add <brand> <model> <doors> <line>")
	}
	values := make([]string, 4)
	copy(values, args)

	s.app.Form.Fill(values[0], values[1], values[2], values[3])
	err := s.app.Form.Submit(ctx)

	var verr *component.ValidationError
	if errors.As(err, &verr) {
		fmt.Fprintln(s.out, color.YellowString("Inputs are not valid!"), strings.Join(verr.Fields, ", "))
		return nil
	}
	return err
}
