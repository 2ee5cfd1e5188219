package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"aidconnect/internal/api"
	"aidconnect/internal/app"
	"aidconnect/internal/domain"
	"aidconnect/internal/services/session"
	"aidconnect/internal/ui"
	"aidconnect/internal/wizard"
)

// skipRestore marks commands that run without loading the saved session.
const skipRestore = "skip-restore"

// cli holds what every subcommand shares.
type cli struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	wire   *app.Wire
	prompt wizard.Prompter
}

// Execute runs the CLI on the process's standard streams.
func Execute(ctx context.Context) error {
	return Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
}

// Run executes the CLI with explicit arguments and streams. The error, if
// any, has already been printed to errOut.
func Run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) error {
	c := &cli{in: in, out: out, errOut: errOut}
	root := c.rootCmd()
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return nil
	}
	if api.IsUnauthorized(err) && c.wire != nil && c.wire.Session.IsAuthenticated() {
		if expErr := c.wire.Session.Expire(); expErr != nil {
			err = expErr
		} else {
			err = session.ErrTokenExpired
		}
	}
	ui.Errorf(errOut, "%v", err)
	return err
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "aidconnect",
		Short:         "Community mutual-aid from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v, err := app.NewViper(cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}
			cfg, err := app.LoadConfig(v)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
				return err
			}
			log, err := app.NewLogger(cfg.LogLevel, c.errOut)
			if err != nil {
				return err
			}
			log.WithField("config", cfg.String()).Debug("configuration resolved")

			c.wire, err = app.NewWire(cfg, log)
			if err != nil {
				return err
			}
			c.prompt = wizard.NewLinePrompter(c.in, c.out)

			if cmd.Annotations[skipRestore] != "" {
				return nil
			}
			_, _, err = c.wire.Session.Restore(cmd.Context())
			if errors.Is(err, session.ErrTokenExpired) {
				ui.Warnf(c.errOut, "%v", err)
				return nil
			}
			return err
		},
	}

	pf := root.PersistentFlags()
	pf.String(app.KeyServer, "", "backend base URL (default http://localhost:8001)")
	pf.String(app.KeyHome, "", "config dir (default ~/.aidconnect)")
	pf.Duration(app.KeyTimeout, 0, "network timeout per call (default 15s)")
	pf.String("log-level", "", "log level: debug, info, warning, error (default info)")
	pf.StringP(app.KeyPassphrase, "p", "", "passphrase to seal the stored session")

	root.AddCommand(
		c.registerCmd(),
		c.loginCmd(),
		c.logoutCmd(),
		c.whoamiCmd(),
		c.dashboardCmd(),
		c.healthCmd(),
		c.requestCmd(),
		c.offerCmd(),
	)
	return root
}

// user returns the logged-in user or session.ErrNotAuthenticated.
func (c *cli) user() (domain.User, error) {
	return c.wire.Session.RequireUser()
}

// ask returns preset when it is set, otherwise prompts for f.
func (c *cli) ask(cmd *cobra.Command, f wizard.Field, preset string) (string, error) {
	if preset != "" {
		return preset, nil
	}
	ans, err := c.prompt.Ask(cmd.Context(), f, "")
	if err != nil {
		return "", err
	}
	if ans == "" && !f.Optional {
		return "", fmt.Errorf("%s is required", f.Name)
	}
	return ans, nil
}
