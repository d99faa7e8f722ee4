// Package cli wires configuration, logging and the record source into the
// cobra commands.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Makepad-fr/todoboard/internal/auth"
	"github.com/Makepad-fr/todoboard/internal/config"
	"github.com/Makepad-fr/todoboard/internal/logging"
	"github.com/Makepad-fr/todoboard/internal/store/recordstore"
	"github.com/Makepad-fr/todoboard/internal/store/remote"
	"github.com/Makepad-fr/todoboard/internal/tui"
	"github.com/Makepad-fr/todoboard/internal/ui"
)

// app holds what the persistent flags and PersistentPreRunE resolve.
type app struct {
	endpoint string
	theme    string
	verbose  bool
	dotenv   string

	cfg *config.Config
	log *zap.Logger
}

// NewRootCmd builds the todoboard command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "todoboard",
		Short: "Browse and edit a list of todo records in the terminal",
		Long: `todoboard fetches todo records once from a JSON endpoint and lets you
sort, add, edit and delete them in a table. Changes stay in memory.

Run without arguments to start the interactive table.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runBoard(cmd.Context())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.endpoint, "endpoint", "", "records endpoint (http(s):// or file://), overrides TODOBOARD_ENDPOINT")
	pf.StringVar(&a.theme, "theme", "", fmt.Sprintf("color theme %v, overrides TODOBOARD_THEME", ui.Themes))
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	pf.StringVar(&a.dotenv, "env-file", ".env", "dotenv file read before the environment")

	root.AddCommand(newListCmd(a), newAuthCmd(a))
	return root
}

// Execute runs the command tree with ctx.
func Execute(ctx context.Context, args []string) error {
	root := NewRootCmd()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.dotenv)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("endpoint") {
		cfg.Endpoint = a.endpoint
	}
	if cmd.Flags().Changed("theme") {
		cfg.Theme = a.theme
	}
	if err := ui.SetTheme(cfg.Theme); err != nil {
		return err
	}
	a.cfg = cfg

	// The board owns the terminal, so only it logs to a file.
	if cmd.Root() == cmd {
		a.log, err = logging.File(cfg.LogFile, cfg.LogLevel)
	} else {
		a.log, err = logging.Console(a.verbose)
	}
	if err != nil {
		return err
	}
	a.log.Debug("config loaded",
		zap.String("endpoint", cfg.Endpoint),
		zap.Duration("timeout", cfg.Timeout),
		zap.String("theme", cfg.Theme))
	return nil
}

func (a *app) source() (recordstore.Source, error) {
	return remote.Open(a.cfg.Endpoint,
		remote.WithTimeout(a.cfg.Timeout),
		remote.WithToken(auth.Token),
		remote.WithLogger(a.log),
	)
}

func (a *app) runBoard(ctx context.Context) error {
	src, err := a.source()
	if err != nil {
		return err
	}
	a.log.Info("starting board", zap.String("endpoint", a.cfg.Endpoint))
	return tui.Run(ctx, recordstore.New(), src, a.log)
}
