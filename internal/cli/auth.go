package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Makepad-fr/todoboard/internal/auth"
	"github.com/Makepad-fr/todoboard/internal/ui"
)

func newAuthCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the bearer token sent to the endpoint",
		Long: `Manage the optional bearer token sent with the records fetch.

Available subcommands:
  login  - save a token to ~/.todoboard/credentials.json
  logout - remove the saved token
  status - show which token is in use

TODOBOARD_TOKEN, when set, takes precedence over the saved token.`,
	}
	cmd.AddCommand(newAuthLoginCmd(a), newAuthLogoutCmd(a), newAuthStatusCmd(a))
	return cmd
}

func newAuthLoginCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "login [token]",
		Short: "Save a token (read from stdin when omitted)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var token string
			if len(args) == 1 {
				token = args[0]
			} else {
				fmt.Fprint(cmd.ErrOrStderr(), "Token: ")
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("read token: %w", err)
				}
				token = line
			}
			if err := auth.SetToken(token); err != nil {
				return fmt.Errorf("login: %w", err)
			}
			a.log.Debug("token saved")
			ui.OK(cmd.OutOrStdout(), "logged in")
			return nil
		},
	}
}

func newAuthLogoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the saved token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := auth.DeleteToken(); err != nil {
				return fmt.Errorf("logout: %w", err)
			}
			a.log.Debug("token removed")
			ui.OK(cmd.OutOrStdout(), "logged out")
			return nil
		},
	}
}

func newAuthStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show which token is in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ti, err := auth.GetToken()
			if err != nil {
				return fmt.Errorf("status: %w", err)
			}
			w := cmd.OutOrStdout()
			if ti == nil {
				fmt.Fprintln(w, "not logged in")
				return nil
			}
			fmt.Fprintf(w, "logged in (%s): %s\n", ti.Source, mask(ti.Token))
			if ti.Source == auth.SourceEnv {
				fmt.Fprintf(w, "unset %s to use the saved token\n", auth.EnvToken)
			}
			return nil
		},
	}
}

// mask keeps the last four characters of a token.
func mask(tok string) string {
	if len(tok) <= 4 {
		return strings.Repeat("*", len(tok))
	}
	return strings.Repeat("*", len(tok)-4) + tok[len(tok)-4:]
}
