package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/xcbolt/snackbar/internal/core"
)

func newConfigCmd() *cobra.Command {
	var edit bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or edit the snackbar config",
		RunE: func(cmd *cobra.Command, args []string) error {
			ac, err := newAppContext(flags, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			if edit {
				if err := core.SaveConfig(ac.ProjectRoot, ac.ConfigPath, ac.Config); err != nil {
					return err
				}
				editor := os.Getenv("EDITOR")
				if editor == "" {
					return errors.New("EDITOR is not set; export EDITOR or run without --edit to print config")
				}
				c := exec.Command(editor, ac.ConfigPath)
				c.Stdin = os.Stdin
				c.Stdout = cmd.OutOrStdout()
				c.Stderr = cmd.ErrOrStderr()
				return c.Run()
			}

			b, _ := json.MarshalIndent(ac.Config, "", "  ")
			fmt.Fprintln(cmd.OutOrStdout(), string(b))
			return nil
		},
	}

	cmd.Flags().BoolVar(&edit, "edit", false, "Open config in $EDITOR")
	return cmd
}
