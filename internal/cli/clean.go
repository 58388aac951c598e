package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xcbolt/snackbar/internal/core"
	"github.com/xcbolt/snackbar/internal/util"
)

func newCleanCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove snackbar artifacts (logs, simulation timelines)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ac, err := newAppContext(flags, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			removed, err := cleanProject(ac.ProjectRoot, all)
			if err != nil {
				return err
			}
			if !ac.Flags.JSON {
				for _, path := range removed {
					fmt.Fprintln(cmd.OutOrStdout(), "Removed", path)
				}
			}
			ac.Emitter.Emit(core.Result("clean", true, map[string]any{"removed": removed}))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Remove everything under .snackbar, including config")
	return cmd
}

// cleanProject removes log files and recorded timelines, or the whole
// project directory when all is set.
func cleanProject(projectRoot string, all bool) ([]string, error) {
	dir := core.ProjectDir(projectRoot)
	if all {
		if !util.Exists(dir) {
			return nil, nil
		}
		return []string{dir}, util.RemoveAllIfExists(dir)
	}

	var removed []string
	for _, suffix := range []string{".log", ".timeline.json"} {
		files, err := util.ListFilesWithSuffix(dir, suffix)
		if err != nil {
			return removed, err
		}
		for _, f := range files {
			if err := util.RemoveAllIfExists(f); err != nil {
				return removed, err
			}
			removed = append(removed, f)
		}
	}
	return removed, nil
}
