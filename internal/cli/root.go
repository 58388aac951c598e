package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/xcbolt/snackbar/internal/core"
	"github.com/xcbolt/snackbar/internal/tui"
)

var (
	flags   GlobalFlags
	rootCmd = &cobra.Command{
		Use:           "snackbar",
		Short:         "A sliding notification bar for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default: the interactive demo. Use `snackbar --help` for help.
			return runTUI(cmd)
		},
	}
)

func Execute() {
	rootCmd.SetOut(os.Stdout)
	rootCmd.SetErr(os.Stderr)

	rootCmd.PersistentFlags().BoolVar(&flags.JSON, "json", false, "Emit NDJSON event stream to stdout")
	rootCmd.PersistentFlags().IntVar(&flags.EventVersion, "event-version", core.EventSchemaVersion, "NDJSON event schema version")
	rootCmd.PersistentFlags().StringVar(&flags.Config, "config", "", "Path to config file (default: .snackbar/config.json)")
	rootCmd.PersistentFlags().StringVar(&flags.Project, "project", "", "Project directory (default: auto-detected)")
	rootCmd.PersistentFlags().BoolVar(&flags.Verbose, "verbose", false, "Verbose output")
	rootCmd.Flags().BoolVar(&flags.Watch, "watch", false, "Reload the config file when it changes")

	rootCmd.AddCommand(newTUICmd())
	rootCmd.AddCommand(newSimulateCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newCleanCmd())

	if err := rootCmd.Execute(); err != nil {
		PrintFatal(err)
	}
}

func newTUICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Launch the interactive demo",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd)
		},
	}
	cmd.Flags().BoolVar(&flags.Watch, "watch", false, "Reload the config file when it changes")
	return cmd
}

func runTUI(cmd *cobra.Command) error {
	ac, err := newAppContext(flags, cmd.OutOrStdout(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	// The terminal belongs to the TUI; logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	f, err := core.OpenLogFile(ac.ProjectRoot, ac.Config.Log)
	if err != nil {
		return err
	}
	if f != nil {
		defer f.Close()
		logOut = f
	}
	logger := core.NewLogger(logOut, ac.Config.Log.Level, ac.Flags.Verbose)
	logger.Info("starting tui", "project", ac.ProjectRoot, "config", ac.ConfigPath, "watch", ac.Flags.Watch)

	return tui.Run(tui.Options{
		ProjectRoot: ac.ProjectRoot,
		ConfigPath:  ac.ConfigPath,
		Config:      ac.Config,
		Logger:      logger,
		Watch:       ac.Flags.Watch,
	})
}
