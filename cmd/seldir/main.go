package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	apppkg "github.com/kk-code-lab/seldir/internal/app"
	"github.com/kk-code-lab/seldir/internal/config"
	logsetup "github.com/kk-code-lab/seldir/internal/log"
	"github.com/kk-code-lab/seldir/internal/shellsetup"
)

var version = "dev"

var parentShellDetector = shellsetup.DetectParentShellName

func main() {
	var (
		showHidden bool
		showIcons  bool
		accent     string
		debug      bool
	)

	rootCmd := &cobra.Command{
		Use:     "seldir",
		Short:   "Pick a directory in a three-pane terminal browser",
		Long: `Seldir browses the directory tree in three panes (parent, current,
preview) and hands the chosen directory to the calling shell through a
temp file. Run "seldir setup" for the shell wrapper that turns a
selection into a cd.`,
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := resolveOptions(cmd, showHidden, showIcons, accent, debug)
			if err != nil {
				return err
			}
			return run(opts)
		},
	}

	rootCmd.Flags().BoolVarP(&showHidden, "all", "a", false, "show hidden entries")
	rootCmd.Flags().BoolVarP(&showIcons, "icons", "i", false, "show entry type icons")
	rootCmd.Flags().StringVar(&accent, "color", "red", "accent color name")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "write a debug log file")
	rootCmd.AddCommand(setupCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type options struct {
	apppkg.Options
	debug bool
}

// resolveOptions merges the config file with flags; an explicitly set flag
// always wins over the file.
func resolveOptions(cmd *cobra.Command, showHidden, showIcons bool, accent string, debug bool) (options, error) {
	cfg, err := config.Load()
	if err != nil {
		return options{}, err
	}

	opts := options{
		Options: apppkg.Options{
			ShowHidden: cfg.ShowHidden,
			ShowIcons:  cfg.ShowIcons,
			Accent:     cfg.Accent,
		},
		debug: cfg.Debug,
	}
	if cmd.Flags().Changed("all") {
		opts.ShowHidden = showHidden
	}
	if cmd.Flags().Changed("icons") {
		opts.ShowIcons = showIcons
	}
	if cmd.Flags().Changed("color") {
		opts.Accent = accent
	}
	if cmd.Flags().Changed("debug") {
		opts.debug = debug
	}
	return opts, nil
}

func run(opts options) error {
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	logFile, err := logsetup.Setup(opts.debug)
	if err != nil {
		return fmt.Errorf("debug log: %w", err)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	app, err := apppkg.NewApplication(opts.Options)
	if err != nil {
		return fmt.Errorf("initializing application: %w", err)
	}
	defer app.Close()

	// Optimistic write: if the process dies mid-session the wrapper still
	// finds a valid directory.
	if err := shellsetup.WriteResult(app.StartDir()); err != nil {
		logrus.Debugf("startup result write failed: %v", err)
	}

	app.Run()

	if path := app.Result(); path != "" {
		if err := shellsetup.WriteResult(path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not write result file: %v\n", err)
		}
	}
	return nil
}

func setupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setup [shell]",
		Short: "Print the shell integration snippet",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			shellOverride := ""
			if len(args) > 0 {
				shellOverride = args[0]
			}
			shellsetup.PrintSetup(shellOverride, shellsetup.Config{DetectParent: parentShellDetector})
		},
	}
}
