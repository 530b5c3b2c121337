package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/akyairhashvil/folio/internal/config"
	"github.com/akyairhashvil/folio/internal/content"
	"github.com/akyairhashvil/folio/internal/resume"
	"github.com/akyairhashvil/folio/internal/tui"
	"github.com/akyairhashvil/folio/internal/util"
)

// plainWidth is used when output is not a terminal.
const plainWidth = 80

func main() {
	// Route logs to stderr so stdout stays clean for dumps and plain output.
	logrus.SetOutput(os.Stderr)
	util.MustSucceed("load env file", config.LoadEnvFile(config.DefaultEnvFile))
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := config.Defaults()

	root := &cobra.Command{
		Use:           config.AppName,
		Short:         "A one-page portfolio in your terminal",
		Long:          "folio shows a personal portfolio (hero, resume, projects and a contact form) as an interactive terminal page with a typing headline and scroll-aware navigation.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logrus.SetOutput(cmd.ErrOrStderr())
			if opts.Verbose {
				logrus.SetLevel(logrus.DebugLevel)
			} else {
				logrus.SetLevel(logrus.InfoLevel)
			}
			return opts.Validate()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			profile, err := content.Load(opts.ContentPath)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fd, tty := terminalFd(out)
			if !tty {
				return tui.RenderPlain(out, profile, opts.Theme, plainWidth)
			}
			if w, _, err := term.GetSize(fd); err == nil {
				logrus.WithField("width", w).Debug("starting tui")
			}
			restore, err := routeLogs(opts.LogFile)
			if err != nil {
				return err
			}
			defer restore()
			return tui.Run(cmd.Context(), profile, tui.Options{
				Theme:  opts.Theme,
				NoAnim: opts.NoAnim,
			})
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.ContentPath, "content", opts.ContentPath, "Profile YAML to show instead of the built-in one [$FOLIO_CONTENT]")
	flags.StringVar(&opts.Theme, "theme", opts.Theme, "Initial theme: light or dark [$FOLIO_THEME]")
	flags.StringVar(&opts.LogFile, "log-file", opts.LogFile, "Write logs here while the TUI is running [$FOLIO_LOG_FILE]")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "Enable debug logging")
	root.Flags().BoolVar(&opts.NoAnim, "no-anim", false, "Disable the typing animation and smooth scrolling")

	root.Version = tui.AppVersion
	root.Annotations = map[string]string{"commit": tui.GitCommit, "date": tui.BuildTime}
	root.SetVersionTemplate("{{printf \"%s %s\\ncommit: %s\\ndate: %s\\n\" .DisplayName .Version (index .Annotations \"commit\") (index .Annotations \"date\")}}")

	root.AddCommand(newResumeCmd(&opts), newContentCmd(&opts))
	return root
}

func newResumeCmd(opts *config.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resume",
		Short: "Work with the resume PDF",
	}
	var out string
	export := &cobra.Command{
		Use:   "export",
		Short: "Write the resume as a PDF",
		Long:  "Render the resume section to <name>_resume.pdf. Defaults to your documents directory.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			profile, err := content.Load(opts.ContentPath)
			if err != nil {
				return err
			}
			path, err := resume.Export(profile, out)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	export.Flags().StringVarP(&out, "out", "o", "", "Output directory")
	cmd.AddCommand(export)
	return cmd
}

func newContentCmd(opts *config.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "content",
		Short: "Inspect profile content",
	}
	dump := &cobra.Command{
		Use:   "dump",
		Short: "Print the active profile as YAML",
		Long:  "Print the active profile as YAML. Use it as a starting point for --content.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			profile, err := content.Load(opts.ContentPath)
			if err != nil {
				return err
			}
			return content.Encode(cmd.OutOrStdout(), profile)
		},
	}
	validate := &cobra.Command{
		Use:   "validate FILE",
		Short: "Check a profile YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := content.Load(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %s (%d roles, %d projects)\n", profile.Name, len(profile.Roles), len(profile.Projects))
			return nil
		},
	}
	cmd.AddCommand(dump, validate)
	return cmd
}

func terminalFd(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok {
		return 0, false
	}
	fd := int(f.Fd())
	return fd, term.IsTerminal(fd)
}

// routeLogs keeps log lines off the screen the TUI owns. They go to path
// when set and are dropped otherwise.
func routeLogs(path string) (restore func(), err error) {
	prev := logrus.StandardLogger().Out
	if path == "" {
		logrus.SetOutput(io.Discard)
		return func() { logrus.SetOutput(prev) }, nil
	}
	f, err := os.OpenFile(util.ExpandHome(path), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	logrus.SetOutput(f)
	return func() {
		logrus.SetOutput(prev)
		util.LogError("close log file", f.Close())
	}, nil
}
