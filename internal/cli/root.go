package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-miscord/internal/app"
	"github.com/MKhiriev/go-miscord/internal/config"
	"github.com/MKhiriev/go-miscord/internal/logger"
	"github.com/MKhiriev/go-miscord/internal/store"
	"github.com/MKhiriev/go-miscord/models"
)

// Exit codes returned by [Run].
const (
	ExitSuccess      = 0
	ExitConfigError  = 1
	ExitUsageError   = 2
	ExitRuntimeError = 3
)

// cli holds the state shared by all commands of one invocation.
type cli struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	build models.AppBuildInfo
	files store.FileStore

	flagOpts *config.Options
	logJSON  bool
	wait     bool

	// started is set once flag parsing succeeded and a command began to run.
	started bool
	log     *logger.Logger
	opts    *config.Options
	loader  *config.Loader
}

// reportedError marks an error that was already shown to the user.
type reportedError struct {
	err error
}

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

// Run executes the miscord command line with args (without the program
// name) and returns the process exit code.
func Run(args []string, build models.AppBuildInfo) int {
	c := &cli{
		in:     os.Stdin,
		out:    os.Stdout,
		errOut: os.Stderr,
		build:  build,
		files:  store.NewFileStore(),
	}

	return c.execute(args)
}

func (c *cli) execute(args []string) int {
	root := c.newRootCmd()
	root.SetArgs(args)
	root.SetIn(c.in)
	root.SetOut(c.out)
	root.SetErr(c.errOut)

	err := root.Execute()
	if err == nil {
		return ExitSuccess
	}

	var reported reportedError
	if !errors.As(err, &reported) {
		fmt.Fprintf(c.errOut, "Error: %v\n", err)
	}

	return exitCode(err, c.started)
}

func exitCode(err error, started bool) int {
	var setupErr *config.SetupError
	switch {
	case err == nil:
		return ExitSuccess
	case !started:
		return ExitUsageError
	case errors.As(err, &setupErr), errors.Is(err, config.ErrMalformedConfig):
		return ExitConfigError
	default:
		return ExitRuntimeError
	}
}

func (c *cli) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "miscord",
		Short:         "Facebook Messenger to Discord chat bridge",
		Long:          "Miscord bridges Facebook Messenger threads and Discord channels. The config commands manage its config.json.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.load()
			if err != nil {
				return err
			}

			c.log.Info().Str("path", cfg.Path).Str("log_level", cfg.LogLevel).Msg("config loaded")
			return nil
		},
	}

	c.flagOpts = config.BindFlags(root.PersistentFlags())
	root.PersistentFlags().BoolVar(&c.logJSON, "log-json", false, "Write logs as JSON")
	root.PersistentFlags().BoolVar(&c.wait, "wait", false, "On config errors, wait for Enter before exiting")

	root.AddCommand(c.newConfigCmd())
	root.AddCommand(c.newVersionCmd())

	return root
}

// setup resolves the runtime options and builds the logger and loader.
func (c *cli) setup() error {
	c.started = true

	if c.logJSON {
		c.log = logger.NewLogger("miscord")
	} else {
		c.log = logger.NewConsoleLogger("miscord")
	}
	c.log.Logger = c.log.Output(c.logWriter())

	opts, err := config.GetOptions(c.flagOpts)
	if err != nil {
		return err
	}
	c.opts = opts

	if opts.LogLevel != "" {
		if err := c.log.SetLevel(opts.LogLevel); err != nil {
			c.log.Warn().Err(err).Msg("ignoring log level override")
		}
	}
	c.log.Debug().Stringer("build", c.build).Msg("miscord starting")
	c.loader = config.NewLoader(c.files, c.log)

	return nil
}

func (c *cli) logWriter() io.Writer {
	if c.logJSON {
		return c.errOut
	}
	return logger.ConsoleWriter(c.errOut)
}

// load runs the loader and applies the effective log level. Config errors
// are reported here; in wait mode the process then blocks until the user
// presses Enter.
func (c *cli) load() (*config.Config, error) {
	cfg, err := c.loader.Load(*c.opts)
	if err != nil {
		var setupErr *config.SetupError
		if errors.As(err, &setupErr) {
			fmt.Fprintln(c.errOut, renderSetupNotice(setupErr))
		} else {
			fmt.Fprintf(c.errOut, "Error: %v\n", err)
		}
		if c.wait {
			c.waitForEnter()
		}
		return nil, reportedError{err: err}
	}

	if err := c.log.SetLevel(cfg.LogLevel); err != nil {
		c.log.Warn().Err(err).Str("log_level", cfg.LogLevel).Msg("invalid log level, keeping the current one")
	}

	return cfg, nil
}

func (c *cli) waitForEnter() {
	fmt.Fprintln(c.errOut, helpStyle.Render(app.MsgPressEnterToExit))
	_, _ = bufio.NewReader(c.in).ReadString('\n')
}

func (c *cli) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "Build version: %s\n", c.build.BuildVersion())
			fmt.Fprintf(cmd.OutOrStdout(), "Build date: %s\n", c.build.BuildDate())
			fmt.Fprintf(cmd.OutOrStdout(), "Build commit: %s\n", c.build.BuildCommit())
			return nil
		},
	}
}
