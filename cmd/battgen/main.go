package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/battgen/battgen/cells"
	"github.com/battgen/battgen/pkg/client"
	"github.com/battgen/battgen/pkg/daemon"
	"github.com/battgen/battgen/pkg/types"
)

var (
	logLevel       = "info"
	unixSocketPath = daemon.DefaultUnixSocket
)

var (
	inputCell = cells.BundledPrefix + cells.Default
	topology  = "1S.1P"
	verbosity = 0
	demo      = false
	soc       = types.DefaultSoC
)

var (
	gReport       = "Report:"
	gDaemon       = "Daemon:"
	commandGroups = []string{
		gReport,
		gDaemon,
	}
)

func setupLogger() error {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		return fmt.Errorf("failed to parse log level: %v", err)
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{})
	if term.IsTerminal(int(os.Stderr.Fd())) {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.Kitchen,
		})
	}

	return nil
}

func handleCmdError(err error) {
	if errors.Is(err, client.ErrDaemonNotRunning) {
		fmt.Fprintln(os.Stderr, "\nError: battgen daemon is not running")
		fmt.Fprintln(os.Stderr, "Start one with 'battgen serve' or point --daemon-socket at a running one.")
	} else if errors.Is(err, client.ErrPermissionDenied) {
		fmt.Fprintln(os.Stderr, "\nError: Permission Denied")
		fmt.Fprintln(os.Stderr, "  - Try running the command again with 'sudo'")
		fmt.Fprintln(os.Stderr, "  - Or restart the daemon with the '--allow-non-root-access' flag")
	}
}

func main() {
	cmd := NewCommand()
	if err := cmd.Execute(); err != nil {
		handleCmdError(err)
		os.Exit(1)
	}
}

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "battgen",
		Short: "battgen is an EV-focused battery pack calculator",
		Long: `battgen is an EV-focused battery pack calculator.

It reads a cell or module descriptor, arranges it into a series/parallel
topology and reports the electrical and mechanical figures of the result.

Examples:
  battgen -i bundled:lfp_200ah -t 96S1P
  battgen -i ./my_cell.yaml -t 96S50P -vv
  battgen --demo`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return setupLogger()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReport(cmd)
		},
	}

	globalFlags := cmd.PersistentFlags()
	globalFlags.StringVarP(&logLevel, "log-level", "l", "info", "log level (trace, debug, info, warn, error, fatal, panic)")
	globalFlags.StringVar(&unixSocketPath, "daemon-socket", daemon.DefaultUnixSocket, "battgen daemon unix socket path")

	f := cmd.Flags()
	f.StringVarP(&inputCell, "input-cell", "i", cells.BundledPrefix+cells.Default,
		"cell or module descriptor: a .yaml/.json path or a bundled cell name")
	f.StringVarP(&topology, "topology", "t", "1S.1P", "pack topology in <series>S<parallel>P form")
	f.CountVarP(&verbosity, "verbose", "v", "print more module details, repeat up to 3 times")
	f.BoolVarP(&demo, "demo", "d", false, "also print the demonstration packs")
	f.Float64Var(&soc, "soc", types.DefaultSoC, "state of charge (0-1) used for DC resistance")

	for _, i := range commandGroups {
		cmd.AddGroup(&cobra.Group{
			ID:    i,
			Title: i,
		})
	}

	cmd.AddCommand(
		NewVersionCommand(),
		NewChemistriesCommand(),
		NewCellsCommand(),
		NewSubmodulesCommand(),
		NewHostCommand(),
		NewServeCommand(),
		NewRemoteCommand(),
	)

	return cmd
}

func runReport(cmd *cobra.Command) error {
	if soc < 0 || soc > 1 {
		return fmt.Errorf("invalid state of charge %v: must be between 0 and 1", soc)
	}

	m, err := loadModule(inputCell)
	if err != nil {
		return err
	}

	r := newReporter(cmd.OutOrStdout())
	r.printf("Using input file: %s\n", inputCell)
	r.printf("Topology provided: %s\n", topology)
	t := parseTopology(topology)
	r.printf("Topology parsed as: %dS %dP\n", t.Series, t.Parallel)

	r.verbose(m, verbosity)

	r.pack(inputCell, m, t, soc)

	if demo {
		if err := runDemo(r, soc); err != nil {
			return err
		}
	}

	r.printf("Done.\n")
	return nil
}
