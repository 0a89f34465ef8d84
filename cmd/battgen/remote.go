package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/battgen/battgen/cells"
	"github.com/battgen/battgen/pkg/client"
	"github.com/battgen/battgen/pkg/descriptor"
	"github.com/battgen/battgen/pkg/types"
	"github.com/battgen/battgen/pkg/version"
)

func newAPIClient() *client.Client {
	return client.NewClient(unixSocketPath)
}

func NewRemoteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "remote",
		Short:   "Ask a running battgen daemon",
		GroupID: gDaemon,
		Long: `Ask a running battgen daemon.

Descriptors are read locally and sent to the daemon, which does the math.`,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if err := setupLogger(); err != nil {
				return err
			}
			checkDaemonVersion(newAPIClient())
			return nil
		},
	}

	cmd.AddCommand(
		newRemoteVersionCommand(),
		newRemoteEvaluateCommand(),
		newRemoteHostCommand(),
	)

	return cmd
}

func checkDaemonVersion(c *client.Client) {
	daemonVersion, err := c.GetVersion()
	if err != nil {
		if errors.Is(err, client.ErrNotFound) {
			logrus.Error("battgen daemon is too old to report its version")
		}
		return
	}
	if daemonVersion != version.Version {
		logrus.WithFields(logrus.Fields{
			"clientVersion": version.Version,
			"daemonVersion": daemonVersion,
		}).Warn("Version mismatch between client and daemon. Results may differ from a local run.")
	}
}

func newRemoteVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the daemon version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := newAPIClient().GetVersion()
			if err != nil {
				return err
			}
			cmd.Println(v)
			return nil
		},
	}
}

func newRemoteEvaluateCommand() *cobra.Command {
	var (
		input    string
		topology string
		soc      float64
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate a pack on the daemon",
		Example: `  battgen remote evaluate -i bundled:tesla_21700 -t 96S10P
  battgen remote evaluate -i ./cell.yaml -t 4S4P --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, err := loadModule(input)
			if err != nil {
				return err
			}

			req := types.BatteryRequest{
				Arrays: []types.ArrayRequest{{Module: descriptor.FromModule(m), Topology: topology}},
				SoC:    &soc,
			}
			s, err := newAPIClient().EvaluateBattery(req)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(s)
			}

			newReporter(cmd.OutOrStdout()).summary(s)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&input, "input-cell", "i", cells.BundledPrefix+cells.Default, "cell or module descriptor")
	f.StringVarP(&topology, "topology", "t", "1S1P", "pack topology in <series>S<parallel>P form")
	f.Float64Var(&soc, "soc", types.DefaultSoC, "state of charge (0-1) used for DC resistance")
	f.BoolVar(&asJSON, "json", false, "print the daemon response as JSON")

	return cmd
}

func newRemoteHostCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "host",
		Short: "Describe the batteries of the machine running the daemon",
		RunE: func(cmd *cobra.Command, _ []string) error {
			bats, err := newAPIClient().GetHostBattery()
			if err != nil {
				return fmt.Errorf("failed to get host battery: %w", err)
			}

			r := newReporter(cmd.OutOrStdout())
			for _, b := range bats {
				printHostBattery(r, b)
			}
			return nil
		},
	}
}
