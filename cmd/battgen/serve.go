package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/battgen/battgen/pkg/daemon"
	"github.com/battgen/battgen/pkg/version"
)

// NewServeCommand .
func NewServeCommand() *cobra.Command {
	var (
		configPath         string
		listenAddr         string
		allowNonRootAccess bool
	)

	cmd := &cobra.Command{
		Use:     "serve",
		Short:   "Run the battgen daemon in the foreground",
		GroupID: gDaemon,
		Long: `Run the battgen daemon in the foreground.

The daemon evaluates modules and batteries posted as JSON. It listens on the
unix socket given by --daemon-socket, or on a TCP address when --listen is set.
Prometheus metrics are served at /metrics and evaluations are streamed as
server-sent events at /events.

Settings missing from the command line are read from --config and from
BATTGEN_DAEMON_* environment variables. Send SIGHUP to reload them.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			socket := ""
			if cmd.Flags().Changed("daemon-socket") {
				socket = unixSocketPath
			}

			logrus.WithFields(logrus.Fields{
				"version": version.Version,
				"commit":  version.GitCommit,
			}).Info("battgen daemon starting")
			return daemon.Run(daemon.Options{
				ConfigPath:   configPath,
				UnixSocket:   socket,
				Listen:       listenAddr,
				AllowNonRoot: allowNonRootAccess,
			})
		},
	}

	f := cmd.Flags()
	f.StringVar(&configPath, "config", "", "daemon config file (.yaml or .json)")
	f.StringVar(&listenAddr, "listen", "", "TCP address to listen on instead of the unix socket, e.g. 127.0.0.1:8080")
	f.BoolVar(&allowNonRootAccess, "allow-non-root-access", false, "Allow non-root users to access the daemon socket.")

	return cmd
}
