package daemon

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/battgen/battgen/pkg/config"
	"github.com/battgen/battgen/pkg/events"
)

// DefaultUnixSocket is where the daemon listens unless told otherwise.
const DefaultUnixSocket = "/tmp/battgen.sock"

// Options are the command line settings of the daemon. Empty fields fall
// back to the config file.
type Options struct {
	ConfigPath string
	// UnixSocket is the socket path. Ignored when Listen is set.
	UnixSocket string
	// Listen is a TCP address such as "127.0.0.1:8080".
	Listen string
	// AllowNonRoot makes the socket world writable.
	AllowNonRoot bool
}

type server struct {
	conf    *config.File
	hub     *events.Hub
	metrics *metrics
}

func newServer(conf *config.File, reg *prometheus.Registry) *server {
	return &server{
		conf:    conf,
		hub:     events.NewHub(),
		metrics: newMetrics(reg),
	}
}

func (s *server) setupRoutes() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(ginLogger(logrus.StandardLogger()))
	router.Use(s.metrics.middleware())
	router.GET("/version", getVersion)
	router.GET("/chemistries", getChemistries)
	router.GET("/chemistries/:chem", getChemistry)
	router.POST("/module", s.metrics.evaluated("module", s.evaluateModule))
	router.POST("/battery", s.metrics.evaluated("battery", s.evaluateBattery))
	router.GET("/host-battery", getHostBattery)
	router.GET("/events", s.streamEvents)
	router.GET("/metrics", s.metrics.handler())

	return router
}

// NewHandler returns the API router with its metrics registered on reg. It
// uses the default settings plus any BATTGEN_DAEMON_* overrides.
func NewHandler(reg *prometheus.Registry) (http.Handler, error) {
	conf, err := config.NewFile("", config.Defaults(DefaultUnixSocket))
	if err != nil {
		return nil, err
	}
	return newServer(conf, reg).setupRoutes(), nil
}

func listen(opts Options) (net.Listener, error) {
	if opts.Listen != "" {
		return net.Listen("tcp", opts.Listen)
	}

	if err := removeStaleSocket(opts.UnixSocket); err != nil {
		return nil, err
	}

	l, err := net.Listen("unix", opts.UnixSocket)
	if err != nil {
		return nil, err
	}

	if opts.AllowNonRoot {
		logrus.Infof("non-root access is allowed, changing permissions of %s to 0777", opts.UnixSocket)
		if err := os.Chmod(opts.UnixSocket, 0777); err != nil {
			_ = l.Close()
			return nil, err
		}
	}

	return l, nil
}

// removeStaleSocket deletes a socket left behind by a crashed daemon. Live
// sockets and anything that is not a socket are left alone.
func removeStaleSocket(path string) error {
	fi, err := os.Lstat(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	if fi.Mode()&os.ModeSocket == 0 {
		return fmt.Errorf("%s exists and is not a unix socket", path)
	}

	conn, err := net.Dial("unix", path)
	if err == nil {
		_ = conn.Close()
		return fmt.Errorf("another daemon is already listening on %s", path)
	}

	logrus.WithField("path", path).Info("removing stale unix socket")
	return os.Remove(path)
}

func (o Options) withConfig(conf *config.File) Options {
	if o.UnixSocket == "" {
		o.UnixSocket = conf.UnixSocket()
	}
	if o.Listen == "" {
		o.Listen = conf.Listen()
	}
	o.AllowNonRoot = o.AllowNonRoot || conf.AllowNonRootAccess()
	return o
}

// Run serves the evaluation API until SIGINT or SIGTERM arrives. SIGHUP
// reloads the config file; listener settings only change on restart.
func Run(opts Options) error {
	conf, err := config.NewFile(opts.ConfigPath, config.Defaults(DefaultUnixSocket))
	if err != nil {
		return err
	}
	logrus.WithFields(conf.LogrusFields()).Info("config loaded")

	go func() {
		sigc := make(chan os.Signal, 1)
		signal.Notify(sigc, syscall.SIGHUP)
		for range sigc {
			if err := conf.Load(); err != nil {
				logrus.Errorf("failed to reload config: %v", err)
				continue
			}
			logrus.WithFields(conf.LogrusFields()).Info("config reloaded")
		}
	}()

	router := newServer(conf, prometheus.NewRegistry()).setupRoutes()

	srv := &http.Server{
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	l, err := listen(opts.withConfig(conf))
	if err != nil {
		return err
	}

	errc := make(chan error, 1)
	go func() {
		logrus.Infof("http server listening on %s", l.Addr().String())
		if err := srv.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()

	// Handle common process-killing signals, so we can gracefully shut down:
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigc)

	select {
	case sig := <-sigc:
		logrus.Infof("caught signal \"%s\": shutting down.", sig)
	case err := <-errc:
		return err
	}

	logrus.Info("shutting down http server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("failed to shutdown http server: %v", err)
	}

	logrus.Info("exiting")
	return nil
}
