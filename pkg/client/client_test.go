package client

import (
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/battgen/battgen/pkg/daemon"
	"github.com/battgen/battgen/pkg/descriptor"
	"github.com/battgen/battgen/pkg/pack"
	"github.com/battgen/battgen/pkg/types"
	"github.com/battgen/battgen/pkg/version"
)

// serve starts the real daemon router on a fresh unix socket.
func serve(t *testing.T) *Client {
	t.Helper()

	// socket paths have a short length limit, keep it out of t.TempDir
	dir, err := os.MkdirTemp("", "battgen")
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.RemoveAll(dir) })
	sock := filepath.Join(dir, "d.sock")

	l, err := net.Listen("unix", sock)
	require.NoError(t, err)

	h, err := daemon.NewHandler(prometheus.NewRegistry())
	require.NoError(t, err)
	srv := httptest.NewUnstartedServer(h)
	srv.Listener = l
	srv.Start()
	t.Cleanup(srv.Close)

	return NewClient(sock)
}

func TestClient_GetVersion(t *testing.T) {
	c := serve(t)

	v, err := c.GetVersion()
	require.NoError(t, err)
	assert.Equal(t, version.Version, v)
}

func TestClient_Chemistries(t *testing.T) {
	c := serve(t)

	entries, err := c.GetChemistries()
	require.NoError(t, err)
	assert.Len(t, entries, len(pack.Chemistries()))

	lfp, err := c.GetChemistry("lifepo4")
	require.NoError(t, err)
	assert.Equal(t, pack.ChemLFP, lfp.Chem)

	_, err = c.GetChemistry("unobtainium")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClient_Evaluate(t *testing.T) {
	c := serve(t)
	raw := descriptor.FromModule(pack.NewRecCell(0.2, 0.1, 0.1, 2, 0.001, 50, pack.ChemNMC))

	ms, err := c.EvaluateModule(raw, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 3.7, ms.Voltage, 1e-9)

	s, err := c.EvaluateBattery(types.BatteryRequest{Arrays: []types.ArrayRequest{{Module: raw, Topology: "96S1P"}}})
	require.NoError(t, err)
	assert.InDelta(t, 17.76, s.KWhNominal, 1e-9)
	assert.Equal(t, types.DefaultSoC, s.SoC)

	_, err = c.EvaluateBattery(types.BatteryRequest{})
	assert.ErrorContains(t, err, "got 400")
}

func TestClient_DaemonNotRunning(t *testing.T) {
	c := NewClient(filepath.Join(t.TempDir(), "missing.sock"))

	_, err := c.GetVersion()
	assert.ErrorIs(t, err, ErrDaemonNotRunning)
}

func TestClient_Send(t *testing.T) {
	c := serve(t)

	_, err := c.Send(http.MethodDelete, "/version", "")
	assert.Error(t, err)
}
