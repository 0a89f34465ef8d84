package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/battgen/battgen/pkg/descriptor"
	"github.com/battgen/battgen/pkg/pack"
)

func cellRaw() descriptor.Raw {
	return descriptor.FromModule(pack.NewRecCell(0.2, 0.1, 0.1, 2, 0.001, 50, pack.ChemNMC))
}

func TestBatteryRequest_Battery(t *testing.T) {
	req := BatteryRequest{Arrays: []ArrayRequest{
		{Module: cellRaw(), Topology: "5S3P"},
		{Module: cellRaw(), Topology: "5S2P"},
	}}

	b, err := req.Battery()
	require.NoError(t, err)
	assert.Equal(t, pack.Topology{Series: 10, Parallel: 2}, b.Topology())
	assert.Equal(t, DefaultSoC, req.StateOfCharge(DefaultSoC))

	soc := 0.8
	req.SoC = &soc
	assert.Equal(t, 0.8, req.StateOfCharge(DefaultSoC))
}

func TestBatteryRequest_Rejects(t *testing.T) {
	zeroSeries := cellRaw()
	zeroSeries.Series = 0
	shortDims := cellRaw()
	shortDims.Dims = []float64{1}

	tests := []struct {
		name string
		req  BatteryRequest
		msg  string
	}{
		{name: "empty", req: BatteryRequest{}, msg: "at least one module array"},
		{name: "module counts", req: BatteryRequest{Arrays: []ArrayRequest{{Module: zeroSeries, Topology: "1S1P"}}}, msg: "module"},
		{name: "topology counts", req: BatteryRequest{Arrays: []ArrayRequest{{Module: cellRaw(), Topology: "4S0P"}}}, msg: "topology"},
		{name: "dims", req: BatteryRequest{Arrays: []ArrayRequest{{Module: shortDims, Topology: "1S1P"}}}, msg: "dims"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.req.Battery()
			assert.ErrorContains(t, err, tt.msg)
		})
	}
}

func TestBatteryRequest_MalformedTopologyFallsBack(t *testing.T) {
	b, err := BatteryRequest{Arrays: []ArrayRequest{{Module: cellRaw(), Topology: "lots"}}}.Battery()
	require.NoError(t, err)
	assert.Equal(t, pack.Topology{Series: 1, Parallel: 1}, b.Topology())
}

func TestChemistries(t *testing.T) {
	entries := Chemistries()
	require.Len(t, entries, len(pack.Chemistries()))
	assert.Equal(t, pack.ChemNMC, entries[0].Chem)
	assert.Equal(t, 3.7, entries[0].Defaults.VNom)
}
