package pack

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	cell := prismCell()
	b := NewBatteryFrom(cell, 96, 1)

	s := Summarize(b, 0.5)
	assert.Equal(t, 0.5, s.SoC)
	assert.Equal(t, b.Topology(), s.Topology)
	assert.Equal(t, b.Voltage(), s.Voltage)
	assert.Equal(t, b.Ah(), s.Ah)
	assert.Equal(t, b.KWhNominal(), s.KWhNominal)
	assert.Equal(t, b.MinVolumePacked(), s.MinVolumePacked)
	assert.Equal(t, b.IRDC(0.5), s.IRDC)

	require.Len(t, s.Arrays, 1)
	a := s.Arrays[0]
	assert.Equal(t, Topology{Series: 96, Parallel: 1}, a.Arrangement)
	assert.Equal(t, 96, a.CellCount)
	assert.Equal(t, cell.Volume(), a.Module.Volume)
	assert.Equal(t, cell.IRDC(0.5), a.Module.IRDC)

	_, err := json.Marshal(s)
	assert.NoError(t, err)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(NewBattery(), 0.5)
	assert.NotNil(t, s.Arrays)
	assert.Empty(t, s.Arrays)
}
