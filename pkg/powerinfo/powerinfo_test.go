package powerinfo

import (
	"errors"
	"testing"

	"github.com/distatus/battery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/battgen/battgen/pkg/pack"
)

func TestBattery_Module(t *testing.T) {
	b := Battery{Design: 56000, Full: 50400, Current: 25200, DesignVoltage: 11.4}

	m := b.Module()
	assert.Equal(t, pack.ChemOther, m.Chem)
	assert.Equal(t, pack.ShapeOther, m.Shape)
	assert.Equal(t, 11.4, m.VNom)
	assert.InDelta(t, 56000/11.4/1000, m.Q, 1e-12)
	// energy round-trips to the design value in kWh
	assert.InDelta(t, 0.056, m.KWhNominal(), 1e-12)

	assert.InDelta(t, 0.9, b.Health(), 1e-12)
	assert.InDelta(t, 0.5, b.SoC(), 1e-12)
}

func TestBattery_UnknownValues(t *testing.T) {
	var b Battery
	assert.Zero(t, b.Module().Q)
	assert.Zero(t, b.Health())
	assert.Zero(t, b.SoC())
}

func TestRead(t *testing.T) {
	orig := getAll
	t.Cleanup(func() { getAll = orig })

	t.Run("no batteries", func(t *testing.T) {
		getAll = func() ([]*battery.Battery, error) { return nil, nil }
		_, err := Read()
		assert.ErrorIs(t, err, ErrNoBattery)
	})

	t.Run("hard failure", func(t *testing.T) {
		getAll = func() ([]*battery.Battery, error) { return nil, errors.New("boom") }
		_, err := Read()
		assert.EqualError(t, err, "boom")
	})

	t.Run("partial failure", func(t *testing.T) {
		getAll = func() ([]*battery.Battery, error) {
			return []*battery.Battery{nil, {Design: 40000, DesignVoltage: 7.6}}, errors.New("partial")
		}
		bats, err := Read()
		require.NoError(t, err)
		require.Len(t, bats, 1)
		assert.Equal(t, 1, bats[0].Index)
		assert.Equal(t, 40000.0, bats[0].Design)
	})
}

func TestParseState(t *testing.T) {
	assert.Equal(t, Charging, parseState("Charging"))
	assert.Equal(t, Discharging, parseState("discharging"))
	assert.Equal(t, Full, parseState("Full"))
	assert.Equal(t, Unknown, parseState("Undefined"))
}
