package descriptor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/battgen/battgen/pkg/pack"
)

const leafYAML = `shape: prism
input_type: module
chem: LMO
series: 2
parallel: 2
dims: [0.303, 0.223, 0.035]
mass: 3.8
termination: end
vmin: 5.0
vmax: 8.3
vnom: 7.6
q: 66.2
rnom: 0.0015
max_current_continuous: 130
specific_heat: 1.0
cycle_life: 1000
temp_max: 318
temp_min: 248
`

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestLoad_YAML(t *testing.T) {
	m, err := Load(writeFile(t, "leaf.yaml", leafYAML))
	require.NoError(t, err)

	checks := []struct {
		name string
		got  any
		want any
	}{
		{"shape", m.Shape, pack.ShapePrism},
		{"input_type", m.InputType, pack.ModTypeModule},
		{"chem", m.Chem, pack.ChemLMO},
		{"series", m.Series, 2},
		{"parallel", m.Parallel, 2},
		{"dims", m.Dims, [3]float64{0.303, 0.223, 0.035}},
		{"mass", m.Mass, 3.8},
		{"termination", m.Termination, pack.TermEnd},
		{"vmin", m.VMin, 5.0},
		{"vmax", m.VMax, 8.3},
		{"vnom", m.VNom, 7.6},
		{"q", m.Q, 66.2},
		{"rnom", m.RNom, 0.0015},
		{"max_current_continuous", m.MaxCurrentContinuous, 130.0},
		{"specific_heat", m.SpecificHeat, 1.0},
		{"cycle_life", m.CycleLife, 1000.0},
		{"temp_max", m.TempMax, 318.0},
		{"temp_min", m.TempMin, 248.0},
	}
	for _, c := range checks {
		assert.Equal(t, c.want, c.got, c.name)
	}
}

func TestLoad_JSON(t *testing.T) {
	data := `{
  "shape": "cylinder", "input_type": "cell", "chem": "nmc",
  "series": 1, "parallel": 1, "dims": [0.0211, 0.0707, 0],
  "mass": 0.0688, "termination": "axial",
  "vmin": 2.5, "vmax": 4.2, "vnom": 3.63, "q": 4.85, "rnom": 0.022,
  "max_current_continuous": 7.28, "specific_heat": 1.0, "cycle_life": 500,
  "temp_max": 333, "temp_min": 253
}`
	m, err := Load(writeFile(t, "m50t.json", data))
	require.NoError(t, err)
	assert.Equal(t, pack.ShapeCylinder, m.Shape)
	assert.Equal(t, pack.ModTypeCell, m.InputType)
	assert.Equal(t, pack.ChemNMC, m.Chem)
	assert.Equal(t, pack.TermAxial, m.Termination)
	assert.Equal(t, 4.85, m.Q)
}

func TestLoad_LenientTags(t *testing.T) {
	data := `shape: pouch
input_type: brick
chem: sodium
series: 1
parallel: 1
dims: [0.1, 0.1, 0.01]
mass: 0.5
termination: tab
vmin: 1
vmax: 3
vnom: 2
q: 10
rnom: 0.01
max_current_continuous: 20
specific_heat: 1
cycle_life: 100
temp_max: 300
temp_min: 250
`
	m, err := Load(writeFile(t, "odd.yml", data))
	require.NoError(t, err)
	assert.Equal(t, pack.ShapeOther, m.Shape)
	assert.Equal(t, pack.ModTypeModule, m.InputType)
	assert.Equal(t, pack.ChemOther, m.Chem)
	assert.Equal(t, pack.TermOther, m.Termination)
}

func TestLoad_Failures(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
	t.Run("unsupported extension", func(t *testing.T) {
		_, err := Load(writeFile(t, "leaf.ron", leafYAML))
		assert.ErrorContains(t, err, "unsupported descriptor format")
	})
	t.Run("malformed", func(t *testing.T) {
		_, err := Load(writeFile(t, "bad.yaml", "shape: [unterminated"))
		assert.Error(t, err)
	})
	t.Run("missing field", func(t *testing.T) {
		_, err := Load(writeFile(t, "short.yaml", "shape: prism\nseries: 1\n"))
		assert.ErrorContains(t, err, "missing fields")
		assert.ErrorContains(t, err, "rnom")
	})
	t.Run("wrong dims length", func(t *testing.T) {
		data := strings.Replace(leafYAML, "dims: [0.303, 0.223, 0.035]", "dims: [0.303, 0.223]", 1)
		_, err := Load(writeFile(t, "dims.yaml", data))
		assert.ErrorContains(t, err, "dims must hold exactly 3 values")
	})
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("BATTGEN_CELL_Q", "70.5")
	t.Setenv("BATTGEN_CELL_CHEM", "lfp")

	m, err := Load(writeFile(t, "leaf.yaml", leafYAML))
	require.NoError(t, err)
	assert.Equal(t, 70.5, m.Q)
	assert.Equal(t, pack.ChemLFP, m.Chem)
}

func TestParse(t *testing.T) {
	t.Setenv("BATTGEN_CELL_VNOM", "1.5")

	m, err := Parse([]byte(leafYAML), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, 7.6, m.VNom)

	_, err = Parse([]byte(leafYAML), Format("ron"))
	assert.Error(t, err)
}

func TestFromModule_RoundTrip(t *testing.T) {
	m := pack.NewCylCell(0.021, 0.07, 0.068, 0.02, 0, 5, pack.ChemNCA)
	back, err := FromModule(m).Module()
	require.NoError(t, err)
	assert.Equal(t, m, back)
}
