package descriptor

import (
	pkgerrors "github.com/pkg/errors"

	"github.com/battgen/battgen/pkg/pack"
)

// Raw is a cell or module descriptor as written on disk. Categorical fields
// are free-form strings and are decoded leniently by Module.
type Raw struct {
	Shape                string    `json:"shape"`
	InputType            string    `json:"input_type"`
	Chem                 string    `json:"chem"`
	Series               int       `json:"series"`
	Parallel             int       `json:"parallel"`
	Dims                 []float64 `json:"dims"`
	Mass                 float64   `json:"mass"`
	Termination          string    `json:"termination"`
	VMin                 float64   `json:"vmin"`
	VMax                 float64   `json:"vmax"`
	VNom                 float64   `json:"vnom"`
	Q                    float64   `json:"q"`
	RNom                 float64   `json:"rnom"`
	MaxCurrentContinuous float64   `json:"max_current_continuous"`
	SpecificHeat         float64   `json:"specific_heat"`
	CycleLife            float64   `json:"cycle_life"`
	TempMax              float64   `json:"temp_max"`
	TempMin              float64   `json:"temp_min"`
}

// Keys lists every key a descriptor must define.
var Keys = []string{
	"shape", "input_type", "chem", "series", "parallel", "dims", "mass",
	"termination", "vmin", "vmax", "vnom", "q", "rnom",
	"max_current_continuous", "specific_heat", "cycle_life", "temp_max",
	"temp_min",
}

// Module converts the descriptor into a pack.Module. Unknown tag values fall
// back to a default variant; only a dims list that is not three numbers long
// is rejected.
func (r Raw) Module() (pack.Module, error) {
	if len(r.Dims) != 3 {
		return pack.Module{}, pkgerrors.Errorf("dims must hold exactly 3 values, got %d", len(r.Dims))
	}

	return pack.Module{
		Shape:                pack.ParseShape(r.Shape),
		InputType:            pack.ParseModType(r.InputType),
		Chem:                 pack.ParseChem(r.Chem),
		Series:               r.Series,
		Parallel:             r.Parallel,
		Dims:                 [3]float64{r.Dims[0], r.Dims[1], r.Dims[2]},
		Mass:                 r.Mass,
		Termination:          pack.ParseTerm(r.Termination),
		VMin:                 r.VMin,
		VMax:                 r.VMax,
		VNom:                 r.VNom,
		Q:                    r.Q,
		RNom:                 r.RNom,
		MaxCurrentContinuous: r.MaxCurrentContinuous,
		SpecificHeat:         r.SpecificHeat,
		CycleLife:            r.CycleLife,
		TempMax:              r.TempMax,
		TempMin:              r.TempMin,
	}, nil
}

// FromModule builds the descriptor of m, e.g. to send it to a daemon.
func FromModule(m pack.Module) Raw {
	return Raw{
		Shape:                m.Shape.String(),
		InputType:            m.InputType.String(),
		Chem:                 m.Chem.String(),
		Series:               m.Series,
		Parallel:             m.Parallel,
		Dims:                 []float64{m.Dims[0], m.Dims[1], m.Dims[2]},
		Mass:                 m.Mass,
		Termination:          m.Termination.String(),
		VMin:                 m.VMin,
		VMax:                 m.VMax,
		VNom:                 m.VNom,
		Q:                    m.Q,
		RNom:                 m.RNom,
		MaxCurrentContinuous: m.MaxCurrentContinuous,
		SpecificHeat:         m.SpecificHeat,
		CycleLife:            m.CycleLife,
		TempMax:              m.TempMax,
		TempMin:              m.TempMin,
	}
}
