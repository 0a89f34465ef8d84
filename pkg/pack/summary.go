package pack

// ModuleSummary is a snapshot of the derived quantities of a Module.
type ModuleSummary struct {
	Module          Module   `json:"module"`
	Topology        Topology `json:"topology"`
	Voltage         float64  `json:"voltage"`
	Ah              float64  `json:"ah"`
	KWhNominal      float64  `json:"kwhNominal"`
	CellCount       int      `json:"cellCount"`
	Volume          float64  `json:"volume"`
	MinVolumePacked float64  `json:"minVolumePacked"`
	MassKg          float64  `json:"massKg"`
	IRDC            float64  `json:"irDC"`
}

// ArraySummary is a snapshot of the derived quantities of a ModuleArray.
type ArraySummary struct {
	Module      ModuleSummary `json:"module"`
	Arrangement Topology      `json:"arrangement"`
	Topology    Topology      `json:"topology"`
	Voltage     float64       `json:"voltage"`
	Ah          float64       `json:"ah"`
	KWhNominal  float64       `json:"kwhNominal"`
	ModuleCount int           `json:"moduleCount"`
	CellCount   int           `json:"cellCount"`
	IRDC        float64       `json:"irDC"`
}

// Summary is a snapshot of the derived quantities of a Battery, evaluated at
// one state of charge.
type Summary struct {
	SoC             float64        `json:"soc"`
	Topology        Topology       `json:"topology"`
	Voltage         float64        `json:"voltage"`
	Ah              float64        `json:"ah"`
	KWhNominal      float64        `json:"kwhNominal"`
	ModuleCount     int            `json:"moduleCount"`
	CellCount       int            `json:"cellCount"`
	MinVolumePacked float64        `json:"minVolumePacked"`
	IRDC            float64        `json:"irDC"`
	Arrays          []ArraySummary `json:"arrays"`
}

// SummarizeModule evaluates every derived quantity of m.
func SummarizeModule(m Module, soc float64) ModuleSummary {
	return ModuleSummary{
		Module:          m,
		Topology:        Topology{Series: m.Series, Parallel: m.Parallel},
		Voltage:         m.Voltage(),
		Ah:              m.Ah(),
		KWhNominal:      m.KWhNominal(),
		CellCount:       m.CellCount(),
		Volume:          m.Volume(),
		MinVolumePacked: m.MinVolumePacked(),
		MassKg:          m.MassKg(),
		IRDC:            m.IRDC(soc),
	}
}

// Summarize evaluates every derived quantity of b and of its arrays.
func Summarize(b *Battery, soc float64) Summary {
	s := Summary{
		SoC:             soc,
		Topology:        b.Topology(),
		Voltage:         b.Voltage(),
		Ah:              b.Ah(),
		KWhNominal:      b.KWhNominal(),
		ModuleCount:     b.ModuleCount(),
		CellCount:       b.CellCount(),
		MinVolumePacked: b.MinVolumePacked(),
		IRDC:            b.IRDC(soc),
		Arrays:          make([]ArraySummary, 0, len(b.Arrays)),
	}
	for _, a := range b.Arrays {
		s.Arrays = append(s.Arrays, ArraySummary{
			Module:      SummarizeModule(a.Module, soc),
			Arrangement: Topology{Series: a.Series, Parallel: a.Parallel},
			Topology:    a.Topology(),
			Voltage:     a.Voltage(),
			Ah:          a.Ah(),
			KWhNominal:  a.KWhNominal(),
			ModuleCount: a.ModuleCount(),
			CellCount:   a.CellCount(),
			IRDC:        a.IRDC(soc),
		})
	}
	return s
}
