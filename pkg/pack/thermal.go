package pack

// Coolant holds the static properties of a coolant that matter to thermal
// design.
type Coolant struct {
	Density       float64 `json:"density"`
	SpecificHeat  float64 `json:"specificHeat"`
	FreezingPoint float64 `json:"freezingPoint"`
	BoilingPoint  float64 `json:"boilingPoint"`
	Flammable     bool    `json:"flammable"`
	Conductive    bool    `json:"conductive"`
}

// CoolantMix is a blend of coolants, e.g. 50% ethylene glycol and 50% water.
// Fractions[i] belongs to Coolants[i].
type CoolantMix struct {
	Coolants  []Coolant `json:"coolants"`
	Fractions []float64 `json:"fractions"`
}

// ThermalParams are the general properties of a thermal management system.
type ThermalParams struct {
	Coolant  Coolant `json:"coolant"`
	FlowRate float64 `json:"flowRate"`
	HeatK    float64 `json:"heatK"`
}
