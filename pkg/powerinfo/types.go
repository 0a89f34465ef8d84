package powerinfo

import (
	"github.com/battgen/battgen/pkg/pack"
)

// BatteryState represents the charging state of a host battery.
type BatteryState string

const (
	Unknown     BatteryState = "unknown"
	Empty       BatteryState = "empty"
	Full        BatteryState = "full"
	Charging    BatteryState = "charging"
	Discharging BatteryState = "discharging"
	Idle        BatteryState = "idle"
)

// Battery is a host battery as reported by the operating system.
// Units:
// - Design, Full, Current: mWh
// - ChargeRate: mW (negative when discharging)
// - Voltage, DesignVoltage: V
type Battery struct {
	Index         int          `json:"index"`
	State         BatteryState `json:"state"`
	Design        float64      `json:"design"`
	Full          float64      `json:"full"`
	Current       float64      `json:"current"`
	ChargeRate    float64      `json:"chargeRate"`
	Voltage       float64      `json:"voltage"`
	DesignVoltage float64      `json:"designVoltage"`
}

// Health returns full over design capacity, or 0 if the design capacity is
// unknown.
func (b Battery) Health() float64 {
	if b.Design <= 0 {
		return 0
	}
	return b.Full / b.Design
}

// SoC returns the current state of charge, or 0 if the full capacity is
// unknown.
func (b Battery) SoC() float64 {
	if b.Full <= 0 {
		return 0
	}
	return b.Current / b.Full
}

// Module describes the host battery as a single pack module. The OS reports
// neither chemistry nor geometry, so those stay at their Other variants.
func (b Battery) Module() pack.Module {
	var q float64
	if b.DesignVoltage > 0 {
		// mWh / V = mAh
		q = b.Design / b.DesignVoltage / 1000
	}

	return pack.Module{
		Shape:       pack.ShapeOther,
		InputType:   pack.ModTypeModule,
		Chem:        pack.ChemOther,
		Series:      1,
		Parallel:    1,
		Termination: pack.TermOther,
		VMin:        b.DesignVoltage,
		VMax:        b.DesignVoltage,
		VNom:        b.DesignVoltage,
		Q:           q,
	}
}
