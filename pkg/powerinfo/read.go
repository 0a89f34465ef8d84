// Package powerinfo reads the batteries of the host machine and maps them
// onto pack modules.
package powerinfo

import (
	"errors"
	"strings"

	"github.com/distatus/battery"
	"github.com/sirupsen/logrus"
)

// ErrNoBattery is returned when the host reports no battery at all.
var ErrNoBattery = errors.New("no batteries found")

// Replaced in tests.
var getAll = battery.GetAll

// Read returns every battery the host reports. Batteries that fail to read
// are skipped as long as at least one succeeds.
func Read() ([]Battery, error) {
	batteries, err := getAll()
	if err != nil && len(batteries) == 0 {
		return nil, err
	}

	var out []Battery
	for i, bat := range batteries {
		if bat == nil {
			logrus.WithField("index", i).Warn("failed to read battery, skipping")
			continue
		}

		b := Battery{
			Index:         i,
			State:         parseState(bat.State.String()),
			Design:        bat.Design,
			Full:          bat.Full,
			Current:       bat.Current,
			ChargeRate:    bat.ChargeRate,
			Voltage:       bat.Voltage,
			DesignVoltage: bat.DesignVoltage,
		}
		if b.State == Discharging {
			b.ChargeRate = -b.ChargeRate
		}
		out = append(out, b)
	}

	if len(out) == 0 {
		return nil, ErrNoBattery
	}
	return out, nil
}

func parseState(s string) BatteryState {
	switch strings.ToLower(s) {
	case "empty":
		return Empty
	case "full":
		return Full
	case "charging":
		return Charging
	case "discharging":
		return Discharging
	case "idle":
		return Idle
	default:
		return Unknown
	}
}
