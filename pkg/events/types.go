package events

import (
	"encoding/json"

	"github.com/battgen/battgen/pkg/pack"
)

// Event names.
const (
	ModuleEvaluated  = "module.evaluated"
	BatteryEvaluated = "battery.evaluated"
)

// Event is one server-sent event from the daemon.
type Event struct {
	Name string          // SSE event name
	Data json.RawMessage // JSON payload
}

// EvaluatedEvent is the payload of ModuleEvaluated and BatteryEvaluated.
type EvaluatedEvent struct {
	Topology   pack.Topology `json:"topology"`
	Voltage    float64       `json:"voltage"`
	Ah         float64       `json:"ah"`
	KWhNominal float64       `json:"kwhNominal"`
	SoC        float64       `json:"soc"`
	Ts         int64         `json:"ts"`
}

// DecodeAs unmarshals the payload of e into T. Empty payloads give the zero
// value of T.
func DecodeAs[T any](e Event) (T, error) {
	var zero T
	if len(e.Data) == 0 {
		return zero, nil
	}
	var v T
	if err := json.Unmarshal(e.Data, &v); err != nil {
		return zero, err
	}
	return v, nil
}
