package pack

import (
	"fmt"
	"strconv"
	"strings"
)

// Topology is a (series, parallel) cell count pair.
type Topology struct {
	Series   int `json:"series"`
	Parallel int `json:"parallel"`
}

func (t Topology) String() string {
	return fmt.Sprintf("%dS%dP", t.Series, t.Parallel)
}

// Cells returns Series * Parallel.
func (t Topology) Cells() int {
	return t.Series * t.Parallel
}

// ParseTopology reads a topology written as "<series>S<parallel>P".
// Any component that cannot be parsed falls back to 1, so malformed input
// yields 1S1P instead of an error. Only the text between the first and
// second "S" is read for the parallel count.
func ParseTopology(s string) Topology {
	t := Topology{Series: 1, Parallel: 1}

	parts := strings.Split(s, "S")
	if n, err := strconv.Atoi(parts[0]); err == nil {
		t.Series = n
	}
	if len(parts) < 2 {
		return t
	}

	p, _, _ := strings.Cut(parts[1], "P")
	if n, err := strconv.Atoi(p); err == nil {
		t.Parallel = n
	}

	return t
}
