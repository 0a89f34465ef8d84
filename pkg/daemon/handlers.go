package daemon

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/battgen/battgen/pkg/descriptor"
	"github.com/battgen/battgen/pkg/events"
	"github.com/battgen/battgen/pkg/pack"
	"github.com/battgen/battgen/pkg/powerinfo"
	"github.com/battgen/battgen/pkg/types"
	"github.com/battgen/battgen/pkg/version"
)

// readHostBattery is swapped out in tests.
var readHostBattery = powerinfo.Read

func abort(c *gin.Context, code int, err error) {
	c.IndentedJSON(code, err.Error())
	_ = c.AbortWithError(code, err)
}

func getVersion(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, version.Version)
}

func getChemistries(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, types.Chemistries())
}

func getChemistry(c *gin.Context) {
	name := c.Param("chem")
	chem := pack.ParseChem(name)
	if chem == pack.ChemOther && !strings.EqualFold(name, pack.ChemOther.String()) {
		abort(c, http.StatusNotFound, fmt.Errorf("unknown chemistry %q", name))
		return
	}

	c.IndentedJSON(http.StatusOK, types.ChemistryEntry{Chem: chem, Defaults: pack.DefaultsFromChem(chem)})
}

func (s *server) evaluateModule(c *gin.Context) {
	var raw descriptor.Raw
	if err := c.BindJSON(&raw); err != nil {
		abort(c, http.StatusBadRequest, err)
		return
	}

	b, err := types.BatteryRequest{Arrays: []types.ArrayRequest{{Module: raw, Topology: "1S1P"}}}.Battery()
	if err != nil {
		abort(c, http.StatusBadRequest, err)
		return
	}

	soc := s.conf.DefaultSoC()
	if err := bindSoC(c, &soc); err != nil {
		abort(c, http.StatusBadRequest, err)
		return
	}

	m := b.Arrays[0].Module
	for _, w := range descriptor.Check(m) {
		logrus.WithError(w).Warn("implausible module posted")
	}

	sum := pack.SummarizeModule(m, soc)
	s.hub.Publish(events.ModuleEvaluated, events.EvaluatedEvent{
		Topology:   sum.Topology,
		Voltage:    sum.Voltage,
		Ah:         sum.Ah,
		KWhNominal: sum.KWhNominal,
		SoC:        soc,
		Ts:         time.Now().Unix(),
	})

	c.IndentedJSON(http.StatusOK, sum)
}

func (s *server) evaluateBattery(c *gin.Context) {
	var req types.BatteryRequest
	if err := c.BindJSON(&req); err != nil {
		abort(c, http.StatusBadRequest, err)
		return
	}

	soc := req.StateOfCharge(s.conf.DefaultSoC())
	if soc < 0 || soc > 1 {
		abort(c, http.StatusBadRequest, fmt.Errorf("soc must be between 0 and 1, got %v", soc))
		return
	}

	b, err := req.Battery()
	if err != nil {
		abort(c, http.StatusBadRequest, err)
		return
	}

	logrus.WithFields(logrus.Fields{
		"arrays":   len(b.Arrays),
		"topology": b.Topology().String(),
	}).Debug("evaluating battery")

	sum := pack.Summarize(b, soc)
	s.hub.Publish(events.BatteryEvaluated, events.EvaluatedEvent{
		Topology:   sum.Topology,
		Voltage:    sum.Voltage,
		Ah:         sum.Ah,
		KWhNominal: sum.KWhNominal,
		SoC:        soc,
		Ts:         time.Now().Unix(),
	})

	c.IndentedJSON(http.StatusOK, sum)
}

func getHostBattery(c *gin.Context) {
	bats, err := readHostBattery()
	if err != nil {
		abort(c, http.StatusInternalServerError, err)
		return
	}

	c.IndentedJSON(http.StatusOK, bats)
}

// streamEvents sends every evaluation as a server-sent event until the
// client goes away.
func (s *server) streamEvents(c *gin.Context) {
	ch := s.hub.Subscribe()
	defer s.hub.Unsubscribe(ch)

	c.Header("Cache-Control", "no-cache")
	c.Stream(func(_ io.Writer) bool {
		select {
		case <-c.Request.Context().Done():
			return false
		case ev, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent(ev.Name, ev.Data)
			return true
		}
	})
}

type socQuery struct {
	SoC *float64 `form:"soc" binding:"omitempty,gte=0,lte=1"`
}

func bindSoC(c *gin.Context, soc *float64) error {
	var q socQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return err
	}
	if q.SoC != nil {
		*soc = *q.SoC
	}
	return nil
}
