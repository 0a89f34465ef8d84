package client

import (
	"encoding/json"
	"net/url"
	"strconv"

	pkgerrors "github.com/pkg/errors"

	"github.com/battgen/battgen/pkg/descriptor"
	"github.com/battgen/battgen/pkg/pack"
	"github.com/battgen/battgen/pkg/powerinfo"
	"github.com/battgen/battgen/pkg/types"
)

func (c *Client) GetVersion() (string, error) {
	ret, err := c.Get("/version")
	if err != nil {
		return "", pkgerrors.Wrapf(err, "failed to get version")
	}

	var v string
	if err := json.Unmarshal([]byte(ret), &v); err != nil {
		return "", pkgerrors.Wrapf(err, "failed to unmarshal version")
	}
	return v, nil
}

func (c *Client) GetChemistries() ([]types.ChemistryEntry, error) {
	ret, err := c.Get("/chemistries")
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to get chemistries")
	}

	var entries []types.ChemistryEntry
	if err := json.Unmarshal([]byte(ret), &entries); err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to unmarshal chemistries")
	}
	return entries, nil
}

func (c *Client) GetChemistry(name string) (*types.ChemistryEntry, error) {
	ret, err := c.Get("/chemistries/" + url.PathEscape(name))
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to get chemistry %s", name)
	}

	var entry types.ChemistryEntry
	if err := json.Unmarshal([]byte(ret), &entry); err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to unmarshal chemistry")
	}
	return &entry, nil
}

// EvaluateModule asks the daemon for the derived quantities of one module.
func (c *Client) EvaluateModule(raw descriptor.Raw, soc float64) (*pack.ModuleSummary, error) {
	payload, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}

	ret, err := c.Post("/module?soc="+strconv.FormatFloat(soc, 'f', -1, 64), string(payload))
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to evaluate module")
	}

	var s pack.ModuleSummary
	if err := json.Unmarshal([]byte(ret), &s); err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to unmarshal module summary")
	}
	return &s, nil
}

// EvaluateBattery asks the daemon to assemble and evaluate a battery.
func (c *Client) EvaluateBattery(req types.BatteryRequest) (*pack.Summary, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	ret, err := c.Post("/battery", string(payload))
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to evaluate battery")
	}

	var s pack.Summary
	if err := json.Unmarshal([]byte(ret), &s); err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to unmarshal battery summary")
	}
	return &s, nil
}

func (c *Client) GetHostBattery() ([]powerinfo.Battery, error) {
	ret, err := c.Get("/host-battery")
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to get host battery")
	}

	var bats []powerinfo.Battery
	if err := json.Unmarshal([]byte(ret), &bats); err != nil {
		return nil, pkgerrors.Wrapf(err, "failed to unmarshal host battery")
	}
	return bats, nil
}
