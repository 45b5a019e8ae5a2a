package http

import (
	"carbontrack-api/internal/alert"
	"carbontrack-api/internal/model"
)

type checkTotalReq struct {
	UserID    string `json:"userId"`
	UserEmail string `json:"userEmail"`
}

func (req checkTotalReq) toInput() alert.EvaluateInput {
	return alert.EvaluateInput{
		OwnerID:    req.UserID,
		OwnerEmail: req.UserEmail,
	}
}

type adminConfigResp struct {
	FirstThreshold    float64 `json:"firstThreshold"`
	CriticalThreshold float64 `json:"criticalThreshold"`
}

type checkTotalResp struct {
	TotalEmission float64         `json:"totalEmission"`
	FirstFired    bool            `json:"firstFired"`
	CriticalFired bool            `json:"criticalFired"`
	AdminConfig   adminConfigResp `json:"adminConfig"`
}

func newCheckTotalResp(o alert.EvaluateOutput) checkTotalResp {
	return checkTotalResp{
		TotalEmission: o.LifetimeTotal,
		FirstFired:    o.FirstFired,
		CriticalFired: o.CriticalFired,
		AdminConfig: adminConfigResp{
			FirstThreshold:    o.FirstThreshold,
			CriticalThreshold: o.CriticalThreshold,
		},
	}
}

type updateSettingsReq struct {
	Enabled           *bool    `json:"enabled"`
	FirstThreshold    *float64 `json:"firstThreshold"`
	CriticalThreshold *float64 `json:"criticalThreshold"`
}

func (req updateSettingsReq) toInput() alert.UpdateSettingsInput {
	return alert.UpdateSettingsInput{
		Enabled:           req.Enabled,
		FirstThreshold:    req.FirstThreshold,
		CriticalThreshold: req.CriticalThreshold,
	}
}

type settingsResp struct {
	Enabled           bool    `json:"enabled"`
	FirstThreshold    float64 `json:"firstThreshold"`
	CriticalThreshold float64 `json:"criticalThreshold"`
}

func newSettingsResp(cfg model.ThresholdConfig) settingsResp {
	return settingsResp{
		Enabled:           cfg.Enabled,
		FirstThreshold:    cfg.FirstThreshold,
		CriticalThreshold: cfg.CriticalThreshold,
	}
}
