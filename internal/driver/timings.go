package driver

import (
	"encoding/json"
	"fmt"

	"ctruct/internal/diag"
	"ctruct/internal/observ"
	"ctruct/internal/source"
)

type timingPayload struct {
	Kind    string               `json:"kind"`
	Path    string               `json:"path,omitempty"`
	TotalMS float64              `json:"total_ms"`
	Phases  []observ.PhaseReport `json:"phases"`
}

// AppendTimingDiagnostic кладёт отчёт таймера в bag как OBS6001 (info).
// JSON-нагрузка лежит в единственной заметке. Переполненный bag считает её отброшенной.
func AppendTimingDiagnostic(bag *diag.Bag, kind, path string, report observ.Report) {
	if bag == nil {
		return
	}
	payload := timingPayload{Kind: kind, Path: path, TotalMS: report.TotalMS, Phases: report.Phases}
	if payload.Kind == "" {
		payload.Kind = "tokenize"
	}
	msg := fmt.Sprintf("timings (%s): total %.2f ms", payload.Kind, payload.TotalMS)
	if payload.Path != "" {
		msg = fmt.Sprintf("%s, %s", msg, payload.Path)
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return
	}

	entry := diag.New(diag.SevInfo, diag.ObsTimings, source.Span{}, msg).
		WithNote(source.Span{}, string(data))

	bag.Add(entry)
}
