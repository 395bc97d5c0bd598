package inspect

import (
	"isoprobe/pkg/model"
	"isoprobe/pkg/probe"
)

type Engine struct {
	probes []Probe
	rules  []ScoreRule
}

func NewEngine(probes []Probe, rules []ScoreRule) *Engine {
	return &Engine{probes: probes, rules: rules}
}

func DefaultEngine() *Engine {
	return NewEngine(DefaultProbes(), DefaultScoreRules())
}

// Inspect runs the full battery over one snapshot. It never fails: every
// classifier converts missing data into an ambiguous finding.
func (e *Engine) Inspect(snap *probe.Snapshot) model.Report {
	var findings []model.Finding
	for _, p := range e.probes {
		findings = append(findings, p.Evaluate(snap)...)
	}

	score := 0
	for _, r := range e.rules {
		if r.Satisfied(snap) {
			score++
		}
	}

	return model.NewReport(findings, score)
}
