// Package inspect classifies a probe.Snapshot into severity-tagged
// findings and a scored verdict. Classifiers are pure functions over the
// snapshot, so they are testable without a container or any hardware.
package inspect

import (
	"isoprobe/pkg/model"
	"isoprobe/pkg/probe"
)

// Probe is one entry in the inspection battery: a domain plus the
// classifier deriving its findings from the snapshot. The battery is a
// table rather than control flow, so adding a probe is adding a row.
type Probe struct {
	Domain   model.Domain
	Name     string
	Evaluate func(snap *probe.Snapshot) []model.Finding
}

func DefaultProbes() []Probe {
	return []Probe{
		{model.DomainProcess, "pid-namespace", evaluateProcess},
		{model.DomainFilesystem, "mounts", evaluateFilesystem},
		{model.DomainNetwork, "interfaces", evaluateNetwork},
		{model.DomainCgroup, "limits", evaluateCgroup},
		{model.DomainPrivilege, "capabilities", evaluatePrivilege},
		{model.DomainDevice, "accelerators", evaluateDevice},
		{model.DomainMarker, "container-clues", evaluateMarkers},
	}
}

func finding(d model.Domain, sev model.Severity, msg, evidence string) model.Finding {
	return model.Finding{Domain: d, Severity: sev, Message: msg, Evidence: evidence}
}
