package model

const SchemaVersion = "v1"

// Domain identifies which probe family produced a Finding. Domains render
// as fixed report sections, in the order listed here.
type Domain string

const (
	DomainProcess    Domain = "process"
	DomainFilesystem Domain = "filesystem"
	DomainNetwork    Domain = "network"
	DomainCgroup     Domain = "cgroup"
	DomainPrivilege  Domain = "privilege"
	DomainDevice     Domain = "device"
	DomainMarker     Domain = "marker"
)

type Severity string

const (
	SeverityOK   Severity = "OK"
	SeverityWarn Severity = "WARN"
	SeverityInfo Severity = "INFO"
	SeverityErr  Severity = "ERR"
)

// Finding is a single classified observation about the environment.
// Findings are immutable: a probe produces each one exactly once.
type Finding struct {
	Domain   Domain   `json:"domain" yaml:"domain"`
	Severity Severity `json:"severity" yaml:"severity"`
	Message  string   `json:"message" yaml:"message"`
	Evidence string   `json:"evidence,omitempty" yaml:"evidence,omitempty"`
}

type Verdict string

const (
	VerdictLow      Verdict = "Low"
	VerdictModerate Verdict = "Moderate"
	VerdictStrong   Verdict = "Strong"
)

// MaxScore is the number of independent score rules.
const MaxScore = 7

// VerdictFor maps a score to its tier: 0-2 Low, 3-4 Moderate, 5-7 Strong.
func VerdictFor(score int) Verdict {
	switch {
	case score >= 5:
		return VerdictStrong
	case score >= 3:
		return VerdictModerate
	default:
		return VerdictLow
	}
}

// Report is the product of one inspection run. It is built fresh per
// invocation and never persisted.
type Report struct {
	SchemaVersion string    `json:"schemaVersion" yaml:"schemaVersion"`
	Findings      []Finding `json:"findings" yaml:"findings"`
	Score         int       `json:"score" yaml:"score"`
	MaxScore      int       `json:"maxScore" yaml:"maxScore"`
	Verdict       Verdict   `json:"verdict" yaml:"verdict"`
}

func NewReport(findings []Finding, score int) Report {
	return Report{
		SchemaVersion: SchemaVersion,
		Findings:      findings,
		Score:         score,
		MaxScore:      MaxScore,
		Verdict:       VerdictFor(score),
	}
}

// ForDomain returns the findings belonging to one domain, in report order.
func (r Report) ForDomain(d Domain) []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if f.Domain == d {
			out = append(out, f)
		}
	}
	return out
}
