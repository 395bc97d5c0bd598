package inspect

import (
	"testing"

	"isoprobe/pkg/model"
	"isoprobe/pkg/probe"
)

func TestEvaluatePrivilege_Root(t *testing.T) {
	snap := &probe.Snapshot{
		Privilege: probe.PrivilegeInfo{EUID: 0, CapEff: "000001ffffffffff"},
	}

	findings := evaluatePrivilege(snap)

	if f := findByMessage(t, findings, "running as root"); f.Severity != model.SeverityWarn {
		t.Errorf("root severity: got %q, want WARN", f.Severity)
	}
	if f := findByMessage(t, findings, "effective capability set"); f.Evidence != "000001ffffffffff" {
		t.Errorf("cap evidence: got %q", f.Evidence)
	}
}

func TestEvaluatePrivilege_NonRoot(t *testing.T) {
	snap := &probe.Snapshot{
		Privilege: probe.PrivilegeInfo{EUID: 1000},
	}

	findings := evaluatePrivilege(snap)

	if f := findByMessage(t, findings, "running as uid 1000"); f.Severity != model.SeverityOK {
		t.Errorf("uid severity: got %q, want OK", f.Severity)
	}
	if f := findByMessage(t, findings, "capability set not readable"); f.Severity != model.SeverityInfo {
		t.Errorf("cap severity: got %q, want INFO", f.Severity)
	}
}

func TestEvaluatePrivilege_DecodedCaps(t *testing.T) {
	snap := &probe.Snapshot{
		Privilege: probe.PrivilegeInfo{
			EUID:       1000,
			CapEff:     "00000000a80425fb",
			CapDecoded: "cap_chown,cap_dac_override",
		},
	}

	f := findByMessage(t, evaluatePrivilege(snap), "effective capability set")
	if f.Evidence != "cap_chown,cap_dac_override" {
		t.Errorf("decoded evidence preferred: got %q", f.Evidence)
	}
}
