package inspect

import (
	"testing"

	"isoprobe/pkg/model"
	"isoprobe/pkg/probe"
)

func TestEvaluateCgroup_V2Limited(t *testing.T) {
	snap := &probe.Snapshot{
		Cgroup: probe.CgroupInfo{
			Version:     2,
			Path:        "/kubepods/burstable/pod1234",
			MemoryLimit: "8589934592",
			CPUQuota:    "400000",
			CPUPeriod:   "100000",
			PidsLimit:   "4096",
		},
	}

	findings := evaluateCgroup(snap)

	if f := findByMessage(t, findings, "cgroup v2"); f.Severity != model.SeverityInfo {
		t.Errorf("version severity: got %q, want INFO", f.Severity)
	}
	if f := findByMessage(t, findings, "memory limit set"); f.Severity != model.SeverityOK {
		t.Errorf("memory severity: got %q, want OK", f.Severity)
	}
	if f := findByMessage(t, findings, "cpu quota set"); f.Evidence != "400000/100000" {
		t.Errorf("cpu evidence: got %q, want %q", f.Evidence, "400000/100000")
	}
	if f := findByMessage(t, findings, "pid limit set"); f.Evidence != "4096" {
		t.Errorf("pids evidence: got %q, want %q", f.Evidence, "4096")
	}
}

func TestEvaluateCgroup_V2Unlimited(t *testing.T) {
	snap := &probe.Snapshot{
		Cgroup: probe.CgroupInfo{
			Version:     2,
			MemoryLimit: "max",
			CPUQuota:    "max",
			PidsLimit:   "max",
		},
	}

	findings := evaluateCgroup(snap)

	if f := findByMessage(t, findings, "no memory limit"); f.Severity != model.SeverityWarn {
		t.Errorf("memory severity: got %q, want WARN", f.Severity)
	}
	if f := findByMessage(t, findings, "no cpu quota"); f.Severity != model.SeverityInfo {
		t.Errorf("cpu severity: got %q, want INFO", f.Severity)
	}
	if f := findByMessage(t, findings, "no pid limit"); f.Severity != model.SeverityInfo {
		t.Errorf("pids severity: got %q, want INFO", f.Severity)
	}
}

func TestEvaluateCgroup_V1NoLimitSentinel(t *testing.T) {
	snap := &probe.Snapshot{
		Cgroup: probe.CgroupInfo{
			Version:     1,
			MemoryLimit: "9223372036854771712",
			CPUQuota:    "-1",
		},
	}

	findings := evaluateCgroup(snap)

	if f := findByMessage(t, findings, "no memory limit"); f.Severity != model.SeverityWarn {
		t.Errorf("memory severity: got %q, want WARN", f.Severity)
	}
	if f := findByMessage(t, findings, "no cpu quota"); f.Severity != model.SeverityInfo {
		t.Errorf("cpu severity: got %q, want INFO", f.Severity)
	}
}

func TestEvaluateCgroup_UnreadableLimits(t *testing.T) {
	snap := &probe.Snapshot{Cgroup: probe.CgroupInfo{Version: 1}}

	findings := evaluateCgroup(snap)

	for _, msg := range []string{"memory limit not readable", "cpu quota not readable", "pid limit not readable"} {
		if f := findByMessage(t, findings, msg); f.Severity != model.SeverityInfo {
			t.Errorf("%s: got %q, want INFO", msg, f.Severity)
		}
	}
}

func TestMemoryUnlimited(t *testing.T) {
	cases := []struct {
		raw  string
		want bool
	}{
		{"max", true},
		{"9223372036854771712", true},
		{"8589934592", false},
		{"garbage", false},
	}
	for _, tc := range cases {
		if got := memoryUnlimited(tc.raw); got != tc.want {
			t.Errorf("memoryUnlimited(%q): got %v, want %v", tc.raw, got, tc.want)
		}
	}
}
