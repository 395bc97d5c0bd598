package inspect

import (
	"strings"
	"testing"

	"isoprobe/pkg/model"
	"isoprobe/pkg/probe"
)

func TestRuntimeHints(t *testing.T) {
	cases := []struct {
		path string
		want []string
	}{
		{"/kubepods/burstable/pod1/abcd", []string{"kubepods"}},
		{"/docker/abcdef012345", []string{"docker"}},
		{"/system.slice/containerd.service", []string{"containerd"}},
		{"/user.slice", nil},
		{"", nil},
	}
	for _, tc := range cases {
		got := runtimeHints(tc.path)
		if len(got) != len(tc.want) {
			t.Errorf("runtimeHints(%q): got %v, want %v", tc.path, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("runtimeHints(%q): got %v, want %v", tc.path, got, tc.want)
			}
		}
	}
}

func TestEvaluateMarkers_Clues(t *testing.T) {
	snap := &probe.Snapshot{
		Cgroup:  probe.CgroupInfo{Path: "/kubepods/pod1"},
		Markers: probe.MarkerInfo{DockerEnv: true, KubernetesEnv: true},
	}

	findings := evaluateMarkers(snap)
	if len(findings) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(findings))
	}
	f := findings[0]
	if f.Severity != model.SeverityOK {
		t.Errorf("severity: got %q, want OK", f.Severity)
	}
	for _, clue := range []string{"/.dockerenv", "KUBERNETES_* env", "cgroup:kubepods"} {
		if !strings.Contains(f.Evidence, clue) {
			t.Errorf("evidence %q missing clue %q", f.Evidence, clue)
		}
	}
}

func TestEvaluateMarkers_NoClues(t *testing.T) {
	snap := &probe.Snapshot{}

	findings := evaluateMarkers(snap)
	if len(findings) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(findings))
	}
	if findings[0].Severity != model.SeverityInfo {
		t.Errorf("severity: got %q, want INFO", findings[0].Severity)
	}
	if !strings.Contains(findings[0].Message, "no strong container markers") {
		t.Errorf("message: got %q", findings[0].Message)
	}
}
