package inspect

import (
	"testing"

	"isoprobe/pkg/model"
	"isoprobe/pkg/probe"
)

func TestEvaluateNetwork_WithInterfaces(t *testing.T) {
	snap := &probe.Snapshot{
		Network: probe.NetworkInfo{
			Interfaces:   []string{"eth0 10.244.1.7"},
			DefaultRoute: "via 10.244.1.1 dev eth0",
		},
	}

	findings := evaluateNetwork(snap)
	if len(findings) != 2 {
		t.Fatalf("expected 2 findings, got %d", len(findings))
	}
	if findings[0].Severity != model.SeverityOK {
		t.Errorf("interface severity: got %q, want OK", findings[0].Severity)
	}
	if findings[1].Severity != model.SeverityInfo {
		t.Errorf("route severity: got %q, want INFO", findings[1].Severity)
	}
	if findings[1].Evidence != "via 10.244.1.1 dev eth0" {
		t.Errorf("route evidence: got %q", findings[1].Evidence)
	}
}

func TestEvaluateNetwork_NoInterfaces(t *testing.T) {
	snap := &probe.Snapshot{}

	findings := evaluateNetwork(snap)
	if len(findings) != 2 {
		t.Fatalf("expected 2 findings, got %d", len(findings))
	}
	if findings[0].Severity != model.SeverityWarn {
		t.Errorf("interface severity: got %q, want WARN", findings[0].Severity)
	}
}
