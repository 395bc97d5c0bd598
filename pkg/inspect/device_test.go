package inspect

import (
	"testing"

	"isoprobe/pkg/model"
	"isoprobe/pkg/probe"
)

func TestEvaluateDevice_Present(t *testing.T) {
	snap := &probe.Snapshot{
		Devices: probe.DeviceInfo{
			Nodes:   []string{"/dev/nvidia0", "/dev/nvidia1"},
			GPUName: "NVIDIA A100-SXM4-80GB",
		},
	}

	findings := evaluateDevice(snap)
	if len(findings) != 2 {
		t.Fatalf("expected 2 findings, got %d", len(findings))
	}
	if findings[0].Severity != model.SeverityOK {
		t.Errorf("node severity: got %q, want OK", findings[0].Severity)
	}
	if findings[0].Message != "2 accelerator device node(s)" {
		t.Errorf("node message: got %q", findings[0].Message)
	}
	if findings[1].Evidence != "NVIDIA A100-SXM4-80GB" {
		t.Errorf("gpu evidence: got %q", findings[1].Evidence)
	}
}

func TestEvaluateDevice_None(t *testing.T) {
	snap := &probe.Snapshot{}

	findings := evaluateDevice(snap)
	if len(findings) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(findings))
	}
	if findings[0].Severity != model.SeverityInfo {
		t.Errorf("severity: got %q, want INFO", findings[0].Severity)
	}
}
