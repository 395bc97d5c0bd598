package inspect

import (
	"fmt"
	"strings"

	"isoprobe/pkg/model"
	"isoprobe/pkg/probe"
)

func evaluateDevice(snap *probe.Snapshot) []model.Finding {
	dev := snap.Devices

	if len(dev.Nodes) == 0 {
		return []model.Finding{finding(model.DomainDevice, model.SeverityInfo,
			"no accelerator device nodes found", "")}
	}

	out := []model.Finding{finding(model.DomainDevice, model.SeverityOK,
		fmt.Sprintf("%d accelerator device node(s)", len(dev.Nodes)),
		strings.Join(dev.Nodes, ", "))}
	if dev.GPUName != "" {
		out = append(out, finding(model.DomainDevice, model.SeverityInfo,
			"first GPU", dev.GPUName))
	}
	return out
}
