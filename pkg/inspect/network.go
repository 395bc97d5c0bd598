package inspect

import (
	"fmt"
	"strings"

	"isoprobe/pkg/model"
	"isoprobe/pkg/probe"
)

func evaluateNetwork(snap *probe.Snapshot) []model.Finding {
	net := snap.Network
	var out []model.Finding

	if n := len(net.Interfaces); n > 0 {
		out = append(out, finding(model.DomainNetwork, model.SeverityOK,
			fmt.Sprintf("%d non-loopback IPv4 interface(s)", n),
			strings.Join(net.Interfaces, ", ")))
	} else {
		out = append(out, finding(model.DomainNetwork, model.SeverityWarn,
			"no non-loopback IPv4 interfaces", ""))
	}

	if net.DefaultRoute != "" {
		out = append(out, finding(model.DomainNetwork, model.SeverityInfo,
			"default route present", net.DefaultRoute))
	} else {
		out = append(out, finding(model.DomainNetwork, model.SeverityInfo,
			"no default route", ""))
	}

	return out
}
