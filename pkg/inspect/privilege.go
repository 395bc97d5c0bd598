package inspect

import (
	"fmt"

	"isoprobe/pkg/model"
	"isoprobe/pkg/probe"
)

func evaluatePrivilege(snap *probe.Snapshot) []model.Finding {
	priv := snap.Privilege
	var out []model.Finding

	if priv.EUID == 0 {
		out = append(out, finding(model.DomainPrivilege, model.SeverityWarn,
			"running as root (euid 0)", ""))
	} else {
		out = append(out, finding(model.DomainPrivilege, model.SeverityOK,
			fmt.Sprintf("running as uid %d", priv.EUID), ""))
	}

	if priv.CapEff != "" {
		evidence := priv.CapEff
		if priv.CapDecoded != "" {
			evidence = priv.CapDecoded
		}
		out = append(out, finding(model.DomainPrivilege, model.SeverityInfo,
			"effective capability set", evidence))
	} else {
		out = append(out, finding(model.DomainPrivilege, model.SeverityInfo,
			"capability set not readable", ""))
	}

	return out
}
