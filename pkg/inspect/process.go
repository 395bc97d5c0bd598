package inspect

import (
	"fmt"

	"isoprobe/pkg/model"
	"isoprobe/pkg/probe"
)

func evaluateProcess(snap *probe.Snapshot) []model.Finding {
	ns := snap.Namespaces

	if ns.Self == 0 || ns.Init == 0 {
		return []model.Finding{finding(model.DomainProcess, model.SeverityWarn,
			"pid namespace of pid 1 unreadable; isolation ambiguous", "")}
	}

	if ns.Self == ns.Init {
		return []model.Finding{finding(model.DomainProcess, model.SeverityOK,
			"pid 1 shares our pid namespace; dedicated pid namespace in use",
			fmt.Sprintf("inode %d", ns.Self))}
	}

	return []model.Finding{finding(model.DomainProcess, model.SeverityWarn,
		"pid 1 lives in a different pid namespace; isolation ambiguous",
		fmt.Sprintf("self %d, pid 1 %d", ns.Self, ns.Init))}
}
