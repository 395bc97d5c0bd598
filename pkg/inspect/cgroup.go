package inspect

import (
	"fmt"
	"strconv"

	"isoprobe/pkg/model"
	"isoprobe/pkg/probe"
)

// v1NoLimit is the value memory.limit_in_bytes reports when no limit is
// set (PAGE_SIZE-rounded max int64). Anything at or above it is treated
// as unlimited.
const v1NoLimit = int64(1) << 62

func evaluateCgroup(snap *probe.Snapshot) []model.Finding {
	cg := snap.Cgroup
	var out []model.Finding

	out = append(out, finding(model.DomainCgroup, model.SeverityInfo,
		fmt.Sprintf("cgroup v%d in use", cg.Version), cg.Path))

	switch {
	case cg.MemoryLimit == "":
		out = append(out, finding(model.DomainCgroup, model.SeverityInfo,
			"memory limit not readable", ""))
	case memoryUnlimited(cg.MemoryLimit):
		out = append(out, finding(model.DomainCgroup, model.SeverityWarn,
			"no memory limit set", cg.MemoryLimit))
	default:
		out = append(out, finding(model.DomainCgroup, model.SeverityOK,
			"memory limit set", cg.MemoryLimit))
	}

	switch {
	case cg.CPUQuota == "":
		out = append(out, finding(model.DomainCgroup, model.SeverityInfo,
			"cpu quota not readable", ""))
	case cg.CPUQuota == "max" || cg.CPUQuota == "-1":
		out = append(out, finding(model.DomainCgroup, model.SeverityInfo,
			"no cpu quota set", ""))
	default:
		out = append(out, finding(model.DomainCgroup, model.SeverityOK,
			"cpu quota set", fmt.Sprintf("%s/%s", cg.CPUQuota, cg.CPUPeriod)))
	}

	switch {
	case cg.PidsLimit == "":
		out = append(out, finding(model.DomainCgroup, model.SeverityInfo,
			"pid limit not readable", ""))
	case cg.PidsLimit == "max":
		out = append(out, finding(model.DomainCgroup, model.SeverityInfo,
			"no pid limit set", ""))
	default:
		out = append(out, finding(model.DomainCgroup, model.SeverityOK,
			"pid limit set", cg.PidsLimit))
	}

	return out
}

func memoryUnlimited(raw string) bool {
	if raw == "max" {
		return true
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return false
	}
	return n >= v1NoLimit
}
