package probe

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/prometheus/procfs"
)

// collectCgroup resolves the current process's cgroup path and reads the
// version-appropriate limit files. Raw values are kept as strings; the
// "max" sentinel and the v1 no-limit number are interpreted downstream.
func collectCgroup(fs procfs.FS, opts Options, v2 bool) (CgroupInfo, error) {
	info := CgroupInfo{Version: 1}
	if v2 {
		info.Version = 2
	}

	self, err := fs.Self()
	if err != nil {
		return info, fmt.Errorf("self proc: %w", err)
	}
	cgroups, err := self.Cgroups()
	if err != nil {
		return info, fmt.Errorf("cgroup membership: %w", err)
	}
	for _, cg := range cgroups {
		if v2 {
			if cg.HierarchyID == 0 {
				info.Path = cg.Path
				break
			}
			continue
		}
		if info.Path == "" {
			info.Path = cg.Path
		}
		for _, c := range cg.Controllers {
			if c == "memory" {
				info.Path = cg.Path
			}
		}
	}

	if v2 {
		base := filepath.Join(opts.CgroupRoot, info.Path)
		info.MemoryLimit = readTrimmed(filepath.Join(base, "memory.max"))
		if cpuMax := readTrimmed(filepath.Join(base, "cpu.max")); cpuMax != "" {
			fields := strings.Fields(cpuMax)
			info.CPUQuota = fields[0]
			if len(fields) > 1 {
				info.CPUPeriod = fields[1]
			}
		}
		info.PidsLimit = readTrimmed(filepath.Join(base, "pids.max"))
		return info, nil
	}

	info.MemoryLimit = readTrimmed(filepath.Join(opts.CgroupRoot, "memory", info.Path, "memory.limit_in_bytes"))
	info.CPUQuota = readTrimmed(filepath.Join(opts.CgroupRoot, "cpu", info.Path, "cpu.cfs_quota_us"))
	info.CPUPeriod = readTrimmed(filepath.Join(opts.CgroupRoot, "cpu", info.Path, "cpu.cfs_period_us"))
	info.PidsLimit = readTrimmed(filepath.Join(opts.CgroupRoot, "pids", info.Path, "pids.max"))
	return info, nil
}

func readTrimmed(path string) string {
	b, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}
