package probe

import (
	"os"
	"time"
)

type Options struct {
	// ProcMount and CgroupRoot point at the kernel virtual filesystems.
	// Overridable so tests can point at a fixture tree.
	ProcMount  string
	CgroupRoot string
	DevDir     string
	HomeDir    string

	// CommandTimeout bounds every optional external helper invocation
	// (nvidia-smi, capsh, findmnt). A hung helper degrades one finding,
	// never the run.
	CommandTimeout time.Duration

	// Runner executes external helpers. Nil selects the real one.
	Runner Runner
}

func DefaultOptions() Options {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		home = "/root"
	}
	return Options{
		ProcMount:      "/proc",
		CgroupRoot:     "/sys/fs/cgroup",
		DevDir:         "/dev",
		HomeDir:        home,
		CommandTimeout: 500 * time.Millisecond,
	}
}
