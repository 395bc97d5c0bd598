package probe

import (
	"fmt"

	"github.com/prometheus/procfs"
)

// collectNamespaces reads the pid-namespace inode of the current process
// and of PID 1. Inside a container with its own PID namespace both resolve
// to the same inode; reading PID 1 typically fails when it belongs to a
// different, non-visible namespace.
func collectNamespaces(fs procfs.FS) (NamespaceInfo, error) {
	var info NamespaceInfo

	self, err := fs.Self()
	if err != nil {
		return info, fmt.Errorf("self proc: %w", err)
	}
	selfNS, err := self.Namespaces()
	if err != nil {
		return info, fmt.Errorf("self namespaces: %w", err)
	}
	if ns, ok := selfNS["pid"]; ok {
		info.Self = ns.Inode
	}

	init, err := fs.Proc(1)
	if err != nil {
		return info, fmt.Errorf("pid 1 proc: %w", err)
	}
	initNS, err := init.Namespaces()
	if err != nil {
		return info, fmt.Errorf("pid 1 namespaces: %w", err)
	}
	if ns, ok := initNS["pid"]; ok {
		info.Init = ns.Inode
	}

	return info, nil
}
