package probe

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/prometheus/procfs"
	"golang.org/x/sys/unix"
)

// wellKnownPaths are checked for distinct-mount and writability status.
// The caller's home directory is appended at collection time.
var wellKnownPaths = []string{"/", "/workspace", "/tmp"}

func collectFilesystem(ctx context.Context, fs procfs.FS, opts Options) (FilesystemInfo, error) {
	var info FilesystemInfo
	var gap error

	mountTypes := make(map[string]string)
	self, err := fs.Self()
	if err != nil {
		gap = fmt.Errorf("self proc: %w", err)
	} else {
		mounts, err := self.MountInfo()
		if err != nil {
			gap = fmt.Errorf("mountinfo: %w", err)
		} else {
			for _, m := range mounts {
				mountTypes[m.MountPoint] = m.FSType
				if m.FSType == "cgroup2" {
					info.CgroupV2Mount = true
				}
			}
		}
	}

	if t, ok := mountTypes["/"]; ok {
		info.RootFSType = t
		info.OverlayRoot = strings.Contains(t, "overlay")
	}

	paths := append([]string{}, wellKnownPaths...)
	if opts.HomeDir != "" && opts.HomeDir != "/" {
		paths = append(paths, opts.HomeDir)
	}
	for _, p := range paths {
		pi := PathInfo{Path: p}
		if _, err := os.Stat(p); err == nil {
			pi.Exists = true
			_, pi.MountPoint = mountTypes[p]
			pi.Writable = unix.Access(p, unix.W_OK) == nil
		}
		info.Paths = append(info.Paths, pi)
	}

	// Optional namespace-aware confirmation of the root mount.
	if out, err := opts.Runner.Run(ctx, "findmnt", "-n", "-o", "SOURCE,FSTYPE", "/"); err == nil {
		info.FindmntRoot = out
	}

	return info, gap
}
