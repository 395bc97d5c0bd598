package probe

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func collectPrivilege(ctx context.Context, opts Options) (PrivilegeInfo, error) {
	info := PrivilegeInfo{EUID: os.Geteuid()}

	status, err := os.ReadFile(filepath.Join(opts.ProcMount, "self", "status"))
	if err != nil {
		return info, fmt.Errorf("read process status: %w", err)
	}
	for _, line := range strings.Split(string(status), "\n") {
		if v, ok := strings.CutPrefix(line, "CapEff:"); ok {
			info.CapEff = strings.TrimSpace(v)
			break
		}
	}

	if info.CapEff != "" {
		if out, err := opts.Runner.Run(ctx, "capsh", "--decode="+info.CapEff); err == nil {
			info.CapDecoded = out
		}
	}

	return info, nil
}
