package probe

import (
	"context"
	"path/filepath"
	"strings"
)

// collectDevices looks for NVIDIA accelerator device nodes. When any are
// present, nvidia-smi is asked for the first GPU name as enrichment; its
// absence is not an error.
func collectDevices(ctx context.Context, opts Options) DeviceInfo {
	var info DeviceInfo

	nodes, err := filepath.Glob(filepath.Join(opts.DevDir, "nvidia[0-9]*"))
	if err == nil {
		info.Nodes = nodes
	}
	if len(info.Nodes) == 0 {
		return info
	}

	if out, err := opts.Runner.Run(ctx, "nvidia-smi", "--query-gpu=name", "--format=csv,noheader"); err == nil {
		info.GPUName = strings.TrimSpace(strings.SplitN(out, "\n", 2)[0])
	}
	return info
}
