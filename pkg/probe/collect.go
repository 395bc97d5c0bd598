package probe

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/procfs"
)

// Collect gathers a Snapshot of the ambient environment. The snapshot is
// always non-nil and as complete as the environment allows; the returned
// error only summarizes which collectors had to leave gaps behind.
func Collect(ctx context.Context, opts Options) (*Snapshot, error) {
	if opts.Runner == nil {
		opts.Runner = NewExecRunner(opts.CommandTimeout)
	}

	snap := &Snapshot{
		SchemaVersion: SnapshotSchemaVersion,
		CollectedAt:   time.Now().UTC(),
	}

	var errs []error

	fs, err := procfs.NewFS(opts.ProcMount)
	if err != nil {
		errs = append(errs, fmt.Errorf("open %s: %w", opts.ProcMount, err))
	}

	ns, err := collectNamespaces(fs)
	if err != nil {
		errs = append(errs, err)
	}
	snap.Namespaces = ns

	fsinfo, err := collectFilesystem(ctx, fs, opts)
	if err != nil {
		errs = append(errs, err)
	}
	snap.Filesystem = fsinfo

	netinfo, err := collectNetwork(fs)
	if err != nil {
		errs = append(errs, err)
	}
	snap.Network = netinfo

	cg, err := collectCgroup(fs, opts, snap.Filesystem.CgroupV2Mount)
	if err != nil {
		errs = append(errs, err)
	}
	snap.Cgroup = cg

	priv, err := collectPrivilege(ctx, opts)
	if err != nil {
		errs = append(errs, err)
	}
	snap.Privilege = priv

	snap.Devices = collectDevices(ctx, opts)
	snap.Markers = collectMarkers()

	if len(errs) > 0 {
		return snap, fmt.Errorf("collection had %d gaps; first: %w", len(errs), errs[0])
	}
	return snap, nil
}
