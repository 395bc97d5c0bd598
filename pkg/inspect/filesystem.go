package inspect

import (
	"fmt"

	"isoprobe/pkg/model"
	"isoprobe/pkg/probe"
)

func evaluateFilesystem(snap *probe.Snapshot) []model.Finding {
	fs := snap.Filesystem
	var out []model.Finding

	if fs.OverlayRoot {
		out = append(out, finding(model.DomainFilesystem, model.SeverityOK,
			"root is a layered filesystem", fs.RootFSType))
	} else if fs.RootFSType != "" {
		out = append(out, finding(model.DomainFilesystem, model.SeverityInfo,
			"root is not a layered filesystem; not definitive either way", fs.RootFSType))
	} else {
		out = append(out, finding(model.DomainFilesystem, model.SeverityInfo,
			"root filesystem type unreadable", ""))
	}

	if fs.FindmntRoot != "" {
		out = append(out, finding(model.DomainFilesystem, model.SeverityInfo,
			"root mount per findmnt", fs.FindmntRoot))
	}

	for _, p := range fs.Paths {
		if !p.Exists {
			out = append(out, finding(model.DomainFilesystem, model.SeverityInfo,
				fmt.Sprintf("%s not present", p.Path), ""))
			continue
		}
		if p.MountPoint {
			out = append(out, finding(model.DomainFilesystem, model.SeverityInfo,
				fmt.Sprintf("%s is a distinct mount point", p.Path), ""))
		} else {
			out = append(out, finding(model.DomainFilesystem, model.SeverityInfo,
				fmt.Sprintf("%s is not a distinct mount point", p.Path), ""))
		}
		if p.Writable {
			out = append(out, finding(model.DomainFilesystem, model.SeverityOK,
				fmt.Sprintf("%s is writable", p.Path), ""))
		} else {
			out = append(out, finding(model.DomainFilesystem, model.SeverityWarn,
				fmt.Sprintf("%s is not writable", p.Path), ""))
		}
	}

	return out
}
