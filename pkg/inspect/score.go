package inspect

import "isoprobe/pkg/probe"

// ScoreRule contributes +1 to the report score when satisfied. Rules
// re-derive their predicates from the snapshot and are independent of
// each other and of the finding classifiers.
type ScoreRule struct {
	Name      string
	Satisfied func(snap *probe.Snapshot) bool
}

func DefaultScoreRules() []ScoreRule {
	return []ScoreRule{
		{"layered-rootfs", func(s *probe.Snapshot) bool {
			return s.Filesystem.OverlayRoot
		}},
		{"non-loopback-interface", func(s *probe.Snapshot) bool {
			return len(s.Network.Interfaces) > 0
		}},
		{"runtime-cgroup-path", func(s *probe.Snapshot) bool {
			return len(runtimeHints(s.Cgroup.Path)) > 0
		}},
		{"non-root-user", func(s *probe.Snapshot) bool {
			return s.Privilege.EUID != 0
		}},
		{"default-route", func(s *probe.Snapshot) bool {
			return s.Network.DefaultRoute != ""
		}},
		{"accelerator-devices", func(s *probe.Snapshot) bool {
			return len(s.Devices.Nodes) > 0
		}},
		{"cgroup-v2", func(s *probe.Snapshot) bool {
			return s.Cgroup.Version == 2
		}},
	}
}
