package inspect

import (
	"strings"

	"isoprobe/pkg/model"
	"isoprobe/pkg/probe"
)

var knownRuntimes = []string{"docker", "containerd", "kubepods", "libpod", "crio", "lxc"}

// runtimeHints returns the container-runtime names appearing as
// substrings of the cgroup path.
func runtimeHints(cgroupPath string) []string {
	var hints []string
	for _, name := range knownRuntimes {
		if strings.Contains(cgroupPath, name) {
			hints = append(hints, name)
		}
	}
	return hints
}

func evaluateMarkers(snap *probe.Snapshot) []model.Finding {
	var clues []string

	if snap.Markers.DockerEnv {
		clues = append(clues, "/.dockerenv")
	}
	if snap.Markers.ContainerEnv {
		clues = append(clues, "/run/.containerenv")
	}
	if snap.Markers.KubernetesEnv {
		clues = append(clues, "KUBERNETES_* env")
	}
	for _, hint := range runtimeHints(snap.Cgroup.Path) {
		clues = append(clues, "cgroup:"+hint)
	}

	if len(clues) == 0 {
		return []model.Finding{finding(model.DomainMarker, model.SeverityInfo,
			"no strong container markers", "")}
	}
	return []model.Finding{finding(model.DomainMarker, model.SeverityOK,
		"container markers found", strings.Join(clues, ", "))}
}
