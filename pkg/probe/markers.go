package probe

import (
	"os"
	"strings"
)

// kubernetesEnvPrefix matches the service-discovery variables the
// orchestrator injects into every pod. Any variable NAME carrying the
// prefix counts, not one literal name.
const kubernetesEnvPrefix = "KUBERNETES_"

func collectMarkers() MarkerInfo {
	var info MarkerInfo

	if _, err := os.Stat("/.dockerenv"); err == nil {
		info.DockerEnv = true
	}
	if _, err := os.Stat("/run/.containerenv"); err == nil {
		info.ContainerEnv = true
	}
	for _, kv := range os.Environ() {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, kubernetesEnvPrefix) {
			info.KubernetesEnv = true
			break
		}
	}

	return info
}
