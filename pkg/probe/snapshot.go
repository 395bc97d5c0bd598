package probe

import "time"

const SnapshotSchemaVersion = "v1"

// Snapshot is a one-shot, read-only view of the ambient environment.
// Every field is best-effort: a collector that cannot read its source
// leaves the zero value behind, and the classifiers downgrade to an
// ambiguous finding instead of failing.
type Snapshot struct {
	SchemaVersion string         `json:"schemaVersion"`
	CollectedAt   time.Time      `json:"collectedAt"`
	Namespaces    NamespaceInfo  `json:"namespaces"`
	Filesystem    FilesystemInfo `json:"filesystem"`
	Network       NetworkInfo    `json:"network"`
	Cgroup        CgroupInfo     `json:"cgroup"`
	Privilege     PrivilegeInfo  `json:"privilege"`
	Devices       DeviceInfo     `json:"devices"`
	Markers       MarkerInfo     `json:"markers"`
}

// NamespaceInfo holds the PID-namespace inodes of PID 1 and the current
// process. An inode of 0 means the namespace link was unreadable.
type NamespaceInfo struct {
	Self uint32 `json:"self"`
	Init uint32 `json:"init"`
}

type FilesystemInfo struct {
	RootFSType    string     `json:"rootFsType"`
	OverlayRoot   bool       `json:"overlayRoot"`
	CgroupV2Mount bool       `json:"cgroupV2Mount"`
	Paths         []PathInfo `json:"paths"`
	FindmntRoot   string     `json:"findmntRoot,omitempty"`
}

type PathInfo struct {
	Path       string `json:"path"`
	Exists     bool   `json:"exists"`
	MountPoint bool   `json:"mountPoint"`
	Writable   bool   `json:"writable"`
}

type NetworkInfo struct {
	// Interfaces lists non-loopback interfaces with an IPv4 address,
	// as "name addr" pairs.
	Interfaces   []string `json:"interfaces"`
	DefaultRoute string   `json:"defaultRoute,omitempty"`
}

// CgroupInfo carries the raw control-file values; interpretation of
// sentinels like "max" belongs to the classifiers.
type CgroupInfo struct {
	Version     int    `json:"version"`
	Path        string `json:"path"`
	MemoryLimit string `json:"memoryLimit,omitempty"`
	CPUQuota    string `json:"cpuQuota,omitempty"`
	CPUPeriod   string `json:"cpuPeriod,omitempty"`
	PidsLimit   string `json:"pidsLimit,omitempty"`
}

type PrivilegeInfo struct {
	EUID       int    `json:"euid"`
	CapEff     string `json:"capEff,omitempty"`
	CapDecoded string `json:"capDecoded,omitempty"`
}

type DeviceInfo struct {
	Nodes   []string `json:"nodes"`
	GPUName string   `json:"gpuName,omitempty"`
}

type MarkerInfo struct {
	DockerEnv     bool `json:"dockerEnv"`
	ContainerEnv  bool `json:"containerEnv"`
	KubernetesEnv bool `json:"kubernetesEnv"`
}
