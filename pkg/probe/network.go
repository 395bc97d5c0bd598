package probe

import (
	"fmt"
	"net"

	"github.com/prometheus/procfs"
)

func collectNetwork(fs procfs.FS) (NetworkInfo, error) {
	var info NetworkInfo

	ifaces, err := net.Interfaces()
	if err != nil {
		return info, fmt.Errorf("list interfaces: %w", err)
	}
	for _, ifc := range ifaces {
		if ifc.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, err := ifc.Addrs()
		if err != nil {
			continue
		}
		for _, a := range addrs {
			ipnet, ok := a.(*net.IPNet)
			if !ok || ipnet.IP.To4() == nil {
				continue
			}
			info.Interfaces = append(info.Interfaces, fmt.Sprintf("%s %s", ifc.Name, ipnet.IP))
			break
		}
	}

	// The route table is a nice-to-have; an unreadable table simply
	// means no default-route evidence.
	routes, err := fs.NetRoute()
	if err == nil {
		for _, r := range routes {
			if r.Destination != 0 {
				continue
			}
			info.DefaultRoute = fmt.Sprintf("via %s dev %s", littleEndianIPv4(uint32(r.Gateway)), r.Iface)
			break
		}
	}

	return info, nil
}

// littleEndianIPv4 renders an address from /proc/net/route, which stores
// IPv4 words in host byte order (little-endian on every supported arch).
func littleEndianIPv4(v uint32) string {
	return fmt.Sprintf("%d.%d.%d.%d", byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}
