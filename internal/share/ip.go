package share

import (
	"fmt"
	"log"
	"net"
)

// OutgoingIP picks the address other machines on the LAN should use to
// reach this board.
func OutgoingIP() string {
	// No packets are sent; dialing UDP only asks the kernel for a route.
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		return firstIPv4().String()
	}
	defer conn.Close()
	return conn.LocalAddr().(*net.UDPAddr).IP.String()
}

// firstIPv4 is the fallback on networks without a default route.
func firstIPv4() net.IP {
	ifaces, err := net.Interfaces()
	if err != nil {
		log.Printf("[SHARE] Listing interfaces failed: %v", err)
		return net.IPv4(127, 0, 0, 1)
	}
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, _ := iface.Addrs()
		for _, a := range addrs {
			if ipnet, ok := a.(*net.IPNet); ok && ipnet.IP.To4() != nil {
				return ipnet.IP.To4()
			}
		}
	}
	log.Println("[SHARE] No LAN address found, falling back to loopback")
	return net.IPv4(127, 0, 0, 1)
}

// ViewerURL is the link printed in the status bar.
func ViewerURL(port int) string {
	return fmt.Sprintf("http://%s:%d/", OutgoingIP(), port)
}
