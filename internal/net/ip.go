package net

import (
	"errors"
	"fmt"
	"net"
	"strings"
)

// LinkScheme prefixes share links handed to pens.
const LinkScheme = "strawboard://"

// ErrNoAddress means no non-loopback IPv4 address was found.
var ErrNoAddress = errors.New("no usable local address")

// ShareLink returns the link a pen uses to reach the board at ip:port.
func ShareLink(ip string, port int) string {
	return fmt.Sprintf("%s%s:%d", LinkScheme, ip, port)
}

// ParseLink returns the host:port of a share link. ok is false when s is not
// a share link.
func ParseLink(s string) (addr string, ok bool) {
	if !strings.HasPrefix(s, LinkScheme) {
		return "", false
	}
	addr = strings.TrimSuffix(strings.TrimPrefix(s, LinkScheme), "/")
	return addr, addr != ""
}

// GetOutgoingIP returns the address other machines on the network should
// use to reach this one: the source address of the default route, or else
// the first non-loopback IPv4 interface address.
func GetOutgoingIP() (string, error) {
	// UDP dial sends nothing; it only resolves the route.
	if conn, err := net.Dial("udp", "8.8.8.8:80"); err == nil {
		defer conn.Close()
		return conn.LocalAddr().(*net.UDPAddr).IP.String(), nil
	}

	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return "", fmt.Errorf("listing interfaces: %w", err)
	}
	for _, a := range addrs {
		ipnet, ok := a.(*net.IPNet)
		if !ok || ipnet.IP.IsLoopback() {
			continue
		}
		if v4 := ipnet.IP.To4(); v4 != nil {
			return v4.String(), nil
		}
	}
	return "", ErrNoAddress
}
