package domain

import (
	"net"
	"regexp"
	"strconv"
	"strings"
)

var hostnamePattern = regexp.MustCompile(`^([a-z0-9]([a-z0-9-]{0,61}[a-z0-9])?\.)+[a-z]{2,}$`)

// ValidDomainName reports whether name is an acceptable origin:
// a dotted hostname, "localhost" or an IP address, each with an optional
// port. Scheme prefixes and paths are rejected.
func ValidDomainName(name string) bool {
	if name == "" || strings.Contains(name, "/") || strings.Contains(name, "@") {
		return false
	}

	host := name
	if h, port, err := net.SplitHostPort(name); err == nil {
		if !validPort(port) {
			return false
		}
		host = h
	}

	if host == "localhost" {
		return true
	}
	if net.ParseIP(host) != nil {
		return true
	}
	return hostnamePattern.MatchString(host)
}

func validPort(port string) bool {
	n, err := strconv.Atoi(port)
	return err == nil && n > 0 && n <= 65535
}
