package nets

import "net"

type IsLocalAddr func(addr string) bool

func (Module) IsLocalAddr() IsLocalAddr {
	return func(addr string) bool {
		host, _, err := net.SplitHostPort(addr)
		if err != nil {
			host = addr
		}
		// unresolvable hosts go through the proxy
		ips, err := net.LookupIP(host)
		if err != nil {
			return false
		}
		for _, ip := range ips {
			if ip.IsLoopback() || ip.IsPrivate() {
				return true
			}
		}
		return false
	}
}
