package sender

import (
	"context"
	"fmt"
	"net"
	"strconv"
)

// Endpoint is the resolved IPv4 destination that datagrams are sent to.
// It is immutable once produced by ResolveEndpoint.
type Endpoint struct {
	IP   net.IP
	Port int
}

// UDPAddr returns the endpoint as a *net.UDPAddr suitable for socket calls.
func (e Endpoint) UDPAddr() *net.UDPAddr {
	return &net.UDPAddr{IP: e.IP, Port: e.Port}
}

func (e Endpoint) String() string {
	return net.JoinHostPort(e.IP.String(), strconv.Itoa(e.Port))
}

type lookupFunc func(ctx context.Context, host string) ([]net.IP, error)

func defaultLookup(ctx context.Context, host string) ([]net.IP, error) {
	return net.DefaultResolver.LookupIP(ctx, "ip", host)
}

// ResolveEndpoint turns a host, given as a literal IP address or a DNS name,
// and a port into an IPv4 Endpoint. A literal address is used directly with
// no lookup performed; a literal that has no IPv4 form fails. A DNS name is
// looked up once and the result list is scanned for an IPv4 entry. When no
// IPv4 address can be produced the returned error wraps ErrAddressResolution.
func ResolveEndpoint(ctx context.Context, host string, port int) (Endpoint, error) {
	return resolveEndpoint(ctx, host, port, defaultLookup)
}

func resolveEndpoint(ctx context.Context, host string, port int, lookup lookupFunc) (Endpoint, error) {
	if ip := net.ParseIP(host); ip != nil {
		ip4 := ip.To4()
		if ip4 == nil {
			return Endpoint{}, fmt.Errorf("%w: literal address %q is not IPv4", ErrAddressResolution, host)
		}
		return Endpoint{IP: ip4, Port: port}, nil
	}

	ips, err := lookup(ctx, host)
	if err != nil {
		return Endpoint{}, fmt.Errorf("%w: lookup %q: %w", ErrAddressResolution, host, err)
	}
	// Resolvers tend to sort IPv4 entries toward the end of the result
	// list, so scan from the back.
	for i := len(ips) - 1; i >= 0; i-- {
		if ip4 := ips[i].To4(); ip4 != nil {
			return Endpoint{IP: ip4, Port: port}, nil
		}
	}
	return Endpoint{}, fmt.Errorf("%w: host %q resolved to no IPv4 addresses", ErrAddressResolution, host)
}
