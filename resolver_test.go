package sender

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveEndpoint_LiteralIPv4(t *testing.T) {
	noLookup := func(ctx context.Context, host string) ([]net.IP, error) {
		t.Fatal("lookup must not be performed for a literal address")
		return nil, nil
	}

	endpoint, err := resolveEndpoint(context.Background(), "192.0.2.10", 8125, noLookup)

	require.NoError(t, err)
	assert.Equal(t, "192.0.2.10", endpoint.IP.String())
	assert.Equal(t, 8125, endpoint.Port)
	assert.Len(t, endpoint.IP, net.IPv4len)
}

func TestResolveEndpoint_LiteralIPv6Rejected(t *testing.T) {
	_, err := ResolveEndpoint(context.Background(), "2001:db8::1", 8125)

	assert.ErrorIs(t, err, ErrAddressResolution)
}

func TestResolveEndpoint_MappedIPv6Literal(t *testing.T) {
	// An IPv4-mapped literal still has an IPv4 form and is accepted.
	endpoint, err := ResolveEndpoint(context.Background(), "::ffff:192.0.2.7", 8125)

	require.NoError(t, err)
	assert.Equal(t, "192.0.2.7", endpoint.IP.String())
}

func TestResolveEndpoint_PrefersTrailingIPv4(t *testing.T) {
	lookup := func(ctx context.Context, host string) ([]net.IP, error) {
		return []net.IP{
			net.ParseIP("192.0.2.1"),
			net.ParseIP("2001:db8::1"),
			net.ParseIP("192.0.2.2"),
			net.ParseIP("2001:db8::2"),
		}, nil
	}

	endpoint, err := resolveEndpoint(context.Background(), "collector.example", 8125, lookup)

	require.NoError(t, err)
	assert.Equal(t, "192.0.2.2", endpoint.IP.String())
}

func TestResolveEndpoint_NoIPv4Result(t *testing.T) {
	lookup := func(ctx context.Context, host string) ([]net.IP, error) {
		return []net.IP{
			net.ParseIP("2001:db8::1"),
			net.ParseIP("2001:db8::2"),
		}, nil
	}

	_, err := resolveEndpoint(context.Background(), "collector.example", 8125, lookup)

	assert.ErrorIs(t, err, ErrAddressResolution)
}

func TestResolveEndpoint_LookupFailure(t *testing.T) {
	lookupErr := errors.New("no such host")
	lookup := func(ctx context.Context, host string) ([]net.IP, error) {
		return nil, lookupErr
	}

	_, err := resolveEndpoint(context.Background(), "collector.example", 8125, lookup)

	assert.ErrorIs(t, err, ErrAddressResolution)
	assert.ErrorIs(t, err, lookupErr)
}

func TestResolveEndpoint_MalformedLiteral(t *testing.T) {
	// Not a parseable literal and not a resolvable name either.
	_, err := ResolveEndpoint(context.Background(), "999.999.999.999", 8125)

	assert.ErrorIs(t, err, ErrAddressResolution)
}
