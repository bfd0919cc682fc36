package sender

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

const (
	// DefaultPort is the well-known statsd collector port.
	DefaultPort = 8125

	// DefaultMaxPacketSize is a conservative datagram size ceiling used by
	// DefaultConfig.
	DefaultMaxPacketSize = 8192
)

type Config struct {
	// Host is the destination collector, given as a DNS name or a literal
	// IP address. Required.
	Host string
	// Port is the destination UDP port. Zero selects DefaultPort.
	Port int
	// MaxPacketSize is the maximum datagram size in bytes. Payloads larger
	// than this are split at newline boundaries before sending. Zero
	// disables splitting entirely.
	MaxPacketSize int
	// Logger, when non-nil, receives lifecycle events at debug level.
	// Errors are never logged; they are returned to the caller.
	Logger *zerolog.Logger
}

// DefaultConfig returns a Config targeting a statsd agent on localhost with
// the conservative default packet size.
func DefaultConfig() Config {
	return Config{
		Host:          "127.0.0.1",
		Port:          DefaultPort,
		MaxPacketSize: DefaultMaxPacketSize,
	}
}

// Client sends metric-protocol text to the collector endpoint resolved at
// construction. A single Client may be shared by concurrent callers; no
// ordering is guaranteed between independent calls, only between the chunks
// of one call.
type Client interface {
	// Send transmits text as one or more UDP datagrams, blocking until every
	// chunk has been handed to the socket. Text may contain multiple
	// newline-joined metric lines. Sending stops at the first transport
	// failure, so a batch may be partially delivered.
	Send(text string) error

	// SendAsync is Send without blocking the caller. The returned channel
	// receives exactly one value: nil once the final chunk's socket write
	// succeeds, or the first transport error, after which remaining chunks
	// are not attempted. Chunks are still sent strictly in order.
	SendAsync(text string) <-chan error

	// Close releases the underlying socket. No sends may be issued after
	// Close; calling Close again is harmless.
	Close() error
}

// NewClient resolves the configured destination and opens the UDP socket.
// Resolution and socket failures are reported here, never deferred to the
// first send. The context applies only to the name lookup.
func NewClient(ctx context.Context, config Config) (Client, error) {
	if config.Host == "" {
		return nil, fmt.Errorf("%w: host is required", ErrInvalidConfig)
	}
	port := config.Port
	if port == 0 {
		port = DefaultPort
	}
	if port < 0 || port > 65535 {
		return nil, fmt.Errorf("%w: port %d out of range", ErrInvalidConfig, port)
	}
	if config.MaxPacketSize < 0 {
		return nil, fmt.Errorf("%w: max packet size must not be negative", ErrInvalidConfig)
	}

	endpoint, err := ResolveEndpoint(ctx, config.Host, port)
	if err != nil {
		return nil, err
	}
	transport, err := openTransport(endpoint)
	if err != nil {
		return nil, err
	}

	logger := zerolog.Nop()
	if config.Logger != nil {
		logger = *config.Logger
	}
	logger.Debug().
		Stringer("endpoint", endpoint).
		Int("max_packet_size", config.MaxPacketSize).
		Msg("resolved collector endpoint")

	return &clientImpl{
		endpoint: endpoint,
		limit:    config.MaxPacketSize,
		conn:     transport,
		logger:   logger,
	}, nil
}

type clientImpl struct {
	endpoint Endpoint
	limit    int
	conn     datagramConn
	logger   zerolog.Logger
}

func (c *clientImpl) Send(text string) error {
	return c.sendChunks([]byte(text))
}

func (c *clientImpl) SendAsync(text string) <-chan error {
	payload := []byte(text)
	done := make(chan error, 1)
	go func() {
		done <- c.sendChunks(payload)
	}()
	return done
}

// sendChunks is the single send path behind Send and SendAsync: split, then
// send each chunk in order, stopping at the first failure.
func (c *clientImpl) sendChunks(payload []byte) error {
	for _, chunk := range splitPayload(payload, c.limit) {
		if err := c.conn.sendTo(chunk); err != nil {
			return err
		}
	}
	return nil
}

func (c *clientImpl) Close() error {
	c.logger.Debug().Stringer("endpoint", c.endpoint).Msg("closing transport")
	return c.conn.close()
}
