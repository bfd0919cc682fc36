package sender

import (
	"fmt"
	"net"
	"sync"
)

// datagramConn is the send-to-endpoint primitive shared by the blocking and
// non-blocking send paths. Tests substitute their own implementation.
type datagramConn interface {
	sendTo(payload []byte) error
	close() error
}

// udpTransport owns one unconnected IPv4 UDP socket and the resolved
// destination address for its entire life. The socket is opened at
// construction and released exactly once by close; *net.UDPConn is safe for
// concurrent use, and no additional locking is imposed here.
type udpTransport struct {
	conn *net.UDPConn
	addr *net.UDPAddr

	closeOnce sync.Once
	closeErr  error
}

func openTransport(endpoint Endpoint) (*udpTransport, error) {
	conn, err := net.ListenUDP("udp4", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: open socket: %w", ErrTransport, err)
	}
	return &udpTransport{conn: conn, addr: endpoint.UDPAddr()}, nil
}

func (t *udpTransport) sendTo(payload []byte) error {
	if _, err := t.conn.WriteToUDP(payload, t.addr); err != nil {
		return fmt.Errorf("%w: %w", ErrTransport, err)
	}
	return nil
}

func (t *udpTransport) close() error {
	t.closeOnce.Do(func() {
		t.closeErr = t.conn.Close()
	})
	return t.closeErr
}
