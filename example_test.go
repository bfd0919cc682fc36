package sender_test

import (
	"context"
	"fmt"
	"log"
	"net"
	"time"

	sender "github.com/itzg/udp-line-sender"
)

type ExampleCollector struct {
	conn net.PacketConn
}

func NewExampleCollector() *ExampleCollector {
	conn, err := net.ListenPacket("udp4", "127.0.0.1:0")
	if err != nil {
		log.Fatal(err)
	}
	c := &ExampleCollector{conn: conn}
	go c.listen()
	return c
}

func (c *ExampleCollector) Port() int {
	return c.conn.LocalAddr().(*net.UDPAddr).Port
}

func (c *ExampleCollector) listen() {
	buf := make([]byte, 64*1024)
	for {
		n, _, err := c.conn.ReadFrom(buf)
		if err != nil {
			return
		}
		fmt.Println(string(buf[:n]))
	}
}

func Example_sending() {
	collector := NewExampleCollector()

	client, _ := sender.NewClient(context.Background(), sender.Config{
		Host:          "127.0.0.1",
		Port:          collector.Port(),
		MaxPacketSize: 16,
	})

	// the batch exceeds the packet size, so it is split at the newline
	// and arrives as two datagrams
	client.Send("cpu.load:0.5|g\nmem.used:1024|g")

	// allow time for the collector to receive the datagrams
	time.Sleep(20 * time.Millisecond)
	client.Close()

	// Output:
	// cpu.load:0.5|g
	// mem.used:1024|g
}
