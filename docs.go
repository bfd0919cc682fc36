/*
Package sender provides a UDP transport for delivering metric-protocol text
lines to a local or remote collector, such as a statsd or telegraf agent.

The destination host is resolved to a single IPv4 endpoint when the client is
created; resolution failures surface immediately rather than on first send.
Payloads larger than the configured maximum packet size are split at newline
boundaries so that individual metric lines are never truncated, and each
resulting chunk is sent as one UDP datagram, in order.

A blocking Send and a non-blocking SendAsync are provided with identical
semantics.

# Example

The following sends a two-line batch to a statsd agent on the default port:

	client, err := sender.NewClient(context.Background(), sender.DefaultConfig())
	if err != nil {
		log.Fatal(err)
	}
	defer client.Close()

	err = client.Send("cpu.load:0.5|g\nmem.used:1024|g")
*/
package sender
