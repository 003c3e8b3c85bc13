package ws

import "time"

// sendBuffer bounds the per-client outbound queue. A client that falls this
// far behind starts missing events rather than blocking the fan-out.
const sendBuffer = 64

// Client is one live duplex connection. The hub is the sole owner of its
// subscription set; transport code only drains the send channel.
type Client struct {
	ID       string
	OpenedAt time.Time

	subscriptions map[string]struct{}
	send          chan []byte
}

// Send exposes the outbound queue for the transport writer. The channel is
// closed by the hub on unregister.
func (c *Client) Send() <-chan []byte {
	return c.send
}
