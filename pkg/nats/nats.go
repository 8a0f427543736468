package nats

import (
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
)

// NewNATSConn подключается к NATS с бесконечными переподключениями
func NewNATSConn(url, name string) (*nats.Conn, error) {
	conn, err := nats.Connect(
		url,
		nats.Name(name),
		nats.ReconnectWait(2*time.Second),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return conn, nil
}
