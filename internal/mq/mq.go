package mq

import (
	"context"
	"strings"
)

// Publisher fans messages out to a broker. Implementations must be safe for concurrent use.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, body []byte) error
	Close()
}

// AuditRoutingKey is the topic an audit record is published under, e.g. "audit.buildings.delete".
func AuditRoutingKey(collection, operation string) string {
	return strings.Join([]string{"audit", collection, operation}, ".")
}
