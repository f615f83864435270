package mq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuditRoutingKey(t *testing.T) {
	assert.Equal(t, "audit.buildings.delete", AuditRoutingKey("buildings", "delete"))
	assert.Equal(t, "audit.property_units.insert", AuditRoutingKey("property_units", "insert"))
}
