package provider

import (
	"testing"

	"estate_erp/internal/conf"
	"estate_erp/internal/dao/mongodb"
	"estate_erp/internal/mq/noop"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMachineIDFromHostname(t *testing.T) {
	assert.Equal(t, uint16(3), machineIDFromHostname("estate-erp-3"))
	assert.Equal(t, uint16(1), machineIDFromHostname("localhost"))
	assert.Equal(t, uint16(1), machineIDFromHostname("estate-erp-abc"))
	assert.Equal(t, uint16(1), machineIDFromHostname("estate-erp-70000"))
}

func TestProvideWatchedCollections(t *testing.T) {
	assert.Equal(t, mongodb.WatchedCollections, ProvideWatchedCollections(nil))
	assert.Equal(t, mongodb.WatchedCollections, ProvideWatchedCollections(&conf.ChangeCaptureConfig{}))
	assert.Equal(t, []string{"buildings"}, ProvideWatchedCollections(&conf.ChangeCaptureConfig{WatchedCollections: []string{"buildings"}}))
}

func TestProvidePublisher_DisabledIsNoop(t *testing.T) {
	p, cleanup, err := ProvidePublisher(&conf.RabbitMQConfig{Enabled: false}, zap.NewNop())
	require.NoError(t, err)
	defer cleanup()
	assert.IsType(t, &noop.Publisher{}, p)
}
