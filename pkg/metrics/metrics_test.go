package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
)

func TestNewChoreographyWithNoopMeter(t *testing.T) {
	c, err := NewChoreography(noop.NewMeterProvider().Meter("test"))
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		c.PlayStaged(2)
		c.EventDispatched("ActivateActor")
		c.SoftFailure("SetAnimation")
		c.PlayFinished()
		c.EntitiesDestroyed(3)
	})
}

func TestDefaultIsSingleton(t *testing.T) {
	a := Default()
	b := Default()
	require.NotNil(t, a)
	assert.Same(t, a, b)
}
