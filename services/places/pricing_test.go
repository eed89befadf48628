package places

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateCost(t *testing.T) {
	for i := 0; i < 100; i++ {
		cost := EstimateCost()
		assert.GreaterOrEqual(t, cost, baseCost)
		assert.Less(t, cost, baseCost+costTier*costStep)
		assert.Zero(t, cost%costStep)
	}
}
