package places

import "math/rand"

const (
	baseCost = 50000
	costStep = 5000
	costTier = 10
)

// EstimateCost returns a placeholder activity cost for feeds that carry
// no pricing: a base amount plus a random number of steps.
// TODO: replace with a real pricing source once one is available; the
// allocator itself trusts whatever cost the candidate arrives with.
func EstimateCost() int {
	return baseCost + rand.Intn(costTier)*costStep
}
