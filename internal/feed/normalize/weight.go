package normalize

// DefaultWeight is used for variants without a usable weight. The feed
// rejects weightless items and 0 is not accepted; 25g is roughly 0.1oz, the
// minimum weight accepted by UPS ground.
const DefaultWeight = 25

// Weight returns the raw weight when it is strictly positive, the default
// otherwise. Zero, missing and negative weights all count as absent.
func Weight(raw float64) float64 {
	if raw > 0 {
		return raw
	}
	return DefaultWeight
}
