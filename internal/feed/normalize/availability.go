package normalize

// Available reports whether a variant can be offered. A variant is available
// when it has stock, or when its stock tracking mode is one of the modes that
// do not require stock. The accepted modes vary per upstream platform, so
// they are passed in by the source adapter instead of being hard-coded here.
func Available(stockLevel int, stockTracking string, modesNotRequiringStock []string) bool {
	if stockLevel > 0 {
		return true
	}
	for _, mode := range modesNotRequiringStock {
		if stockTracking == mode {
			return true
		}
	}
	return false
}
