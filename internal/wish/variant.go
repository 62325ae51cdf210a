package wish

// PickVariant deterministically selects one of the options based on a seed
// string. Identical (options, seed) pairs always yield the same element;
// this keeps the wish text stable per contact per day while varying across
// contacts, days, and line types. Empty options return "".
func PickVariant(options []string, seed string) string {
	if len(options) == 0 {
		return ""
	}
	return options[hashSeed(seed)%uint32(len(options))]
}

// hashSeed is a 32-bit rolling hash (multiply-by-31 with unsigned wrap).
// Not cryptographic; only stability matters.
func hashSeed(seed string) uint32 {
	var h uint32
	for _, r := range seed {
		h = h*31 + uint32(r)
	}
	return h
}
