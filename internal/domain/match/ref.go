package match

// NormalizeRef canonicalizes a feed identifier so that prefixed and
// unprefixed forms of the same entity compare equal ("t123" and "123" both
// become "123"). Every cross-source lookup joins through this function.
// Unrecognized shapes pass through unchanged; the function never fails.
func NormalizeRef(ref string) string {
	if len(ref) < 2 {
		return ref
	}

	tag := ref[0]
	if !isASCIILetter(tag) {
		return ref
	}
	for i := 1; i < len(ref); i++ {
		if ref[i] < '0' || ref[i] > '9' {
			return ref
		}
	}

	return ref[1:]
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
