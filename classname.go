package stylec

import (
	"strconv"
	"strings"
	"unicode"
)

// hashLength is how many base-36 digits of the checksum end up in a
// generated class name.
const hashLength = 6

// checksum32 is a 32-bit rolling multiply-and-xor checksum. Not
// cryptographic: class names only need to be distinct within one compile
// call, where the counter already separates repeated keys.
func checksum32(s string) uint32 {
	h := uint32(5381)
	for i := 0; i < len(s); i++ {
		h = h*33 ^ uint32(s[i])
	}
	return h
}

// shortHash renders a checksum in base-36, truncated to hashLength.
func shortHash(s string) string {
	hash := strconv.FormatUint(uint64(checksum32(s)), 36)
	if len(hash) > hashLength {
		hash = hash[:hashLength]
	}
	return hash
}

// generateClassName mints a class name for a semantic style key:
// kebab-cased key plus a short hash of (key, counter). Deterministic for a
// given pair; the counter resets per compile call, so names are not stable
// across calls.
func generateClassName(key string, counter int) string {
	return kebabCase(key) + "-" + shortHash(key+strconv.Itoa(counter))
}

// kebabCase converts camelCase to kebab-case. Keys already carrying the
// custom-property "--" prefix pass through unchanged.
func kebabCase(s string) string {
	if strings.HasPrefix(s, "--") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 4)
	for _, r := range s {
		if unicode.IsUpper(r) {
			b.WriteByte('-')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
