package device

import "strings"

// NormalizeAddr canonicalizes a hardware address: surrounding
// whitespace is trimmed, letters are uppercased, and hyphen separators
// become colons. A bare run of exactly 12 hex digits gains a colon
// every two characters. Any other shape passes through unchanged;
// callers must treat an empty result as "no usable identity".
func NormalizeAddr(raw string) string {
	addr := strings.ToUpper(strings.TrimSpace(raw))
	addr = strings.ReplaceAll(addr, "-", ":")
	if !strings.Contains(addr, ":") && len(addr) == 12 && isHex(addr) {
		var b strings.Builder
		for i := 0; i < 12; i += 2 {
			if i > 0 {
				b.WriteByte(':')
			}
			b.WriteString(addr[i : i+2])
		}
		addr = b.String()
	}
	return addr
}

// VendorPrefix returns the first three colon groups of a normalized
// address, the key for vendor lookup caching. Returns "" when the
// address has fewer than three groups.
func VendorPrefix(addr string) string {
	parts := strings.Split(addr, ":")
	if len(parts) < 3 {
		return ""
	}
	return strings.Join(parts[:3], ":")
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
