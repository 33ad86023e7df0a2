package fracdex

const base62Digits = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

const (
	minDigit = '0'
	maxDigit = 'z'
)

// digitValue returns the position of c in base62Digits.
func digitValue(c byte) (int, error) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), nil
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10, nil
	case c >= 'a' && c <= 'z':
		return int(c-'a') + 36, nil
	}
	return 0, newError(KindInvalidDigit, string(c))
}

func digitSymbol(v int) byte {
	return base62Digits[v]
}
