package fracdex

import "strings"

// KeyBetween returns a key that sorts lexicographically between a and b.
// Either a or b can be empty strings. If a is empty it indicates smallest key,
// If b is empty it indicates largest key.
// b must be empty string or > a.
func KeyBetween(a, b string) (string, error) {
	return keyBetween(a, b, NoJitter{}, 0)
}

func keyBetween(a, b string, j Jitter, jitterRange int) (string, error) {
	if err := validateBounds(a, b); err != nil {
		return "", err
	}
	if a == "" {
		if b == "" {
			return zero, nil
		}

		ib, err := getIntPart(b)
		if err != nil {
			return "", err
		}
		fb := b[len(ib):]
		if ib == smallestInt {
			m, err := midpointJitter("", fb, j, jitterRange)
			if err != nil {
				return "", err
			}
			return ib + m, nil
		}
		if ib < b {
			return ib, nil
		}
		res, err := decrementInt(ib)
		if err != nil {
			return "", err
		}
		if res == "" {
			return "", newError(KindRangeUnderflow, b)
		}
		return res, nil
	}

	if b == "" {
		ia, err := getIntPart(a)
		if err != nil {
			return "", err
		}
		fa := a[len(ia):]
		i, err := incrementInt(ia)
		if err != nil {
			return "", err
		}
		if i == "" {
			m, err := midpointJitter(fa, "", j, jitterRange)
			if err != nil {
				return "", err
			}
			return ia + m, nil
		}
		return i, nil
	}

	ia, err := getIntPart(a)
	if err != nil {
		return "", err
	}
	fa := a[len(ia):]
	ib, err := getIntPart(b)
	if err != nil {
		return "", err
	}
	fb := b[len(ib):]
	if ia == ib {
		m, err := midpointJitter(fa, fb, j, jitterRange)
		if err != nil {
			return "", err
		}
		return ia + m, nil
	}
	i, err := incrementInt(ia)
	if err != nil {
		return "", err
	}
	if i == "" {
		return "", newError(KindRangeOverflow, a)
	}
	if i < b {
		return i, nil
	}
	m, err := midpointJitter(fa, "", j, jitterRange)
	if err != nil {
		return "", err
	}
	return ia + m, nil
}

// ValidateKey reports whether key is a well-formed, canonical order key.
// Every key returned by this package passes.
func ValidateKey(key string) error {
	return validateOrderKey(key)
}

func validateOrderKey(key string) error {
	if key == "" || key == smallestInt {
		return newError(KindInvalidOrderKey, key)
	}
	// getIntPart will return error if the first character is bad,
	// or the key is too short.
	i, err := getIntPart(key)
	if err != nil {
		return err
	}
	for k := 1; k < len(key); k++ {
		if _, err := digitValue(key[k]); err != nil {
			return err
		}
	}
	f := key[len(i):]
	if strings.HasSuffix(f, string(minDigit)) {
		return newError(KindInvalidOrderKey, key)
	}
	return nil
}

func validateBounds(a, b string) error {
	if a != "" {
		if err := validateOrderKey(a); err != nil {
			return err
		}
	}
	if b != "" {
		if err := validateOrderKey(b); err != nil {
			return err
		}
	}
	if a != "" && b != "" && a >= b {
		return &Error{Kind: KindKeysOutOfOrder, Input: a, Upper: b}
	}
	return nil
}

// NKeysBetween returns n keys between a and b that sorts lexicographically.
// Either a or b can be empty strings. If a is empty it indicates smallest key,
// If b is empty it indicates largest key.
// b must be empty string or > a.
func NKeysBetween(a, b string, n uint) ([]string, error) {
	return nKeysBetween(a, b, n, NoJitter{}, 0)
}

func nKeysBetween(a, b string, n uint, j Jitter, jitterRange int) ([]string, error) {
	if err := validateBounds(a, b); err != nil {
		return nil, err
	}
	if n == 0 {
		return []string{}, nil
	}
	if n == 1 {
		c, err := keyBetween(a, b, j, jitterRange)
		if err != nil {
			return nil, err
		}
		return []string{c}, nil
	}
	if b == "" {
		c, err := keyBetween(a, b, j, jitterRange)
		if err != nil {
			return nil, err
		}
		result := make([]string, 0, n)
		result = append(result, c)
		for i := 0; i < int(n)-1; i++ {
			c, err = keyBetween(c, b, j, jitterRange)
			if err != nil {
				return nil, err
			}
			result = append(result, c)
		}
		return result, nil
	}
	if a == "" {
		c, err := keyBetween(a, b, j, jitterRange)
		if err != nil {
			return nil, err
		}
		result := make([]string, 0, n)
		result = append(result, c)
		for i := 0; i < int(n)-1; i++ {
			c, err = keyBetween(a, c, j, jitterRange)
			if err != nil {
				return nil, err
			}
			result = append(result, c)
		}
		reverse(result)
		return result, nil
	}

	// both bounds closed: bisect so that the keys stay short.
	mid := n / 2
	c, err := keyBetween(a, b, j, jitterRange)
	if err != nil {
		return nil, err
	}
	result := make([]string, 0, n)
	left, err := nKeysBetween(a, c, mid, j, jitterRange)
	if err != nil {
		return nil, err
	}
	result = append(result, left...)
	result = append(result, c)
	right, err := nKeysBetween(c, b, n-mid-1, j, jitterRange)
	if err != nil {
		return nil, err
	}
	result = append(result, right...)
	return result, nil
}

func reverse(values []string) {
	for i := 0; i < len(values)/2; i++ {
		j := len(values) - i - 1
		values[i], values[j] = values[j], values[i]
	}
}
