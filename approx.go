package fracdex

// decodedKey is a key split into base62 digit values. The integer class
// offset is applied by the callers so that float and decimal decoding
// share the same layout.
type decodedKey struct {
	negative   bool
	intDigits  []int
	fracDigits []int
}

func decodeKey(key string) (decodedKey, error) {
	if err := validateOrderKey(key); err != nil {
		return decodedKey{}, err
	}
	ip, err := getIntPart(key)
	if err != nil {
		return decodedKey{}, err
	}
	d := decodedKey{
		negative:   ip[0] < 'a',
		intDigits:  make([]int, 0, len(ip)-1),
		fracDigits: make([]int, 0, len(key)-len(ip)),
	}
	for i := 1; i < len(key); i++ {
		p, err := digitValue(key[i])
		if err != nil {
			return decodedKey{}, newError(KindInvalidKey, key)
		}
		if i < len(ip) {
			d.intDigits = append(d.intDigits, p)
		} else {
			d.fracDigits = append(d.fracDigits, p)
		}
	}
	return d, nil
}

// offsetPowers returns k such that the class offset of d is the sum of
// 62^1..62^k: the integers below it for a lowercase head, the integers from
// its lowest value up to -1 for an uppercase head.
func (d decodedKey) offsetPowers() int {
	if d.negative {
		return len(d.intDigits)
	}
	return len(d.intDigits) - 1
}

// Float64Approx converts a key as generated by KeyBetween() to a float64.
// Because the range of keys is far larger than float64 can represent
// accurately, this is necessarily approximate. But for many use cases it should
// be, as they say, close enough for jazz.
//
// The mapping is monotone: a <= b implies Float64Approx(a) <= Float64Approx(b).
// "a0" is 0, "Zz" is -1 and "b00" is 62.
func Float64Approx(key string) (float64, error) {
	d, err := decodeKey(key)
	if err != nil {
		return 0.0, err
	}

	base := float64(len(base62Digits))
	rv := float64(0)
	for _, p := range d.intDigits {
		rv = rv*base + float64(p)
	}

	offset, pow := float64(0), float64(1)
	for k := 1; k <= d.offsetPowers(); k++ {
		pow *= base
		offset += pow
	}
	if d.negative {
		rv -= offset
	} else {
		rv += offset
	}

	scale := float64(1)
	for _, p := range d.fracDigits {
		scale *= base
		rv += float64(p) / scale
	}
	return rv, nil
}
