package fracdex

// midpoint returns the shortest digit string m with a < m, and m < b when b
// is non-empty. a == "" means the first possible string, b == "" the last.
// The result never ends in '0'.
func midpoint(a, b string) (string, error) {
	return midpointJitter(a, b, NoJitter{}, 0)
}

// midpointJitter is midpoint with the chosen digit allowed to drift up to
// jitterRange steps from the centre. With jitterRange <= 0 or NoJitter the
// result is identical to midpoint.
func midpointJitter(a, b string, j Jitter, jitterRange int) (string, error) {
	if b != "" {
		// remove longest common prefix.  pad `a` with 0s as we
		// go.  `b` cannot end before `a` while traversing the
		// common prefix.
		i := 0
		for ; i < len(b); i++ {
			c := byte(minDigit)
			if len(a) > i {
				c = a[i]
			}
			if c != b[i] {
				break
			}
		}
		if i > 0 {
			sa := ""
			if i <= len(a) {
				sa = a[i:]
			}
			tail, err := midpointJitter(sa, b[i:], j, jitterRange)
			if err != nil {
				return "", err
			}
			return b[0:i] + tail, nil
		}
	}

	// first digits (or lack of digit) are different
	digitA := 0
	if a != "" {
		d, err := digitValue(a[0])
		if err != nil {
			return "", err
		}
		digitA = d
	}
	digitB := len(base62Digits)
	if b != "" {
		d, err := digitValue(b[0])
		if err != nil {
			return "", err
		}
		digitB = d
	}

	if digitB-digitA > 1 {
		mid := (digitA + digitB + 1) / 2
		if jitterRange > 0 {
			lo := max(digitA+1, mid-jitterRange)
			hi := min(digitB-1, mid+jitterRange)
			mid += j.IntnRange(lo-mid, hi-mid)
		}
		if mid <= digitA || mid >= digitB {
			return "", newError(KindInvalidMidpoint, a+"|"+b)
		}
		return string(digitSymbol(mid)), nil
	}

	// first digits are consecutive
	if len(b) > 1 {
		if jitterRange > 0 {
			next, err := digitValue(b[1])
			if err != nil {
				return "", err
			}
			// b[0] followed by any digit in [1, b[1]) still sorts below b
			// and cannot end in '0'.
			if hi := min(next-1, jitterRange); hi >= 1 {
				if k := j.IntnRange(0, hi); k > 0 {
					return b[0:1] + string(digitSymbol(k)), nil
				}
			}
		}
		return b[0:1], nil
	}

	// `b` is empty or has length 1 (a single digit).
	// the first digit of `a` is the previous digit to `b`,
	// or z if `b` is empty.
	// given, for example, midpoint("4z", "5"), return
	// "4" + midpoint("z", ""), which will become
	// "4" + "z" + midpoint("", ""), which is "4zV".
	sa := ""
	if len(a) > 0 {
		sa = a[1:]
	}
	tail, err := midpointJitter(sa, "", j, jitterRange)
	if err != nil {
		return "", err
	}
	return string(digitSymbol(digitA)) + tail, nil
}
