package fracdex

// smallestInt is the lowest integer part. It is only valid as the prefix of
// a key with a non-empty fractional part.
const smallestInt = "A00000000000000000000000000"

// zero is the key returned when neither bound is given.
const zero = "a0"

// getIntLen returns the length of the integer part, head included, implied
// by head. Lowercase heads grow upwards from 'a' (2), uppercase heads grow
// downwards from 'Z' (2).
func getIntLen(head byte) (int, error) {
	if head >= 'a' && head <= 'z' {
		return int(head - 'a' + 2), nil
	} else if head >= 'A' && head <= 'Z' {
		return int('Z' - head + 2), nil
	} else {
		return 0, newError(KindInvalidOrderKeyHead, string(head))
	}
}

func getIntPart(key string) (string, error) {
	if key == "" {
		return "", newError(KindInvalidOrderKey, key)
	}
	intPartLen, err := getIntLen(key[0])
	if err != nil {
		return "", err
	}
	if intPartLen > len(key) {
		return "", newError(KindInvalidOrderKey, key)
	}
	return key[0:intPartLen], nil
}

func validateInt(i string) error {
	if i == "" {
		return newError(KindInvalidKeyInteger, i)
	}
	exp, err := getIntLen(i[0])
	if err != nil {
		return err
	}
	if len(i) != exp {
		return newError(KindInvalidKeyInteger, i)
	}
	for j := 1; j < len(i); j++ {
		if _, err := digitValue(i[j]); err != nil {
			return err
		}
	}
	return nil
}

// incrementInt returns the integer part following x. An empty result means
// x is the largest representable integer.
func incrementInt(x string) (string, error) {
	err := validateInt(x)
	if err != nil {
		return "", err
	}
	head := x[0]
	digs := []byte(x[1:])
	carry := true
	for i := len(digs) - 1; carry && i >= 0; i-- {
		d, _ := digitValue(digs[i])
		if d+1 == len(base62Digits) {
			digs[i] = minDigit
		} else {
			digs[i] = digitSymbol(d + 1)
			carry = false
		}
	}
	if !carry {
		return string(head) + string(digs), nil
	}

	switch head {
	case 'Z':
		return zero, nil
	case 'z':
		return "", nil
	}
	h := head + 1
	if h > 'a' {
		digs = append(digs, minDigit)
	} else {
		digs = digs[1:]
	}
	return string(h) + string(digs), nil
}

// decrementInt returns the integer part preceding x. An empty result means
// x is the smallest representable integer.
func decrementInt(x string) (string, error) {
	err := validateInt(x)
	if err != nil {
		return "", err
	}
	head := x[0]
	digs := []byte(x[1:])
	borrow := true
	for i := len(digs) - 1; borrow && i >= 0; i-- {
		d, _ := digitValue(digs[i])
		if d == 0 {
			digs[i] = maxDigit
		} else {
			digs[i] = digitSymbol(d - 1)
			borrow = false
		}
	}
	if !borrow {
		return string(head) + string(digs), nil
	}

	switch head {
	case 'a':
		return "Z" + string(maxDigit), nil
	case 'A':
		return "", nil
	}
	h := head - 1
	if h < 'Z' {
		digs = append(digs, maxDigit)
	} else {
		digs = digs[1:]
	}
	return string(h) + string(digs), nil
}
