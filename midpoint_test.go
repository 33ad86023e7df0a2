package fracdex

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMidpoint(t *testing.T) {
	assert := assert.New(t)

	test := func(a, b, exp string) {
		act, err := midpoint(a, b)
		assert.NoError(err)
		assert.Equal(exp, act, "midpoint(%q, %q)", a, b)
	}

	test("", "", "V")
	test("V", "", "l")
	test("", "V", "G")
	test("1", "5", "3")
	test("", "1", "0V")
	test("", "01", "00V")
	test("z", "", "zV")
	test("4z", "5", "4zV")
	test("0V", "1", "0l")
}

func TestMidpointInvalidDigit(t *testing.T) {
	_, err := midpoint("", "!")
	assert.EqualError(t, err, "invalid digit: !")
	_, err = midpoint("-", "")
	assert.ErrorIs(t, err, ErrInvalidDigit)
}

func TestMidpointOrderAndCanonical(t *testing.T) {
	r := rand.New(rand.NewSource(3))

	randomFraction := func() string {
		n := r.Intn(5)
		var sb strings.Builder
		for i := 0; i < n; i++ {
			sb.WriteByte(digitSymbol(r.Intn(len(base62Digits))))
		}
		return strings.TrimRight(sb.String(), "0")
	}

	for i := 0; i < 2000; i++ {
		a, b := randomFraction(), randomFraction()
		if b != "" && a >= b {
			a, b = b, a
		}
		if a == b {
			b = ""
		}

		m, err := midpoint(a, b)
		require.NoError(t, err)
		require.Less(t, a, m)
		if b != "" {
			require.Less(t, m, b)
		}
		require.False(t, strings.HasSuffix(m, "0"), "midpoint(%q, %q) = %q", a, b, m)
	}
}
