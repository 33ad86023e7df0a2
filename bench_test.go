package fracdex

import (
	"math/rand"
	"testing"
)

func BenchmarkKeyBetweenAppend(b *testing.B) {
	key := zero
	for i := 0; i < b.N; i++ {
		next, err := KeyBetween(key, "")
		if err != nil {
			b.Fatal(err)
		}
		key = next
	}
}

func BenchmarkKeyBetweenBisect(b *testing.B) {
	for i := 0; i < b.N; i++ {
		lo, hi := "a0", "a1"
		for j := 0; j < 32; j++ {
			mid, err := KeyBetween(lo, hi)
			if err != nil {
				b.Fatal(err)
			}
			if j%2 == 0 {
				lo = mid
			} else {
				hi = mid
			}
		}
	}
}

func BenchmarkNKeysBetween(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := NKeysBetween("a0", "a1", 100); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkKeyBetweenJitter(b *testing.B) {
	j := RandJitter{R: rand.New(rand.NewSource(1))}
	for i := 0; i < b.N; i++ {
		if _, err := KeyBetweenJitter("a1V", "a1l", j, 4); err != nil {
			b.Fatal(err)
		}
	}
}
