// Package felt provides the protocol's numeric primitives: field
// elements modulo the goldilocks prime, 4-element words, and the
// sponge hash used for every digest.
package felt

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/field/goldilocks"
)

// Element is a field element modulo p = 2^64 - 2^32 + 1, the atomic
// numeric unit of the protocol. All arithmetic wraps at the modulus.
type Element = goldilocks.Element

// WordLen is the number of elements in a Word.
const WordLen = 4

// Word is an ordered 4-tuple of field elements, used uniformly for
// digests, identifiers, recipients, and packed asset records.
type Word [WordLen]Element

// New returns the field element representing v.
func New(v uint64) Element {
	return goldilocks.NewElement(v)
}

// Zero returns the additive identity.
func Zero() Element {
	var z Element
	return z
}

// One returns the multiplicative identity.
func One() Element {
	return goldilocks.One()
}

// Modulus returns the field modulus p.
func Modulus() *big.Int {
	return goldilocks.Modulus()
}

// Uint64 returns the canonical integer value of e.
func Uint64(e Element) uint64 {
	return e.Bits()[0]
}

// WordFromUint64s builds a word from four canonical integer values.
func WordFromUint64s(a, b, c, d uint64) Word {
	return Word{New(a), New(b), New(c), New(d)}
}

// WordFromElements builds a word from exactly WordLen elements.
func WordFromElements(elems []Element) Word {
	if len(elems) != WordLen {
		panic("felt: word must be built from exactly 4 elements")
	}
	var w Word
	copy(w[:], elems)
	return w
}

// Elements returns the word's elements as a slice.
func (w Word) Elements() []Element {
	return w[:]
}

// Equal reports whether two words hold the same elements in the same order.
func (w Word) Equal(other Word) bool {
	for i := range w {
		if !w[i].Equal(&other[i]) {
			return false
		}
	}
	return true
}

// Reversed returns the word with its element order reversed. The
// execution environment's argument convention reads the most recently
// pushed element first, so digests cross the host/guest boundary in
// reversed form.
func (w Word) Reversed() Word {
	return Word{w[3], w[2], w[1], w[0]}
}

// Uint64s returns the canonical integer values of the word's elements.
func (w Word) Uint64s() [WordLen]uint64 {
	var out [WordLen]uint64
	for i := range w {
		out[i] = Uint64(w[i])
	}
	return out
}

func (w Word) String() string {
	u := w.Uint64s()
	return fmt.Sprintf("[%d, %d, %d, %d]", u[0], u[1], u[2], u[3])
}

// RandomWord draws a uniformly random word, used for note serial numbers.
func RandomWord() Word {
	var w Word
	for i := range w {
		if _, err := w[i].SetRandom(); err != nil {
			panic("felt: failed to draw randomness: " + err.Error())
		}
	}
	return w
}
