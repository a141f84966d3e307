package felt

import (
	"crypto/sha256"
	"encoding/binary"
	"math/big"
)

// constantSeed pins the permutation's round-constant schedule. Changing
// it changes every digest the module produces.
const constantSeed = "novalith/note_transfer felt permutation v1"

// mixRow is the first row of the circulant external mixing matrix.
var mixRow [stateWidth]Element

// mixDiag holds the diagonal terms of the internal mixing matrix.
var mixDiag [stateWidth]Element

var roundConstants [externalRounds + internalRounds][stateWidth]Element

var mixRowValues = [stateWidth]uint64{7, 23, 8, 26, 13, 10, 9, 7, 6, 22, 21, 8}

var mixDiagValues = [stateWidth]uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}

func init() {
	for i := 0; i < stateWidth; i++ {
		mixRow[i].SetUint64(mixRowValues[i])
		mixDiag[i].SetUint64(mixDiagValues[i])
	}

	counter := 0
	for r := range roundConstants {
		for i := range roundConstants[r] {
			roundConstants[r][i] = expandConstant(counter)
			counter++
		}
	}
}

// expandConstant derives the i-th round constant from the seed: the
// first 16 bytes of SHA-256(seed || i), reduced into the field.
func expandConstant(i int) Element {
	var idx [4]byte
	binary.BigEndian.PutUint32(idx[:], uint32(i))

	h := sha256.New()
	h.Write([]byte(constantSeed))
	h.Write(idx[:])
	sum := h.Sum(nil)

	var e Element
	e.SetBigInt(new(big.Int).SetBytes(sum[:16]))
	return e
}
