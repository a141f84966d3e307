package felt

// The protocol hash is a sponge over the goldilocks field with a
// Poseidon2-style permutation: a state of 12 elements, of which the
// first 4 are the capacity and the remaining 8 the rate. External
// rounds apply the x^7 S-box to the whole state and mix with a
// circulant matrix; internal rounds apply the S-box to a single
// element and mix with a diagonal-plus-sum matrix.
const (
	stateWidth  = 12
	rateWidth   = 8
	rateStart   = 4
	digestStart = 4

	externalRounds = 8
	internalRounds = 22
)

// HashElements absorbs elems into the sponge and returns the one-word
// digest. The first capacity element is seeded with the input length so
// inputs of different lengths never share a permutation transcript.
func HashElements(elems []Element) Word {
	var state [stateWidth]Element
	state[0].SetUint64(uint64(len(elems)))

	for start := 0; start < len(elems) || start == 0; start += rateWidth {
		end := start + rateWidth
		if end > len(elems) {
			end = len(elems)
		}
		for j := start; j < end; j++ {
			state[rateStart+j-start].Add(&state[rateStart+j-start], &elems[j])
		}
		permute(&state)
	}

	var digest Word
	copy(digest[:], state[digestStart:digestStart+WordLen])
	return digest
}

// HashWords is HashElements over the concatenation of words.
func HashWords(words ...Word) Word {
	elems := make([]Element, 0, len(words)*WordLen)
	for _, w := range words {
		elems = append(elems, w[:]...)
	}
	return HashElements(elems)
}

func permute(state *[stateWidth]Element) {
	round := 0
	for i := 0; i < externalRounds/2; i++ {
		externalRound(state, round)
		round++
	}
	for i := 0; i < internalRounds; i++ {
		internalRound(state, round)
		round++
	}
	for i := 0; i < externalRounds/2; i++ {
		externalRound(state, round)
		round++
	}
}

func externalRound(state *[stateWidth]Element, round int) {
	for i := range state {
		state[i].Add(&state[i], &roundConstants[round][i])
		sbox(&state[i])
	}
	mixExternal(state)
}

func internalRound(state *[stateWidth]Element, round int) {
	state[0].Add(&state[0], &roundConstants[round][0])
	sbox(&state[0])
	mixInternal(state)
}

// sbox raises x to the 7th power in place.
func sbox(x *Element) {
	var x2, x4, x6 Element
	x2.Square(x)
	x4.Square(&x2)
	x6.Mul(&x2, &x4)
	x.Mul(x, &x6)
}

// mixExternal multiplies the state by the circulant matrix whose first
// row is mixRow.
func mixExternal(state *[stateWidth]Element) {
	var out [stateWidth]Element
	for i := 0; i < stateWidth; i++ {
		var acc, term Element
		for j := 0; j < stateWidth; j++ {
			term.Mul(&mixRow[(j-i+stateWidth)%stateWidth], &state[j])
			acc.Add(&acc, &term)
		}
		out[i] = acc
	}
	*state = out
}

// mixInternal multiplies the state by diag(mixDiag) + J: every output
// element is the state sum plus its own diagonal term.
func mixInternal(state *[stateWidth]Element) {
	var sum Element
	for i := range state {
		sum.Add(&sum, &state[i])
	}
	for i := range state {
		var term Element
		term.Mul(&state[i], &mixDiag[i])
		state[i].Add(&term, &sum)
	}
}
