// Package advice implements the untrusted, read-only side-input channel
// a transaction's assembler populates before execution begins. Entries
// map a hash digest to the ordered field elements of its preimage. The
// channel itself never guarantees that mapping: the guest must obtain
// every value through LoadPreimage, which re-derives the digest and
// refuses to hand out a preimage that does not check out.
package advice

import (
	"github.com/pkg/errors"

	"novalith.com/note_transfer/felt"
)

var (
	// ErrAbsentEntry is returned when no entry exists for a digest.
	ErrAbsentEntry = errors.New("advice: no entry for digest")
	// ErrIntegrity is returned when a stored preimage does not hash
	// back to the digest it is filed under.
	ErrIntegrity = errors.New("advice: preimage does not hash to claimed digest")
	// ErrLengthMismatch is returned when a load requests a different
	// number of words than the entry holds.
	ErrLengthMismatch = errors.New("advice: entry length does not match requested word count")
)

// Provider holds the advice entries for one execution. It is populated
// entirely before the execution starts and read-only thereafter; the
// guest reaches it only through Len and LoadPreimage.
type Provider struct {
	entries map[felt.Word][]felt.Element
}

func NewProvider() *Provider {
	return &Provider{entries: make(map[felt.Word][]felt.Element)}
}

// Insert stores elems under digest. Host side only. Insert does not
// check that digest is the hash of elems; that check happens at read
// time, which is the point of the protocol.
func (p *Provider) Insert(digest felt.Word, elems []felt.Element) {
	cp := make([]felt.Element, len(elems))
	copy(cp, elems)
	p.entries[digest] = cp
}

// Len returns the number of field elements stored under digest.
func (p *Provider) Len(digest felt.Word) (int, error) {
	entry, ok := p.entries[digest]
	if !ok {
		return 0, errors.Wrapf(ErrAbsentEntry, "digest %s", digest)
	}
	return len(entry), nil
}

// LoadPreimage returns the words*4 elements stored under digest,
// re-deriving their hash on the way out. A mismatch with the claimed
// digest fails with ErrIntegrity and nothing is returned: Preimage
// values exist only for data that passed the check.
func (p *Provider) LoadPreimage(words int, digest felt.Word) (Preimage, error) {
	entry, ok := p.entries[digest]
	if !ok {
		return Preimage{}, errors.Wrapf(ErrAbsentEntry, "digest %s", digest)
	}
	if words*felt.WordLen != len(entry) {
		return Preimage{}, errors.Wrapf(ErrLengthMismatch, "requested %d words, entry under %s holds %d elements", words, digest, len(entry))
	}
	if recomputed := felt.HashElements(entry); !recomputed.Equal(digest) {
		return Preimage{}, errors.Wrapf(ErrIntegrity, "claimed %s, recomputed %s", digest, recomputed)
	}
	cp := make([]felt.Element, len(entry))
	copy(cp, entry)
	return Preimage{elems: cp}, nil
}

// Preimage is a verified read from the provider. Its elements are
// reachable only after LoadPreimage's digest check has passed, so no
// code path can consume unchecked advice data.
type Preimage struct {
	elems []felt.Element
}

func (pre Preimage) Len() int {
	return len(pre.elems)
}

// At returns the element at offset i.
func (pre Preimage) At(i int) felt.Element {
	return pre.elems[i]
}

// Word returns the four elements starting at offset start as a word.
func (pre Preimage) Word(start int) felt.Word {
	return felt.WordFromElements(pre.elems[start : start+felt.WordLen])
}

// Elements returns a copy of the verified elements.
func (pre Preimage) Elements() []felt.Element {
	cp := make([]felt.Element, len(pre.elems))
	copy(cp, pre.elems)
	return cp
}
