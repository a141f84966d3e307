package core

import (
	"github.com/pkg/errors"

	"novalith.com/note_transfer/advice"
)

// Abort taxonomy. Every one of these is fatal to the surrounding
// execution: the transaction context discards all pending mutations,
// and no retry happens inside the core.
var (
	// ErrIntegrity: a loaded preimage did not hash back to its claimed
	// digest. Surfaced by the advice channel.
	ErrIntegrity = advice.ErrIntegrity

	// ErrAbsentEntry: the advice channel holds no entry for a digest.
	// A transaction-assembly bug on the host side.
	ErrAbsentEntry = advice.ErrAbsentEntry

	// ErrAlignment: a preimage length is not a multiple of the word
	// size, or too short for the fixed parameter layout.
	ErrAlignment = errors.New("core: preimage is not word-aligned")

	// ErrEnumDecode: a note type or execution hint code outside the
	// recognized set.
	ErrEnumDecode = errors.New("core: unrecognized enum code")

	// ErrCapability: a capability precondition failed, e.g. an absent
	// or insufficient asset, or an identity mismatch in a consumption
	// guard.
	ErrCapability = errors.New("core: capability precondition failed")
)
