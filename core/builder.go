package core

import (
	"novalith.com/note_transfer/advice"
	"novalith.com/note_transfer/felt"
)

// BuildTransferCommitment is the host half of the commitment pipeline.
// It canonicalizes params into the fixed 12-element layout, computes
// the digest of that encoding, publishes (digest -> encoding) into the
// advice provider, and returns the digest with its element order
// reversed, ready to be supplied as the execution's public argument,
// along with the canonical encoding.
func BuildTransferCommitment(params NoteParameters, prov *advice.Provider) (felt.Word, []felt.Element) {
	encoded := params.Encode()
	if len(encoded)%felt.WordLen != 0 {
		// Unreachable with the fixed layout; a breach here means the
		// encoder itself is broken.
		panic("core: encoded transfer parameters are not word-aligned")
	}
	digest := felt.HashElements(encoded)
	prov.Insert(digest, encoded)
	return digest.Reversed(), encoded
}

// NewP2IDRecipient builds the recipient specification for a note that
// only the target account can consume: a fresh serial number, the
// identity-guard script root, and the target identity as inputs.
func NewP2IDRecipient(target AccountID) NoteRecipient {
	return NoteRecipient{
		SerialNum:  felt.RandomWord(),
		ScriptRoot: P2IDScriptRoot,
		Inputs:     []felt.Element{target.Prefix, target.Suffix},
	}
}
