// Package core holds the transaction model: accounts with asset vaults
// and keyed storage, notes that carry assets between accounts, and the
// scripts that create and consume them.
package core

import (
	"novalith.com/note_transfer/felt"
)

// Canonical transfer-parameter layout: 12 field elements at fixed
// word-aligned offsets.
const (
	tagIndex           = 0
	auxIndex           = 1
	noteTypeIndex      = 2
	executionHintIndex = 3
	recipientStart     = 4
	assetStart         = 8

	encodedParamsLen = 12
)

// NoteType describes the storage visibility of a note.
type NoteType uint64

const (
	NoteTypePublic    NoteType = 1
	NoteTypePrivate   NoteType = 2
	NoteTypeEncrypted NoteType = 3
)

func (t NoteType) valid() bool {
	return t >= NoteTypePublic && t <= NoteTypeEncrypted
}

// ExecutionHint tells the operator when a note is expected to become
// consumable. The hint carries no authority; consumption is still
// guarded by the note script.
type ExecutionHint uint64

const (
	HintNone        ExecutionHint = 0
	HintAlways      ExecutionHint = 1
	HintAfterBlock  ExecutionHint = 2
	HintOnBlockSlot ExecutionHint = 3
)

func (h ExecutionHint) valid() bool {
	return h <= HintOnBlockSlot
}

// NoteParameters are the structured transfer parameters the host
// commits to and the guest decodes.
type NoteParameters struct {
	Tag           felt.Element
	Aux           felt.Element
	NoteType      NoteType
	ExecutionHint ExecutionHint
	Recipient     felt.Word
	Asset         felt.Word
}

// Encode canonicalizes the parameters into the fixed 12-element layout
// [tag, aux, note_type, execution_hint, recipient(4), asset(4)].
func (p NoteParameters) Encode() []felt.Element {
	encoded := make([]felt.Element, 0, encodedParamsLen)
	encoded = append(encoded, p.Tag, p.Aux, felt.New(uint64(p.NoteType)), felt.New(uint64(p.ExecutionHint)))
	encoded = append(encoded, p.Recipient[:]...)
	encoded = append(encoded, p.Asset[:]...)
	return encoded
}

// Equal reports whether two parameter sets are identical field by field.
func (p NoteParameters) Equal(other NoteParameters) bool {
	return p.Tag.Equal(&other.Tag) &&
		p.Aux.Equal(&other.Aux) &&
		p.NoteType == other.NoteType &&
		p.ExecutionHint == other.ExecutionHint &&
		p.Recipient.Equal(other.Recipient) &&
		p.Asset.Equal(other.Asset)
}

// AccountID identifies an account as a (prefix, suffix) element pair.
type AccountID struct {
	Prefix felt.Element
	Suffix felt.Element
}

func (id AccountID) Equal(other AccountID) bool {
	return id.Prefix.Equal(&other.Prefix) && id.Suffix.Equal(&other.Suffix)
}

func (id AccountID) String() string {
	return felt.WordFromUint64s(felt.Uint64(id.Prefix), felt.Uint64(id.Suffix), 0, 0).String()
}

// NoteMetadata is the public metadata attached to a created note.
type NoteMetadata struct {
	Sender        AccountID
	NoteType      NoteType
	Tag           felt.Element
	ExecutionHint ExecutionHint
	Aux           felt.Element
}

// NoteRecipient is the unspent-output specification a note commits to:
// a serial number, the root of the script that will guard consumption,
// and that script's inputs. The created note carries only its digest;
// whoever can reproduce the full specification may consume the note.
type NoteRecipient struct {
	SerialNum  felt.Word
	ScriptRoot felt.Word
	Inputs     []felt.Element
}

// InputsCommitment commits to a note script's inputs.
func InputsCommitment(inputs []felt.Element) felt.Word {
	return felt.HashElements(inputs)
}

// Digest commits to the full recipient specification.
func (r NoteRecipient) Digest() felt.Word {
	return felt.HashWords(r.SerialNum, r.ScriptRoot, InputsCommitment(r.Inputs))
}

// Note is a value-transfer unit: assets plus metadata plus a recipient
// commitment. It is created during one execution, emitted as output,
// and independently consumed in a later, separate execution.
type Note struct {
	Metadata        NoteMetadata
	Assets          []Asset
	RecipientDigest felt.Word

	// Recipient is the full specification behind RecipientDigest. The
	// creating execution only ever sees the digest; the host attaches
	// the specification so the note can later be consumed.
	Recipient *NoteRecipient
}

// ID derives the note identifier from its assets and recipient digest.
func (n *Note) ID() felt.Word {
	elems := make([]felt.Element, 0, len(n.Assets)*felt.WordLen+felt.WordLen)
	for _, asset := range n.Assets {
		w := asset.Word()
		elems = append(elems, w[:]...)
	}
	elems = append(elems, n.RecipientDigest[:]...)
	return felt.HashElements(elems)
}

// NoteIndex is an opaque handle to a note created by the current
// execution. It is meaningless outside that execution.
type NoteIndex int
