package core

import (
	"github.com/pkg/errors"

	"novalith.com/note_transfer/advice"
	"novalith.com/note_transfer/felt"
)

// DecodeTransferParameters is the guest half of the commitment
// pipeline. Given the digest the host committed to, it looks up the
// preimage length, checks word alignment, loads the preimage under the
// advice channel's integrity check, and decodes the fixed layout into
// structured parameters. Every failure is a fatal abort of the
// surrounding execution.
func DecodeTransferParameters(prov *advice.Provider, digest felt.Word) (NoteParameters, error) {
	n, err := prov.Len(digest)
	if err != nil {
		return NoteParameters{}, err
	}
	if n%felt.WordLen != 0 {
		return NoteParameters{}, errors.Wrapf(ErrAlignment, "preimage holds %d elements", n)
	}
	pre, err := prov.LoadPreimage(n/felt.WordLen, digest)
	if err != nil {
		return NoteParameters{}, err
	}
	if pre.Len() < encodedParamsLen {
		return NoteParameters{}, errors.Wrapf(ErrAlignment, "preimage holds %d elements, parameter layout needs %d", pre.Len(), encodedParamsLen)
	}

	noteType := NoteType(felt.Uint64(pre.At(noteTypeIndex)))
	if !noteType.valid() {
		return NoteParameters{}, errors.Wrapf(ErrEnumDecode, "note type %d", noteType)
	}
	hint := ExecutionHint(felt.Uint64(pre.At(executionHintIndex)))
	if !hint.valid() {
		return NoteParameters{}, errors.Wrapf(ErrEnumDecode, "execution hint %d", hint)
	}

	return NoteParameters{
		Tag:           pre.At(tagIndex),
		Aux:           pre.At(auxIndex),
		NoteType:      noteType,
		ExecutionHint: hint,
		Recipient:     pre.Word(recipientStart),
		Asset:         pre.Word(assetStart),
	}, nil
}

// TransferScript is the transaction-script component that verifies and
// decodes the host's commitment, creates the note it describes, and
// moves the committed asset from the executing account into it.
type TransferScript struct {
	Wallet BasicWallet
}

// Run implements TransactionScript. arg is the public argument: the
// commitment digest with its elements reversed per the calling
// convention, un-reversed here before any advice lookup.
func (s TransferScript) Run(tx *Transaction, arg felt.Word) error {
	params, err := DecodeTransferParameters(tx.Advice(), arg.Reversed())
	if err != nil {
		return err
	}
	idx, err := tx.CreateNote(params.Tag, params.Aux, params.NoteType, params.ExecutionHint, params.Recipient)
	if err != nil {
		return err
	}
	return s.Wallet.MoveAssetToNote(tx, AssetFromWord(params.Asset), idx)
}

// scriptRoot derives the commitment identifying a built-in script
// component by name.
func scriptRoot(name string) felt.Word {
	elems := make([]felt.Element, len(name))
	for i := 0; i < len(name); i++ {
		elems[i] = felt.New(uint64(name[i]))
	}
	return felt.HashElements(elems)
}
