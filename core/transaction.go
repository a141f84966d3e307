package core

import (
	"github.com/pkg/errors"

	"novalith.com/note_transfer/advice"
	"novalith.com/note_transfer/felt"
)

// Transaction is a single-threaded execution sandbox: one program run
// against a private view of one account, with no suspension points and
// no host round trips. It is created by Account.Execute and discarded
// when the execution ends. Its methods are the capability surface that
// account and script components consume.
type Transaction struct {
	account *Account
	advice  *advice.Provider
	input   *Note
	created []Note
}

// Advice returns the execution's advice channel.
func (tx *Transaction) Advice() *advice.Provider {
	return tx.advice
}

// GetID returns the executing account's identity.
func (tx *Transaction) GetID() AccountID {
	return tx.account.ID
}

// GetInputs returns the input note's script inputs, or nothing when
// the execution consumes no note.
func (tx *Transaction) GetInputs() []felt.Element {
	if tx.input == nil || tx.input.Recipient == nil {
		return nil
	}
	return tx.input.Recipient.Inputs
}

// GetAssets returns the assets attached to the input note.
func (tx *Transaction) GetAssets() []Asset {
	if tx.input == nil {
		return nil
	}
	return tx.input.Assets
}

// AddAsset merges asset into the account vault.
func (tx *Transaction) AddAsset(asset Asset) error {
	return tx.account.Vault.Add(asset)
}

// RemoveAsset removes and returns the matching asset from the account
// vault.
func (tx *Transaction) RemoveAsset(asset Asset) (Asset, error) {
	return tx.account.Vault.Remove(asset)
}

// CreateNote creates a new note and returns its handle. Handles are
// unique within the execution. Metadata enums were already checked by
// the decoder; they are re-validated here as a safety net for callers
// that bypass it.
func (tx *Transaction) CreateNote(tag, aux felt.Element, noteType NoteType, hint ExecutionHint, recipient felt.Word) (NoteIndex, error) {
	if !noteType.valid() {
		return 0, errors.Wrapf(ErrEnumDecode, "note type %d", noteType)
	}
	if !hint.valid() {
		return 0, errors.Wrapf(ErrEnumDecode, "execution hint %d", hint)
	}
	tx.created = append(tx.created, Note{
		Metadata: NoteMetadata{
			Sender:        tx.account.ID,
			NoteType:      noteType,
			Tag:           tag,
			ExecutionHint: hint,
			Aux:           aux,
		},
		RecipientDigest: recipient,
	})
	return NoteIndex(len(tx.created) - 1), nil
}

// AddAssetToNote attaches asset to the note at idx. The asset must
// already have been removed from the vault; this call does not touch
// the vault.
func (tx *Transaction) AddAssetToNote(asset Asset, idx NoteIndex) error {
	if int(idx) < 0 || int(idx) >= len(tx.created) {
		return errors.Wrapf(ErrCapability, "no note at index %d", idx)
	}
	tx.created[idx].Assets = append(tx.created[idx].Assets, asset)
	return nil
}

// StorageGet reads the word under key in the account storage slot.
func (tx *Transaction) StorageGet(slot int, key felt.Word) felt.Word {
	return tx.account.Storage.Get(slot, key)
}

// StorageSet writes value under key in the account storage slot. The
// write is visible only inside this execution and persists only if the
// execution commits.
func (tx *Transaction) StorageSet(slot int, key, value felt.Word) {
	tx.account.Storage.Set(slot, key, value)
}

// TransactionScript is a program run once per execution with the
// execution's public argument. Implementations are bound at
// transaction-assembly time, not resolved per call.
type TransactionScript interface {
	Run(tx *Transaction, arg felt.Word) error
}

// NoteScript validates and applies the consumption of one note. Root
// identifies the script; consumption only proceeds when it matches the
// script root the note's recipient specification commits to.
type NoteScript interface {
	Root() felt.Word
	Run(tx *Transaction) error
}

// RunTransactionScript executes script against acct with arg as the
// public argument, returning the notes the execution created.
func RunTransactionScript(acct *Account, prov *advice.Provider, script TransactionScript, arg felt.Word) ([]Note, error) {
	return acct.Execute(prov, nil, func(tx *Transaction) error {
		return script.Run(tx, arg)
	})
}

// ConsumeNote executes script against acct with note as the input
// note, releasing the note's assets if the script allows it. The
// note's recipient specification must be attached and must match the
// digest the note was created with.
func ConsumeNote(acct *Account, prov *advice.Provider, note *Note, script NoteScript) error {
	if note.Recipient == nil {
		return errors.Wrap(ErrCapability, "note has no recipient specification attached")
	}
	if !note.Recipient.Digest().Equal(note.RecipientDigest) {
		return errors.Wrapf(ErrIntegrity, "recipient specification hashes to %s, note commits to %s",
			note.Recipient.Digest(), note.RecipientDigest)
	}
	if !note.Recipient.ScriptRoot.Equal(script.Root()) {
		return errors.Wrapf(ErrCapability, "note commits to script %s, supplied script is %s",
			note.Recipient.ScriptRoot, script.Root())
	}
	_, err := acct.Execute(prov, note, func(tx *Transaction) error {
		return script.Run(tx)
	})
	return err
}
