package core

import (
	"novalith.com/note_transfer/advice"
	"novalith.com/note_transfer/felt"
)

// NumStorageSlots is the fixed number of storage slots per account.
const NumStorageSlots = 4

// StorageMap is a key-to-word map held in one storage slot.
type StorageMap map[felt.Word]felt.Word

// Storage is an account's fixed slot array. Slots are lazily
// initialized key-to-word maps.
type Storage [NumStorageSlots]StorageMap

func (s Storage) clone() Storage {
	var cp Storage
	for i, slot := range s {
		if slot == nil {
			continue
		}
		cp[i] = make(StorageMap, len(slot))
		for k, v := range slot {
			cp[i][k] = v
		}
	}
	return cp
}

// Get reads the word under key in slot; absent keys read as the zero
// word.
func (s *Storage) Get(slot int, key felt.Word) felt.Word {
	if s[slot] == nil {
		return felt.Word{}
	}
	return s[slot][key]
}

// Set writes value under key in slot.
func (s *Storage) Set(slot int, key, value felt.Word) {
	if s[slot] == nil {
		s[slot] = make(StorageMap)
	}
	s[slot][key] = value
}

// Account is the mutable entity an execution reads and writes: an
// identity, an asset vault, and fixed storage slots. State is a
// private view per execution, committed in full on success or
// discarded in full on any abort.
type Account struct {
	ID      AccountID
	Vault   Vault
	Storage Storage
}

// NewAccount creates an empty account with the given identity.
func NewAccount(id AccountID) *Account {
	return &Account{ID: id, Vault: NewVault()}
}

func (a *Account) clone() *Account {
	return &Account{
		ID:      a.ID,
		Vault:   a.Vault.clone(),
		Storage: a.Storage.clone(),
	}
}

// Execute runs fn against a working copy of the account and commits
// the copy back only if fn returns nil. Any error leaves the account
// exactly as it was and discards every note fn created:
// transaction-level all-or-nothing rollback. input, if non-nil, is the
// note being consumed by this execution.
func (a *Account) Execute(prov *advice.Provider, input *Note, fn func(*Transaction) error) ([]Note, error) {
	tx := &Transaction{
		account: a.clone(),
		advice:  prov,
		input:   input,
	}
	if err := fn(tx); err != nil {
		return nil, err
	}
	a.Vault = tx.account.Vault
	a.Storage = tx.account.Storage
	return tx.created, nil
}
