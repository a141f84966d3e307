package core

import (
	"encoding/json"
	"os"

	"novalith.com/note_transfer/felt"
)

// Raw* types mirror the core entities with plain integers for JSON
// files. They should only ever appear immediately next to file IO;
// everything else manipulates the field-element forms.

// RawWord is a word as canonical integers.
type RawWord [felt.WordLen]uint64

func rawWord(w felt.Word) RawWord {
	return RawWord(w.Uint64s())
}

func (r RawWord) word() felt.Word {
	return felt.WordFromUint64s(r[0], r[1], r[2], r[3])
}

type RawFungibleBalance struct {
	FaucetPrefix uint64
	FaucetSuffix uint64
	Amount       uint64
}

type RawStorageEntry struct {
	Slot  int
	Key   RawWord
	Value RawWord
}

// RawAccount mirrors Account for reading from and writing to JSON
// files.
type RawAccount struct {
	IDPrefix    uint64
	IDSuffix    uint64
	Fungible    []RawFungibleBalance
	NonFungible []RawWord
	Storage     []RawStorageEntry
}

// RawNote mirrors a consumable Note (recipient specification attached)
// for JSON files.
type RawNote struct {
	SenderPrefix  uint64
	SenderSuffix  uint64
	NoteType      uint64
	Tag           uint64
	ExecutionHint uint64
	Aux           uint64
	Assets        []RawWord
	SerialNum     RawWord
	ScriptRoot    RawWord
	Inputs        []uint64
}

// ConvertAccountToRawAccount converts an Account for writing to a json file.
func ConvertAccountToRawAccount(acct *Account) RawAccount {
	raw := RawAccount{
		IDPrefix: felt.Uint64(acct.ID.Prefix),
		IDSuffix: felt.Uint64(acct.ID.Suffix),
	}
	for _, asset := range acct.Vault.Assets() {
		if asset.Kind == AssetFungible {
			raw.Fungible = append(raw.Fungible, RawFungibleBalance{
				FaucetPrefix: felt.Uint64(asset.Faucet.Prefix),
				FaucetSuffix: felt.Uint64(asset.Faucet.Suffix),
				Amount:       asset.Amount,
			})
		} else {
			raw.NonFungible = append(raw.NonFungible, rawWord(asset.Word()))
		}
	}
	for slot, m := range acct.Storage {
		for key, value := range m {
			raw.Storage = append(raw.Storage, RawStorageEntry{Slot: slot, Key: rawWord(key), Value: rawWord(value)})
		}
	}
	return raw
}

// ConvertRawAccountToAccount converts a RawAccount read from a json file.
func ConvertRawAccountToAccount(raw RawAccount) *Account {
	acct := NewAccount(AccountID{Prefix: felt.New(raw.IDPrefix), Suffix: felt.New(raw.IDSuffix)})
	for _, balance := range raw.Fungible {
		faucet := FaucetID{Prefix: felt.New(balance.FaucetPrefix), Suffix: felt.New(balance.FaucetSuffix)}
		if err := acct.Vault.Add(FungibleAsset(faucet, balance.Amount)); err != nil {
			panic("Error restoring fungible balance: " + err.Error())
		}
	}
	for _, w := range raw.NonFungible {
		if err := acct.Vault.Add(AssetFromWord(w.word())); err != nil {
			panic("Error restoring non-fungible asset: " + err.Error())
		}
	}
	for _, entry := range raw.Storage {
		acct.Storage.Set(entry.Slot, entry.Key.word(), entry.Value.word())
	}
	return acct
}

// ConvertNoteToRawNote converts a consumable Note for writing to a json file.
func ConvertNoteToRawNote(note *Note) RawNote {
	if note.Recipient == nil {
		panic("cannot serialize a note without its recipient specification")
	}
	raw := RawNote{
		SenderPrefix:  felt.Uint64(note.Metadata.Sender.Prefix),
		SenderSuffix:  felt.Uint64(note.Metadata.Sender.Suffix),
		NoteType:      uint64(note.Metadata.NoteType),
		Tag:           felt.Uint64(note.Metadata.Tag),
		ExecutionHint: uint64(note.Metadata.ExecutionHint),
		Aux:           felt.Uint64(note.Metadata.Aux),
		SerialNum:     rawWord(note.Recipient.SerialNum),
		ScriptRoot:    rawWord(note.Recipient.ScriptRoot),
	}
	for _, asset := range note.Assets {
		raw.Assets = append(raw.Assets, rawWord(asset.Word()))
	}
	for _, input := range note.Recipient.Inputs {
		raw.Inputs = append(raw.Inputs, felt.Uint64(input))
	}
	return raw
}

// ConvertRawNoteToNote converts a RawNote read from a json file. The
// recipient digest is re-derived from the attached specification.
func ConvertRawNoteToNote(raw RawNote) *Note {
	inputs := make([]felt.Element, len(raw.Inputs))
	for i, v := range raw.Inputs {
		inputs[i] = felt.New(v)
	}
	recipient := &NoteRecipient{
		SerialNum:  raw.SerialNum.word(),
		ScriptRoot: raw.ScriptRoot.word(),
		Inputs:     inputs,
	}
	note := &Note{
		Metadata: NoteMetadata{
			Sender:        AccountID{Prefix: felt.New(raw.SenderPrefix), Suffix: felt.New(raw.SenderSuffix)},
			NoteType:      NoteType(raw.NoteType),
			Tag:           felt.New(raw.Tag),
			ExecutionHint: ExecutionHint(raw.ExecutionHint),
			Aux:           felt.New(raw.Aux),
		},
		RecipientDigest: recipient.Digest(),
		Recipient:       recipient,
	}
	for _, w := range raw.Assets {
		note.Assets = append(note.Assets, AssetFromWord(w.word()))
	}
	return note
}

func writeJson(filePath string, data interface{}) error {
	file, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer func(file *os.File) {
		err := file.Close()
		if err != nil {
			panic("Couldn't close file" + err.Error())
		}
	}(file)

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func readJson(filePath string, data interface{}) error {
	file, err := os.Open(filePath)
	if err != nil {
		return err
	}
	defer func(file *os.File) {
		err := file.Close()
		if err != nil {
			panic("Error closing file: " + err.Error())
		}
	}(file)

	decoder := json.NewDecoder(file)
	return decoder.Decode(data)
}

// WriteAccountToFile writes acct as a RawAccount json file.
func WriteAccountToFile(filePath string, acct *Account) {
	if err := writeJson(filePath, ConvertAccountToRawAccount(acct)); err != nil {
		panic("Error writing raw account to file: " + err.Error())
	}
}

// ReadAccountFromFile reads a RawAccount json file into an Account.
func ReadAccountFromFile(filePath string) *Account {
	var raw RawAccount
	if err := readJson(filePath, &raw); err != nil {
		panic("Error reading raw account from file: " + err.Error())
	}
	return ConvertRawAccountToAccount(raw)
}

// WriteNoteToFile writes note as a RawNote json file.
func WriteNoteToFile(filePath string, note *Note) {
	if err := writeJson(filePath, ConvertNoteToRawNote(note)); err != nil {
		panic("Error writing raw note to file: " + err.Error())
	}
}

// ReadNoteFromFile reads a RawNote json file into a Note.
func ReadNoteFromFile(filePath string) *Note {
	var raw RawNote
	if err := readJson(filePath, &raw); err != nil {
		panic("Error reading raw note from file: " + err.Error())
	}
	return ConvertRawNoteToNote(raw)
}
