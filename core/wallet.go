package core

// BasicWallet is the capability surface wallet components expose to
// note and transaction scripts. One static implementation exists per
// component variant, bound at transaction-assembly time.
type BasicWallet interface {
	// ReceiveAsset adds asset to the executing account's vault.
	ReceiveAsset(tx *Transaction, asset Asset) error
	// MoveAssetToNote moves asset from the executing account's vault
	// to the note at idx.
	MoveAssetToNote(tx *Transaction, asset Asset, idx NoteIndex) error
}

// BasicWalletComponent is the standard wallet implementation.
type BasicWalletComponent struct{}

func (BasicWalletComponent) ReceiveAsset(tx *Transaction, asset Asset) error {
	return tx.AddAsset(asset)
}

// MoveAssetToNote removes asset from the vault, then attaches it to
// the note at idx. Removal strictly precedes attachment, so no
// intermediate state shows the asset in both places, and a failure at
// either step aborts the whole execution with the vault unchanged.
func (BasicWalletComponent) MoveAssetToNote(tx *Transaction, asset Asset, idx NoteIndex) error {
	removed, err := tx.RemoveAsset(asset)
	if err != nil {
		return err
	}
	return tx.AddAssetToNote(removed, idx)
}
