package core

import (
	"github.com/pkg/errors"

	"novalith.com/note_transfer/felt"
)

// P2IDScriptRoot identifies the identity-guard note script.
var P2IDScriptRoot = scriptRoot("p2id")

// P2IDScript releases a note's assets only to the account named in the
// note's inputs. Consumption walks a fixed state machine:
// started -> validated -> completed. Release happens strictly after
// validation; a mismatch aborts with zero assets moved.
type P2IDScript struct {
	Wallet BasicWallet
}

// Root identifies the script for the consumption-time root check.
func (s P2IDScript) Root() felt.Word {
	return P2IDScriptRoot
}

func (s P2IDScript) Run(tx *Transaction) error {
	if err := s.validate(tx); err != nil {
		return err
	}
	return s.release(tx)
}

// validate compares the note's embedded target identity against the
// executing account's identity.
func (s P2IDScript) validate(tx *Transaction) error {
	inputs := tx.GetInputs()
	if len(inputs) < 2 {
		return errors.Wrap(ErrCapability, "note carries no target identity")
	}
	target := AccountID{Prefix: inputs[0], Suffix: inputs[1]}
	if id := tx.GetID(); !id.Equal(target) {
		return errors.Wrapf(ErrCapability, "note targets %s, executing account is %s", target, id)
	}
	return nil
}

// release hands every asset attached to the note to the account's
// asset-receiving capability.
func (s P2IDScript) release(tx *Transaction) error {
	for _, asset := range tx.GetAssets() {
		if err := s.Wallet.ReceiveAsset(tx, asset); err != nil {
			return err
		}
	}
	return nil
}
