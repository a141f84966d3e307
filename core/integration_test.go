package core

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"novalith.com/note_transfer/advice"
	"novalith.com/note_transfer/felt"
)

// TestEndToEndTransfer walks the full pipeline: the host builds and
// commits the transfer parameters, the guest verifies, decodes, creates
// the note and moves the asset, and the target account consumes the
// note in a separate execution.
func TestEndToEndTransfer(t *testing.T) {
	faucet := testFaucet()
	alice := NewAccount(AccountID{Prefix: felt.New(101), Suffix: felt.New(102)})
	bob := NewAccount(AccountID{Prefix: felt.New(201), Suffix: felt.New(202)})
	require.NoError(t, alice.Vault.Add(FungibleAsset(faucet, 100)))

	// Host side: assemble the commitment.
	recipient := NewP2IDRecipient(bob.ID)
	asset := FungibleAsset(faucet, 50)
	params := NoteParameters{
		Tag:           felt.New(7),
		Aux:           felt.Zero(),
		NoteType:      NoteTypePublic,
		ExecutionHint: HintAlways,
		Recipient:     recipient.Digest(),
		Asset:         asset.Word(),
	}
	prov := advice.NewProvider()
	arg, _ := BuildTransferCommitment(params, prov)

	// Guest side: execute the transfer script with the reversed digest
	// as public argument.
	wallet := BasicWalletComponent{}
	created, err := RunTransactionScript(alice, prov, TransferScript{Wallet: wallet}, arg)
	require.NoError(t, err)
	require.Len(t, created, 1, "exactly one note created")
	assert.Equal(t, uint64(50), alice.Vault.FungibleBalance(faucet), "vault reduced by exactly the committed asset")

	note := created[0]
	assert.True(t, note.RecipientDigest.Equal(recipient.Digest()))
	require.Len(t, note.Assets, 1)
	assert.True(t, note.Assets[0].Equal(asset))

	// The host attaches the recipient specification for the consumer.
	note.Recipient = &recipient

	// A third party cannot consume the note.
	carol := NewAccount(AccountID{Prefix: felt.New(301), Suffix: felt.New(302)})
	err = ConsumeNote(carol, advice.NewProvider(), &note, P2IDScript{Wallet: wallet})
	assert.True(t, errors.Is(err, ErrCapability))
	assert.Empty(t, carol.Vault.Assets())

	// The target consumes it in a separate execution.
	err = ConsumeNote(bob, advice.NewProvider(), &note, P2IDScript{Wallet: wallet})
	require.NoError(t, err)
	assert.Equal(t, uint64(50), bob.Vault.FungibleBalance(faucet))
}

// TestEndToEndAbortLeavesNoTrace tampers with the published advice
// entry after commitment: the execution must abort with the sender's
// vault untouched and no note emitted.
func TestEndToEndAbortLeavesNoTrace(t *testing.T) {
	faucet := testFaucet()
	alice := NewAccount(AccountID{Prefix: felt.New(101), Suffix: felt.New(102)})
	require.NoError(t, alice.Vault.Add(FungibleAsset(faucet, 100)))

	params := testParams()
	encoded := params.Encode()
	digest := felt.HashElements(encoded)

	encoded[tagIndex] = felt.New(8)
	prov := advice.NewProvider()
	prov.Insert(digest, encoded)

	created, err := RunTransactionScript(alice, prov, TransferScript{Wallet: BasicWalletComponent{}}, digest.Reversed())
	assert.True(t, errors.Is(err, ErrIntegrity))
	assert.Empty(t, created)
	assert.Equal(t, uint64(100), alice.Vault.FungibleBalance(faucet))
}
