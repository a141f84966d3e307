package core

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"novalith.com/note_transfer/felt"
)

func TestAssetWordRoundTrip(t *testing.T) {
	faucet := testFaucet()

	fungible := FungibleAsset(faucet, 1234)
	assert.True(t, fungible.Equal(AssetFromWord(fungible.Word())))

	nonFungible := NonFungibleAsset(faucet, elementsFromUint64s(5, 6, 7))
	assert.True(t, nonFungible.Equal(AssetFromWord(nonFungible.Word())))
	assert.Equal(t, AssetNonFungible, AssetFromWord(nonFungible.Word()).Kind)
}

func TestVaultMergesFungibleAmounts(t *testing.T) {
	faucet := testFaucet()
	vault := NewVault()

	require.NoError(t, vault.Add(FungibleAsset(faucet, 30)))
	require.NoError(t, vault.Add(FungibleAsset(faucet, 12)))
	assert.Equal(t, uint64(42), vault.FungibleBalance(faucet))
	assert.Len(t, vault.Assets(), 1)
}

func TestVaultRemoveSplitsBalance(t *testing.T) {
	faucet := testFaucet()
	vault := NewVault()
	require.NoError(t, vault.Add(FungibleAsset(faucet, 100)))

	removed, err := vault.Remove(FungibleAsset(faucet, 40))
	require.NoError(t, err)
	assert.Equal(t, uint64(40), removed.Amount)
	assert.Equal(t, uint64(60), vault.FungibleBalance(faucet))
}

func TestVaultRemoveInsufficient(t *testing.T) {
	faucet := testFaucet()
	vault := NewVault()
	require.NoError(t, vault.Add(FungibleAsset(faucet, 10)))

	_, err := vault.Remove(FungibleAsset(faucet, 11))
	assert.True(t, errors.Is(err, ErrCapability))
	assert.Equal(t, uint64(10), vault.FungibleBalance(faucet))
}

func TestVaultRemoveAbsentFaucet(t *testing.T) {
	vault := NewVault()
	_, err := vault.Remove(FungibleAsset(testFaucet(), 1))
	assert.True(t, errors.Is(err, ErrCapability))
}

func TestVaultNonFungibleLifecycle(t *testing.T) {
	faucet := testFaucet()
	item := NonFungibleAsset(faucet, elementsFromUint64s(1, 2, 3))
	vault := NewVault()

	require.NoError(t, vault.Add(item))
	err := vault.Add(item)
	assert.True(t, errors.Is(err, ErrCapability), "duplicate non-fungible add must fail")

	removed, err := vault.Remove(item)
	require.NoError(t, err)
	assert.True(t, removed.Equal(item))

	_, err = vault.Remove(item)
	assert.True(t, errors.Is(err, ErrCapability))
}

func TestVaultAddOverflow(t *testing.T) {
	faucet := testFaucet()
	vault := NewVault()
	require.NoError(t, vault.Add(FungibleAsset(faucet, ^uint64(0))))

	err := vault.Add(FungibleAsset(faucet, 1))
	assert.True(t, errors.Is(err, ErrCapability))
}

func TestConservationAcrossMoves(t *testing.T) {
	// Across any sequence of moves within one execution, the total
	// fungible amount per faucet over {vault, created notes} is
	// invariant.
	faucet := testFaucet()
	acct := NewAccount(AccountID{Prefix: felt.New(1), Suffix: felt.New(2)})
	require.NoError(t, acct.Vault.Add(FungibleAsset(faucet, 100)))

	wallet := BasicWalletComponent{}
	created, err := acct.Execute(nil, nil, func(tx *Transaction) error {
		recipient := NewP2IDRecipient(AccountID{Prefix: felt.New(3), Suffix: felt.New(4)})
		for _, amount := range []uint64{10, 20, 30} {
			idx, err := tx.CreateNote(felt.New(7), felt.Zero(), NoteTypePublic, HintAlways, recipient.Digest())
			if err != nil {
				return err
			}
			if err := wallet.MoveAssetToNote(tx, FungibleAsset(faucet, amount), idx); err != nil {
				return err
			}
		}
		return nil
	})
	require.NoError(t, err)

	total := acct.Vault.FungibleBalance(faucet)
	for _, note := range created {
		for _, asset := range note.Assets {
			total += asset.Amount
		}
	}
	assert.Equal(t, uint64(100), total)
	assert.Equal(t, uint64(40), acct.Vault.FungibleBalance(faucet))
}
