package cli

import (
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"novalith.com/note_transfer/core"
	"novalith.com/note_transfer/felt"
)

func TestTransferCommandReportsAbort(t *testing.T) {
	// The sender account holds nothing, so the asset move must abort
	// and the command must surface the error for a non-zero exit.
	dir := t.TempDir()
	accountFile := filepath.Join(dir, "account.json")
	acct := core.NewAccount(core.AccountID{Prefix: felt.New(101), Suffix: felt.New(102)})
	core.WriteAccountToFile(accountFile, acct)

	transferFlags.accountFile = accountFile
	transferFlags.noteFile = filepath.Join(dir, "note.json")
	transferFlags.targetPrefix = 201
	transferFlags.targetSuffix = 202
	transferFlags.faucetPrefix = 9001
	transferFlags.faucetSuffix = 9002
	transferFlags.amount = 50

	err := transferCmd.RunE(transferCmd, nil)
	assert.True(t, errors.Is(err, core.ErrCapability))

	// The aborted run must not have written a note file.
	assert.NoFileExists(t, transferFlags.noteFile)
}

func TestTransferCommandWritesNoteAndAccount(t *testing.T) {
	dir := t.TempDir()
	accountFile := filepath.Join(dir, "account.json")
	faucet := core.FaucetID{Prefix: felt.New(9001), Suffix: felt.New(9002)}
	acct := core.NewAccount(core.AccountID{Prefix: felt.New(101), Suffix: felt.New(102)})
	require.NoError(t, acct.Vault.Add(core.FungibleAsset(faucet, 100)))
	core.WriteAccountToFile(accountFile, acct)

	transferFlags.accountFile = accountFile
	transferFlags.noteFile = filepath.Join(dir, "note.json")
	transferFlags.targetPrefix = 201
	transferFlags.targetSuffix = 202
	transferFlags.faucetPrefix = 9001
	transferFlags.faucetSuffix = 9002
	transferFlags.amount = 40

	require.NoError(t, transferCmd.RunE(transferCmd, nil))

	updated := core.ReadAccountFromFile(accountFile)
	assert.Equal(t, uint64(60), updated.Vault.FungibleBalance(faucet))

	note := core.ReadNoteFromFile(transferFlags.noteFile)
	require.Len(t, note.Assets, 1)
	assert.Equal(t, uint64(40), note.Assets[0].Amount)
}
