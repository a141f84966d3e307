package cli

import (
	"github.com/spf13/cobra"

	"novalith.com/note_transfer/advice"
	"novalith.com/note_transfer/core"
	"novalith.com/note_transfer/felt"
)

// demoCmd runs the whole pipeline in memory: commit, verify/decode,
// note creation, asset move, and consumption by the target account.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run an in-memory end-to-end transfer between two accounts",
	Run: func(cmd *cobra.Command, args []string) {
		faucet := core.FaucetID{Prefix: felt.New(9001), Suffix: felt.New(9002)}

		alice := core.NewAccount(core.AccountID{Prefix: felt.New(101), Suffix: felt.New(102)})
		bob := core.NewAccount(core.AccountID{Prefix: felt.New(201), Suffix: felt.New(202)})
		if err := alice.Vault.Add(core.FungibleAsset(faucet, 100)); err != nil {
			log.Fatal().Err(err).Msg("funding sender account")
		}
		log.Info().Uint64("balance", alice.Vault.FungibleBalance(faucet)).Msg("sender funded")

		recipient := core.NewP2IDRecipient(bob.ID)
		params := core.NoteParameters{
			Tag:           felt.New(7),
			Aux:           felt.Zero(),
			NoteType:      core.NoteTypePublic,
			ExecutionHint: core.HintAlways,
			Recipient:     recipient.Digest(),
			Asset:         core.FungibleAsset(faucet, 50).Word(),
		}

		prov := advice.NewProvider()
		arg, encoded := core.BuildTransferCommitment(params, prov)
		log.Info().Int("elements", len(encoded)).Str("argument", arg.String()).Msg("commitment published")

		wallet := core.BasicWalletComponent{}
		created, err := core.RunTransactionScript(alice, prov, core.TransferScript{Wallet: wallet}, arg)
		if err != nil {
			log.Fatal().Err(err).Msg("transfer execution aborted")
		}
		note := created[0]
		note.Recipient = &recipient
		log.Info().
			Str("note", note.ID().String()).
			Uint64("sender_balance", alice.Vault.FungibleBalance(faucet)).
			Msg("transfer executed")

		if err := core.ConsumeNote(bob, advice.NewProvider(), &note, core.P2IDScript{Wallet: wallet}); err != nil {
			log.Fatal().Err(err).Msg("consumption aborted")
		}
		log.Info().Uint64("target_balance", bob.Vault.FungibleBalance(faucet)).Msg("note consumed")
	},
}
