package cli

import (
	"github.com/spf13/cobra"

	"novalith.com/note_transfer/advice"
	"novalith.com/note_transfer/core"
	"novalith.com/note_transfer/felt"
)

var transferFlags struct {
	accountFile  string
	noteFile     string
	targetPrefix uint64
	targetSuffix uint64
	faucetPrefix uint64
	faucetSuffix uint64
	amount       uint64
	tag          uint64
	aux          uint64
}

var transferCmd = &cobra.Command{
	Use:   "transfer",
	Short: "Move a fungible asset from an account into a new identity-guarded note",
	Long: "Builds the transfer commitment for the given asset and target account,\n" +
		"publishes it into a fresh advice channel, runs the transfer script against\n" +
		"the account file, and writes out the created note and the updated account.",
	RunE: func(cmd *cobra.Command, args []string) error {
		acct := core.ReadAccountFromFile(transferFlags.accountFile)
		target := core.AccountID{
			Prefix: felt.New(transferFlags.targetPrefix),
			Suffix: felt.New(transferFlags.targetSuffix),
		}
		faucet := core.FaucetID{
			Prefix: felt.New(transferFlags.faucetPrefix),
			Suffix: felt.New(transferFlags.faucetSuffix),
		}
		asset := core.FungibleAsset(faucet, transferFlags.amount)
		recipient := core.NewP2IDRecipient(target)

		params := core.NoteParameters{
			Tag:           felt.New(transferFlags.tag),
			Aux:           felt.New(transferFlags.aux),
			NoteType:      core.NoteTypePublic,
			ExecutionHint: core.HintAlways,
			Recipient:     recipient.Digest(),
			Asset:         asset.Word(),
		}

		prov := advice.NewProvider()
		arg, _ := core.BuildTransferCommitment(params, prov)
		log.Info().Str("argument", arg.String()).Msg("transfer commitment published")

		script := core.TransferScript{Wallet: core.BasicWalletComponent{}}
		created, err := core.RunTransactionScript(acct, prov, script, arg)
		if err != nil {
			log.Error().Err(err).Msg("transfer execution aborted")
			return err
		}

		note := created[0]
		note.Recipient = &recipient
		core.WriteNoteToFile(transferFlags.noteFile, &note)
		core.WriteAccountToFile(transferFlags.accountFile, acct)
		log.Info().Str("note", note.ID().String()).Msg("note created")
		return nil
	},
}

func init() {
	transferCmd.Flags().StringVar(&transferFlags.accountFile, "account", "account.json", "sender account file")
	transferCmd.Flags().StringVar(&transferFlags.noteFile, "note", "note.json", "output note file")
	transferCmd.Flags().Uint64Var(&transferFlags.targetPrefix, "target-prefix", 0, "target account id prefix")
	transferCmd.Flags().Uint64Var(&transferFlags.targetSuffix, "target-suffix", 0, "target account id suffix")
	transferCmd.Flags().Uint64Var(&transferFlags.faucetPrefix, "faucet-prefix", 0, "asset faucet id prefix")
	transferCmd.Flags().Uint64Var(&transferFlags.faucetSuffix, "faucet-suffix", 0, "asset faucet id suffix")
	transferCmd.Flags().Uint64Var(&transferFlags.amount, "amount", 0, "fungible amount to move")
	transferCmd.Flags().Uint64Var(&transferFlags.tag, "tag", 0, "note tag")
	transferCmd.Flags().Uint64Var(&transferFlags.aux, "aux", 0, "note aux value")
}
