package cli

import (
	"github.com/spf13/cobra"

	"novalith.com/note_transfer/advice"
	"novalith.com/note_transfer/core"
)

var consumeFlags struct {
	accountFile string
	noteFile    string
}

var consumeCmd = &cobra.Command{
	Use:   "consume",
	Short: "Consume an identity-guarded note into an account",
	Long: "Runs the identity-guard note script against the account file. The note's\n" +
		"assets are released only if the note's embedded target identity matches the\n" +
		"account; otherwise the execution aborts and the account is unchanged.",
	RunE: func(cmd *cobra.Command, args []string) error {
		acct := core.ReadAccountFromFile(consumeFlags.accountFile)
		note := core.ReadNoteFromFile(consumeFlags.noteFile)

		script := core.P2IDScript{Wallet: core.BasicWalletComponent{}}
		if err := core.ConsumeNote(acct, advice.NewProvider(), note, script); err != nil {
			log.Error().Err(err).Msg("consumption aborted")
			return err
		}

		core.WriteAccountToFile(consumeFlags.accountFile, acct)
		log.Info().Str("note", note.ID().String()).Msg("note consumed")
		return nil
	},
}

func init() {
	consumeCmd.Flags().StringVar(&consumeFlags.accountFile, "account", "account.json", "consuming account file")
	consumeCmd.Flags().StringVar(&consumeFlags.noteFile, "note", "note.json", "note file to consume")
}
