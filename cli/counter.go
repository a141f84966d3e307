package cli

import (
	"github.com/spf13/cobra"

	"novalith.com/note_transfer/advice"
	"novalith.com/note_transfer/core"
	"novalith.com/note_transfer/felt"
)

var counterAccountFile string

var counterCmd = &cobra.Command{
	Use:   "counter",
	Short: "Read or increment an account's counter storage map",
}

var counterGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Read the current counter value",
	RunE: func(cmd *cobra.Command, args []string) error {
		acct := core.ReadAccountFromFile(counterAccountFile)
		contract := core.CounterContract{}

		var count felt.Element
		_, err := acct.Execute(advice.NewProvider(), nil, func(tx *core.Transaction) error {
			count = contract.GetCount(tx)
			return nil
		})
		if err != nil {
			log.Error().Err(err).Msg("counter read aborted")
			return err
		}
		log.Info().Uint64("count", felt.Uint64(count)).Msg("counter value")
		return nil
	},
}

var counterIncrementCmd = &cobra.Command{
	Use:   "increment",
	Short: "Increment the counter and persist the account",
	RunE: func(cmd *cobra.Command, args []string) error {
		acct := core.ReadAccountFromFile(counterAccountFile)
		contract := core.CounterContract{}

		var count felt.Element
		_, err := acct.Execute(advice.NewProvider(), nil, func(tx *core.Transaction) error {
			count = contract.IncrementCount(tx)
			return nil
		})
		if err != nil {
			log.Error().Err(err).Msg("counter increment aborted")
			return err
		}
		core.WriteAccountToFile(counterAccountFile, acct)
		log.Info().Uint64("count", felt.Uint64(count)).Msg("counter incremented")
		return nil
	},
}

func init() {
	counterCmd.PersistentFlags().StringVar(&counterAccountFile, "account", "account.json", "account file")
	counterCmd.AddCommand(counterGetCmd)
	counterCmd.AddCommand(counterIncrementCmd)
}
