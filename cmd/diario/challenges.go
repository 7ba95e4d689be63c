package main

import (
	"github.com/spf13/cobra"

	"github.com/sandeepkv93/diario/internal/challenge"
	"github.com/sandeepkv93/diario/internal/model"
	"github.com/sandeepkv93/diario/internal/printers"
)

var challengeCount int

var challengesCmd = &cobra.Command{
	Use:   "challenges",
	Short: "Draw random daily challenges",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		n := cfg.ChallengeCount
		if cmd.Flags().Changed("count") {
			n = challengeCount
		}
		drawn := challenge.NewSampler(cfg.ChallengeSeed).Sample(model.DefaultCatalog(), n)
		printers.New(cmd.OutOrStdout(), false).Challenges(drawn)
	},
}

func init() {
	challengesCmd.Flags().IntVarP(&challengeCount, "count", "n", challenge.DefaultCount, "number of challenges")
	rootCmd.AddCommand(challengesCmd)
}
