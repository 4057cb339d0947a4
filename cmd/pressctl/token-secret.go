package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// tokenSecretCmd represents the token-secret command
var tokenSecretCmd = &cobra.Command{
	Use:   "token-secret",
	Short: "Manage the token-signing secret",
	Long:  `Manage the HMAC secret used to sign session tokens.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'token-secret' requires a subcommand (generate)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(tokenSecretCmd)
}
