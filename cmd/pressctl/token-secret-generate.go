package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// tokenSecretGenerateCmd represents the token-secret generate command
var tokenSecretGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a token-signing secret",
	Long: `
Generate a token-signing secret

Use this command to generate a new Base64-encoded 256 bit secret. Once
generated, this secret should be placed into the environment of the Pressroom
server. It is used to sign and verify all session tokens.

Example:

$ export PRESSROOM_TOKEN_SECRET="$(pressctl token-secret generate)"
`,
	Run: func(cmd *cobra.Command, args []string) {
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to generate secret: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("%s", base64.StdEncoding.Strict().EncodeToString(buf))
	},
}

func init() {
	tokenSecretCmd.AddCommand(tokenSecretGenerateCmd)
}
