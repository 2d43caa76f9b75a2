package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/workdeck/workdeck/pkg/config"
	"github.com/workdeck/workdeck/pkg/identity"
)

// userTokenCmd represents the user token command
var userTokenCmd = &cobra.Command{
	Use:   "token <principal>",
	Short: "Mint an access token for a principal",
	Long: `Mint a signed access token for a principal.

The token is signed with WORKDECK_TOKEN_SIGNING_KEY and expires after the
configured token TTL.

Example:
  workdeckctl user token alice
  workdeckctl user token svc-reporting`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		for _, principal := range args {
			token, err := mintToken(principal)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to mint token for %s: %v\n", principal, err)
				os.Exit(1)
			}
			fmt.Println(token)
		}
	},
}

func init() {
	userCmd.AddCommand(userTokenCmd)
}

func mintToken(principal string) (string, error) {
	signingKey, err := tokenSigningKey()
	if err != nil {
		return "", err
	}

	return identity.NewToken(signingKey, principal, config.Get().AccessTokenTTL())
}
