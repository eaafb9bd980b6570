package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/microsoft"

	"github.com/fileferry/onedrive-provider/provider"
)

// defaultScopes grant the read-only surface the adapter needs.
var defaultScopes = []string{
	"Files.Read.All",
	"Sites.Read.All",
	"User.Read",
}

func newLoginCmd() *cobra.Command {
	var flagClientID string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Obtain a bearer token via the device code flow",
		Long: `Run the OAuth2 device code flow and print the resulting access token for
use with --token. The token is printed, not stored — pair this CLI with a
shell variable or secret manager.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := &oauth2.Config{
				ClientID: flagClientID,
				Endpoint: microsoft.AzureADEndpoint("common"),
				Scopes:   defaultScopes,
			}

			ctx := cmd.Context()

			da, err := cfg.DeviceAuth(ctx)
			if err != nil {
				return fmt.Errorf("device auth request failed: %w", err)
			}

			fmt.Printf("Visit %s and enter code %s\n", da.VerificationURI, da.UserCode)

			tok, err := cfg.DeviceAccessToken(ctx, da)
			if err != nil {
				return fmt.Errorf("device code authorization failed: %w", err)
			}

			fmt.Printf("access token (expires %s):\n%s\n", tok.Expiry.Format("15:04:05"), tok.AccessToken)

			return nil
		},
	}

	cmd.Flags().StringVar(&flagClientID, "client-id", "", "Azure AD application client ID")
	_ = cmd.MarkFlagRequired("client-id")

	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Show how to revoke the app's access",
		Long: `The vendor exposes no revocation endpoint, so access must be revoked
manually. Prints the account management URL where that is done.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := buildAdapter().Logout(cmd.Context())
			if err != nil {
				return err
			}

			printLogout(res)

			return nil
		},
	}
}

func printLogout(res *provider.LogoutResult) {
	if res.Revoked {
		fmt.Println("access revoked")
		return
	}

	fmt.Printf("access was not revoked; revoke it manually at %s\n", res.ManualRevokeURL)
}
