// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// clientSecretEnv keeps the secret out of shell history when set.
const clientSecretEnv = "GLASSWORKS_CLIENT_SECRET"

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Get an access token for the --token flag using the client credentials flow",
	RunE: func(cmd *cobra.Command, args []string) error {
		clientID, _ := cmd.Flags().GetString("client-id")
		clientSecret, _ := cmd.Flags().GetString("client-secret")
		tokenURL, _ := cmd.Flags().GetString("token-url")
		issuerURL, _ := cmd.Flags().GetString("issuer-url")
		scopes, _ := cmd.Flags().GetStringSlice("scopes")
		format, _ := cmd.Flags().GetString("format")

		if clientSecret == "" {
			clientSecret = os.Getenv(clientSecretEnv)
		}
		if clientSecret == "" {
			return fmt.Errorf("no client secret, set --client-secret or %s", clientSecretEnv)
		}

		client := &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
		ctx := oidc.ClientContext(cmd.Context(), client)
		ctx = context.WithValue(ctx, oauth2.HTTPClient, client)

		if tokenURL == "" {
			discovered, err := discoverTokenURL(ctx, issuerURL)
			if err != nil {
				return err
			}
			tokenURL = discovered
		}

		cc := clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     tokenURL,
			Scopes:       scopes,
		}

		token, err := cc.Token(ctx)
		if err != nil {
			return fmt.Errorf("failed to get token: %w", err)
		}

		return printToken(cmd, format, token)
	},
}

func discoverTokenURL(ctx context.Context, issuerURL string) (string, error) {
	if issuerURL == "" {
		return "", errors.New("either --token-url or --issuer-url must be provided")
	}

	provider, err := oidc.NewProvider(ctx, issuerURL)
	if err != nil {
		return "", fmt.Errorf("OIDC discovery on %s failed: %w", issuerURL, err)
	}

	return provider.Endpoint().TokenURL, nil
}

func printToken(cmd *cobra.Command, format string, token *oauth2.Token) error {
	if format != "json" {
		fmt.Fprintln(cmd.OutOrStdout(), token.AccessToken)
		return nil
	}

	return json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]interface{}{
		"access_token": token.AccessToken,
		"token_type":   token.Type(),
		"expiry":       token.Expiry,
	})
}

func init() {
	rootCmd.AddCommand(tokenCmd)

	tokenCmd.Flags().String("client-id", "", "OAuth2 client id")
	tokenCmd.Flags().String("client-secret", "", "OAuth2 client secret, defaults to $"+clientSecretEnv)
	tokenCmd.Flags().String("token-url", "", "Token endpoint")
	tokenCmd.Flags().String("issuer-url", "", "Issuer used for OIDC discovery of the token endpoint")
	tokenCmd.Flags().StringSlice("scopes", nil, "Scopes (comma-separated)")
	tokenCmd.Flags().StringP("format", "f", "text", "Output format (text or json)")

	_ = tokenCmd.MarkFlagRequired("client-id")
	tokenCmd.MarkFlagsMutuallyExclusive("token-url", "issuer-url")
}
