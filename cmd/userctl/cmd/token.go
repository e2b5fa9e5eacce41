package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-user-keeper/internal/auth"
	"github.com/MKhiriev/go-user-keeper/internal/config"
	"github.com/MKhiriev/go-user-keeper/models"
)

func newTokenCmd() *cobra.Command {
	var (
		id       int64
		email    string
		role     string
		signKey  string
		issuer   string
		duration time.Duration
	)

	c := &cobra.Command{
		Use:   "token",
		Short: "Mint a token the server will accept",
		Long: `Mint a signed token for the given identity.

The sign key and issuer must match the server's APP_TOKEN_SIGN_KEY and
APP_TOKEN_ISSUER. Both default to those environment variables.

Examples:
  userctl token --id 5
  userctl token --id 1 --role admin --duration 1h`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !models.Role(role).IsValid() {
				return fmt.Errorf("unknown role %q", role)
			}

			issuerCfg := config.App{
				TokenSignKey:  signKey,
				TokenIssuer:   issuer,
				TokenDuration: duration,
			}
			tokenIssuer, err := auth.NewTokenIssuer(issuerCfg)
			if err != nil {
				return err
			}

			token, err := tokenIssuer.Issue(id, email, models.Role(role))
			if err != nil {
				return fmt.Errorf("error issuing token: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}

	c.Flags().Int64Var(&id, "id", 0, "user id")
	c.Flags().StringVar(&email, "email", "", "user email")
	c.Flags().StringVar(&role, "role", string(models.RoleUser), "user role: user, admin")
	c.Flags().StringVar(&signKey, "sign-key", os.Getenv("APP_TOKEN_SIGN_KEY"), "token signing key")
	c.Flags().StringVar(&issuer, "issuer", envOr("APP_TOKEN_ISSUER", "go-user-keeper"), "token issuer")
	c.Flags().DurationVar(&duration, "duration", 24*time.Hour, "token lifetime")
	_ = c.MarkFlagRequired("id")

	return c
}
