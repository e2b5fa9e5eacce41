// Package cmd implements the userctl commands.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-user-keeper/internal/adapter"
	"github.com/MKhiriev/go-user-keeper/models"
)

const defaultAddress = "localhost:8080"

// options are the persistent flags shared by every command that calls the API.
type options struct {
	address string
	token   string
	timeout time.Duration
	output  string
}

// NewRootCmd builds the userctl command tree. Each call returns a fresh tree,
// so tests can execute commands without shared flag state.
func NewRootCmd(buildInfo models.AppBuildInfo) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "userctl",
		Short: "Command line client for the go-user-keeper API",
		Long: `userctl calls the go-user-keeper HTTP API and mints tokens for it.

Update and delete need a token. Mint one with the server's sign key:

  userctl token --id 5 --role admin --sign-key "$APP_TOKEN_SIGN_KEY"
  userctl -t "$TOKEN" update 7 --role admin`,
		Version:       buildInfo.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate(buildInfo.String())

	flags := root.PersistentFlags()
	flags.StringVarP(&opts.address, "address", "a", envOr("USERCTL_ADDRESS", defaultAddress), "server address host:port or URL")
	flags.StringVarP(&opts.token, "token", "t", os.Getenv("USERCTL_TOKEN"), "credential sent with update and delete")
	flags.DurationVar(&opts.timeout, "timeout", 15*time.Second, "request timeout")
	flags.StringVarP(&opts.output, "output", "o", outputTable, "output format: table, json, yaml")

	root.AddCommand(
		newTokenCmd(),
		newListCmd(opts),
		newGetCmd(opts),
		newUpdateCmd(opts),
		newDeleteCmd(opts),
		newHealthCmd(opts),
	)

	return root
}

// client validates the output format and builds an API client from the flags.
func (o *options) client() (adapter.UserAPI, error) {
	if err := checkOutputFormat(o.output); err != nil {
		return nil, err
	}

	api, err := adapter.NewHTTPUserAPI(adapter.ClientConfig{Address: o.address, Timeout: o.timeout})
	if err != nil {
		return nil, err
	}
	api.SetToken(o.token)

	return api, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func wrapAPIError(action string, err error) error {
	return fmt.Errorf("%s: %w", action, withDetails(err))
}
