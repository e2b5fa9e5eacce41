package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
)

func newHealthCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check server health",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			api, err := opts.client()
			if err != nil {
				return err
			}

			health, err := api.Health(cmd.Context())
			if err != nil {
				return wrapAPIError("health check", err)
			}

			return render(cmd.OutOrStdout(), opts.output, health, func(w io.Writer) {
				fmt.Fprintf(w, "Status:\t%s\n", health.Status)
				fmt.Fprintf(w, "Version:\t%s\n", health.Version)
				fmt.Fprintf(w, "Uptime:\t%s\n", time.Duration(health.Uptime*float64(time.Second)).Round(time.Second).String())
			})
		},
	}
}
