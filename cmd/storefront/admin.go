package main

import (
	"bufio"
	"fmt"
	"sort"

	"Go-Storefront/domain"
	"Go-Storefront/pkg/storefront"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newAdminCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administrative tasks",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "permissions",
		Short: "Open the catalog to anonymous visitors",
		Long: "Prompts for an admin API token, then enables the read permissions the storefront needs " +
			"on the public role.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFrom(cmd)
			out := cmd.OutOrStdout()

			token, err := prompt(bufio.NewReader(cmd.InOrStdin()), out, "Admin API token: ")
			if err != nil {
				return err
			}
			if token == "" {
				return errors.New("a token is required")
			}

			admin := storefront.NewClient(a.client.BaseURL)
			admin.Token = func() string { return token }

			role, err := admin.GrantPublic(cmd.Context(), domain.PublicReadActions)
			if err != nil {
				return errors.Wrap(err, "update public role")
			}

			enabled := make([]string, 0, len(role.Permissions))
			for action, on := range role.Permissions {
				if on {
					enabled = append(enabled, action)
				}
			}
			sort.Strings(enabled)
			fmt.Fprintf(out, "Public role now allows %d actions:\n", len(enabled))
			for _, action := range enabled {
				fmt.Fprintf(out, "  %s\n", action)
			}
			return nil
		},
	})
	return cmd
}
