package main

import (
	"fmt"
	"strconv"

	"Go-Storefront/pkg/loved"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newLoveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "love",
		Short: "Manage loved products",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <slug>",
			Short: "Love a product",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				a := appFrom(cmd)
				p, err := await(cmd.Context(), a.client.UseProduct(cmd.Context(), args[0]))
				if err != nil {
					return err
				}
				err = a.loved.Add(p)
				if errors.Is(err, loved.ErrLovedItemExists) || errors.Is(err, loved.ErrMalformedLovedItem) {
					return reportedError{err}
				}
				return err
			},
		},
		&cobra.Command{
			Use:   "rm <id>",
			Short: "Stop loving a product",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := strconv.ParseUint(args[0], 10, 64)
				if err != nil {
					return errors.Errorf("invalid product id %q", args[0])
				}
				return appFrom(cmd).loved.Remove(uint(id))
			},
		},
		&cobra.Command{
			Use:   "ls",
			Short: "List loved products",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				a := appFrom(cmd)
				items := a.loved.List()
				if len(items) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "no loved products yet")
					return nil
				}
				return printProducts(cmd.OutOrStdout(), items)
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Forget every loved product",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return appFrom(cmd).loved.Clear()
			},
		},
	)
	return cmd
}
