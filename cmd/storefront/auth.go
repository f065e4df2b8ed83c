package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func prompt(r *bufio.Reader, w io.Writer, label string) (string, error) {
	fmt.Fprint(w, label)
	line, err := r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", errors.Wrapf(err, "read %s", strings.TrimSpace(strings.TrimSuffix(label, ":")))
	}
	return strings.TrimSpace(line), nil
}

func newLoginCommand() *cobra.Command {
	var register bool
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in, or create an account with --register",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFrom(cmd)
			in := bufio.NewReader(cmd.InOrStdin())
			out := cmd.OutOrStdout()

			if register {
				username, err := prompt(in, out, "Username: ")
				if err != nil {
					return err
				}
				email, err := prompt(in, out, "Email: ")
				if err != nil {
					return err
				}
				password, err := prompt(in, out, "Password: ")
				if err != nil {
					return err
				}
				u, err := a.session.Register(cmd.Context(), username, email, password)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Welcome, %s\n", u.Username)
				return nil
			}

			identifier, err := prompt(in, out, "Email or username: ")
			if err != nil {
				return err
			}
			password, err := prompt(in, out, "Password: ")
			if err != nil {
				return err
			}
			u, err := a.session.Login(cmd.Context(), identifier, password)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Signed in as %s\n", u.Username)
			return nil
		},
	}
	cmd.Flags().BoolVar(&register, "register", false, "create a new account")
	return cmd
}

func newLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appFrom(cmd).session.Logout(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Signed out")
			return nil
		},
	}
}
