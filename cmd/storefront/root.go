package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"Go-Storefront/pkg/kv"
	"Go-Storefront/pkg/loved"
	"Go-Storefront/pkg/storefront"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// app is what every command runs against. It is opened once per invocation.
type app struct {
	client  *storefront.Client
	store   *kv.Store
	session *storefront.Session
	loved   *loved.Service
}

func dataPath() string {
	dir := os.Getenv("STOREFRONT_DATA_DIR")
	if dir == "" {
		if home, err := os.UserConfigDir(); err == nil {
			dir = filepath.Join(home, "storefront")
		} else {
			dir = "."
		}
	}
	return filepath.Join(dir, "storefront.db")
}

func openApp(stderr io.Writer) (*app, error) {
	path := dataPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, errors.Wrap(err, "create data directory")
	}
	store, err := kv.Open(path)
	if err != nil {
		return nil, err
	}

	client := storefront.NewClientFromEnv()
	session, err := storefront.NewSession(client, store.Key(storefront.SessionKey))
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	lovedItems, err := loved.NewService(store.Key(loved.StorageKey), loved.NotifierFunc(func(msg string) {
		fmt.Fprintln(stderr, msg)
	}))
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	return &app{client: client, store: store, session: session, loved: lovedItems}, nil
}

type appKey struct{}

// reportedError is a failure the shopper has already been told about through the notifier.
// It still fails the command but is not printed a second time.
type reportedError struct {
	error
}

func (e reportedError) Unwrap() error { return e.error }

func reportError(w io.Writer, err error) {
	var reported reportedError
	if err == nil || errors.As(err, &reported) {
		return
	}
	fmt.Fprintln(w, "Error:", err)
}

func appFrom(cmd *cobra.Command) *app {
	return cmd.Context().Value(appKey{}).(*app)
}

// newRootCommand builds the command tree. The returned func releases whatever the executed
// command opened and must run even when it failed.
func newRootCommand() (*cobra.Command, func() error) {
	var opened *app
	root := &cobra.Command{
		Use:           "storefront",
		Short:         "Browse the store catalog from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			opened = a
			cmd.SetContext(context.WithValue(cmd.Context(), appKey{}, a))
			return nil
		},
	}

	root.AddCommand(
		newCategoriesCommand(),
		newProductsCommand(),
		newProductCommand(),
		newReviewsCommand(),
		newLoveCommand(),
		newLoginCommand(),
		newLogoutCommand(),
		newAdminCommand(),
	)

	return root, func() error {
		if opened == nil {
			return nil
		}
		return opened.store.Close()
	}
}
