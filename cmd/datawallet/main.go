// @title           Dataset Wallet API
// @version         1.0
// @description     Wallet session and dataset marketplace flows over the marketplace backend.
// @BasePath        /
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/AlexZinkM/dataset-wallet/internal/client"
	"github.com/AlexZinkM/dataset-wallet/internal/config"
	"github.com/AlexZinkM/dataset-wallet/internal/crypto"
	"github.com/AlexZinkM/dataset-wallet/internal/storage"
	badgerstore "github.com/AlexZinkM/dataset-wallet/internal/storage/badger"
	filestore "github.com/AlexZinkM/dataset-wallet/internal/storage/file"
	"github.com/AlexZinkM/dataset-wallet/wallet"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

const passwordFlagName = "password"

func main() {
	app := cli.NewApp()

	app.Version = "0.1.0"
	app.Name = "datawallet"
	app.Usage = "Wallet session and dataset marketplace client"
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    passwordFlagName,
			Usage:   "session password when SESSION_ENCRYPT is set, prompted if empty",
			EnvVars: []string{"SESSION_PASSWORD"},
		},
	}
	app.Before = func(ctx *cli.Context) error {
		if err := config.Init(); err != nil {
			return err
		}
		log.SetLevel(config.GetLogLevel())
		return nil
	}
	app.Commands = append(
		app.Commands,
		&serve,
		&connect,
		&disconnect,
		&status,
		&balance,
		&fund,
		&qr,
		&rekey,
	)

	if err := app.Run(os.Args); err != nil {
		fatal(err)
	}
}

func newBackendClient() *client.BackendClient {
	cfg := config.Get()
	return client.NewBackendClient(cfg.BackendURL, client.Options{
		Timeout:   cfg.BackendTimeout,
		RateLimit: cfg.BackendRateLimit,
	})
}

// openStore opens the session store selected by SESSION_STORE
func openStore(ctx *cli.Context) (storage.SessionStore, error) {
	cfg := config.Get()
	switch cfg.SessionStore {
	case config.StoreMemory:
		return storage.NewMemoryStore(), nil
	case config.StoreFile:
		var password filestore.PasswordFunc
		if cfg.SessionEncrypt {
			if err := loadPassword(ctx); err != nil {
				return nil, err
			}
			password = config.GetSessionPasswordBytes
		}
		return filestore.NewSessionStore(cfg.SessionFilePath, password, crypto.DefaultParams)
	default:
		return badgerstore.NewSessionStore(cfg.SessionDatadir, log.StandardLogger())
	}
}

func loadPassword(ctx *cli.Context) error {
	if pwd := ctx.String(passwordFlagName); pwd != "" {
		config.SetSessionPassword([]byte(pwd))
		return nil
	}
	return config.PromptForPassword("Session password: ")
}

// openSession builds a session over the configured store and restores any stored account
func openSession(ctx *cli.Context) (*wallet.Session, *client.BackendClient, func(), error) {
	store, err := openStore(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	cleanup := func() {
		if err := store.Close(); err != nil {
			log.WithError(err).Warn("failed to close session store")
		}
	}

	backend := newBackendClient()
	session := wallet.NewSession(
		backend, store, wallet.WithSettleDelay(config.GetFundSettleDelay()),
	)
	session.Init(ctx.Context)

	return session, backend, cleanup, nil
}

type invalidUsageError struct {
	ctx     *cli.Context
	command string
}

func (e *invalidUsageError) Error() string {
	return fmt.Sprintf("invalid usage of command %s", e.command)
}

func fatal(err error) {
	var e *invalidUsageError
	if errors.As(err, &e) {
		_ = cli.ShowCommandHelp(e.ctx, e.command)
	} else {
		_, _ = fmt.Fprintf(os.Stderr, "[datawallet] %v\n", err)
	}
	os.Exit(1)
}
