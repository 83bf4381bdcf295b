package main

import (
	"errors"
	"fmt"

	"github.com/AlexZinkM/dataset-wallet/internal/config"
	"github.com/AlexZinkM/dataset-wallet/internal/crypto"
	filestore "github.com/AlexZinkM/dataset-wallet/internal/storage/file"

	"github.com/urfave/cli/v2"
)

var rekey = cli.Command{
	Name:   "rekey",
	Usage:  "re-encrypt the session file with a new password, sealing it if it was stored in clear",
	Action: rekeyAction,
}

func rekeyAction(ctx *cli.Context) error {
	cfg := config.Get()
	if cfg.SessionStore != config.StoreFile {
		return errors.New("rekey needs SESSION_STORE=file")
	}

	var oldPassword []byte
	if cfg.SessionEncrypt {
		var err error
		if oldPassword, err = config.ReadPassword("Current password: "); err != nil {
			return err
		}
		defer clear(oldPassword)
	}

	newPassword, err := config.ReadPassword("New password: ")
	if err != nil {
		return err
	}
	defer clear(newPassword)

	confirm, err := config.ReadPassword("Repeat new password: ")
	if err != nil {
		return err
	}
	defer clear(confirm)
	if string(confirm) != string(newPassword) {
		return errors.New("passwords do not match")
	}

	if err := filestore.Reseal(cfg.SessionFilePath, oldPassword, newPassword, crypto.DefaultParams); err != nil {
		return fmt.Errorf("rekey failed: %w", err)
	}

	fmt.Println("Done")
	if !cfg.SessionEncrypt {
		fmt.Println("Set SESSION_ENCRYPT=true to use the sealed session")
	}
	return nil
}
