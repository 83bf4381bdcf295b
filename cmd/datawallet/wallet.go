package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/AlexZinkM/dataset-wallet/internal/common"
	"github.com/AlexZinkM/dataset-wallet/internal/model"
	"github.com/AlexZinkM/dataset-wallet/wallet"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

const sizeFlagName = "size"

var connect = cli.Command{
	Name:   "connect",
	Usage:  "restore the stored wallet or create and fund a new one",
	Action: connectAction,
}

var disconnect = cli.Command{
	Name:   "disconnect",
	Usage:  "forget the stored wallet",
	Action: disconnectAction,
}

var status = cli.Command{
	Name:   "status",
	Usage:  "print the wallet session state and backend network info",
	Action: statusAction,
}

var balance = cli.Command{
	Name:   "balance",
	Usage:  "print the balance of the connected wallet",
	Action: balanceAction,
}

var fund = cli.Command{
	Name:   "fund",
	Usage:  "request 1 APT for the connected wallet",
	Action: fundAction,
}

var qr = cli.Command{
	Name:      "qr",
	Usage:     "write a PNG QR code of the wallet address",
	ArgsUsage: "<file>",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  sizeFlagName,
			Usage: "image size in pixels",
			Value: 256,
		},
	},
	Action: qrAction,
}

func connectAction(ctx *cli.Context) error {
	session, _, cleanup, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	acc, err := session.Connect(ctx.Context)
	if err != nil {
		return err
	}

	fmt.Printf("Connected %s\n", acc.Address)
	fmt.Println(common.FormatAPT(session.BalanceAPT()))
	return nil
}

func disconnectAction(ctx *cli.Context) error {
	session, _, cleanup, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	session.Disconnect(ctx.Context)
	fmt.Println("Disconnected")
	return nil
}

func statusAction(ctx *cli.Context) error {
	session, backend, cleanup, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	return printJSON(newStatusReport(ctx.Context, session, backend))
}

// statusReport is what `status` prints: the session and the backend network info
type statusReport struct {
	Wallet  model.WalletState `json:"wallet"`
	Backend json.RawMessage   `json:"backend"`
}

type backendInfo interface {
	GetInfo(ctx context.Context) (json.RawMessage, error)
}

// newStatusReport never fails, an unreachable backend shows as null
func newStatusReport(ctx context.Context, session *wallet.Session, backend backendInfo) statusReport {
	report := statusReport{Wallet: session.Snapshot(), Backend: json.RawMessage("null")}
	info, err := backend.GetInfo(ctx)
	if err != nil {
		log.WithError(err).Warn("failed to get backend info")
		return report
	}
	if len(info) > 0 {
		report.Backend = info
	}
	return report
}

func balanceAction(ctx *cli.Context) error {
	session, _, cleanup, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	if !session.Connected() {
		return wallet.ErrNotConnected
	}
	fmt.Printf("%s %s\n", common.TruncateAddress(session.Address()), common.FormatAPT(session.BalanceAPT()))
	return nil
}

func fundAction(ctx *cli.Context) error {
	session, _, cleanup, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	balance, err := fundSession(ctx.Context, session)
	if err != nil {
		return err
	}
	fmt.Println(common.FormatAPT(balance))
	return nil
}

// fundSession funds the connected account and returns the refreshed balance
func fundSession(ctx context.Context, session *wallet.Session) (decimal.Decimal, error) {
	if !session.Connected() {
		return decimal.Zero, wallet.ErrNotConnected
	}
	if !session.Fund(ctx) {
		return decimal.Zero, errors.New("funding failed")
	}
	return session.BalanceAPT(), nil
}

func qrAction(ctx *cli.Context) error {
	if ctx.NArg() != 1 {
		return &invalidUsageError{ctx, ctx.Command.Name}
	}

	session, _, cleanup, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	png, err := session.AddressQR(ctx.Int(sizeFlagName))
	if err != nil {
		return err
	}
	if err := os.WriteFile(ctx.Args().First(), png, 0644); err != nil {
		return fmt.Errorf("writing qr code: %w", err)
	}

	fmt.Println(session.Address())
	return nil
}

func printJSON(v interface{}) error {
	out, err := json.MarshalIndent(v, "", "\t")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
