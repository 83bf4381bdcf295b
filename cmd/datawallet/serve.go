package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/AlexZinkM/dataset-wallet/internal/api"
	"github.com/AlexZinkM/dataset-wallet/internal/config"
	"github.com/AlexZinkM/dataset-wallet/market"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var serve = cli.Command{
	Name:   "serve",
	Usage:  "serve the wallet and marketplace HTTP API",
	Action: serveAction,
}

func serveAction(ctx *cli.Context) error {
	session, backend, cleanup, err := openSession(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	router := api.SetupRouter(session, market.NewService(backend, session))

	srv := &http.Server{
		Addr:              net.JoinHostPort("", config.GetPort()),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	sigCtx, stop := signal.NotifyContext(ctx.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		log.WithFields(log.Fields{
			"addr":    srv.Addr,
			"backend": config.GetBackendURL(),
		}).Info("http server listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-sigCtx.Done():
	}

	log.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
