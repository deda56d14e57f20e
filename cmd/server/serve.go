package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"

	"lawncare/database"
	"lawncare/router"

	expenseCtrlImp "lawncare/pkg/expense/controllerImp"
	healthCtrlImp "lawncare/pkg/health/controllerImp"
	inventoryCtrlImp "lawncare/pkg/inventory/controllerImp"
	mediaCtrlImp "lawncare/pkg/media/controllerImp"
	profileCtrlImp "lawncare/pkg/profile/controllerImp"
	schedCtrlImp "lawncare/pkg/schedule/controllerImp"
	"lawncare/pkg/store/serviceImp"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if servePort != "" {
			cfg.Port = servePort
		}
		return serve(cmd.Context())
	},
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "Listen port (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func serve(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1) DB, in memory only
	db, err := database.OpenMemory()
	if err != nil {
		return err
	}

	// 2) Seed
	seed, err := database.LoadSeed(cfg.SeedPath)
	if err != nil {
		return err
	}
	st := serviceImp.New(db)
	if err := database.ApplySeed(db, seed, time.Now().UTC(), uuid.NewString); err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	// 3) Controllers + router
	loc := cfg.Location()
	e := router.New(echo.New(), router.Controllers{
		Profile:   profileCtrlImp.New(st),
		Schedule:  schedCtrlImp.New(st, loc),
		Inventory: inventoryCtrlImp.New(st),
		Expense:   expenseCtrlImp.New(st, loc),
		Media:     mediaCtrlImp.New(st),
		Health:    healthCtrlImp.NewHealthCtrl(db),
	}, cfg.EnableMetrics)
	e.HidePort = true

	// 4) Start, stop on signal
	errCh := make(chan error, 1)
	go func() {
		slog.Info("listening", "port", cfg.Port, "tz", loc.String(), "metrics", cfg.EnableMetrics)
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
