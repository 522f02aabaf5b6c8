// Command server runs the periodic-tutor HTTP API: game sessions for the
// adiabatic mini-game plus the element catalog behind the table, search
// and alphabet-game surfaces.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"periodictutor/internal/api"
	"periodictutor/internal/config"
	"periodictutor/internal/elements"
	"periodictutor/internal/store"
)

func main() {
	logger := log.New(os.Stdout, "[SERVER] ", log.LstdFlags)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	db, err := store.NewSQLiteDB(cfg.DBPath)
	if err != nil {
		logger.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		logger.Fatalf("failed to migrate database: %v", err)
	}

	els, err := db.ListElements()
	if err != nil {
		logger.Fatalf("failed to load elements: %v", err)
	}
	if len(els) == 0 {
		logger.Printf("element table is empty; run import-elements to seed %s", cfg.DBPath)
	}
	catalog := elements.NewCatalog(els)

	server := api.NewServer(db, catalog, cfg.Scenario(), cfg.CORSOrigin)
	httpServer := &http.Server{
		Addr:    cfg.Addr,
		Handler: server.Routes(),
	}

	go func() {
		logger.Printf("listening on %s (%d elements, version %s)", cfg.Addr, catalog.Len(), api.AppVersion)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server error: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Println("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Printf("shutdown error: %v", err)
	}
}
