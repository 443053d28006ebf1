package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/Kryoz0512/Survey-Chain/app"
	"github.com/Kryoz0512/Survey-Chain/config"
	"github.com/Kryoz0512/Survey-Chain/database"
	"github.com/Kryoz0512/Survey-Chain/draft"
	"github.com/Kryoz0512/Survey-Chain/escrow"
	"github.com/Kryoz0512/Survey-Chain/httpx"
	"github.com/Kryoz0512/Survey-Chain/log"
	"github.com/Kryoz0512/Survey-Chain/routes"
)

func main() {
	cfg, err := config.ParseFlags()
	if err != nil {
		log.Fatal("main.config:", err)
	}
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	}

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatal("main.db.open:", err)
	}
	defer db.Close()

	store := escrow.NewStore(db)

	app := app.App{
		BearerServer: httpx.NewBearerServer(db, cfg),
		Config:       cfg,
		Sessions:     draft.NewSessions(draft.UUIDGenerator),
		Coordinator:  draft.NewCoordinator(store),
		Escrow:       store,
	}

	handler := routes.Wire(app)

	err = runServer(cfg, handler)
	if !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("main.server:", err)
	}
}

func runServer(cfg config.Config, handler http.Handler) error {
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Info("Listening on " + cfg.Url())
	return srv.ListenAndServe()
}
