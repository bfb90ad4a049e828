package main

import (
	"context"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"art-auction/internal/bus"
	"art-auction/internal/catalog"
	"art-auction/internal/config"
	"art-auction/internal/game"
	"art-auction/internal/logging"
	"art-auction/internal/registry"
	"art-auction/internal/roundtimer"
	"art-auction/internal/ws"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadApp()
	if err != nil {
		panic(err)
	}
	logging.Init(cfg.Log)

	clock := clockwork.NewRealClock()
	reg := registry.New()
	eventBus := bus.New(cfg.Server.EventBuffer)
	engine := game.NewEngine(clock, catalog.Draw)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	timer := roundtimer.New(reg, eventBus, engine, clock, cfg.Server.TickInterval())
	go timer.Run(ctx)

	wsSrv := ws.NewServer(eventBus)
	r := newRouter(reg, eventBus, engine, clock, wsSrv)

	server := &http.Server{
		Addr:              cfg.Server.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	log.Info().Str("addr", cfg.Server.HTTPAddr).Msg("http listening")
	log.Fatal().Err(server.ListenAndServe()).Msg("server stopped")
}
