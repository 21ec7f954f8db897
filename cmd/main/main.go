package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	_ "net/http/pprof"

	"crossover-service/internal/config"
	"crossover-service/internal/crossover/service"
	"crossover-service/internal/nomenclature"
	serverhttp "crossover-service/server/http"
)

func main() {
	if runtime.GOMAXPROCS(0) < runtime.NumCPU() {
		runtime.GOMAXPROCS(runtime.NumCPU())
	}

	cfg := config.Load()
	logger := config.SetupLogger(cfg)

	// one-time load; registry and weights are read-only afterwards
	reg, err := nomenclature.Load(cfg.RegistryFile)
	if err != nil {
		logger.Fatal().Err(err).Msg("load registry")
	}
	weights, err := service.LoadWeights(cfg.WeightsFile)
	if err != nil {
		logger.Fatal().Err(err).Msg("load weights")
	}
	logger.Info().Int("families", len(reg.Families())).Msg("registry loaded")

	r := serverhttp.NewRouter(cfg, reg, weights, logger)

	srv := &http.Server{Addr: cfg.Addr(), Handler: r}
	logger.Info().Str("addr", cfg.Addr()).Msg("server starting")

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("listen")
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	logger.Info().Msg("bye")
}
