package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lowroller/casinocore/internal/bet"
	"github.com/lowroller/casinocore/internal/config"
	"github.com/lowroller/casinocore/internal/domain"
	"github.com/lowroller/casinocore/internal/engine"
	"github.com/lowroller/casinocore/internal/ledger"
	"github.com/lowroller/casinocore/internal/logger"
	"github.com/lowroller/casinocore/internal/plinko"
	"github.com/lowroller/casinocore/internal/rng"
	"github.com/lowroller/casinocore/internal/roulette"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	initLogger(cfg)

	src := newSource(cfg)
	e := engine.New(src, engine.WithValidator(bet.NewValidator(cfg.MinBet, cfg.MaxBet)))
	book := ledger.NewMemory()

	ctx := logger.WithRequestID(context.Background(), logger.GenerateRequestID())
	runSimulation(ctx, cfg, e, book)

	if cfg.MetricsAddr != "" {
		serveOps(ctx, cfg)
	}
}

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config) {
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"

	logger.Init(logger.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: "casinocore-simulator",
		Environment: cfg.Environment,
		AddSource:   addSource,
	})
}

// newSource picks the randomness source. A nonzero SIM_SEED gives a
// reproducible run; otherwise plays draw from crypto/rand.
func newSource(cfg *config.Config) rng.Source {
	if cfg.SimSeed != 0 {
		return rng.NewSeeded(cfg.SimSeed)
	}
	return rng.CryptoSource{}
}

// simBet builds one bet per supported game for the simulation loop.
func simBets(amount float64) []*domain.Bet {
	return []*domain.Bet{
		{
			UserID:   "simulator",
			Amount:   amount,
			Game:     domain.GameRoulette,
			Roulette: &domain.RouletteParams{BetType: "red", BetValue: "red"},
		},
		{
			UserID: "simulator",
			Amount: amount,
			Game:   domain.GamePlinko,
			Plinko: &domain.PlinkoParams{RiskLevel: string(plinko.RiskMedium)},
		},
		{
			UserID: "simulator",
			Amount: amount,
			Game:   domain.GameBlackjack,
		},
		{
			UserID: "simulator",
			Amount: amount,
			Game:   domain.GameCaseOpening,
			Case:   &domain.CaseParams{CaseName: "starter_crate"},
		},
	}
}

// runSimulation plays every game cfg.SimRounds times, commits each play to the
// ledger, and logs empirical return against the theoretical house edge.
func runSimulation(ctx context.Context, cfg *config.Config, e *engine.Engine, book *ledger.Memory) {
	lg := logger.FromContext(ctx)
	amount := cfg.MinBet * 10
	if amount > cfg.MaxBet {
		amount = cfg.MaxBet
	}

	theoretical := map[domain.GameType]float64{
		domain.GameRoulette: roulette.ExpectedReturn(roulette.BetRed),
	}
	if rtp, err := plinko.ExpectedReturn(plinko.RiskMedium); err == nil {
		theoretical[domain.GamePlinko] = rtp
	}

	start := time.Now()
	for _, template := range simBets(amount) {
		wagered, returned := 0.0, 0.0
		for i := 0; i < cfg.SimRounds; i++ {
			result, err := e.Play(ctx, template)
			if err != nil {
				lg.Error("simulated play failed", "game", template.Game, "error", err)
				os.Exit(1)
			}
			wagered += result.BetAmount
			returned += result.WinAmount

			if err := book.Commit(ctx, ledger.Entry{
				UserID:    result.UserID,
				Game:      result.Game,
				BetAmount: result.BetAmount,
				WinAmount: result.WinAmount,
				Outcome:   result.Outcome,
				PlayedAt:  time.Now(),
			}); err != nil {
				lg.Error("ledger commit failed", "error", err)
				os.Exit(1)
			}
		}

		attrs := []any{
			"game", template.Game,
			"rounds", cfg.SimRounds,
			"wagered", wagered,
			"returned", returned,
			"empirical_rtp", returned / wagered,
		}
		if rtp, ok := theoretical[template.Game]; ok {
			attrs = append(attrs, "theoretical_rtp", rtp)
		}
		lg.Info("simulation finished", attrs...)
	}

	wagered, paidOut := book.Totals()
	lg.Info("simulation totals",
		"entries", len(book.Entries()),
		"wagered", wagered,
		"paid_out", paidOut,
		"elapsed", time.Since(start))
}

// serveOps runs a small operational server until interrupted: prometheus
// metrics, a liveness probe, and the static game configuration.
func serveOps(ctx context.Context, cfg *config.Config) {
	lg := logger.FromContext(ctx)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/config", handleGetConfig)

	srv := &http.Server{
		Addr:              cfg.MetricsAddr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		lg.Info("ops server listening", "addr", cfg.MetricsAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			lg.Error("ops server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		lg.Error("ops server shutdown failed", "error", err)
	}
}

// handleGetConfig serves the static table data clients need to render games.
func handleGetConfig(w http.ResponseWriter, r *http.Request) {
	payload := map[string]any{
		"plinko_board":       engine.GetBoardConfig(),
		"plinko_multipliers": engine.GetMultiplierTables(),
		"roulette_bet_types": engine.GetBetTypes(),
		"cases":              engine.GetCases(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.FromContext(r.Context()).Error("config encode failed", "error", err)
	}
}
