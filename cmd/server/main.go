package main

import (
    "context"
    "log/slog"
    "net/http"
    "os"
    "os/signal"
    "syscall"
    "time"

    "github.com/go-chi/chi/v5"

    httpadapter "dealdesk/internal/adapters/http"
    pg "dealdesk/internal/adapters/postgres"
    "dealdesk/internal/adapters/webhook"
    "dealdesk/internal/config"
    "dealdesk/internal/logger"
    "dealdesk/internal/ports"
    autosvc "dealdesk/internal/services/automations"
    contractsvc "dealdesk/internal/services/contracts"
    govsvc "dealdesk/internal/services/governance"
    leadsvc "dealdesk/internal/services/leads"
    pipesvc "dealdesk/internal/services/pipeline"
    dispatchworker "dealdesk/internal/workers/dispatchrunner"
)

func main() {
    cfg, err := config.Load()
    if err != nil {
        slog.Warn("config", "error", err)
    }
    logger.Init(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

    if cfg.DatabaseURL == "" {
        slog.Error("DATABASE_URL is required for Postgres adapters")
        os.Exit(1)
    }

    catalog, err := config.LoadCatalog(cfg.CatalogPath)
    if err != nil {
        slog.Error("automation catalog", "error", err)
        os.Exit(1)
    }

    ctx, cancel := context.WithCancel(context.Background())
    defer cancel()

    db, err := pg.Connect(ctx, cfg.DatabaseURL)
    if err != nil {
        slog.Error("db connect", "error", err)
        os.Exit(1)
    }
    defer db.Close()

    // Wire repositories to services (ports)
    var _ ports.LeadRepository = db
    var _ ports.ContractRepository = db
    var _ ports.GateRepository = db
    var _ ports.ConfigRepository = db
    var _ ports.JobRepository = db

    governance := govsvc.New(db, db, catalog)
    if err := governance.SeedGates(ctx); err != nil {
        slog.Error("seed gates", "error", err)
        os.Exit(1)
    }

    leads := leadsvc.New(db)
    pipeline := pipesvc.New(db, nil)
    contracts := contractsvc.New(db, db)
    automations := autosvc.New(governance, db)

    srv := httpadapter.New(leads, pipeline, contracts, governance, automations)
    r := chi.NewRouter()
    r.Mount("/", srv.Routes())

    // Optional background dispatch workers
    if cfg.DispatchWorkers > 0 {
        dispatcher := webhook.New(cfg.WebhookBaseURL, catalog)
        go dispatchworker.Run(ctx, db, governance, dispatcher, cfg.DispatchWorkers, 500*time.Millisecond)
        slog.Info("dispatch workers started", "count", cfg.DispatchWorkers)
    }

    errCh := make(chan error, 1)
    go func() { errCh <- http.ListenAndServe(cfg.ListenAddr, r) }()
    slog.Info("listening", "addr", cfg.ListenAddr, "env", cfg.Env)

    sigCh := make(chan os.Signal, 1)
    signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
    select {
    case sig := <-sigCh:
        slog.Info("shutting down", "signal", sig.String())
        cancel()
        time.Sleep(300 * time.Millisecond)
    case err := <-errCh:
        slog.Error("server error", "error", err)
        os.Exit(1)
    }
}
