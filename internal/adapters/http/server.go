package httpadapter

import (
    "log/slog"
    "net/http"
    "time"

    "github.com/go-chi/chi/v5"
    "github.com/go-chi/chi/v5/middleware"

    autosvc "dealdesk/internal/services/automations"
    contractsvc "dealdesk/internal/services/contracts"
    govsvc "dealdesk/internal/services/governance"
    leadsvc "dealdesk/internal/services/leads"
    pipesvc "dealdesk/internal/services/pipeline"
)

// Server exposes the engine to the presentation layer. Everything the rest of
// the application depends on goes through these routes.
type Server struct {
    leads       *leadsvc.Service
    pipeline    *pipesvc.Service
    contracts   *contractsvc.Service
    governance  *govsvc.Service
    automations *autosvc.Service
}

func New(leads *leadsvc.Service, pipeline *pipesvc.Service, contracts *contractsvc.Service, governance *govsvc.Service, automations *autosvc.Service) *Server {
    return &Server{
        leads:       leads,
        pipeline:    pipeline,
        contracts:   contracts,
        governance:  governance,
        automations: automations,
    }
}

// Routes returns the chi router for the full API surface.
func (s *Server) Routes() chi.Router {
    r := chi.NewRouter()
    r.Use(middleware.RequestID)
    r.Use(requestLogger)
    r.Use(middleware.Recoverer)

    r.Get("/healthz", s.handleHealthz)

    r.Route("/leads", func(r chi.Router) {
        r.Post("/", s.handleCreateLead)
        r.Get("/", s.handleListLeads)
        r.Get("/urgent", s.handleUrgentBoard)
        r.Get("/{id}", s.handleGetLead)
        r.Put("/{id}", s.handleUpdateLead)
        r.Put("/{id}/status", s.handleTransition)
        r.Post("/{id}/contact", s.handleRecordContact)
    })

    r.Route("/contracts", func(r chi.Router) {
        r.Post("/", s.handleCreateContract)
        r.Get("/", s.handleListContracts)
        r.Get("/{id}", s.handleGetContract)
    })

    r.Route("/governance", func(r chi.Router) {
        r.Get("/gates", s.handleListGates)
        r.Put("/gates/{key}", s.handleSetGate)
        r.Get("/config", s.handleGetConfig)
        r.Post("/kill", s.handleKill)
        r.Post("/revive", s.handleRevive)
        r.Put("/autonomy", s.handleSetAutonomy)
    })

    r.Route("/automations", func(r chi.Router) {
        r.Post("/{key}/run", s.handleRunAutomation)
        r.Get("/jobs/{id}", s.handleGetJob)
    })

    return r
}

// requestLogger logs each completed request, level keyed to the status code.
func requestLogger(next http.Handler) http.Handler {
    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        start := time.Now()
        ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
        next.ServeHTTP(ww, r)

        attrs := []any{
            "status", ww.Status(),
            "method", r.Method,
            "path", r.URL.Path,
            "latency_ms", time.Since(start).Milliseconds(),
            "request_id", middleware.GetReqID(r.Context()),
        }
        switch {
        case ww.Status() >= 500:
            slog.Error("request completed", attrs...)
        case ww.Status() >= 400:
            slog.Warn("request completed", attrs...)
        default:
            slog.Info("request completed", attrs...)
        }
    })
}
