package httpadapter

import (
    "net/http"

    "github.com/go-chi/chi/v5"

    "dealdesk/internal/domain"
    contractsvc "dealdesk/internal/services/contracts"
    leadsvc "dealdesk/internal/services/leads"
)

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
    writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Leads

func (s *Server) handleCreateLead(w http.ResponseWriter, r *http.Request) {
    var req leadRequest
    if !decodeBody(w, r, &req) {
        return
    }
    lead, err := s.leads.Create(r.Context(), leadInput(req))
    if err != nil {
        renderError(w, err)
        return
    }
    writeJSON(w, http.StatusCreated, toLeadResponse(lead))
}

func (s *Server) handleListLeads(w http.ResponseWriter, r *http.Request) {
    leads, err := s.leads.List(r.Context())
    if err != nil {
        renderError(w, err)
        return
    }
    writeJSON(w, http.StatusOK, toLeadResponses(leads))
}

func (s *Server) handleGetLead(w http.ResponseWriter, r *http.Request) {
    lead, err := s.leads.Get(r.Context(), chi.URLParam(r, "id"))
    if err != nil {
        renderError(w, err)
        return
    }
    writeJSON(w, http.StatusOK, toLeadResponse(lead))
}

func (s *Server) handleUpdateLead(w http.ResponseWriter, r *http.Request) {
    var req leadRequest
    if !decodeBody(w, r, &req) {
        return
    }
    lead, err := s.leads.Update(r.Context(), chi.URLParam(r, "id"), leadInput(req))
    if err != nil {
        renderError(w, err)
        return
    }
    writeJSON(w, http.StatusOK, toLeadResponse(lead))
}

func (s *Server) handleTransition(w http.ResponseWriter, r *http.Request) {
    var req transitionRequest
    if !decodeBody(w, r, &req) {
        return
    }
    lead, err := s.pipeline.Transition(r.Context(), chi.URLParam(r, "id"), domain.LeadStatus(req.Status))
    if err != nil {
        renderError(w, err)
        return
    }
    writeJSON(w, http.StatusOK, toLeadResponse(lead))
}

func (s *Server) handleRecordContact(w http.ResponseWriter, r *http.Request) {
    lead, err := s.leads.RecordContact(r.Context(), chi.URLParam(r, "id"))
    if err != nil {
        renderError(w, err)
        return
    }
    writeJSON(w, http.StatusOK, toLeadResponse(lead))
}

func (s *Server) handleUrgentBoard(w http.ResponseWriter, r *http.Request) {
    board, err := s.leads.Urgent(r.Context())
    if err != nil {
        renderError(w, err)
        return
    }
    writeJSON(w, http.StatusOK, urgentBoardResponse{
        Leads:         toLeadResponses(board.Leads),
        RevenueAtRisk: board.RevenueAtRisk,
    })
}

func leadInput(req leadRequest) leadsvc.LeadInput {
    return leadsvc.LeadInput{
        Address:             req.Address,
        OwnerName:           req.OwnerName,
        PropertyValue:       req.PropertyValue,
        RepairEstimate:      req.RepairEstimate,
        HasExcessFunds:      req.HasExcessFunds,
        ExcessFundsAmount:   req.ExcessFundsAmount,
        Distressed:          req.Distressed,
        DaysUntilExpiration: req.DaysUntilExpiration,
    }
}

// Contracts

func (s *Server) handleCreateContract(w http.ResponseWriter, r *http.Request) {
    var req contractRequest
    if !decodeBody(w, r, &req) {
        return
    }
    c, err := s.contracts.Create(r.Context(), contractsvc.ContractInput{
        LeadID:            req.LeadID,
        BuyerID:           req.BuyerID,
        DealType:          domain.DealType(req.DealType),
        ExcessFundsAmount: req.ExcessFundsAmount,
        WholesaleAmount:   req.WholesaleAmount,
    })
    if err != nil {
        renderError(w, err)
        return
    }
    writeJSON(w, http.StatusCreated, toContractResponse(c))
}

func (s *Server) handleGetContract(w http.ResponseWriter, r *http.Request) {
    c, err := s.contracts.Get(r.Context(), chi.URLParam(r, "id"))
    if err != nil {
        renderError(w, err)
        return
    }
    writeJSON(w, http.StatusOK, toContractResponse(c))
}

func (s *Server) handleListContracts(w http.ResponseWriter, r *http.Request) {
    leadID := r.URL.Query().Get("lead_id")
    if leadID == "" {
        writeError(w, http.StatusBadRequest, "lead_id query parameter required")
        return
    }
    cs, err := s.contracts.ListByLead(r.Context(), leadID)
    if err != nil {
        renderError(w, err)
        return
    }
    out := make([]contractResponse, 0, len(cs))
    for _, c := range cs {
        out = append(out, toContractResponse(c))
    }
    writeJSON(w, http.StatusOK, out)
}

// Governance

func (s *Server) handleListGates(w http.ResponseWriter, r *http.Request) {
    gates, err := s.governance.ListGates(r.Context())
    if err != nil {
        renderError(w, err)
        return
    }
    out := make([]gateResponse, 0, len(gates))
    for _, g := range gates {
        out = append(out, toGateResponse(g))
    }
    writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleSetGate(w http.ResponseWriter, r *http.Request) {
    var req gateRequest
    if !decodeBody(w, r, &req) {
        return
    }
    g, err := s.governance.SetGate(r.Context(), chi.URLParam(r, "key"), req.Enabled, req.Actor, req.Reason)
    if err != nil {
        renderError(w, err)
        return
    }
    writeJSON(w, http.StatusOK, toGateResponse(g))
}

func (s *Server) handleGetConfig(w http.ResponseWriter, r *http.Request) {
    cfg, err := s.governance.Config(r.Context())
    if err != nil {
        renderError(w, err)
        return
    }
    writeJSON(w, http.StatusOK, toConfigResponse(cfg))
}

func (s *Server) handleKill(w http.ResponseWriter, r *http.Request) {
    var req killRequest
    if !decodeBody(w, r, &req) {
        return
    }
    cfg, err := s.governance.Kill(r.Context(), req.Actor, req.Reason)
    if err != nil {
        renderError(w, err)
        return
    }
    writeJSON(w, http.StatusOK, toConfigResponse(cfg))
}

func (s *Server) handleRevive(w http.ResponseWriter, r *http.Request) {
    var req reviveRequest
    if !decodeBody(w, r, &req) {
        return
    }
    cfg, err := s.governance.Revive(r.Context(), req.Actor)
    if err != nil {
        renderError(w, err)
        return
    }
    writeJSON(w, http.StatusOK, toConfigResponse(cfg))
}

func (s *Server) handleSetAutonomy(w http.ResponseWriter, r *http.Request) {
    var req autonomyRequest
    if !decodeBody(w, r, &req) {
        return
    }
    cfg, err := s.governance.SetAutonomy(r.Context(), req.Level)
    if err != nil {
        renderError(w, err)
        return
    }
    writeJSON(w, http.StatusOK, toConfigResponse(cfg))
}

// Automations

func (s *Server) handleRunAutomation(w http.ResponseWriter, r *http.Request) {
    var req runRequest
    if !decodeBody(w, r, &req) {
        return
    }
    res, err := s.automations.Request(r.Context(), chi.URLParam(r, "key"), req.LeadID)
    if err != nil {
        renderError(w, err)
        return
    }
    if !res.Allowed {
        // Control-plane blocks are shown explicitly, never swallowed.
        writeJSON(w, http.StatusForbidden, runResponse{DeniedBy: res.DeniedBy, Reason: res.Reason})
        return
    }
    writeJSON(w, http.StatusAccepted, runResponse{Allowed: true, JobID: res.JobID})
}

func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
    j, err := s.automations.Job(r.Context(), chi.URLParam(r, "id"))
    if err != nil {
        renderError(w, err)
        return
    }
    writeJSON(w, http.StatusOK, toJobResponse(j))
}
