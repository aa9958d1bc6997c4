// Package server exposes the quote engine and lead capture over HTTP.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/iwvelando/quote-engine/internal/lead"
	"github.com/iwvelando/quote-engine/internal/metrics"
	"github.com/iwvelando/quote-engine/internal/quote"
	"github.com/iwvelando/quote-engine/pkg/constants"
	"github.com/iwvelando/quote-engine/pkg/validation"
	"go.uber.org/zap"
)

// Options configures NewHandler. Store is required; everything else has a
// default.
type Options struct {
	Logger      *zap.Logger
	Store       lead.Store
	Metrics     *metrics.Metrics
	RateLimiter *RateLimiter
	MaxBodySize int64
	Version     string
	Now         func() time.Time
}

type handler struct {
	logger      *zap.Logger
	store       lead.Store
	metrics     *metrics.Metrics
	limiter     *RateLimiter
	maxBodySize int64
	version     string
	now         func() time.Time
}

// NewHandler constructs the HTTP handler that serves the quote and lead API.
func NewHandler(opts Options) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	maxBodySize := opts.MaxBodySize
	if maxBodySize <= 0 {
		maxBodySize = constants.DefaultMaxBodySizeBytes
	}

	trimmedVersion := strings.TrimSpace(opts.Version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	store := opts.Store
	if store == nil {
		store = lead.NewMemoryStore()
	}

	m := opts.Metrics
	if m == nil {
		m = metrics.New()
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	h := &handler{
		logger:      logger,
		store:       store,
		metrics:     m,
		limiter:     opts.RateLimiter,
		maxBodySize: maxBodySize,
		version:     trimmedVersion,
		now:         now,
	}

	api := http.NewServeMux()
	api.HandleFunc("/api/quote", h.handleQuote)
	api.HandleFunc("/api/quote/compare", h.handleCompare)
	api.HandleFunc("/api/leads", h.handleLeads)
	api.HandleFunc("/api/leads/{id}", h.handleLead)
	api.HandleFunc("/api/version", h.handleVersion)

	mux := http.NewServeMux()
	mux.Handle("/api/", h.rateLimit(api))
	mux.HandleFunc("/healthz", h.handleHealth)
	mux.Handle("/metrics", m.Handler())

	return h.instrument(mux)
}

type quoteRequest struct {
	Income      quote.IncomeProfile     `json:"income"`
	Preferences quote.PreferenceProfile `json:"preferences"`
}

type quoteResponse struct {
	Offer   quote.Offer   `json:"offer"`
	Summary quote.Summary `json:"summary"`
}

type compareResponse struct {
	Offers    quote.AllOffers          `json:"offers"`
	Summaries []quote.Summary          `json:"summaries"`
	Options   []quote.ComparisonOption `json:"options"`
}

type leadResponse struct {
	Lead    lead.Lead     `json:"lead"`
	Offer   quote.Offer   `json:"offer"`
	Summary quote.Summary `json:"summary"`
}

type leadListResponse struct {
	Leads []leadResponse `json:"leads"`
}

type errorResponse struct {
	Error  string                  `json:"error"`
	Fields []validation.FieldError `json:"fields,omitempty"`
}

func (h *handler) handleQuote(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleQuote"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var req quoteRequest
	if !h.decodeJSON(w, r, &req, op) {
		return
	}

	offer := quote.CalculateOffer(req.Income, req.Preferences)
	h.metrics.ObserveQuote(string(offer.Kind()))

	h.logger.Debug("quote computed",
		zap.String("op", op),
		zap.String("offerType", string(offer.Kind())),
	)
	h.writeJSON(w, http.StatusOK, quoteResponse{Offer: offer, Summary: quote.GetOfferSummary(offer)})
}

func (h *handler) handleCompare(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleCompare"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var req quoteRequest
	if !h.decodeJSON(w, r, &req, op) {
		return
	}

	all := quote.CalculateAllOffers(req.Income)
	offers := all.Offers()
	summaries := make([]quote.Summary, 0, len(offers))
	for _, offer := range offers {
		h.metrics.ObserveQuote(string(offer.Kind()))
		summaries = append(summaries, quote.GetOfferSummary(offer))
	}

	h.writeJSON(w, http.StatusOK, compareResponse{
		Offers:    all,
		Summaries: summaries,
		Options:   quote.CompareOffers(all),
	})
}

func (h *handler) handleLeads(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.createLead(w, r)
	case http.MethodGet:
		h.listLeads(w, r)
	default:
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}
}

func (h *handler) createLead(w http.ResponseWriter, r *http.Request) {
	const op = "server.createLead"

	var app lead.Application
	if !h.decodeJSON(w, r, &app, op) {
		return
	}

	now := h.now()
	if err := app.Validate(now); err != nil {
		var fieldErrs validation.Errors
		if errors.As(err, &fieldErrs) {
			h.metrics.ObserveLead("invalid")
			h.logger.Info("lead rejected",
				zap.String("op", op),
				zap.Int("fieldErrors", len(fieldErrs)),
			)
			h.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "validation failed", Fields: fieldErrs})
			return
		}
		h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
		return
	}

	l := lead.New(app, now)
	if err := h.store.Save(r.Context(), l); err != nil {
		h.metrics.ObserveLead("error")
		h.respondErrorWithOp(w, http.StatusInternalServerError, fmt.Sprintf("failed to save lead: %v", err), op)
		return
	}
	h.metrics.ObserveLead("accepted")

	resp := h.leadResponse(l)
	h.logger.Info("lead captured",
		zap.String("op", op),
		zap.String("id", l.ID),
		zap.String("offerType", string(resp.Offer.Kind())),
	)
	h.writeJSON(w, http.StatusCreated, resp)
}

func (h *handler) listLeads(w http.ResponseWriter, r *http.Request) {
	const op = "server.listLeads"

	limit := constants.DefaultLeadListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > constants.MaxLeadListLimit {
			h.respondErrorWithOp(w, http.StatusBadRequest,
				fmt.Sprintf("limit must be an integer between 1 and %d", constants.MaxLeadListLimit), op)
			return
		}
		limit = n
	}

	leads, err := h.store.List(r.Context(), limit)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, fmt.Sprintf("failed to list leads: %v", err), op)
		return
	}

	resp := leadListResponse{Leads: make([]leadResponse, 0, len(leads))}
	for _, l := range leads {
		resp.Leads = append(resp.Leads, h.leadResponse(l))
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *handler) handleLead(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleLead"
	id := r.PathValue("id")

	switch r.Method {
	case http.MethodGet:
		l, err := h.store.Get(r.Context(), id)
		if errors.Is(err, lead.ErrNotFound) {
			h.respondErrorWithOp(w, http.StatusNotFound, "lead not found", op)
			return
		}
		if err != nil {
			h.respondErrorWithOp(w, http.StatusInternalServerError, fmt.Sprintf("failed to load lead: %v", err), op)
			return
		}
		h.writeJSON(w, http.StatusOK, h.leadResponse(l))
	case http.MethodDelete:
		err := h.store.Delete(r.Context(), id)
		if errors.Is(err, lead.ErrNotFound) {
			h.respondErrorWithOp(w, http.StatusNotFound, "lead not found", op)
			return
		}
		if err != nil {
			h.respondErrorWithOp(w, http.StatusInternalServerError, fmt.Sprintf("failed to delete lead: %v", err), op)
			return
		}
		h.logger.Info("lead deleted", zap.String("op", op), zap.String("id", id))
		w.WriteHeader(http.StatusNoContent)
	default:
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}
}

// leadResponse recomputes the selected offer; offers are never stored.
func (h *handler) leadResponse(l lead.Lead) leadResponse {
	offer := l.Offer()
	return leadResponse{Lead: l, Offer: offer, Summary: quote.GetOfferSummary(offer)}
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// decodeJSON reads a size-capped JSON body into dst. On failure it writes the
// error response and returns false.
func (h *handler) decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}, op string) bool {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxBytesErr):
			h.respondErrorWithOp(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request body exceeds limit of %d bytes", h.maxBodySize), op)
		case errors.Is(err, io.EOF):
			h.respondErrorWithOp(w, http.StatusBadRequest, "request body is empty", op)
		default:
			h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		}
		return false
	}
	return true
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	log := h.logger.Warn
	if status >= http.StatusInternalServerError {
		log = h.logger.Error
	}
	log("request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, errorResponse{Error: msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}

func (h *handler) rateLimit(next http.Handler) http.Handler {
	if h.limiter == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !h.limiter.Allow(clientIP(r)) {
			h.respondErrorWithOp(w, http.StatusTooManyRequests, "rate limit exceeded", "server.rateLimit")
			return
		}
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(status int) {
	s.status = status
	s.ResponseWriter.WriteHeader(status)
}

func (h *handler) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		h.metrics.ObserveRequest(route, r.Method, rec.status, time.Since(start))
	})
}
