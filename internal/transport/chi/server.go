// Package chi exposes the quote engine over HTTP: route registration,
// query-parameter parsing, and domain-error-to-status mapping.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/quotewell/quotewell/internal/domain"
	"github.com/quotewell/quotewell/internal/domain/criteria"
	"github.com/quotewell/quotewell/internal/domain/quote"
	"github.com/quotewell/quotewell/internal/metrics"
	directoryuc "github.com/quotewell/quotewell/internal/usecase/directory"
	healthuc "github.com/quotewell/quotewell/internal/usecase/health"
	quotesuc "github.com/quotewell/quotewell/internal/usecase/quotes"
)

// errorCode is the machine-readable code in error responses.
type errorCode string

const (
	codeBadRequest      errorCode = "bad_request"
	codeUnknownAuthor   errorCode = "unknown_author"
	codeUnknownTag      errorCode = "unknown_tag"
	codeNoMatch         errorCode = "no_match"
	codeRateLimited     errorCode = "rate_limited"
	codeDataUnavailable errorCode = "data_unavailable"
	codeInternalError   errorCode = "internal_error"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Limits carries the request bounds the route layer enforces before
// invoking the engine.
type Limits struct {
	MaxCount     int
	DefaultLimit int
	MaxLimit     int
}

// Server wires the quote engine, the directory, and health checks into
// HTTP handlers.
type Server struct {
	engine        *quotesuc.Service
	directory     *directoryuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	limits        Limits
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	engine *quotesuc.Service,
	directory *directoryuc.Service,
	health *healthuc.Service,
	limits Limits,
	logger *zap.Logger,
) *Server {
	s := &Server{
		engine:    engine,
		directory: directory,
		health:    health,
		logger:    logger,
		limits:    limits,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrNoMatch, http.StatusNotFound, codeNoMatch),
		sentinelHandler(domain.ErrUnknownAuthor, http.StatusBadRequest, codeUnknownAuthor),
		sentinelHandler(domain.ErrUnknownTag, http.StatusBadRequest, codeUnknownTag),
		sentinelHandler(domain.ErrInvalidCriteria, http.StatusBadRequest, codeBadRequest),
		sentinelHandler(domain.ErrDataUnavailable, http.StatusInternalServerError, codeDataUnavailable),
	}
	return s
}

// Routes registers all API routes on r.
func (s *Server) Routes(r chi.Router) {
	r.Get("/quotes/random", s.RandomQuotes)
	r.Get("/quotes/search", s.SearchQuotes)
	r.Get("/authors", s.ListAuthors)
	r.Get("/tags", s.ListTags)
	r.Get("/healthz", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// quoteResponse is the wire form of a quote.
type quoteResponse struct {
	Text   string   `json:"text"`
	Author string   `json:"author"`
	Tags   []string `json:"tags"`
	Length int      `json:"length"`
}

// authorResponse is the wire form of an author directory entry.
type authorResponse struct {
	Name       string `json:"name"`
	QuoteCount int    `json:"quoteCount"`
}

// RandomQuotes handles GET /quotes/random (exact mode).
// Params: minLength, maxLength, tags, authors (comma-separated), count.
// count==1 returns a single object, otherwise an array.
func (s *Server) RandomQuotes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	length, err := parseLengthRange(q)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}
	count, err := parseBoundedInt(q, "count", 1, s.limits.MaxCount)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}

	tags := splitCSV(q.Get("tags"))
	authors := splitCSV(q.Get("authors"))

	// Exact mode validates against the directories and canonicalizes
	// author casing before the engine runs.
	canonical, err := s.directory.CanonicalAuthors(r.Context(), authors)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	if err := s.directory.ValidateTags(r.Context(), tags); err != nil {
		s.handleDomainError(w, err)
		return
	}

	crit, err := criteria.NewExact(canonical, tags, length, count)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}

	result, err := s.engine.GetQuotes(r.Context(), crit)
	if err != nil {
		metrics.ObserveQuoteRequest("random", outcomeFor(err), 0)
		s.handleDomainError(w, err)
		return
	}
	metrics.ObserveQuoteRequest("random", metrics.OutcomeOK, len(result))

	if count == 1 {
		writeJSON(w, http.StatusOK, quoteToResponse(result[0]))
		return
	}
	writeJSON(w, http.StatusOK, quotesToResponse(result))
}

// SearchQuotes handles GET /quotes/search (partial mode).
// Params: minLength, maxLength, tags and authors as comma-separated
// substring terms, terms (extra author terms), exactTags, limit.
func (s *Server) SearchQuotes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	length, err := parseLengthRange(q)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}
	limit, err := parseBoundedInt(q, "limit", s.limits.DefaultLimit, s.limits.MaxLimit)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}
	exactTags, err := parseBool(q, "exactTags")
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}

	authorTerms := splitCSV(q.Get("authors"))
	authorTerms = append(authorTerms, splitCSV(q.Get("terms"))...)
	tagTerms := splitCSV(q.Get("tags"))

	// exactTags switches tag matching to full membership, which makes the
	// vocabulary check applicable again.
	if exactTags {
		if err := s.directory.ValidateTags(r.Context(), tagTerms); err != nil {
			s.handleDomainError(w, err)
			return
		}
	}

	crit, err := criteria.NewPartial(authorTerms, tagTerms, exactTags, length, limit)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, err.Error())
		return
	}

	result, err := s.engine.SearchQuotes(r.Context(), crit)
	if err != nil {
		metrics.ObserveQuoteRequest("search", outcomeFor(err), 0)
		s.handleDomainError(w, err)
		return
	}
	metrics.ObserveQuoteRequest("search", metrics.OutcomeOK, len(result))

	writeJSON(w, http.StatusOK, quotesToResponse(result))
}

// ListAuthors handles GET /authors.
func (s *Server) ListAuthors(w http.ResponseWriter, r *http.Request) {
	entries := s.directory.Authors(r.Context())
	items := make([]authorResponse, len(entries))
	for i, e := range entries {
		items[i] = authorResponse{Name: e.Name, QuoteCount: e.QuoteCount}
	}
	writeJSON(w, http.StatusOK, items)
}

// ListTags handles GET /tags.
func (s *Server) ListTags(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.directory.Tags(r.Context()))
}

// HealthCheck handles GET /healthz.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	checks := make(map[string]string, len(report.Checks))
	for name, res := range report.Checks {
		checks[name] = string(res)
	}

	writeJSON(w, httpStatus, map[string]any{
		"status": string(report.Status),
		"checks": checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func quoteToResponse(q quote.Quote) quoteResponse {
	tags := q.Tags()
	if tags == nil {
		tags = []string{}
	}
	return quoteResponse{
		Text:   q.Text(),
		Author: q.Author(),
		Tags:   tags,
		Length: q.Length(),
	}
}

func quotesToResponse(qs []quote.Quote) []quoteResponse {
	items := make([]quoteResponse, len(qs))
	for i, q := range qs {
		items[i] = quoteToResponse(q)
	}
	return items
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code errorCode, message string) {
	writeJSON(w, status, map[string]string{
		"code":    string(code),
		"message": message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrNoMatch,
		domain.ErrUnknownAuthor,
		domain.ErrUnknownTag,
		domain.ErrInvalidCriteria,
		domain.ErrDataUnavailable,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code errorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
}

func outcomeFor(err error) string {
	if errors.Is(err, domain.ErrNoMatch) {
		return metrics.OutcomeNoMatch
	}
	return metrics.OutcomeError
}
