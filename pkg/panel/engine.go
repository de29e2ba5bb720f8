package panel

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/zeronetwork/panelmock/internal/matching"
	"github.com/zeronetwork/panelmock/pkg/logging"
)

// HandlerFunc is an endpoint implementation. It runs with the engine
// lock held and returns the HTTP status plus a JSON-serializable body.
// A nil body produces an empty response.
type HandlerFunc func(c *Call) (int, any)

type route struct {
	method  string
	pattern string
	auth    bool
	fn      HandlerFunc
}

// Call carries one intercepted request into a handler.
type Call struct {
	ctx   context.Context
	store *Store
	// Query holds the parsed query string.
	Query url.Values
	// Params holds the path parameters captured by the route pattern.
	Params map[string]string
	body   []byte
}

// Context returns the request context.
func (c *Call) Context() context.Context { return c.ctx }

// Decode unmarshals the request body into v. An empty body decodes to
// the zero value.
func (c *Call) Decode(v any) error {
	if len(c.body) == 0 {
		return nil
	}
	if err := json.Unmarshal(c.body, v); err != nil {
		return &ValidationError{Message: "Invalid request body"}
	}
	return nil
}

// ID parses the named path parameter as an integer id. Unparseable
// values return 0, which no stored entity uses.
func (c *Call) ID(name string) int64 {
	n, err := strconv.ParseInt(c.Params[name], 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// Result is the outcome of one dispatched request.
type Result struct {
	Status int
	Body   any
}

// Option configures an Engine.
type Option func(*Engine)

// WithLatency sets the simulated per-request latency.
func WithLatency(d time.Duration) Option {
	return func(e *Engine) { e.latency = d }
}

// WithPrefix sets the public API prefix and the admin segment under
// it.
func WithPrefix(apiPrefix, adminSegment string) Option {
	return func(e *Engine) {
		e.prefix = apiPrefix
		e.adminPrefix = apiPrefix + "/" + adminSegment
	}
}

// WithLogger sets the engine's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithStore replaces the backing store. Intended for tests that need a
// fixed clock.
func WithStore(store *Store) Option {
	return func(e *Engine) { e.store = store }
}

// Engine matches intercepted requests against its route table and
// executes the emulated endpoint. A single mutex serializes route
// matching and handler execution, so handlers never race on the
// store.
type Engine struct {
	mu          sync.Mutex
	store       *Store
	routes      []route
	prefix      string
	adminPrefix string
	latency     time.Duration
	logger      *slog.Logger
}

// New returns an engine with the development dataset loaded and the
// default /api/v1 prefix.
func New(opts ...Option) *Engine {
	e := &Engine{
		store:       NewStore(),
		prefix:      "/api/v1",
		adminPrefix: "/api/v1/admin",
		latency:     300 * time.Millisecond,
		logger:      logging.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.routes = e.routeTable()
	return e
}

// Store exposes the backing store for test setup. Callers must not
// touch it concurrently with Dispatch.
func (e *Engine) Store() *Store { return e.store }

// Reset reloads the seed dataset and clears the session.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.store.Reset()
}

// Dispatch routes one request. The simulated latency elapses before
// the engine lock is taken, so slow virtual time never serializes
// unrelated callers. Dispatch fails only when the context is done;
// unmatched paths produce a 404 Result, not an error.
func (e *Engine) Dispatch(ctx context.Context, method, rawURL string, body []byte) (*Result, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse url: %w", err)
	}

	if e.latency > 0 {
		timer := time.NewTimer(e.latency)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	for _, r := range e.routes {
		if r.method != method {
			continue
		}
		params, ok := matching.Match(r.pattern, u.Path)
		if !ok {
			continue
		}
		if r.auth && e.store.Session == nil {
			e.logger.Debug("unauthorized", "method", method, "path", u.Path)
			return &Result{Status: http.StatusUnauthorized, Body: ErrorBody{Error: "Unauthorized"}}, nil
		}
		c := &Call{ctx: ctx, store: e.store, Query: u.Query(), Params: params, body: body}
		status, respBody := r.fn(c)
		e.logger.Debug("dispatched", "method", method, "path", u.Path, "status", status)
		return &Result{Status: status, Body: respBody}, nil
	}

	e.logger.Debug("unmatched", "method", method, "path", u.Path)
	return &Result{Status: http.StatusNotFound, Body: ErrorBody{Error: "Mock endpoint not found"}}, nil
}

// ServeHTTP adapts the engine to net/http so it can back a real
// listener or httptest server.
func (e *Engine) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var body []byte
	if r.Body != nil {
		defer r.Body.Close()
		buf, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, `{"error":"failed to read body"}`, http.StatusBadRequest)
			return
		}
		body = buf
	}

	res, err := e.Dispatch(r.Context(), r.Method, r.URL.RequestURI(), body)
	if err != nil {
		http.Error(w, `{"error":"request cancelled"}`, http.StatusServiceUnavailable)
		return
	}

	if res.Body == nil {
		w.WriteHeader(res.Status)
		return
	}
	payload, err := json.Marshal(res.Body)
	if err != nil {
		e.logger.Error("encode response", "error", err)
		http.Error(w, `{"error":"encoding failure"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.Status)
	w.Write(payload)
}
