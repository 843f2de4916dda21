package router

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/hexient-labs/portico/contract"
	"github.com/hexient-labs/portico/core/arena"
	"github.com/hexient-labs/portico/core/handler"
	"github.com/hexient-labs/portico/core/logger"
)

// Endpoint is an immutable binding from a path to per-verb handler chains,
// an optional WebSocket handler for upgrade requests, and an optional error
// handler for business-function failures. It is owned exclusively by the
// router after registration.
type Endpoint struct {
	Path string

	Get     handler.Invoker
	Post    handler.Invoker
	Put     handler.Invoker
	Patch   handler.Invoker
	Delete  handler.Invoker
	Options handler.Invoker

	WebSocket handler.Invoker

	ErrorHandler handler.ErrorHandler
}

// invoker returns the per-verb handler, or nil when the verb is unhandled.
func (ep *Endpoint) invoker(method string) handler.Invoker {
	switch method {
	case http.MethodGet:
		return ep.Get
	case http.MethodPost:
		return ep.Post
	case http.MethodPut:
		return ep.Put
	case http.MethodPatch:
		return ep.Patch
	case http.MethodDelete:
		return ep.Delete
	case http.MethodOptions:
		return ep.Options
	default:
		return nil
	}
}

// knownMethods is the verb set accepted before routing; anything else is
// rejected without a path lookup.
var knownMethods = map[string]struct{}{
	http.MethodGet:     {},
	http.MethodPost:    {},
	http.MethodPut:     {},
	http.MethodPatch:   {},
	http.MethodDelete:  {},
	http.MethodOptions: {},
}

// Router owns the registered endpoint set, matches inbound paths to an
// endpoint, dispatches by verb and gates the WebSocket upgrade handshake.
//
// Registration mutates the registry; Listen seals it. After sealing, dispatch
// is read-only over the registry and safe for concurrent readers without
// locks.
type Router struct {
	mu        sync.Mutex
	sealed    atomic.Bool
	endpoints []Endpoint          // sealed: sorted by descending path length
	paths     map[string]struct{} // duplicate detection at registration

	pool       *arena.Pool
	log        *slog.Logger
	production bool
	arenaSize  int
}

// Option configures a Router during creation.
type Option func(*Router)

// WithLogger sets the router's logger. Defaults to a no-op logger.
func WithLogger(log *slog.Logger) Option {
	return func(rt *Router) {
		if log != nil {
			rt.log = log
		}
	}
}

// WithProduction disables CORS headers on baseline responses (404, 500,
// default OPTIONS still answers preflight).
func WithProduction(on bool) Option {
	return func(rt *Router) {
		rt.production = on
	}
}

// WithArenaSize sets the initial backing capacity of per-slot arenas.
func WithArenaSize(size int) Option {
	return func(rt *Router) {
		rt.arenaSize = size
	}
}

// New creates an empty, unsealed router.
func New(opts ...Option) *Router {
	rt := &Router{
		paths: make(map[string]struct{}),
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(rt)
	}
	return rt
}

// Logger implements handler.Host.
func (rt *Router) Logger() *slog.Logger {
	return rt.log
}

// Production implements handler.Host.
func (rt *Router) Production() bool {
	return rt.production
}

// Register adds an immutable endpoint to the registry. It fails with
// ErrPathConflict when the path is byte-identical to an already-registered
// one. Partial prefix overlaps (e.g. "/a" and "/ab") are deliberately
// allowed: dispatch resolves them longest-match-first, which makes the more
// specific path win but leaves genuinely ambiguous registrations to the
// caller's discipline.
func (rt *Router) Register(ep Endpoint) error {
	if !strings.HasPrefix(ep.Path, "/") {
		return fmt.Errorf("%w: %q", ErrInvalidPath, ep.Path)
	}

	rt.mu.Lock()
	defer rt.mu.Unlock()

	if rt.sealed.Load() {
		return fmt.Errorf("%w: cannot register %q", ErrSealed, ep.Path)
	}
	if _, dup := rt.paths[ep.Path]; dup {
		return fmt.Errorf("%w: %q", ErrPathConflict, ep.Path)
	}
	rt.paths[ep.Path] = struct{}{}
	rt.endpoints = append(rt.endpoints, ep)
	return nil
}

// Listen seals the registry: endpoints are sorted by descending path length
// so the longest-match-first scan selects the most specific endpoint, and the
// arena pool is sized to the final slot count. Idempotent; registration fails
// after the first call.
func (rt *Router) Listen() error {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	if rt.sealed.Load() {
		return nil
	}
	sort.SliceStable(rt.endpoints, func(i, j int) bool {
		return len(rt.endpoints[i].Path) > len(rt.endpoints[j].Path)
	})
	rt.pool = arena.NewPool(len(rt.endpoints), rt.arenaSize)
	rt.sealed.Store(true)

	rt.log.Info("endpoint registry sealed", "endpoints", len(rt.endpoints))
	return nil
}

// match scans the sealed registry longest-first and returns the slot index of
// the first endpoint whose path is a prefix of the request path, or -1.
func (rt *Router) match(path string) (int, *Endpoint) {
	for i := range rt.endpoints {
		if strings.HasPrefix(path, rt.endpoints[i].Path) {
			return i, &rt.endpoints[i]
		}
	}
	return -1, nil
}

// ServeHTTP dispatches one request: verb gate, longest-prefix match, arena
// acquisition, upgrade check, handler invocation. All failures stay inside
// this request; nothing unwinds past it.
func (rt *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if !rt.sealed.Load() {
		_ = rt.Listen()
	}

	ww := newResponseWriter(w)

	if _, ok := knownMethods[req.Method]; !ok {
		rt.reject(ww, http.StatusBadRequest, "unknown method")
		return
	}

	path := req.URL.Path
	if path == "" {
		path = "/"
	}

	slot, ep := rt.match(path)
	if slot < 0 {
		rt.notFound(ww)
		return
	}

	errh := ep.ErrorHandler
	if errh == nil {
		errh = rt.defaultErrorHandler
	}

	a, err := rt.pool.Acquire(slot)
	if err != nil {
		rt.log.Error("arena acquisition failed", logger.Error(err), logger.Route(req.Method, path))
		rt.reject(ww, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}
	// Reset happens only after the handler is done with the response; the
	// recover boundary below runs first (LIFO) so a best-effort 500 is
	// written before the arena is recycled.
	defer rt.pool.Release(slot, a)
	defer func() {
		if p := recover(); p != nil {
			rt.log.Error("request handling panicked",
				"panic", p, logger.Route(req.Method, path))
			if !ww.Written() {
				rt.reject(ww, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
			} else {
				// Too late for an error response; the connection is abandoned.
				rt.log.Error("response already started, abandoning connection", "path", path)
			}
		}
	}()

	if isUpgrade(req) {
		if proto := upgradeTarget(req); proto != "websocket" {
			rt.log.Warn("unsupported upgrade protocol", "protocol", proto, logger.Route(req.Method, path))
			rt.reject(ww, http.StatusBadRequest, http.StatusText(http.StatusBadRequest))
			return
		}
		if ep.WebSocket == nil {
			rt.notFound(ww)
			return
		}
		ep.WebSocket.Invoke(a, rt, ww, req, errh)
		return
	}

	inv := ep.invoker(req.Method)
	if inv == nil {
		if req.Method == http.MethodOptions {
			rt.preflight(ww)
			return
		}
		rt.notFound(ww)
		return
	}
	inv.Invoke(a, rt, ww, req, errh)
}

// Contracts exposes the declared type metadata of every endpoint/verb pair in
// the sealed registry for the client-contract generator.
func (rt *Router) Contracts() ([]contract.Entry, error) {
	if !rt.sealed.Load() {
		return nil, ErrNotSealed
	}

	var entries []contract.Entry
	for i := range rt.endpoints {
		ep := &rt.endpoints[i]
		for _, method := range []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		} {
			if inv := ep.invoker(method); inv != nil {
				entries = append(entries, contract.Entry{
					Path:       ep.Path,
					Method:     method,
					Descriptor: inv.Descriptor(),
				})
			}
		}
		if ep.WebSocket != nil {
			entries = append(entries, contract.Entry{
				Path:       ep.Path,
				Method:     "WEBSOCKET",
				Descriptor: ep.WebSocket.Descriptor(),
			})
		}
	}
	return entries, nil
}

// isUpgrade reports whether the request asks for a protocol upgrade.
func isUpgrade(req *http.Request) bool {
	if req.Header.Get("Upgrade") == "" {
		return false
	}
	for _, token := range strings.Split(req.Header.Get("Connection"), ",") {
		if strings.EqualFold(strings.TrimSpace(token), "upgrade") {
			return true
		}
	}
	return false
}

// upgradeTarget returns the negotiated upgrade target: the first requested
// subprotocol when present, otherwise the Upgrade header value. Dispatch
// accepts only the literal "websocket".
func upgradeTarget(req *http.Request) string {
	if proto := req.Header.Get("Sec-Websocket-Protocol"); proto != "" {
		first, _, _ := strings.Cut(proto, ",")
		return strings.TrimSpace(first)
	}
	return strings.ToLower(strings.TrimSpace(req.Header.Get("Upgrade")))
}
