package endpoint

import (
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/hexient-labs/portico/contract"
	"github.com/hexient-labs/portico/core/arena"
	"github.com/hexient-labs/portico/core/handler"
	"github.com/hexient-labs/portico/core/logger"
	"github.com/hexient-labs/portico/core/pipeline"
)

// SocketFunc owns an upgraded WebSocket connection. It runs after the
// handshake completes; the connection's lifecycle is outside the dispatch
// loop from that point on.
type SocketFunc[B any] func(ctx *handler.Context[B], conn *websocket.Conn) error

// Socket binds a WebSocket handler into the uniform invocation signature.
// The middleware pipeline still applies to the initial upgrade request, so
// auth and CORS steps run before the handshake.
type Socket[B any] struct {
	fn       SocketFunc[B]
	steps    []handler.Step[B]
	upgrader websocket.Upgrader
	header   http.Header
	desc     contract.Descriptor
}

// NewSocket builds a WebSocket adapter with the declared capabilities.
func NewSocket[B any](fn SocketFunc[B], opts ...Option[B]) *Socket[B] {
	o := newOptions(opts)
	up := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		// Origin policy is the wildcard CORS policy of the core; the
		// router has already gated the subprotocol before we get here.
		CheckOrigin: func(r *http.Request) bool { return true },
	}
	// When the upgrade header sets Sec-WebSocket-Protocol itself, e.g. an
	// auth collaborator echoing the client token back, gorilla must take the
	// value from the response header verbatim. Listing subprotocols here
	// would make it negotiate from that list instead and drop the echo.
	if o.header.Get("Sec-Websocket-Protocol") == "" {
		up.Subprotocols = []string{"websocket"}
	}
	return &Socket[B]{
		fn:       fn,
		steps:    pipeline.Assemble(o.caps),
		upgrader: up,
		header:   o.header,
		desc:     o.desc,
	}
}

// Invoke runs the upgrade request through the pipeline, completes the
// handshake and hands the connection to the socket function. The context is
// marked finished at upgrade time: the adapter performs no further writes on
// the HTTP response path.
func (s *Socket[B]) Invoke(a *arena.Arena, host handler.Host, w http.ResponseWriter, r *http.Request, errh handler.ErrorHandler) {
	ctx := handler.NewContext[B](w, r, a, host)

	if err := pipeline.Run(ctx, s.steps); err != nil {
		return
	}
	if ctx.Finished() {
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, s.header)
	if err != nil {
		// Upgrade already wrote its own error response.
		host.Logger().Error("websocket handshake failed",
			logger.Error(err), "path", r.URL.Path)
		ctx.Finish()
		return
	}
	ctx.Finish()
	defer conn.Close() //nolint:errcheck

	if err := s.fn(ctx, conn); err != nil {
		if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
			host.Logger().Error("websocket handler failed",
				logger.Error(err), "path", r.URL.Path)
		}
	}
}

// Descriptor exposes the declared types for the client-contract generator.
func (s *Socket[B]) Descriptor() contract.Descriptor {
	return s.desc
}
