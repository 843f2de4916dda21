package auth

import (
	"net/http"
	"strings"

	"github.com/hexient-labs/portico/core/handler"
)

// Validator is the token-validation collaborator interface the dispatch core
// consumes. *Service implements it.
type Validator interface {
	Validate(tokenText string) (StandardClaims, error)
}

// ClaimsCarrier is implemented by business contexts that want the
// authenticated identity populated by the auth step.
type ClaimsCarrier interface {
	SetClaims(StandardClaims)
}

// Step returns a pipeline step that extracts the bearer token, validates it
// and hands the claims to the business context. A missing or invalid token
// fails the step with a 401 and short-circuits the pipeline.
func Step[B any](v Validator) handler.Step[B] {
	return func(ctx *handler.Context[B]) error {
		token := BearerToken(ctx.Request())
		if token == "" {
			return &UnauthorizedError{Reason: "missing bearer token"}
		}
		claims, err := v.Validate(token)
		if err != nil {
			return &UnauthorizedError{Reason: err.Error()}
		}
		if cc, ok := any(ctx.Biz()).(ClaimsCarrier); ok {
			cc.SetClaims(claims)
		}
		return nil
	}
}

// BearerToken extracts the token text from the request. The Authorization
// header's Bearer scheme wins; WebSocket clients that cannot set headers may
// instead append the token to the subprotocol list after "websocket", per the
// token-bearing client convention. The core echoes the negotiated subprotocol
// value unchanged.
func BearerToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		if token, ok := strings.CutPrefix(h, "Bearer "); ok {
			return token
		}
		return ""
	}
	if protos := r.Header.Get("Sec-Websocket-Protocol"); protos != "" {
		parts := strings.Split(protos, ",")
		// First token is the upgrade target itself.
		if len(parts) > 1 {
			return strings.TrimSpace(parts[1])
		}
	}
	return ""
}
