package endpoint

import (
	"net/http"
	"reflect"

	"github.com/hexient-labs/portico/contract"
	"github.com/hexient-labs/portico/core/binder"
	"github.com/hexient-labs/portico/core/handler"
	"github.com/hexient-labs/portico/core/pipeline"
)

// options collects the capability declarations for one handler. The pipeline
// assembler turns them into the fixed-order step list; the descriptor feeds
// the client-contract generator.
type options[B any] struct {
	caps   pipeline.Caps[B]
	desc   contract.Descriptor
	header http.Header
}

// Option declares one capability of a handler.
type Option[B any] func(*options[B])

func newOptions[B any](opts []Option[B]) *options[B] {
	o := &options[B]{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithCORS enables CORS header injection for this handler.
func WithCORS[B any]() Option[B] {
	return func(o *options[B]) {
		o.caps.CORS = true
	}
}

// WithQuery declares that the handler needs parsed query parameters of type
// Q. sel selects where inside the business context the parsed value lands.
func WithQuery[B, Q any](sel func(*B) *Q) Option[B] {
	return func(o *options[B]) {
		o.caps.Query = pipeline.Bind[B](binder.Query(), func(b *B) any { return sel(b) })
		o.desc.Query = reflect.TypeOf((*Q)(nil)).Elem()
	}
}

// WithBody declares that the handler needs the request body parsed as a JSON
// value of type T.
func WithBody[B, T any](sel func(*B) *T) Option[B] {
	return func(o *options[B]) {
		o.caps.Body = pipeline.Bind[B](binder.JSON(), func(b *B) any { return sel(b) })
		o.desc.Body = reflect.TypeOf((*T)(nil)).Elem()
	}
}

// WithRawBody declares that the handler wants the raw request body passed
// through unparsed.
func WithRawBody[B any](sel func(*B) *string) Option[B] {
	return func(o *options[B]) {
		o.caps.Body = pipeline.Bind[B](binder.Text(), func(b *B) any { return sel(b) })
		o.desc.Body = reflect.TypeOf((*string)(nil)).Elem()
	}
}

// WithSteps appends caller-supplied custom steps. They run after the built-in
// steps, in declaration order.
func WithSteps[B any](steps ...handler.Step[B]) Option[B] {
	return func(o *options[B]) {
		o.caps.Custom = append(o.caps.Custom, steps...)
	}
}

// WithResponse declares the handler's response body type for the
// client-contract generator. It has no runtime effect.
func WithResponse[B, R any]() Option[B] {
	return func(o *options[B]) {
		o.desc.Response = reflect.TypeOf((*R)(nil)).Elem()
	}
}

// WithUpgradeHeader sets extra response headers sent with a WebSocket
// upgrade, e.g. an auth collaborator echoing the client token back through
// the negotiated-subprotocol field. Ignored by plain HTTP adapters.
func WithUpgradeHeader[B any](header http.Header) Option[B] {
	return func(o *options[B]) {
		o.header = header
	}
}
