// Package arena provides per-request scratch allocators reused across
// requests. An arena is reset in bulk after each response is flushed rather
// than freed piecemeal, which bounds allocation churn on hot paths. The Pool
// keys free arenas by endpoint slot so backing memory sized by one endpoint's
// traffic is reused for that endpoint.
package arena
