// Package endpoint binds typed business functions and WebSocket handlers
// together with their middleware pipelines into the uniform invocation
// signature the router dispatches through. Capabilities (parsed query type,
// parsed body type, CORS, custom steps) are declared with options at
// registration time; nothing is discovered by inspecting user types at
// request time.
package endpoint
