package contract

import "reflect"

// Descriptor exposes the declared request and response types of a single
// endpoint/verb pair as opaque type handles. A nil type means the capability
// was not declared. Client-contract generators consume these to emit an
// interface-definition file; the server core itself never inspects them.
type Descriptor struct {
	Query    reflect.Type
	Body     reflect.Type
	Response reflect.Type
}

// Entry pairs a descriptor with its route.
type Entry struct {
	Path   string
	Method string
	Descriptor
}
