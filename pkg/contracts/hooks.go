package contracts

import "context"

// RequestHook provides observability callpoints around every request a
// connection sends. Implementations must be safe for concurrent use
// (operations on one connection run concurrently).
type RequestHook interface {
	OnRequestStart(ctx context.Context, info RequestInfo) (context.Context, HookToken)
	OnRequestEnd(ctx context.Context, token HookToken, info RequestInfo, status int, err error)
}

// HookToken is an opaque value returned by OnRequestStart and passed back to
// OnRequestEnd. Only meaningful to the RequestHook that created it.
type HookToken interface{}

// RequestInfo carries request metadata passed to hooks.
type RequestInfo struct {
	Operation string // connection operation, e.g. "create_table"
	Method    string // HTTP method
	Path      string // request path, without host
	Table     string // table the operation targets, empty for listings
	RequestID string // client-generated identifier, also used in request logs
}
