package contracts

import "context"

// IDriver opens connections for one URI scheme. Backends that manage their
// own storage (an embedded engine for file paths, for example) implement
// IDriver and register themselves with the root package; db:// URIs are
// served natively and need no driver.
type IDriver interface {
	Connect(ctx context.Context, uri string, options *ConnectionOptions) (IConnection, error)
}
