package lancedb

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"github.com/lancedb/lancedb-cloud-go/pkg/contracts"
	"github.com/lancedb/lancedb-cloud-go/pkg/internal"
)

var (
	driversMu sync.RWMutex
	drivers   = make(map[string]contracts.IDriver)
)

// RegisterDriver makes a connection backend available to Connect under the
// given URI scheme. Backends with their own storage engines register
// themselves here, typically from an init function. RegisterDriver panics
// if called twice for one scheme or with a nil driver.
func RegisterDriver(scheme string, driver contracts.IDriver) {
	driversMu.Lock()
	defer driversMu.Unlock()
	if driver == nil {
		panic("lancedb: RegisterDriver driver is nil")
	}
	if _, dup := drivers[scheme]; dup {
		panic("lancedb: RegisterDriver called twice for scheme " + scheme)
	}
	drivers[scheme] = driver
}

// Drivers returns the registered URI schemes, in no particular order. The
// native db:// scheme is not listed; it needs no driver.
func Drivers() []string {
	driversMu.RLock()
	defer driversMu.RUnlock()
	schemes := make([]string, 0, len(drivers))
	for scheme := range drivers {
		schemes = append(schemes, scheme)
	}
	return schemes
}

func lookupDriver(scheme string) (contracts.IDriver, bool) {
	driversMu.RLock()
	defer driversMu.RUnlock()
	driver, ok := drivers[scheme]
	return driver, ok
}

// Connect establishes a connection to a LanceDB database. The backend is
// selected from the URI scheme: db:// URIs are served by the built-in
// LanceDB Cloud client, any other scheme dispatches to the driver
// registered for it. Connecting to the cloud sends no request; the first
// operation does.
func Connect(ctx context.Context, uri string, options *contracts.ConnectionOptions) (contracts.IConnection, error) {
	parsed, err := url.Parse(uri)
	if err != nil {
		return nil, &contracts.InvalidInputError{Message: fmt.Sprintf("invalid database URI %q: %v", uri, err)}
	}

	if parsed.Scheme == "db" {
		return internal.NewRemoteConnection(uri, options)
	}

	if driver, ok := lookupDriver(parsed.Scheme); ok {
		return driver.Connect(ctx, uri, options)
	}

	return nil, &contracts.NotSupportedError{Message: fmt.Sprintf("no driver registered for URI scheme %q", parsed.Scheme)}
}
