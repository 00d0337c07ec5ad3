package contracts

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/apache/arrow/go/v17/arrow"
)

type IConnection interface {
	Close() error
	TableNames(ctx context.Context, opts ...TableNamesOption) ([]string, error)
	OpenTable(ctx context.Context, name string, opts ...OpenTableOption) (ITable, error)
	CreateTable(ctx context.Context, name string, schema ISchema) (ITable, error)
	CreateTableWithData(ctx context.Context, name string, records []arrow.Record) (ITable, error)
	DropTable(ctx context.Context, name string) error
	DropDatabase(ctx context.Context) error
	IsClosed() bool
}

// ConnectionOptions holds options for establishing a database connection
type ConnectionOptions struct {
	// APIKey authenticates every request against LanceDB Cloud. Required
	// for db:// URIs.
	APIKey string

	// Region selects the LanceDB Cloud region the database lives in.
	// Defaults to us-east-1.
	Region string

	// HostOverride points the client at an explicit endpoint instead of the
	// host derived from the database name and region. Self-hosted
	// deployments and tests set this.
	HostOverride string

	// HTTPClient performs the HTTP exchanges when set; defaults to
	// http.DefaultClient. Timeouts, retries, TLS and connection pooling are
	// the supplied client's responsibility.
	HTTPClient *http.Client

	// Logger receives debug-level request logs. Nothing is logged when nil.
	Logger *slog.Logger

	// Hook observes every request the connection sends. Optional.
	Hook RequestHook

	// StorageOptions carries object-store configuration for drivers that
	// manage their own storage. The remote backend has no storage of its
	// own and ignores it.
	StorageOptions *StorageOptions
}
