package lancedb

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lancedb/lancedb-cloud-go/pkg/contracts"
)

// stubConnection satisfies contracts.IConnection for driver dispatch tests.
type stubConnection struct {
	uri    string
	closed bool
}

func (c *stubConnection) Close() error { c.closed = true; return nil }
func (c *stubConnection) TableNames(context.Context, ...contracts.TableNamesOption) ([]string, error) {
	return nil, nil
}
func (c *stubConnection) OpenTable(context.Context, string, ...contracts.OpenTableOption) (contracts.ITable, error) {
	return nil, nil
}
func (c *stubConnection) CreateTable(context.Context, string, contracts.ISchema) (contracts.ITable, error) {
	return nil, nil
}
func (c *stubConnection) CreateTableWithData(context.Context, string, []arrow.Record) (contracts.ITable, error) {
	return nil, nil
}
func (c *stubConnection) DropTable(context.Context, string) error { return nil }
func (c *stubConnection) DropDatabase(context.Context) error      { return nil }
func (c *stubConnection) IsClosed() bool                          { return c.closed }

type stubDriver struct {
	connects int
	options  *contracts.ConnectionOptions
}

func (d *stubDriver) Connect(_ context.Context, uri string, options *contracts.ConnectionOptions) (contracts.IConnection, error) {
	d.connects++
	d.options = options
	return &stubConnection{uri: uri}, nil
}

func TestConnectRemote(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		fmt.Fprint(w, `{"tables": ["vectors"]}`)
	}))
	defer server.Close()

	conn, err := Connect(context.Background(), "db://mydb", &contracts.ConnectionOptions{
		APIKey:       "test-key",
		HostOverride: server.URL,
	})
	require.NoError(t, err)
	defer conn.Close()

	assert.False(t, conn.IsClosed())

	names, err := conn.TableNames(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"vectors"}, names)
}

func TestConnectRemoteRequiresAPIKey(t *testing.T) {
	_, err := Connect(context.Background(), "db://mydb", nil)
	var invalid *contracts.InvalidInputError
	require.True(t, errors.As(err, &invalid), "want InvalidInputError, got %T", err)
}

func TestConnectUnknownScheme(t *testing.T) {
	_, err := Connect(context.Background(), "bogus://somewhere", nil)
	var notSupported *contracts.NotSupportedError
	require.True(t, errors.As(err, &notSupported), "want NotSupportedError, got %T", err)
	assert.Contains(t, notSupported.Message, "bogus")
}

func TestConnectDispatchesToDriver(t *testing.T) {
	driver := &stubDriver{}
	RegisterDriver("stub", driver)

	options := &contracts.ConnectionOptions{
		StorageOptions: &contracts.StorageOptions{
			S3: &contracts.S3Config{Region: "us-west-2"},
		},
	}
	conn, err := Connect(context.Background(), "stub://anything", options)
	require.NoError(t, err)
	assert.Equal(t, 1, driver.connects)

	stub, ok := conn.(*stubConnection)
	require.True(t, ok)
	assert.Equal(t, "stub://anything", stub.uri)

	// Options pass through intact so the driver can configure its store.
	require.NotNil(t, driver.options)
	assert.Equal(t, "us-west-2", driver.options.StorageOptions.ToMap()["aws_region"])

	assert.Contains(t, Drivers(), "stub")
}

func TestRegisterDriverPanics(t *testing.T) {
	assert.Panics(t, func() { RegisterDriver("nilcase", nil) }, "nil driver")

	RegisterDriver("dupcase", &stubDriver{})
	assert.Panics(t, func() { RegisterDriver("dupcase", &stubDriver{}) }, "duplicate scheme")
}
