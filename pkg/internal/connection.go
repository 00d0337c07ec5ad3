// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: Copyright The LanceDB Authors

package internal

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/apache/arrow/go/v17/arrow"

	"github.com/lancedb/lancedb-cloud-go/pkg/contracts"
)

// ErrConnectionClosed is returned by every operation on a closed connection.
var ErrConnectionClosed = errors.New("connection is closed")

// Operation labels passed to request logs and hooks.
const (
	opTableNames  = "table_names"
	opCreateTable = "create_table"
	opOpenTable   = "open_table"
	opDropTable   = "drop_table"
)

// RemoteConnection speaks to a LanceDB Cloud database over its REST API.
// Every operation is one independent request/response exchange; no protocol
// state is kept between calls, so operations may run concurrently against
// the same connection.
type RemoteConnection struct {
	client *RestClient
	mu     sync.RWMutex
	closed bool
}

var _ contracts.IConnection = (*RemoteConnection)(nil)

// NewRemoteConnection builds a connection for a db:// URI. No request is
// sent: there is no server-side session to establish.
func NewRemoteConnection(uri string, options *contracts.ConnectionOptions) (*RemoteConnection, error) {
	client, err := NewRestClient(uri, options)
	if err != nil {
		return nil, err
	}
	return &RemoteConnection{client: client}, nil
}

// Close marks the connection closed. The server holds no session, so
// nothing is torn down remotely; subsequent operations fail with
// ErrConnectionClosed.
func (c *RemoteConnection) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *RemoteConnection) IsClosed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.closed
}

func (c *RemoteConnection) String() string {
	return fmt.Sprintf("RemoteConnection(host=%s)", c.client.Host())
}

// listTablesResponse is the wire shape of the table-listing endpoint. The
// page token is absent on the final page. Tables is a pointer so that a body
// missing the key (or carrying null) is distinguishable from an empty
// listing; the field is required.
type listTablesResponse struct {
	Tables    *[]string `json:"tables"`
	PageToken string    `json:"page_token,omitempty"`
}

// TableNames lists table names in the order the server returns them. The
// listing is not re-sorted or de-duplicated client-side. Pagination is
// cursor-based: pass WithStartAfter the last name of the previous page to
// fetch the next one.
func (c *RemoteConnection) TableNames(ctx context.Context, opts ...contracts.TableNamesOption) ([]string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return nil, ErrConnectionClosed
	}

	options := &contracts.TableNamesOptions{}
	for _, opt := range opts {
		opt(options)
	}

	req := c.client.Get("/v1/table/").Operation(opTableNames, "")
	if options.Limit != nil {
		req.Query("limit", strconv.Itoa(*options.Limit))
	}
	if options.StartAfter != nil {
		req.Query("page_token", *options.StartAfter)
	}

	rsp, err := c.client.Send(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := c.client.CheckResponse(rsp); err != nil {
		return nil, err
	}

	var body listTablesResponse
	if err := json.Unmarshal(rsp.Body, &body); err != nil {
		return nil, fmt.Errorf("failed to decode table list response: %w", err)
	}
	if body.Tables == nil {
		return nil, errors.New(`failed to decode table list response: missing "tables" field`)
	}
	return *body.Tables, nil
}

// CreateTable creates an empty table with the given schema and returns a
// handle to it. Name uniqueness is enforced by the server; no local
// existence check is made.
func (c *RemoteConnection) CreateTable(ctx context.Context, name string, schema contracts.ISchema) (contracts.ITable, error) {
	if schema == nil || schema.ToArrowSchema() == nil {
		return nil, &contracts.InvalidInputError{Message: "schema is nil"}
	}
	return c.createTable(ctx, name, schema.ToArrowSchema(), nil)
}

// CreateTableWithData creates a table holding the given records and returns
// a handle to it. All records must share one schema, which becomes the
// table's schema.
func (c *RemoteConnection) CreateTableWithData(ctx context.Context, name string, records []arrow.Record) (contracts.ITable, error) {
	if len(records) == 0 {
		return nil, &contracts.InvalidInputError{Message: "at least one record is required; use CreateTable for an empty table"}
	}
	return c.createTable(ctx, name, records[0].Schema(), records)
}

func (c *RemoteConnection) createTable(ctx context.Context, name string, schema *arrow.Schema, records []arrow.Record) (contracts.ITable, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return nil, ErrConnectionClosed
	}

	// Serialization is CPU-bound; hand it to the serializer pool so a large
	// payload does not stall other in-flight operations.
	payload, err := submitSerialize(ctx, func() ([]byte, error) {
		return batchesToIPCBytes(schema, records)
	})
	if err != nil {
		return nil, err
	}

	req := c.client.Post(tableEndpoint(name, "create")).
		Body(payload).
		Header("Content-Type", arrowStreamContentType).
		// Expected by LanceDB Cloud; a fixed placeholder for now.
		Header("x-request-id", "na").
		Operation(opCreateTable, name)

	rsp, err := c.client.Send(ctx, req)
	if err != nil {
		return nil, err
	}

	if rsp.StatusCode == http.StatusBadRequest {
		// The server reports a name conflict as a 400 whose body mentions
		// "already exists"; there is no structured signal to match on.
		body := string(rsp.Body)
		if strings.Contains(body, "already exists") {
			return nil, &contracts.TableAlreadyExistsError{Name: name}
		}
		return nil, &contracts.InvalidInputError{Message: body}
	}
	if err := c.client.CheckResponse(rsp); err != nil {
		return nil, err
	}

	return NewRemoteTable(c.client, name), nil
}

// OpenTable confirms the named table exists and returns a handle to it. The
// confirmation is a describe call; no schema is fetched or cached. Storage
// option hints are accepted for signature compatibility with storage-backed
// drivers and have no effect on the request.
func (c *RemoteConnection) OpenTable(ctx context.Context, name string, opts ...contracts.OpenTableOption) (contracts.ITable, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return nil, ErrConnectionClosed
	}

	options := &contracts.OpenTableOptions{}
	for _, opt := range opts {
		opt(options)
	}
	_ = options.StorageOptions // no storage of our own to point them at

	req := c.client.Get(tableEndpoint(name, "describe")).Operation(opOpenTable, name)

	rsp, err := c.client.Send(ctx, req)
	if err != nil {
		return nil, err
	}
	if rsp.StatusCode == http.StatusNotFound {
		return nil, &contracts.TableNotFoundError{Name: name}
	}
	if err := c.client.CheckResponse(rsp); err != nil {
		return nil, err
	}

	return NewRemoteTable(c.client, name), nil
}

// DropTable drops the named table. The server returns success even when the
// table does not exist, and that is surfaced as success here: the contract
// does not guarantee a 404 on drop, so none is synthesized.
func (c *RemoteConnection) DropTable(ctx context.Context, name string) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return ErrConnectionClosed
	}

	req := c.client.Post(tableEndpoint(name, "drop")).Operation(opDropTable, name)

	rsp, err := c.client.Send(ctx, req)
	if err != nil {
		return err
	}
	return c.client.CheckResponse(rsp)
}

// DropDatabase always fails: the remote API does not expose whole-database
// deletion. No request is sent.
func (c *RemoteConnection) DropDatabase(_ context.Context) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return ErrConnectionClosed
	}

	return &contracts.NotSupportedError{Message: "dropping databases is not supported in the remote API"}
}

// tableEndpoint builds a per-table path like /v1/table/{name}/create/. The
// name is path-escaped so reserved characters cannot change the route.
func tableEndpoint(name, action string) string {
	return "/v1/table/" + url.PathEscape(name) + "/" + action + "/"
}
