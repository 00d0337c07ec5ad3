// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: Copyright The LanceDB Authors

/*
Package lancedb provides a Go client for LanceDB Cloud, the hosted vector
database service.

The client manages dataset and table lifecycle over the LanceDB Cloud REST
API: listing tables, creating tables (empty or pre-populated), opening
handles to existing tables, and dropping tables. Tabular data travels as
Apache Arrow; table creation uploads an Arrow IPC stream. Alternate
backends, such as an embedded local engine, plug in behind the same
connection interface through a driver registry keyed by URI scheme.

# Key Features

• Table Lifecycle: list, create, open, and drop tables in a cloud database
• Arrow-Native: schemas and data are Apache Arrow; creation payloads are IPC streams serialized off the request path
• Cursor Pagination: listings page through large namespaces with opaque page tokens
• Typed Errors: every failure is classified and matched with errors.As
• Pluggable Backends: a URI-scheme driver registry selects the implementation at Connect time

# Connecting

Connect with a db:// URI naming the database, and an API key:

	conn, err := lancedb.Connect(context.Background(), "db://my-database", &contracts.ConnectionOptions{
		APIKey: os.Getenv("LANCEDB_API_KEY"),
		Region: "us-east-1",
	})
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

The endpoint is derived from the database name and region. Self-hosted
deployments set ConnectionOptions.HostOverride instead. Connecting sends no
request; the first operation does.

# Table Management

	// List tables, in server order.
	names, err := conn.TableNames(ctx)

	// Page through a large database.
	page, err := conn.TableNames(ctx,
		contracts.WithLimit(100),
		contracts.WithStartAfter(lastSeen))

	// Create an empty table from a schema.
	schema, err := lancedb.NewSchemaBuilder().
		AddInt32Field("id", false).
		AddStringField("text", true).
		AddVectorField("embedding", 768, contracts.VectorDataTypeFloat32, false).
		Build()
	table, err := conn.CreateTable(ctx, "documents", schema)

	// Create a table from Arrow records.
	table, err = conn.CreateTableWithData(ctx, "documents", records)

	// Open a handle to an existing table.
	table, err = conn.OpenTable(ctx, "documents")

	// Drop a table.
	err = conn.DropTable(ctx, "documents")

A table handle is only ever returned by a successful CreateTable,
CreateTableWithData, or OpenTable; holding one is proof the table existed
at that moment.

# Error Handling

Failures carry types from the contracts package:

	table, err := conn.OpenTable(ctx, "documents")
	var notFound *contracts.TableNotFoundError
	if errors.As(err, &notFound) {
		// create it instead
	}

A *contracts.TransportError means the request never produced a response; a
*contracts.ServiceError carries the status and body of an unclassified
non-success response. Nothing is retried or suppressed by the client;
retry policy belongs to the http.Client supplied in ConnectionOptions.

# Thread Safety

A connection and its table handles are safe for concurrent use. Operations
in flight at the same time share one immutable transport client; no
ordering between them is guaranteed. Two concurrent creates of the same
name race at the server, and each caller sees whichever outcome the server
gave it. Cancelling a context abandons the local wait but does not undo
work the server may have already committed.

# Observability

Supply ConnectionOptions.Logger to get a debug log line per request, with
a generated request id. For tracing and metrics, install a RequestHook;
the lancedbotel subpackage provides an OpenTelemetry implementation:

	opts := &contracts.ConnectionOptions{
		APIKey: key,
		Hook:   lancedbotel.NewHook(lancedbotel.DefaultConfig()),
	}

For runnable end-to-end usage, see examples/remote.
*/
package lancedb
