// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: Copyright The LanceDB Authors

package internal

import (
	"bytes"
	"fmt"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/ipc"
	"github.com/apache/arrow/go/v17/arrow/memory"
)

// arrowStreamContentType marks a request body as an Arrow IPC stream.
const arrowStreamContentType = "application/vnd.apache.arrow.stream"

// batchesToIPCBytes encodes the schema and records as one Arrow IPC stream:
// a schema message, one message per record, and the end-of-stream marker.
// With no records the stream carries the schema alone, which is how an
// empty table is created. Every record must match schema.
func batchesToIPCBytes(schema *arrow.Schema, records []arrow.Record) ([]byte, error) {
	var buf bytes.Buffer
	writer := ipc.NewWriter(&buf,
		ipc.WithSchema(schema),
		ipc.WithAllocator(memory.DefaultAllocator),
	)

	for _, record := range records {
		if err := writer.Write(record); err != nil {
			writer.Close()
			return nil, fmt.Errorf("failed to write record to IPC stream: %w", err)
		}
	}

	// Close flushes the schema message if nothing was written and appends
	// the end-of-stream marker.
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to close IPC stream writer: %w", err)
	}

	return buf.Bytes(), nil
}
