// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: Copyright The LanceDB Authors

package internal

import (
	"bytes"
	"testing"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/ipc"
	"github.com/apache/arrow/go/v17/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchesToIPCBytesSchemaOnly(t *testing.T) {
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "id", Type: arrow.PrimitiveTypes.Int64},
		{Name: "text", Type: arrow.BinaryTypes.String, Nullable: true},
	}, nil)

	payload, err := batchesToIPCBytes(schema, nil)
	require.NoError(t, err)
	require.NotEmpty(t, payload)

	reader, err := ipc.NewReader(bytes.NewReader(payload))
	require.NoError(t, err)
	defer reader.Release()

	assert.True(t, schema.Equal(reader.Schema()), "schema survives the round trip")
	assert.False(t, reader.Next(), "schema-only stream has no batches")
	require.NoError(t, reader.Err())
}

func TestBatchesToIPCBytesWithRecords(t *testing.T) {
	schema := arrow.NewSchema([]arrow.Field{
		{Name: "a", Type: arrow.PrimitiveTypes.Int32},
	}, nil)

	builder := array.NewRecordBuilder(memory.DefaultAllocator, schema)
	defer builder.Release()

	builder.Field(0).(*array.Int32Builder).AppendValues([]int32{1, 2, 3}, nil)
	first := builder.NewRecord()
	defer first.Release()

	builder.Field(0).(*array.Int32Builder).AppendValues([]int32{4, 5}, nil)
	second := builder.NewRecord()
	defer second.Release()

	payload, err := batchesToIPCBytes(schema, []arrow.Record{first, second})
	require.NoError(t, err)

	reader, err := ipc.NewReader(bytes.NewReader(payload))
	require.NoError(t, err)
	defer reader.Release()

	assert.True(t, schema.Equal(reader.Schema()))

	var values []int32
	for reader.Next() {
		column := reader.Record().Column(0).(*array.Int32)
		for i := 0; i < column.Len(); i++ {
			values = append(values, column.Value(i))
		}
	}
	require.NoError(t, reader.Err())
	assert.Equal(t, []int32{1, 2, 3, 4, 5}, values, "batch order and contents preserved")
}
