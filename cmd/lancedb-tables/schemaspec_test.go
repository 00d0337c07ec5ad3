package main

import (
	"testing"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSchemaSpec(t *testing.T) {
	schema, err := parseSchemaSpec("id:int32,embedding:vector[128],text:string?,created:timestamp[ms]")
	require.NoError(t, err)
	require.Equal(t, 4, schema.NumFields())

	id, err := schema.FieldByName("id")
	require.NoError(t, err)
	assert.Equal(t, arrow.PrimitiveTypes.Int32, id.Type)
	assert.False(t, id.Nullable)

	embedding, err := schema.FieldByName("embedding")
	require.NoError(t, err)
	list, ok := embedding.Type.(*arrow.FixedSizeListType)
	require.True(t, ok)
	assert.Equal(t, int32(128), list.Len())
	assert.Equal(t, arrow.PrimitiveTypes.Float32, list.Elem())

	text, err := schema.FieldByName("text")
	require.NoError(t, err)
	assert.Equal(t, arrow.BinaryTypes.String, text.Type)
	assert.True(t, text.Nullable, "trailing ? marks the field nullable")

	created, err := schema.FieldByName("created")
	require.NoError(t, err)
	ts, ok := created.Type.(*arrow.TimestampType)
	require.True(t, ok)
	assert.Equal(t, arrow.Millisecond, ts.Unit)
}

func TestParseSchemaSpecVectorElements(t *testing.T) {
	schema, err := parseSchemaSpec("a:vector[4;float16],b:vector[8;float64],c:vector[16;float32]")
	require.NoError(t, err)

	wantElems := map[string]arrow.DataType{
		"a": arrow.FixedWidthTypes.Float16,
		"b": arrow.PrimitiveTypes.Float64,
		"c": arrow.PrimitiveTypes.Float32,
	}
	for name, want := range wantElems {
		field, err := schema.FieldByName(name)
		require.NoError(t, err)
		list, ok := field.Type.(*arrow.FixedSizeListType)
		require.True(t, ok)
		assert.Equal(t, want, list.Elem(), "field %s", name)
	}
}

func TestParseSchemaSpecWhitespace(t *testing.T) {
	schema, err := parseSchemaSpec(" id:int64 , name:string? ")
	require.NoError(t, err)
	assert.Equal(t, 2, schema.NumFields())
	assert.True(t, schema.HasField("id"))
	assert.True(t, schema.HasField("name"))
}

func TestParseSchemaSpecErrors(t *testing.T) {
	tests := []struct {
		name string
		spec string
	}{
		{"empty", ""},
		{"blank", "   "},
		{"missing type", "id"},
		{"missing name", ":int32"},
		{"unknown type", "id:int128"},
		{"malformed vector", "v:vector[abc]"},
		{"zero dimension", "v:vector[0]"},
		{"negative dimension", "v:vector[-4]"},
		{"unknown vector element", "v:vector[4;int8]"},
		{"unknown timestamp unit", "t:timestamp[h]"},
		{"unclosed timestamp", "t:timestamp[ms"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseSchemaSpec(tt.spec)
			assert.Error(t, err)
		})
	}
}
