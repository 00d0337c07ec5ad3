package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/apache/arrow/go/v17/arrow"

	lancedb "github.com/lancedb/lancedb-cloud-go/pkg"
	"github.com/lancedb/lancedb-cloud-go/pkg/contracts"
)

// parseSchemaSpec builds a table schema from a compact field list like
//
//	id:int32,embedding:vector[128],text:string?
//
// Each field is name:type, with a trailing "?" marking it nullable.
// Supported types: int32, int64, float32, float64, string, binary, bool,
// timestamp[s|ms|us|ns], and vector[dim] with an optional element type as
// vector[dim;float16|float32|float64].
func parseSchemaSpec(spec string) (contracts.ISchema, error) {
	if strings.TrimSpace(spec) == "" {
		return nil, errors.New("schema spec is empty")
	}

	builder := lancedb.NewSchemaBuilder()
	for _, raw := range strings.Split(spec, ",") {
		raw = strings.TrimSpace(raw)
		name, typ, ok := strings.Cut(raw, ":")
		if !ok || name == "" || typ == "" {
			return nil, fmt.Errorf("field %q: want name:type", raw)
		}

		nullable := strings.HasSuffix(typ, "?")
		typ = strings.TrimSuffix(typ, "?")

		switch {
		case typ == "int32":
			builder.AddInt32Field(name, nullable)
		case typ == "int64":
			builder.AddInt64Field(name, nullable)
		case typ == "float32":
			builder.AddFloat32Field(name, nullable)
		case typ == "float64":
			builder.AddFloat64Field(name, nullable)
		case typ == "string":
			builder.AddStringField(name, nullable)
		case typ == "binary":
			builder.AddBinaryField(name, nullable)
		case typ == "bool":
			builder.AddBooleanField(name, nullable)
		case strings.HasPrefix(typ, "timestamp["):
			unit, err := parseTimestampUnit(name, typ)
			if err != nil {
				return nil, err
			}
			builder.AddTimestampField(name, unit, nullable)
		case strings.HasPrefix(typ, "vector["):
			dim, elem, err := parseVectorType(name, typ)
			if err != nil {
				return nil, err
			}
			builder.AddVectorField(name, dim, elem, nullable)
		default:
			return nil, fmt.Errorf("field %q: unknown type %q", name, typ)
		}
	}

	return builder.Build()
}

func parseTimestampUnit(name, typ string) (arrow.TimeUnit, error) {
	inner, ok := strings.CutSuffix(strings.TrimPrefix(typ, "timestamp["), "]")
	if !ok {
		return 0, fmt.Errorf("field %q: malformed timestamp type %q", name, typ)
	}
	switch inner {
	case "s":
		return arrow.Second, nil
	case "ms":
		return arrow.Millisecond, nil
	case "us":
		return arrow.Microsecond, nil
	case "ns":
		return arrow.Nanosecond, nil
	default:
		return 0, fmt.Errorf("field %q: unknown timestamp unit %q", name, inner)
	}
}

func parseVectorType(name, typ string) (int, contracts.VectorDataType, error) {
	inner, ok := strings.CutSuffix(strings.TrimPrefix(typ, "vector["), "]")
	if !ok {
		return 0, 0, fmt.Errorf("field %q: malformed vector type %q", name, typ)
	}

	dimStr, elemStr, _ := strings.Cut(inner, ";")
	dim, err := strconv.Atoi(dimStr)
	if err != nil || dim <= 0 {
		return 0, 0, fmt.Errorf("field %q: vector dimension %q is not a positive integer", name, dimStr)
	}

	switch elemStr {
	case "", "float32":
		return dim, contracts.VectorDataTypeFloat32, nil
	case "float16":
		return dim, contracts.VectorDataTypeFloat16, nil
	case "float64":
		return dim, contracts.VectorDataTypeFloat64, nil
	default:
		return 0, 0, fmt.Errorf("field %q: unknown vector element type %q", name, elemStr)
	}
}
