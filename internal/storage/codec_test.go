package storage

import (
	"errors"
	"reflect"
	"testing"

	"kartesia/internal/model"
)

func TestExpressionCodecRoundTrip(t *testing.T) {
	rec := testRecord("expr-1")
	data, err := EncodeExpression(rec)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := DecodeExpression(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(got, rec) {
		t.Fatalf("round trip mismatch:\ngot  %+v\nwant %+v", got, rec)
	}
}

func TestDecodeExpressionRejectsVersionMismatch(t *testing.T) {
	rec := testRecord("expr-1")
	rec.SchemaVersion = 2
	data, err := EncodeExpression(rec)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, err := DecodeExpression(data); !errors.Is(err, ErrVersionMismatch) {
		t.Fatalf("expected ErrVersionMismatch, got %v", err)
	}
}

func TestLossHistoryCodec(t *testing.T) {
	history := []model.LossRecord{
		{
			VersionedRecord: model.VersionedRecord{
				SchemaVersion: CurrentSchemaVersion,
				CodecVersion:  CurrentCodecVersion,
			},
			Kind:  "MSE",
			Value: 0.25,
		},
	}
	data, err := EncodeLossHistory(history)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := DecodeLossHistory(data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(got, history) {
		t.Fatalf("round trip mismatch:\ngot  %+v\nwant %+v", got, history)
	}

	history[0].CodecVersion = 9
	data, err = EncodeLossHistory(history)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, err := DecodeLossHistory(data); !errors.Is(err, ErrVersionMismatch) {
		t.Fatalf("expected ErrVersionMismatch, got %v", err)
	}
}
