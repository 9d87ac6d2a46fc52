package storage

import (
	"encoding/json"
	"errors"

	"kartesia/internal/model"
)

const (
	CurrentSchemaVersion = 1
	CurrentCodecVersion  = 1
)

var ErrVersionMismatch = errors.New("record version mismatch")

func EncodeExpression(rec model.ExpressionRecord) ([]byte, error) {
	return json.Marshal(rec)
}

func DecodeExpression(data []byte) (model.ExpressionRecord, error) {
	var rec model.ExpressionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return model.ExpressionRecord{}, err
	}
	if err := checkVersion(rec.VersionedRecord); err != nil {
		return model.ExpressionRecord{}, err
	}
	return rec, nil
}

func EncodeLossHistory(history []model.LossRecord) ([]byte, error) {
	return json.Marshal(history)
}

func DecodeLossHistory(data []byte) ([]model.LossRecord, error) {
	var history []model.LossRecord
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, err
	}
	for _, rec := range history {
		if err := checkVersion(rec.VersionedRecord); err != nil {
			return nil, err
		}
	}
	return history, nil
}

func checkVersion(v model.VersionedRecord) error {
	if v.SchemaVersion != CurrentSchemaVersion || v.CodecVersion != CurrentCodecVersion {
		return ErrVersionMismatch
	}
	return nil
}
