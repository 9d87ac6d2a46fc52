package model

// VersionedRecord captures schema and codec evolution for persistent data.
type VersionedRecord struct {
	SchemaVersion int `json:"schema_version"`
	CodecVersion  int `json:"codec_version"`
}

// ExpressionRecord is a persistable snapshot of one CGP individual: the
// grid parameters that shape the chromosome plus the chromosome itself.
// Kernels are stored by catalogue name in catalogue order so a live
// expression can be rebuilt against the same function set.
type ExpressionRecord struct {
	VersionedRecord
	ID         string   `json:"id"`
	Inputs     int      `json:"inputs"`
	Outputs    int      `json:"outputs"`
	Rows       int      `json:"rows"`
	Cols       int      `json:"cols"`
	LevelsBack int      `json:"levels_back"`
	Arity      []int    `json:"arity"`
	Kernels    []string `json:"kernels"`
	Chromosome []int    `json:"chromosome"`
}

// LossRecord is one appended loss measurement for a stored expression.
type LossRecord struct {
	VersionedRecord
	Kind  string  `json:"kind"`
	Value float64 `json:"value"`
}
