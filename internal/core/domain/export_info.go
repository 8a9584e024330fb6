package domain

import "time"

// ExportInfo records the inputs an exported file was produced from.
type ExportInfo struct {
	Target    string    `json:"target,omitzero"`
	InputHash string    `json:"input_hash,omitzero"`
	Timestamp time.Time `json:"timestamp,omitzero"`
}
