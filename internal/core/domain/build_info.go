package domain

import "time"

// BuildInfo records the last successful build of a product.
type BuildInfo struct {
	ProductKey string    `json:"product_key,omitzero"`
	InputHash  string    `json:"input_hash,omitzero"`
	OutputHash string    `json:"output_hash,omitzero"`
	Timestamp  time.Time `json:"timestamp,omitzero"`
}
