package dto

import "encoding/json"

// DownloadRequest carries the inputs for the complete-analysis workbook.
// Clients also post back the results they rendered, but the export recomputes
// from the inputs: the engine is deterministic and the server never trusts
// client-side figures.
type DownloadRequest struct {
	Results json.RawMessage    `json:"results"`
	Inputs  CalculationRequest `json:"inputs" binding:"required"`
}
