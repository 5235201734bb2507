package dto

// GenerationReportResponse represents the outcome of a manually triggered
// generator run.
type GenerationReportResponse struct {
	Job       string `json:"job"`
	Generated int    `json:"generated"`
	Skipped   int    `json:"skipped"`
	Failed    int    `json:"failed"`
}
