package entities

// VariantResult represents the outcome of producing a single output variant
type VariantResult struct {
	Image      string `json:"image"`
	Profile    string `json:"profile"`
	OutputPath string `json:"output_path,omitempty"`
	Status     string `json:"status"` // "success", "error" or "skipped"
	Message    string `json:"message,omitempty"`
}

// ResizeReport represents the output of processing a portfolio directory
type ResizeReport struct {
	PortfolioDir    string          `json:"portfolio_dir"`
	TotalImages     int             `json:"total_images"`
	TotalVariants   int             `json:"total_variants"`
	Successful      int             `json:"successful"`
	Failed          int             `json:"failed"`
	Skipped         int             `json:"skipped,omitempty"`
	BackedUp        int             `json:"backed_up"`
	SuccessDetails  []VariantResult `json:"success_details"`
	FailureDetails  []VariantResult `json:"failure_details"`
	DurationSeconds float64         `json:"duration_seconds"`
}

// AddSuccess records a successfully produced variant
func (r *ResizeReport) AddSuccess(res VariantResult) {
	res.Status = "success"
	r.Successful++
	r.SuccessDetails = append(r.SuccessDetails, res)
}

// AddFailure records a variant that could not be produced
func (r *ResizeReport) AddFailure(res VariantResult) {
	res.Status = "error"
	r.Failed++
	r.FailureDetails = append(r.FailureDetails, res)
}
