package models

// Fundamentals is a snapshot of valuation ratios for one ticker.
//
// Each field defaults to 0 when the provider does not report it; a missing
// ratio never fails an otherwise-successful report.
type Fundamentals struct {
	PERatio  float64 `json:"pe_ratio"`
	PBRatio  float64 `json:"pb_ratio"`
	PSRatio  float64 `json:"ps_ratio"`
	PEGRatio float64 `json:"peg_ratio"`
	ROE      float64 `json:"roe"`
}
