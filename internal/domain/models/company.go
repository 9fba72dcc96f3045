package models

// CompanyRecord is one entry of the static company/ticker dataset
// (SEC company_tickers.json layout: a JSON object keyed by row index).
type CompanyRecord struct {
	CIK    int    `json:"cik_str"`
	Ticker string `json:"ticker"`
	Title  string `json:"title"`
}
