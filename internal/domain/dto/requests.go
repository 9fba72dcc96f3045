package dto

// StockDataRequest is the body of POST /api/stock_data.
type StockDataRequest struct {
	CompanyInput string `json:"company_input" binding:"required" example:"Apple Inc."`
	Window       int    `json:"window" example:"14"`
}

// StockMetricsRequest is the body of POST /api/stock_metrics.
type StockMetricsRequest struct {
	CompanyInput string `json:"company_input" binding:"required" example:"AAPL"`
}

// MultiStockMetricsRequest is the body of POST /api/multi_stock_metrics.
type MultiStockMetricsRequest struct {
	CompanyInputs []string `json:"company_inputs" example:"AAPL,Microsoft"`
}
