package dto

import (
	"math"

	"github.com/fincrack/stocklens/internal/domain/models"
)

// ChartPointResponse is one element of the chart series returned by
// POST /api/stock_data. Field names follow the established API contract
// (the frontend charts key on the capitalized names).
type ChartPointResponse struct {
	Date  string   `json:"Date" example:"2025-08-29"`
	Close float64  `json:"Close" example:"232.14"`
	SMA   *float64 `json:"SMA"`
	EMA   *float64 `json:"EMA"`
}

// ValuationMetrics groups the fundamental ratios of a report.
type ValuationMetrics struct {
	PERatio  float64 `json:"pe_ratio" example:"28.91"`
	PBRatio  float64 `json:"pb_ratio" example:"47.33"`
	PSRatio  float64 `json:"ps_ratio" example:"8.75"`
	PEGRatio float64 `json:"peg_ratio" example:"2.21"`
	ROE      float64 `json:"roe" example:"1.47"`
}

// TechnicalMetrics groups the headline technical indicators of a report.
type TechnicalMetrics struct {
	LatestPrice float64  `json:"latest_price" example:"232.14"`
	RSI         *float64 `json:"rsi" example:"55.31"`
	MACDLine    *float64 `json:"macd_line" example:"1.82"`
}

// MetricsData is the nested metrics block of StockDataResponse.
type MetricsData struct {
	Valuation ValuationMetrics `json:"valuation_and_profitability"`
	Technical TechnicalMetrics `json:"technical_indicators"`
}

// StockDataResponse is the full single-ticker report: headline metrics plus
// the chart-ready daily series.
type StockDataResponse struct {
	Success     bool                 `json:"success"`
	Ticker      string               `json:"ticker" example:"AAPL"`
	MetricsData MetricsData          `json:"metrics_data"`
	ChartData   []ChartPointResponse `json:"chart_data"`
}

// StockMetricsResponse is the compact single-ticker metrics payload.
type StockMetricsResponse struct {
	Success      bool     `json:"success"`
	Ticker       string   `json:"ticker" example:"AAPL"`
	CurrentPrice float64  `json:"currentPrice" example:"232.14"`
	PE           float64  `json:"PE" example:"28.91"`
	PB           float64  `json:"PB" example:"47.33"`
	PEG          float64  `json:"PEG" example:"2.21"`
	PS           float64  `json:"PS" example:"8.75"`
	ROE          float64  `json:"ROE" example:"1.47"`
	RSI          *float64 `json:"RSI" example:"55.31"`
	MACDLine     *float64 `json:"MACDLine" example:"1.82"`
}

// MultiStockEntry is one constituent of a batch response: either a compact
// metrics payload or a per-ticker error.
type MultiStockEntry struct {
	Success      bool     `json:"success"`
	Ticker       string   `json:"ticker,omitempty"`
	CurrentPrice *float64 `json:"currentPrice,omitempty"`
	PE           *float64 `json:"PE,omitempty"`
	PB           *float64 `json:"PB,omitempty"`
	PEG          *float64 `json:"PEG,omitempty"`
	PS           *float64 `json:"PS,omitempty"`
	ROE          *float64 `json:"ROE,omitempty"`
	RSI          *float64 `json:"RSI,omitempty"`
	MACDLine     *float64 `json:"MACDLine,omitempty"`
	Error        string   `json:"error,omitempty"`
}

// MultiStockMetricsResponse is the batch payload. Success is true when at
// least one constituent succeeded.
type MultiStockMetricsResponse struct {
	Success bool                       `json:"success"`
	Data    map[string]MultiStockEntry `json:"data"`
}

// SimpleMetricsResponse is the simplified metrics payload of
// GET /api/simple_metrics/{ticker}.
type SimpleMetricsResponse struct {
	Ticker      string   `json:"ticker" example:"AAPL"`
	LatestPrice float64  `json:"latest_price" example:"232.14"`
	PEGRatio    float64  `json:"peg_ratio" example:"2.21"`
	PERatio     float64  `json:"pe_ratio" example:"28.91"`
	PBRatio     float64  `json:"pb_ratio" example:"47.33"`
	PSRatio     float64  `json:"ps_ratio" example:"8.75"`
	ROE         float64  `json:"roe" example:"1.47"`
	RSI         *float64 `json:"rsi" example:"55.31"`
	MACDLine    *float64 `json:"macd_line" example:"1.82"`
}

// Round2 rounds v to two decimal places. Rounding happens only here, at the
// reporting boundary, so intermediate indicator math stays unrounded.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round2Ptr rounds v to two decimals and returns a pointer, or nil when v is
// NaN or infinite. encoding/json cannot represent NaN; null is the
// insufficient-data marker on the wire.
func Round2Ptr(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	r := Round2(v)
	return &r
}

func newValuationMetrics(f models.Fundamentals) ValuationMetrics {
	return ValuationMetrics{
		PERatio:  Round2(f.PERatio),
		PBRatio:  Round2(f.PBRatio),
		PSRatio:  Round2(f.PSRatio),
		PEGRatio: Round2(f.PEGRatio),
		ROE:      Round2(f.ROE),
	}
}

// NewStockDataResponse maps a metrics report and its chart series onto the
// full-report payload.
func NewStockDataResponse(report *models.MetricsReport, chart []models.ChartPoint) StockDataResponse {
	points := make([]ChartPointResponse, len(chart))
	for i, p := range chart {
		points[i] = ChartPointResponse{
			Date:  p.Date,
			Close: p.Close,
			SMA:   floatPtr(p.SMA),
			EMA:   floatPtr(p.EMA),
		}
	}
	return StockDataResponse{
		Success: true,
		Ticker:  report.Ticker,
		MetricsData: MetricsData{
			Valuation: newValuationMetrics(report.Fundamentals),
			Technical: TechnicalMetrics{
				LatestPrice: Round2(report.LatestPrice),
				RSI:         Round2Ptr(report.RSI),
				MACDLine:    Round2Ptr(report.MACDLine),
			},
		},
		ChartData: points,
	}
}

// NewStockMetricsResponse maps a metrics report onto the compact payload.
func NewStockMetricsResponse(report *models.MetricsReport) StockMetricsResponse {
	return StockMetricsResponse{
		Success:      true,
		Ticker:       report.Ticker,
		CurrentPrice: Round2(report.LatestPrice),
		PE:           Round2(report.Fundamentals.PERatio),
		PB:           Round2(report.Fundamentals.PBRatio),
		PEG:          Round2(report.Fundamentals.PEGRatio),
		PS:           Round2(report.Fundamentals.PSRatio),
		ROE:          Round2(report.Fundamentals.ROE),
		RSI:          Round2Ptr(report.RSI),
		MACDLine:     Round2Ptr(report.MACDLine),
	}
}

// NewMultiStockEntry maps a metrics report onto a successful batch entry.
func NewMultiStockEntry(report *models.MetricsReport) MultiStockEntry {
	price := Round2(report.LatestPrice)
	pe := Round2(report.Fundamentals.PERatio)
	pb := Round2(report.Fundamentals.PBRatio)
	peg := Round2(report.Fundamentals.PEGRatio)
	ps := Round2(report.Fundamentals.PSRatio)
	roe := Round2(report.Fundamentals.ROE)
	return MultiStockEntry{
		Success:      true,
		Ticker:       report.Ticker,
		CurrentPrice: &price,
		PE:           &pe,
		PB:           &pb,
		PEG:          &peg,
		PS:           &ps,
		ROE:          &roe,
		RSI:          Round2Ptr(report.RSI),
		MACDLine:     Round2Ptr(report.MACDLine),
	}
}

// NewSimpleMetricsResponse maps a metrics report onto the simplified payload.
func NewSimpleMetricsResponse(report *models.MetricsReport) SimpleMetricsResponse {
	return SimpleMetricsResponse{
		Ticker:      report.Ticker,
		LatestPrice: Round2(report.LatestPrice),
		PEGRatio:    Round2(report.Fundamentals.PEGRatio),
		PERatio:     Round2(report.Fundamentals.PERatio),
		PBRatio:     Round2(report.Fundamentals.PBRatio),
		PSRatio:     Round2(report.Fundamentals.PSRatio),
		ROE:         Round2(report.Fundamentals.ROE),
		RSI:         Round2Ptr(report.RSI),
		MACDLine:    Round2Ptr(report.MACDLine),
	}
}

// floatPtr returns a pointer to v without rounding, or nil for NaN/Inf.
// Chart values stay unrounded; only headline metrics are rounded.
func floatPtr(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
