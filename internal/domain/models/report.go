package models

// MetricsReport holds every derived metric for one ticker, computed from a
// single PriceSeries. Values that cannot be computed from the available
// history are NaN; the DTO layer maps those to JSON null.
//
// Fields:
//   - LatestPrice: close of the most recent bar.
//   - SMA / EMA: moving averages over the requested window, at the last bar.
//   - RSI: 14-period relative strength index.
//   - MACDLine / MACDSignal / MACDHist: MACD(12,26,9) at the last bar.
//   - Fundamentals: valuation ratio snapshot.
type MetricsReport struct {
	Ticker       string
	LatestPrice  float64
	SMA          float64
	EMA          float64
	RSI          float64
	MACDLine     float64
	MACDSignal   float64
	MACDHist     float64
	Fundamentals Fundamentals
}

// ChartPoint is one day of the chart-ready series: the close plus the
// moving-average values as of that day. SMA and EMA are NaN while their
// windows are still filling.
type ChartPoint struct {
	Date  string
	Close float64
	SMA   float64
	EMA   float64
}
