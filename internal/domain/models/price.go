package models

import "time"

// PriceBar represents one trading day for a ticker.
//
// Bars arrive from the market-data provider already ordered ascending by
// date, with no duplicate dates.
type PriceBar struct {
	Date  time.Time
	Close float64
}

// PriceSeries is the ordered daily price history for one ticker over a
// requested lookback period. It is request-scoped: built fresh per request
// and discarded once the response is assembled.
type PriceSeries struct {
	Ticker string
	Bars   []PriceBar
}

// Closes returns the close prices in bar order.
func (s PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		closes[i] = b.Close
	}
	return closes
}

// Latest returns the most recent close price, or 0 for an empty series.
func (s PriceSeries) Latest() float64 {
	if len(s.Bars) == 0 {
		return 0
	}
	return s.Bars[len(s.Bars)-1].Close
}
