// Package indicator computes technical indicators over close-price series.
//
// All functions are pure and total: insufficient history yields NaN, never a
// panic. Results are unrounded; callers round at the reporting boundary.
package indicator

import "math"

const (
	rsiPeriod  = 14
	macdShort  = 12
	macdLong   = 26
	macdSignal = 9
)

// SMASeries returns the trailing simple moving average at every bar.
// Positions before the window has filled are NaN.
func SMASeries(closes []float64, window int) []float64 {
	out := make([]float64, len(closes))
	if window < 1 || window > len(closes) {
		for i := range out {
			out[i] = math.NaN()
		}
		return out
	}
	sum := 0.0
	for i, c := range closes {
		sum += c
		if i >= window {
			sum -= closes[i-window]
		}
		if i >= window-1 {
			out[i] = sum / float64(window)
		} else {
			out[i] = math.NaN()
		}
	}
	return out
}

// SMA returns the simple moving average of the last window closes, or NaN
// when the series is shorter than the window.
func SMA(closes []float64, window int) float64 {
	if len(closes) == 0 {
		return math.NaN()
	}
	series := SMASeries(closes, window)
	return series[len(series)-1]
}

// EMASeries returns the exponential moving average at every bar, with
// smoothing factor 2/(window+1) and the first close as seed:
//
//	ema[t] = alpha*close[t] + (1-alpha)*ema[t-1]
func EMASeries(closes []float64, window int) []float64 {
	out := make([]float64, len(closes))
	if len(closes) == 0 {
		return out
	}
	if window < 1 {
		for i := range out {
			out[i] = math.NaN()
		}
		return out
	}
	alpha := 2.0 / (float64(window) + 1.0)
	out[0] = closes[0]
	for i := 1; i < len(closes); i++ {
		out[i] = alpha*closes[i] + (1-alpha)*out[i-1]
	}
	return out
}

// EMA returns the exponential moving average at the final bar, or NaN for an
// empty series.
func EMA(closes []float64, window int) float64 {
	if len(closes) == 0 {
		return math.NaN()
	}
	series := EMASeries(closes, window)
	return series[len(series)-1]
}

// RSI returns the 14-period relative strength index at the final bar.
//
// Day-over-day deltas are split into gain and loss series, each smoothed
// with the recursive EMA form at alpha = 1/14 (center of mass 13) seeded
// with the first delta. A zero smoothed loss makes RS infinite; the result
// is clamped to 100 in that boundary case. Fewer than two bars yield NaN.
func RSI(closes []float64) float64 {
	if len(closes) < 2 {
		return math.NaN()
	}
	alpha := 1.0 / float64(rsiPeriod)
	var avgGain, avgLoss float64
	for i := 1; i < len(closes); i++ {
		delta := closes[i] - closes[i-1]
		gain, loss := 0.0, 0.0
		if delta > 0 {
			gain = delta
		} else {
			loss = -delta
		}
		if i == 1 {
			avgGain = gain
			avgLoss = loss
			continue
		}
		avgGain = alpha*gain + (1-alpha)*avgGain
		avgLoss = alpha*loss + (1-alpha)*avgLoss
	}
	if avgLoss == 0 {
		return 100.0
	}
	rs := avgGain / avgLoss
	return 100.0 - 100.0/(1.0+rs)
}

// MACD returns the MACD(12,26,9) line, signal line, and histogram at the
// final bar. The line is EMA12 minus EMA26; the signal is the EMA9 of the
// line series; the histogram is line minus signal. Empty input yields NaNs.
func MACD(closes []float64) (line, signal, histogram float64) {
	if len(closes) == 0 {
		return math.NaN(), math.NaN(), math.NaN()
	}
	short := EMASeries(closes, macdShort)
	long := EMASeries(closes, macdLong)
	macd := make([]float64, len(closes))
	for i := range closes {
		macd[i] = short[i] - long[i]
	}
	signals := EMASeries(macd, macdSignal)
	last := len(closes) - 1
	line = macd[last]
	signal = signals[last]
	histogram = line - signal
	return line, signal, histogram
}
