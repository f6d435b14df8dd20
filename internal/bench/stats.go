package bench

import (
	"math"

	"inferd/pkg/types"
)

// Summarize computes the aggregate record for one finished run: mean/min/max
// and population standard deviation over client-observed totals, mean over
// server-reported processing times. No outlier handling, no warm-up exclusion.
func Summarize(results []types.CallResult) types.Statistics {
	var s types.Statistics
	if len(results) == 0 {
		return s
	}
	n := float64(len(results))
	s.MinTime = results[0].TotalTime
	s.MaxTime = results[0].TotalTime
	var sumTotal, sumProc float64
	for _, r := range results {
		sumTotal += r.TotalTime
		sumProc += r.ServerProcessingTime
		if r.TotalTime < s.MinTime {
			s.MinTime = r.TotalTime
		}
		if r.TotalTime > s.MaxTime {
			s.MaxTime = r.TotalTime
		}
	}
	s.AverageTotalTime = sumTotal / n
	s.AverageProcessingTime = sumProc / n
	var sq float64
	for _, r := range results {
		d := r.TotalTime - s.AverageTotalTime
		sq += d * d
	}
	s.StdDev = math.Sqrt(sq / n)
	return s
}
