// SPDX-License-Identifier: MIT

package experiment

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/katalvlaran/qmkp/qmkp"
)

// Summary aggregates one algorithm's profits over all runs.
type Summary struct {
	Algorithm qmkp.Algorithm
	Profits   []float64 // indexed by run
	Mean      float64
	Min       float64
	Max       float64
}

// Report is the outcome of one Runner.Run.
type Report struct {
	ID        string
	Seed      int64
	Runs      int
	Instance  InstanceSpec
	Summaries []Summary // in configured algorithm order
	Elapsed   time.Duration
}

func newReport(id string, seed int64, spec InstanceSpec, algs []qmkp.Algorithm, profits [][]float64, elapsed time.Duration) *Report {
	rep := &Report{
		ID:        id,
		Seed:      seed,
		Instance:  spec,
		Summaries: make([]Summary, len(algs)),
		Elapsed:   elapsed,
	}
	for i, alg := range algs {
		rep.Summaries[i] = summarize(alg, profits[i])
		rep.Runs = len(profits[i])
	}

	return rep
}

func summarize(alg qmkp.Algorithm, profits []float64) Summary {
	s := Summary{Algorithm: alg, Profits: profits}
	if len(profits) == 0 {
		return s
	}
	s.Min, s.Max = profits[0], profits[0]
	var sum float64
	for _, v := range profits {
		sum += v
		s.Min = min(s.Min, v)
		s.Max = max(s.Max, v)
	}
	s.Mean = sum / float64(len(profits))

	return s
}

// Summary returns the aggregate for alg, if it was part of the run.
func (r *Report) Summary(alg qmkp.Algorithm) (Summary, bool) {
	for _, s := range r.Summaries {
		if s.Algorithm == alg {
			return s, true
		}
	}
	return Summary{}, false
}

// Best returns the summary with the highest mean profit; ties keep the
// earlier algorithm.
func (r *Report) Best() (Summary, bool) {
	if len(r.Summaries) == 0 {
		return Summary{}, false
	}
	best := r.Summaries[0]
	for _, s := range r.Summaries[1:] {
		if s.Mean > best.Mean {
			best = s
		}
	}
	return best, true
}

// WriteTable prints one aligned line per algorithm.
func (r *Report) WriteTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "algorithm\tmean\tmin\tmax\n")
	for _, s := range r.Summaries {
		fmt.Fprintf(tw, "%s\t%.3f\t%.3f\t%.3f\n", s.Algorithm, s.Mean, s.Min, s.Max)
	}
	return tw.Flush()
}
