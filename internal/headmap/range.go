package headmap

import "math"

// ValueRange is the normalization domain for every point and timestep.
type ValueRange struct {
	Min, Max float64
}

// ComputeRange scans every value of every series.
func ComputeRange(series []Series) (ValueRange, error) {
	r := ValueRange{Min: math.Inf(1), Max: math.Inf(-1)}
	n := 0
	for _, s := range series {
		for _, v := range s {
			if v < r.Min {
				r.Min = v
			}
			if v > r.Max {
				r.Max = v
			}
			n++
		}
	}
	if n == 0 {
		return ValueRange{}, ErrEmptyData
	}
	return r, nil
}

func (r ValueRange) Span() float64 { return r.Max - r.Min }

func (r ValueRange) Degenerate() bool { return r.Max == r.Min }

func (r ValueRange) Contains(v float64) bool { return v >= r.Min && v <= r.Max }

// Fraction maps v to [0, 1] within the range. A degenerate range yields 0.5.
func (r ValueRange) Fraction(v float64) float64 {
	if r.Degenerate() {
		return 0.5
	}
	p := (v - r.Min) / r.Span()
	return math.Max(0, math.Min(1, p))
}
