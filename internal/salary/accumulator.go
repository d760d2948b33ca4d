package salary

// Accumulator collects estimates for one language and produces the average.
type Accumulator struct {
	sum   int64
	count int
}

// Add records a present estimate.
func (a *Accumulator) Add(v int) {
	a.sum += int64(v)
	a.count++
}

// AddListings estimates every listing and records the present results.
// It returns how many listings produced an estimate.
func (a *Accumulator) AddListings(listings []*Listing, estimate Estimator) int {
	n := 0
	for _, l := range listings {
		if v, ok := estimate(l); ok {
			a.Add(v)
			n++
		}
	}
	return n
}

// Count is the number of recorded estimates.
func (a *Accumulator) Count() int {
	return a.count
}

// Average is the floored mean of the recorded estimates, or 0 when nothing was recorded.
func (a *Accumulator) Average() int {
	if a.count == 0 {
		return 0
	}
	return int(a.sum / int64(a.count))
}
