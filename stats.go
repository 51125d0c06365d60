package wxchart

// Summary holds the dataset statistics shown beside the chart.
type Summary struct {
	Count           int
	AverageC        float64
	MinC, MaxC      float64
	CommonCondition string
}

// Summarize returns the statistics of obs. It returns false when obs is
// empty. The most common condition is the first seen one on a tie.
func Summarize(obs []Observation) (Summary, bool) {
	if len(obs) == 0 {
		return Summary{}, false
	}

	r := TemperatureRange(obs)
	s := Summary{
		Count: len(obs),
		MinC:  r.Min,
		MaxC:  r.Max,
	}

	var sum float64

	for i := range obs {
		sum += obs[i].TemperatureC
	}

	s.AverageC = sum / float64(len(obs))

	var best int

	for _, c := range Aggregate(obs) {
		if c.Count > best {
			best = c.Count
			s.CommonCondition = c.Condition
		}
	}

	return s, true
}
