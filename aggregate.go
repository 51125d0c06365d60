package wxchart

// CategoryCount is the number of observations with a condition label.
type CategoryCount struct {
	Condition string
	Count     int
}

// Aggregate counts the observations per condition label. Categories are
// returned in the order their label is first seen in obs.
func Aggregate(obs []Observation) []CategoryCount {
	var (
		counts []CategoryCount
		index  = make(map[string]int)
	)

	for i := range obs {
		c := obs[i].Condition

		j, ok := index[c]
		if !ok {
			j = len(counts)
			index[c] = j
			counts = append(counts, CategoryCount{Condition: c})
		}

		counts[j].Count++
	}

	return counts
}
