package models

// CountSnapshot is the derived per-category asset tally cached under
// CountsKey for badge rendering. Raw partition lengths: hidden records
// and every asset type count equally.
type CountSnapshot struct {
	Content    int `json:"content"`
	Coach      int `json:"coach"`
	Compliance int `json:"compliance"`
}

func (s CountSnapshot) Get(c Category) int {
	switch c {
	case CategoryContent:
		return s.Content
	case CategoryCoach:
		return s.Coach
	case CategoryCompliance:
		return s.Compliance
	}
	return 0
}

func (s *CountSnapshot) Set(c Category, n int) {
	switch c {
	case CategoryContent:
		s.Content = n
	case CategoryCoach:
		s.Coach = n
	case CategoryCompliance:
		s.Compliance = n
	}
}
