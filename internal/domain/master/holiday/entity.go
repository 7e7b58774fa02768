package holiday

import "time"

// Holiday is a public holiday. Date is a calendar day.
type Holiday struct {
	Date  time.Time
	Title string
}

// Set indexes holidays by YYYY-MM-DD.
type Set map[string]Holiday

func NewSet(holidays []Holiday) Set {
	s := make(Set, len(holidays))
	for _, h := range holidays {
		s[h.Date.Format("2006-01-02")] = h
	}
	return s
}

func (s Set) Contains(day time.Time) bool {
	_, ok := s[day.Format("2006-01-02")]
	return ok
}
