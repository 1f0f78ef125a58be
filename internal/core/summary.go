package core

// Summary aggregates headline figures for the dashboard.
type Summary struct {
	TotalExpenses float64 `json:"totalExpenses"`
	TotalPayments float64 `json:"totalPayments"`
	ActivePeople  int     `json:"activePeople"`
	Categories    int     `json:"categories"`
}

// Summarize totals the ledger collections. Inactive people are counted
// out, but their expenses still contribute to the expense total.
func Summarize(people []Person, categories []Category, expenses []Expense, payments []Payment) Summary {
	s := Summary{Categories: len(categories)}
	for _, p := range people {
		if p.Active {
			s.ActivePeople++
		}
	}
	for _, e := range expenses {
		s.TotalExpenses += e.Amount
	}
	for _, p := range payments {
		s.TotalPayments += p.Amount
	}
	return s
}
