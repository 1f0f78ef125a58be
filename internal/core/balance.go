package core

import "math"

// SettledTolerance is the band around zero inside which a net balance
// counts as settled. Currency comparisons are never exact-zero checks.
const SettledTolerance = 0.01

// Balance is one active person's ledger position. Paid and Owes are
// tracked independently; the payer of an expense also owes their own
// share, which cancels out in the net Balance.
type Balance struct {
	Name    string  `json:"name"`
	Paid    float64 `json:"paid"`
	Owes    float64 `json:"owes"`
	Balance float64 `json:"balance"`
}

// Settled reports whether the net balance is within tolerance of zero.
func (b Balance) Settled() bool {
	return math.Abs(b.Balance) < SettledTolerance
}

// Creditor reports whether the person should receive money.
func (b Balance) Creditor() bool {
	return !b.Settled() && b.Balance > 0
}

// Debtor reports whether the person should pay money.
func (b Balance) Debtor() bool {
	return !b.Settled() && b.Balance < 0
}

// ComputeBalances produces the net position of every active person.
//
// Only active people form the balance pool: inactive people get no
// entry, and amounts paid by ids outside the pool are not credited to
// anyone. Every expense is split across the whole pool according to
// mode, so the result does not depend on the order of expenses or
// payments. A payment moves both parties toward zero: the sender's
// Paid grows, the receiver's Owes grows.
//
// The function is pure and never fails: an empty pool yields an empty
// map, and a proportional split over a pool with zero total salary
// yields zero shares instead of NaN.
func ComputeBalances(people []Person, expenses []Expense, payments []Payment, mode DivisionMode) map[int64]Balance {
	balances := make(map[int64]*Balance)
	var pool []Person
	for _, p := range people {
		if !p.Active {
			continue
		}
		pool = append(pool, p)
		balances[p.ID] = &Balance{Name: p.Name}
	}

	if len(pool) > 0 {
		var totalSalary float64
		for _, p := range pool {
			totalSalary += p.Salary
		}

		for _, e := range expenses {
			if b, ok := balances[e.PaidBy]; ok {
				b.Paid += e.Amount
			}
			for _, p := range pool {
				balances[p.ID].Owes += share(e.Amount, p, pool, totalSalary, mode)
			}
		}
	}

	for _, p := range payments {
		if b, ok := balances[p.FromID]; ok {
			b.Paid += p.Amount
		}
		if b, ok := balances[p.ToID]; ok {
			b.Owes += p.Amount
		}
	}

	out := make(map[int64]Balance, len(balances))
	for id, b := range balances {
		b.Balance = b.Paid - b.Owes
		out[id] = *b
	}
	return out
}

// share apportions amount to one pool member. Proportional splitting
// over an all-zero-salary pool degenerates to zero shares rather than
// propagating NaN.
func share(amount float64, p Person, pool []Person, totalSalary float64, mode DivisionMode) float64 {
	if mode == DivideProportional {
		if totalSalary == 0 {
			return 0
		}
		return amount * (p.Salary / totalSalary)
	}
	return amount / float64(len(pool))
}
