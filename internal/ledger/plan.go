// Package ledger owns every write to the shared running balances:
// employee budgets, custody budgets and remainders, and supplier balances.
//
// Record services describe what a mutation contributes to those balances
// and hand the resulting Plan to a Poster bound to their transaction.
package ledger

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Account string

const (
	EmployeeBudget   Account = "employee.budget"
	CustodyBudget    Account = "custody.budget"
	CustodyRemaining Account = "custody.remaining"
	SupplierBalance  Account = "supplier.balance"
)

type column struct {
	table string
	name  string
}

var columns = map[Account]column{
	EmployeeBudget:   {table: "employees", name: "budget"},
	CustodyBudget:    {table: "custodies", name: "budget"},
	CustodyRemaining: {table: "custodies", name: "remaining"},
	SupplierBalance:  {table: "suppliers", name: "balance"},
}

// Delta is a signed change to one balance. A guarded delta is rejected when
// it would leave the balance below zero.
type Delta struct {
	Account Account
	OwnerID uuid.UUID
	Amount  decimal.Decimal
	Guard   bool
}

func (d Delta) negate() Delta {
	d.Amount = d.Amount.Neg()
	return d
}

type Key struct {
	Account Account
	OwnerID uuid.UUID
}

// Source tags the record that produced an expense row.
type Source string

const (
	SourceManual          Source = "manual"
	SourceAdvance         Source = "advance"
	SourceBonus           Source = "bonus"
	SourcePayroll         Source = "payroll"
	SourceSupplierPayment Source = "supplier_payment"
	SourceMaintenance     Source = "maintenance"
)

// Charge is a one-way debit against a custody, recorded as an expense row.
type Charge struct {
	CustodyID   uuid.UUID
	ProjectID   *uuid.UUID
	Amount      decimal.Decimal
	Description string
	Date        time.Time
	Source      Source
	SourceID    uuid.UUID
}

type Plan struct {
	Reason     string
	SourceType string
	SourceID   uuid.UUID
	Deltas     []Delta
	Charges    []Charge
}

func (p Plan) IsEmpty() bool {
	return len(p.Deltas) == 0 && len(p.Charges) == 0
}

// From records which record produced the plan.
func (p Plan) From(sourceType string, sourceID uuid.UUID) Plan {
	p.SourceType = sourceType
	p.SourceID = sourceID
	return p
}

// WithCharge adds a custody debit and the expense row that documents it.
func (p Plan) WithCharge(c Charge) Plan {
	deltas := make([]Delta, 0, len(p.Deltas)+1)
	deltas = append(deltas, p.Deltas...)
	deltas = append(deltas, Delta{
		Account: CustodyRemaining,
		OwnerID: c.CustodyID,
		Amount:  c.Amount.Neg(),
		Guard:   true,
	})
	p.Deltas = net(deltas)
	p.Charges = append(append([]Charge{}, p.Charges...), c)
	return p
}

// Create applies a record's contribution.
func Create(reason string, next []Delta) Plan {
	return Plan{Reason: reason, Deltas: net(next)}
}

// Reverse withdraws a record's stored contribution.
func Reverse(reason string, prev []Delta) Plan {
	out := make([]Delta, 0, len(prev))
	for _, d := range prev {
		out = append(out, d.negate())
	}
	return Plan{Reason: reason, Deltas: net(out)}
}

// Diff replaces the stored contribution prev with next.
func Diff(reason string, prev, next []Delta) Plan {
	out := make([]Delta, 0, len(prev)+len(next))
	out = append(out, next...)
	for _, d := range prev {
		out = append(out, d.negate())
	}
	return Plan{Reason: reason, Deltas: net(out)}
}

// net merges deltas per balance, drops zeros and returns them in lock order.
func net(deltas []Delta) []Delta {
	merged := make(map[Key]Delta, len(deltas))
	for _, d := range deltas {
		k := Key{Account: d.Account, OwnerID: d.OwnerID}
		cur, ok := merged[k]
		if !ok {
			merged[k] = d
			continue
		}
		cur.Amount = cur.Amount.Add(d.Amount)
		cur.Guard = cur.Guard || d.Guard
		merged[k] = cur
	}

	out := make([]Delta, 0, len(merged))
	for _, d := range merged {
		if d.Amount.IsZero() {
			continue
		}
		out = append(out, d)
	}
	sortDeltas(out)
	return out
}

func sortDeltas(deltas []Delta) {
	sort.Slice(deltas, func(i, j int) bool {
		if deltas[i].Account != deltas[j].Account {
			return deltas[i].Account < deltas[j].Account
		}
		return deltas[i].OwnerID.String() < deltas[j].OwnerID.String()
	})
}

type Result struct {
	Balances  map[Key]decimal.Decimal
	ChargeIDs []uuid.UUID
}

// Balance returns the post-apply value of a balance touched by the plan.
func (r Result) Balance(account Account, ownerID uuid.UUID) (decimal.Decimal, bool) {
	v, ok := r.Balances[Key{Account: account, OwnerID: ownerID}]
	return v, ok
}
