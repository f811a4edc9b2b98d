package model

import "time"

// TransactionType distinguishes money coming in from money going out.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// PaymentApps lists the payment channels offered by the entry form.
// Transactions may also carry free-text channels (e.g. "CSV Import").
var PaymentApps = []string{"Revolut", "BofA", "CashApp", "Cash", "Other"}

// Transaction is a single income or expense entry. Amount is always
// positive; the sign is derived from Type when aggregating.
type Transaction struct {
	ID         string          `firestore:"-" json:"id"`
	OwnerID    string          `firestore:"user_id" json:"user_id"`
	Amount     float64         `firestore:"amount" json:"amount"`
	Type       TransactionType `firestore:"type" json:"type"`
	Category   Category        `firestore:"category" json:"category"`
	Date       time.Time       `firestore:"date" json:"date"`
	PaymentApp string          `firestore:"app" json:"app"`
	Note       string          `firestore:"note" json:"note"`
	Recurring  bool            `firestore:"recurring" json:"recurring"`
}

// Signed returns the amount with its sign applied: positive for income,
// negative for expense.
func (t *Transaction) Signed() float64 {
	if t.Type == TypeExpense {
		return -t.Amount
	}
	return t.Amount
}

// MonthKey returns the YYYY-MM key a date belongs to.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

// Day returns t truncated to midnight UTC. Transaction dates are civil
// dates with no time component.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// LastDayOfMonth returns the last calendar day of the given year/month.
func LastDayOfMonth(year int, month time.Month) time.Time {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
}
