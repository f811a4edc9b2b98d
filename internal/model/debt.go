package model

import "time"

// DebtDirection says which way the money flows.
type DebtDirection string

const (
	DirectionOwedToMe DebtDirection = "owed_to_me"
	DirectionIOwe     DebtDirection = "i_owe"
)

// Debt is a single IOU with a counterparty. Person is free text and
// doubles as the grouping key when netting balances.
type Debt struct {
	ID        string        `firestore:"-" json:"id"`
	OwnerID   string        `firestore:"user_id" json:"user_id"`
	Person    string        `firestore:"person" json:"person"`
	Amount    float64       `firestore:"amount" json:"amount"`
	Direction DebtDirection `firestore:"direction" json:"direction"`
	Settled   bool          `firestore:"settled" json:"settled"`
	Date      time.Time     `firestore:"date" json:"date"`
	Note      string        `firestore:"note" json:"note"`
}
