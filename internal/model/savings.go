package model

import "time"

// SavingsPot is a named savings goal. Contributions are stored in their
// own collection and attached when pots are listed.
type SavingsPot struct {
	ID            string  `firestore:"-" json:"id"`
	OwnerID       string  `firestore:"user_id" json:"user_id"`
	Name          string  `firestore:"name" json:"name"`
	Icon          string  `firestore:"icon" json:"icon"`
	Color         string  `firestore:"color" json:"color"`
	Target        float64 `firestore:"target" json:"target"`
	MonthlyAmount float64 `firestore:"monthly_amount" json:"monthly_amount"`

	Contributions []*Contribution `firestore:"-" json:"contributions"`
}

// Contribution is one deposit into a savings pot.
type Contribution struct {
	ID      string    `firestore:"-" json:"id"`
	PotID   string    `firestore:"pot_id" json:"pot_id"`
	OwnerID string    `firestore:"user_id" json:"user_id"`
	Amount  float64   `firestore:"amount" json:"amount"`
	Date    time.Time `firestore:"date" json:"date"`
	Note    string    `firestore:"note" json:"note"`
}

// Saved sums every contribution in the pot.
func (p *SavingsPot) Saved() float64 {
	var total float64
	for _, c := range p.Contributions {
		total += c.Amount
	}
	return total
}
