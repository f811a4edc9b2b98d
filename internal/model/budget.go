package model

// BudgetPeriod is the window a spending limit applies to. Only monthly
// budgets exist today; the field is stored so other periods can be
// added without a migration.
type BudgetPeriod string

const PeriodMonthly BudgetPeriod = "monthly"

// Budget caps spending for one category. At most one budget per
// category exists per owner.
type Budget struct {
	ID       string       `firestore:"-" json:"id"`
	OwnerID  string       `firestore:"user_id" json:"user_id"`
	Category Category     `firestore:"category" json:"category"`
	Limit    float64      `firestore:"limit" json:"limit"`
	Period   BudgetPeriod `firestore:"period" json:"period"`
}
