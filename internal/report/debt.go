package report

import (
	"sort"

	"github.com/calebmoore/pennywise/internal/model"
)

// PersonBalance nets one counterparty's unsettled debts. Net is
// positive when they owe the owner on balance.
type PersonBalance struct {
	Person string        `json:"person"`
	Owed   float64       `json:"owed"`
	Owing  float64       `json:"owing"`
	Net    float64       `json:"net"`
	Items  []*model.Debt `json:"items"`
}

// DebtSummary nets all unsettled debts globally and per person.
// Settled debts drop out of every total the moment they are marked.
type DebtSummary struct {
	TotalOwedToMe float64         `json:"total_owed_to_me"`
	TotalIOwe     float64         `json:"total_i_owe"`
	Net           float64         `json:"net"`
	ByPerson      []PersonBalance `json:"by_person"`
	Settled       []*model.Debt   `json:"settled"`
}

// SummarizeDebts partitions debts by settled state and nets the active
// ones by person.
func SummarizeDebts(debts []*model.Debt) DebtSummary {
	var summary DebtSummary

	byPerson := make(map[string]*PersonBalance)
	for _, d := range debts {
		if d.Settled {
			summary.Settled = append(summary.Settled, d)
			continue
		}

		pb, ok := byPerson[d.Person]
		if !ok {
			pb = &PersonBalance{Person: d.Person}
			byPerson[d.Person] = pb
		}
		pb.Items = append(pb.Items, d)

		if d.Direction == model.DirectionOwedToMe {
			pb.Owed += d.Amount
			summary.TotalOwedToMe += d.Amount
		} else {
			pb.Owing += d.Amount
			summary.TotalIOwe += d.Amount
		}
	}
	summary.Net = summary.TotalOwedToMe - summary.TotalIOwe

	summary.ByPerson = make([]PersonBalance, 0, len(byPerson))
	for _, pb := range byPerson {
		pb.Net = pb.Owed - pb.Owing
		summary.ByPerson = append(summary.ByPerson, *pb)
	}
	sort.Slice(summary.ByPerson, func(i, j int) bool {
		return summary.ByPerson[i].Person < summary.ByPerson[j].Person
	})
	return summary
}
