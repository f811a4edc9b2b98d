package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calebmoore/pennywise/internal/model"
)

func TestSummarizeDebts(t *testing.T) {
	debts := []*model.Debt{
		{ID: "1", Person: "Alice", Amount: 50, Direction: model.DirectionOwedToMe},
		{ID: "2", Person: "Alice", Amount: 20, Direction: model.DirectionIOwe},
		{ID: "3", Person: "Bob", Amount: 35, Direction: model.DirectionIOwe},
		{ID: "4", Person: "Carol", Amount: 100, Direction: model.DirectionOwedToMe, Settled: true},
	}

	summary := SummarizeDebts(debts)

	assert.Equal(t, 50.0, summary.TotalOwedToMe)
	assert.Equal(t, 55.0, summary.TotalIOwe)
	assert.Equal(t, -5.0, summary.Net)

	require.Len(t, summary.ByPerson, 2)
	alice, bob := summary.ByPerson[0], summary.ByPerson[1]

	assert.Equal(t, "Alice", alice.Person)
	assert.Equal(t, 50.0, alice.Owed)
	assert.Equal(t, 20.0, alice.Owing)
	assert.Equal(t, 30.0, alice.Net)
	assert.Len(t, alice.Items, 2)

	assert.Equal(t, "Bob", bob.Person)
	assert.Equal(t, -35.0, bob.Net)

	// Settled debts drop out of all totals but stay listed.
	require.Len(t, summary.Settled, 1)
	assert.Equal(t, "Carol", summary.Settled[0].Person)
}

func TestSummarizeDebtsSettlingMovesTotals(t *testing.T) {
	debt := &model.Debt{ID: "1", Person: "Alice", Amount: 50, Direction: model.DirectionOwedToMe}

	before := SummarizeDebts([]*model.Debt{debt})
	assert.Equal(t, 50.0, before.TotalOwedToMe)
	assert.Empty(t, before.Settled)

	debt.Settled = true
	after := SummarizeDebts([]*model.Debt{debt})
	assert.Zero(t, after.TotalOwedToMe)
	assert.Empty(t, after.ByPerson)
	assert.Len(t, after.Settled, 1)
}

func TestSummarizeDebtsEmpty(t *testing.T) {
	summary := SummarizeDebts(nil)
	assert.Zero(t, summary.Net)
	assert.Empty(t, summary.ByPerson)
	assert.Empty(t, summary.Settled)
}
