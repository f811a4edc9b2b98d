package session

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/calebmoore/pennywise/internal/model"
	"github.com/calebmoore/pennywise/internal/service"
	"github.com/calebmoore/pennywise/internal/store"
)

// Session is a point-in-time snapshot of everything one owner has.
// Loading a session is the moment recurring transactions catch up: if
// the owner has any data, due occurrences are materialized once and
// folded into the snapshot.
type Session struct {
	OwnerID       string                `json:"owner_id"`
	Transactions  []*model.Transaction  `json:"transactions"`
	Budgets       []*model.Budget       `json:"budgets"`
	Debts         []*model.Debt         `json:"debts"`
	Pots          []*model.SavingsPot   `json:"pots"`
	Contributions []*model.Contribution `json:"contributions"`

	// Generated counts how many recurring occurrences this load created.
	Generated int `json:"generated"`
}

// Loader assembles sessions from a store.
type Loader struct {
	store store.Store
	svc   *service.FinanceService
	log   *logrus.Entry
}

// NewLoader creates a session loader sharing the service's store.
func NewLoader(st store.Store, svc *service.FinanceService) *Loader {
	return &Loader{
		store: st,
		svc:   svc,
		log:   logrus.WithField("component", "session"),
	}
}

// Load fetches all five collections concurrently, then runs the
// recurring catch-up against the loaded transactions. A brand new
// owner with no data skips the catch-up entirely.
func (l *Loader) Load(ctx context.Context, ownerID string, now time.Time) (*Session, error) {
	s := &Session{OwnerID: ownerID}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		s.Transactions, err = l.store.ListTransactions(gctx, ownerID)
		return err
	})
	g.Go(func() (err error) {
		s.Budgets, err = l.store.ListBudgets(gctx, ownerID)
		return err
	})
	g.Go(func() (err error) {
		s.Debts, err = l.store.ListDebts(gctx, ownerID)
		return err
	})
	g.Go(func() (err error) {
		s.Pots, err = l.store.ListPots(gctx, ownerID)
		return err
	})
	g.Go(func() (err error) {
		s.Contributions, err = l.store.ListContributions(gctx, ownerID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	byPot := make(map[string][]*model.Contribution)
	for _, c := range s.Contributions {
		byPot[c.PotID] = append(byPot[c.PotID], c)
	}
	for _, pot := range s.Pots {
		pot.Contributions = byPot[pot.ID]
	}

	if l.hasData(s) {
		created, err := l.svc.ProcessRecurring(ctx, ownerID, now)
		if err != nil {
			// The snapshot is still usable; the next load retries.
			l.log.WithError(err).Warn("recurring catch-up failed")
		} else if created > 0 {
			s.Generated = created
			s.Transactions, err = l.store.ListTransactions(ctx, ownerID)
			if err != nil {
				return nil, fmt.Errorf("reload transactions: %w", err)
			}
		}
	}

	return s, nil
}

func (l *Loader) hasData(s *Session) bool {
	return len(s.Transactions) > 0 || len(s.Budgets) > 0 || len(s.Debts) > 0 ||
		len(s.Pots) > 0 || len(s.Contributions) > 0
}
