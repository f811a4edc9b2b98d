package store

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/calebmoore/pennywise/internal/model"
)

// Firestore collection names. These match the documents the web client
// reads, so both frontends can share one project.
const (
	colTransactions  = "transactions"
	colBudgets       = "budgets"
	colDebts         = "debts"
	colPots          = "savings_pots"
	colContributions = "savings_contributions"
)

// FirestoreStore implements Store using Firestore.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore creates a Firestore-backed store.
func NewFirestoreStore(client *firestore.Client) Store {
	return &FirestoreStore{client: client}
}

// ownedDoc fetches a document and verifies it belongs to ownerID via
// its user_id field. Ownership is enforced here, not in the service.
func (s *FirestoreStore) ownedDoc(ctx context.Context, collection, ownerID, docID string) (*firestore.DocumentSnapshot, error) {
	doc, err := s.client.Collection(collection).Doc(docID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get %s/%s: %w", collection, docID, err)
	}
	owner, _ := doc.Data()["user_id"].(string)
	if owner != ownerID {
		return nil, ErrNotFound
	}
	return doc, nil
}

// Transaction operations

func (s *FirestoreStore) CreateTransaction(ctx context.Context, tx *model.Transaction) error {
	if tx.ID == "" {
		tx.ID = uuid.New().String()
	}
	if _, err := s.client.Collection(colTransactions).Doc(tx.ID).Set(ctx, tx); err != nil {
		return fmt.Errorf("create transaction: %w", err)
	}
	return nil
}

// BatchCreateTransactions writes all transactions in one atomic batch.
// Either every document is committed or none is.
func (s *FirestoreStore) BatchCreateTransactions(ctx context.Context, txs []*model.Transaction) (int, error) {
	if len(txs) == 0 {
		return 0, nil
	}
	batch := s.client.Batch()
	for _, tx := range txs {
		if tx.ID == "" {
			tx.ID = uuid.New().String()
		}
		batch.Set(s.client.Collection(colTransactions).Doc(tx.ID), tx)
	}
	if _, err := batch.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit transaction batch: %w", err)
	}
	return len(txs), nil
}

func (s *FirestoreStore) UpdateTransaction(ctx context.Context, tx *model.Transaction) error {
	if _, err := s.ownedDoc(ctx, colTransactions, tx.OwnerID, tx.ID); err != nil {
		return err
	}
	if _, err := s.client.Collection(colTransactions).Doc(tx.ID).Set(ctx, tx); err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}
	return nil
}

func (s *FirestoreStore) DeleteTransaction(ctx context.Context, ownerID, txID string) error {
	if _, err := s.ownedDoc(ctx, colTransactions, ownerID, txID); err != nil {
		return err
	}
	if _, err := s.client.Collection(colTransactions).Doc(txID).Delete(ctx); err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	return nil
}

func (s *FirestoreStore) ListTransactions(ctx context.Context, ownerID string) ([]*model.Transaction, error) {
	docs, err := s.client.Collection(colTransactions).
		Where("user_id", "==", ownerID).
		OrderBy("date", firestore.Desc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	result := make([]*model.Transaction, 0, len(docs))
	for _, doc := range docs {
		var tx model.Transaction
		if err := doc.DataTo(&tx); err != nil {
			return nil, fmt.Errorf("parse transaction %s: %w", doc.Ref.ID, err)
		}
		tx.ID = doc.Ref.ID
		result = append(result, &tx)
	}
	return result, nil
}

// Budget operations

func (s *FirestoreStore) CreateBudget(ctx context.Context, budget *model.Budget) error {
	if budget.ID == "" {
		budget.ID = uuid.New().String()
	}
	if _, err := s.client.Collection(colBudgets).Doc(budget.ID).Set(ctx, budget); err != nil {
		return fmt.Errorf("create budget: %w", err)
	}
	return nil
}

func (s *FirestoreStore) DeleteBudget(ctx context.Context, ownerID, budgetID string) error {
	if _, err := s.ownedDoc(ctx, colBudgets, ownerID, budgetID); err != nil {
		return err
	}
	if _, err := s.client.Collection(colBudgets).Doc(budgetID).Delete(ctx); err != nil {
		return fmt.Errorf("delete budget: %w", err)
	}
	return nil
}

func (s *FirestoreStore) ListBudgets(ctx context.Context, ownerID string) ([]*model.Budget, error) {
	docs, err := s.client.Collection(colBudgets).
		Where("user_id", "==", ownerID).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}

	result := make([]*model.Budget, 0, len(docs))
	for _, doc := range docs {
		var b model.Budget
		if err := doc.DataTo(&b); err != nil {
			return nil, fmt.Errorf("parse budget %s: %w", doc.Ref.ID, err)
		}
		b.ID = doc.Ref.ID
		result = append(result, &b)
	}
	return result, nil
}

// Debt operations

func (s *FirestoreStore) CreateDebt(ctx context.Context, debt *model.Debt) error {
	if debt.ID == "" {
		debt.ID = uuid.New().String()
	}
	if _, err := s.client.Collection(colDebts).Doc(debt.ID).Set(ctx, debt); err != nil {
		return fmt.Errorf("create debt: %w", err)
	}
	return nil
}

func (s *FirestoreStore) GetDebt(ctx context.Context, ownerID, debtID string) (*model.Debt, error) {
	doc, err := s.ownedDoc(ctx, colDebts, ownerID, debtID)
	if err != nil {
		return nil, err
	}
	var d model.Debt
	if err := doc.DataTo(&d); err != nil {
		return nil, fmt.Errorf("parse debt %s: %w", debtID, err)
	}
	d.ID = doc.Ref.ID
	return &d, nil
}

func (s *FirestoreStore) UpdateDebt(ctx context.Context, debt *model.Debt) error {
	if _, err := s.ownedDoc(ctx, colDebts, debt.OwnerID, debt.ID); err != nil {
		return err
	}
	if _, err := s.client.Collection(colDebts).Doc(debt.ID).Set(ctx, debt); err != nil {
		return fmt.Errorf("update debt: %w", err)
	}
	return nil
}

func (s *FirestoreStore) DeleteDebt(ctx context.Context, ownerID, debtID string) error {
	if _, err := s.ownedDoc(ctx, colDebts, ownerID, debtID); err != nil {
		return err
	}
	if _, err := s.client.Collection(colDebts).Doc(debtID).Delete(ctx); err != nil {
		return fmt.Errorf("delete debt: %w", err)
	}
	return nil
}

func (s *FirestoreStore) ListDebts(ctx context.Context, ownerID string) ([]*model.Debt, error) {
	docs, err := s.client.Collection(colDebts).
		Where("user_id", "==", ownerID).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("list debts: %w", err)
	}

	result := make([]*model.Debt, 0, len(docs))
	for _, doc := range docs {
		var d model.Debt
		if err := doc.DataTo(&d); err != nil {
			return nil, fmt.Errorf("parse debt %s: %w", doc.Ref.ID, err)
		}
		d.ID = doc.Ref.ID
		result = append(result, &d)
	}
	return result, nil
}

// Savings pot operations

func (s *FirestoreStore) CreatePot(ctx context.Context, pot *model.SavingsPot) error {
	if pot.ID == "" {
		pot.ID = uuid.New().String()
	}
	if _, err := s.client.Collection(colPots).Doc(pot.ID).Set(ctx, pot); err != nil {
		return fmt.Errorf("create savings pot: %w", err)
	}
	return nil
}

func (s *FirestoreStore) UpdatePot(ctx context.Context, pot *model.SavingsPot) error {
	if _, err := s.ownedDoc(ctx, colPots, pot.OwnerID, pot.ID); err != nil {
		return err
	}
	if _, err := s.client.Collection(colPots).Doc(pot.ID).Set(ctx, pot); err != nil {
		return fmt.Errorf("update savings pot: %w", err)
	}
	return nil
}

// DeletePot removes the pot and all of its contributions.
func (s *FirestoreStore) DeletePot(ctx context.Context, ownerID, potID string) error {
	if _, err := s.ownedDoc(ctx, colPots, ownerID, potID); err != nil {
		return err
	}

	contribDocs, err := s.client.Collection(colContributions).
		Where("pot_id", "==", potID).
		Documents(ctx).GetAll()
	if err != nil {
		return fmt.Errorf("list pot contributions: %w", err)
	}

	batch := s.client.Batch()
	batch.Delete(s.client.Collection(colPots).Doc(potID))
	for _, doc := range contribDocs {
		batch.Delete(doc.Ref)
	}
	if _, err := batch.Commit(ctx); err != nil {
		return fmt.Errorf("delete savings pot: %w", err)
	}
	return nil
}

func (s *FirestoreStore) ListPots(ctx context.Context, ownerID string) ([]*model.SavingsPot, error) {
	docs, err := s.client.Collection(colPots).
		Where("user_id", "==", ownerID).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("list savings pots: %w", err)
	}

	result := make([]*model.SavingsPot, 0, len(docs))
	for _, doc := range docs {
		var p model.SavingsPot
		if err := doc.DataTo(&p); err != nil {
			return nil, fmt.Errorf("parse savings pot %s: %w", doc.Ref.ID, err)
		}
		p.ID = doc.Ref.ID
		result = append(result, &p)
	}
	return result, nil
}

// Contribution operations

func (s *FirestoreStore) CreateContribution(ctx context.Context, contribution *model.Contribution) error {
	if contribution.ID == "" {
		contribution.ID = uuid.New().String()
	}
	if _, err := s.client.Collection(colContributions).Doc(contribution.ID).Set(ctx, contribution); err != nil {
		return fmt.Errorf("create contribution: %w", err)
	}
	return nil
}

func (s *FirestoreStore) DeleteContribution(ctx context.Context, ownerID, contributionID string) error {
	if _, err := s.ownedDoc(ctx, colContributions, ownerID, contributionID); err != nil {
		return err
	}
	if _, err := s.client.Collection(colContributions).Doc(contributionID).Delete(ctx); err != nil {
		return fmt.Errorf("delete contribution: %w", err)
	}
	return nil
}

func (s *FirestoreStore) ListContributions(ctx context.Context, ownerID string) ([]*model.Contribution, error) {
	docs, err := s.client.Collection(colContributions).
		Where("user_id", "==", ownerID).
		OrderBy("date", firestore.Asc).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, fmt.Errorf("list contributions: %w", err)
	}

	result := make([]*model.Contribution, 0, len(docs))
	for _, doc := range docs {
		var c model.Contribution
		if err := doc.DataTo(&c); err != nil {
			return nil, fmt.Errorf("parse contribution %s: %w", doc.Ref.ID, err)
		}
		c.ID = doc.Ref.ID
		result = append(result, &c)
	}
	return result, nil
}

// DeleteOwnerData removes every owner-scoped document, one batch per
// collection.
func (s *FirestoreStore) DeleteOwnerData(ctx context.Context, ownerID string) error {
	collections := []string{colTransactions, colBudgets, colDebts, colPots, colContributions}
	for _, collection := range collections {
		docs, err := s.client.Collection(collection).
			Where("user_id", "==", ownerID).
			Documents(ctx).GetAll()
		if err != nil {
			return fmt.Errorf("list %s for reset: %w", collection, err)
		}
		if len(docs) == 0 {
			continue
		}
		batch := s.client.Batch()
		for _, doc := range docs {
			batch.Delete(doc.Ref)
		}
		if _, err := batch.Commit(ctx); err != nil {
			return fmt.Errorf("reset %s: %w", collection, err)
		}
	}
	return nil
}
