package cart

import (
	"context"
	"fmt"
	"log"

	"github.com/repticare/storefront/internal/notify"
)

// Repository persists one serialized line sequence per cart owner.
type Repository interface {
	Load(ctx context.Context, ownerID string) ([]LineItem, error)
	Save(ctx context.Context, ownerID string, lines []LineItem) error
	Clear(ctx context.Context, ownerID string) error
}

// Store wraps the pure transitions with their side effects: it rehydrates the
// owner's cart from the repository, mirrors every mutation back, and forwards
// outcome signals to the notifier.
//
// A missing or corrupt persisted entry rehydrates as an empty cart; a failed
// write is logged and dropped. Neither ever reaches the caller.
type Store struct {
	ownerID  string
	repo     Repository
	notifier notify.Notifier
	logger   *log.Logger

	cart Cart
}

func NewStore(ownerID string, repo Repository, notifier notify.Notifier, logger *log.Logger) *Store {
	return &Store{
		ownerID:  ownerID,
		repo:     repo,
		notifier: notifier,
		logger:   logger,
	}
}

// Load rehydrates the cart. Failure falls back to an empty cart.
func (s *Store) Load(ctx context.Context) {
	lines, err := s.repo.Load(ctx, s.ownerID)
	if err != nil {
		s.logger.Printf("cart %s: load failed, starting empty: %v", s.ownerID, err)
		s.cart = Cart{}
		return
	}
	s.cart = Cart{Lines: lines}
}

func (s *Store) AddItem(ctx context.Context, p Product, quantity int) Outcome {
	next, out := AddItem(s.cart, p, quantity)
	s.commit(ctx, next, out)
	return out
}

func (s *Store) RemoveItem(ctx context.Context, productID string) Outcome {
	next, out := RemoveItem(s.cart, productID)
	s.commit(ctx, next, out)
	return out
}

func (s *Store) UpdateQuantity(ctx context.Context, productID string, quantity int) Outcome {
	next, out := UpdateQuantity(s.cart, productID, quantity)
	s.commit(ctx, next, out)
	return out
}

func (s *Store) Clear(ctx context.Context) Outcome {
	next, out := Clear(s.cart)
	s.commit(ctx, next, out)
	return out
}

// Cart returns the current in-memory view.
func (s *Store) Cart() Cart { return s.cart }

func (s *Store) ItemCount() int { return s.cart.ItemCount() }

func (s *Store) TotalPrice() float64 { return s.cart.TotalPrice() }

func (s *Store) commit(ctx context.Context, next Cart, out Outcome) {
	s.dispatch(out)

	if !out.Mutated() {
		return
	}
	s.cart = next

	if err := s.repo.Save(ctx, s.ownerID, s.cart.Lines); err != nil {
		s.logger.Printf("cart %s: persist failed, mutation kept in memory: %v", s.ownerID, err)
	}
}

func (s *Store) dispatch(out Outcome) {
	switch out.Kind {
	case OutcomeAdded, OutcomeUpdated:
		s.notifier.Notify(s.ownerID, notify.Message{
			Key:   out.ProductID,
			Level: notify.LevelSuccess,
			Text:  fmt.Sprintf("%s adicionado ao carrinho", out.Name),
		})
	case OutcomeRejectedStock:
		// Keyed by product so repeated attempts replace the warning
		// instead of stacking duplicates.
		s.notifier.Notify(s.ownerID, notify.Message{
			Key:   out.ProductID,
			Level: notify.LevelWarning,
			Text:  fmt.Sprintf("Estoque insuficiente de %s: apenas %d disponíveis", out.Name, out.Stock),
		})
	case OutcomeRemoved:
		s.notifier.Notify(s.ownerID, notify.Message{
			Key:   out.ProductID,
			Level: notify.LevelInfo,
			Text:  fmt.Sprintf("%s removido do carrinho", out.Name),
		})
	case OutcomeCleared:
		s.notifier.Notify(s.ownerID, notify.Message{
			Key:   "cart",
			Level: notify.LevelInfo,
			Text:  "Carrinho esvaziado",
		})
	}
}
