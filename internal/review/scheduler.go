// Package review exposes the scheduling service a caller integrates
// against: card lookup with create-on-miss, review recording, due listing,
// previews, history, and summary reporting.
package review

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/example/rote/internal/domain"
	"github.com/example/rote/internal/sm2"
	"github.com/example/rote/internal/storage"
)

// Scheduler owns the stores and algorithm parameters for one local actor.
// Construct it once and pass it by reference; it holds no global state.
type Scheduler struct {
	cards   *storage.CardStore
	history *storage.HistoryStore
	params  sm2.Params
}

// New builds a Scheduler over the given stores. The params are validated
// once here so every later review can trust them.
func New(cards *storage.CardStore, history *storage.HistoryStore, params sm2.Params) (*Scheduler, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("failed to build scheduler: %w", err)
	}
	return &Scheduler{cards: cards, history: history, params: params}, nil
}

// GetCard returns the schedule state for itemID, creating and persisting a
// default card when none exists. category and difficulty tag the card on
// creation only; an existing card keeps its stored tags.
func (s *Scheduler) GetCard(itemID, category, difficulty string) (domain.ReviewCard, error) {
	tag, err := domain.ParseDifficultyTag(difficulty)
	if err != nil {
		return domain.ReviewCard{}, err
	}
	return s.cards.Get(itemID, category, tag)
}

// AddToReviewQueue seeds a card for an item without rating it. It is the
// explicit spelling of GetCard's create-on-miss contract: the returned card
// has no reviews on record and is due immediately.
func (s *Scheduler) AddToReviewQueue(itemID, category, difficulty string) (domain.ReviewCard, error) {
	return s.GetCard(itemID, category, difficulty)
}

// RecordReview applies one rating to an item's card and persists the
// result. This is the only mutating entry point. The rating is checked
// before any store access, so an invalid rating never creates a card as a
// side effect.
func (s *Scheduler) RecordReview(itemID, category, difficulty string, rating domain.Rating) (domain.ReviewCard, error) {
	if itemID == "" {
		return domain.ReviewCard{}, domain.ErrEmptyItemID
	}
	if !rating.IsValid() {
		return domain.ReviewCard{}, fmt.Errorf("%w: %q", domain.ErrInvalidRating, rating)
	}

	card, err := s.GetCard(itemID, category, difficulty)
	if err != nil {
		return domain.ReviewCard{}, err
	}

	now := time.Now().UTC()
	updated, err := sm2.Apply(s.params, card, rating, now)
	if err != nil {
		return domain.ReviewCard{}, err
	}
	if err := s.cards.Put(updated); err != nil {
		return domain.ReviewCard{}, err
	}

	// History is reporting data, not card state. A failed append must not
	// fail a review that already persisted.
	record := domain.NewReviewRecord(updated, rating, now)
	if err := s.history.Append(record); err != nil {
		slog.Warn("Failed to append review record", "item_id", itemID, "error", err)
	}

	return updated, nil
}

// ListDueCards returns the cards due at or before asOf, earliest first,
// ties ordered by item id.
func (s *Scheduler) ListDueCards(asOf time.Time) ([]domain.ReviewCard, error) {
	return s.cards.ListDue(asOf)
}

// ListAllCards returns every card on record.
func (s *Scheduler) ListAllCards() ([]domain.ReviewCard, error) {
	return s.cards.ListAll()
}

// PreviewInterval reports the interval, in days, a rating would produce
// for the card, without recording anything. The value matches what
// RecordReview would persist for the same starting card.
func (s *Scheduler) PreviewInterval(card domain.ReviewCard, rating domain.Rating) (int, error) {
	return sm2.PreviewInterval(s.params, card, rating)
}

// History returns the review log for one item, oldest first.
func (s *Scheduler) History(itemID string) ([]domain.ReviewRecord, error) {
	return s.history.ForItem(itemID)
}

// FullHistory returns the review log across every item, oldest first.
func (s *Scheduler) FullHistory() ([]domain.ReviewRecord, error) {
	return s.history.All()
}
