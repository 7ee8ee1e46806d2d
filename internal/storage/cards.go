package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/example/rote/internal/domain"
)

const cardPrefix = "card/"

func cardKey(itemID string) string {
	return cardPrefix + itemID
}

// CardStore persists ReviewCard records in a KV, one record per item, under
// 'card/<itemID>'. Records are stored as JSON.
type CardStore struct {
	kv KV
}

// NewCardStore returns a card store backed by kv.
func NewCardStore(kv KV) *CardStore {
	return &CardStore{kv: kv}
}

// Get returns the card for itemID, synthesizing and persisting a fresh
// default card when none exists. A stored record that cannot be decoded is
// treated the same as a missing one: the schedule for that item restarts
// rather than blocking the session on a parse error.
func (s *CardStore) Get(itemID, category string, difficulty domain.DifficultyTag) (domain.ReviewCard, error) {
	if itemID == "" {
		return domain.ReviewCard{}, domain.ErrEmptyItemID
	}

	raw, err := s.kv.Read(cardKey(itemID))
	if err != nil && !errors.Is(err, ErrNotFound) {
		return domain.ReviewCard{}, fmt.Errorf("failed to read card %s: %w", itemID, err)
	}

	if err == nil {
		card, decodeErr := decodeCard(raw, itemID)
		if decodeErr == nil {
			return card, nil
		}
		slog.Warn("Discarding unreadable card record", "item_id", itemID, "error", decodeErr)
	}

	card := domain.NewReviewCard(itemID, category, difficulty, time.Now().UTC())
	if err := s.Put(card); err != nil {
		return domain.ReviewCard{}, err
	}
	return card, nil
}

// Put upserts the card record for card.ItemID.
func (s *CardStore) Put(card domain.ReviewCard) error {
	if card.ItemID == "" {
		return domain.ErrEmptyItemID
	}
	raw, err := json.Marshal(card)
	if err != nil {
		return fmt.Errorf("failed to encode card %s: %w", card.ItemID, err)
	}
	if err := s.kv.Write(cardKey(card.ItemID), raw); err != nil {
		return fmt.Errorf("failed to store card %s: %w", card.ItemID, err)
	}
	return nil
}

// ListAll returns every readable card. Unreadable records are skipped with
// a warning; they resynthesize on their next Get.
func (s *CardStore) ListAll() ([]domain.ReviewCard, error) {
	var cards []domain.ReviewCard
	err := s.kv.Scan(func(key string, value []byte) error {
		itemID, ok := itemIDFromCardKey(key)
		if !ok {
			return nil
		}
		card, err := decodeCard(value, itemID)
		if err != nil {
			slog.Warn("Skipping unreadable card record", "item_id", itemID, "error", err)
			return nil
		}
		cards = append(cards, card)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	return cards, nil
}

// ListDue returns the cards due at or before asOf, earliest due first.
// Cards with the same due time are ordered by item id.
func (s *CardStore) ListDue(asOf time.Time) ([]domain.ReviewCard, error) {
	all, err := s.ListAll()
	if err != nil {
		return nil, err
	}

	var due []domain.ReviewCard
	for _, card := range all {
		if card.IsDue(asOf) {
			due = append(due, card)
		}
	}

	sort.Slice(due, func(i, j int) bool {
		if !due[i].DueAt.Equal(due[j].DueAt) {
			return due[i].DueAt.Before(due[j].DueAt)
		}
		return due[i].ItemID < due[j].ItemID
	})
	return due, nil
}

// decodeCard parses a stored record and checks it is structurally sound and
// filed under the right key.
func decodeCard(raw []byte, itemID string) (domain.ReviewCard, error) {
	var card domain.ReviewCard
	if err := json.Unmarshal(raw, &card); err != nil {
		return domain.ReviewCard{}, fmt.Errorf("failed to decode card: %w", err)
	}
	if err := card.Validate(); err != nil {
		return domain.ReviewCard{}, err
	}
	if card.ItemID != itemID {
		return domain.ReviewCard{}, fmt.Errorf("card record for %s stored under key for %s", card.ItemID, itemID)
	}
	return card, nil
}

// itemIDFromCardKey extracts the item id from a 'card/' key, reporting
// whether key belongs to the card namespace at all.
func itemIDFromCardKey(key string) (string, bool) {
	if !strings.HasPrefix(key, cardPrefix) {
		return "", false
	}
	itemID := strings.TrimPrefix(key, cardPrefix)
	if itemID == "" {
		return "", false
	}
	return itemID, true
}
