package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/example/rote/internal/domain"
)

const historyPrefix = "history/"

func historyKey(record domain.ReviewRecord) string {
	return historyPrefix + record.ItemID + "/" + record.ID.String()
}

// HistoryStore persists the append-only review log in a KV, one record per
// review, under 'history/<itemID>/<uuid>'.
type HistoryStore struct {
	kv KV
}

// NewHistoryStore returns a history store backed by kv.
func NewHistoryStore(kv KV) *HistoryStore {
	return &HistoryStore{kv: kv}
}

// Append stores one review record.
func (s *HistoryStore) Append(record domain.ReviewRecord) error {
	if record.ItemID == "" {
		return domain.ErrEmptyItemID
	}
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode review record for %s: %w", record.ItemID, err)
	}
	if err := s.kv.Write(historyKey(record), raw); err != nil {
		return fmt.Errorf("failed to store review record for %s: %w", record.ItemID, err)
	}
	return nil
}

// ForItem returns the review log for one item, oldest first. Unreadable
// records are skipped with a warning.
func (s *HistoryStore) ForItem(itemID string) ([]domain.ReviewRecord, error) {
	if itemID == "" {
		return nil, domain.ErrEmptyItemID
	}

	prefix := historyPrefix + itemID + "/"
	var records []domain.ReviewRecord
	err := s.kv.Scan(func(key string, value []byte) error {
		if !strings.HasPrefix(key, prefix) {
			return nil
		}
		var record domain.ReviewRecord
		if err := json.Unmarshal(value, &record); err != nil {
			slog.Warn("Skipping unreadable review record", "item_id", itemID, "key", key, "error", err)
			return nil
		}
		// Keys for an id like 'a/b' also carry the 'history/a/' prefix,
		// so the stored id decides ownership.
		if record.ItemID != itemID {
			return nil
		}
		records = append(records, record)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list review records for %s: %w", itemID, err)
	}

	sortRecords(records)
	return records, nil
}

// All returns the entire review log across items, oldest first.
func (s *HistoryStore) All() ([]domain.ReviewRecord, error) {
	var records []domain.ReviewRecord
	err := s.kv.Scan(func(key string, value []byte) error {
		if !strings.HasPrefix(key, historyPrefix) {
			return nil
		}
		var record domain.ReviewRecord
		if err := json.Unmarshal(value, &record); err != nil {
			slog.Warn("Skipping unreadable review record", "key", key, "error", err)
			return nil
		}
		records = append(records, record)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list review records: %w", err)
	}

	sortRecords(records)
	return records, nil
}

// sortRecords orders by review time, then id for a stable order when two
// reviews share a timestamp.
func sortRecords(records []domain.ReviewRecord) {
	sort.Slice(records, func(i, j int) bool {
		if !records[i].ReviewedAt.Equal(records[j].ReviewedAt) {
			return records[i].ReviewedAt.Before(records[j].ReviewedAt)
		}
		return records[i].ID.String() < records[j].ID.String()
	})
}
