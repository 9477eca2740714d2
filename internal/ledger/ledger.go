// Package ledger keeps the saved receipts in memory and mirrors them into a
// single durable slot.
//
// Every mutation rewrites the whole slot value (a JSON array, newest receipt
// first). That is fine for a society office issuing a few hundred receipts a
// year and keeps the slot format identical to what earlier versions wrote.
package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"github.com/mmynk/receiptbook/internal/calculator"
	"github.com/mmynk/receiptbook/internal/metrics"
	"github.com/mmynk/receiptbook/internal/models"
	"github.com/mmynk/receiptbook/internal/storage"
)

// DefaultKey is the slot key the receipts are stored under.
const DefaultKey = "nilkanth_receipts_v1"

// FirstReceiptNo is suggested when the ledger is empty.
const FirstReceiptNo = 101

var ErrMissingID = errors.New("receipt id is required")

// UpsertKind tells whether Upsert inserted a new receipt or replaced one.
type UpsertKind int

const (
	Inserted UpsertKind = iota
	Updated
)

func (k UpsertKind) String() string {
	if k == Updated {
		return "updated"
	}
	return "inserted"
}

// Store is the ordered, id-unique collection of saved receipts.
// It is safe for concurrent use.
type Store struct {
	mu       sync.Mutex
	slot     storage.Slot
	key      string
	receipts []models.Receipt

	logger  *slog.Logger
	metrics *metrics.Metrics
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for diagnostics. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// WithMetrics records ledger activity in m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Store) { s.metrics = m }
}

// New creates an empty Store backed by slot under key.
// Call Load to read the receipts already in the slot.
func New(slot storage.Slot, key string, opts ...Option) *Store {
	if key == "" {
		key = DefaultKey
	}
	s := &Store{
		slot:   slot,
		key:    key,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the in-memory collection with the contents of the slot.
// It never fails: an unreadable or invalid slot leaves the store empty and
// is reported as LoadCorrupted.
func (s *Store) Load(ctx context.Context) LoadResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := s.read(ctx)
	if result.Outcome == LoadCorrupted {
		s.logger.Error("Failed to load receipts", "key", s.key, "error", result.Err)
	} else {
		s.logger.Info("Receipts loaded", "key", s.key, "outcome", result.Outcome, "count", len(result.Records))
	}

	s.receipts = result.Records
	s.metrics.LedgerLoaded(result.Outcome.String())
	s.metrics.SetStored(len(s.receipts))

	result.Records = cloneAll(s.receipts)
	return result
}

func (s *Store) read(ctx context.Context) LoadResult {
	data, err := s.slot.Get(ctx, s.key)
	if errors.Is(err, storage.ErrSlotNotFound) {
		return LoadResult{Outcome: LoadEmpty}
	}
	if err != nil {
		return LoadResult{Outcome: LoadCorrupted, Err: fmt.Errorf("failed to read slot: %w", err)}
	}

	var receipts []models.Receipt
	if err := json.Unmarshal(data, &receipts); err != nil {
		return LoadResult{Outcome: LoadCorrupted, Err: fmt.Errorf("failed to decode receipts: %w", err)}
	}

	receipts = s.dedupe(receipts)
	if len(receipts) == 0 {
		return LoadResult{Outcome: LoadEmpty}
	}
	return LoadResult{Outcome: LoadRecords, Records: receipts}
}

// dedupe keeps the first receipt for each id.
func (s *Store) dedupe(receipts []models.Receipt) []models.Receipt {
	seen := make(map[string]bool, len(receipts))
	kept := receipts[:0]
	for _, r := range receipts {
		if seen[r.ID] {
			s.logger.Warn("Dropping duplicate receipt id from slot", "id", r.ID, "receipt_no", r.ReceiptNo)
			continue
		}
		seen[r.ID] = true
		kept = append(kept, r)
	}
	return kept
}

// All returns copies of every receipt, newest first.
func (s *Store) All() []models.Receipt {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneAll(s.receipts)
}

// Len returns the number of saved receipts.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.receipts)
}

// Get returns a copy of the receipt with the given id.
func (s *Store) Get(id string) (models.Receipt, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(id); i >= 0 {
		return s.receipts[i].Clone(), true
	}
	return models.Receipt{}, false
}

// Upsert replaces the receipt with the same id in place, or inserts it at
// the front. The whole collection is written to the slot before the
// in-memory state changes, so a failed write leaves the store as it was.
func (s *Store) Upsert(ctx context.Context, r models.Receipt) (UpsertKind, error) {
	if r.ID == "" {
		return Inserted, ErrMissingID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	kind := Inserted
	var next []models.Receipt
	if i := s.indexOf(r.ID); i >= 0 {
		kind = Updated
		next = make([]models.Receipt, len(s.receipts))
		copy(next, s.receipts)
		next[i] = r.Clone()
	} else {
		next = make([]models.Receipt, 0, len(s.receipts)+1)
		next = append(next, r.Clone())
		next = append(next, s.receipts...)
	}

	if err := s.persist(ctx, next); err != nil {
		return kind, err
	}
	s.receipts = next

	s.logger.Info("Receipt saved", "id", r.ID, "receipt_no", r.ReceiptNo, "kind", kind)
	s.metrics.ReceiptSaved(kind.String())
	s.metrics.SetStored(len(s.receipts))
	return kind, nil
}

// Delete removes the receipt with the given id and persists the result.
// Deleting an unknown id is a no-op and does not touch the slot.
func (s *Store) Delete(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		s.logger.Debug("Delete of unknown receipt ignored", "id", id)
		return false, nil
	}

	next := make([]models.Receipt, 0, len(s.receipts)-1)
	next = append(next, s.receipts[:i]...)
	next = append(next, s.receipts[i+1:]...)

	if err := s.persist(ctx, next); err != nil {
		return false, err
	}
	s.receipts = next

	s.logger.Info("Receipt deleted", "id", id)
	s.metrics.ReceiptDeleted()
	s.metrics.SetStored(len(s.receipts))
	return true, nil
}

// NextSuggestedReceiptNo returns one more than the largest numeric receipt
// number, or FirstReceiptNo when the ledger is empty. Receipt numbers that
// do not start with digits count as 0.
func (s *Store) NextSuggestedReceiptNo() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.receipts) == 0 {
		return FirstReceiptNo
	}
	maxNo := leadingInt(s.receipts[0].ReceiptNo)
	for _, r := range s.receipts[1:] {
		maxNo = max(maxNo, leadingInt(r.ReceiptNo))
	}
	if maxNo == math.MaxInt {
		return maxNo
	}
	return maxNo + 1
}

// Filter returns copies of the receipts matching every non-empty field of q,
// in ledger order.
func (s *Store) Filter(q Query) []models.Receipt {
	s.mu.Lock()
	defer s.mu.Unlock()

	q = q.normalized()
	var matches []models.Receipt
	for _, r := range s.receipts {
		if q.matches(r) {
			matches = append(matches, r.Clone())
		}
	}
	return matches
}

// Stats summarises the saved receipts.
func (s *Store) Stats() calculator.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return calculator.CalculateStats(s.receipts)
}

func (s *Store) persist(ctx context.Context, receipts []models.Receipt) error {
	if receipts == nil {
		receipts = []models.Receipt{}
	}
	data, err := json.Marshal(receipts)
	if err != nil {
		return fmt.Errorf("failed to encode receipts: %w", err)
	}
	if err := s.slot.Put(ctx, s.key, data); err != nil {
		return fmt.Errorf("failed to persist receipts: %w", err)
	}
	return nil
}

func (s *Store) indexOf(id string) int {
	for i := range s.receipts {
		if s.receipts[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneAll(receipts []models.Receipt) []models.Receipt {
	out := make([]models.Receipt, len(receipts))
	for i, r := range receipts {
		out[i] = r.Clone()
	}
	return out
}

// leadingInt parses the integer prefix of s the way a lenient form field
// would: leading spaces and one sign are allowed, parsing stops at the first
// non-digit, and no digits at all yields 0. Prefixes too long for an int
// saturate at math.MaxInt or math.MinInt.
func leadingInt(s string) int {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)

	sign := ""
	if s != "" && (s[0] == '-' || s[0] == '+') {
		sign, s = s[:1], s[1:]
	}

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0
	}

	n, err := strconv.Atoi(sign + s[:end])
	if errors.Is(err, strconv.ErrRange) {
		// Atoi already saturates at the int bounds.
		return n
	}
	if err != nil {
		return 0
	}
	return n
}
