package app

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"habitlog/internal/domain"
)

// RecordStore is the sole owner of the canonical record collection. Every
// mutation is written through to the repository; writes are best effort and
// never roll back the in-memory change. For a running session the in-memory
// state is authoritative.
type RecordStore struct {
	repo    domain.CollectionRepository
	bus     *ChangeBus
	logger  *zap.Logger
	metrics *Metrics
	now     func() time.Time

	mu      sync.Mutex
	records []domain.Record
	lastID  int64
	editID  int64
	editing bool
}

// NewRecordStore creates a RecordStore backed by the given repository. bus
// and metrics may be nil.
func NewRecordStore(repo domain.CollectionRepository, bus *ChangeBus, logger *zap.Logger, metrics *Metrics) *RecordStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecordStore{repo: repo, bus: bus, logger: logger, metrics: metrics, now: time.Now}
}

// Load replaces the in-memory collection with the persisted one. Missing
// data, unreadable data, and I/O failures all degrade to an empty collection;
// the failure is logged and the session continues. No repair is attempted.
func (s *RecordStore) Load(ctx context.Context) {
	records, err := s.repo.Load(ctx)
	if err != nil {
		s.logger.Warn("load records failed, starting empty", zap.Error(err))
		records = nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = records
	s.lastID = 0
	for _, r := range records {
		if r.ID > s.lastID {
			s.lastID = r.ID
		}
	}
}

// Create parses the raw inputs, appends a new record, and persists. Parsing
// never rejects the operation; unparsable amounts become 0.
func (s *RecordStore) Create(ctx context.Context, water, exercise, calories string) domain.Record {
	s.mu.Lock()
	now := s.now()
	id := now.UnixMilli()
	if id <= s.lastID {
		// Clock has not advanced past the previous create; keep ids
		// unique and strictly increasing within the session.
		id = s.lastID + 1
	}
	s.lastID = id

	rec := domain.Record{
		ID:       id,
		Date:     domain.FormatDate(now),
		Water:    domain.ParseAmount(water),
		Exercise: domain.ParseAmount(exercise),
		Calories: domain.ParseAmount(calories),
	}
	s.records = append(s.records, rec)
	s.mu.Unlock()

	s.count("create")
	s.persist(ctx)
	return rec
}

// Update replaces the three numeric fields of the record with the given id.
// Id and date are immutable. An unknown id is a no-op reported as false.
func (s *RecordStore) Update(ctx context.Context, id int64, water, exercise, calories string) (domain.Record, bool) {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return domain.Record{}, false
	}
	s.records[idx].Water = domain.ParseAmount(water)
	s.records[idx].Exercise = domain.ParseAmount(exercise)
	s.records[idx].Calories = domain.ParseAmount(calories)
	rec := s.records[idx]
	s.mu.Unlock()

	s.count("update")
	s.persist(ctx)
	return rec, true
}

// Delete removes the record with the given id. An unknown id is a no-op
// reported as false.
func (s *RecordStore) Delete(ctx context.Context, id int64) bool {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return false
	}
	s.records = append(s.records[:idx], s.records[idx+1:]...)
	if s.editing && s.editID == id {
		s.editing = false
	}
	s.mu.Unlock()

	s.count("delete")
	s.persist(ctx)
	return true
}

// All returns a copy of the collection in insertion order. Display order is
// always recomputed by Project.
func (s *RecordStore) All() []domain.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Record, len(s.records))
	copy(out, s.records)
	return out
}

// BeginEdit points the edit cursor at the record with the given id and
// returns it. The cursor is left untouched when the id is unknown.
//
// The cursor methods serve form-style drivers that pre-fill a shared input
// form from an existing record and submit through Save. The HTTP adapter
// addresses records by id directly and does not need them.
func (s *RecordStore) BeginEdit(id int64) (domain.Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.indexOf(id)
	if idx < 0 {
		return domain.Record{}, false
	}
	s.editID = id
	s.editing = true
	return s.records[idx], true
}

// Editing returns the record currently under edit, if any.
func (s *RecordStore) Editing() (domain.Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.editing {
		return domain.Record{}, false
	}
	if idx := s.indexOf(s.editID); idx >= 0 {
		return s.records[idx], true
	}
	return domain.Record{}, false
}

// CancelEdit clears the edit cursor.
func (s *RecordStore) CancelEdit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editing = false
}

// Save is the form submit path: it updates the record under the edit cursor,
// or creates a new record when no edit is in progress. The cursor is cleared
// afterwards in both cases.
func (s *RecordStore) Save(ctx context.Context, water, exercise, calories string) domain.Record {
	s.mu.Lock()
	editing, editID := s.editing, s.editID
	s.editing = false
	s.mu.Unlock()

	if editing {
		if rec, ok := s.Update(ctx, editID, water, exercise, calories); ok {
			return rec
		}
	}
	return s.Create(ctx, water, exercise, calories)
}

// indexOf must be called with s.mu held.
func (s *RecordStore) indexOf(id int64) int {
	for i := range s.records {
		if s.records[i].ID == id {
			return i
		}
	}
	return -1
}

// persist writes a snapshot of the collection through to the repository and
// notifies subscribers. A failed write keeps the in-memory state and is
// logged as non-fatal.
func (s *RecordStore) persist(ctx context.Context) {
	s.mu.Lock()
	snapshot := make([]domain.Record, len(s.records))
	copy(snapshot, s.records)
	s.mu.Unlock()

	if err := s.repo.Save(ctx, snapshot); err != nil {
		if s.metrics != nil {
			s.metrics.PersistFailures.Inc()
		}
		s.logger.Warn("save records failed, in-memory state kept",
			zap.Error(err), zap.Int("records", len(snapshot)))
	}
	if s.bus != nil {
		s.bus.Notify()
	}
}

func (s *RecordStore) count(op string) {
	if s.metrics != nil {
		s.metrics.Mutations.WithLabelValues(op).Inc()
	}
}
