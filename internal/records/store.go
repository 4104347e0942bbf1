package records

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kupikrutcher/relationship-app/internal/model"
)

// Saver persists a full snapshot. Implementations must be idempotent.
type Saver interface {
	Save(ctx context.Context, snap model.Snapshot) error
}

// Persister is a Saver that can also load the last saved snapshot.
type Persister interface {
	Saver
	Load(ctx context.Context) (model.Snapshot, error)
}

const saveTimeout = 10 * time.Second

// Store owns the four record collections and the settings singleton.
//
// Mutations update memory immediately and schedule a best-effort background
// save; a failed save is logged and never rolls back memory. Unknown ids on
// update or delete are silently ignored.
type Store struct {
	mu          sync.RWMutex
	events      []model.Event
	wishes      []model.Wish
	reminders   []model.Reminder
	moodEntries []model.MoodEntry
	settings    model.Settings

	saver  Saver
	logger *slog.Logger
	now    func() time.Time
	newID  func() string

	pending   chan struct{}
	stop      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// Option configures a Store.
type Option func(*Store)

// WithSaver enables background saves after every mutation.
func WithSaver(s Saver) Option {
	return func(st *Store) { st.saver = s }
}

// WithLogger sets the logger used for save failures.
func WithLogger(l *slog.Logger) Option {
	return func(st *Store) { st.logger = l }
}

// WithClock overrides the wall clock used for insights, reminder status and
// wish fulfilment.
func WithClock(now func() time.Time) Option {
	return func(st *Store) { st.now = now }
}

// WithIDGenerator overrides record id generation.
func WithIDGenerator(gen func() string) Option {
	return func(st *Store) { st.newID = gen }
}

// New creates a Store seeded from snap.
func New(snap model.Snapshot, opts ...Option) *Store {
	s := &Store{
		logger: slog.Default(),
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.load(snap)

	if s.saver != nil {
		s.pending = make(chan struct{}, 1)
		s.stop = make(chan struct{})
		s.done = make(chan struct{})
		go s.saveLoop()
	}
	return s
}

// Open loads the last snapshot from p and returns a Store that saves back to
// it. A snapshot that cannot be loaded is treated as a first run.
func Open(ctx context.Context, p Persister, opts ...Option) *Store {
	s := New(model.DefaultSnapshot(), append([]Option{WithSaver(p)}, opts...)...)

	snap, err := p.Load(ctx)
	if err != nil {
		s.logger.Warn("load snapshot failed, starting empty", slog.String("error", err.Error()))
		return s
	}
	s.mu.Lock()
	s.load(snap)
	s.mu.Unlock()
	return s
}

func (s *Store) load(snap model.Snapshot) {
	s.events = cloneSlice(snap.Events, cloneEvent)
	s.wishes = cloneSlice(snap.Wishes, cloneWish)
	s.reminders = cloneSlice(snap.Reminders, cloneReminder)
	s.moodEntries = cloneSlice(snap.MoodEntries, cloneMood)
	s.settings = cloneSettings(snap.Settings)
}

// Replace swaps the entire state for snap and saves it.
func (s *Store) Replace(snap model.Snapshot) {
	s.mu.Lock()
	s.load(snap)
	s.mu.Unlock()
	s.scheduleSave()
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() model.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() model.Snapshot {
	return model.Snapshot{
		Events:      cloneSlice(s.events, cloneEvent),
		Wishes:      cloneSlice(s.wishes, cloneWish),
		Reminders:   cloneSlice(s.reminders, cloneReminder),
		MoodEntries: cloneSlice(s.moodEntries, cloneMood),
		Settings:    cloneSettings(s.settings),
	}
}

// Close flushes any pending save and stops the background saver.
func (s *Store) Close() {
	if s.saver == nil {
		return
	}
	s.closeOnce.Do(func() {
		close(s.stop)
		<-s.done
	})
}

func (s *Store) scheduleSave() {
	if s.saver == nil {
		return
	}
	select {
	case s.pending <- struct{}{}:
	default:
		// a save is already queued and will pick up this change
	}
}

func (s *Store) saveLoop() {
	defer close(s.done)
	for {
		select {
		case <-s.pending:
			s.flush()
		case <-s.stop:
			select {
			case <-s.pending:
				s.flush()
			default:
			}
			return
		}
	}
}

func (s *Store) flush() {
	snap := s.Snapshot()
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()
	if err := s.saver.Save(ctx, snap); err != nil {
		s.logger.Error("save snapshot failed", slog.String("error", err.Error()))
	}
}
