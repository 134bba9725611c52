package studytracker

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrNotFound is returned by stores for keys they do not hold
var ErrNotFound = errors.New("not found")

// Repository reads and writes day-scoped sessions. Writes are full overwrites.
type Repository interface {
	Load(dateKey string) (Session, bool)
	SaveTasks(dateKey string, tasks []Task) error
	SaveTime(dateKey string, seconds int) error
}

// Store is a durable string key-value store, the local storage of the tracker
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
}

// KVRepository lays sessions out over a Store as two entries per day: the task list
// as a JSON array and the total study seconds as a decimal string.
type KVRepository struct {
	store  Store
	logger *slog.Logger
}

// NewKVRepository wraps a store. A nil logger discards.
func NewKVRepository(store Store, logger *slog.Logger) *KVRepository {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &KVRepository{store: store, logger: logger}
}

// Load returns the session stored for dateKey. Anything absent or unreadable counts
// as no prior session; found reports whether any valid entry was present.
func (r *KVRepository) Load(dateKey string) (Session, bool) {
	session := Session{DateKey: dateKey, Tasks: []Task{}}
	found := false

	if raw, ok := r.get(TasksKey(dateKey)); ok {
		tasks, err := decodeTasks(raw)
		if err != nil {
			r.logger.Warn("ignoring stored tasks", "key", TasksKey(dateKey), "error", err)
		} else {
			session.Tasks = tasks
			found = true
		}
	}

	if raw, ok := r.get(StudyTimeKey(dateKey)); ok {
		seconds, err := decodeSeconds(raw)
		if err != nil {
			r.logger.Warn("ignoring stored study time", "key", StudyTimeKey(dateKey), "error", err)
		} else {
			session.TotalStudySeconds = seconds
			found = true
		}
	}

	return session, found
}

// SaveTasks overwrites the day's task list
func (r *KVRepository) SaveTasks(dateKey string, tasks []Task) error {
	if tasks == nil {
		tasks = []Task{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("failed to marshal tasks: %w", err)
	}
	if err := r.store.Set(TasksKey(dateKey), string(data)); err != nil {
		return fmt.Errorf("failed to save tasks: %w", err)
	}
	return nil
}

// SaveTime overwrites the day's total study seconds
func (r *KVRepository) SaveTime(dateKey string, seconds int) error {
	if err := r.store.Set(StudyTimeKey(dateKey), strconv.Itoa(seconds)); err != nil {
		return fmt.Errorf("failed to save study time: %w", err)
	}
	return nil
}

func (r *KVRepository) get(key string) (string, bool) {
	raw, err := r.store.Get(key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			r.logger.Warn("failed to read from store", "key", key, "error", err)
		}
		return "", false
	}
	return raw, true
}

// decodeTasks parses the stored array and drops entries that would break the
// session invariants: missing id, blank text or a repeated id
func decodeTasks(raw string) ([]Task, error) {
	var stored []Task
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tasks: %w", err)
	}

	tasks := make([]Task, 0, len(stored))
	seen := make(map[string]bool, len(stored))
	for _, t := range stored {
		t.Text = strings.TrimSpace(t.Text)
		if t.ID == "" || t.Text == "" || seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		tasks = append(tasks, t)
	}
	return tasks, nil
}

func decodeSeconds(raw string) (int, error) {
	seconds, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("failed to parse seconds: %w", err)
	}
	if seconds < 0 {
		return 0, fmt.Errorf("negative study time: %d", seconds)
	}
	return seconds, nil
}

// Storage backends
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// ErrUnknownBackend is returned for a backend name OpenStore does not know
var ErrUnknownBackend = errors.New("unknown storage backend")

// DataDir is the directory inside a workspace holding tracker data
const DataDir = ".studytracker"

// DefaultStorePath returns where a backend keeps its data inside a workspace
func DefaultStorePath(workspaceDir, backend string) string {
	switch backend {
	case BackendSQLite:
		return filepath.Join(workspaceDir, DataDir, "storage.db")
	default:
		return filepath.Join(workspaceDir, DataDir, "storage.json")
	}
}

// OpenStore opens the store for a backend. The returned func releases it.
func OpenStore(backend, path string) (Store, func() error, error) {
	noop := func() error { return nil }

	switch backend {
	case BackendMemory:
		return NewMemoryStore(), noop, nil
	case BackendFile, "":
		store, err := NewFileStore(path)
		if err != nil {
			return nil, nil, err
		}
		return store, noop, nil
	case BackendSQLite:
		store, err := NewSQLiteStore(path)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
}
