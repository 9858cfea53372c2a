package services

import (
	"sync"

	"golang.org/x/exp/slices"

	"experiences-catalog-server/models"
	"experiences-catalog-server/storage"
)

// Accessor is the slice of the storage layer the catalog manager drives.
// *storage.ExperienceStore satisfies it; tests substitute fakes.
type Accessor interface {
	FetchAll() ([]models.Experience, error)
	Insert(e models.Experience) (models.Experience, error)
	Update(id string, patch models.ExperienceUpdate) error
	Delete(id string) error
	Import(jsonText string) ([]models.Experience, storage.TransferResult)
	Export() (string, error)
	Reset() storage.TransferResult
}

// CatalogManager holds the in-memory view of the catalog: the current list,
// a loading flag and the last load error. The list is a cache — fully
// overwritten by a successful Load, speculatively patched after mutations.
// State access is mutex-guarded because handlers run on concurrent
// goroutines, but remote calls are not ordered against each other: with
// overlapping mutations the last completed write wins.
type CatalogManager struct {
	accessor Accessor
	notifier Notifier

	mu      sync.Mutex
	list    []models.Experience
	loading bool
	errMsg  string
}

func NewCatalogManager(accessor Accessor, notifier Notifier) *CatalogManager {
	return &CatalogManager{accessor: accessor, notifier: notifier}
}

// Load fetches the full catalog. On failure it records the error and keeps
// serving the accessor's fallback copy when that copy is non-empty.
func (m *CatalogManager) Load() {
	m.mu.Lock()
	m.loading = true
	m.errMsg = ""
	m.mu.Unlock()

	list, err := m.accessor.FetchAll()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.loading = false
	if err != nil {
		m.errMsg = "failed to load experiences"
		if len(list) > 0 {
			m.list = list
		}
		return
	}
	m.list = list
}

// Experiences returns a snapshot of the current list.
func (m *CatalogManager) Experiences() []models.Experience {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.Experience(nil), m.list...)
}

func (m *CatalogManager) Loading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}

// Err returns the last load error message, empty when the last load
// succeeded.
func (m *CatalogManager) Err() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.errMsg
}

// Add inserts the experience and appends the stored copy to the list.
func (m *CatalogManager) Add(e models.Experience) (models.Experience, error) {
	created, err := m.accessor.Insert(e)
	if err != nil {
		m.notifier.Error("Failed to add experience")
		return models.Experience{}, err
	}
	m.mu.Lock()
	m.list = append(m.list, created)
	m.mu.Unlock()
	m.notifier.Success("Experience added")
	return created, nil
}

// Update applies a sparse patch remotely, then merges the same fields into
// the matching in-memory element. An id not present in the list leaves the
// list untouched.
func (m *CatalogManager) Update(id string, patch models.ExperienceUpdate) error {
	if err := m.accessor.Update(id, patch); err != nil {
		m.notifier.Error("Failed to update experience")
		return err
	}
	m.mu.Lock()
	if idx := slices.IndexFunc(m.list, func(e models.Experience) bool { return e.ID == id }); idx >= 0 {
		patch.Apply(&m.list[idx])
	}
	m.mu.Unlock()
	m.notifier.Success("Experience updated")
	return nil
}

// Delete removes the experience remotely and filters it out of the list.
// Filtering an id that is not in the list removes nothing.
func (m *CatalogManager) Delete(id string) error {
	if err := m.accessor.Delete(id); err != nil {
		m.notifier.Error("Failed to delete experience")
		return err
	}
	m.mu.Lock()
	kept := m.list[:0]
	for _, e := range m.list {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	m.list = kept
	m.mu.Unlock()
	m.notifier.Success("Experience deleted")
	return nil
}

// Import delegates to the accessor and, on success, replaces the list with
// the consistent view the accessor re-fetched.
func (m *CatalogManager) Import(jsonText string) storage.TransferResult {
	list, result := m.accessor.Import(jsonText)
	if !result.Success {
		m.notifier.Error(result.Message)
		return result
	}
	m.mu.Lock()
	m.list = list
	m.mu.Unlock()
	m.notifier.Success(result.Message)
	return result
}

// Export returns the catalog as pretty-printed JSON text.
func (m *CatalogManager) Export() (string, error) {
	text, err := m.accessor.Export()
	if err != nil {
		m.notifier.Error("Failed to export experiences")
		return "", err
	}
	m.notifier.Success("Experiences exported")
	return text, nil
}

// Reset delegates to the accessor's stub and reports its result.
func (m *CatalogManager) Reset() storage.TransferResult {
	result := m.accessor.Reset()
	if result.Success {
		m.notifier.Success(result.Message)
	} else {
		m.notifier.Error(result.Message)
	}
	return result
}
