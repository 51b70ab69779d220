package client

import (
	"context"
	"errors"
	"sync"
)

// Status is the tri-state summary of the last server interaction.
type Status string

const (
	StatusUnknown Status = "unknown"
	StatusOK      Status = "ok"
	StatusOffline Status = "offline"
	StatusError   Status = "error"
)

const offlineHint = "Backend server is not reachable. Start the API and try again."

// ErrNotFound is returned by Store.Update when the server reports an
// unknown id (its null body). The connection was fine, so the status
// stays ok.
var ErrNotFound = errors.New("project not found")

// Store is the client-resident cache of the project listing. Reads
// degrade into the status fields without returning an error, so a UI
// renders a banner instead of crashing; writes record the same status
// transition and then surface the error at the point of action.
type Store struct {
	api *API

	mu      sync.Mutex
	items   []Project
	status  Status
	message string
}

func NewStore(api *API) *Store {
	return &Store{
		api:    api,
		items:  []Project{},
		status: StatusUnknown,
	}
}

// Load replaces the cached collection from the server. It never
// returns an error: failures land in Status/Message and the cache
// keeps its last-known-good contents.
func (s *Store) Load(ctx context.Context) {
	s.setStatus(StatusUnknown, "")

	items, err := s.api.ListProjects(ctx)
	if err != nil {
		s.recordFailure(err)
		return
	}

	s.mu.Lock()
	s.items = items
	s.status = StatusOK
	s.message = ""
	s.mu.Unlock()
}

// Add creates the project and prepends it to the cache.
func (s *Store) Add(ctx context.Context, payload ProjectPayload) (Project, error) {
	created, err := s.api.CreateProject(ctx, payload)
	if err != nil {
		s.recordFailure(err)
		return Project{}, err
	}

	s.mu.Lock()
	s.items = append([]Project{created}, s.items...)
	s.status = StatusOK
	s.message = ""
	s.mu.Unlock()

	return created, nil
}

// Update replaces the cached record by id.
func (s *Store) Update(ctx context.Context, id int64, payload ProjectPayload) (Project, error) {
	updated, err := s.api.UpdateProject(ctx, id, payload)
	if err != nil {
		s.recordFailure(err)
		return Project{}, err
	}
	if updated == nil {
		return Project{}, ErrNotFound
	}

	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i] = *updated
		}
	}
	s.status = StatusOK
	s.message = ""
	s.mu.Unlock()

	return *updated, nil
}

// Remove deletes the project and filters it out of the cache.
func (s *Store) Remove(ctx context.Context, id int64) error {
	if err := s.api.DeleteProject(ctx, id); err != nil {
		s.recordFailure(err)
		return err
	}

	s.mu.Lock()
	kept := s.items[:0]
	for _, item := range s.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	s.items = kept
	s.status = StatusOK
	s.message = ""
	s.mu.Unlock()

	return nil
}

// GetByID looks up the cached listing only; there is no server-side
// point lookup.
func (s *Store) GetByID(id int64) (Project, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return Project{}, false
}

// Items returns a copy of the cached collection.
func (s *Store) Items() []Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Project, len(s.items))
	copy(out, s.items)
	return out
}

// Status reports the connectivity state and its human-readable hint.
func (s *Store) Status() (Status, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status, s.message
}

func (s *Store) setStatus(status Status, message string) {
	s.mu.Lock()
	s.status = status
	s.message = message
	s.mu.Unlock()
}

func (s *Store) recordFailure(err error) {
	var offline *OfflineError
	if errors.As(err, &offline) {
		s.setStatus(StatusOffline, offlineHint)
		return
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		s.setStatus(StatusError, apiErr.Message)
		return
	}

	s.setStatus(StatusError, err.Error())
}
