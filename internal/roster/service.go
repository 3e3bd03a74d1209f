// Package roster is the boundary between the worker repository and an
// interactive front end. Storage failures are logged here and turned into
// empty or no-op results so a front end never has to handle them.
package roster

import (
	"github.com/rs/zerolog/log"

	"github.com/saltyorg/roster/internal/database"
)

// Store is the repository surface the service needs.
type Store interface {
	FindByID(id int64) (*database.Worker, error)
	FindAll() ([]database.Worker, error)
	Save(w *database.Worker) (*database.Worker, error)
	Update(w *database.Worker) (*database.Worker, error)
	Delete(w *database.Worker) error
	DeleteByID(id int64) error
	FindBySurnameOrGroupName(value string) ([]database.Worker, error)
}

// Service exposes best-effort roster operations.
type Service struct {
	store Store
}

// NewService creates a service over store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// List returns every worker, or an empty list if storage fails.
func (s *Service) List() []database.Worker {
	workers, err := s.store.FindAll()
	if err != nil {
		log.Error().Err(err).Str("op", "list").Msg("Failed to load workers")
		return []database.Worker{}
	}
	return workers
}

// Get returns the worker with id. The boolean is false when the worker does
// not exist or could not be read.
func (s *Service) Get(id int64) (*database.Worker, bool) {
	w, err := s.store.FindByID(id)
	if err != nil {
		log.Error().Err(err).Str("op", "get").Int64("worker_id", id).Msg("Failed to load worker")
		return nil, false
	}
	return w, w != nil
}

// Add saves a new worker. On failure the worker comes back with ID 0.
func (s *Service) Add(w *database.Worker) *database.Worker {
	saved, err := s.store.Save(w)
	if err != nil {
		log.Error().Err(err).Str("op", "add").Str("surname", surnameOf(w)).Msg("Failed to save worker")
		return w
	}
	return saved
}

// Edit overwrites a stored worker. The boolean is false when storage failed;
// storage is left unchanged in that case.
func (s *Service) Edit(w *database.Worker) (*database.Worker, bool) {
	updated, err := s.store.Update(w)
	if err != nil {
		log.Error().Err(err).Str("op", "edit").Int64("worker_id", idOf(w)).Msg("Failed to update worker")
		return w, false
	}
	return updated, true
}

// Remove deletes the worker with id and reports whether a stored worker was
// removed. A missing worker or a storage failure yields false.
func (s *Service) Remove(id int64) bool {
	w, err := s.store.FindByID(id)
	if err != nil {
		log.Error().Err(err).Str("op", "remove").Int64("worker_id", id).Msg("Failed to load worker")
		return false
	}
	if w == nil {
		return false
	}

	if err := s.store.DeleteByID(id); err != nil {
		log.Error().Err(err).Str("op", "remove").Int64("worker_id", id).Msg("Failed to delete worker")
		return false
	}
	return true
}

// RemoveWorker deletes w. A nil worker is ignored.
func (s *Service) RemoveWorker(w *database.Worker) {
	if err := s.store.Delete(w); err != nil {
		log.Error().Err(err).Str("op", "remove").Int64("worker_id", idOf(w)).Msg("Failed to delete worker")
	}
}

// Search returns workers whose surname or position contains query.
// An empty query resets to the full list.
func (s *Service) Search(query string) []database.Worker {
	if query == "" {
		return s.List()
	}

	workers, err := s.store.FindBySurnameOrGroupName(query)
	if err != nil {
		log.Error().Err(err).Str("op", "search").Str("query", query).Msg("Failed to search workers")
		return []database.Worker{}
	}
	return workers
}

func idOf(w *database.Worker) int64 {
	if w == nil {
		return 0
	}
	return w.ID
}

func surnameOf(w *database.Worker) string {
	if w == nil {
		return ""
	}
	return w.Surname
}
