package store

import (
	"fmt"
	"os"
	"sync"
	"time"

	"storyreel-backend/internal/models"
)

// projectsKey holds all projects as a single JSON array, one entry per
// project across all users. No schema versioning: shape changes are a
// breaking change for existing data.
const projectsKey = "projects"

var ErrProjectNotFound = fmt.Errorf("project not found")

// ProjectStore persists project aggregates through the key-value store.
// Mutations hold mu across the whole load-mutate-write cycle so concurrent
// saves cannot clobber each other.
type ProjectStore struct {
	kv *KV
	mu sync.Mutex
}

func NewProjectStore(kv *KV) *ProjectStore {
	return &ProjectStore{kv: kv}
}

func (s *ProjectStore) loadAll() ([]models.Project, error) {
	var projects []models.Project
	if err := s.kv.Get(projectsKey, &projects); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}
	return projects, nil
}

// List returns the caller's projects, newest first.
func (s *ProjectStore) List(userID string) ([]models.Project, error) {
	all, err := s.loadAll()
	if err != nil {
		return nil, err
	}
	var out []models.Project
	for _, p := range all {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

func (s *ProjectStore) Get(userID, projectID string) (*models.Project, error) {
	all, err := s.loadAll()
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].ID == projectID && all[i].UserID == userID {
			return &all[i], nil
		}
	}
	return nil, ErrProjectNotFound
}

// Save upserts by project id: an existing id is updated in place with its
// CreatedAt preserved, a new id is appended. UpdatedAt is refreshed either
// way.
func (s *ProjectStore) Save(project *models.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.loadAll()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	project.UpdatedAt = now

	replaced := false
	for i := range all {
		if all[i].ID == project.ID && all[i].UserID == project.UserID {
			project.CreatedAt = all[i].CreatedAt
			all[i] = *project
			replaced = true
			break
		}
	}
	if !replaced {
		if project.CreatedAt.IsZero() {
			project.CreatedAt = now
		}
		all = append(all, *project)
	}

	if err := s.kv.Set(projectsKey, all); err != nil {
		return fmt.Errorf("failed to save projects: %w", err)
	}
	return nil
}

func (s *ProjectStore) Delete(userID, projectID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.loadAll()
	if err != nil {
		return err
	}
	kept := all[:0]
	found := false
	for _, p := range all {
		if p.ID == projectID && p.UserID == userID {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return ErrProjectNotFound
	}
	if err := s.kv.Set(projectsKey, kept); err != nil {
		return fmt.Errorf("failed to save projects: %w", err)
	}
	return nil
}
