package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/ThellaPrasanthi/complain-system/internal/domain"
)

// memoryComplaintStore keeps complaints in process memory. Used when no
// Postgres DSN is configured, and by tests.
type memoryComplaintStore struct {
	mu         sync.RWMutex
	complaints map[int64]domain.Complaint
	nextID     int64
}

// NewMemoryComplaintStore returns an empty in-memory repository.
func NewMemoryComplaintStore() ComplaintRepository {
	return &memoryComplaintStore{complaints: make(map[int64]domain.Complaint), nextID: 1}
}

func (s *memoryComplaintStore) Create(_ context.Context, complaint *domain.Complaint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	complaint.ID = s.nextID
	s.nextID++
	s.complaints[complaint.ID] = *complaint
	return nil
}

func (s *memoryComplaintStore) ListAll(_ context.Context) ([]domain.Complaint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Complaint, 0, len(s.complaints))
	for _, complaint := range s.complaints {
		result = append(result, complaint)
	}
	sortByID(result)
	return result, nil
}

func (s *memoryComplaintStore) ListByOwner(_ context.Context, owner string) ([]domain.Complaint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []domain.Complaint
	for _, complaint := range s.complaints {
		if complaint.Owner == owner {
			result = append(result, complaint)
		}
	}
	sortByID(result)
	return result, nil
}

func (s *memoryComplaintStore) UpdateStatus(_ context.Context, id int64, status string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	complaint, ok := s.complaints[id]
	if !ok {
		return 0, nil
	}
	complaint.Status = status
	s.complaints[id] = complaint
	return 1, nil
}

func (s *memoryComplaintStore) Delete(_ context.Context, id int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.complaints[id]; !ok {
		return 0, nil
	}
	delete(s.complaints, id)
	return 1, nil
}

func sortByID(complaints []domain.Complaint) {
	sort.Slice(complaints, func(i, j int) bool {
		return complaints[i].ID < complaints[j].ID
	})
}
