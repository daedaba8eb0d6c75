// Package memory provides an in-process SpeakerRepository for development
// and tests. Data is lost when the process exits.
package memory

import (
	"context"
	"fmt"
	"sync"

	"speakerservice/internal/domain"

	"github.com/google/uuid"
)

type speakerRepository struct {
	mu       sync.RWMutex
	byID     map[string]*domain.Speaker
	order    []string
	pageSize int
}

// NewSpeakerRepository returns a domain.SpeakerRepository kept in memory.
// Speakers are listed in insertion order.
func NewSpeakerRepository(pageSize int) domain.SpeakerRepository {
	return &speakerRepository{
		byID:     make(map[string]*domain.Speaker),
		pageSize: pageSize,
	}
}

func (r *speakerRepository) Create(_ context.Context, s *domain.Speaker) error {
	seen := make(map[string]struct{}, len(s.AcceptedTalks))
	for _, t := range s.AcceptedTalks {
		if t == nil || t.ID == "" {
			return fmt.Errorf("%w: accepted talk id is required", domain.ErrInvalidSpeaker)
		}
		if _, dup := seen[t.ID]; dup {
			return fmt.Errorf("%w: duplicate accepted talk %q", domain.ErrInvalidSpeaker, t.ID)
		}
		seen[t.ID] = struct{}{}
	}

	stored := s.Clone()
	stored.ID = uuid.NewString()
	stored.Links = nil
	for _, t := range stored.AcceptedTalks {
		t.Links = nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[stored.ID] = stored
	r.order = append(r.order, stored.ID)
	s.ID = stored.ID
	return nil
}

func (r *speakerRepository) GetByID(_ context.Context, id string) (*domain.Speaker, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s.Clone(), nil
}

func (r *speakerRepository) ListPage(_ context.Context, page int) ([]*domain.Speaker, error) {
	params := domain.PaginationParams{Page: page, PageSize: r.pageSize}

	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []*domain.Speaker{}
	if page < 1 || params.OffsetOverflows() {
		return out, nil
	}
	start := params.Offset()
	if start < 0 || start >= len(r.order) {
		return out, nil
	}
	end := min(start+params.PageSize, len(r.order))
	for _, id := range r.order[start:end] {
		out = append(out, r.byID[id].Clone())
	}
	return out, nil
}

func (r *speakerRepository) NumberOfPages(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return domain.PaginationParams{PageSize: r.pageSize}.TotalPages(len(r.order)), nil
}

func (r *speakerRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return nil
	}
	delete(r.byID, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
