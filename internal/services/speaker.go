package services

import (
	"context"
	"fmt"
	"time"

	"speakerservice/internal/domain"
)

type speakerService struct {
	repo           domain.SpeakerRepository
	sessionize     domain.SessionFetcher
	contextTimeout time.Duration
	now            func() time.Time
}

// NewSpeakerService creates a SpeakerService over the given repository.
// sessionize may be nil, in which case imports fail.
func NewSpeakerService(repo domain.SpeakerRepository, sessionize domain.SessionFetcher, timeout time.Duration) domain.SpeakerService {
	return &speakerService{
		repo:           repo,
		sessionize:     sessionize,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

func (s *speakerService) Create(ctx context.Context, speaker *domain.Speaker) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	now := s.now().UTC()
	speaker.CreatedAt = now
	speaker.UpdatedAt = now
	return s.repo.Create(ctx, speaker)
}

func (s *speakerService) GetByID(ctx context.Context, id string) (*domain.Speaker, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.repo.GetByID(ctx, id)
}

func (s *speakerService) ListSpeakers(ctx context.Context, page int) (*domain.SpeakerPage, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	speakers, err := s.repo.ListPage(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list speakers: %w", err)
	}
	if len(speakers) == 0 {
		return nil, domain.ErrNotFound
	}
	pages, err := s.repo.NumberOfPages(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count speaker pages: %w", err)
	}
	return &domain.SpeakerPage{Speakers: speakers, Page: page, TotalPages: max(pages, 1)}, nil
}

func (s *speakerService) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()
	return s.repo.Delete(ctx, id)
}

func (s *speakerService) ImportFromSessionize(ctx context.Context, sessionizeID string) (int, error) {
	if s.sessionize == nil {
		return 0, fmt.Errorf("sessionize import is not configured")
	}
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	data, err := s.sessionize.Fetch(ctx, sessionizeID)
	if err != nil {
		return 0, err
	}

	talksBySpeaker := make(map[string][]*domain.AcceptedTalk)
	for _, session := range data.Sessions {
		for _, speakerID := range session.Speakers {
			talksBySpeaker[speakerID] = append(talksBySpeaker[speakerID], &domain.AcceptedTalk{ID: session.ID, Title: session.Title})
		}
	}

	created := 0
	for _, sp := range data.Speakers {
		now := s.now().UTC()
		speaker := domain.NewSpeaker(sp.FirstName, sp.LastName, sp.Bio, dedupeTalks(talksBySpeaker[sp.ID]), now, now)
		speaker.AvatarURL = sp.ProfilePicture
		if err := s.repo.Create(ctx, speaker); err != nil {
			return created, fmt.Errorf("failed to create speaker %s %s: %w", sp.FirstName, sp.LastName, err)
		}
		created++
	}
	return created, nil
}

// dedupeTalks drops repeated talk ids, keeping the first occurrence.
func dedupeTalks(talks []*domain.AcceptedTalk) []*domain.AcceptedTalk {
	if len(talks) < 2 {
		return talks
	}
	seen := make(map[string]struct{}, len(talks))
	out := talks[:0]
	for _, t := range talks {
		if _, ok := seen[t.ID]; ok {
			continue
		}
		seen[t.ID] = struct{}{}
		out = append(out, t)
	}
	return out
}
