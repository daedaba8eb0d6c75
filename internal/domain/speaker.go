package domain

//go:generate mockgen -destination=../mock/domain_mock.go -package=mock speakerservice/internal/domain SpeakerRepository,SessionFetcher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
)

// Sentinel errors for speaker operations.
var (
	ErrNotFound       = errors.New("not found")
	ErrInvalidSpeaker = errors.New("invalid speaker")
)

// Link relations used on speaker representations.
const (
	RelSelf       = "self"
	RelCollection = "collection"
	RelFirst      = "first"
	RelLast       = "last"
	RelNext       = "next"
	RelPrevious   = "previous"
)

// Links maps a relation name to an absolute URI. Links decorate a single
// response and are never persisted.
type Links map[string]string

// Add sets the URI for rel, allocating the map on first use.
func (l *Links) Add(rel, uri string) {
	if *l == nil {
		*l = Links{}
	}
	(*l)[rel] = uri
}

// AcceptedTalk is a talk of the speaker that made it into the programme.
// swagger:model AcceptedTalk
type AcceptedTalk struct {
	ID    string `json:"id"`
	Title string `json:"title,omitempty"`
	Links Links  `json:"links,omitempty"`
}

// Speaker represents a conference speaker.
// swagger:model Speaker
type Speaker struct {
	ID            string          `json:"id"`
	FirstName     string          `json:"first_name"`
	LastName      string          `json:"last_name"`
	Bio           string          `json:"bio,omitempty"`
	Company       string          `json:"company,omitempty"`
	Twitter       string          `json:"twitter,omitempty"`
	AvatarURL     string          `json:"avatar_url,omitempty"`
	Language      string          `json:"language,omitempty"`
	AcceptedTalks []*AcceptedTalk `json:"accepted_talks,omitempty"`
	Links         Links           `json:"links,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// NewSpeaker returns a new Speaker with the given fields. ID is typically set by the repository on create.
func NewSpeaker(firstName, lastName, bio string, talks []*AcceptedTalk, createdAt, updatedAt time.Time) *Speaker {
	return &Speaker{
		FirstName:     firstName,
		LastName:      lastName,
		Bio:           bio,
		AcceptedTalks: talks,
		CreatedAt:     createdAt,
		UpdatedAt:     updatedAt,
	}
}

// AddSelfLink sets the self relation.
func (s *Speaker) AddSelfLink(uri string) { s.Links.Add(RelSelf, uri) }

// AddCollectionLink sets the collection relation.
func (s *Speaker) AddCollectionLink(uri string) { s.Links.Add(RelCollection, uri) }

// Strip removes the heavy fields from a non-expanded representation.
func (s *Speaker) Strip() {
	s.Bio = ""
	s.AcceptedTalks = nil
}

// Clone returns a deep copy of s.
func (s *Speaker) Clone() *Speaker {
	c := *s
	c.Links = cloneLinks(s.Links)
	if s.AcceptedTalks != nil {
		c.AcceptedTalks = make([]*AcceptedTalk, len(s.AcceptedTalks))
		for i, t := range s.AcceptedTalks {
			tc := *t
			tc.Links = cloneLinks(t.Links)
			c.AcceptedTalks[i] = &tc
		}
	}
	return &c
}

// ETag returns a strong entity tag derived from the persisted state of the
// speaker. Links are ignored, so decorating a speaker does not change its tag.
func (s *Speaker) ETag() string {
	state := s.Clone()
	state.Links = nil
	for _, t := range state.AcceptedTalks {
		t.Links = nil
	}
	b, err := json.Marshal(state)
	if err != nil {
		// Speaker holds only strings and timestamps.
		panic(fmt.Sprintf("marshal speaker %q: %v", s.ID, err))
	}
	return fmt.Sprintf(`"%016x"`, xxhash.Sum64(b))
}

func cloneLinks(l Links) Links {
	if l == nil {
		return nil
	}
	c := make(Links, len(l))
	for k, v := range l {
		c[k] = v
	}
	return c
}

// Speakers is one page of speakers along with its pagination links.
// swagger:model Speakers
type Speakers struct {
	Speakers []*Speaker `json:"speakers"`
	Links    Links      `json:"links,omitempty"`
}

// NewSpeakers wraps a page of speakers.
func NewSpeakers(speakers []*Speaker) *Speakers {
	if speakers == nil {
		speakers = []*Speaker{}
	}
	return &Speakers{Speakers: speakers}
}

func (s *Speakers) AddSelfLink(uri string) { s.Links.Add(RelSelf, uri) }
func (s *Speakers) AddFirst(uri string)    { s.Links.Add(RelFirst, uri) }
func (s *Speakers) AddLast(uri string)     { s.Links.Add(RelLast, uri) }
func (s *Speakers) AddNext(uri string)     { s.Links.Add(RelNext, uri) }
func (s *Speakers) AddPrevious(uri string) { s.Links.Add(RelPrevious, uri) }

// SpeakerPage is the result of listing one page of speakers.
type SpeakerPage struct {
	Speakers   []*Speaker
	Page       int
	TotalPages int
}

// SpeakerRepository defines the interface for speaker storage.
// Pages are 1-based and sized by the implementation.
type SpeakerRepository interface {
	// Create stores the speaker and its accepted talks and sets speaker.ID.
	Create(ctx context.Context, speaker *Speaker) error
	// GetByID returns ErrNotFound when no speaker has the given id.
	GetByID(ctx context.Context, id string) (*Speaker, error)
	// ListPage returns the speakers on the given page, empty past the last page.
	ListPage(ctx context.Context, page int) ([]*Speaker, error)
	// NumberOfPages returns the number of non-empty pages.
	NumberOfPages(ctx context.Context) (int, error)
	// Delete removes the speaker; deleting an unknown id is not an error.
	Delete(ctx context.Context, id string) error
}

// SpeakerService defines the business logic behind the speakers resource.
type SpeakerService interface {
	Create(ctx context.Context, speaker *Speaker) error
	GetByID(ctx context.Context, id string) (*Speaker, error)
	// ListSpeakers returns ErrNotFound when the page holds no speakers.
	ListSpeakers(ctx context.Context, page int) (*SpeakerPage, error)
	Delete(ctx context.Context, id string) error
	// ImportFromSessionize creates every speaker of a Sessionize event and returns how many were created.
	// It stops at the first failure; the count then reports the speakers already stored.
	ImportFromSessionize(ctx context.Context, sessionizeID string) (int, error)
}
