package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"speakerservice/internal/domain"

	"github.com/jackc/pgerrcode"
	"github.com/lib/pq"
)

type speakerRepository struct {
	DB       *sql.DB
	pageSize int
}

// NewSpeakerRepository returns a domain.SpeakerRepository implemented with Postgres.
// pageSize is the number of speakers per page for ListPage and NumberOfPages.
func NewSpeakerRepository(db *sql.DB, pageSize int) domain.SpeakerRepository {
	return &speakerRepository{DB: db, pageSize: pageSize}
}

const speakerColumns = `id, first_name, last_name, bio, company, twitter, avatar_url, language, created_at, updated_at`

func (r *speakerRepository) Create(ctx context.Context, s *domain.Speaker) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	query := `
		INSERT INTO speakers (first_name, last_name, bio, company, twitter, avatar_url, language, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	var id string
	err = tx.QueryRowContext(ctx, query, s.FirstName, s.LastName, s.Bio, s.Company, s.Twitter, s.AvatarURL, s.Language, s.CreatedAt, s.UpdatedAt).Scan(&id)
	if err != nil {
		return mapWriteError(err)
	}
	for _, talk := range s.AcceptedTalks {
		if _, err := tx.ExecContext(ctx, `INSERT INTO accepted_talks (speaker_id, talk_id, title) VALUES ($1, $2, $3)`, id, talk.ID, talk.Title); err != nil {
			return mapWriteError(err)
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	s.ID = id
	return nil
}

func (r *speakerRepository) GetByID(ctx context.Context, id string) (*domain.Speaker, error) {
	query := `SELECT ` + speakerColumns + ` FROM speakers WHERE id = $1`
	s := &domain.Speaker{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.FirstName, &s.LastName, &s.Bio, &s.Company, &s.Twitter, &s.AvatarURL, &s.Language, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows || isInvalidID(err) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	talks, err := r.talksBySpeaker(ctx, []string{s.ID})
	if err != nil {
		return nil, err
	}
	s.AcceptedTalks = talks[s.ID]
	return s, nil
}

func (r *speakerRepository) ListPage(ctx context.Context, page int) ([]*domain.Speaker, error) {
	params := domain.PaginationParams{Page: page, PageSize: r.pageSize}
	if params.OffsetOverflows() {
		return []*domain.Speaker{}, nil
	}
	query := `SELECT ` + speakerColumns + ` FROM speakers ORDER BY created_at, id LIMIT $1 OFFSET $2`
	rows, err := r.DB.QueryContext(ctx, query, params.PageSize, params.Offset())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var speakers []*domain.Speaker
	var ids []string
	for rows.Next() {
		s := &domain.Speaker{}
		if err := rows.Scan(&s.ID, &s.FirstName, &s.LastName, &s.Bio, &s.Company, &s.Twitter, &s.AvatarURL, &s.Language, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		speakers = append(speakers, s)
		ids = append(ids, s.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(speakers) == 0 {
		return []*domain.Speaker{}, nil
	}

	talks, err := r.talksBySpeaker(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, s := range speakers {
		s.AcceptedTalks = talks[s.ID]
	}
	return speakers, nil
}

func (r *speakerRepository) NumberOfPages(ctx context.Context) (int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM speakers`).Scan(&total); err != nil {
		return 0, err
	}
	return domain.PaginationParams{PageSize: r.pageSize}.TotalPages(total), nil
}

func (r *speakerRepository) Delete(ctx context.Context, id string) error {
	// accepted_talks rows go with the speaker (ON DELETE CASCADE).
	_, err := r.DB.ExecContext(ctx, `DELETE FROM speakers WHERE id = $1`, id)
	if err != nil && !isInvalidID(err) {
		return err
	}
	return nil
}

func (r *speakerRepository) talksBySpeaker(ctx context.Context, speakerIDs []string) (map[string][]*domain.AcceptedTalk, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT speaker_id, talk_id, title FROM accepted_talks
		 WHERE speaker_id = ANY($1)
		 ORDER BY speaker_id, talk_id`, pq.Array(speakerIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string][]*domain.AcceptedTalk, len(speakerIDs))
	for rows.Next() {
		var speakerID string
		talk := &domain.AcceptedTalk{}
		if err := rows.Scan(&speakerID, &talk.ID, &talk.Title); err != nil {
			return nil, err
		}
		out[speakerID] = append(out[speakerID], talk)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// isInvalidID reports whether err is Postgres rejecting a malformed UUID.
func isInvalidID(err error) bool {
	var perr *pq.Error
	return errors.As(err, &perr) && perr.Code == pgerrcode.InvalidTextRepresentation
}

// mapWriteError turns constraint violations into domain.ErrInvalidSpeaker.
func mapWriteError(err error) error {
	var perr *pq.Error
	if !errors.As(err, &perr) {
		return err
	}
	switch perr.Code {
	case pgerrcode.UniqueViolation,
		pgerrcode.NotNullViolation,
		pgerrcode.CheckViolation,
		pgerrcode.StringDataRightTruncationDataException:
		return fmt.Errorf("%w: %s", domain.ErrInvalidSpeaker, perr.Message)
	}
	return err
}
