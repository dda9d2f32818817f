package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"recon/pkg/domain"
	"time"

	"github.com/google/uuid"
)

type PgProgress struct {
	UserID uuid.UUID `db:"user_id"`

	LessonsCompleted json.RawMessage `db:"lessons_completed"`
	QuizScores       json.RawMessage `db:"quiz_scores"`
	XP               int             `db:"xp"`
	Badges           json.RawMessage `db:"badges"`
	Tracks           json.RawMessage `db:"tracks"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
	UpdatedAt time.Time `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgProgress) ToDomain() (*domain.Progress, error) {
	out := domain.NewProgress(domain.UserID(p.UserID))
	out.XP = p.XP
	out.UpdatedAt = p.UpdatedAt

	for _, f := range []struct {
		name string
		raw  json.RawMessage
		dst  any
	}{
		{"lessons_completed", p.LessonsCompleted, &out.LessonsCompleted},
		{"quiz_scores", p.QuizScores, &out.QuizScores},
		{"badges", p.Badges, &out.Badges},
		{"tracks", p.Tracks, &out.Tracks},
	} {
		if len(f.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(f.raw, f.dst); err != nil {
			return nil, fmt.Errorf("could not unmarshal %s: %w", f.name, err)
		}
	}

	// json null decodes into nil collections
	if out.LessonsCompleted == nil {
		out.LessonsCompleted = map[string]bool{}
	}
	if out.QuizScores == nil {
		out.QuizScores = map[string]int{}
	}
	if out.Badges == nil {
		out.Badges = []string{}
	}
	if out.Tracks == nil {
		out.Tracks = map[string]int{}
	}

	return out, nil
}

func (p *PgProgress) FromDomain(progress domain.Progress) error {
	empty := domain.NewProgress(progress.UserID)
	if progress.LessonsCompleted == nil {
		progress.LessonsCompleted = empty.LessonsCompleted
	}
	if progress.QuizScores == nil {
		progress.QuizScores = empty.QuizScores
	}
	if progress.Badges == nil {
		progress.Badges = empty.Badges
	}
	if progress.Tracks == nil {
		progress.Tracks = empty.Tracks
	}

	*p = PgProgress{UserID: uuid.UUID(progress.UserID), XP: progress.XP}

	var err error
	if p.LessonsCompleted, err = json.Marshal(progress.LessonsCompleted); err != nil {
		return fmt.Errorf("could not marshal lessons: %w", err)
	}
	if p.QuizScores, err = json.Marshal(progress.QuizScores); err != nil {
		return fmt.Errorf("could not marshal quiz scores: %w", err)
	}
	if p.Badges, err = json.Marshal(progress.Badges); err != nil {
		return fmt.Errorf("could not marshal badges: %w", err)
	}
	if p.Tracks, err = json.Marshal(progress.Tracks); err != nil {
		return fmt.Errorf("could not marshal tracks: %w", err)
	}

	return nil
}

type PgArticle struct {
	ID uuid.UUID `db:"id" goqu:"skipinsert"`

	Source      string         `db:"source"`
	Author      sql.NullString `db:"author"`
	Title       string         `db:"title"`
	Description string         `db:"description"`
	URL         string         `db:"url"`
	ImageURL    string         `db:"image_url"`
	Content     sql.NullString `db:"content"`
	PublishedAt time.Time      `db:"published_at"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
	UpdatedAt time.Time `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgArticle) ToDomain() domain.Article {
	return domain.Article{
		ID:          domain.ArticleID(p.ID),
		Source:      p.Source,
		Author:      p.Author.String,
		Title:       p.Title,
		Description: p.Description,
		URL:         p.URL,
		ImageURL:    p.ImageURL,
		Content:     p.Content.String,
		PublishedAt: p.PublishedAt,
	}
}

func (p *PgArticle) FromDomain(article domain.Article) {
	*p = PgArticle{
		Source:      article.Source,
		Author:      sql.NullString{String: article.Author, Valid: article.Author != ""},
		Title:       article.Title,
		Description: article.Description,
		URL:         article.URL,
		ImageURL:    article.ImageURL,
		Content:     sql.NullString{String: article.Content, Valid: article.Content != ""},
		PublishedAt: article.PublishedAt,
	}
}

func pgArticlesToDomain(articles []PgArticle) []domain.Article {
	out := make([]domain.Article, 0, len(articles))
	for _, a := range articles {
		out = append(out, a.ToDomain())
	}

	return out
}
