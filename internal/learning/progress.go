package learning

import (
	"context"
	"fmt"
	"recon/pkg/domain"
	"recon/pkg/logger"
	"recon/pkg/serrors"
	"recon/pkg/storage"

	"go.uber.org/zap"
)

// DefaultBadgeXP is awarded for every new badge.
const DefaultBadgeXP = 20

// Options configure how much experience progress events are worth.
type Options struct {
	// BadgeXP is added when a badge is awarded for the first time.
	BadgeXP int
}

// DefaultOptions returns the production rewards.
func DefaultOptions() Options {
	return Options{BadgeXP: DefaultBadgeXP}
}

// progressService is the concrete implementation of ProgressTracker. Every
// mutation loads the row under lock, applies the change and saves it inside
// one transaction.
type progressService struct {
	options Options
	catalog *Catalog
	storage storage.Storage
}

// Get returns the progress of userID. A user without stored progress gets a
// fresh empty one.
func (s *progressService) Get(ctx context.Context, userID domain.UserID) (*domain.Progress, error) {
	p, err := s.storage.ProgressByUser(ctx, userID, false)
	if err != nil {
		return nil, fmt.Errorf("could not get progress: %w", err)
	}
	if p == nil {
		return domain.NewProgress(userID), nil
	}

	return p, nil
}

// CompleteLesson marks a lesson as done, once. The first completion awards
// the lesson XP and counts towards the lesson's track.
func (s *progressService) CompleteLesson(ctx context.Context,
	userID domain.UserID,
	lessonID string) (*domain.Progress, error) {
	lesson, ok := s.catalog.Lesson(lessonID)
	if !ok {
		return nil, serrors.With(serrors.ErrNotFound, "lesson %q not found", lessonID)
	}

	return s.mutate(ctx, userID, func(p *domain.Progress) bool {
		if p.LessonsCompleted[lesson.ID] {
			return false
		}
		p.LessonsCompleted[lesson.ID] = true
		p.XP += lesson.XP
		if lesson.Track != "" {
			p.Tracks[lesson.Track]++
		}

		return true
	})
}

// SubmitQuiz grades answers, replaces any previous score of the quiz and
// awards a bonus of a tenth of the score. Retakes earn the bonus again.
func (s *progressService) SubmitQuiz(ctx context.Context,
	userID domain.UserID,
	quizID string,
	answers map[string]int) (*domain.Progress, int, error) {
	quiz, ok := s.catalog.Quiz(quizID)
	if !ok {
		return nil, 0, serrors.With(serrors.ErrNotFound, "quiz %q not found", quizID)
	}

	score := Grade(quiz, answers)
	p, err := s.mutate(ctx, userID, func(p *domain.Progress) bool {
		p.QuizScores[quiz.ID] = score
		p.XP += QuizBonus(score)

		return true
	})
	if err != nil {
		return nil, 0, err
	}

	return p, score, nil
}

// GuessPhishing records that the user picked emailID as the phishing email
// of the simulation. A correct pick awards BadgePhishingHunter. The verdict is
// returned alongside the progress.
func (s *progressService) GuessPhishing(ctx context.Context,
	userID domain.UserID,
	emailID int) (*domain.Progress, bool, error) {
	email, ok := s.catalog.PhishingEmail(emailID)
	if !ok {
		return nil, false, serrors.With(serrors.ErrNotFound, "phishing email %d not found", emailID)
	}

	if !ClassifyPhishing(email) {
		p, err := s.Get(ctx, userID)

		return p, false, err
	}

	p, err := s.awardBadge(ctx, userID, BadgePhishingHunter)
	if err != nil {
		return nil, false, err
	}

	return p, true, nil
}

// awardBadge adds a badge once and awards Options.BadgeXP for it.
func (s *progressService) awardBadge(ctx context.Context,
	userID domain.UserID,
	badge string) (*domain.Progress, error) {
	return s.mutate(ctx, userID, func(p *domain.Progress) bool {
		if p.HasBadge(badge) {
			return false
		}
		p.Badges = append(p.Badges, badge)
		p.XP += s.options.BadgeXP

		return true
	})
}

// Reset discards all progress of userID.
func (s *progressService) Reset(ctx context.Context, userID domain.UserID) error {
	if err := s.storage.DeleteProgress(ctx, userID); err != nil {
		return fmt.Errorf("could not reset progress: %w", err)
	}
	logger.Info(ctx, "progress reset", zap.Stringer("userID", userID))

	return nil
}

// mutate runs fn on the locked progress row of userID and saves the result
// when fn reports a change.
func (s *progressService) mutate(ctx context.Context,
	userID domain.UserID,
	fn func(p *domain.Progress) bool) (*domain.Progress, error) {
	var out *domain.Progress
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		p, err := tx.ProgressByUser(ctx, userID, true)
		if err != nil {
			return fmt.Errorf("could not load progress: %w", err)
		}
		if p == nil {
			p = domain.NewProgress(userID)
		}

		if !fn(p) {
			out = p

			return nil
		}

		saved, err := tx.SaveProgress(ctx, *p)
		if err != nil {
			return fmt.Errorf("could not save progress: %w", err)
		}
		out = saved

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not update progress: %w", err)
	}

	return out, nil
}

// NewProgressTracker creates a ProgressTracker over catalog and storage.
func NewProgressTracker(catalog *Catalog, storage storage.Storage, options Options) ProgressTracker {
	return &progressService{
		options: options,
		catalog: catalog,
		storage: storage,
	}
}
