package learning

import (
	"context"
	"recon/pkg/domain"
)

//go:generate mockgen -package mocklearning -source=interface.go -destination=mock/mocklearning.go *
type ProgressTracker interface {
	Get(ctx context.Context, userID domain.UserID) (*domain.Progress, error)
	CompleteLesson(ctx context.Context, userID domain.UserID, lessonID string) (*domain.Progress, error)
	SubmitQuiz(ctx context.Context,
		userID domain.UserID,
		quizID string,
		answers map[string]int) (*domain.Progress, int, error)
	GuessPhishing(ctx context.Context, userID domain.UserID, emailID int) (*domain.Progress, bool, error)
	Reset(ctx context.Context, userID domain.UserID) error
}
