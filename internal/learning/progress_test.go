package learning_test

import (
	"context"
	"errors"
	"recon/internal/learning"
	"recon/pkg/domain"
	"recon/pkg/serrors"
	"recon/pkg/storage"
	mockstorage "recon/pkg/storage/mock"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type progressFixture struct {
	storage *mockstorage.MockStorage
	tx      *mockstorage.MockAllStorage
	tracker learning.ProgressTracker
	userID  domain.UserID
}

func newProgressFixture(t *testing.T) *progressFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &progressFixture{
		storage: mockstorage.NewMockStorage(ctrl),
		tx:      mockstorage.NewMockAllStorage(ctrl),
		userID:  domain.UserID(uuid.New()),
	}
	f.tracker = learning.NewProgressTracker(learning.DefaultCatalog(), f.storage, learning.DefaultOptions())

	return f
}

// expectTx runs the transaction callback against the tx mock, loading
// stored as the current row.
func (f *progressFixture) expectTx(stored *domain.Progress) {
	f.storage.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			return cb(f.tx)
		})
	f.tx.EXPECT().ProgressByUser(gomock.Any(), f.userID, true).Return(stored, nil)
}

// expectSave returns the saved progress unchanged and captures it.
func (f *progressFixture) expectSave(saved **domain.Progress) {
	f.tx.EXPECT().SaveProgress(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p domain.Progress) (*domain.Progress, error) {
			*saved = &p

			return &p, nil
		})
}

func TestProgress_Get(t *testing.T) {
	f := newProgressFixture(t)
	f.storage.EXPECT().ProgressByUser(gomock.Any(), f.userID, false).Return(nil, nil)

	p, err := f.tracker.Get(context.Background(), f.userID)
	require.NoError(t, err)
	require.Equal(t, domain.NewProgress(f.userID), p)

	stored := domain.NewProgress(f.userID)
	stored.XP = 42
	f.storage.EXPECT().ProgressByUser(gomock.Any(), f.userID, false).Return(stored, nil)

	p, err = f.tracker.Get(context.Background(), f.userID)
	require.NoError(t, err)
	require.Equal(t, 42, p.XP)
}

func TestProgress_CompleteLesson(t *testing.T) {
	f := newProgressFixture(t)
	f.expectTx(nil)
	var saved *domain.Progress
	f.expectSave(&saved)

	p, err := f.tracker.CompleteLesson(context.Background(), f.userID, "xss-101")
	require.NoError(t, err)
	require.True(t, p.LessonsCompleted["xss-101"])
	require.Equal(t, 10, p.XP)
	require.Equal(t, map[string]int{"web": 1}, p.Tracks)
	require.Equal(t, saved, p)
}

func TestProgress_CompleteLesson_AlreadyCompleted(t *testing.T) {
	f := newProgressFixture(t)
	stored := domain.NewProgress(f.userID)
	stored.LessonsCompleted["xss-101"] = true
	stored.XP = 10
	stored.Tracks["web"] = 1
	f.expectTx(stored)
	// no SaveProgress expected

	p, err := f.tracker.CompleteLesson(context.Background(), f.userID, "xss-101")
	require.NoError(t, err)
	require.Equal(t, 10, p.XP)
	require.Equal(t, 1, p.Tracks["web"])
}

func TestProgress_CompleteLesson_UnknownLesson(t *testing.T) {
	f := newProgressFixture(t)

	_, err := f.tracker.CompleteLesson(context.Background(), f.userID, "missing")
	require.True(t, errors.Is(err, serrors.ErrNotFound))
}

func TestProgress_SubmitQuiz(t *testing.T) {
	f := newProgressFixture(t)
	stored := domain.NewProgress(f.userID)
	stored.QuizScores["quiz-phishing"] = 100
	stored.XP = 30
	f.expectTx(stored)
	var saved *domain.Progress
	f.expectSave(&saved)

	p, score, err := f.tracker.SubmitQuiz(context.Background(), f.userID, "quiz-phishing", map[string]int{"q1": 0, "q2": 0})
	require.NoError(t, err)
	require.Equal(t, 50, score)
	// previous score is overwritten, bonus is round(50 * 0.1)
	require.Equal(t, 50, p.QuizScores["quiz-phishing"])
	require.Equal(t, 35, p.XP)
	require.Equal(t, saved, p)
}

func TestProgress_SubmitQuiz_UnknownQuiz(t *testing.T) {
	f := newProgressFixture(t)

	_, _, err := f.tracker.SubmitQuiz(context.Background(), f.userID, "missing", nil)
	require.True(t, errors.Is(err, serrors.ErrNotFound))
}

func TestProgress_GuessPhishing_AwardsBadgeOnce(t *testing.T) {
	f := newProgressFixture(t)
	f.expectTx(nil)
	var saved *domain.Progress
	f.expectSave(&saved)

	p, phishing, err := f.tracker.GuessPhishing(context.Background(), f.userID, 1)
	require.NoError(t, err)
	require.True(t, phishing)
	require.Equal(t, []string{learning.BadgePhishingHunter}, p.Badges)
	require.Equal(t, learning.DefaultBadgeXP, p.XP)

	// spotting another phishing email does not award the badge again
	f.expectTx(saved)
	p, phishing, err = f.tracker.GuessPhishing(context.Background(), f.userID, 3)
	require.NoError(t, err)
	require.True(t, phishing)
	require.Equal(t, []string{learning.BadgePhishingHunter}, p.Badges)
	require.Equal(t, learning.DefaultBadgeXP, p.XP)
}

func TestProgress_GuessPhishing_SafeEmailAwardsNothing(t *testing.T) {
	f := newProgressFixture(t)
	f.storage.EXPECT().ProgressByUser(gomock.Any(), f.userID, false).Return(nil, nil)

	p, phishing, err := f.tracker.GuessPhishing(context.Background(), f.userID, 2)
	require.NoError(t, err)
	require.False(t, phishing)
	require.Empty(t, p.Badges)
	require.Zero(t, p.XP)
}

func TestProgress_GuessPhishing_UnknownEmail(t *testing.T) {
	f := newProgressFixture(t)

	_, _, err := f.tracker.GuessPhishing(context.Background(), f.userID, 99)
	require.True(t, errors.Is(err, serrors.ErrNotFound))
}

func TestProgress_StorageFailureRollsBack(t *testing.T) {
	f := newProgressFixture(t)
	boom := errors.New("connection lost")
	f.storage.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			return cb(f.tx)
		})
	f.tx.EXPECT().ProgressByUser(gomock.Any(), f.userID, true).Return(nil, boom)

	_, _, err := f.tracker.GuessPhishing(context.Background(), f.userID, 1)
	require.ErrorIs(t, err, boom)
}

func TestProgress_Reset(t *testing.T) {
	f := newProgressFixture(t)
	f.storage.EXPECT().DeleteProgress(gomock.Any(), f.userID).Return(nil)

	require.NoError(t, f.tracker.Reset(context.Background(), f.userID))
}
