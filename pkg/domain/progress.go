package domain

import (
	"slices"
	"time"
)

// Progress is the learning state of a single user.
type Progress struct {
	UserID UserID `json:"userId"`

	// LessonsCompleted holds the IDs of completed lessons.
	LessonsCompleted map[string]bool `json:"lessonsCompleted"`
	// QuizScores maps quiz IDs to the latest percentage score.
	QuizScores map[string]int `json:"quizScores"`
	// XP is the accumulated experience.
	XP int `json:"xp"`
	// Badges lists awarded badges in award order, without duplicates.
	Badges []string `json:"badges"`
	// Tracks counts completed lessons per track ID.
	Tracks map[string]int `json:"tracks"`

	UpdatedAt time.Time `json:"updatedAt"`
}

// NewProgress returns an empty progress for the given user.
func NewProgress(userID UserID) *Progress {
	return &Progress{
		UserID:           userID,
		LessonsCompleted: map[string]bool{},
		QuizScores:       map[string]int{},
		Badges:           []string{},
		Tracks:           map[string]int{},
	}
}

// HasBadge reports whether the badge has already been awarded.
func (p *Progress) HasBadge(badge string) bool {
	return slices.Contains(p.Badges, badge)
}
