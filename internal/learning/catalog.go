// Package learning holds the security awareness course catalog, quiz grading,
// the password strength estimator and per-user learning progress.
package learning

import (
	"fmt"
	"slices"
)

// Track groups lessons into a learning path.
type Track struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Lesson is a single short course unit.
type Lesson struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Summary    string   `json:"summary"`
	Difficulty string   `json:"difficulty"`
	Category   string   `json:"category"`
	Track      string   `json:"track"`
	Bullets    []string `json:"bullets"`
	// XP is awarded once, on completion.
	XP int `json:"xp"`
}

// Question is a multiple choice question. Answer is the index of the correct
// option and is never serialized.
type Question struct {
	ID      string   `json:"id"`
	Text    string   `json:"text"`
	Options []string `json:"options"`
	Answer  int      `json:"-"`
}

// Quiz is a list of questions graded as a whole.
type Quiz struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

// Resource is an external reading recommendation.
type Resource struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Type  string `json:"type"`
	URL   string `json:"url"`
}

// Catalog is an immutable, validated set of course content.
type Catalog struct {
	tracks    []Track
	lessons   []Lesson
	quizzes   []Quiz
	resources []Resource
	phishing  []PhishingEmail

	lessonByID   map[string]int
	quizByID     map[string]int
	phishingByID map[int]int
}

// Content is the client facing view of a catalog.
type Content struct {
	Tracks    []Track    `json:"tracks"`
	Lessons   []Lesson   `json:"lessons"`
	Quizzes   []Quiz     `json:"quizzes"`
	Resources []Resource `json:"resources"`
	// PhishingEmails is the inbox of the phishing simulation.
	PhishingEmails []PhishingEmail `json:"phishingEmails"`
}

// NewCatalog validates the content: IDs are unique, every lesson belongs to a
// known track and every answer index points at an option.
func NewCatalog(tracks []Track, lessons []Lesson, quizzes []Quiz, resources []Resource) (*Catalog, error) {
	c := &Catalog{
		tracks:     slices.Clone(tracks),
		lessons:    slices.Clone(lessons),
		quizzes:    slices.Clone(quizzes),
		resources:  slices.Clone(resources),
		lessonByID: make(map[string]int, len(lessons)),
		quizByID:   make(map[string]int, len(quizzes)),
	}

	trackIDs := make(map[string]bool, len(tracks))
	for _, t := range tracks {
		if trackIDs[t.ID] {
			return nil, fmt.Errorf("duplicate track %q", t.ID)
		}
		trackIDs[t.ID] = true
	}
	for i, l := range c.lessons {
		if _, ok := c.lessonByID[l.ID]; ok {
			return nil, fmt.Errorf("duplicate lesson %q", l.ID)
		}
		if !trackIDs[l.Track] {
			return nil, fmt.Errorf("lesson %q references unknown track %q", l.ID, l.Track)
		}
		c.lessonByID[l.ID] = i
	}
	for i, q := range c.quizzes {
		if _, ok := c.quizByID[q.ID]; ok {
			return nil, fmt.Errorf("duplicate quiz %q", q.ID)
		}
		if len(q.Questions) == 0 {
			return nil, fmt.Errorf("quiz %q has no questions", q.ID)
		}
		for _, question := range q.Questions {
			if question.Answer < 0 || question.Answer >= len(question.Options) {
				return nil, fmt.Errorf("quiz %q question %q: answer out of range", q.ID, question.ID)
			}
		}
		c.quizByID[q.ID] = i
	}

	return c, nil
}

// WithPhishingEmails returns a copy of c serving emails in the phishing
// simulation. Email IDs must be unique.
func (c *Catalog) WithPhishingEmails(emails []PhishingEmail) (*Catalog, error) {
	out := *c
	out.phishing = slices.Clone(emails)
	out.phishingByID = make(map[int]int, len(emails))
	for i, e := range out.phishing {
		if _, ok := out.phishingByID[e.ID]; ok {
			return nil, fmt.Errorf("duplicate phishing email %d", e.ID)
		}
		out.phishingByID[e.ID] = i
	}

	return &out, nil
}

// Content returns a deep copy of the catalog with quiz answers removed.
func (c *Catalog) Content() Content {
	out := Content{
		Tracks:    slices.Clone(c.tracks),
		Lessons:   make([]Lesson, len(c.lessons)),
		Quizzes:   make([]Quiz, len(c.quizzes)),
		Resources: slices.Clone(c.resources),

		PhishingEmails: slices.Clone(c.phishing),
	}
	for i, l := range c.lessons {
		l.Bullets = slices.Clone(l.Bullets)
		out.Lessons[i] = l
	}
	for i, q := range c.quizzes {
		questions := make([]Question, len(q.Questions))
		for j, question := range q.Questions {
			questions[j] = Question{ID: question.ID, Text: question.Text, Options: slices.Clone(question.Options)}
		}
		q.Questions = questions
		out.Quizzes[i] = q
	}

	return out
}

// Lesson looks up a lesson by ID.
func (c *Catalog) Lesson(id string) (Lesson, bool) {
	i, ok := c.lessonByID[id]
	if !ok {
		return Lesson{}, false
	}

	return c.lessons[i], true
}

// Quiz looks up a quiz by ID, answers included.
func (c *Catalog) Quiz(id string) (Quiz, bool) {
	i, ok := c.quizByID[id]
	if !ok {
		return Quiz{}, false
	}

	return c.quizzes[i], true
}

// PhishingEmail looks up a phishing simulation email by ID.
func (c *Catalog) PhishingEmail(id int) (PhishingEmail, bool) {
	i, ok := c.phishingByID[id]
	if !ok {
		return PhishingEmail{}, false
	}

	return c.phishing[i], true
}

// TrackLessons returns the lessons of a track in catalog order.
func (c *Catalog) TrackLessons(trackID string) []Lesson {
	var out []Lesson
	for _, l := range c.lessons {
		if l.Track == trackID {
			out = append(out, l)
		}
	}

	return out
}
