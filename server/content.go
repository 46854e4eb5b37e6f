package server

import (
	"context"
	"time"
)

// The document store, contact form proxy, and analytics emitter are external
// collaborators of this service. Only their contracts live here; the catalogue
// endpoints work with all three absent.

// Event is a community event document.
type Event struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	ImageURL        string    `json:"imageUrl,omitempty"`
	EventDate       time.Time `json:"eventDate"`
	Location        string    `json:"location,omitempty"`
	City            string    `json:"city,omitempty"`
	RegistrationURL string    `json:"registrationUrl,omitempty"`
	IsActive        bool      `json:"isActive"`
}

// Course is an academy course document.
type Course struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description,omitempty"`
	ThumbnailURL  string   `json:"thumbnailUrl,omitempty"`
	Difficulty    string   `json:"difficulty,omitempty"`
	Professor     string   `json:"professor,omitempty"`
	Link          string   `json:"link,omitempty"`
	IsPublished   bool     `json:"isPublished"`
	LearningPaths []string `json:"learningPaths,omitempty"`
}

// ContentStore reads event and course documents.
type ContentStore interface {
	ActiveEvents(ctx context.Context) ([]Event, error)
	PublishedCourses(ctx context.Context) ([]Course, error)
}

// ContactMessage is one contact-form submission.
type ContactMessage struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	Company     string `json:"company,omitempty"`
	ProjectType string `json:"projectType,omitempty"`
	Message     string `json:"message"`
}

// ContactSink forwards contact-form submissions.
type ContactSink interface {
	Submit(ctx context.Context, msg ContactMessage) error
}

// AnalyticsEmitter records product analytics events.
type AnalyticsEmitter interface {
	Emit(ctx context.Context, name string, params map[string]string)
}
