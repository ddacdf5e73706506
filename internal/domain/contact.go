package domain

import (
	"context"
	"time"
)

// Message types accepted by the contact form
const (
	MessageTypeComplaint   = "complaint"
	MessageTypeQuestion    = "question"
	MessageTypeReview      = "review"
	MessageTypeRequest     = "request"
	MessageTypeAppointment = "appointment"
)

// MessageTypes lists the valid contact message types in form order.
var MessageTypes = []string{
	MessageTypeComplaint,
	MessageTypeQuestion,
	MessageTypeReview,
	MessageTypeRequest,
	MessageTypeAppointment,
}

// ContactSubmission is a validated, normalized contact form submission.
// It is never persisted to the database; accepted submissions are exported
// through a MessageStore.
type ContactSubmission struct {
	FirstName   string
	LastName    string
	BirthDate   *time.Time
	Email       string
	MessageType string
	Subject     string
	MinWaitDays int
	Message     string // whitespace-normalized
}

// MessageRecord is the flat export artifact written for an accepted
// contact submission.
type MessageRecord struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Age         string `json:"age"`
	Email       string `json:"email"`
	MessageType string `json:"message_type"`
	Subject     string `json:"subject"`
	MinWaitDays int    `json:"min_wait_days"`
	Message     string `json:"message"`
}

// MessageStore is the record sink for accepted contact submissions.
// Save returns the name of the stored artifact.
type MessageStore interface {
	Save(ctx context.Context, record *MessageRecord) (string, error)
}

type ContactUsecase interface {
	// SubmitMessage builds the export record for a validated submission
	// (derived age string included) and writes it to the message store.
	SubmitMessage(ctx context.Context, sub *ContactSubmission) error
}
