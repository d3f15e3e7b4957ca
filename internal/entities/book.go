package entities

import "fmt"

type BookStatus string

const (
	StatusAvailable BookStatus = "AVAILABLE"
	StatusBorrowed  BookStatus = "BORROWED"
)

// ParseBookStatus maps a stored status string back to a BookStatus.
// Unknown values are an error rather than being coerced: a row carrying
// one is treated as corrupt by the read path.
func ParseBookStatus(s string) (BookStatus, error) {
	switch s {
	case string(StatusAvailable):
		return StatusAvailable, nil
	case string(StatusBorrowed):
		return StatusBorrowed, nil
	}
	return "", fmt.Errorf("unknown book status %q", s)
}

// DefaultCategories is the advisory category list always offered to the
// user. It is merged with categories observed in stored data and never
// constrains what a book's category may be.
var DefaultCategories = []string{
	"Business",
	"Education",
	"Fiction",
	"History",
	"Nonfiction",
	"Religion",
	"Technology",
}

// Book is the catalog's sole persisted entity. ID is assigned by the
// store on insert; a zero ID marks a draft that has not been persisted.
type Book struct {
	ID          uint       `json:"id"`
	Title       string     `json:"title"`
	Author      string     `json:"author"`
	ISBN        string     `json:"isbn,omitempty"`
	Year        int        `json:"year"`
	Category    string     `json:"category"`
	Status      BookStatus `json:"status"`
	Description string     `json:"description,omitempty"`
}

// ValidationError reports caller-supplied data that violates a
// required-field invariant. It is always detected before any store call.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid book: %s %s", e.Field, e.Reason)
}

// Validate checks the required-field invariants. Year is deliberately
// not range-checked; ISBN and description may be empty.
func (b *Book) Validate() error {
	if b.Title == "" {
		return &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if b.Author == "" {
		return &ValidationError{Field: "author", Reason: "must not be empty"}
	}
	if b.Category == "" {
		return &ValidationError{Field: "category", Reason: "must not be empty"}
	}
	if _, err := ParseBookStatus(string(b.Status)); err != nil {
		return &ValidationError{Field: "status", Reason: fmt.Sprintf("must be %s or %s", StatusAvailable, StatusBorrowed)}
	}
	return nil
}
