// Package books provides database operations for the book catalog: CRUD
// plus the search, filter, and category views derived from it.
//
// # Usage
//
//	repo := books.NewRepository(db)
//	id, err := repo.Insert(&draft)
//	book, err := repo.GetByID(id)
//
// Rows whose stored status cannot be decoded are treated as corrupt:
// list operations skip and log them, single-row reads return a
// *CorruptRecordError.
package books

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/martioalanshori/bookcatalog/internal/entities"
)

// bookRecord is the persisted row shape of the books table. Status is
// kept as the raw stored string so decoding into the BookStatus enum is
// explicit and can fail loudly.
type bookRecord struct {
	ID          uint `gorm:"primaryKey"`
	Title       string
	Author      string
	ISBN        string
	Year        int
	Category    string
	Status      string
	Description string
}

func (bookRecord) TableName() string {
	return "books"
}

func encode(book *entities.Book) bookRecord {
	return bookRecord{
		ID:          book.ID,
		Title:       book.Title,
		Author:      book.Author,
		ISBN:        book.ISBN,
		Year:        book.Year,
		Category:    book.Category,
		Status:      string(book.Status),
		Description: book.Description,
	}
}

func decode(rec *bookRecord) (*entities.Book, error) {
	status, err := entities.ParseBookStatus(rec.Status)
	if err != nil {
		return nil, &CorruptRecordError{ID: rec.ID, Cause: err}
	}
	return &entities.Book{
		ID:          rec.ID,
		Title:       rec.Title,
		Author:      rec.Author,
		ISBN:        rec.ISBN,
		Year:        rec.Year,
		Category:    rec.Category,
		Status:      status,
		Description: rec.Description,
	}, nil
}

// CorruptRecordError reports a persisted row that cannot be decoded
// into a valid Book.
type CorruptRecordError struct {
	ID    uint
	Cause error
}

func (e *CorruptRecordError) Error() string {
	return fmt.Sprintf("corrupt book record %d: %v", e.ID, e.Cause)
}

func (e *CorruptRecordError) Unwrap() error {
	return e.Cause
}

// Repository is the exclusive owner of persisted book records.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Insert persists a draft and returns the newly assigned id. Any id on
// the draft is ignored; ids are assigned by the store and never reused.
func (r *Repository) Insert(book *entities.Book) (uint, error) {
	if err := book.Validate(); err != nil {
		return 0, err
	}

	rec := encode(book)
	rec.ID = 0
	if err := r.db.Create(&rec).Error; err != nil {
		return 0, fmt.Errorf("insert book: %w", err)
	}
	return rec.ID, nil
}

// Update replaces every field of the record matching book.ID, which is
// itself immutable. The false return means no record carries that id;
// that is a normal outcome, not an error.
func (r *Repository) Update(book *entities.Book) (bool, error) {
	if err := book.Validate(); err != nil {
		return false, err
	}
	if book.ID == 0 {
		return false, &entities.ValidationError{Field: "id", Reason: "must be set for update"}
	}

	rec := encode(book)
	result := r.db.Model(&bookRecord{}).Where("id = ?", book.ID).Updates(map[string]any{
		"title":       rec.Title,
		"author":      rec.Author,
		"isbn":        rec.ISBN,
		"year":        rec.Year,
		"category":    rec.Category,
		"status":      rec.Status,
		"description": rec.Description,
	})
	if result.Error != nil {
		return false, fmt.Errorf("update book %d: %w", book.ID, result.Error)
	}
	return result.RowsAffected == 1, nil
}

// Delete removes the record with the given id. Hard delete; false means
// no such record existed.
func (r *Repository) Delete(id uint) (bool, error) {
	result := r.db.Delete(&bookRecord{}, id)
	if result.Error != nil {
		return false, fmt.Errorf("delete book %d: %w", id, result.Error)
	}
	return result.RowsAffected == 1, nil
}

// GetByID retrieves a single book. Absence is reported as (nil, nil),
// not an error.
func (r *Repository) GetByID(id uint) (*entities.Book, error) {
	var rec bookRecord
	err := r.db.First(&rec, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get book %d: %w", id, err)
	}
	return decode(&rec)
}

// GetAll returns every book ordered by title ascending. The ordering is
// SQLite's BINARY collation, i.e. byte-wise and case-sensitive.
func (r *Repository) GetAll() ([]entities.Book, error) {
	var recs []bookRecord
	if err := r.db.Order("title ASC").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return decodeAll(recs), nil
}

// decodeAll converts rows to books, skipping and logging any corrupt
// row so one bad record does not sink the whole read.
func decodeAll(recs []bookRecord) []entities.Book {
	books := make([]entities.Book, 0, len(recs))
	for i := range recs {
		book, err := decode(&recs[i])
		if err != nil {
			log.Printf("Skipping %v", err)
			continue
		}
		books = append(books, *book)
	}
	return books
}
