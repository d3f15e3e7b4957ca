package books

import (
	"fmt"
	"sort"

	"github.com/martioalanshori/bookcatalog/internal/entities"
)

// CategoryAll is the sentinel category meaning "no category filter".
const CategoryAll = "All"

// Search returns all books where query is a case-insensitive substring
// of title, author, or ISBN, ordered by title ascending. A blank query
// is equivalent to GetAll.
func (r *Repository) Search(query string) ([]entities.Book, error) {
	if query == "" {
		return r.GetAll()
	}

	var recs []bookRecord
	searchPattern := "%" + query + "%"
	err := r.db.
		Where("LOWER(title) LIKE LOWER(?) OR LOWER(author) LIKE LOWER(?) OR LOWER(isbn) LIKE LOWER(?)", searchPattern, searchPattern, searchPattern).
		Order("title ASC").
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("search books: %w", err)
	}
	return decodeAll(recs), nil
}

// ByStatus returns books with exactly the given status, title-ordered.
// An empty status means no filter and returns all books.
func (r *Repository) ByStatus(status entities.BookStatus) ([]entities.Book, error) {
	if status == "" {
		return r.GetAll()
	}

	var recs []bookRecord
	err := r.db.Where("status = ?", string(status)).Order("title ASC").Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("filter books by status: %w", err)
	}
	return decodeAll(recs), nil
}

// ByCategory returns books whose category matches exactly
// (case-sensitive), title-ordered. An empty category or CategoryAll
// returns all books.
func (r *Repository) ByCategory(category string) ([]entities.Book, error) {
	if category == "" || category == CategoryAll {
		return r.GetAll()
	}

	var recs []bookRecord
	err := r.db.Where("category = ?", category).Order("title ASC").Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("filter books by category: %w", err)
	}
	return decodeAll(recs), nil
}

// Categories returns the categories observed in stored data unioned
// with the advisory default list, deduplicated and sorted ascending.
// Recomputed on every call so a freshly inserted category shows up
// immediately; never empty, even on an empty store.
func (r *Repository) Categories() ([]string, error) {
	var stored []string
	err := r.db.Model(&bookRecord{}).Distinct("category").Pluck("category", &stored).Error
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	seen := make(map[string]bool, len(stored)+len(entities.DefaultCategories))
	categories := make([]string, 0, len(stored)+len(entities.DefaultCategories))
	for _, c := range stored {
		if !seen[c] {
			seen[c] = true
			categories = append(categories, c)
		}
	}
	for _, c := range entities.DefaultCategories {
		if !seen[c] {
			seen[c] = true
			categories = append(categories, c)
		}
	}
	sort.Strings(categories)
	return categories, nil
}
