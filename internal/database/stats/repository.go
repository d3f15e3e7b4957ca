// Package stats provides read-only aggregate views over the catalog for
// the statistics screen: status totals, category and year breakdowns.
package stats

import (
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/martioalanshori/bookcatalog/internal/entities"
)

// consolidated folds language-variant spellings of a category into one
// display name. This is purely a presentation-time aggregation for
// statistics; stored categories and the category filter are untouched.
var consolidated = map[string]string{
	"fiction":  "Fiction",
	"fiksi":    "Fiction",
	"business": "Business",
	"bisnis":   "Business",
	"romance":  "Romance",
	"romansa":  "Romance",
	"fantasy":  "Fantasy",
	"fantasi":  "Fantasy",
}

type Summary struct {
	TotalBooks int64
	Available  int64
	Borrowed   int64
}

type CategoryCount struct {
	Category string
	Count    int64
}

type YearCount struct {
	Year  int
	Count int64
}

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Summary returns the total, available, and borrowed book counts.
func (r *Repository) Summary() (Summary, error) {
	var s Summary
	if err := r.db.Table("books").Count(&s.TotalBooks).Error; err != nil {
		return Summary{}, fmt.Errorf("count books: %w", err)
	}
	if err := r.db.Table("books").Where("status = ?", string(entities.StatusAvailable)).Count(&s.Available).Error; err != nil {
		return Summary{}, fmt.Errorf("count available books: %w", err)
	}
	if err := r.db.Table("books").Where("status = ?", string(entities.StatusBorrowed)).Count(&s.Borrowed).Error; err != nil {
		return Summary{}, fmt.Errorf("count borrowed books: %w", err)
	}
	return s, nil
}

// CategoryCounts returns per-category book counts with variant
// spellings consolidated, sorted by count descending (category name
// ascending on ties).
func (r *Repository) CategoryCounts() ([]CategoryCount, error) {
	var rows []CategoryCount
	err := r.db.Table("books").
		Select("category, COUNT(*) AS count").
		Group("category").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("count books by category: %w", err)
	}

	merged := make(map[string]int64, len(rows))
	for _, row := range rows {
		name := row.Category
		if display, ok := consolidated[strings.ToLower(name)]; ok {
			name = display
		}
		merged[name] += row.Count
	}

	counts := make([]CategoryCount, 0, len(merged))
	for name, count := range merged {
		counts = append(counts, CategoryCount{Category: name, Count: count})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Category < counts[j].Category
	})
	return counts, nil
}

// TopCategories returns at most n of the largest consolidated
// categories.
func (r *Repository) TopCategories(n int) ([]CategoryCount, error) {
	counts, err := r.CategoryCounts()
	if err != nil {
		return nil, err
	}
	if n < len(counts) {
		counts = counts[:n]
	}
	return counts, nil
}

// YearCounts returns per-publication-year book counts, sorted by year
// ascending.
func (r *Repository) YearCounts() ([]YearCount, error) {
	var rows []YearCount
	err := r.db.Table("books").
		Select("year, COUNT(*) AS count").
		Group("year").
		Order("year ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("count books by year: %w", err)
	}
	return rows, nil
}
