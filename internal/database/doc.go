// Package database provides the data access layer for the book catalog.
//
// # Architecture
//
// The layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup, schema migration, sample seeding
//	├── books/           # Book CRUD, search, filtering, category aggregation
//	└── stats/           # Read-only catalog statistics
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type with domain-specific
// operations over the shared *gorm.DB:
//
//	db, err := database.NewDatabase("./catalog.db")
//
//	booksRepo := books.NewRepository(db.DB)
//	statsRepo := stats.NewRepository(db.DB)
//
//	id, err := booksRepo.Insert(&draft)
//	results, err := booksRepo.Search("orwell")
//
// # Concurrency
//
// A Database is owned by a single process. The *gorm.DB handle is safe
// for concurrent use within that process; SQLite serializes writes, and
// every mutating operation is atomic from the caller's perspective. All
// operations may block on I/O, so callers with an interaction loop
// should run them off that loop.
package database
