package database

import (
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/martioalanshori/bookcatalog/internal/database/books"
	"github.com/martioalanshori/bookcatalog/internal/entities"
)

// schemaVersion is the current generation of the books table, tracked
// on disk via PRAGMA user_version. Version 2->3 added the isbn column.
const schemaVersion = 3

const createBooksTableSQL = `
CREATE TABLE books (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	author TEXT NOT NULL,
	isbn TEXT,
	year INTEGER NOT NULL,
	category TEXT NOT NULL,
	status TEXT NOT NULL,
	description TEXT
)`

var sampleBooks = []entities.Book{
	{Title: "Harry Potter and the Philosopher's Stone", Author: "J.K. Rowling", ISBN: "9780439708180", Year: 1997, Category: "Fantasy", Status: entities.StatusAvailable, Description: "First book of the Harry Potter series"},
	{Title: "The Lord of the Rings", Author: "J.R.R. Tolkien", ISBN: "9780547928210", Year: 1954, Category: "Fantasy", Status: entities.StatusAvailable, Description: "Epic fantasy novel"},
	{Title: "To Kill a Mockingbird", Author: "Harper Lee", ISBN: "9780446310789", Year: 1960, Category: "Fiction", Status: entities.StatusBorrowed, Description: "Classic American novel"},
	{Title: "1984", Author: "George Orwell", ISBN: "9780451524935", Year: 1949, Category: "Dystopian", Status: entities.StatusAvailable, Description: "Dystopian social science fiction"},
	{Title: "Pride and Prejudice", Author: "Jane Austen", ISBN: "9780141439518", Year: 1813, Category: "Romance", Status: entities.StatusAvailable, Description: "Classic romance novel"},
}

type Database struct {
	DB *gorm.DB
}

// NewDatabase opens (or creates) the catalog database at dbPath and
// brings the books table up to the current schema version. A migration
// failure aborts the open; there is no partially-initialized state.
func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Transaction(migrate); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return &Database{DB: db}, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// migrate evolves the on-disk books table to schemaVersion. Forward
// steps are applied in order; a stored version with no known upgrade
// path triggers a logged destructive recreate.
func migrate(db *gorm.DB) error {
	var version int
	if err := db.Raw("PRAGMA user_version").Scan(&version).Error; err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}

	switch {
	case !db.Migrator().HasTable("books"):
		if err := createAndSeed(db); err != nil {
			return err
		}
	case version == schemaVersion:
		// Already current.
	case version >= 1 && version < schemaVersion:
		if err := upgrade(db, version); err != nil {
			return err
		}
	default:
		// Unsupported version gap. Deliberate destructive fallback:
		// drop the table and start over, discarding existing data.
		log.Printf("Unsupported books schema version %d, recreating table (existing data is discarded)", version)
		if err := db.Exec("DROP TABLE IF EXISTS books").Error; err != nil {
			return fmt.Errorf("drop books table: %w", err)
		}
		if err := createAndSeed(db); err != nil {
			return err
		}
	}

	if err := db.Exec(fmt.Sprintf("PRAGMA user_version = %d", schemaVersion)).Error; err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}
	return nil
}

// createAndSeed builds a fresh books table and loads the sample
// catalog. Seeding happens only here, so it runs at most once for a
// given table's lifetime.
func createAndSeed(db *gorm.DB) error {
	if err := db.Exec(createBooksTableSQL).Error; err != nil {
		return fmt.Errorf("create books table: %w", err)
	}
	log.Printf("Books table created, seeding %d sample books", len(sampleBooks))

	repo := books.NewRepository(db)
	for _, book := range sampleBooks {
		if _, err := repo.Insert(&book); err != nil {
			return fmt.Errorf("seed sample book %q: %w", book.Title, err)
		}
	}
	return nil
}

// upgrade applies the forward migration steps from the stored version.
// Each step is idempotent so a reapplied step against an
// already-migrated table is harmless.
func upgrade(db *gorm.DB, from int) error {
	for v := from; v < schemaVersion; v++ {
		switch v {
		case 1:
			// Version 1 -> 2 carried no structural change.
			log.Printf("Migrating books table from version 1 to 2")
		case 2:
			log.Printf("Migrating books table from version 2 to 3: adding isbn column")
			hasISBN, err := hasColumn(db, "isbn")
			if err != nil {
				return err
			}
			if !hasISBN {
				if err := db.Exec("ALTER TABLE books ADD COLUMN isbn TEXT").Error; err != nil {
					return fmt.Errorf("add isbn column: %w", err)
				}
			}
		}
	}
	return nil
}

func hasColumn(db *gorm.DB, name string) (bool, error) {
	var count int
	err := db.Raw("SELECT COUNT(*) FROM pragma_table_info('books') WHERE name = ?", name).Scan(&count).Error
	if err != nil {
		return false, fmt.Errorf("inspect books table: %w", err)
	}
	return count > 0, nil
}
