package database

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/martioalanshori/bookcatalog/internal/database/books"
)

func testDBPath(t *testing.T) (string, func()) {
	dbPath := "./test_database_" + t.Name() + ".db"
	return dbPath, func() { os.Remove(dbPath) }
}

// openRaw opens the file without running migrations, for preparing
// legacy layouts and for post-checks.
func openRaw(t *testing.T, dbPath string) (*gorm.DB, func()) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	}
}

func userVersion(t *testing.T, db *gorm.DB) int {
	var v int
	require.NoError(t, db.Raw("PRAGMA user_version").Scan(&v).Error)
	return v
}

func TestNewDatabase_FreshCreateSeedsSamples(t *testing.T) {
	dbPath, cleanup := testDBPath(t)
	defer cleanup()

	db, err := NewDatabase(dbPath)
	require.NoError(t, err)
	defer db.Close()

	repo := books.NewRepository(db.DB)
	all, err := repo.GetAll()
	require.NoError(t, err)
	assert.Len(t, all, len(sampleBooks))

	// Seed order is storage order; reads come back title-ascending.
	assert.Equal(t, "1984", all[0].Title)

	assert.Equal(t, schemaVersion, userVersion(t, db.DB))
}

func TestNewDatabase_ReopenDoesNotReseed(t *testing.T) {
	dbPath, cleanup := testDBPath(t)
	defer cleanup()

	db, err := NewDatabase(dbPath)
	require.NoError(t, err)

	repo := books.NewRepository(db.DB)
	ok, err := repo.Delete(1)
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, db.Close())

	db, err = NewDatabase(dbPath)
	require.NoError(t, err)
	defer db.Close()

	all, err := books.NewRepository(db.DB).GetAll()
	require.NoError(t, err)
	assert.Len(t, all, len(sampleBooks)-1)
}

func TestNewDatabase_MigratesVersion2AddingISBN(t *testing.T) {
	dbPath, cleanup := testDBPath(t)
	defer cleanup()

	// A version-2 layout: books table without the isbn column.
	raw, closeRaw := openRaw(t, dbPath)
	require.NoError(t, raw.Exec(`CREATE TABLE books (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		author TEXT NOT NULL,
		year INTEGER NOT NULL,
		category TEXT NOT NULL,
		status TEXT NOT NULL,
		description TEXT
	)`).Error)
	require.NoError(t, raw.Exec(
		"INSERT INTO books (title, author, year, category, status, description) VALUES (?, ?, ?, ?, ?, ?)",
		"Old Book", "Old Author", 1990, "History", "AVAILABLE", "pre-migration row",
	).Error)
	require.NoError(t, raw.Exec("PRAGMA user_version = 2").Error)
	closeRaw()

	db, err := NewDatabase(dbPath)
	require.NoError(t, err)
	defer db.Close()

	hasISBN, err := hasColumn(db.DB, "isbn")
	require.NoError(t, err)
	assert.True(t, hasISBN)
	assert.Equal(t, schemaVersion, userVersion(t, db.DB))

	// The pre-existing row survives with an empty isbn.
	book, err := books.NewRepository(db.DB).GetByID(1)
	require.NoError(t, err)
	require.NotNil(t, book)
	assert.Equal(t, "Old Book", book.Title)
	assert.Equal(t, "Old Author", book.Author)
	assert.Empty(t, book.ISBN)
}

func TestNewDatabase_MigrationIsIdempotent(t *testing.T) {
	dbPath, cleanup := testDBPath(t)
	defer cleanup()

	// Version 2 recorded, but the isbn column is already there (a
	// previously interrupted upgrade). The step must tolerate it.
	raw, closeRaw := openRaw(t, dbPath)
	require.NoError(t, raw.Exec(createBooksTableSQL).Error)
	require.NoError(t, raw.Exec("PRAGMA user_version = 2").Error)
	closeRaw()

	db, err := NewDatabase(dbPath)
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, schemaVersion, userVersion(t, db.DB))
}

func TestNewDatabase_DestructiveRecreateOnUnsupportedVersion(t *testing.T) {
	dbPath, cleanup := testDBPath(t)
	defer cleanup()

	raw, closeRaw := openRaw(t, dbPath)
	require.NoError(t, raw.Exec(createBooksTableSQL).Error)
	require.NoError(t, raw.Exec(
		"INSERT INTO books (title, author, isbn, year, category, status, description) VALUES (?, ?, ?, ?, ?, ?, ?)",
		"Doomed", "Author", "", 2010, "Fiction", "AVAILABLE", "",
	).Error)
	require.NoError(t, raw.Exec("PRAGMA user_version = 9").Error)
	closeRaw()

	db, err := NewDatabase(dbPath)
	require.NoError(t, err)
	defer db.Close()

	all, err := books.NewRepository(db.DB).GetAll()
	require.NoError(t, err)
	assert.Len(t, all, len(sampleBooks))
	for _, b := range all {
		assert.NotEqual(t, "Doomed", b.Title)
	}
}

func TestNewDatabase_PreVersioningFileIsRecreated(t *testing.T) {
	dbPath, cleanup := testDBPath(t)
	defer cleanup()

	// An existing books table with user_version 0 predates the
	// versioning scheme entirely; it is an unsupported gap.
	raw, closeRaw := openRaw(t, dbPath)
	require.NoError(t, raw.Exec(createBooksTableSQL).Error)
	require.NoError(t, raw.Exec(
		"INSERT INTO books (title, author, isbn, year, category, status, description) VALUES (?, ?, ?, ?, ?, ?, ?)",
		"Legacy", "Author", "", 2005, "Fiction", "AVAILABLE", "",
	).Error)
	closeRaw()

	db, err := NewDatabase(dbPath)
	require.NoError(t, err)
	defer db.Close()

	all, err := books.NewRepository(db.DB).GetAll()
	require.NoError(t, err)
	assert.Len(t, all, len(sampleBooks))
	assert.Equal(t, schemaVersion, userVersion(t, db.DB))
}
