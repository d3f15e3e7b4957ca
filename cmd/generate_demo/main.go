// Command generate_demo creates a demo catalog database with the sample
// books and prints a short summary.
// Usage: go run cmd/generate_demo/main.go [-db path/to/demo.db]
package main

import (
	"flag"
	"log"
	"os"

	"github.com/martioalanshori/bookcatalog/internal/database"
	"github.com/martioalanshori/bookcatalog/internal/database/books"
	"github.com/martioalanshori/bookcatalog/internal/database/stats"
)

const defaultDemoDatabasePath = "./demo/demo.db"

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	flag.Parse()

	log.Printf("Generating demo database at %s...", *dbPath)

	// Delete existing demo database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing demo database: %v", err)
	}

	// Opening a fresh database creates the table and seeds the samples.
	db, err := database.NewDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	booksRepo := books.NewRepository(db.DB)
	statsRepo := stats.NewRepository(db.DB)

	summary, err := statsRepo.Summary()
	if err != nil {
		log.Fatalf("Failed to read stats: %v", err)
	}
	log.Printf("Seeded %d books (%d available, %d borrowed)", summary.TotalBooks, summary.Available, summary.Borrowed)

	categories, err := booksRepo.Categories()
	if err != nil {
		log.Fatalf("Failed to list categories: %v", err)
	}
	log.Printf("Categories: %v", categories)

	all, err := booksRepo.GetAll()
	if err != nil {
		log.Fatalf("Failed to list books: %v", err)
	}
	for _, b := range all {
		log.Printf("  #%d %s by %s (%d, %s, %s)", b.ID, b.Title, b.Author, b.Year, b.Category, b.Status)
	}
}
