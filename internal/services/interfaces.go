// Package services wires the catalog's collaborators together behind
// small consumer-side interfaces, so the UI layer depends on behavior
// rather than concrete repositories.
package services

import (
	"context"

	"github.com/martioalanshori/bookcatalog/internal/entities"
	"github.com/martioalanshori/bookcatalog/internal/metadata"
)

// BookStore is the slice of the books repository the catalog service
// needs for persisting drafts.
type BookStore interface {
	Insert(book *entities.Book) (uint, error)
	GetByID(id uint) (*entities.Book, error)
}

// MetadataLookup resolves an ISBN to a bibliographic record.
// Implemented by *metadata.Client.
type MetadataLookup interface {
	LookupISBN(ctx context.Context, isbn string) (*metadata.BookInfo, error)
}
