package services

import (
	"context"
	"fmt"

	"github.com/martioalanshori/bookcatalog/internal/entities"
	"github.com/martioalanshori/bookcatalog/internal/isbn"
	"github.com/martioalanshori/bookcatalog/internal/metadata"
)

// CatalogService implements the scan-to-catalog flow: validate the
// scanned text, look the ISBN up, and persist the resulting draft.
type CatalogService struct {
	store  BookStore
	lookup MetadataLookup
}

func NewCatalogService(store BookStore, lookup MetadataLookup) *CatalogService {
	return &CatalogService{store: store, lookup: lookup}
}

// DraftFromISBN looks up an ISBN and returns an unpersisted book draft.
// Lookup failures (including metadata.ErrNotFound) propagate so the
// caller can fall back to manual entry.
func (s *CatalogService) DraftFromISBN(ctx context.Context, rawISBN string) (*entities.Book, error) {
	info, err := s.lookup.LookupISBN(ctx, rawISBN)
	if err != nil {
		return nil, err
	}
	draft := metadata.ToBookDraft(info, rawISBN)
	return &draft, nil
}

// ImportScan takes raw decoded text from a barcode scan, extracts and
// validates an ISBN, looks it up, and inserts the draft. It returns the
// stored book.
func (s *CatalogService) ImportScan(ctx context.Context, scannedText string) (*entities.Book, error) {
	code := scannedText
	if !isbn.IsValid(code) {
		code = isbn.Extract(scannedText)
	}
	if code == "" || !isbn.IsValid(code) {
		return nil, fmt.Errorf("scanned text %q contains no usable ISBN", scannedText)
	}

	draft, err := s.DraftFromISBN(ctx, code)
	if err != nil {
		return nil, err
	}

	id, err := s.store.Insert(draft)
	if err != nil {
		return nil, err
	}
	draft.ID = id
	return draft, nil
}
