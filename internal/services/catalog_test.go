package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martioalanshori/bookcatalog/internal/entities"
	"github.com/martioalanshori/bookcatalog/internal/metadata"
)

type stubStore struct {
	nextID   uint
	inserted []entities.Book
}

func (s *stubStore) Insert(book *entities.Book) (uint, error) {
	if err := book.Validate(); err != nil {
		return 0, err
	}
	s.nextID++
	stored := *book
	stored.ID = s.nextID
	s.inserted = append(s.inserted, stored)
	return s.nextID, nil
}

func (s *stubStore) GetByID(id uint) (*entities.Book, error) {
	for i := range s.inserted {
		if s.inserted[i].ID == id {
			b := s.inserted[i]
			return &b, nil
		}
	}
	return nil, nil
}

type stubLookup struct {
	info     *metadata.BookInfo
	err      error
	lastISBN string
}

func (s *stubLookup) LookupISBN(_ context.Context, isbn string) (*metadata.BookInfo, error) {
	s.lastISBN = isbn
	if s.err != nil {
		return nil, s.err
	}
	return s.info, nil
}

func TestCatalogService_DraftFromISBN(t *testing.T) {
	lookup := &stubLookup{info: &metadata.BookInfo{
		Title:       "1984",
		Authors:     []metadata.Author{{Name: "George Orwell"}},
		PublishDate: "1949",
		Subjects:    []metadata.Subject{{Name: "Dystopian"}},
	}}
	svc := NewCatalogService(&stubStore{}, lookup)

	draft, err := svc.DraftFromISBN(context.Background(), "9780451524935")
	require.NoError(t, err)
	assert.Zero(t, draft.ID)
	assert.Equal(t, "1984", draft.Title)
	assert.Equal(t, "George Orwell", draft.Author)
	assert.Equal(t, "9780451524935", draft.ISBN)
	assert.Equal(t, entities.StatusAvailable, draft.Status)
}

func TestCatalogService_DraftFromISBN_LookupFailure(t *testing.T) {
	lookup := &stubLookup{err: metadata.ErrNotFound}
	svc := NewCatalogService(&stubStore{}, lookup)

	_, err := svc.DraftFromISBN(context.Background(), "9780451524935")
	assert.ErrorIs(t, err, metadata.ErrNotFound)
}

func TestCatalogService_ImportScan(t *testing.T) {
	store := &stubStore{}
	lookup := &stubLookup{info: &metadata.BookInfo{Title: "Scanned Book"}}
	svc := NewCatalogService(store, lookup)

	book, err := svc.ImportScan(context.Background(), "9780439708180")
	require.NoError(t, err)
	assert.Equal(t, uint(1), book.ID)
	assert.Equal(t, "Scanned Book", book.Title)
	require.Len(t, store.inserted, 1)
	assert.Equal(t, "9780439708180", lookup.lastISBN)
}

func TestCatalogService_ImportScan_ExtractsEmbeddedISBN(t *testing.T) {
	store := &stubStore{}
	lookup := &stubLookup{info: &metadata.BookInfo{Title: "Scanned Book"}}
	svc := NewCatalogService(store, lookup)

	_, err := svc.ImportScan(context.Background(), "ISBN-10 080442957X")
	require.NoError(t, err)
	assert.Equal(t, "080442957X", lookup.lastISBN)
}

func TestCatalogService_ImportScan_RejectsUnusableText(t *testing.T) {
	store := &stubStore{}
	svc := NewCatalogService(store, &stubLookup{info: &metadata.BookInfo{}})

	_, err := svc.ImportScan(context.Background(), "hello world")
	assert.Error(t, err)
	assert.Empty(t, store.inserted)
}
