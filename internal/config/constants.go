package config

const (
	DefaultDatabasePath       = "./catalog.db"
	DefaultOpenLibraryBaseURL = "https://openlibrary.org"
)
