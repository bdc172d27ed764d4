package book

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// CreateBookRequest adds a catalog entry. New books always start available.
type CreateBookRequest struct {
	Title           string `json:"title"`
	Author          string `json:"author"`
	Description     string `json:"description,omitempty"`
	GenreID         string `json:"genre_id,omitempty"`
	ISBN            string `json:"isbn,omitempty"`
	Publisher       string `json:"publisher,omitempty"`
	PublicationYear int    `json:"publication_year,omitempty"`
	Pages           int    `json:"pages,omitempty"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Author,
			validation.Required.Error("author is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.GenreID,
			validation.When(r.GenreID != "", is.UUIDv4.Error("genre_id must be a UUID")),
		),
		validation.Field(&r.PublicationYear,
			validation.When(r.PublicationYear != 0, validation.Min(1000), validation.Max(time.Now().Year()+1)),
		),
		validation.Field(&r.Pages,
			validation.When(r.Pages != 0, validation.Min(1)),
		),
	)
}

// UpdateBookRequest replaces the catalog fields of a book. Circulation
// fields (status, borrower, due date) are not part of this contract.
type UpdateBookRequest struct {
	Title           string `json:"title"`
	Author          string `json:"author"`
	Description     string `json:"description,omitempty"`
	GenreID         string `json:"genre_id,omitempty"`
	ISBN            string `json:"isbn,omitempty"`
	Publisher       string `json:"publisher,omitempty"`
	PublicationYear int    `json:"publication_year,omitempty"`
	Pages           int    `json:"pages,omitempty"`
}

func (r UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Author,
			validation.Required.Error("author is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.GenreID,
			validation.When(r.GenreID != "", is.UUIDv4.Error("genre_id must be a UUID")),
		),
		validation.Field(&r.PublicationYear,
			validation.When(r.PublicationYear != 0, validation.Min(1000), validation.Max(time.Now().Year()+1)),
		),
		validation.Field(&r.Pages,
			validation.When(r.Pages != 0, validation.Min(1)),
		),
	)
}
