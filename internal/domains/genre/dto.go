package genre

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// CreateGenreRequest adds a genre, optionally under a parent. ParentID is a
// UUID string; empty means a root genre.
type CreateGenreRequest struct {
	Name        string `json:"name"`
	ParentID    string `json:"parent_id,omitempty"`
	Description string `json:"description,omitempty"`
}

func (r CreateGenreRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 100),
		),
		validation.Field(&r.ParentID,
			validation.When(r.ParentID != "", is.UUIDv4.Error("parent_id must be a UUID")),
		),
		validation.Field(&r.Description,
			validation.Length(0, 500),
		),
	)
}

// UpdateGenreRequest renames, re-describes and/or reparents a genre. An
// empty ParentID moves the genre to the root level.
type UpdateGenreRequest struct {
	Name        string `json:"name"`
	ParentID    string `json:"parent_id,omitempty"`
	Description string `json:"description,omitempty"`
}

func (r UpdateGenreRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 100),
		),
		validation.Field(&r.ParentID,
			validation.When(r.ParentID != "", is.UUIDv4.Error("parent_id must be a UUID")),
		),
		validation.Field(&r.Description,
			validation.Length(0, 500),
		),
	)
}
