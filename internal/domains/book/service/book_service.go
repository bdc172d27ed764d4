package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"library-backend/internal/domains/book"
	"library-backend/internal/domains/genre"
	"library-backend/internal/shared/utils"
	"library-backend/pkg/logger"
)

type bookService struct {
	repo      book.Repository
	genreRepo genre.Repository
}

func NewBookService(repo book.Repository, genreRepo genre.Repository) book.Service {
	return &bookService{repo: repo, genreRepo: genreRepo}
}

func (s *bookService) Create(ctx context.Context, req book.CreateBookRequest) (*book.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	genreID, err := s.resolveGenre(ctx, req.GenreID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	b := &book.Book{
		ID:              uuid.New(),
		Title:           strings.TrimSpace(req.Title),
		Author:          strings.TrimSpace(req.Author),
		Description:     utils.OptionalString(req.Description),
		GenreID:         genreID,
		ISBN:            utils.OptionalString(req.ISBN),
		Publisher:       utils.OptionalString(req.Publisher),
		PublicationYear: optionalInt(req.PublicationYear),
		Pages:           optionalInt(req.Pages),
		Status:          book.StatusAvailable,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		logger.Error("create book failed", err)
		return nil, err
	}

	logger.Info("book created", map[string]interface{}{
		"id":    b.ID.String(),
		"title": b.Title,
	})
	return b, nil
}

func (s *bookService) GetByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *bookService) Update(ctx context.Context, id uuid.UUID, req book.UpdateBookRequest) (*book.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	genreID, err := s.resolveGenre(ctx, req.GenreID)
	if err != nil {
		return nil, err
	}

	b.Title = strings.TrimSpace(req.Title)
	b.Author = strings.TrimSpace(req.Author)
	b.Description = utils.OptionalString(req.Description)
	b.GenreID = genreID
	b.ISBN = utils.OptionalString(req.ISBN)
	b.Publisher = utils.OptionalString(req.Publisher)
	b.PublicationYear = optionalInt(req.PublicationYear)
	b.Pages = optionalInt(req.Pages)
	b.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, b); err != nil {
		logger.Error("update book failed", err)
		return nil, err
	}

	return b, nil
}

func (s *bookService) List(ctx context.Context, filter book.Filter) ([]book.Book, error) {
	if filter.Status != "" && !filter.Status.IsValid() {
		return nil, book.ErrInvalidStatus
	}
	return s.repo.List(ctx, filter)
}

func (s *bookService) Stats(ctx context.Context) (*book.Stats, error) {
	return s.repo.Stats(ctx)
}

// resolveGenre validates that the referenced genre exists. Empty input means
// no genre.
func (s *bookService) resolveGenre(ctx context.Context, raw string) (*uuid.UUID, error) {
	if raw == "" {
		return nil, nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, genre.ErrGenreNotFound
	}

	if _, err := s.genreRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, genre.ErrGenreNotFound) {
			return nil, genre.ErrGenreNotFound
		}
		return nil, err
	}

	return &id, nil
}

func optionalInt(value int) *int {
	if value == 0 {
		return nil
	}
	return &value
}
