package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"library-backend/internal/domains/genre"
	"library-backend/internal/shared/utils"
	"library-backend/pkg/cache"
	"library-backend/pkg/logger"
)

const (
	treeCacheKey = "genres:tree"
	flatCacheKey = "genres:flat"
	cacheTTL     = 10 * time.Minute
)

type genreService struct {
	repo  genre.Repository
	cache cache.Cache
}

func NewGenreService(repo genre.Repository, c cache.Cache) genre.Service {
	return &genreService{repo: repo, cache: c}
}

func (s *genreService) Create(ctx context.Context, req genre.CreateGenreRequest) (*genre.Genre, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)

	exists, err := s.repo.ExistsByName(ctx, name, nil)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, genre.ErrDuplicateName
	}

	level := 1
	var parentID *uuid.UUID
	if req.ParentID != "" {
		pid, err := uuid.Parse(req.ParentID)
		if err != nil {
			return nil, genre.ErrParentNotFound
		}

		parent, err := s.repo.GetByID(ctx, pid)
		if err != nil {
			if errors.Is(err, genre.ErrGenreNotFound) {
				return nil, genre.ErrParentNotFound
			}
			return nil, err
		}

		level = parent.Level + 1
		if level > genre.MaxDepth {
			return nil, genre.ErrMaxDepthExceeded
		}
		parentID = &pid
	}

	now := time.Now().UTC()
	g := &genre.Genre{
		ID:          uuid.New(),
		Name:        name,
		ParentID:    parentID,
		Level:       level,
		Description: utils.OptionalString(req.Description),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, g); err != nil {
		logger.Error("create genre failed", err)
		return nil, err
	}

	s.invalidate(ctx)
	logger.Info("genre created", map[string]interface{}{
		"id":    g.ID.String(),
		"name":  g.Name,
		"level": g.Level,
	})
	return g, nil
}

func (s *genreService) GetByID(ctx context.Context, id uuid.UUID) (*genre.Genre, error) {
	return s.repo.GetByID(ctx, id)
}

// Update renames and/or reparents a genre. Reparenting walks the new
// parent's ancestor chain to refuse cycles and cascades level recomputation
// over the moved subtree, so level(child) == level(parent)+1 holds for every
// descendant afterwards.
func (s *genreService) Update(ctx context.Context, id uuid.UUID, req genre.UpdateGenreRequest) (*genre.Genre, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	g, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	exists, err := s.repo.ExistsByName(ctx, name, &id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, genre.ErrDuplicateName
	}

	var newParentID *uuid.UUID
	if req.ParentID != "" {
		pid, err := uuid.Parse(req.ParentID)
		if err != nil {
			return nil, genre.ErrParentNotFound
		}
		newParentID = &pid
	}

	levelUpdates := map[uuid.UUID]int{}

	if !sameParent(g.ParentID, newParentID) {
		newLevel := 1

		genres, err := s.repo.List(ctx)
		if err != nil {
			return nil, err
		}

		if newParentID != nil {
			if *newParentID == id || genre.IsDescendant(genres, id, *newParentID) {
				return nil, genre.ErrCycleDetected
			}

			parent, err := s.repo.GetByID(ctx, *newParentID)
			if err != nil {
				if errors.Is(err, genre.ErrGenreNotFound) {
					return nil, genre.ErrParentNotFound
				}
				return nil, err
			}
			newLevel = parent.Level + 1
		}

		// The whole subtree must fit under the depth cap, not just the
		// moved node.
		if newLevel+genre.SubtreeDepth(genres, id)-1 > genre.MaxDepth {
			return nil, genre.ErrMaxDepthExceeded
		}

		levelUpdates = genre.SubtreeLevels(genres, id, newLevel)
		g.ParentID = newParentID
		g.Level = newLevel
	}

	g.Name = name
	g.Description = utils.OptionalString(req.Description)
	g.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, g, levelUpdates); err != nil {
		logger.Error("update genre failed", err)
		return nil, err
	}

	s.invalidate(ctx)
	return g, nil
}

func (s *genreService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	hasChildren, err := s.repo.HasChildren(ctx, id)
	if err != nil {
		return err
	}
	if hasChildren {
		return genre.ErrHasChildren
	}

	inUse, err := s.repo.InUseByBooks(ctx, id)
	if err != nil {
		return err
	}
	if inUse {
		return genre.ErrGenreInUse
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		logger.Error("delete genre failed", err)
		return err
	}

	s.invalidate(ctx)
	return nil
}

func (s *genreService) List(ctx context.Context) ([]genre.Genre, error) {
	return s.repo.List(ctx)
}

func (s *genreService) Tree(ctx context.Context) ([]*genre.TreeNode, error) {
	var cached []*genre.TreeNode
	if hit, err := s.cache.Get(ctx, treeCacheKey, &cached); err == nil && hit {
		return cached, nil
	}

	genres, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	tree := genre.BuildForest(genres)
	if err := s.cache.Set(ctx, treeCacheKey, tree, cacheTTL); err != nil {
		logger.Warn("genre tree cache set failed", map[string]interface{}{"error": err.Error()})
	}
	return tree, nil
}

func (s *genreService) Flattened(ctx context.Context) ([]genre.Entry, error) {
	var cached []genre.Entry
	if hit, err := s.cache.Get(ctx, flatCacheKey, &cached); err == nil && hit {
		return cached, nil
	}

	genres, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	entries := genre.Materialize(genres)
	if err := s.cache.Set(ctx, flatCacheKey, entries, cacheTTL); err != nil {
		logger.Warn("genre list cache set failed", map[string]interface{}{"error": err.Error()})
	}
	return entries, nil
}

func (s *genreService) invalidate(ctx context.Context) {
	if err := s.cache.Delete(ctx, treeCacheKey, flatCacheKey); err != nil {
		logger.Warn("genre cache invalidation failed", map[string]interface{}{"error": err.Error()})
	}
}

func sameParent(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
