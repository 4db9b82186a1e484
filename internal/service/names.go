package service

import (
	"context"
	"fmt"

	"projtrack/internal/models"
	"projtrack/pkg/lookupcache"

	"github.com/sirupsen/logrus"
)

// Names projections of the profile and project tables. Catalog projections are keyed
// by their table name.
const (
	namesFaculty  = "faculty"
	namesStudents = "students"
	namesProjects = "projects"
)

func namesKey(resource string) string {
	return "names:" + resource
}

// loadNames serves a names projection from the cache, falling back to load on a miss
// or a cache failure. The loaded list is cached only if no write invalidated the key
// while it was being read.
func loadNames(
	ctx context.Context,
	cache *lookupcache.Cache,
	logger *logrus.Logger,
	resource string,
	load func(ctx context.Context) ([]models.NameEntry, error),
) ([]models.NameEntry, error) {
	key := namesKey(resource)

	var entries []models.NameEntry
	hit, err := cache.Get(ctx, key, &entries)
	if err != nil {
		logger.WithError(err).WithField("key", key).Warn("lookup cache read failed")
	}
	if hit {
		return entries, nil
	}

	gen, genErr := cache.Generation(ctx, key)
	if genErr != nil {
		logger.WithError(genErr).WithField("key", key).Warn("lookup cache read failed")
	}

	entries, err = load(ctx)
	if err != nil {
		return nil, fmt.Errorf("list %s names: %w", resource, err)
	}
	if genErr != nil {
		return entries, nil
	}

	stored, err := cache.SetIfGeneration(ctx, key, gen, entries)
	if err != nil {
		logger.WithError(err).WithField("key", key).Warn("lookup cache write failed")
	} else if !stored && cache != nil {
		logger.WithField("key", key).Debug("names changed while loading, not cached")
	}
	return entries, nil
}

// dropNames invalidates a names projection after a committed write.
func dropNames(ctx context.Context, cache *lookupcache.Cache, logger *logrus.Logger, resource string) {
	if err := cache.Invalidate(ctx, namesKey(resource)); err != nil {
		logger.WithError(err).WithField("resource", resource).Warn("lookup cache invalidation failed")
	}
}
