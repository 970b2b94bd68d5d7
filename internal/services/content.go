package services

import (
	"context"

	"cwdp/internal/interfaces"
	"cwdp/internal/models"
)

const DefaultFeaturedLimit = 6

// Content serves the public site's reads through the query cache.
type Content struct {
	projects interfaces.ProjectRepository
	gallery  interfaces.GalleryRepository
	partners interfaces.PartnerRepository
	stats    interfaces.StatRepository
	settings interfaces.SettingRepository
	cache    *QueryCache
}

func NewContent(
	projects interfaces.ProjectRepository,
	gallery interfaces.GalleryRepository,
	partners interfaces.PartnerRepository,
	stats interfaces.StatRepository,
	settings interfaces.SettingRepository,
	cache *QueryCache,
) *Content {
	return &Content{
		projects: projects,
		gallery:  gallery,
		partners: partners,
		stats:    stats,
		settings: settings,
		cache:    cache,
	}
}

// FeaturedProjects lists featured projects in display order. A non-positive
// limit means DefaultFeaturedLimit.
func (c *Content) FeaturedProjects(ctx context.Context, limit int) ([]models.Project, error) {
	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}
	return Fetch(ctx, c.cache, FeaturedProjectsKey(limit), func(ctx context.Context) ([]models.Project, error) {
		list, err := c.projects.List(ctx, interfaces.ListOptions{FeaturedOnly: true, Limit: limit})
		return emptyIfNil(list), err
	})
}

func (c *Content) ActivePartners(ctx context.Context) ([]models.Partner, error) {
	return Fetch(ctx, c.cache, KeyPartners, func(ctx context.Context) ([]models.Partner, error) {
		list, err := c.partners.List(ctx, interfaces.ListOptions{ActiveOnly: true})
		return emptyIfNil(list), err
	})
}

func (c *Content) ActiveStats(ctx context.Context) ([]models.Stat, error) {
	return Fetch(ctx, c.cache, KeyStats, func(ctx context.Context) ([]models.Stat, error) {
		list, err := c.stats.List(ctx, interfaces.ListOptions{ActiveOnly: true})
		return emptyIfNil(list), err
	})
}

func (c *Content) ActiveGallery(ctx context.Context) ([]models.GalleryItem, error) {
	return Fetch(ctx, c.cache, KeyGalleryActive, func(ctx context.Context) ([]models.GalleryItem, error) {
		list, err := c.gallery.List(ctx, interfaces.ListOptions{ActiveOnly: true})
		return emptyIfNil(list), err
	})
}

// Settings returns every setting as a key to value map.
func (c *Content) Settings(ctx context.Context) (models.Settings, error) {
	return Fetch(ctx, c.cache, KeySettings, func(ctx context.Context) (models.Settings, error) {
		list, err := c.settings.List(ctx)
		if err != nil {
			return nil, err
		}
		return models.SettingsFromList(list), nil
	})
}

func emptyIfNil[T any](list []T) []T {
	if list == nil {
		return []T{}
	}
	return list
}
