package handler

import (
	"context"

	"venue_manager/cache"
	"venue_manager/constants"
	"venue_manager/database"
	"venue_manager/model"
	"venue_manager/utils"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"
)

// LoadCatalogView serves the denormalized catalog through the cache.
// On a miss the four independent reads run concurrently and the joined
// result is cached.
func LoadCatalogView(ctx context.Context) (*model.CatalogView, error) {
	if view := cache.GetCatalog(ctx); view != nil {
		return view, nil
	}

	view, err := fetchCatalogView(ctx)
	if err != nil {
		return nil, err
	}

	cache.SetCatalog(ctx, view)
	return view, nil
}

func fetchCatalogView(ctx context.Context) (*model.CatalogView, error) {
	db := database.DB.WithContext(ctx)
	view := &model.CatalogView{}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		return db.Preload("PackageType").Preload("PaxPriceTiers").Preload("Services").
			Order("id DESC").Find(&view.Packages).Error
	})
	g.Go(func() error {
		return db.Where("active = ?", true).Order("name ASC").Find(&view.PackageTypes).Error
	})
	g.Go(func() error {
		return db.Where("active = ?", true).Order("name ASC").Find(&view.Services).Error
	})
	g.Go(func() error {
		return db.Order("name ASC").Find(&view.Categories).Error
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return view, nil
}

func GetCatalog(c *fiber.Ctx) error {
	view, err := LoadCatalogView(c.UserContext())
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_LOAD_CATALOG, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, view)
}

// WarmCatalogCache refetches and re-caches the catalog. The scheduler
// calls this so the first dashboard load of the day is already warm.
func WarmCatalogCache(ctx context.Context) error {
	view, err := fetchCatalogView(ctx)
	if err != nil {
		return err
	}
	cache.SetCatalog(ctx, view)
	return nil
}
