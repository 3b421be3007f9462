package router

import (
	"venue_manager/handler"
	"venue_manager/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	catalog := v1.Group("/catalog")
	catalog.Get("/", handler.GetCatalog)
	catalog.Get("/events", websocket.New(handler.CatalogWebsocket))

	packageType := v1.Group("/package-type", logger.New())
	packageType.Get("/", handler.GetPackageTypes)
	packageType.Get("/:packageTypeId", validate.GetById("packageTypeId"), handler.GetPackageTypeById)
	packageType.Post("/", validate.CreatePackageType(), handler.CreatePackageType)
	packageType.Put("/:packageTypeId", validate.EditPackageType("packageTypeId"), handler.EditPackageType)
	packageType.Delete("/", validate.Delete(), handler.DeletePackageTypes)

	category := v1.Group("/service-category", logger.New())
	category.Get("/", handler.GetServiceCategories)
	category.Get("/:categoryId", validate.GetById("categoryId"), handler.GetServiceCategoryById)
	category.Post("/", validate.CreateServiceCategory(), handler.CreateServiceCategory)
	category.Put("/:categoryId", validate.EditServiceCategory("categoryId"), handler.EditServiceCategory)
	category.Delete("/", validate.Delete(), handler.DeleteServiceCategories)

	service := v1.Group("/service", logger.New())
	service.Get("/", handler.GetServices)
	service.Get("/:serviceId", validate.GetById("serviceId"), handler.GetServiceById)
	service.Post("/", validate.CreateService(), handler.CreateService)
	service.Put("/:serviceId", validate.EditService("serviceId"), handler.EditService)
	service.Delete("/", validate.Delete(), handler.DeleteServices)

	pkg := v1.Group("/package", logger.New())
	pkg.Get("/", handler.GetPackages)
	pkg.Get("/check-name", handler.CheckPackageName)
	pkg.Get("/:packageId", validate.GetById("packageId"), handler.GetPackageById)
	pkg.Get("/:packageId/qr", validate.GetById("packageId"), handler.GetPackageQR)
	pkg.Post("/", validate.CreatePackage(), handler.CreatePackage)
	pkg.Put("/:packageId", validate.EditPackage("packageId"), handler.EditPackage)
	pkg.Patch("/:packageId/active", validate.GetById("packageId"), handler.TogglePackageActive)
	pkg.Delete("/", validate.Delete(), handler.DeletePackages)

	venue := v1.Group("/venue", logger.New())
	venue.Get("/", handler.GetVenues)
	venue.Post("/", validate.CreateVenue(), handler.CreateVenue)
	venue.Put("/:venueId", validate.EditVenue("venueId"), handler.EditVenue)
	venue.Delete("/", validate.Delete(), handler.DeleteVenues)
	venue.Delete("/photo/:photoId", validate.GetById("photoId"), handler.DeleteVenuePhoto)
	venue.Get("/:slug", handler.GetVenueBySlug)

	theme := v1.Group("/theme", logger.New())
	theme.Get("/", handler.GetThemes)
	theme.Get("/:themeId", validate.GetById("themeId"), handler.GetThemeById)
	theme.Post("/", validate.CreateTheme(), handler.CreateTheme)
	theme.Put("/:themeId", validate.EditTheme("themeId"), handler.EditTheme)
	theme.Delete("/", validate.Delete(), handler.DeleteThemes)

	asset := v1.Group("/asset", logger.New())
	asset.Get("/", handler.GetAssets)
	asset.Get("/:assetId", validate.GetById("assetId"), handler.GetAssetById)
	asset.Post("/", validate.CreateAsset(), handler.CreateAsset)
	asset.Put("/:assetId", validate.EditAsset("assetId"), handler.EditAsset)
	asset.Delete("/", validate.Delete(), handler.DeleteAssets)
}
