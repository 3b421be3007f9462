package handler

import (
	"errors"
	"fmt"
	"strings"

	"venue_manager/cache"
	"venue_manager/config"
	"venue_manager/constants"
	"venue_manager/database"
	"venue_manager/helper"
	"venue_manager/model"
	"venue_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func GetPackages(c *fiber.Ctx) error {
	filterInput := new(model.FilterPackage)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, err)
	}

	db := database.DB
	condition := db.Model(&model.EventPackage{})

	if filterInput.SearchKey != "" {
		condition = condition.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filterInput.SearchKey)+"%")
	}
	if filterInput.PackageTypeId != 0 {
		condition = condition.Where("package_type_id = ?", filterInput.PackageTypeId)
	}

	var totalCount int64
	condition.Count(&totalCount)

	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)

	var packages []model.EventPackage
	if err := condition.
		Preload("PackageType").
		Preload("PaxPriceTiers").
		Preload("Services").
		Order("id DESC").
		Find(&packages).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       packages,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	})
}

func GetPackageById(c *fiber.Ctx) error {
	pkg, err := loadPackage(uint(c.Locals("inputId").(int)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Package not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, pkg)
}

// CreatePackage writes the parent row, its pax price tiers and its
// service links in one transaction, then invalidates the catalog cache.
func CreatePackage(c *fiber.Ctx) error {
	form, ok := c.Locals("inputCreatePackage").(model.PackageFormInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA PACKAGE TO LOCALS FAIL"))
	}

	db := database.DB
	tx := db.Begin()

	newPackage := new(model.EventPackage)
	copier.Copy(&newPackage, form)
	newPackage.PaxPriceTiers = nil
	newPackage.Services = nil
	newPackage.ExcessPaxPrice = helper.ParseExcessPaxPrice(form)
	if newPackage.Active == nil {
		active := true
		newPackage.Active = &active
	}

	if err := tx.Create(&newPackage).Error; err != nil {
		tx.Rollback()
		if helper.IsUniqueViolation(err) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.DUPLICATE_PACKAGE_NAME, nil, "name")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	tiers := helper.BuildPaxPriceTiers(newPackage.ID, form.PaxPriceTiers)
	if err := tx.Create(&tiers).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	links := buildServiceLinks(newPackage.ID, form.ServiceIds)
	if err := tx.Create(&links).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	tx.Commit()

	cache.InvalidateCatalog(c.UserContext(), "package", newPackage.ID)

	created, err := loadPackage(newPackage.ID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, created)
}

// EditPackage updates the parent row and replaces both child
// collections wholesale inside one transaction.
func EditPackage(c *fiber.Ctx) error {
	form, ok := c.Locals("inputEditPackage").(model.PackageFormInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA PACKAGE TO LOCALS FAIL"))
	}
	packageId, ok := c.Locals("inputPackageId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE PACKAGE ID TO LOCALS FAIL"))
	}

	db := database.DB
	tx := db.Begin()

	updates := map[string]interface{}{
		"name":             form.Name,
		"package_type_id":  form.PackageTypeId,
		"description":      form.Description,
		"excess_pax_price": helper.ParseExcessPaxPrice(form),
	}
	if form.Active != nil {
		updates["active"] = *form.Active
	}

	if err := tx.Model(&model.EventPackage{}).Where("id = ?", packageId).Updates(updates).Error; err != nil {
		tx.Rollback()
		if helper.IsUniqueViolation(err) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.DUPLICATE_PACKAGE_NAME, nil, "name")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	if err := tx.Where("package_id = ?", packageId).Delete(&model.PaxPriceTier{}).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}
	tiers := helper.BuildPaxPriceTiers(packageId, form.PaxPriceTiers)
	if err := tx.Create(&tiers).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	if err := tx.Where("package_id = ?", packageId).Delete(&model.PackageService{}).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}
	links := buildServiceLinks(packageId, form.ServiceIds)
	if err := tx.Create(&links).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	tx.Commit()

	cache.InvalidateCatalog(c.UserContext(), "package", packageId)

	updated, err := loadPackage(packageId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, updated)
}

// TogglePackageActive flips the active flag and returns the server row,
// the same refetch reconciliation every other write path uses.
func TogglePackageActive(c *fiber.Ctx) error {
	packageId := uint(c.Locals("inputId").(int))

	var pkg model.EventPackage
	if err := database.DB.First(&pkg, packageId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Package not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	next := pkg.Active == nil || !*pkg.Active
	if err := database.DB.Model(&pkg).Update("active", next).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	cache.InvalidateCatalog(c.UserContext(), "package", packageId)

	updated, err := loadPackage(packageId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, updated)
}

// DeletePackages soft-disables packages; package rows are never
// physically removed by this flow.
func DeletePackages(c *fiber.Ctx) error {
	db := database.DB
	arrayId := c.Locals("deleteIds").(model.ArrayId)
	ids := arrayId.IDs

	if err := db.Model(&model.EventPackage{}).Where("id in ?", ids).Update("active", false).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	for _, id := range ids {
		cache.InvalidateCatalog(c.UserContext(), "package", id)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, ids)
}

// CheckPackageName backs the live as-you-type duplicate indicator.
func CheckPackageName(c *fiber.Ctx) error {
	name := c.Query("name")
	packageTypeId := uint(c.QueryInt("packageTypeId"))
	excludeId := uint(c.QueryInt("excludeId"))

	if name == "" || packageTypeId == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "name and packageTypeId are required", nil)
	}

	if view := cache.GetCatalog(c.UserContext()); view != nil {
		if helper.IsDuplicatePackageNameLocal(view.Packages, name, packageTypeId, excludeId) {
			return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"duplicate": true})
		}
	}

	dup, err := helper.IsDuplicatePackageName(database.DB, name, packageTypeId, excludeId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"duplicate": dup})
}

// GetPackageQR renders a share QR for the public package page.
func GetPackageQR(c *fiber.Ctx) error {
	pkg, err := loadPackage(uint(c.Locals("inputId").(int)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Package not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	base := config.Config("PUBLIC_BASE_URL")
	if base == "" {
		base = "http://localhost:5173"
	}
	png, err := utils.GenerateQRCode(fmt.Sprintf("%s/packages/%d", base, pkg.ID), 256)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Set("Content-Type", "image/png")
	return c.Send(png)
}

func loadPackage(id uint) (*model.EventPackage, error) {
	var pkg model.EventPackage
	err := database.DB.
		Preload("PackageType").
		Preload("PaxPriceTiers").
		Preload("Services").
		First(&pkg, id).Error
	if err != nil {
		return nil, err
	}
	return &pkg, nil
}

func buildServiceLinks(packageId uint, serviceIds []uint) []model.PackageService {
	links := make([]model.PackageService, 0, len(serviceIds))
	for _, serviceId := range serviceIds {
		links = append(links, model.PackageService{PackageId: packageId, ServiceId: serviceId})
	}
	return links
}
