package handler

import (
	"errors"
	"strings"

	"venue_manager/cache"
	"venue_manager/constants"
	"venue_manager/database"
	"venue_manager/model"
	"venue_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetPackageTypes(c *fiber.Ctx) error {
	filterInput := new(model.FilterPackageType)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, err)
	}

	db := database.DB
	condition := db.Model(&model.PackageType{})

	if filterInput.SearchKey != "" {
		condition = condition.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filterInput.SearchKey)+"%")
	}

	var totalCount int64
	condition.Count(&totalCount)

	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)

	var packageTypes []model.PackageType
	if err := condition.Order("id DESC").Find(&packageTypes).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       packageTypes,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	})
}

func GetPackageTypeById(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)

	var packageType model.PackageType
	if err := database.DB.Preload("Packages").First(&packageType, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Package type not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, packageType)
}

func CreatePackageType(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreatePackageType").(model.CreatePackageTypeInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA PACKAGE TYPE TO LOCALS FAIL"))
	}

	packageType := model.PackageType{
		Name:        input.Name,
		Description: input.Description,
		Active:      input.Active,
	}
	if packageType.Active == nil {
		active := true
		packageType.Active = &active
	}

	if err := database.DB.Create(&packageType).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	cache.InvalidateCatalog(c.UserContext(), "package_type", packageType.ID)
	return utils.SuccessResponse(c, fiber.StatusOK, packageType)
}

func EditPackageType(c *fiber.Ctx) error {
	input, ok := c.Locals("inputEditPackageType").(model.EditPackageTypeInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA PACKAGE TYPE TO LOCALS FAIL"))
	}
	id, ok := c.Locals("packageTypeId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE PACKAGE TYPE ID TO LOCALS FAIL"))
	}

	db := database.DB
	var packageType model.PackageType
	if err := db.First(&packageType, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Package type not found", err)
	}

	updateData := map[string]interface{}{}
	if input.Name != nil {
		updateData["name"] = *input.Name
	}
	if input.Description != nil {
		updateData["description"] = *input.Description
	}
	if input.Active != nil {
		updateData["active"] = *input.Active
	}

	if len(updateData) == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.NO_FORM_CHANGES, nil)
	}

	if err := db.Model(&packageType).Updates(updateData).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	if err := db.First(&packageType, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	cache.InvalidateCatalog(c.UserContext(), "package_type", id)
	return utils.SuccessResponse(c, fiber.StatusOK, packageType)
}

func DeletePackageTypes(c *fiber.Ctx) error {
	db := database.DB
	arrayId := c.Locals("deleteIds").(model.ArrayId)
	ids := arrayId.IDs

	if err := db.Model(&model.PackageType{}).Where("id in ?", ids).Update("active", false).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	for _, id := range ids {
		cache.InvalidateCatalog(c.UserContext(), "package_type", id)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, ids)
}
