package handler

import (
	"errors"
	"strings"

	"venue_manager/cache"
	"venue_manager/constants"
	"venue_manager/database"
	"venue_manager/helper"
	"venue_manager/model"
	"venue_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetServiceCategories(c *fiber.Ctx) error {
	filterInput := new(model.FilterServiceCategory)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, err)
	}

	db := database.DB
	condition := db.Model(&model.ServiceCategory{})

	if filterInput.SearchKey != "" {
		condition = condition.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filterInput.SearchKey)+"%")
	}

	var totalCount int64
	condition.Count(&totalCount)

	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)

	var categories []model.ServiceCategory
	if err := condition.Preload("Services").Order("name ASC").Find(&categories).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       categories,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	})
}

func CreateServiceCategory(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateServiceCategory").(model.CreateServiceCategoryInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA CATEGORY TO LOCALS FAIL"))
	}

	category := model.ServiceCategory{Name: input.Name}
	if err := database.DB.Create(&category).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.DUPLICATE_CATEGORY_NAME, nil, "name")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	cache.InvalidateCatalog(c.UserContext(), "service_category", category.ID)
	return utils.SuccessResponse(c, fiber.StatusOK, category)
}

func EditServiceCategory(c *fiber.Ctx) error {
	input, ok := c.Locals("inputEditServiceCategory").(model.EditServiceCategoryInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA CATEGORY TO LOCALS FAIL"))
	}
	id, ok := c.Locals("categoryId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE CATEGORY ID TO LOCALS FAIL"))
	}

	db := database.DB
	var category model.ServiceCategory
	if err := db.First(&category, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Service category not found", err)
	}

	if err := db.Model(&category).Update("name", *input.Name).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.DUPLICATE_CATEGORY_NAME, nil, "name")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	if err := db.First(&category, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	cache.InvalidateCatalog(c.UserContext(), "service_category", id)
	return utils.SuccessResponse(c, fiber.StatusOK, category)
}

func DeleteServiceCategories(c *fiber.Ctx) error {
	db := database.DB
	arrayId := c.Locals("deleteIds").(model.ArrayId)
	ids := arrayId.IDs

	// A category that still owns services cannot be removed.
	var inUse int64
	if err := db.Model(&model.Service{}).Where("category_id in ?", ids).Count(&inUse).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if inUse > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Cannot delete a category that still has services", errors.New("category in use"))
	}

	if err := db.Where("id in ?", ids).Delete(&model.ServiceCategory{}).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	for _, id := range ids {
		cache.InvalidateCatalog(c.UserContext(), "service_category", id)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, ids)
}

func GetServiceCategoryById(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)

	var category model.ServiceCategory
	if err := database.DB.Preload("Services").First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Service category not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, category)
}
