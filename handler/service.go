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

func GetServices(c *fiber.Ctx) error {
	filterInput := new(model.FilterService)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, err)
	}

	db := database.DB
	condition := db.Model(&model.Service{})

	if filterInput.SearchKey != "" {
		condition = condition.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filterInput.SearchKey)+"%")
	}
	if filterInput.CategoryId != 0 {
		condition = condition.Where("category_id = ?", filterInput.CategoryId)
	}

	var totalCount int64
	condition.Count(&totalCount)

	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)

	var services []model.Service
	if err := condition.Preload("Category").Order("id DESC").Find(&services).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       services,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	})
}

func GetServiceById(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)

	var service model.Service
	if err := database.DB.Preload("Category").First(&service, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Service not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, service)
}

func CreateService(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateService").(model.CreateServiceInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA SERVICE TO LOCALS FAIL"))
	}
	imageUrl, ok := c.Locals("imageUrl").(string)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE IMAGE URL TO LOCALS FAIL"))
	}

	service := model.Service{
		Name:        input.Name,
		CategoryId:  input.CategoryId,
		Description: input.Description,
		ImageUrl:    imageUrl,
		Active:      input.Active,
	}
	if service.Active == nil {
		active := true
		service.Active = &active
	}

	if err := database.DB.Create(&service).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	cache.InvalidateCatalog(c.UserContext(), "service", service.ID)
	return utils.SuccessResponse(c, fiber.StatusOK, service)
}

func EditService(c *fiber.Ctx) error {
	input, ok := c.Locals("inputEditService").(model.EditServiceInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA SERVICE TO LOCALS FAIL"))
	}
	imageUrl, _ := c.Locals("imageUrl").(string)
	id, ok := c.Locals("serviceId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE SERVICE ID TO LOCALS FAIL"))
	}

	db := database.DB
	var service model.Service
	if err := db.First(&service, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Service not found", err)
	}

	updateData := map[string]interface{}{}
	if input.Name != nil {
		updateData["name"] = *input.Name
	}
	if input.Description != nil {
		updateData["description"] = *input.Description
	}
	if input.CategoryId != nil {
		updateData["category_id"] = *input.CategoryId
	}
	if input.Active != nil {
		updateData["active"] = *input.Active
	}
	if imageUrl != "" && imageUrl != service.ImageUrl {
		updateData["image_url"] = imageUrl
	}

	if len(updateData) == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.NO_FORM_CHANGES, nil)
	}

	if err := db.Model(&service).Updates(updateData).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	if err := db.Preload("Category").First(&service, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	cache.InvalidateCatalog(c.UserContext(), "service", id)
	return utils.SuccessResponse(c, fiber.StatusOK, service)
}

// DeleteServices soft-disables services so existing packages keep
// rendering the services they were sold with.
func DeleteServices(c *fiber.Ctx) error {
	db := database.DB
	arrayId := c.Locals("deleteIds").(model.ArrayId)
	ids := arrayId.IDs

	if err := db.Model(&model.Service{}).Where("id in ?", ids).Update("active", false).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	for _, id := range ids {
		cache.InvalidateCatalog(c.UserContext(), "service", id)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, ids)
}
