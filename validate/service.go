package validate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"venue_manager/constants"
	"venue_manager/database"
	"venue_manager/helper"
	"venue_manager/model"
	"venue_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func CreateService() fiber.Handler {
	return func(c *fiber.Ctx) error {
		form, err := c.MultipartForm()
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Could not read form data", err)
		}

		name := strings.TrimSpace(utils.GetFirstValue(form.Value, "name"))
		description := utils.GetFirstValue(form.Value, "description")
		categoryIdStr := utils.GetFirstValue(form.Value, "categoryId")
		activeStr := utils.GetFirstValue(form.Value, "active")

		categoryId, err := strconv.ParseUint(categoryIdStr, 10, 64)
		if err != nil || categoryId == 0 {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Please select a category", nil, "categoryId")
		}

		input := model.CreateServiceInput{
			Name:        name,
			CategoryId:  uint(categoryId),
			Description: description,
		}
		if activeStr != "" {
			active := activeStr == "1"
			input.Active = &active
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		var category model.ServiceCategory
		if err := database.DB.First(&category, input.CategoryId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Service category does not exist", fmt.Errorf("categoryId not found"), "categoryId")
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		// Names are unique within a category.
		var existing model.Service
		if err := database.DB.Where("LOWER(name) = ? AND category_id = ?", strings.ToLower(name), input.CategoryId).First(&existing).Error; err == nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.DUPLICATE_SERVICE_NAME, nil, "name")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		var imageUrl string
		if files := form.File["image"]; len(files) > 0 {
			file := files[0]
			if !helper.IsAllowedImage(file.Filename) {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Only PNG, JPG and JPEG are supported", nil, "image")
			}
			imageUrl, err = helper.UploadImage(file, "services")
			if err != nil {
				return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Image upload failed", err)
			}
		}

		c.Locals("inputCreateService", input)
		c.Locals("imageUrl", imageUrl)
		return c.Next()
	}
}

func EditService(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params(key))
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
		}

		form, err := c.MultipartForm()
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Could not read form data", err)
		}

		name := strings.TrimSpace(utils.GetFirstValue(form.Value, "name"))
		description := utils.GetFirstValue(form.Value, "description")
		categoryIdStr := utils.GetFirstValue(form.Value, "categoryId")
		activeStr := utils.GetFirstValue(form.Value, "active")

		var input model.EditServiceInput
		if name != "" {
			input.Name = &name
		}
		if description != "" {
			input.Description = &description
		}
		if categoryIdStr != "" {
			categoryId, err := strconv.ParseUint(categoryIdStr, 10, 64)
			if err != nil {
				return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
			}
			input.CategoryId = utils.Ptr(uint(categoryId))
		}
		if activeStr != "" {
			active := activeStr == "1"
			input.Active = &active
		}

		var service model.Service
		if err := database.DB.First(&service, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponse(c, fiber.StatusNotFound, "Service not found", err)
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		if input.CategoryId != nil {
			var category model.ServiceCategory
			if err := database.DB.First(&category, *input.CategoryId).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Service category does not exist", fmt.Errorf("categoryId not found"), "categoryId")
				}
				return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
			}
		}

		if input.Name != nil && *input.Name != service.Name {
			scope := service.CategoryId
			if input.CategoryId != nil {
				scope = *input.CategoryId
			}
			var existing model.Service
			if err := database.DB.Where("LOWER(name) = ? AND category_id = ? AND id != ?", strings.ToLower(*input.Name), scope, id).First(&existing).Error; err == nil {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.DUPLICATE_SERVICE_NAME, nil, "name")
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
			}
		}

		imageUrl := service.ImageUrl
		if files := form.File["image"]; len(files) > 0 {
			file := files[0]
			if !helper.IsAllowedImage(file.Filename) {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Only PNG, JPG and JPEG are supported", nil, "image")
			}
			helper.DestroyImage(service.ImageUrl)
			imageUrl, err = helper.UploadImage(file, "services")
			if err != nil {
				return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Image upload failed", err)
			}
		}

		c.Locals("inputEditService", input)
		c.Locals("imageUrl", imageUrl)
		c.Locals("serviceId", uint(id))
		return c.Next()
	}
}
