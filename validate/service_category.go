package validate

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"venue_manager/constants"
	"venue_manager/database"
	"venue_manager/helper"
	"venue_manager/model"
	"venue_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func CreateServiceCategory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateServiceCategoryInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		// Category names allow letters and spaces only.
		input.Name = helper.FormatCategoryName(input.Name)
		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		dup, err := helper.IsDuplicateCategoryName(database.DB, input.Name, 0)
		if dup {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.DUPLICATE_CATEGORY_NAME, nil, "name")
		}
		if err != nil {
			log.Printf("category duplicate lookup failed: %v", err)
		}

		c.Locals("inputCreateServiceCategory", input)
		return c.Next()
	}
}

func EditServiceCategory(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params(key))
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
		}

		var input model.EditServiceCategoryInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		var category model.ServiceCategory
		if err := database.DB.First(&category, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponse(c, fiber.StatusNotFound, "Service category not found", err)
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		if input.Name == nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.NO_FORM_CHANGES, nil)
		}

		name := helper.FormatCategoryName(*input.Name)
		if name == "" {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Category name is required.", nil, "name")
		}
		input.Name = &name

		if name == category.Name {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.NO_FORM_CHANGES, nil)
		}

		dup, err := helper.IsDuplicateCategoryName(database.DB, name, uint(id))
		if dup {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.DUPLICATE_CATEGORY_NAME, nil, "name")
		}
		if err != nil {
			log.Printf("category duplicate lookup failed: %v", err)
		}

		c.Locals("inputEditServiceCategory", input)
		c.Locals("categoryId", uint(id))
		return c.Next()
	}
}
