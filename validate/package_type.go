package validate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"venue_manager/constants"
	"venue_manager/database"
	"venue_manager/model"
	"venue_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func CreatePackageType() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreatePackageTypeInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		input.Name = strings.TrimSpace(input.Name)
		if err := validate.Struct(input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		// Name must be unique among active types.
		var existing model.PackageType
		if err := database.DB.Where("LOWER(name) = ? AND active = ?", strings.ToLower(input.Name), true).First(&existing).Error; err == nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.DUPLICATE_TYPE_NAME, nil, "name")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		c.Locals("inputCreatePackageType", input)
		return c.Next()
	}
}

func EditPackageType(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params(key))
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
		}

		var input model.EditPackageTypeInput
		if err := c.BodyParser(&input); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		var packageType model.PackageType
		if err := database.DB.First(&packageType, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponse(c, fiber.StatusNotFound, "Package type not found", err)
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		if input.Name != nil {
			name := strings.TrimSpace(*input.Name)
			input.Name = &name
			if name != packageType.Name {
				var existing model.PackageType
				if err := database.DB.Where("LOWER(name) = ? AND active = ? AND id != ?", strings.ToLower(name), true, id).First(&existing).Error; err == nil {
					return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.DUPLICATE_TYPE_NAME, nil, "name")
				} else if !errors.Is(err, gorm.ErrRecordNotFound) {
					return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
				}
			}
		}

		c.Locals("inputEditPackageType", input)
		c.Locals("packageTypeId", uint(id))
		return c.Next()
	}
}
