package validate

import (
	"errors"
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

func CreateTheme() fiber.Handler {
	return func(c *fiber.Ctx) error {
		form, err := c.MultipartForm()
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Could not read form data", err)
		}

		input := model.CreateThemeInput{
			Name:           strings.TrimSpace(utils.GetFirstValue(form.Value, "name")),
			Description:    utils.GetFirstValue(form.Value, "description"),
			PrimaryColor:   utils.GetFirstValue(form.Value, "primaryColor"),
			SecondaryColor: utils.GetFirstValue(form.Value, "secondaryColor"),
			AccentColor:    utils.GetFirstValue(form.Value, "accentColor"),
		}
		if activeStr := utils.GetFirstValue(form.Value, "active"); activeStr != "" {
			active := activeStr == "1"
			input.Active = &active
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		var existing model.Theme
		if err := database.DB.Where("LOWER(name) = ?", strings.ToLower(input.Name)).First(&existing).Error; err == nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.DUPLICATE_THEME_NAME, nil, "name")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		var imageUrl string
		if files := form.File["image"]; len(files) > 0 {
			file := files[0]
			if !helper.IsAllowedImage(file.Filename) {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Only PNG, JPG and JPEG are supported", nil, "image")
			}
			imageUrl, err = helper.UploadImage(file, "themes")
			if err != nil {
				return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Image upload failed", err)
			}
		}

		c.Locals("inputCreateTheme", input)
		c.Locals("imageUrl", imageUrl)
		return c.Next()
	}
}

func EditTheme(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params(key))
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
		}

		form, err := c.MultipartForm()
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Could not read form data", err)
		}

		var input model.EditThemeInput
		if name := strings.TrimSpace(utils.GetFirstValue(form.Value, "name")); name != "" {
			input.Name = &name
		}
		if description := utils.GetFirstValue(form.Value, "description"); description != "" {
			input.Description = &description
		}
		if v := utils.GetFirstValue(form.Value, "primaryColor"); v != "" {
			input.PrimaryColor = &v
		}
		if v := utils.GetFirstValue(form.Value, "secondaryColor"); v != "" {
			input.SecondaryColor = &v
		}
		if v := utils.GetFirstValue(form.Value, "accentColor"); v != "" {
			input.AccentColor = &v
		}
		if activeStr := utils.GetFirstValue(form.Value, "active"); activeStr != "" {
			active := activeStr == "1"
			input.Active = &active
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		var theme model.Theme
		if err := database.DB.First(&theme, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponse(c, fiber.StatusNotFound, "Theme not found", err)
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		if input.Name != nil && *input.Name != theme.Name {
			var existing model.Theme
			if err := database.DB.Where("LOWER(name) = ? AND id != ?", strings.ToLower(*input.Name), id).First(&existing).Error; err == nil {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.DUPLICATE_THEME_NAME, nil, "name")
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
			}
		}

		imageUrl := theme.ImageUrl
		if files := form.File["image"]; len(files) > 0 {
			file := files[0]
			if !helper.IsAllowedImage(file.Filename) {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Only PNG, JPG and JPEG are supported", nil, "image")
			}
			helper.DestroyImage(theme.ImageUrl)
			imageUrl, err = helper.UploadImage(file, "themes")
			if err != nil {
				return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Image upload failed", err)
			}
		}

		c.Locals("inputEditTheme", input)
		c.Locals("imageUrl", imageUrl)
		c.Locals("themeId", uint(id))
		return c.Next()
	}
}
