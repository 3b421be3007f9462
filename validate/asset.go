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

func CreateAsset() fiber.Handler {
	return func(c *fiber.Ctx) error {
		form, err := c.MultipartForm()
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Could not read form data", err)
		}

		quantity, err := parseNonNegative(utils.GetFirstValue(form.Value, "quantity"))
		if err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Quantity must be a non-negative number", nil, "quantity")
		}
		threshold, err := parseNonNegative(utils.GetFirstValue(form.Value, "lowStockThreshold"))
		if err != nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Threshold must be a non-negative number", nil, "lowStockThreshold")
		}

		input := model.CreateAssetInput{
			Name:              strings.TrimSpace(utils.GetFirstValue(form.Value, "name")),
			Description:       utils.GetFirstValue(form.Value, "description"),
			Quantity:          quantity,
			LowStockThreshold: threshold,
		}
		if activeStr := utils.GetFirstValue(form.Value, "active"); activeStr != "" {
			active := activeStr == "1"
			input.Active = &active
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		var existing model.Asset
		if err := database.DB.Where("LOWER(name) = ?", strings.ToLower(input.Name)).First(&existing).Error; err == nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.DUPLICATE_ASSET_NAME, nil, "name")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		var imageUrl string
		if files := form.File["image"]; len(files) > 0 {
			file := files[0]
			if !helper.IsAllowedImage(file.Filename) {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Only PNG, JPG and JPEG are supported", nil, "image")
			}
			imageUrl, err = helper.UploadImage(file, "assets")
			if err != nil {
				return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Image upload failed", err)
			}
		}

		c.Locals("inputCreateAsset", input)
		c.Locals("imageUrl", imageUrl)
		return c.Next()
	}
}

func EditAsset(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params(key))
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
		}

		form, err := c.MultipartForm()
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Could not read form data", err)
		}

		var input model.EditAssetInput
		if name := strings.TrimSpace(utils.GetFirstValue(form.Value, "name")); name != "" {
			input.Name = &name
		}
		if description := utils.GetFirstValue(form.Value, "description"); description != "" {
			input.Description = &description
		}
		if quantityStr := utils.GetFirstValue(form.Value, "quantity"); quantityStr != "" {
			quantity, err := parseNonNegative(quantityStr)
			if err != nil {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Quantity must be a non-negative number", nil, "quantity")
			}
			input.Quantity = &quantity
		}
		if thresholdStr := utils.GetFirstValue(form.Value, "lowStockThreshold"); thresholdStr != "" {
			threshold, err := parseNonNegative(thresholdStr)
			if err != nil {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Threshold must be a non-negative number", nil, "lowStockThreshold")
			}
			input.LowStockThreshold = &threshold
		}
		if activeStr := utils.GetFirstValue(form.Value, "active"); activeStr != "" {
			active := activeStr == "1"
			input.Active = &active
		}

		var asset model.Asset
		if err := database.DB.First(&asset, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponse(c, fiber.StatusNotFound, "Asset not found", err)
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		if input.Name != nil && *input.Name != asset.Name {
			var existing model.Asset
			if err := database.DB.Where("LOWER(name) = ? AND id != ?", strings.ToLower(*input.Name), id).First(&existing).Error; err == nil {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.DUPLICATE_ASSET_NAME, nil, "name")
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
			}
		}

		imageUrl := asset.ImageUrl
		if files := form.File["image"]; len(files) > 0 {
			file := files[0]
			if !helper.IsAllowedImage(file.Filename) {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Only PNG, JPG and JPEG are supported", nil, "image")
			}
			helper.DestroyImage(asset.ImageUrl)
			imageUrl, err = helper.UploadImage(file, "assets")
			if err != nil {
				return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Image upload failed", err)
			}
		}

		c.Locals("inputEditAsset", input)
		c.Locals("imageUrl", imageUrl)
		c.Locals("assetId", uint(id))
		return c.Next()
	}
}

// parseNonNegative applies the same digit hygiene as the package form
// fields; an empty cleaned value means zero here, not a violation.
func parseNonNegative(raw string) (int, error) {
	cleaned := helper.CleanDigits(raw)
	if cleaned == "" {
		if strings.TrimSpace(raw) != "" && strings.Trim(raw, "0") != "" {
			return 0, errors.New("not a number")
		}
		return 0, nil
	}
	return strconv.Atoi(cleaned)
}
