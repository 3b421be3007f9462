package validate

import (
	"errors"
	"fmt"
	"mime/multipart"
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

func CreateVenue() fiber.Handler {
	return func(c *fiber.Ctx) error {
		form, err := c.MultipartForm()
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Could not read form data", err)
		}

		name := strings.TrimSpace(utils.GetFirstValue(form.Value, "name"))
		capacityStr := utils.GetFirstValue(form.Value, "capacity")

		capacity := 0
		if capacityStr != "" {
			capacity, err = strconv.Atoi(helper.CleanDigits(capacityStr))
			if err != nil {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Capacity must be a number", nil, "capacity")
			}
		}

		input := model.CreateVenueInput{
			Name:        name,
			Phone:       utils.GetFirstValue(form.Value, "phone"),
			Description: utils.StringPtr(utils.GetFirstValue(form.Value, "description")),
			Province:    utils.GetFirstValue(form.Value, "province"),
			FullAddress: strings.TrimSpace(utils.GetFirstValue(form.Value, "fullAddress")),
			Capacity:    capacity,
		}
		if activeStr := utils.GetFirstValue(form.Value, "active"); activeStr != "" {
			active := activeStr == "1"
			input.Active = &active
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		var existing model.Venue
		if err := database.DB.Where("LOWER(name) = ?", strings.ToLower(name)).First(&existing).Error; err == nil {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.DUPLICATE_VENUE_NAME, nil, "name")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		photoUrls, err := uploadVenuePhotos(form.File["photos"])
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		c.Locals("inputCreateVenue", input)
		c.Locals("photoUrls", photoUrls)
		return c.Next()
	}
}

func EditVenue(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := strconv.Atoi(c.Params(key))
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, err)
		}

		form, err := c.MultipartForm()
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Could not read form data", err)
		}

		var input model.EditVenueInput
		if name := strings.TrimSpace(utils.GetFirstValue(form.Value, "name")); name != "" {
			input.Name = &name
		}
		if phone := utils.GetFirstValue(form.Value, "phone"); phone != "" {
			input.Phone = &phone
		}
		if description := utils.GetFirstValue(form.Value, "description"); description != "" {
			input.Description = &description
		}
		if province := utils.GetFirstValue(form.Value, "province"); province != "" {
			input.Province = &province
		}
		if fullAddress := strings.TrimSpace(utils.GetFirstValue(form.Value, "fullAddress")); fullAddress != "" {
			input.FullAddress = &fullAddress
		}
		if capacityStr := utils.GetFirstValue(form.Value, "capacity"); capacityStr != "" {
			capacity, err := strconv.Atoi(helper.CleanDigits(capacityStr))
			if err != nil {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Capacity must be a number", nil, "capacity")
			}
			input.Capacity = &capacity
		}
		if activeStr := utils.GetFirstValue(form.Value, "active"); activeStr != "" {
			active := activeStr == "1"
			input.Active = &active
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		var venue model.Venue
		if err := database.DB.First(&venue, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponse(c, fiber.StatusNotFound, "Venue not found", err)
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		if input.Name != nil && *input.Name != venue.Name {
			var existing model.Venue
			if err := database.DB.Where("LOWER(name) = ? AND id != ?", strings.ToLower(*input.Name), id).First(&existing).Error; err == nil {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.DUPLICATE_VENUE_NAME, nil, "name")
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
			}
		}

		photoUrls, err := uploadVenuePhotos(form.File["photos"])
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		c.Locals("inputEditVenue", input)
		c.Locals("photoUrls", photoUrls)
		c.Locals("venueId", uint(id))
		return c.Next()
	}
}

func uploadVenuePhotos(files []*multipart.FileHeader) ([]string, error) {
	urls := make([]string, 0, len(files))
	for _, file := range files {
		if !helper.IsAllowedImage(file.Filename) {
			return nil, fmt.Errorf("only PNG, JPG and JPEG are supported: %s", file.Filename)
		}
		url, err := helper.UploadImage(file, "venues")
		if err != nil {
			return nil, fmt.Errorf("photo upload failed: %w", err)
		}
		urls = append(urls, url)
	}
	return urls, nil
}
