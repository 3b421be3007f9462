package handler

import (
	"errors"
	"strings"

	"venue_manager/constants"
	"venue_manager/database"
	"venue_manager/helper"
	"venue_manager/model"
	"venue_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

func GetVenues(c *fiber.Ctx) error {
	filterInput := new(model.FilterVenue)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, err)
	}

	db := database.DB
	condition := db.Model(&model.Venue{}).Where("active = ?", true)

	if filterInput.SearchKey != "" {
		search := "%" + strings.ToLower(strings.TrimSpace(filterInput.SearchKey)) + "%"
		condition = condition.Where(
			db.Where("LOWER(name) LIKE ?", search).
				Or("LOWER(full_address) LIKE ?", search).
				Or("LOWER(province) LIKE ?", search),
		)
	}
	if filterInput.Province != "" {
		condition = condition.Where("LOWER(province) LIKE ?", "%"+strings.ToLower(filterInput.Province)+"%")
	}

	var totalCount int64
	condition.Count(&totalCount)

	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)

	var venues []model.Venue
	if err := condition.Preload("Photos").Order("id DESC").Find(&venues).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       venues,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	})
}

func GetVenueBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "slug is required", nil)
	}

	var venue model.Venue
	if err := database.DB.Preload("Photos").Where("slug = ?", slug).First(&venue).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Venue not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, venue)
}

func CreateVenue(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateVenue").(model.CreateVenueInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA VENUE TO LOCALS FAIL"))
	}
	photoUrls, _ := c.Locals("photoUrls").([]string)

	db := database.DB
	tx := db.Begin()

	newVenue := new(model.Venue)
	copier.Copy(&newVenue, input)
	if newVenue.Active == nil {
		active := true
		newVenue.Active = &active
	}
	newVenue.Slug = helper.GenerateUniqueVenueSlug(tx, input.Name, 0)

	if err := tx.Create(&newVenue).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	for _, url := range photoUrls {
		photo := model.VenuePhoto{VenueId: newVenue.ID, Url: url}
		if err := tx.Create(&photo).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
		}
	}

	tx.Commit()

	var created model.Venue
	if err := db.Preload("Photos").First(&created, newVenue.ID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, created)
}

func EditVenue(c *fiber.Ctx) error {
	input, ok := c.Locals("inputEditVenue").(model.EditVenueInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA VENUE TO LOCALS FAIL"))
	}
	venueId, ok := c.Locals("venueId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE VENUE ID TO LOCALS FAIL"))
	}
	photoUrls, _ := c.Locals("photoUrls").([]string)

	db := database.DB
	tx := db.Begin()

	var venue model.Venue
	if err := tx.First(&venue, venueId).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Venue not found", err)
	}

	if input.Name != nil {
		venue.Name = *input.Name
		venue.Slug = helper.GenerateUniqueVenueSlug(tx, *input.Name, venue.ID)
	}
	if input.Phone != nil {
		venue.Phone = *input.Phone
	}
	if input.Description != nil {
		venue.Description = input.Description
	}
	if input.Province != nil {
		venue.Province = *input.Province
	}
	if input.FullAddress != nil {
		venue.FullAddress = *input.FullAddress
	}
	if input.Capacity != nil {
		venue.Capacity = *input.Capacity
	}
	if input.Active != nil {
		venue.Active = input.Active
	}

	if err := tx.Save(&venue).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	for _, url := range photoUrls {
		photo := model.VenuePhoto{VenueId: venue.ID, Url: url}
		if err := tx.Create(&photo).Error; err != nil {
			tx.Rollback()
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
		}
	}

	tx.Commit()

	var updated model.Venue
	if err := db.Preload("Photos").First(&updated, venueId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, updated)
}

func DeleteVenues(c *fiber.Ctx) error {
	db := database.DB
	arrayId := c.Locals("deleteIds").(model.ArrayId)
	ids := arrayId.IDs

	if err := db.Model(&model.Venue{}).Where("id in ?", ids).Update("active", false).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, ids)
}

func DeleteVenuePhoto(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)

	var photo model.VenuePhoto
	if err := database.DB.First(&photo, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Photo not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := database.DB.Delete(&photo).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	helper.DestroyImage(photo.Url)
	return utils.SuccessResponse(c, fiber.StatusOK, photo.ID)
}
