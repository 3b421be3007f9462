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
	"gorm.io/gorm"
)

func GetThemes(c *fiber.Ctx) error {
	filterInput := new(model.FilterTheme)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, err)
	}

	db := database.DB
	condition := db.Model(&model.Theme{})

	if filterInput.SearchKey != "" {
		condition = condition.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filterInput.SearchKey)+"%")
	}

	var totalCount int64
	condition.Count(&totalCount)

	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)

	var themes []model.Theme
	if err := condition.Order("name ASC").Find(&themes).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       themes,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	})
}

func GetThemeById(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)

	var theme model.Theme
	if err := database.DB.First(&theme, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Theme not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, theme)
}

func CreateTheme(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateTheme").(model.CreateThemeInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA THEME TO LOCALS FAIL"))
	}
	imageUrl, _ := c.Locals("imageUrl").(string)

	theme := model.Theme{
		Name:           input.Name,
		Description:    input.Description,
		PrimaryColor:   input.PrimaryColor,
		SecondaryColor: input.SecondaryColor,
		AccentColor:    input.AccentColor,
		ImageUrl:       imageUrl,
		Active:         input.Active,
	}
	if theme.Active == nil {
		active := true
		theme.Active = &active
	}

	if err := database.DB.Create(&theme).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.DUPLICATE_THEME_NAME, nil, "name")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, theme)
}

func EditTheme(c *fiber.Ctx) error {
	input, ok := c.Locals("inputEditTheme").(model.EditThemeInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA THEME TO LOCALS FAIL"))
	}
	id, ok := c.Locals("themeId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE THEME ID TO LOCALS FAIL"))
	}
	imageUrl, _ := c.Locals("imageUrl").(string)

	db := database.DB
	var theme model.Theme
	if err := db.First(&theme, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Theme not found", err)
	}

	updateData := map[string]interface{}{}
	if input.Name != nil {
		updateData["name"] = *input.Name
	}
	if input.Description != nil {
		updateData["description"] = *input.Description
	}
	if input.PrimaryColor != nil {
		updateData["primary_color"] = *input.PrimaryColor
	}
	if input.SecondaryColor != nil {
		updateData["secondary_color"] = *input.SecondaryColor
	}
	if input.AccentColor != nil {
		updateData["accent_color"] = *input.AccentColor
	}
	if input.Active != nil {
		updateData["active"] = *input.Active
	}
	if imageUrl != "" && imageUrl != theme.ImageUrl {
		updateData["image_url"] = imageUrl
	}

	if len(updateData) == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.NO_FORM_CHANGES, nil)
	}

	if err := db.Model(&theme).Updates(updateData).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.DUPLICATE_THEME_NAME, nil, "name")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	if err := db.First(&theme, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, theme)
}

func DeleteThemes(c *fiber.Ctx) error {
	db := database.DB
	arrayId := c.Locals("deleteIds").(model.ArrayId)
	ids := arrayId.IDs

	if err := db.Model(&model.Theme{}).Where("id in ?", ids).Update("active", false).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, ids)
}
