package handler

import (
	"errors"
	"strings"

	"venue_manager/config"
	"venue_manager/constants"
	"venue_manager/database"
	"venue_manager/model"
	"venue_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetAssets(c *fiber.Ctx) error {
	filterInput := new(model.FilterAsset)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INPUT, err)
	}

	db := database.DB
	condition := db.Model(&model.Asset{}).Where("active = ?", true)

	if filterInput.SearchKey != "" {
		condition = condition.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(filterInput.SearchKey)+"%")
	}
	if filterInput.LowStock != nil && *filterInput.LowStock {
		condition = condition.Where("quantity <= low_stock_threshold")
	}

	var totalCount int64
	condition.Count(&totalCount)

	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)

	var assets []model.Asset
	if err := condition.Order("id DESC").Find(&assets).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	for i := range assets {
		assets[i].LowStock = assets[i].Quantity <= assets[i].LowStockThreshold
	}

	return utils.SuccessResponse(c, fiber.StatusOK, &model.ResponseCustom{
		Rows:       assets,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	})
}

func GetAssetById(c *fiber.Ctx) error {
	id := c.Locals("inputId").(int)

	var asset model.Asset
	if err := database.DB.First(&asset, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Asset not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	asset.LowStock = asset.Quantity <= asset.LowStockThreshold
	return utils.SuccessResponse(c, fiber.StatusOK, asset)
}

func CreateAsset(c *fiber.Ctx) error {
	input, ok := c.Locals("inputCreateAsset").(model.CreateAssetInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA ASSET TO LOCALS FAIL"))
	}
	imageUrl, _ := c.Locals("imageUrl").(string)

	asset := model.Asset{
		Name:              input.Name,
		Description:       input.Description,
		Quantity:          input.Quantity,
		LowStockThreshold: input.LowStockThreshold,
		ImageUrl:          imageUrl,
		Active:            input.Active,
	}
	if asset.Active == nil {
		active := true
		asset.Active = &active
	}

	if err := database.DB.Create(&asset).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	asset.LowStock = asset.Quantity <= asset.LowStockThreshold
	return utils.SuccessResponse(c, fiber.StatusOK, asset)
}

func EditAsset(c *fiber.Ctx) error {
	input, ok := c.Locals("inputEditAsset").(model.EditAssetInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE DATA ASSET TO LOCALS FAIL"))
	}
	id, ok := c.Locals("assetId").(uint)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_PARSE_DATA_TO_LOCALS, errors.New("PARSE ASSET ID TO LOCALS FAIL"))
	}
	imageUrl, _ := c.Locals("imageUrl").(string)

	db := database.DB
	var asset model.Asset
	if err := db.First(&asset, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Asset not found", err)
	}

	updateData := map[string]interface{}{}
	if input.Name != nil {
		updateData["name"] = *input.Name
	}
	if input.Description != nil {
		updateData["description"] = *input.Description
	}
	if input.Quantity != nil {
		updateData["quantity"] = *input.Quantity
	}
	if input.LowStockThreshold != nil {
		updateData["low_stock_threshold"] = *input.LowStockThreshold
	}
	if input.Active != nil {
		updateData["active"] = *input.Active
	}
	if imageUrl != "" && imageUrl != asset.ImageUrl {
		updateData["image_url"] = imageUrl
	}

	if len(updateData) == 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.NO_FORM_CHANGES, nil)
	}

	if err := db.Model(&asset).Updates(updateData).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	if err := db.First(&asset, id).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	asset.LowStock = asset.Quantity <= asset.LowStockThreshold
	if asset.LowStock {
		if to := config.Config("ADMIN_ALERT_EMAIL"); to != "" {
			utils.SendLowStockAlertEmail(to, asset.Name, asset.Quantity)
		}
	}
	return utils.SuccessResponse(c, fiber.StatusOK, asset)
}

func DeleteAssets(c *fiber.Ctx) error {
	db := database.DB
	arrayId := c.Locals("deleteIds").(model.ArrayId)
	ids := arrayId.IDs

	if err := db.Model(&model.Asset{}).Where("id in ?", ids).Update("active", false).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, ids)
}
