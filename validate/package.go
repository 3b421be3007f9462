package validate

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"venue_manager/cache"
	"venue_manager/constants"
	"venue_manager/database"
	"venue_manager/helper"
	"venue_manager/model"
	"venue_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// cleanPackageForm mirrors the on-change input hygiene of the edit
// screen: every numeric text field is stripped of non-digits and
// redundant leading zeros before validation sees it.
func cleanPackageForm(form *model.PackageFormInput) {
	form.Name = helper.FormatPackageName(form.Name)
	form.Description = strings.TrimSpace(form.Description)
	form.ExcessPaxPrice = helper.CleanDecimal(form.ExcessPaxPrice)
	for i := range form.PaxPriceTiers {
		form.PaxPriceTiers[i].PaxCount = helper.CleanDigits(form.PaxPriceTiers[i].PaxCount)
		form.PaxPriceTiers[i].Price = helper.CleanDecimal(form.PaxPriceTiers[i].Price)
	}
}

// checkDuplicatePackageName runs the local pre-check over the cached
// catalog, then the authoritative lookup. A lookup failure never counts
// as a duplicate; the unique index has the final word at write time.
func checkDuplicatePackageName(c *fiber.Ctx, name string, packageTypeId uint, excludeId uint) (bool, error) {
	if view := cache.GetCatalog(c.UserContext()); view != nil {
		if helper.IsDuplicatePackageNameLocal(view.Packages, name, packageTypeId, excludeId) {
			return true, nil
		}
	}

	dup, err := helper.IsDuplicatePackageName(database.DB, name, packageTypeId, excludeId)
	if err != nil {
		log.Printf("authoritative duplicate lookup failed: %v", err)
		return false, err
	}
	return dup, nil
}

func CreatePackage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var form model.PackageFormInput
		if err := c.BodyParser(&form); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		cleanPackageForm(&form)

		if err := helper.ValidatePackageForm(form); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		var packageType model.PackageType
		if err := database.DB.First(&packageType, form.PackageTypeId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Package type does not exist", fmt.Errorf("packageTypeId not found"), "packageTypeId")
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		var serviceCount int64
		if err := database.DB.Model(&model.Service{}).Where("id IN ? AND active = ?", form.ServiceIds, true).Count(&serviceCount).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		if serviceCount != int64(len(form.ServiceIds)) {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "One or more selected services are unavailable", nil, "serviceIds")
		}

		dup, err := checkDuplicatePackageName(c, form.Name, form.PackageTypeId, 0)
		if dup {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.DUPLICATE_PACKAGE_NAME, nil, "name")
		}
		if err != nil {
			c.Locals("duplicateCheckDegraded", true)
		}

		c.Locals("inputCreatePackage", form)
		return c.Next()
	}
}

func EditPackage(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params := c.Params(key)
		valueKey, err := strconv.Atoi(params)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DATA_INPUT_IS_NOT_NUMBER, errors.New("params invalid"))
		}
		packageId := uint(valueKey)

		var form model.PackageFormInput
		if err := c.BodyParser(&form); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Invalid input %s", err.Error()),
			})
		}

		cleanPackageForm(&form)

		if err := helper.ValidatePackageForm(form); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		var original model.EventPackage
		if err := database.DB.Preload("PaxPriceTiers").Preload("Services").First(&original, packageId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponse(c, fiber.StatusNotFound, "Package not found", err)
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		originalServiceIds := make([]uint, 0, len(original.Services))
		for _, svc := range original.Services {
			originalServiceIds = append(originalServiceIds, svc.ID)
		}

		if !helper.HasPackageChanges(original, originalServiceIds, form) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.NO_FORM_CHANGES, nil)
		}

		var packageType model.PackageType
		if err := database.DB.First(&packageType, form.PackageTypeId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, "Package type does not exist", fmt.Errorf("packageTypeId not found"), "packageTypeId")
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		dup, err := checkDuplicatePackageName(c, form.Name, form.PackageTypeId, packageId)
		if dup {
			return utils.ErrorResponseHaveKey(c, fiber.StatusBadRequest, constants.DUPLICATE_PACKAGE_NAME, nil, "name")
		}
		if err != nil {
			c.Locals("duplicateCheckDegraded", true)
		}

		c.Locals("inputEditPackage", form)
		c.Locals("inputPackageId", packageId)
		return c.Next()
	}
}
