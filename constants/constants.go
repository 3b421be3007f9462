package constants

const (
	ERROR_INPUT                = "Invalid input data"
	ERROR_INTERNAL_ERROR       = "Internal server error"
	ERROR_CREATE               = "Failed to create record"
	ERROR_EDIT                 = "Failed to update record"
	ERROR_PARSE_DATA_TO_LOCALS = "Failed to read data from request context"
	DATA_INPUT_IS_NOT_NUMBER   = "Input value is not a number"
	ERROR_LOAD_CATALOG         = "Failed to load catalog"
	ERROR_SAVE                 = "Failed to save. Please try again."

	PACKAGE_TYPE_REQUIRED   = "Please select a package type."
	NAME_REQUIRED           = "Package name is required."
	NAME_TOO_LONG           = "Package name must be 150 characters or fewer."
	DESCRIPTION_REQUIRED    = "Description is required."
	EXCESS_PAX_PRICE_NUMBER = "Excess pax price must be a non-negative number."
	TIER_REQUIRED           = "At least one pax price tier is required."
	DUPLICATE_PAX_COUNT     = "Duplicate pax counts are not allowed."
	TIER_INVALID            = "Pax counts and prices must be non-negative numbers."
	SERVICE_REQUIRED        = "Please select at least one service."
	NO_FORM_CHANGES         = "No changes to save."

	DUPLICATE_PACKAGE_NAME  = "A package with this name already exists under this package type."
	DUPLICATE_CATEGORY_NAME = "A service category with this name already exists."
	DUPLICATE_TYPE_NAME     = "A package type with this name already exists."
	DUPLICATE_SERVICE_NAME  = "A service with this name already exists in this category."
	DUPLICATE_THEME_NAME    = "A theme with this name already exists."
	DUPLICATE_VENUE_NAME    = "A venue with this name already exists."
	DUPLICATE_ASSET_NAME    = "An asset with this name already exists."

	MAX_NAME_LENGTH = 150
)
