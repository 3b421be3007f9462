package model

type PackageType struct {
	DTO
	Name        string         `gorm:"not null" validate:"required" json:"name"`
	Description string         `json:"description"`
	Active      *bool          `gorm:"not null, default:true" json:"isActive"`
	Packages    []EventPackage `gorm:"foreignKey:PackageTypeId" json:"packages,omitempty"`
}

type CreatePackageTypeInput struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"omitempty"`
	Active      *bool  `json:"isActive"`
}

type EditPackageTypeInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description" validate:"omitempty"`
	Active      *bool   `json:"isActive"`
}

type FilterPackageType struct {
	Pagination
	SearchKey string `json:"searchKey"`
}
