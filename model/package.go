package model

type EventPackage struct {
	DTO
	Name           string         `gorm:"not null" validate:"required" json:"name"`
	PackageTypeId  uint           `gorm:"not null" json:"packageTypeId"`
	Description    string         `json:"description"`
	ExcessPaxPrice float64        `json:"excessPaxPrice"`
	Active         *bool          `gorm:"not null, default:true" json:"isActive"`
	PackageType    PackageType    `gorm:"foreignKey:PackageTypeId;references:ID" json:"packageType"`
	PaxPriceTiers  []PaxPriceTier `gorm:"foreignKey:PackageId" json:"paxPriceTiers"`
	Services       []Service      `gorm:"many2many:package_services;joinForeignKey:PackageId;joinReferences:ServiceId" json:"services"`
}

// PaxPriceTier rows are owned by their package and replaced wholesale on update.
type PaxPriceTier struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	PackageId uint    `gorm:"not null;index" json:"packageId"`
	PaxCount  int     `gorm:"not null" json:"paxCount"`
	Price     float64 `gorm:"not null" json:"price"`
}

func (PaxPriceTier) TableName() string {
	return "package_pax_prices"
}

type PackageService struct {
	PackageId uint `gorm:"primaryKey" json:"packageId"`
	ServiceId uint `gorm:"primaryKey" json:"serviceId"`
}

func (PackageService) TableName() string {
	return "package_services"
}

// PackageFormInput carries the numeric fields as text, exactly as edited,
// so cleaning and leading-zero checks run against what the admin typed.
type PackageFormInput struct {
	PackageTypeId  uint                `json:"packageTypeId"`
	Name           string              `json:"name"`
	Description    string              `json:"description"`
	ExcessPaxPrice string              `json:"excessPaxPrice"`
	Active         *bool               `json:"isActive"`
	PaxPriceTiers  []PaxPriceTierInput `json:"paxPriceTiers"`
	ServiceIds     []uint              `json:"serviceIds"`
}

type PaxPriceTierInput struct {
	PaxCount string `json:"paxCount"`
	Price    string `json:"price"`
}

type FilterPackage struct {
	Pagination
	SearchKey     string `json:"searchKey"`
	PackageTypeId uint   `json:"packageTypeId"`
}

// CatalogView is the denormalized read model the dashboard tables render from.
type CatalogView struct {
	Packages     []EventPackage    `json:"packages"`
	PackageTypes []PackageType     `json:"packageTypes"`
	Services     []Service         `json:"services"`
	Categories   []ServiceCategory `json:"categories"`
}
