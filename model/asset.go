package model

type Asset struct {
	DTO
	Name              string `gorm:"not null" validate:"required" json:"name"`
	Description       string `json:"description"`
	Quantity          int    `gorm:"not null" json:"quantity"`
	LowStockThreshold int    `json:"lowStockThreshold"`
	ImageUrl          string `json:"imageUrl"`
	Active            *bool  `gorm:"not null, default:true" json:"isActive"`
	LowStock          bool   `gorm:"-" json:"lowStock"`
}

type CreateAssetInput struct {
	Name              string `json:"name" validate:"required"`
	Description       string `json:"description"`
	Quantity          int    `json:"quantity" validate:"gte=0"`
	LowStockThreshold int    `json:"lowStockThreshold" validate:"gte=0"`
	Active            *bool  `json:"isActive"`
}

type EditAssetInput struct {
	Name              *string `json:"name"`
	Description       *string `json:"description"`
	Quantity          *int    `json:"quantity" validate:"omitempty,gte=0"`
	LowStockThreshold *int    `json:"lowStockThreshold" validate:"omitempty,gte=0"`
	Active            *bool   `json:"isActive"`
}

type FilterAsset struct {
	Pagination
	SearchKey string `json:"searchKey"`
	LowStock  *bool  `json:"lowStock"`
}
