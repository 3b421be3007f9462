package model

type Service struct {
	DTO
	Name        string          `gorm:"not null" validate:"required" json:"name"`
	CategoryId  uint            `gorm:"not null" json:"categoryId"`
	Description string          `json:"description"`
	ImageUrl    string          `json:"imageUrl"`
	Active      *bool           `gorm:"not null, default:true" json:"isActive"`
	Category    ServiceCategory `gorm:"foreignKey:CategoryId;references:ID" json:"category"`
}

type CreateServiceInput struct {
	Name        string `json:"name" validate:"required"`
	CategoryId  uint   `json:"categoryId" validate:"required"`
	Description string `json:"description"`
	Active      *bool  `json:"isActive"`
}

type EditServiceInput struct {
	Name        *string `json:"name"`
	CategoryId  *uint   `json:"categoryId"`
	Description *string `json:"description"`
	Active      *bool   `json:"isActive"`
}

type FilterService struct {
	Pagination
	SearchKey  string `json:"searchKey"`
	CategoryId uint   `json:"categoryId"`
}
