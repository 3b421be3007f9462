package model

type ServiceCategory struct {
	DTO
	Name     string    `gorm:"not null" validate:"required" json:"name"`
	Services []Service `gorm:"foreignKey:CategoryId" json:"services,omitempty"`
}

type CreateServiceCategoryInput struct {
	Name string `json:"name" validate:"required"`
}

type EditServiceCategoryInput struct {
	Name *string `json:"name"`
}

type FilterServiceCategory struct {
	Pagination
	SearchKey string `json:"searchKey"`
}
