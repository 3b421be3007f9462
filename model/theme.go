package model

type Theme struct {
	DTO
	Name           string `gorm:"not null;uniqueIndex" validate:"required" json:"name"`
	Description    string `json:"description"`
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
	AccentColor    string `json:"accentColor"`
	ImageUrl       string `json:"imageUrl"`
	Active         *bool  `gorm:"not null, default:true" json:"isActive"`
}

type CreateThemeInput struct {
	Name           string `json:"name" validate:"required"`
	Description    string `json:"description"`
	PrimaryColor   string `json:"primaryColor" validate:"required,hexcolor"`
	SecondaryColor string `json:"secondaryColor" validate:"required,hexcolor"`
	AccentColor    string `json:"accentColor" validate:"omitempty,hexcolor"`
	Active         *bool  `json:"isActive"`
}

type EditThemeInput struct {
	Name           *string `json:"name"`
	Description    *string `json:"description"`
	PrimaryColor   *string `json:"primaryColor" validate:"omitempty,hexcolor"`
	SecondaryColor *string `json:"secondaryColor" validate:"omitempty,hexcolor"`
	AccentColor    *string `json:"accentColor" validate:"omitempty,hexcolor"`
	Active         *bool   `json:"isActive"`
}

type FilterTheme struct {
	Pagination
	SearchKey string `json:"searchKey"`
}
