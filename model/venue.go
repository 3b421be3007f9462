package model

type Venue struct {
	DTO
	Slug        string       `gorm:"uniqueIndex" json:"slug"`
	Name        string       `gorm:"not null" validate:"required" json:"name"`
	Phone       string       `json:"phone"`
	Description *string      `json:"description"`
	Province    string       `json:"province"`
	FullAddress string       `json:"fullAddress"`
	Capacity    int          `json:"capacity"`
	Active      *bool        `gorm:"not null, default:true" json:"isActive"`
	Photos      []VenuePhoto `gorm:"foreignKey:VenueId" json:"photos"`
}

type VenuePhoto struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	VenueId uint   `gorm:"not null;index" json:"venueId"`
	Url     string `gorm:"not null" json:"url"`
}

type CreateVenueInput struct {
	Name        string  `json:"name" validate:"required"`
	Phone       string  `json:"phone"`
	Description *string `json:"description"`
	Province    string  `json:"province"`
	FullAddress string  `json:"fullAddress"`
	Capacity    int     `json:"capacity" validate:"gte=0"`
	Active      *bool   `json:"isActive"`
}

type EditVenueInput struct {
	Name        *string `json:"name"`
	Phone       *string `json:"phone"`
	Description *string `json:"description"`
	Province    *string `json:"province"`
	FullAddress *string `json:"fullAddress"`
	Capacity    *int    `json:"capacity" validate:"omitempty,gte=0"`
	Active      *bool   `json:"isActive"`
}

type FilterVenue struct {
	Pagination
	SearchKey string `json:"searchKey"`
	Province  string `json:"province"`
}
