package helper

import (
	"fmt"

	"venue_manager/model"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// GenerateUniqueVenueSlug derives a slug from name that no other venue
// holds. excludeId keeps a rename to the same name from bumping the
// venue off its own slug.
func GenerateUniqueVenueSlug(tx *gorm.DB, name string, excludeId uint) string {
	return uniqueSlug(slug.Make(name), func(candidate string) bool {
		var count int64
		tx.Model(&model.Venue{}).
			Where("slug = ? AND id != ?", candidate, excludeId).
			Count(&count)
		return count > 0
	})
}

func uniqueSlug(base string, taken func(string) bool) string {
	result := base
	for i := 1; taken(result); i++ {
		result = fmt.Sprintf("%s-%d", base, i)
	}
	return result
}
