// Package food contains the catalog-side domain model: the Food record
// and the four optional framework attribute blocks it may carry.
// A food missing the block a framework requires is excluded from that
// framework's scoring, never scored as zero.
package food

import (
	"github.com/google/uuid"
)

// Food represents a single catalog entry. It is a read-only input to
// the engine: no pipeline stage mutates a Food.
type Food struct {
	ID       uuid.UUID
	Name     string
	Category Category
	Tags     []string

	// Framework attribute blocks. Each is optional; nil means the food
	// is not described for that framework.
	Ayurveda *AyurvedaAttributes
	Unani    *UnaniAttributes
	TCM      *TCMAttributes
	Clinical *ClinicalAttributes
}

// Validate checks the framework-independent identity fields.
func (f Food) Validate() error {
	if f.ID == uuid.Nil {
		return ErrMissingID
	}
	if f.Name == "" {
		return ErrMissingName
	}
	if !f.Category.Valid() {
		return ErrInvalidCategory
	}
	return nil
}

// HasTag reports whether the food carries the given free-form tag.
func (f Food) HasTag(tag string) bool {
	for _, t := range f.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// IsCaffeinated reports whether the food should be treated as a
// caffeinated beverage for incompatibility and lifestyle rules.
// Either the generic tag or the clinical flag qualifies.
func (f Food) IsCaffeinated() bool {
	if f.HasTag(TagCaffeinated) {
		return true
	}
	return f.Clinical != nil && f.Clinical.Caffeinated
}

// IsIronSource reports whether the food counts as an iron source for
// the clinical iron+dairy incompatibility rule.
func (f Food) IsIronSource() bool {
	if f.Category == CategoryMeat {
		return true
	}
	return f.Clinical != nil && f.Clinical.HasNutrientTag(NutrientIron)
}

// IsVegetarian reports whether the food is acceptable under a
// vegetarian-only preference filter.
func (f Food) IsVegetarian() bool {
	return f.Category != CategoryMeat
}

// Category is the fixed food category enumeration.
type Category string

const (
	CategoryGrain     Category = "grain"
	CategoryVegetable Category = "vegetable"
	CategoryFruit     Category = "fruit"
	CategoryDairy     Category = "dairy"
	CategoryMeat      Category = "meat"
	CategorySpice     Category = "spice"
	CategoryOil       Category = "oil"
	CategoryLegume    Category = "legume"
	CategoryNut       Category = "nut"
	CategoryBeverage  Category = "beverage"
	CategoryEgg       Category = "egg"
	CategorySweetener Category = "sweetener"
)

// Valid reports whether the category is part of the enumeration.
func (c Category) Valid() bool {
	switch c {
	case CategoryGrain, CategoryVegetable, CategoryFruit, CategoryDairy,
		CategoryMeat, CategorySpice, CategoryOil, CategoryLegume,
		CategoryNut, CategoryBeverage, CategoryEgg, CategorySweetener:
		return true
	}
	return false
}

// Free-form tags with rule significance.
const (
	TagCaffeinated = "caffeinated"
	TagLight       = "light"
	TagHeavy       = "heavy"
	TagOily        = "oily"
	TagDry         = "dry"
	TagGluten      = "gluten"
)
