package food

import "errors"

// Structural validation errors. A failed attribute block excludes the
// food from one framework; a failed identity field rejects the record.

var (
	ErrMissingID       = errors.New("food id is required")
	ErrMissingName     = errors.New("food name is required")
	ErrInvalidCategory = errors.New("food category is not in the category enumeration")

	// Ayurveda block
	ErrInvalidVirya       = errors.New("virya must be hot or cold")
	ErrMissingDoshaEffects = errors.New("dosha effect map is required")
	ErrInvalidDosha       = errors.New("dosha effect key is not a known dosha")
	ErrInvalidDoshaEffect = errors.New("dosha effect must be increase, decrease or neutral")
	ErrInvalidTaste       = errors.New("taste tag is not in the taste enumeration")

	// Unani block
	ErrInvalidTemperamentLevel = errors.New("temperament level must be between 0 and 4")
	ErrInvalidDigestibility    = errors.New("digestibility must be between 1 and 5")
	ErrInvalidFlatulence       = errors.New("flatulence potential must be low, medium or high")
	ErrInvalidHumor            = errors.New("humor effect key is not a known humor")
	ErrInvalidHumorEffect      = errors.New("humor effect must be -1, 0 or +1")

	// TCM block
	ErrInvalidThermalNature = errors.New("thermal nature is not in the thermal enumeration")

	// Clinical block
	ErrNegativeNutrient             = errors.New("nutrient quantities cannot be negative")
	ErrInvalidGlycemicIndex         = errors.New("glycemic index must be between 0 and 110")
	ErrInvalidMicronutrientDensity  = errors.New("micronutrient density must be between 0 and 10")
	ErrInvalidAntiInflammatoryScore = errors.New("anti-inflammatory score must be between -5 and +5")
)
