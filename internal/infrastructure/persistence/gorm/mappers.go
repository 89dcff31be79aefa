// Package gorm provides mapping between domain entities and GORM models
package gorm

import (
	"encoding/json"

	"github.com/equilibra/v1/internal/domain/food"
	"github.com/equilibra/v1/internal/domain/recommendation"
)

// FoodToModel converts a domain food to a GORM model
func FoodToModel(f food.Food) (*FoodModel, error) {
	model := &FoodModel{
		ID:       f.ID,
		Name:     f.Name,
		Category: string(f.Category),
		Tags:     f.Tags,
	}

	var err error
	if model.Ayurveda, err = marshalBlock(f.Ayurveda); err != nil {
		return nil, err
	}
	if model.Unani, err = marshalBlock(f.Unani); err != nil {
		return nil, err
	}
	if model.TCM, err = marshalBlock(f.TCM); err != nil {
		return nil, err
	}
	if model.Clinical, err = marshalBlock(f.Clinical); err != nil {
		return nil, err
	}
	return model, nil
}

// ModelToFood converts a GORM model to a domain food
func ModelToFood(model *FoodModel) (food.Food, error) {
	f := food.Food{
		ID:       model.ID,
		Name:     model.Name,
		Category: food.Category(model.Category),
		Tags:     model.Tags,
	}

	if len(model.Ayurveda) > 0 {
		var block food.AyurvedaAttributes
		if err := json.Unmarshal(model.Ayurveda, &block); err != nil {
			return food.Food{}, err
		}
		f.Ayurveda = &block
	}
	if len(model.Unani) > 0 {
		var block food.UnaniAttributes
		if err := json.Unmarshal(model.Unani, &block); err != nil {
			return food.Food{}, err
		}
		f.Unani = &block
	}
	if len(model.TCM) > 0 {
		var block food.TCMAttributes
		if err := json.Unmarshal(model.TCM, &block); err != nil {
			return food.Food{}, err
		}
		f.TCM = &block
	}
	if len(model.Clinical) > 0 {
		var block food.ClinicalAttributes
		if err := json.Unmarshal(model.Clinical, &block); err != nil {
			return food.Food{}, err
		}
		f.Clinical = &block
	}
	return f, nil
}

// OverrideToModel converts a domain override to a GORM model
func OverrideToModel(o *recommendation.Override) *OverrideModel {
	return &OverrideModel{
		ID:             o.ID,
		UserID:         o.UserID,
		ItemID:         o.ItemID,
		PractitionerID: o.PractitionerID,
		Action:         string(o.Action),
		Reason:         o.Reason,
		NewScore:       o.NewScore,
		CreatedAt:      o.CreatedAt,
	}
}

// ModelToOverride converts a GORM model to a domain override
func ModelToOverride(model *OverrideModel) *recommendation.Override {
	return &recommendation.Override{
		ID:             model.ID,
		UserID:         model.UserID,
		ItemID:         model.ItemID,
		PractitionerID: model.PractitionerID,
		Action:         recommendation.OverrideAction(model.Action),
		Reason:         model.Reason,
		NewScore:       model.NewScore,
		CreatedAt:      model.CreatedAt,
	}
}

func marshalBlock(block interface{}) (JSONField, error) {
	if isNilBlock(block) {
		return nil, nil
	}
	raw, err := json.Marshal(block)
	if err != nil {
		return nil, err
	}
	return JSONField(raw), nil
}

func isNilBlock(block interface{}) bool {
	switch b := block.(type) {
	case *food.AyurvedaAttributes:
		return b == nil
	case *food.UnaniAttributes:
		return b == nil
	case *food.TCMAttributes:
		return b == nil
	case *food.ClinicalAttributes:
		return b == nil
	}
	return block == nil
}
