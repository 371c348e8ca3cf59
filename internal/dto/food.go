package dto

import (
	"time"

	"github.com/divyanshukaintura04-web/food-donation-system/internal/models"
)

// FoodItemDTO represents a food item in API responses
type FoodItemDTO struct {
	ID         uint64            `json:"id"`
	FoodName   string            `json:"food_name"`
	Quantity   string            `json:"quantity"`
	ExpiryDate *time.Time        `json:"expiry_date"`
	Status     models.FoodStatus `json:"status"`
	Donor      *DonorDTO         `json:"donor,omitempty"`
}

// ToFoodItemDTO converts a FoodItem model to FoodItemDTO
func ToFoodItemDTO(food models.FoodItem) FoodItemDTO {
	dto := FoodItemDTO{
		ID:         food.ID,
		FoodName:   food.FoodName,
		Quantity:   food.Quantity,
		ExpiryDate: food.ExpiryDate,
		Status:     food.Status,
	}

	// Include donor if preloaded
	if food.Donor.ID != 0 {
		donor := ToDonorDTO(food.Donor)
		dto.Donor = &donor
	}

	return dto
}

// ToFoodItemDTOs converts a slice of food items
func ToFoodItemDTOs(items []models.FoodItem) []FoodItemDTO {
	dtos := make([]FoodItemDTO, len(items))
	for i, item := range items {
		dtos[i] = ToFoodItemDTO(item)
	}
	return dtos
}
