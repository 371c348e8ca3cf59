package database

import (
	"fmt"

	"gorm.io/gorm"
)

// AddIndexes adds performance-critical indexes to the database
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		table   string
		name    string
		columns string
	}{
		// Request indexes for the admin dashboard filtering and sorting
		{"requests", "idx_requests_user_id", "user_id"},
		{"requests", "idx_requests_food_id", "food_id"},
		{"requests", "idx_requests_status", "status"},
		{"requests", "idx_requests_request_date", "request_date"},

		// Food item indexes for the availability listing
		{"food_items", "idx_food_items_donor_id", "donor_id"},
		{"food_items", "idx_food_items_status", "status"},

		// Delivery indexes for the volunteer dashboard
		{"deliveries", "idx_deliveries_vol_id", "vol_id"},
		{"deliveries", "idx_deliveries_pickup_time", "pickup_time"},

		// Feedback lookup per donor
		{"feedbacks", "idx_feedbacks_donor_id", "donor_id"},
	}

	for _, idx := range indexes {
		// Check if index already exists
		var count int64
		err := db.Raw(`
			SELECT COUNT(*)
			FROM information_schema.statistics
			WHERE table_schema = DATABASE() AND table_name = ? AND index_name = ?
		`, idx.table, idx.name).Count(&count).Error

		if err != nil {
			return fmt.Errorf("failed to check index %s: %w", idx.name, err)
		}

		if count > 0 {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}
