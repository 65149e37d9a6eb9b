package entity

import "time"

// Field is one tracked plot belonging to a farmer.
type Field struct {
	ID           string     `json:"id" firestore:"id"`
	FarmerID     string     `json:"farmer_id" firestore:"farmer_id"`
	Name         string     `json:"name" firestore:"name"`
	Location     string     `json:"location" firestore:"location"`
	Size         float64    `json:"size" firestore:"size"`
	SizeUnit     string     `json:"size_unit" firestore:"size_unit"` // "acres", "hectares"
	CropType     string     `json:"crop_type,omitempty" firestore:"crop_type,omitempty"`
	PlantingDate *time.Time `json:"planting_date,omitempty" firestore:"planting_date,omitempty"`
	Notes        string     `json:"notes,omitempty" firestore:"notes,omitempty"`
	CreatedAt    time.Time  `json:"created_at" firestore:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" firestore:"updated_at"`
}

// WeatherSnapshot is a point-in-time reading for a field's location.
type WeatherSnapshot struct {
	Location    string    `json:"location"`
	Temperature float64   `json:"temperature"`
	Humidity    int       `json:"humidity"`
	WindSpeed   float64   `json:"wind_speed"`
	Condition   string    `json:"condition"`
	ObservedAt  time.Time `json:"observed_at"`
}
