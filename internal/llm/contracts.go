package llm

import "context"

// Station is one nearby station with walking access.
type Station struct {
	Name           string   `json:"name"`
	Lines          []string `json:"lines,omitempty"`
	WalkingMinutes *int     `json:"walking_minutes,omitempty"`
}

// PropertyFields is the normalized extraction record. Every field is
// optional: models return subsets and absent stays absent, never defaulted.
// Monetary units follow the source documents: price in 万円, fees in 円/月,
// areas in m² after unit normalization.
type PropertyFields struct {
	PropertyType  *string `json:"property_type,omitempty"`
	PropertyName  *string `json:"property_name,omitempty"`
	Address       *string `json:"address,omitempty"`
	Prefecture    *string `json:"prefecture,omitempty"`
	City          *string `json:"city,omitempty"`
	LandRights    *string `json:"land_rights,omitempty"`
	CurrentStatus *string `json:"current_status,omitempty"`
	HandoverDate  *string `json:"handover_date,omitempty"`
	BuildYear     *int    `json:"build_year,omitempty"`
	Structure     *string `json:"structure,omitempty"`
	TotalFloors   *int    `json:"total_floors,omitempty"`
	FloorNumber   *int    `json:"floor_number,omitempty"`
	RoomLayout    *string `json:"room_layout,omitempty"`
	Orientation   *string `json:"orientation,omitempty"`

	Price         *float64 `json:"price,omitempty"`
	ManagementFee *int     `json:"management_fee,omitempty"`
	RepairFee     *int     `json:"repair_fee,omitempty"`

	ExclusiveArea *float64 `json:"exclusive_area,omitempty"`
	BalconyArea   *float64 `json:"balcony_area,omitempty"`
	LandArea      *float64 `json:"land_area,omitempty"`
	BuildingArea  *float64 `json:"building_area,omitempty"`

	Parking    *string `json:"parking,omitempty"`
	PetPolicy  *string `json:"pet_policy,omitempty"`
	CornerRoom *bool   `json:"corner_room,omitempty"`

	Stations []Station `json:"stations,omitempty"`
}

// ExtractResult reports which model produced the record, for provenance.
type ExtractResult struct {
	Fields PropertyFields
	Raw    []byte // sanitized JSON as persisted
	Model  string
}

// FieldExtractor is the interface the pipeline depends on.
type FieldExtractor interface {
	ExtractProperties(ctx context.Context, ocrText string) (ExtractResult, error)
}

// ModelSource yields the ordered model list at call time, so runtime
// reordering takes effect on the next document.
type ModelSource interface {
	Models() []string
}

// StaticModels adapts a fixed list to ModelSource (tests, one-shot runs).
type StaticModels []string

func (m StaticModels) Models() []string { return m }
