package model

import "time"

// Category classifies a spatial layer.
type Category string

const (
	CategoryGreenArea Category = "green_area"
	CategoryBuilding  Category = "building"
	CategoryRoad      Category = "road"
	CategoryPOI       Category = "poi"
	CategoryOther     Category = "other"
)

// Valid reports whether c is one of the known layer categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryGreenArea, CategoryBuilding, CategoryRoad, CategoryPOI, CategoryOther:
		return true
	}
	return false
}

// SpatialData is the metadata for one map layer served by the external
// GeoServer. The WFS URLs default to the configured WMS base endpoint when
// not set explicitly.
type SpatialData struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:255;not null;index"`
	Category    Category  `json:"category" gorm:"type:varchar(32);not null;index"`
	Description string    `json:"description" gorm:"type:text"`
	Group       string    `json:"group" gorm:"column:group_label;size:255"` // group is reserved in MySQL
	WFSGetURL   string    `json:"wfsGetUrl" gorm:"size:512"`
	WFSPostURL  string    `json:"wfsPostUrl" gorm:"size:512"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
