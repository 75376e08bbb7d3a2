package models

import "github.com/google/uuid"

type Product struct {
	BaseModel
	Name           string   `json:"name"`
	Category       string   `gorm:"index" json:"category"`
	Price          float64  `json:"price"`
	Description    string   `json:"description"`
	ImageURL       string   `json:"image_url"`
	Specifications string   `json:"specifications"`
	Warranty       string   `json:"warranty"`
	Stock          int      `json:"stock"`
	Rating         float64  `json:"rating"`
	IsActive       bool     `gorm:"default:true" json:"is_active"`
	Reviews        []Review `json:"reviews,omitempty"`
}

type Review struct {
	BaseModel
	ProductID uuid.UUID `gorm:"type:uuid;index" json:"product_id"`
	Author    string    `json:"author"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
}
