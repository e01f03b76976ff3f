package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CarStatusAvailable = "Available"

	// MaxCarImages caps the gallery of a car
	MaxCarImages = 10
)

// Car is an inventory entry. Status is free-form ("Available", "On Order", ...).
type Car struct {
	ID          int64    `db:"id"`
	Name        string   `db:"name"`
	Type        string   `db:"type"`
	Images      []string `db:"images"`
	Price       float64  `db:"price"`
	Location    string   `db:"location"`
	Features    []string `db:"features"`
	Status      string   `db:"status"`
	Description string   `db:"description"`
}

// Clone returns a copy that shares no slices with c
func (c Car) Clone() Car {
	c.Images = append([]string(nil), c.Images...)
	c.Features = append([]string(nil), c.Features...)
	return c
}

// CapImages drops images beyond MaxCarImages, keeping order
func (c *Car) CapImages() {
	if len(c.Images) > MaxCarImages {
		c.Images = c.Images[:MaxCarImages]
	}
}

// CarDocument is what an upload records in the cars collection
type CarDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Type      string             `bson:"type"`
	Image     string             `bson:"image"`
	Price     float64            `bson:"price"`
	Location  string             `bson:"location"`
	Features  []string           `bson:"features"`
	Status    string             `bson:"status"`
	CreatedAt time.Time          `bson:"createdAt"`
}
