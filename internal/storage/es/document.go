package es

import (
	"time"

	"github.com/google/uuid"

	"github.com/Abla25/roomradar/internal/domain"
)

// Document is the listing shape stored in the index.
type Document struct {
	ID          string    `json:"id"`
	Link        string    `json:"link"`
	Title       string    `json:"title"`
	Overview    string    `json:"overview"`
	Description string    `json:"description"`
	Price       string    `json:"price"`
	Rooms       string    `json:"rooms"`
	Zone        string    `json:"zone"`
	MacroZone   string    `json:"macro_zone"`
	Reliability int       `json:"reliability"`
	Status      string    `json:"status"`
	Reports     int       `json:"reports"`
	ImageURL    string    `json:"image_url"`
	PublishedAt time.Time `json:"published_at"`
	CreatedAt   time.Time `json:"created_at"`
	City        string    `json:"city"`
	IndexedAt   time.Time `json:"indexed_at"`
}

func toDocument(listing domain.Listing) Document {
	if listing.ID == uuid.Nil {
		listing.ID = uuid.New()
	}
	return Document{
		ID:          listing.ID.String(),
		Link:        listing.Link,
		Title:       listing.Title,
		Overview:    listing.Overview,
		Description: listing.Description,
		Price:       listing.Price,
		Rooms:       listing.Rooms,
		Zone:        listing.Zone,
		MacroZone:   listing.MacroZone,
		Reliability: listing.Reliability,
		Status:      string(listing.Status),
		Reports:     listing.Reports,
		ImageURL:    listing.ImageURL,
		PublishedAt: listing.PublishedAt,
		CreatedAt:   listing.CreatedAt,
		City:        listing.City,
		IndexedAt:   time.Now(),
	}
}

func (d Document) toListing() domain.Listing {
	id, _ := uuid.Parse(d.ID)
	return domain.Listing{
		ID:          id,
		Link:        d.Link,
		Title:       d.Title,
		Overview:    d.Overview,
		Description: d.Description,
		Price:       d.Price,
		Rooms:       d.Rooms,
		Zone:        d.Zone,
		MacroZone:   d.MacroZone,
		Reliability: d.Reliability,
		Status:      domain.Status(d.Status),
		Reports:     d.Reports,
		ImageURL:    d.ImageURL,
		PublishedAt: d.PublishedAt,
		CreatedAt:   d.CreatedAt,
		City:        d.City,
	}
}
