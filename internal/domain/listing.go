package domain

import (
	"time"

	"github.com/google/uuid"
)

// Status tags the lifecycle of a listing. Listings are never deleted:
// when a newer duplicate arrives the old one is marked expired.
type Status string

const (
	StatusActive  Status = "active"
	StatusExpired Status = "expired"
)

// Listing is a classified rental ad. The source Link is the natural key:
// at most one active listing exists per link at any time.
type Listing struct {
	ID                uuid.UUID `json:"id"`
	Link              string    `json:"link"`
	Title             string    `json:"title"`
	Overview          string    `json:"overview,omitempty"`
	Description       string    `json:"description"`
	Price             string    `json:"price,omitempty"`
	Rooms             string    `json:"rooms,omitempty"`
	Zone              string    `json:"zone,omitempty"`
	MacroZone         string    `json:"zoneMacro,omitempty"`
	Reliability       int       `json:"reliability"`
	ReliabilityReason string    `json:"reliabilityReason,omitempty"`
	Status            Status    `json:"status"`
	Reports           int       `json:"reports"`
	ImageURL          string    `json:"imageUrl,omitempty"`
	PublishedAt       time.Time `json:"datePublished,omitempty"`
	CreatedAt         time.Time `json:"dateAdded"`
	City              string    `json:"city,omitempty"`
}

// RawPost is an RSS entry before classification.
type RawPost struct {
	Title     string    `json:"title"`
	Link      string    `json:"link"`
	Summary   string    `json:"summary"`
	Published time.Time `json:"-"`
}

func (l *Listing) IsActive() bool {
	return l.Status == StatusActive
}
