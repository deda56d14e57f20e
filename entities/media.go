package entities

import (
	"time"

	"gorm.io/gorm"
)

type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

type MediaLog struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Date      time.Time `gorm:"index" json:"date"`
	MediaURL  string    `json:"media_url"` // opaque, usually a data URL
	MediaType MediaType `json:"media_type"`
	Note      string    `json:"note"`
	Tags      []string  `gorm:"serializer:json" json:"tags"`
	Liked     bool      `json:"liked"`
}

// HasTag reports whether tag is among the log's tags.
func (m MediaLog) HasTag(tag string) bool {
	for _, t := range m.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// AfterFind normalises the stored date to UTC.
func (m *MediaLog) AfterFind(tx *gorm.DB) error {
	m.Date = m.Date.UTC()
	return nil
}
