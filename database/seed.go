package database

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"lawncare/entities"
	"lawncare/pkg/care"
)

//go:embed seed.yaml
var defaultSeed []byte

type Seed struct {
	Profile    SeedProfile     `yaml:"profile"`
	Fertilizer *SeedFertilizer `yaml:"fertilizer"`
	Wages      SeedWages       `yaml:"wages"`
	Expenses   []SeedExpense   `yaml:"expenses"`
	Inventory  []SeedInventory `yaml:"inventory"`
	MediaLogs  []SeedMediaLog  `yaml:"media_logs"`
}

type SeedProfile struct {
	Area           float64 `yaml:"area"`
	GrassType      string  `yaml:"grass_type"`
	TargetHeight   float64 `yaml:"target_height"`
	MowerType      string  `yaml:"mower_type"`
	IrrigationRate float64 `yaml:"irrigation_rate"`
}

type SeedFertilizer struct {
	ID                 string  `yaml:"id"`
	Name               string  `yaml:"name"`
	NitrogenPercentage float64 `yaml:"nitrogen_percentage"`
}

type SeedWages struct {
	Father float64 `yaml:"father"`
	Mother float64 `yaml:"mother"`
	Child  float64 `yaml:"child"`
}

type SeedExpense struct {
	ID          string    `yaml:"id"`
	Date        time.Time `yaml:"date"`
	Amount      float64   `yaml:"amount"`
	Description string    `yaml:"description"`
	Type        string    `yaml:"type"`
}

type SeedInventory struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Category    string  `yaml:"category"`
	StockQty    float64 `yaml:"stock_qty"`
	Unit        string  `yaml:"unit"`
	CostPerUnit float64 `yaml:"cost_per_unit"`
	ExpenseID   string  `yaml:"expense_id"`
}

type SeedMediaLog struct {
	ID        string   `yaml:"id"`
	DaysAgo   int      `yaml:"days_ago"`
	MediaType string   `yaml:"media_type"`
	MediaURL  string   `yaml:"media_url"`
	Note      string   `yaml:"note"`
	Tags      []string `yaml:"tags"`
}

// LoadSeed reads a seed file, or the embedded default when path is empty.
func LoadSeed(path string) (*Seed, error) {
	data := defaultSeed
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read seed %s: %w", path, err)
		}
		data = b
	}
	var s Seed
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	return &s, nil
}

// ApplySeed fills an empty database. It is a no-op once a profile row exists.
// Inventory and media are listed newest first, so they are inserted in
// reverse to keep that order on read.
func ApplySeed(db *gorm.DB, s *Seed, now time.Time, newID func() string) error {
	var n int64
	if err := db.Model(&entities.LawnProfile{}).Count(&n).Error; err != nil {
		return fmt.Errorf("count profile: %w", err)
	}
	if n > 0 {
		return nil
	}

	profile := entities.LawnProfile{
		ID:             entities.ProfileID,
		Area:           s.Profile.Area,
		GrassType:      entities.GrassType(s.Profile.GrassType),
		TargetHeight:   s.Profile.TargetHeight,
		MowerType:      entities.MowerType(s.Profile.MowerType),
		IrrigationRate: s.Profile.IrrigationRate,
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&profile).Error; err != nil {
			return fmt.Errorf("seed profile: %w", err)
		}
		wages := entities.Wages{ID: entities.WagesID, Father: s.Wages.Father, Mother: s.Wages.Mother, Child: s.Wages.Child}
		if err := tx.Create(&wages).Error; err != nil {
			return fmt.Errorf("seed wages: %w", err)
		}
		if s.Fertilizer != nil {
			f := entities.Fertilizer{ID: s.Fertilizer.ID, Name: s.Fertilizer.Name, NitrogenPercentage: s.Fertilizer.NitrogenPercentage, Active: true}
			if f.ID == "" {
				f.ID = newID()
			}
			if err := tx.Create(&f).Error; err != nil {
				return fmt.Errorf("seed fertilizer: %w", err)
			}
		}
		for _, e := range s.Expenses {
			row := entities.Expense{ID: e.ID, Date: e.Date.UTC(), Amount: e.Amount, Description: e.Description, Type: entities.ExpenseType(e.Type)}
			if row.ID == "" {
				row.ID = newID()
			}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("seed expense %s: %w", e.ID, err)
			}
		}
		for i := len(s.Inventory) - 1; i >= 0; i-- {
			it := s.Inventory[i]
			row := entities.InventoryItem{
				ID:          it.ID,
				Name:        it.Name,
				Category:    entities.InventoryCategory(it.Category),
				StockQty:    it.StockQty,
				Unit:        entities.Unit(it.Unit),
				CostPerUnit: it.CostPerUnit,
			}
			if row.ID == "" {
				row.ID = newID()
			}
			if it.ExpenseID != "" {
				id := it.ExpenseID
				row.ExpenseID = &id
			}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("seed inventory %s: %w", it.ID, err)
			}
		}
		for i := len(s.MediaLogs) - 1; i >= 0; i-- {
			m := s.MediaLogs[i]
			row := entities.MediaLog{
				ID:        m.ID,
				Date:      now.AddDate(0, 0, -m.DaysAgo),
				MediaURL:  m.MediaURL,
				MediaType: entities.MediaType(m.MediaType),
				Note:      m.Note,
				Tags:      care.NormalizeTags(m.Tags),
			}
			if row.ID == "" {
				row.ID = newID()
			}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("seed media log %s: %w", m.ID, err)
			}
		}
		tasks := care.DeriveTasks(profile, now, newID)
		if len(tasks) > 0 {
			if err := tx.Create(&tasks).Error; err != nil {
				return fmt.Errorf("seed tasks: %w", err)
			}
		}
		return nil
	})
}
