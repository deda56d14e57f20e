package entities

type GrassType string

const (
	GrassBermuda     GrassType = "Bermuda"
	GrassZoysia      GrassType = "Zoysia"
	GrassStAugustine GrassType = "StAugustine"
	GrassFescue      GrassType = "Fescue"
)

type MowerType string

const (
	MowerRotary MowerType = "Rotary"
	MowerReel   MowerType = "Reel"
)

// LawnProfile is a singleton row; ID is always ProfileID.
// Area is in m2, TargetHeight in mm and IrrigationRate in L/min.
type LawnProfile struct {
	ID             uint      `gorm:"primaryKey" json:"-"`
	Area           float64   `json:"area"`
	GrassType      GrassType `json:"grass_type"`
	TargetHeight   float64   `json:"target_height"`
	MowerType      MowerType `json:"mower_type"`
	IrrigationRate float64   `json:"irrigation_rate"`
}

const ProfileID uint = 1

type Fertilizer struct {
	ID                 string  `gorm:"primaryKey" json:"id"`
	Name               string  `json:"name"`
	NitrogenPercentage float64 `json:"nitrogen_percentage"`
	Active             bool    `json:"active"`
}

type Person string

const (
	PersonFather Person = "father"
	PersonMother Person = "mother"
	PersonChild  Person = "child"
)

// Wages holds hourly rates; singleton row like LawnProfile.
type Wages struct {
	ID     uint    `gorm:"primaryKey" json:"-"`
	Father float64 `json:"father"`
	Mother float64 `json:"mother"`
	Child  float64 `json:"child"`
}

const WagesID uint = 1

// Rate returns the hourly rate of p, false for an unknown person.
func (w Wages) Rate(p Person) (float64, bool) {
	switch p {
	case PersonFather:
		return w.Father, true
	case PersonMother:
		return w.Mother, true
	case PersonChild:
		return w.Child, true
	}
	return 0, false
}
