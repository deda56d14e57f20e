package care

import (
	"fmt"
	"math"
	"time"

	"lawncare/entities"
)

const (
	// 10 mm of water over one m2 is 10 L.
	WaterLitersPerSquareMeter = 10.0
	// Recommended nitrogen per application.
	NitrogenGramsPerSquareMeter = 2.0
)

// TaskDetails is the recommendation shown next to a task. Available is false
// when no formula applies or an input would divide by zero.
type TaskDetails struct {
	Amount      float64 `json:"amount"`
	Unit        string  `json:"unit,omitempty"`
	Description string  `json:"description"`
	Available   bool    `json:"available"`
}

// Round rounds half up to the nearest integer.
func Round(x float64) float64 { return math.Floor(x + 0.5) }

// WateringPlan returns the liters needed for the whole lawn and the minutes
// the irrigation takes to deliver them. ok is false for a non-positive rate.
func WateringPlan(p entities.LawnProfile) (liters, minutes float64, ok bool) {
	liters = WaterLitersPerSquareMeter * p.Area
	if p.IrrigationRate <= 0 {
		return liters, 0, false
	}
	return liters, Round(liters / p.IrrigationRate), true
}

// FertilizerGrams returns the product mass delivering the recommended
// nitrogen over area. ok is false for a non-positive nitrogen percentage.
func FertilizerGrams(area, nitrogenPct float64) (float64, bool) {
	if nitrogenPct <= 0 {
		return 0, false
	}
	nitrogen := NitrogenGramsPerSquareMeter * area
	return Round(nitrogen / (nitrogenPct / 100)), true
}

// Details computes the recommendation for t. fert is the active fertilizer and may be nil.
func Details(t entities.TaskType, p entities.LawnProfile, fert *entities.Fertilizer) TaskDetails {
	switch t {
	case entities.TaskMowing:
		return TaskDetails{Amount: p.TargetHeight, Unit: "mm", Description: "target cut height", Available: true}
	case entities.TaskWatering:
		liters, minutes, ok := WateringPlan(p)
		if !ok {
			return TaskDetails{Description: "irrigation rate not configured"}
		}
		return TaskDetails{
			Amount:      minutes,
			Unit:        "min",
			Description: fmt.Sprintf("about %sL of water", formatNumber(liters)),
			Available:   true,
		}
	case entities.TaskFertilizing:
		if fert == nil {
			return TaskDetails{Description: "no fertilizer configured"}
		}
		grams, ok := FertilizerGrams(p.Area, fert.NitrogenPercentage)
		if !ok {
			return TaskDetails{Description: fmt.Sprintf("%s has no nitrogen content", fert.Name)}
		}
		return TaskDetails{Amount: grams, Unit: "g", Description: fmt.Sprintf("using %s", fert.Name), Available: true}
	default:
		// No formula yet for aeration or topdressing.
		return TaskDetails{}
	}
}

// LaborCost is the cost of a completed task of duration minutes at an hourly wage.
func LaborCost(duration int, hourly float64) float64 {
	return Round(float64(duration) / 60 * hourly)
}

// WageCost is the cost of manually logged work; operand order follows the
// labor entry form (rate per minute first).
func WageCost(hourly float64, minutes int) float64 {
	return Round(hourly / 60 * float64(minutes))
}

func TypeLabel(t entities.TaskType) string {
	switch t {
	case entities.TaskMowing:
		return "Mowing"
	case entities.TaskWatering:
		return "Watering"
	case entities.TaskFertilizing:
		return "Fertilizing"
	case entities.TaskAeration:
		return "Aeration"
	case entities.TaskTopdressing:
		return "Topdressing"
	}
	return string(t)
}

func LaborDescription(t entities.TaskType, duration int) string {
	return fmt.Sprintf("Labor: %s (%d min)", TypeLabel(t), duration)
}

func PersonLaborDescription(p entities.Person, minutes int) string {
	return fmt.Sprintf("Labor: %s (%d min)", p, minutes)
}

type taskTemplate struct {
	Type     entities.TaskType
	OffsetD  int
	Duration int
}

var batch = []taskTemplate{
	{Type: entities.TaskMowing, OffsetD: 0, Duration: 30},
	{Type: entities.TaskWatering, OffsetD: 2, Duration: 15},
	{Type: entities.TaskFertilizing, OffsetD: 5, Duration: 10},
}

// DeriveTasks builds the care schedule for p starting at now. The batch shape
// does not vary with p yet; callers re-derive whenever p changes.
func DeriveTasks(p entities.LawnProfile, now time.Time, newID func() string) []entities.Task {
	out := make([]entities.Task, 0, len(batch))
	for _, tt := range batch {
		out = append(out, entities.Task{
			ID:       newID(),
			Type:     tt.Type,
			Date:     now.AddDate(0, 0, tt.OffsetD),
			Duration: tt.Duration,
		})
	}
	return out
}

func formatNumber(v float64) string {
	if v == math.Trunc(v) {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}
