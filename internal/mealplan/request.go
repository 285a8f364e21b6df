package mealplan

import (
	"errors"
	"fmt"

	"github.com/sbilibin2017/gw-nutriplan/internal/models"
	"github.com/sbilibin2017/gw-nutriplan/internal/nutrition"
)

// Meal count limits for a full plan.
const (
	MinMealsPerDay   = 3
	MaxMealsPerDay   = 6
	TrialMealsPerDay = 4
)

var ErrUnsupportedMealCount = errors.New("unsupported meals per day")

// Variant selects between the free single-day plan and the weekly plan.
type Variant int

const (
	Trial Variant = iota
	Full
)

func (v Variant) String() string {
	if v == Full {
		return "full"
	}
	return "trial"
}

// WeekDays are the day labels of a full plan.
var WeekDays = []string{"Lunes", "Martes", "Miércoles", "Jueves", "Viernes", "Sábado", "Domingo"}

// Slot is one meal of the day and its share of the calorie target.
type Slot struct {
	Type  string
	Share float64
}

var slotTables = map[int][]Slot{
	3: {{"Desayuno", 0.30}, {"Comida", 0.40}, {"Cena", 0.30}},
	4: {{"Desayuno", 0.25}, {"Comida", 0.35}, {"Snack", 0.15}, {"Cena", 0.25}},
	5: {{"Desayuno", 0.25}, {"Snack AM", 0.10}, {"Comida", 0.35}, {"Snack PM", 0.10}, {"Cena", 0.20}},
	6: {{"Desayuno", 0.20}, {"Snack AM", 0.10}, {"Comida", 0.30}, {"Snack PM", 0.10}, {"Cena", 0.20}, {"Colación nocturna", 0.10}},
}

// Slots returns the meal slots for a day with count meals.
func Slots(count int) ([]Slot, error) {
	slots, ok := slotTables[count]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedMealCount, count)
	}
	out := make([]Slot, len(slots))
	copy(out, slots)
	return out, nil
}

// Request is everything needed to draft or synthesize a plan.
type Request struct {
	Variant       Variant
	Questionnaire models.QuestionnaireData
	Targets       nutrition.Targets
	Days          []string
	Slots         []Slot
}

// NewRequest builds a request for the variant. mealsPerDay only applies to full plans.
func NewRequest(variant Variant, q models.QuestionnaireData, targets nutrition.Targets, mealsPerDay int) (Request, error) {
	req := Request{
		Variant:       variant,
		Questionnaire: q,
		Targets:       targets,
	}

	count := TrialMealsPerDay
	req.Days = []string{WeekDays[0]}
	if variant == Full {
		count = mealsPerDay
		req.Days = append([]string(nil), WeekDays...)
	}

	slots, err := Slots(count)
	if err != nil {
		return Request{}, err
	}
	req.Slots = slots
	return req, nil
}

// SlotCalories is the calorie allotment of a slot.
func (r Request) SlotCalories(s Slot) int {
	return int(float64(r.Targets.Calories) * s.Share)
}
