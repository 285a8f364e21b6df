package models

import (
	"database/sql/driver"
	"time"

	"github.com/google/uuid"
)

// PlanSchemaVersion is written with every new plan. Version 1 documents carry
// single-recipe meals without options and still decode into PlanData.
const PlanSchemaVersion = 2

// PlanTypeTrial marks the free single-day plan.
const PlanTypeTrial = "trial"

// Option labels for meal alternatives.
const (
	OptionRecommended = "recomendada"
	OptionFast        = "rapida"
	OptionEconomical  = "economica"
)

// Macros is the daily macronutrient split in grams.
// swagger:model Macros
type Macros struct {
	Protein float64 `json:"proteinas"`
	Carbs   float64 `json:"carbohidratos"`
	Fat     float64 `json:"grasas"`
}

// Value implements driver.Valuer.
func (m Macros) Value() (driver.Value, error) {
	return jsonValue(m)
}

// Scan implements sql.Scanner.
func (m *Macros) Scan(src any) error {
	return scanJSON(src, m)
}

// MealOption is one prepared alternative for a meal.
type MealOption struct {
	Label         string   `json:"etiqueta"`
	Name          string   `json:"nombre"`
	PrepTime      string   `json:"tiempo_prep"`
	Ingredients   []string `json:"ingredientes"`
	Steps         []string `json:"pasos"`
	Substitutions []string `json:"sustituciones,omitempty"`
	Tip           string   `json:"tip,omitempty"`
	Calories      int      `json:"calorias"`
}

// Meal is one slot of a day.
type Meal struct {
	Type        string       `json:"tipo"`
	Name        string       `json:"nombre"`
	Ingredients []string     `json:"ingredientes,omitempty"`
	Calories    int          `json:"calorias"`
	Preparation string       `json:"preparacion,omitempty"`
	Tip         string       `json:"tip,omitempty"`
	Options     []MealOption `json:"opciones,omitempty"`
}

// PlanDay groups the meals of one day.
type PlanDay struct {
	Day   string `json:"dia"`
	Meals []Meal `json:"comidas"`
}

// Exercise is one entry of a routine.
type Exercise struct {
	Name string `json:"nombre"`
	Sets int    `json:"series"`
	Reps string `json:"repeticiones"`
	Rest string `json:"descanso"`
}

// Routine is a workout for one day.
type Routine struct {
	Day       string     `json:"dia"`
	Goal      string     `json:"objetivo_rutina"`
	Duration  string     `json:"duracion"`
	Benefits  []string   `json:"beneficios"`
	Exercises []Exercise `json:"ejercicios"`
	Tips      []string   `json:"tips,omitempty"`
}

// ExerciseGuide holds home and gym routines.
type ExerciseGuide struct {
	Home []Routine `json:"rutina_casa"`
	Gym  []Routine `json:"rutina_gimnasio"`
	Tips []string  `json:"tips,omitempty"`
}

// PlanData is the stored plan document.
// swagger:model PlanData
type PlanData struct {
	Days            []PlanDay           `json:"dias"`
	Recommendations []string            `json:"recomendaciones,omitempty"`
	ShoppingList    map[string][]string `json:"lista_super,omitempty"`
	ExerciseGuide   *ExerciseGuide      `json:"guia_ejercicios,omitempty"`
}

// Value implements driver.Valuer.
func (p PlanData) Value() (driver.Value, error) {
	return jsonValue(p)
}

// Scan implements sql.Scanner.
func (p *PlanData) Scan(src any) error {
	return scanJSON(src, p)
}

// MealPlan is a generated plan. Plans are never modified after insert.
// swagger:model MealPlan
type MealPlan struct {
	ID              uuid.UUID  `db:"id" json:"id"`
	UserID          uuid.UUID  `db:"user_id" json:"user_id"`
	PlanType        string     `db:"plan_type" json:"plan_type"`
	SchemaVersion   int        `db:"schema_version" json:"schema_version"`
	PlanData        PlanData   `db:"plan_data" json:"plan_data"`
	Recommendations StringList `db:"recommendations" json:"recommendations"`
	CaloriesTarget  int        `db:"calories_target" json:"calories_target"`
	Macros          Macros     `db:"macros" json:"macros"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
}

// MealPlanSummary is the admin view of a plan without its payload.
type MealPlanSummary struct {
	ID             uuid.UUID `db:"id" json:"id"`
	PlanType       string    `db:"plan_type" json:"plan_type"`
	CaloriesTarget int       `db:"calories_target" json:"calories_target"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}
