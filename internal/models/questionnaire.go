package models

import (
	"database/sql/driver"
	"time"

	"github.com/google/uuid"
)

// QuestionnaireData is the health and lifestyle profile a user submits.
// swagger:model QuestionnaireData
type QuestionnaireData struct {
	// General data
	Name          string  `json:"nombre" validate:"required"`
	WhatsappPhone string  `json:"telefono_whatsapp"`
	Age           int     `json:"edad" validate:"required,gt=0,lt=130"`
	BirthDate     string  `json:"fecha_nacimiento" validate:"required"`
	Sex           string  `json:"sexo" validate:"required"`
	HeightCm      float64 `json:"estatura" validate:"required,gt=0,lt=300"`
	WeightKg      float64 `json:"peso" validate:"required,gt=0,lt=500"`

	// Goals
	MainGoal       string   `json:"objetivo_principal" validate:"required"`
	SecondaryGoals []string `json:"objetivos_secundarios"`

	// Activity
	OfficeJob      bool   `json:"trabajo_oficina"`
	PhysicalJob    bool   `json:"trabajo_fisico"`
	Housework      bool   `json:"labores_hogar"`
	RotatingShifts bool   `json:"turnos_rotativos"`
	ExtraExercise  string `json:"ejercicio_adicional"`
	ExerciseDays   int    `json:"dias_ejercicio" validate:"gte=0,lte=7"`

	// Health
	Conditions           []string `json:"padecimientos"`
	ControlledMedication bool     `json:"medicamentos_controlados"`
	Symptoms             []string `json:"sintomas"`

	// Habits
	Smokes           bool   `json:"fuma"`
	DrinksAlcohol    bool   `json:"consume_alcohol"`
	AlcoholFrequency string `json:"frecuencia_alcohol"`

	// Eating
	Allergies        []string `json:"alergias"`
	Vegetarian       bool     `json:"vegetariano"`
	DislikedFoods    []string `json:"alimentos_no_deseados"`
	TypicalBreakfast string   `json:"desayuno_tipico"`
	TypicalLunch     string   `json:"comida_tipica"`
	TypicalDinner    string   `json:"cena_tipica"`
	FavoriteDish     string   `json:"platillo_favorito"`

	// Eating out
	RestaurantFrequency string  `json:"frecuencia_restaurantes"`
	AverageTicket       float64 `json:"ticket_promedio" validate:"gte=0"`

	// Injuries and restrictions
	Injuries          []string `json:"lesiones_restricciones"`
	InjuryDescription string   `json:"descripcion_lesion"`
}

// Normalize replaces nil lists with empty ones so stored and fetched
// documents always carry the same shape.
func (q *QuestionnaireData) Normalize() {
	for _, list := range []*[]string{
		&q.SecondaryGoals,
		&q.Conditions,
		&q.Symptoms,
		&q.Allergies,
		&q.DislikedFoods,
		&q.Injuries,
	} {
		if *list == nil {
			*list = []string{}
		}
	}
}

// Value implements driver.Valuer.
func (q QuestionnaireData) Value() (driver.Value, error) {
	q.Normalize()
	return jsonValue(q)
}

// Scan implements sql.Scanner.
func (q *QuestionnaireData) Scan(src any) error {
	if err := scanJSON(src, q); err != nil {
		return err
	}
	q.Normalize()
	return nil
}

// QuestionnaireResponse is one stored submission. The latest one per user wins.
// swagger:model QuestionnaireResponse
type QuestionnaireResponse struct {
	ID        uuid.UUID         `db:"id" json:"id"`
	UserID    uuid.UUID         `db:"user_id" json:"user_id"`
	Data      QuestionnaireData `db:"data" json:"data"`
	CreatedAt time.Time         `db:"created_at" json:"created_at"`
}
