package mealplan

import (
	"bytes"
	"encoding/json"
	"strings"
	"text/template"

	"github.com/sbilibin2017/gw-nutriplan/internal/models"
	"github.com/sbilibin2017/gw-nutriplan/internal/nutrition"
)

// SystemPrompt is sent as the system message of every draft.
const SystemPrompt = "Eres un nutriólogo experto que crea planes alimenticios personalizados. Siempre respondes únicamente con JSON válido."

const promptText = `Genera un plan alimenticio {{if .Full}}semanal{{else}}de prueba para un día{{end}} personalizado en español para una persona con las siguientes características:

DATOS PERSONALES:
- Nombre: {{.Q.Name}}
- Edad: {{.Q.Age}} años
- Sexo: {{.Q.Sex}}
- Peso: {{.Q.WeightKg}} kg
- Estatura: {{.Q.HeightCm}} cm

OBJETIVO: {{.Q.MainGoal}}
Objetivos secundarios: {{list .Q.SecondaryGoals "Ninguno"}}

ACTIVIDAD:
- Trabajo de oficina: {{yesno .Q.OfficeJob}}
- Trabajo físico: {{yesno .Q.PhysicalJob}}
- Labores del hogar: {{yesno .Q.Housework}}
- Turnos rotativos: {{yesno .Q.RotatingShifts}}
- Ejercicio: {{text .Q.ExtraExercise "No especificado"}} - {{.Q.ExerciseDays}} días/semana

SALUD:
- Padecimientos: {{list .Q.Conditions "Ninguno"}}
- Medicamentos controlados: {{yesno .Q.ControlledMedication}}
- Síntomas reportados: {{list .Q.Symptoms "Ninguno"}}
- Lesiones o restricciones: {{list .Q.Injuries "Ninguna"}}{{if .Q.InjuryDescription}} ({{.Q.InjuryDescription}}){{end}}

HÁBITOS:
- Fuma: {{yesno .Q.Smokes}}
- Alcohol: {{yesno .Q.DrinksAlcohol}}{{if .Q.AlcoholFrequency}} - {{.Q.AlcoholFrequency}}{{end}}

PREFERENCIAS ALIMENTICIAS:
- Alergias: {{list .Q.Allergies "Ninguna"}}
- Vegetariano: {{yesno .Q.Vegetarian}}
- Alimentos no deseados: {{list .Q.DislikedFoods "Ninguno"}}
- Desayuno típico: {{text .Q.TypicalBreakfast "No especificado"}}
- Comida típica: {{text .Q.TypicalLunch "No especificado"}}
- Cena típica: {{text .Q.TypicalDinner "No especificado"}}
- Platillo favorito: {{text .Q.FavoriteDish "No especificado"}}
- Restaurantes: {{text .Q.RestaurantFrequency "No especificado"}}, ticket promedio ${{.Q.AverageTicket}}

REQUERIMIENTOS CALCULADOS:
- Calorías objetivo: {{.T.Calories}} kcal/día
- Proteínas: {{.T.Macros.Protein}}g
- Carbohidratos: {{.T.Macros.Carbs}}g
- Grasas: {{.T.Macros.Fat}}g

INSTRUCCIONES:
- Plan para {{len .Days}} día(s): {{join .Days ", "}}.
- Cada día incluye exactamente {{len .Slots}} comidas en este orden: {{join .SlotNames ", "}}. No repitas platillos entre días.
- Para cada comida incluye nombre del platillo, ingredientes, calorías aproximadas, preparación y un tip.
{{- if .Full}}
- Cada comida incluye 3 opciones con etiqueta "recomendada", "rapida" y "economica", cada una con tiempo_prep, ingredientes, pasos, sustituciones, tip y calorias.
{{- end}}
- Incluye lista_super con los ingredientes agrupados por categoría.
- Incluye guia_ejercicios con rutina_casa y rutina_gimnasio adecuadas a sus lesiones o restricciones.
- Incluye 5 recomendaciones personalizadas basadas en sus objetivos y condiciones.

Responde SOLO con JSON válido con esta estructura:
{{.Shape}}`

var promptTemplate = template.Must(template.New("prompt").Funcs(template.FuncMap{
	"join": strings.Join,
	"list": func(items []string, empty string) string {
		if len(items) == 0 {
			return empty
		}
		return strings.Join(items, ", ")
	},
	"text": func(s, empty string) string {
		if strings.TrimSpace(s) == "" {
			return empty
		}
		return s
	},
	"yesno": func(b bool) string {
		if b {
			return "Sí"
		}
		return "No"
	},
}).Parse(promptText))

type promptData struct {
	Full      bool
	Q         models.QuestionnaireData
	T         nutrition.Targets
	Days      []string
	Slots     []Slot
	SlotNames []string
	Shape     string
}

// BuildPrompt renders the instruction document for the request.
func BuildPrompt(req Request) (string, error) {
	shape, err := json.MarshalIndent(exampleShape(req), "", "  ")
	if err != nil {
		return "", err
	}

	names := make([]string, len(req.Slots))
	for i, s := range req.Slots {
		names[i] = s.Type
	}

	var buf bytes.Buffer
	err = promptTemplate.Execute(&buf, promptData{
		Full:      req.Variant == Full,
		Q:         req.Questionnaire,
		T:         req.Targets,
		Days:      req.Days,
		Slots:     req.Slots,
		SlotNames: names,
		Shape:     string(shape),
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

// exampleShape is the response skeleton shown to the model: one day with
// every slot, placeholders for text and the slot calories as numbers.
func exampleShape(req Request) models.PlanData {
	day := models.PlanDay{Day: req.Days[0]}
	for _, s := range req.Slots {
		meal := models.Meal{
			Type:        s.Type,
			Name:        "...",
			Ingredients: []string{"..."},
			Calories:    req.SlotCalories(s),
			Preparation: "...",
			Tip:         "...",
		}
		if req.Variant == Full {
			for _, label := range []string{models.OptionRecommended, models.OptionFast, models.OptionEconomical} {
				meal.Options = append(meal.Options, models.MealOption{
					Label:         label,
					Name:          "...",
					PrepTime:      "15 min",
					Ingredients:   []string{"..."},
					Steps:         []string{"..."},
					Substitutions: []string{"..."},
					Tip:           "...",
					Calories:      req.SlotCalories(s),
				})
			}
		}
		day.Meals = append(day.Meals, meal)
	}

	routine := models.Routine{
		Day:       "Lunes",
		Goal:      "...",
		Duration:  "30 min",
		Benefits:  []string{"..."},
		Exercises: []models.Exercise{{Name: "...", Sets: 3, Reps: "12", Rest: "60 s"}},
		Tips:      []string{"..."},
	}

	return models.PlanData{
		Days:            []models.PlanDay{day},
		Recommendations: []string{"...", "...", "...", "...", "..."},
		ShoppingList:    map[string][]string{"Proteínas": {"..."}, "Frutas y verduras": {"..."}},
		ExerciseGuide: &models.ExerciseGuide{
			Home: []models.Routine{routine},
			Gym:  []models.Routine{routine},
			Tips: []string{"..."},
		},
	}
}
