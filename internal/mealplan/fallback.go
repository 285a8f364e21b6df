package mealplan

import (
	"sort"
	"strings"

	"github.com/sbilibin2017/gw-nutriplan/internal/models"
)

type dish struct {
	name          string
	prepTime      string
	ingredients   []string
	steps         []string
	substitutions []string
	tip           string
}

// catalog holds three dishes per meal category. Day n starts at dish n so
// consecutive days do not repeat the same menu.
var catalog = map[string][]dish{
	"desayuno": {
		{
			name:          "Avena con frutas",
			prepTime:      "10 min",
			ingredients:   []string{"avena", "plátano", "fresas", "leche descremada"},
			steps:         []string{"Cocina la avena con la leche.", "Agrega la fruta picada."},
			substitutions: []string{"leche de almendra en lugar de leche descremada"},
			tip:           "Prepara la avena la noche anterior para ahorrar tiempo.",
		},
		{
			name:          "Huevos revueltos con espinaca",
			prepTime:      "8 min",
			ingredients:   []string{"huevo", "espinaca", "tortilla de maíz", "jitomate"},
			steps:         []string{"Saltea la espinaca.", "Agrega los huevos batidos y revuelve.", "Sirve con tortilla."},
			substitutions: []string{"claras de huevo en lugar de huevo entero"},
			tip:           "Usa una sartén antiadherente para reducir el aceite.",
		},
		{
			name:          "Yogur griego con granola",
			prepTime:      "3 min",
			ingredients:   []string{"yogur griego", "granola", "miel", "nueces"},
			steps:         []string{"Sirve el yogur.", "Agrega la granola, la miel y las nueces."},
			substitutions: []string{"fruta picada en lugar de granola"},
			tip:           "Elige yogur sin azúcar añadida.",
		},
	},
	"snack": {
		{
			name:          "Frutos secos",
			prepTime:      "1 min",
			ingredients:   []string{"almendras", "nueces"},
			steps:         []string{"Sirve una porción de un puño."},
			substitutions: []string{"cacahuates naturales"},
			tip:           "Mide la porción, son densos en calorías.",
		},
		{
			name:          "Manzana con crema de cacahuate",
			prepTime:      "3 min",
			ingredients:   []string{"manzana", "crema de cacahuate"},
			steps:         []string{"Rebana la manzana.", "Unta una cucharada de crema de cacahuate."},
			substitutions: []string{"pera en lugar de manzana"},
			tip:           "Elige crema de cacahuate sin azúcar.",
		},
		{
			name:          "Pepino con limón y chile",
			prepTime:      "5 min",
			ingredients:   []string{"pepino", "limón", "chile en polvo"},
			steps:         []string{"Corta el pepino en bastones.", "Sazona con limón y chile."},
			substitutions: []string{"jícama en lugar de pepino"},
			tip:           "Un snack fresco y bajo en calorías.",
		},
	},
	"comida": {
		{
			name:          "Pollo con verduras y arroz integral",
			prepTime:      "30 min",
			ingredients:   []string{"pechuga de pollo", "brócoli", "zanahoria", "arroz integral"},
			steps:         []string{"Cocina el arroz.", "Asa la pechuga.", "Cuece las verduras al vapor y sirve."},
			substitutions: []string{"pescado blanco en lugar de pollo", "quinoa en lugar de arroz"},
			tip:           "Cocina porciones extra para la cena del día siguiente.",
		},
		{
			name:          "Tacos de pescado",
			prepTime:      "20 min",
			ingredients:   []string{"filete de pescado", "tortilla de maíz", "col morada", "aguacate"},
			steps:         []string{"Asa el pescado con limón.", "Arma los tacos con col y aguacate."},
			substitutions: []string{"camarón en lugar de pescado"},
			tip:           "Evita freír el pescado, ásalo o cocínalo al horno.",
		},
		{
			name:          "Lentejas con verduras",
			prepTime:      "35 min",
			ingredients:   []string{"lentejas", "jitomate", "cebolla", "calabacita"},
			steps:         []string{"Cuece las lentejas.", "Sofríe las verduras y mezcla."},
			substitutions: []string{"frijoles en lugar de lentejas"},
			tip:           "Acompaña con una fruta rica en vitamina C para absorber mejor el hierro.",
		},
	},
	"cena": {
		{
			name:          "Ensalada con atún",
			prepTime:      "10 min",
			ingredients:   []string{"lechuga", "jitomate", "atún en agua", "aceite de oliva"},
			steps:         []string{"Lava y corta las verduras.", "Agrega el atún y aliña con aceite de oliva."},
			substitutions: []string{"pollo deshebrado en lugar de atún"},
			tip:           "Cena al menos dos horas antes de dormir.",
		},
		{
			name:          "Quesadillas de champiñones",
			prepTime:      "12 min",
			ingredients:   []string{"tortilla de maíz", "queso panela", "champiñones"},
			steps:         []string{"Saltea los champiñones.", "Rellena las tortillas con queso y champiñones y calienta."},
			substitutions: []string{"flor de calabaza en lugar de champiñones"},
			tip:           "El queso panela aporta proteína con menos grasa.",
		},
		{
			name:          "Sopa de verduras con pollo",
			prepTime:      "25 min",
			ingredients:   []string{"caldo de pollo", "pechuga de pollo", "zanahoria", "calabacita"},
			steps:         []string{"Hierve el caldo.", "Agrega el pollo y las verduras y cocina 15 minutos."},
			substitutions: []string{"tofu en lugar de pollo"},
			tip:           "Prepara una olla grande y congela porciones.",
		},
	},
}

var ingredientCategories = map[string]string{
	"pechuga de pollo":   "Proteínas",
	"huevo":              "Proteínas",
	"filete de pescado":  "Proteínas",
	"atún en agua":       "Proteínas",
	"lentejas":           "Proteínas",
	"caldo de pollo":     "Proteínas",
	"leche descremada":   "Lácteos",
	"yogur griego":       "Lácteos",
	"queso panela":       "Lácteos",
	"avena":              "Cereales y granos",
	"granola":            "Cereales y granos",
	"arroz integral":     "Cereales y granos",
	"tortilla de maíz":   "Cereales y granos",
	"almendras":          "Semillas y grasas saludables",
	"nueces":             "Semillas y grasas saludables",
	"crema de cacahuate": "Semillas y grasas saludables",
	"aguacate":           "Semillas y grasas saludables",
	"aceite de oliva":    "Semillas y grasas saludables",
}

const defaultCategory = "Frutas y verduras"

// DefaultRecommendations close every synthesized plan.
var DefaultRecommendations = []string{
	"Bebe al menos 2 litros de agua al día",
	"Evita alimentos procesados",
	"Come despacio y mastica bien",
	"No te saltes comidas",
	"Descansa al menos 7 horas",
}

func slotCategory(slotType string) string {
	t := strings.ToLower(slotType)
	switch {
	case strings.HasPrefix(t, "desayuno"):
		return "desayuno"
	case strings.HasPrefix(t, "comida"):
		return "comida"
	case strings.HasPrefix(t, "cena"):
		return "cena"
	default:
		return "snack"
	}
}

// Fallback synthesizes a plan from static dishes and calorie proportions.
// It is deterministic: the same request always yields the same document.
func Fallback(req Request) models.PlanData {
	plan := models.PlanData{
		Recommendations: append([]string(nil), DefaultRecommendations...),
	}

	used := map[string]struct{}{}
	for di, dayName := range req.Days {
		day := models.PlanDay{Day: dayName}
		for _, slot := range req.Slots {
			dishes := catalog[slotCategory(slot.Type)]
			main := dishes[di%len(dishes)]
			kcal := req.SlotCalories(slot)

			meal := models.Meal{
				Type:        slot.Type,
				Name:        main.name,
				Ingredients: append([]string(nil), main.ingredients...),
				Calories:    kcal,
				Preparation: strings.Join(main.steps, " "),
				Tip:         main.tip,
			}
			for _, ing := range main.ingredients {
				used[ing] = struct{}{}
			}

			if req.Variant == Full {
				labels := []string{models.OptionRecommended, models.OptionFast, models.OptionEconomical}
				for oi, label := range labels {
					d := dishes[(di+oi)%len(dishes)]
					meal.Options = append(meal.Options, models.MealOption{
						Label:         label,
						Name:          d.name,
						PrepTime:      d.prepTime,
						Ingredients:   append([]string(nil), d.ingredients...),
						Steps:         append([]string(nil), d.steps...),
						Substitutions: append([]string(nil), d.substitutions...),
						Tip:           d.tip,
						Calories:      kcal,
					})
					for _, ing := range d.ingredients {
						used[ing] = struct{}{}
					}
				}
			}
			day.Meals = append(day.Meals, meal)
		}
		plan.Days = append(plan.Days, day)
	}

	plan.ShoppingList = shoppingList(used)
	plan.ExerciseGuide = exerciseGuide(len(req.Questionnaire.Injuries) > 0 || req.Questionnaire.InjuryDescription != "")
	return plan
}

func shoppingList(used map[string]struct{}) map[string][]string {
	list := map[string][]string{}
	for ing := range used {
		cat, ok := ingredientCategories[ing]
		if !ok {
			cat = defaultCategory
		}
		list[cat] = append(list[cat], ing)
	}
	for cat := range list {
		sort.Strings(list[cat])
	}
	return list
}

func exerciseGuide(hasInjuries bool) *models.ExerciseGuide {
	guide := &models.ExerciseGuide{
		Home: []models.Routine{
			{
				Day:      "Lunes",
				Goal:     "Fuerza de cuerpo completo",
				Duration: "30 min",
				Benefits: []string{"Mejora la fuerza", "Acelera el metabolismo"},
				Exercises: []models.Exercise{
					{Name: "Sentadillas", Sets: 3, Reps: "15", Rest: "45 s"},
					{Name: "Lagartijas", Sets: 3, Reps: "10", Rest: "45 s"},
					{Name: "Plancha", Sets: 3, Reps: "30 s", Rest: "30 s"},
				},
				Tips: []string{"Calienta 5 minutos antes de empezar"},
			},
			{
				Day:      "Miércoles",
				Goal:     "Cardio de bajo impacto",
				Duration: "25 min",
				Benefits: []string{"Salud cardiovascular", "Quema de calorías"},
				Exercises: []models.Exercise{
					{Name: "Jumping jacks", Sets: 4, Reps: "40 s", Rest: "20 s"},
					{Name: "Escaladores", Sets: 4, Reps: "30 s", Rest: "30 s"},
					{Name: "Marcha en el lugar", Sets: 3, Reps: "60 s", Rest: "20 s"},
				},
			},
			{
				Day:      "Viernes",
				Goal:     "Core y movilidad",
				Duration: "20 min",
				Benefits: []string{"Mejor postura", "Menos dolor de espalda"},
				Exercises: []models.Exercise{
					{Name: "Puente de glúteo", Sets: 3, Reps: "15", Rest: "30 s"},
					{Name: "Bird dog", Sets: 3, Reps: "10 por lado", Rest: "30 s"},
					{Name: "Estiramiento gato-camello", Sets: 2, Reps: "10", Rest: "20 s"},
				},
			},
		},
		Gym: []models.Routine{
			{
				Day:      "Lunes",
				Goal:     "Tren inferior",
				Duration: "45 min",
				Benefits: []string{"Fuerza en piernas", "Mayor gasto energético"},
				Exercises: []models.Exercise{
					{Name: "Prensa de piernas", Sets: 4, Reps: "12", Rest: "90 s"},
					{Name: "Peso muerto rumano", Sets: 3, Reps: "10", Rest: "90 s"},
					{Name: "Extensión de cuádriceps", Sets: 3, Reps: "12", Rest: "60 s"},
				},
			},
			{
				Day:      "Miércoles",
				Goal:     "Tren superior",
				Duration: "45 min",
				Benefits: []string{"Fuerza en espalda y pecho", "Mejor postura"},
				Exercises: []models.Exercise{
					{Name: "Jalón al pecho", Sets: 4, Reps: "12", Rest: "60 s"},
					{Name: "Press de pecho en máquina", Sets: 4, Reps: "10", Rest: "60 s"},
					{Name: "Remo sentado", Sets: 3, Reps: "12", Rest: "60 s"},
				},
			},
			{
				Day:      "Viernes",
				Goal:     "Cardio y core",
				Duration: "40 min",
				Benefits: []string{"Resistencia", "Estabilidad del tronco"},
				Exercises: []models.Exercise{
					{Name: "Caminadora inclinada", Sets: 1, Reps: "20 min", Rest: "-"},
					{Name: "Plancha lateral", Sets: 3, Reps: "30 s por lado", Rest: "30 s"},
					{Name: "Crunch en polea", Sets: 3, Reps: "15", Rest: "45 s"},
				},
			},
		},
		Tips: []string{"Hidrátate durante el entrenamiento", "Descansa al menos un día entre rutinas de fuerza"},
	}
	if hasInjuries {
		guide.Tips = append(guide.Tips, "Consulta a tu médico antes de iniciar y evita ejercicios que causen dolor en la zona lesionada")
	}
	return guide
}
