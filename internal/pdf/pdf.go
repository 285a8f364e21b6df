// Package pdf renders stored meal plans as printable documents.
package pdf

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/sbilibin2017/gw-nutriplan/internal/models"
)

const (
	fontFamily = "Helvetica"
	lineHeight = 5.5
)

// Render draws the plan and returns the PDF bytes. Both schema versions
// render: options are listed only when a meal carries them.
func Render(plan *models.MealPlan, ownerName string) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.SetTitle(tr("Plan alimenticio"), false)
	doc.SetAutoPageBreak(true, 15)
	doc.SetFooterFunc(func() {
		doc.SetY(-12)
		doc.SetFont(fontFamily, "I", 8)
		doc.CellFormat(0, 8, fmt.Sprintf("%d", doc.PageNo()), "", 0, "C", false, 0, "")
	})
	doc.AddPage()

	doc.SetFont(fontFamily, "B", 18)
	doc.CellFormat(0, 10, tr("Plan alimenticio"), "", 1, "L", false, 0, "")

	doc.SetFont(fontFamily, "", 10)
	if ownerName != "" {
		doc.CellFormat(0, lineHeight, tr("Para: "+ownerName), "", 1, "L", false, 0, "")
	}
	doc.CellFormat(0, lineHeight, tr(fmt.Sprintf("Tipo: %s   Fecha: %s", plan.PlanType, plan.CreatedAt.UTC().Format("2006-01-02"))), "", 1, "L", false, 0, "")
	doc.CellFormat(0, lineHeight, tr(fmt.Sprintf("Calorías diarias: %d kcal   Proteínas: %.1f g   Carbohidratos: %.1f g   Grasas: %.1f g",
		plan.CaloriesTarget, plan.Macros.Protein, plan.Macros.Carbs, plan.Macros.Fat)), "", 1, "L", false, 0, "")
	doc.Ln(4)

	for _, day := range plan.PlanData.Days {
		heading(doc, tr(day.Day))
		for _, meal := range day.Meals {
			doc.SetFont(fontFamily, "B", 11)
			doc.MultiCell(0, lineHeight, tr(fmt.Sprintf("%s: %s (%d kcal)", meal.Type, meal.Name, meal.Calories)), "", "L", false)
			doc.SetFont(fontFamily, "", 10)
			if len(meal.Ingredients) > 0 {
				doc.MultiCell(0, lineHeight, tr("Ingredientes: "+strings.Join(meal.Ingredients, ", ")), "", "L", false)
			}
			if meal.Preparation != "" {
				doc.MultiCell(0, lineHeight, tr("Preparación: "+meal.Preparation), "", "L", false)
			}
			for _, opt := range meal.Options {
				doc.MultiCell(0, lineHeight, tr(fmt.Sprintf("  [%s] %s, %s, %d kcal", opt.Label, opt.Name, opt.PrepTime, opt.Calories)), "", "L", false)
			}
			if meal.Tip != "" {
				doc.SetFont(fontFamily, "I", 9)
				doc.MultiCell(0, lineHeight, tr("Tip: "+meal.Tip), "", "L", false)
			}
			doc.Ln(1.5)
		}
		doc.Ln(2)
	}

	recommendations := plan.PlanData.Recommendations
	if len(recommendations) == 0 {
		recommendations = plan.Recommendations
	}
	if len(recommendations) > 0 {
		heading(doc, tr("Recomendaciones"))
		bullets(doc, tr, recommendations)
	}

	if len(plan.PlanData.ShoppingList) > 0 {
		heading(doc, tr("Lista del súper"))
		categories := make([]string, 0, len(plan.PlanData.ShoppingList))
		for c := range plan.PlanData.ShoppingList {
			categories = append(categories, c)
		}
		sort.Strings(categories)
		for _, c := range categories {
			doc.SetFont(fontFamily, "B", 10)
			doc.MultiCell(0, lineHeight, tr(c), "", "L", false)
			bullets(doc, tr, plan.PlanData.ShoppingList[c])
		}
	}

	if g := plan.PlanData.ExerciseGuide; g != nil {
		heading(doc, tr("Guía de ejercicios"))
		routines(doc, tr, "En casa", g.Home)
		routines(doc, tr, "En gimnasio", g.Gym)
		if len(g.Tips) > 0 {
			bullets(doc, tr, g.Tips)
		}
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func heading(doc *fpdf.Fpdf, text string) {
	doc.SetFont(fontFamily, "B", 13)
	doc.SetFillColor(232, 245, 233)
	doc.CellFormat(0, 8, text, "", 1, "L", true, 0, "")
	doc.Ln(1)
}

func bullets(doc *fpdf.Fpdf, tr func(string) string, items []string) {
	doc.SetFont(fontFamily, "", 10)
	for _, item := range items {
		doc.MultiCell(0, lineHeight, tr("- "+item), "", "L", false)
	}
	doc.Ln(1)
}

func routines(doc *fpdf.Fpdf, tr func(string) string, title string, list []models.Routine) {
	if len(list) == 0 {
		return
	}
	doc.SetFont(fontFamily, "B", 11)
	doc.MultiCell(0, lineHeight, tr(title), "", "L", false)
	for _, r := range list {
		doc.SetFont(fontFamily, "B", 10)
		doc.MultiCell(0, lineHeight, tr(fmt.Sprintf("%s: %s (%s)", r.Day, r.Goal, r.Duration)), "", "L", false)
		doc.SetFont(fontFamily, "", 10)
		for _, e := range r.Exercises {
			doc.MultiCell(0, lineHeight, tr(fmt.Sprintf("  %s: %d x %s, descanso %s", e.Name, e.Sets, e.Reps, e.Rest)), "", "L", false)
		}
	}
	doc.Ln(1)
}

// Filename is the attachment name of a plan export.
func Filename(plan *models.MealPlan) string {
	return "plan-alimenticio-" + plan.ID.String()[:8] + ".pdf"
}
