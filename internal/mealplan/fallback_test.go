package mealplan

import (
	"testing"

	"github.com/sbilibin2017/gw-nutriplan/internal/models"
	"github.com/sbilibin2017/gw-nutriplan/internal/nutrition"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallback_Trial(t *testing.T) {
	req, err := NewRequest(Trial, sampleQuestionnaire(), nutrition.Targets{Calories: 2000}, 0)
	require.NoError(t, err)

	plan := Fallback(req)

	require.Len(t, plan.Days, 1)
	require.Len(t, plan.Days[0].Meals, 4)
	assert.Equal(t, "Lunes", plan.Days[0].Day)

	var total int
	for i, m := range plan.Days[0].Meals {
		assert.Equal(t, req.Slots[i].Type, m.Type)
		assert.NotEmpty(t, m.Name)
		assert.Empty(t, m.Options)
		total += m.Calories
	}
	assert.Equal(t, 2000, total)

	assert.Equal(t, DefaultRecommendations, plan.Recommendations)
	assert.NotEmpty(t, plan.ShoppingList)
	require.NotNil(t, plan.ExerciseGuide)
	assert.NotEmpty(t, plan.ExerciseGuide.Home)
	assert.NotEmpty(t, plan.ExerciseGuide.Gym)
}

func TestFallback_Full(t *testing.T) {
	req, err := NewRequest(Full, sampleQuestionnaire(), nutrition.Targets{Calories: 2000}, 6)
	require.NoError(t, err)

	plan := Fallback(req)

	require.Len(t, plan.Days, 7)
	for i, d := range plan.Days {
		assert.Equal(t, WeekDays[i], d.Day)
		require.Len(t, d.Meals, 6)
		for _, m := range d.Meals {
			require.Len(t, m.Options, 3)
			assert.Equal(t, models.OptionRecommended, m.Options[0].Label)
			assert.Equal(t, models.OptionFast, m.Options[1].Label)
			assert.Equal(t, models.OptionEconomical, m.Options[2].Label)
			assert.Equal(t, m.Calories, m.Options[0].Calories)
		}
	}
	assert.NotEqual(t, plan.Days[0].Meals[0].Name, plan.Days[1].Meals[0].Name)
}

func TestFallback_Deterministic(t *testing.T) {
	req, err := NewRequest(Full, sampleQuestionnaire(), nutrition.Targets{Calories: 1800}, 5)
	require.NoError(t, err)

	assert.Equal(t, Fallback(req), Fallback(req))
}

func TestFallback_InjuryTip(t *testing.T) {
	q := sampleQuestionnaire()
	req, err := NewRequest(Trial, q, nutrition.Targets{Calories: 2000}, 0)
	require.NoError(t, err)
	base := len(Fallback(req).ExerciseGuide.Tips)

	q.Injuries = []string{"rodilla"}
	req, err = NewRequest(Trial, q, nutrition.Targets{Calories: 2000}, 0)
	require.NoError(t, err)
	assert.Len(t, Fallback(req).ExerciseGuide.Tips, base+1)
}

func TestShoppingList_GroupsUnknownIngredients(t *testing.T) {
	list := shoppingList(map[string]struct{}{
		"avena":          {},
		"arroz integral": {},
		"jícama":         {},
	})
	assert.Equal(t, []string{"arroz integral", "avena"}, list["Cereales y granos"])
	assert.Equal(t, []string{"jícama"}, list[defaultCategory])
}
