package mealplan

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/sbilibin2017/gw-nutriplan/internal/models"
)

var (
	ErrEmptyResponse = errors.New("empty model response")
	ErrNoDays        = errors.New("plan has no days")
	ErrShapeMismatch = errors.New("plan shape does not match request")
)

// StripFences removes a surrounding markdown code fence and any prose around
// the outermost JSON object.
func StripFences(raw string) string {
	text := strings.TrimSpace(raw)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```")
		if nl := strings.IndexByte(text, '\n'); nl >= 0 {
			text = text[nl+1:]
		} else {
			text = strings.TrimPrefix(text, "json")
		}
		if end := strings.LastIndex(text, "```"); end >= 0 {
			text = text[:end]
		}
		text = strings.TrimSpace(text)
	}

	if !strings.HasPrefix(text, "{") {
		start, end := strings.IndexByte(text, '{'), strings.LastIndexByte(text, '}')
		if start >= 0 && end > start {
			text = text[start : end+1]
		}
	}
	return text
}

// Parse decodes a model response into a plan document.
func Parse(raw string) (*models.PlanData, error) {
	text := StripFences(raw)
	if text == "" {
		return nil, ErrEmptyResponse
	}

	var plan models.PlanData
	if err := json.Unmarshal([]byte(text), &plan); err != nil {
		return nil, fmt.Errorf("decode plan: %w", err)
	}
	if len(plan.Days) == 0 {
		return nil, ErrNoDays
	}
	return &plan, nil
}

// ParseFor decodes a response and checks it has the day and meal counts the request asked for.
func ParseFor(req Request, raw string) (*models.PlanData, error) {
	plan, err := Parse(raw)
	if err != nil {
		return nil, err
	}
	if len(plan.Days) != len(req.Days) {
		return nil, fmt.Errorf("%w: got %d days, want %d", ErrShapeMismatch, len(plan.Days), len(req.Days))
	}
	for _, d := range plan.Days {
		if len(d.Meals) != len(req.Slots) {
			return nil, fmt.Errorf("%w: %s has %d meals, want %d", ErrShapeMismatch, d.Day, len(d.Meals), len(req.Slots))
		}
	}
	return plan, nil
}
