package nutrition

// BMI categories.
const (
	BMIUnderweight = "underweight"
	BMINormal      = "normal"
	BMIOverweight  = "overweight"
	BMIObese       = "obese"
)

// BMI returns weight / height², or 0 without a height. Classify the raw value
// and round only for display.
func BMI(weightKg, heightCm float64) float64 {
	h := heightCm / 100
	if h <= 0 || weightKg <= 0 {
		return 0
	}
	return weightKg / (h * h)
}

// Round1 rounds to one decimal place.
func Round1(v float64) float64 {
	return round1(v)
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return round2(v)
}

// BMICategory classifies a BMI value. Boundaries belong to the higher category.
func BMICategory(bmi float64) string {
	switch {
	case bmi <= 0:
		return ""
	case bmi < 18.5:
		return BMIUnderweight
	case bmi < 25:
		return BMINormal
	case bmi < 30:
		return BMIOverweight
	default:
		return BMIObese
	}
}
