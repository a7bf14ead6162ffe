package scatter

import (
	"errors"
	"fmt"
	"strings"
)

var ErrField = errors.New("unknown field")

// Field names one of the numeric columns of a Record.
type Field string

const (
	Poverty    Field = "poverty"
	Age        Field = "age"
	Income     Field = "income"
	Obesity    Field = "obesity"
	Smokes     Field = "smokes"
	Healthcare Field = "healthcare"
)

// Vertical is the field driving the vertical axis for the lifetime of a
// chart.
const Vertical = Healthcare

var fieldLabels = map[Field]string{
	Poverty:    "In Poverty (%)",
	Age:        "Age (Median)",
	Income:     "Household Income (Median)",
	Obesity:    "Obese (%)",
	Smokes:     "Smokes (%)",
	Healthcare: "Lacks Healthcare (%)",
}

func ParseField(str string) (Field, error) {
	f := Field(strings.ToLower(strings.TrimSpace(str)))
	if _, ok := fieldLabels[f]; !ok {
		return "", fmt.Errorf("%w: %q", ErrField, str)
	}
	return f, nil
}

// ParseHorizontal is like ParseField but only accepts fields that can drive
// the horizontal axis.
func ParseHorizontal(str string) (Field, error) {
	f, err := ParseField(str)
	if err != nil {
		return f, err
	}
	if !f.Horizontal() {
		return "", fmt.Errorf("%w: %s can not be used on the horizontal axis", ErrField, f)
	}
	return f, nil
}

func HorizontalFields() []Field {
	return []Field{Poverty, Age, Income}
}

func (f Field) Horizontal() bool {
	return f == Poverty || f == Age || f == Income
}

func (f Field) Label() string {
	return fieldLabels[f]
}

func (f Field) String() string {
	return string(f)
}
