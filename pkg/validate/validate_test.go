package validate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type orderInput struct {
	Name  string  `json:"name" validate:"required,min=2,max=100"`
	Phone string  `json:"phone" validate:"required"`
	Lang  string  `json:"lang" validate:"nullable,in=uz,ru"`
	Price float64 `json:"price" validate:"required,gt=0"`
}

func TestStructValid(t *testing.T) {
	errs := Struct(&orderInput{Name: "Ольга", Phone: "+998901112233", Lang: "ru", Price: 45000})
	require.False(t, HasErrors(errs))
}

func TestStructRequired(t *testing.T) {
	errs := Struct(&orderInput{Price: 1})
	require.True(t, HasErrors(errs))
	require.Contains(t, errs, "name")
	require.Contains(t, errs, "phone")
}

func TestStructInRule(t *testing.T) {
	errs := Struct(&orderInput{Name: "Aziz", Phone: "x", Lang: "de", Price: 1})
	require.Contains(t, errs, "lang")

	// nullable: empty skips the in rule.
	errs = Struct(&orderInput{Name: "Aziz", Phone: "x", Price: 1})
	require.NotContains(t, errs, "lang")
}

func TestStructGtRule(t *testing.T) {
	errs := Struct(&orderInput{Name: "Aziz", Phone: "x", Price: -5})
	require.Contains(t, errs, "price")
}

func TestStructMinLength(t *testing.T) {
	errs := Struct(&orderInput{Name: "A", Phone: "x", Price: 1})
	require.Contains(t, errs, "name")
}

func TestRegroupParams(t *testing.T) {
	got := regroupParams([]string{"nullable", "in=uz", "ru"})
	require.Equal(t, []string{"nullable", "in=uz,ru"}, got)
}
