package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"chiclon/infras/otel/mocks"
	"chiclon/internal/domains/catalog/service"
)

func TestDisplayName(t *testing.T) {
	svc := service.New(mocks.NewOtel())

	tests := map[string]string{
		"taper-fade":  "Taper Fade",
		"v-fade":      "V Fade",
		" Mullet ":    "Mullet",
		"buzz-cut":    "buzz-cut",
		"Custom Trim": "Custom Trim",
	}

	for input, expected := range tests {
		assert.Equal(t, expected, svc.DisplayName(input), input)
	}
}

func TestList(t *testing.T) {
	res := service.New(mocks.NewOtel()).List(context.Background())

	assert.Len(t, res.HaircutTypes, 7)
	assert.Equal(t, "taper-fade", res.HaircutTypes[0].Code)
	assert.Equal(t, "V Fade", res.HaircutTypes[6].Name)
}
