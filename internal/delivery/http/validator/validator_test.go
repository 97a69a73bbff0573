package validator

import (
	"testing"

	domainerrors "transitflow/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stop struct {
	Name string   `json:"name" validate:"required"`
	Lat  *float64 `json:"lat" validate:"required,min=-90,max=90"`
}

type stopsRequest struct {
	Stops []stop `json:"stops" validate:"required,min=1,dive"`
}

func TestCustomValidator_Validate(t *testing.T) {
	cv := New()
	tooFar := 95.0
	ok := 30.0

	tests := []struct {
		name    string
		input   any
		details []string
	}{
		{"valid", &stopsRequest{Stops: []stop{{Name: "ISBT", Lat: &ok}}}, nil},
		{"missing stops", &stopsRequest{}, []string{"stops is required"}},
		{"empty stops", &stopsRequest{Stops: []stop{}}, []string{"stops must be at least 1"}},
		{
			"nested fields",
			&stopsRequest{Stops: []stop{{Name: "ISBT", Lat: &ok}, {Lat: &tooFar}}},
			[]string{"stops[1].name is required", "stops[1].lat must be at most 90"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cv.Validate(tt.input)
			if tt.details == nil {
				assert.NoError(t, err)

				return
			}

			require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			for _, detail := range tt.details {
				assert.Contains(t, appErr.Details(), detail)
			}
		})
	}
}
