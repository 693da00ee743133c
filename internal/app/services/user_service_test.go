package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bde-polytech/backend/internal/app/models"
	"github.com/bde-polytech/backend/internal/pkg/apperrors"
)

func testOrg() *models.Organization {
	return &models.Organization{
		UUID: "org-1",
		Name: "BDE Lyon",
		Specialties: []models.Specialty{
			{Name: "INFO", MinYear: 3, MaxYear: 5},
			{Name: "MAT", MinYear: 4, MaxYear: 4},
		},
	}
}

func TestCheckSpecialtyYear(t *testing.T) {
	org := testOrg()

	assert.NoError(t, checkSpecialtyYear(org, "INFO", 3))
	assert.NoError(t, checkSpecialtyYear(org, "INFO", 5))
	assert.NoError(t, checkSpecialtyYear(org, "MAT", 4))
}

func TestCheckSpecialtyYearOutOfRange(t *testing.T) {
	org := testOrg()

	err := checkSpecialtyYear(org, "INFO", 2)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	err = checkSpecialtyYear(org, "INFO", 6)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCheckSpecialtyYearUnknownSpecialty(t *testing.T) {
	err := checkSpecialtyYear(testOrg(), "CHIMIE", 3)
	assert.ErrorIs(t, err, apperrors.ErrInvalidSpecialty)
}
