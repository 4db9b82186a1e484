package dto

import (
	"testing"
	"time"

	"projtrack/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestNewStudentResponse(t *testing.T) {
	s := &models.Student{ID: 3, Name: "Asha", USN: "1RV20CS001"}
	assert.Nil(t, NewStudentResponse(s).CGPA)

	s.CGPA = decimal.NewNullDecimal(decimal.RequireFromString("9"))
	resp := NewStudentResponse(s)
	require.NotNil(t, resp.CGPA)
	assert.Equal(t, "9.00", *resp.CGPA)
	assert.Equal(t, uint(3), resp.StudentID)
}

func TestNewProjectResponse(t *testing.T) {
	start := datatypes.Date(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC))
	resp := NewProjectResponse(&models.Project{
		ID:        1,
		Budget:    decimal.RequireFromString("12.3"),
		StartDate: &start,
	})

	assert.Equal(t, "12.30", resp.Budget)
	require.NotNil(t, resp.StartDate)
	assert.Equal(t, "2024-02-29", *resp.StartDate)
	assert.Nil(t, resp.EndDate)
}
