package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/yigit/academico/internal/app/models"
	"github.com/yigit/academico/internal/pkg/apperrors"
)

func newAlumno() *models.Alumno {
	return &models.Alumno{
		Cedula:          "123456789",
		Nombre:          "Ana Mora",
		Telefono:        "88887777",
		Email:           "ana@example.com",
		FechaNacimiento: models.NewDate(2001, time.March, 15),
		PkCarrera:       1,
	}
}

func TestAlumnoService_Insert(t *testing.T) {
	t.Run("sets the generated id", func(t *testing.T) {
		repo := new(MockAlumnoRepository)
		alumno := newAlumno()
		repo.On("Insert", mock.Anything, alumno).Return(int64(12), nil)

		created, err := NewAlumnoService(repo).Insert(context.Background(), alumno)

		require.NoError(t, err)
		assert.Equal(t, int64(12), created.ID)
		repo.AssertExpectations(t)
	})

	t.Run("rejects a missing birth date before the database", func(t *testing.T) {
		repo := new(MockAlumnoRepository)
		alumno := newAlumno()
		alumno.FechaNacimiento = models.Date{}

		_, err := NewAlumnoService(repo).Insert(context.Background(), alumno)

		require.Error(t, err)
		assert.True(t, apperrors.IsBusinessRule(err))
		repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("keeps the rule message of the repository", func(t *testing.T) {
		repo := new(MockAlumnoRepository)
		rule := apperrors.NewBusinessRuleError("Ya existe un alumno con esa cédula")
		repo.On("Insert", mock.Anything, mock.Anything).Return(int64(0), rule)

		_, err := NewAlumnoService(repo).Insert(context.Background(), newAlumno())

		require.Error(t, err)
		assert.True(t, apperrors.IsBusinessRule(err))
		assert.Equal(t, "Ya existe un alumno con esa cédula", apperrors.Message(err))
	})
}

func TestAlumnoService_Update(t *testing.T) {
	repo := new(MockAlumnoRepository)
	alumno := newAlumno()
	alumno.ID = 4
	repo.On("Update", mock.Anything, alumno).Return(apperrors.NewNotFoundError("No existe el alumno a modificar"))

	_, err := NewAlumnoService(repo).Update(context.Background(), alumno)

	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	repo.AssertExpectations(t)
}

func TestAlumnoService_InvalidIDs(t *testing.T) {
	repo := new(MockAlumnoRepository)
	svc := NewAlumnoService(repo)
	ctx := context.Background()

	_, err := svc.FindByID(ctx, 0)
	assert.True(t, apperrors.IsBusinessRule(err))

	err = svc.Delete(ctx, -3)
	assert.True(t, apperrors.IsBusinessRule(err))

	_, err = svc.FindByCarreraCiclo(ctx, 2, 0)
	require.Error(t, err)
	assert.Equal(t, "El id de el ciclo debe ser un número positivo", apperrors.Message(err))

	_, err = svc.FindByCedula(ctx, "   ")
	assert.True(t, apperrors.IsBusinessRule(err))

	repo.AssertExpectations(t)
}

func TestAlumnoService_FindByCarrera(t *testing.T) {
	repo := new(MockAlumnoRepository)
	alumnos := []*models.Alumno{newAlumno(), newAlumno()}
	repo.On("FindByCarrera", mock.Anything, int64(2)).Return(alumnos, nil)

	found, err := NewAlumnoService(repo).FindByCarrera(context.Background(), 2)

	require.NoError(t, err)
	assert.Len(t, found, 2)
}

func TestAlumnoService_WrapsInfrastructureErrors(t *testing.T) {
	repo := new(MockAlumnoRepository)
	boom := errors.New("connection refused")
	repo.On("List", mock.Anything).Return(nil, boom)

	_, err := NewAlumnoService(repo).List(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.False(t, apperrors.IsNotFound(err))
	assert.False(t, apperrors.IsBusinessRule(err))
}
