package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/yigit/academico/internal/app/models"
	"github.com/yigit/academico/internal/pkg/apperrors"
)

func TestCarreraService_AddCurso(t *testing.T) {
	repo := new(MockCarreraRepository)
	offerings := new(MockCarreraCursoRepository)
	repo.On("AddCurso", mock.Anything, int64(1), int64(5), int64(3)).Return(int64(40), nil)

	cc, err := NewCarreraService(repo, offerings).AddCurso(context.Background(), 1, 5, 3)

	require.NoError(t, err)
	assert.Equal(t, &models.CarreraCurso{ID: 40, PkCarrera: 1, PkCurso: 5, PkCiclo: 3}, cc)
	repo.AssertExpectations(t)
}

func TestCarreraService_AddCursoRejected(t *testing.T) {
	repo := new(MockCarreraRepository)
	rule := apperrors.NewBusinessRuleError("El curso ya pertenece a la carrera")
	repo.On("AddCurso", mock.Anything, int64(1), int64(5), int64(3)).Return(int64(0), rule)

	_, err := NewCarreraService(repo, new(MockCarreraCursoRepository)).AddCurso(context.Background(), 1, 5, 3)

	require.Error(t, err)
	assert.True(t, apperrors.IsBusinessRule(err))
	assert.Equal(t, "El curso ya pertenece a la carrera", apperrors.Message(err))
}

func TestCarreraService_ReorderCurso(t *testing.T) {
	t.Run("returns the moved offering", func(t *testing.T) {
		repo := new(MockCarreraRepository)
		offerings := new(MockCarreraCursoRepository)
		repo.On("ReorderCurso", mock.Anything, int64(1), int64(5), int64(4)).Return(nil)
		offerings.On("FindByCarreraCiclo", mock.Anything, int64(1), int64(4)).Return([]*models.CarreraCurso{
			{ID: 39, PkCarrera: 1, PkCurso: 2, PkCiclo: 4},
			{ID: 40, PkCarrera: 1, PkCurso: 5, PkCiclo: 4},
		}, nil)

		cc, err := NewCarreraService(repo, offerings).ReorderCurso(context.Background(), 1, 5, 4)

		require.NoError(t, err)
		assert.Equal(t, int64(40), cc.ID)
		repo.AssertExpectations(t)
		offerings.AssertExpectations(t)
	})

	t.Run("does not read back when the move fails", func(t *testing.T) {
		repo := new(MockCarreraRepository)
		offerings := new(MockCarreraCursoRepository)
		repo.On("ReorderCurso", mock.Anything, int64(1), int64(5), int64(4)).
			Return(apperrors.NewBusinessRuleError("El curso no pertenece a la carrera"))

		_, err := NewCarreraService(repo, offerings).ReorderCurso(context.Background(), 1, 5, 4)

		require.Error(t, err)
		assert.True(t, apperrors.IsBusinessRule(err))
		offerings.AssertNotCalled(t, "FindByCarreraCiclo", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestCarreraService_RemoveCursoValidatesIDs(t *testing.T) {
	repo := new(MockCarreraRepository)

	err := NewCarreraService(repo, new(MockCarreraCursoRepository)).RemoveCurso(context.Background(), 1, 0)

	require.Error(t, err)
	assert.Equal(t, "El id de el curso debe ser un número positivo", apperrors.Message(err))
	repo.AssertNotCalled(t, "RemoveCurso", mock.Anything, mock.Anything, mock.Anything)
}

func TestCarreraService_Delete(t *testing.T) {
	repo := new(MockCarreraRepository)
	repo.On("Delete", mock.Anything, int64(9)).
		Return(apperrors.NewBusinessRuleError("No se puede eliminar la carrera porque tiene cursos asociados"))

	err := NewCarreraService(repo, new(MockCarreraCursoRepository)).Delete(context.Background(), 9)

	require.Error(t, err)
	assert.True(t, apperrors.IsBusinessRule(err))
	repo.AssertExpectations(t)
}

func TestCarreraService_FindByCodigoRequiresValue(t *testing.T) {
	_, err := NewCarreraService(new(MockCarreraRepository), new(MockCarreraCursoRepository)).
		FindByCodigo(context.Background(), "")

	require.Error(t, err)
	assert.True(t, apperrors.IsBusinessRule(err))
}
