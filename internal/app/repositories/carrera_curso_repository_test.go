package repositories

import (
	"context"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/academico/internal/app/models"
	"github.com/yigit/academico/internal/pkg/apperrors"
)

const carreraCursoGruposCheck = "FROM grupo WHERE pk_carrera_curso = $1"

func TestCarreraCursoInsertDuplicate(t *testing.T) {
	mock := newMockPool(t)
	repo := NewCarreraCursoRepository(mock)
	cc := &models.CarreraCurso{PkCarrera: 1, PkCurso: 2, PkCiclo: 3}

	mock.ExpectQuery(regexp.QuoteMeta(insertarCarreraCursoSQL)).
		WithArgs(cc.PkCarrera, cc.PkCurso, cc.PkCiclo).
		WillReturnError(&pgconn.PgError{Code: "20501", Message: "duplicado"})

	_, err := repo.Insert(context.Background(), cc)
	assert.True(t, apperrors.IsBusinessRule(err))
	assert.Equal(t, "El curso ya pertenece a la carrera", apperrors.Message(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCarreraCursoDeletePreflightBlocksGrupos(t *testing.T) {
	mock := newMockPool(t)
	repo := NewCarreraCursoRepository(mock)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(carreraCursoGruposCheck)).
		WithArgs(int64(6)).
		WillReturnRows(mock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), 6)
	assert.True(t, apperrors.IsBusinessRule(err))
	assert.Equal(t, "No se puede eliminar el curso de la carrera porque tiene grupos", apperrors.Message(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCarreraCursoDeleteDatabaseCodeAfterPreflight(t *testing.T) {
	mock := newMockPool(t)
	repo := NewCarreraCursoRepository(mock)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(carreraCursoGruposCheck)).
		WithArgs(int64(6)).
		WillReturnRows(mock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery(regexp.QuoteMeta(eliminarCarreraCursoSQL)).
		WithArgs(int64(6)).
		WillReturnError(&pgconn.PgError{Code: "20505", Message: "tiene grupos"})
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), 6)
	assert.True(t, apperrors.IsBusinessRule(err))
	assert.Equal(t, "No se puede eliminar el curso de la carrera porque tiene grupos", apperrors.Message(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCarreraCursoDeleteMissingIsNotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewCarreraCursoRepository(mock)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(carreraCursoGruposCheck)).
		WillReturnRows(mock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery(regexp.QuoteMeta(eliminarCarreraCursoSQL)).
		WithArgs(int64(6)).
		WillReturnRows(mock.NewRows([]string{"eliminar_carrera_curso"}).AddRow(int64(0)))
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), 6)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Equal(t, "No existe el curso de carrera a eliminar", apperrors.Message(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
