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

func TestCarreraInsertAndDuplicateCodigo(t *testing.T) {
	mock := newMockPool(t)
	repo := NewCarreraRepository(mock)
	c := &models.Carrera{Codigo: "INF", Nombre: "Informática", Titulo: "Bachillerato"}

	mock.ExpectQuery(regexp.QuoteMeta(insertarCarreraSQL)).
		WithArgs("INF", "Informática", "Bachillerato").
		WillReturnRows(mock.NewRows([]string{"insertar_carrera"}).AddRow(int64(1)))
	mock.ExpectQuery(regexp.QuoteMeta(insertarCarreraSQL)).
		WithArgs("INF", "Informática", "Bachillerato").
		WillReturnError(&pgconn.PgError{Code: "20301", Message: "codigo INF duplicado"})

	id, err := repo.Insert(context.Background(), c)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	_, err = repo.Insert(context.Background(), c)
	assert.True(t, apperrors.IsBusinessRule(err))
	assert.Equal(t, "Ya existe una carrera con ese código", apperrors.Message(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCarreraDeleteChecksCursosThenAlumnos(t *testing.T) {
	mock := newMockPool(t)
	repo := NewCarreraRepository(mock)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM carrera_curso WHERE pk_carrera = $1")).
		WithArgs(int64(3)).
		WillReturnRows(mock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery(regexp.QuoteMeta("FROM alumno WHERE pk_carrera = $1")).
		WithArgs(int64(3)).
		WillReturnRows(mock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), 3)
	assert.True(t, apperrors.IsBusinessRule(err))
	assert.Equal(t, "No se puede eliminar la carrera porque tiene alumnos inscritos", apperrors.Message(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCarreraDeleteMissingIsNotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewCarreraRepository(mock)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM carrera_curso WHERE pk_carrera = $1")).
		WithArgs(int64(3)).
		WillReturnRows(mock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery(regexp.QuoteMeta("FROM alumno WHERE pk_carrera = $1")).
		WithArgs(int64(3)).
		WillReturnRows(mock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery(regexp.QuoteMeta(eliminarCarreraSQL)).
		WithArgs(int64(3)).
		WillReturnRows(mock.NewRows([]string{"eliminar_carrera"}).AddRow(int64(0)))
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), 3)
	assert.True(t, apperrors.IsNotFound(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCarreraAddCursoMissingCarreraUsesForeignKeyMessage(t *testing.T) {
	mock := newMockPool(t)
	repo := NewCarreraRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(agregarCursoSQL)).
		WithArgs(int64(9), int64(1), int64(1)).
		WillReturnError(&pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"})

	_, err := repo.AddCurso(context.Background(), 9, 1, 1)
	assert.True(t, apperrors.IsBusinessRule(err))
	assert.Equal(t, "La carrera, el curso o el ciclo indicado no existe", apperrors.Message(err))
}

func TestCarreraRemoveCursoBlockedByGrupos(t *testing.T) {
	mock := newMockPool(t)
	repo := NewCarreraRepository(mock)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM grupo g JOIN carrera_curso cc ON cc.id = g.pk_carrera_curso")).
		WithArgs(int64(1), int64(4)).
		WillReturnRows(mock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	err := repo.RemoveCurso(context.Background(), 1, 4)
	assert.True(t, apperrors.IsBusinessRule(err))
	assert.Equal(t, "No se puede quitar el curso de la carrera porque tiene grupos", apperrors.Message(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCarreraRemoveCursoNotInCarrera(t *testing.T) {
	mock := newMockPool(t)
	repo := NewCarreraRepository(mock)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM grupo g JOIN carrera_curso cc ON cc.id = g.pk_carrera_curso")).
		WithArgs(int64(1), int64(4)).
		WillReturnRows(mock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery(regexp.QuoteMeta(eliminarCursoSQL)).
		WithArgs(int64(1), int64(4)).
		WillReturnError(&pgconn.PgError{Code: "20306", Message: "curso 4 no pertenece a la carrera 1"})
	mock.ExpectRollback()

	err := repo.RemoveCurso(context.Background(), 1, 4)
	assert.True(t, apperrors.IsBusinessRule(err))
	assert.Equal(t, "El curso no pertenece a la carrera", apperrors.Message(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCarreraReorderCurso(t *testing.T) {
	mock := newMockPool(t)
	repo := NewCarreraRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(reordenarCursoSQL)).
		WithArgs(int64(1), int64(4), int64(2)).
		WillReturnRows(mock.NewRows([]string{"reordenar_curso_carrera"}).AddRow(int64(1)))

	require.NoError(t, repo.ReorderCurso(context.Background(), 1, 4, 2))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCarreraUnmappedCodeKeepsDriverMessage(t *testing.T) {
	mock := newMockPool(t)
	repo := NewCarreraRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(modificarCarreraSQL)).
		WithArgs(int64(1), "INF", "Informática", "Bachillerato").
		WillReturnError(&pgconn.PgError{Code: "22001", Message: "value too long for type character varying(10)"})

	err := repo.Update(context.Background(), &models.Carrera{ID: 1, Codigo: "INF", Nombre: "Informática", Titulo: "Bachillerato"})
	assert.True(t, apperrors.IsBusinessRule(err))
	assert.Equal(t, "No se pudo modificar la carrera: value too long for type character varying(10)", apperrors.Message(err))
}

func TestCarreraFindByCodigo(t *testing.T) {
	mock := newMockPool(t)
	repo := NewCarreraRepository(mock)

	mock.ExpectQuery(regexp.QuoteMeta(buscarCarreraCodigoSQL)).
		WithArgs("INF").
		WillReturnRows(mock.NewRows([]string{"id", "codigo", "nombre", "titulo"}).
			AddRow(int64(1), "INF", "Informática", "Bachillerato"))

	c, err := repo.FindByCodigo(context.Background(), "INF")
	require.NoError(t, err)
	assert.Equal(t, &models.Carrera{ID: 1, Codigo: "INF", Nombre: "Informática", Titulo: "Bachillerato"}, c)
}
