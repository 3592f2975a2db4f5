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

const (
	profesorGruposCheck  = "FROM grupo WHERE pk_profesor = $1"
	profesorUsuarioCheck = "FROM usuario u JOIN profesor p ON p.cedula = u.cedula"
)

func TestProfesorInsertPassesFieldsVerbatim(t *testing.T) {
	mock := newMockPool(t)
	repo := NewProfesorRepository(mock)
	p := &models.Profesor{Cedula: "10-20", Nombre: "Luis Soto", Telefono: "2222", Email: "luis@example.com"}

	mock.ExpectQuery(regexp.QuoteMeta(insertarProfesorSQL)).
		WithArgs(p.Cedula, p.Nombre, p.Telefono, p.Email).
		WillReturnError(&pgconn.PgError{Code: "20202", Message: "cedula invalida"})

	_, err := repo.Insert(context.Background(), p)
	assert.True(t, apperrors.IsBusinessRule(err))
	assert.Equal(t, "La cédula del profesor solo puede contener dígitos", apperrors.Message(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfesorDeletePreflightBlocksGrupos(t *testing.T) {
	mock := newMockPool(t)
	repo := NewProfesorRepository(mock)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(profesorGruposCheck)).
		WithArgs(int64(4)).
		WillReturnRows(mock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), 4)
	assert.True(t, apperrors.IsBusinessRule(err))
	assert.Equal(t, "No se puede eliminar el profesor porque tiene grupos asignados", apperrors.Message(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfesorDeletePreflightBlocksUsuario(t *testing.T) {
	mock := newMockPool(t)
	repo := NewProfesorRepository(mock)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(profesorGruposCheck)).
		WithArgs(int64(4)).
		WillReturnRows(mock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery(regexp.QuoteMeta(profesorUsuarioCheck)).
		WithArgs(int64(4), "Profesor").
		WillReturnRows(mock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), 4)
	assert.True(t, apperrors.IsBusinessRule(err))
	assert.Equal(t, "No se puede eliminar el profesor porque tiene un usuario asociado", apperrors.Message(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfesorDeleteDatabaseCodeAfterPreflight(t *testing.T) {
	mock := newMockPool(t)
	repo := NewProfesorRepository(mock)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(profesorGruposCheck)).
		WithArgs(int64(4)).
		WillReturnRows(mock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery(regexp.QuoteMeta(profesorUsuarioCheck)).
		WithArgs(int64(4), "Profesor").
		WillReturnRows(mock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery(regexp.QuoteMeta(eliminarProfesorSQL)).
		WithArgs(int64(4)).
		WillReturnError(&pgconn.PgError{Code: "20204", Message: "profesor 4 tiene grupos"})
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), 4)
	assert.True(t, apperrors.IsBusinessRule(err))
	assert.Equal(t, "No se puede eliminar el profesor porque tiene grupos asignados", apperrors.Message(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProfesorDeleteMissingIsNotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewProfesorRepository(mock)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(profesorGruposCheck)).
		WillReturnRows(mock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery(regexp.QuoteMeta(profesorUsuarioCheck)).
		WillReturnRows(mock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectQuery(regexp.QuoteMeta(eliminarProfesorSQL)).
		WithArgs(int64(4)).
		WillReturnRows(mock.NewRows([]string{"eliminar_profesor"}).AddRow(int64(0)))
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), 4)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
	assert.Equal(t, "No existe el profesor a eliminar", apperrors.Message(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
