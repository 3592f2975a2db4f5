package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/yigit/academico/internal/app/models"
	"github.com/yigit/academico/internal/db"
	"github.com/yigit/academico/internal/pkg/dberrors"
)

const matriculaColumns = "id, pk_alumno, pk_grupo, nota"

const (
	insertarMatriculaSQL           = "SELECT insertar_matricula($1, $2, $3)"
	modificarMatriculaSQL          = "SELECT modificar_matricula($1, $2, $3, $4)"
	eliminarMatriculaSQL           = "SELECT eliminar_matricula($1)"
	listarMatriculasSQL            = "SELECT " + matriculaColumns + " FROM listar_matriculas()"
	buscarMatriculaIDSQL           = "SELECT " + matriculaColumns + " FROM buscar_matricula_id($1)"
	buscarMatriculasAlumnoSQL      = "SELECT " + matriculaColumns + " FROM buscar_matriculas_alumno($1)"
	buscarMatriculasAlumnoCicloSQL = "SELECT " + matriculaColumns + " FROM buscar_matriculas_alumno_ciclo($1, $2)"
	buscarMatriculasGrupoSQL       = "SELECT " + matriculaColumns + " FROM buscar_matriculas_grupo($1)"
)

var matriculaMessages = dberrors.Messages{
	20801:                        "El alumno ya está matriculado en ese curso durante el ciclo",
	20802:                        "El alumno indicado no existe",
	20803:                        "El grupo indicado no existe",
	20804:                        "La nota debe estar entre 0 y 100",
	dberrors.UniqueViolation:     "El alumno ya está matriculado en ese grupo",
	dberrors.ForeignKeyViolation: "El alumno o el grupo indicado no existe",
	dberrors.CheckViolation:      "La nota debe estar entre 0 y 100",
}

// MatriculaRepository handles matricula database operations
type MatriculaRepository struct {
	calls storedCalls
}

// NewMatriculaRepository creates a new MatriculaRepository
func NewMatriculaRepository(pool db.Pool) *MatriculaRepository {
	return &MatriculaRepository{calls: newStoredCalls(pool, "matricula", matriculaMessages)}
}

func scanMatricula(row pgx.Row) (*models.Matricula, error) {
	m := &models.Matricula{}
	if err := row.Scan(&m.ID, &m.PkAlumno, &m.PkGrupo, &m.Nota); err != nil {
		return nil, err
	}
	return m, nil
}

// Insert enrolls the alumno and returns the matricula id
func (r *MatriculaRepository) Insert(ctx context.Context, m *models.Matricula) (int64, error) {
	return r.calls.insert(ctx, r.calls.db, "insertar la matrícula", insertarMatriculaSQL, m.PkAlumno, m.PkGrupo, m.Nota)
}

// Update modifies the matricula identified by m.ID
func (r *MatriculaRepository) Update(ctx context.Context, m *models.Matricula) error {
	return r.calls.affected(ctx, r.calls.db, "modificar la matrícula", "No existe la matrícula a modificar", modificarMatriculaSQL,
		m.ID, m.PkAlumno, m.PkGrupo, m.Nota)
}

// Delete removes a matricula; nothing depends on it
func (r *MatriculaRepository) Delete(ctx context.Context, id int64) error {
	return r.calls.remove(ctx, "eliminar la matrícula", "No existe la matrícula a eliminar", eliminarMatriculaSQL, id)
}

// List returns every matricula
func (r *MatriculaRepository) List(ctx context.Context) ([]*models.Matricula, error) {
	return queryList(ctx, &r.calls, "listar las matrículas", "No hay matrículas registradas", scanMatricula, listarMatriculasSQL)
}

// FindByID returns the matricula with the given id
func (r *MatriculaRepository) FindByID(ctx context.Context, id int64) (*models.Matricula, error) {
	return queryOne(ctx, &r.calls, "buscar la matrícula", "No existe la matrícula solicitada", scanMatricula, buscarMatriculaIDSQL, id)
}

// FindByAlumno returns every matricula of an alumno
func (r *MatriculaRepository) FindByAlumno(ctx context.Context, idAlumno int64) ([]*models.Matricula, error) {
	return queryList(ctx, &r.calls, "buscar matrículas", "El alumno no tiene matrículas", scanMatricula,
		buscarMatriculasAlumnoSQL, idAlumno)
}

// FindByAlumnoCiclo returns the matriculas of an alumno in a ciclo
func (r *MatriculaRepository) FindByAlumnoCiclo(ctx context.Context, idAlumno, idCiclo int64) ([]*models.Matricula, error) {
	return queryList(ctx, &r.calls, "buscar matrículas", "El alumno no tiene matrículas en el ciclo", scanMatricula,
		buscarMatriculasAlumnoCicloSQL, idAlumno, idCiclo)
}

// FindByGrupo returns the matriculas of a grupo
func (r *MatriculaRepository) FindByGrupo(ctx context.Context, idGrupo int64) ([]*models.Matricula, error) {
	return queryList(ctx, &r.calls, "buscar matrículas", "El grupo no tiene matrículas", scanMatricula,
		buscarMatriculasGrupoSQL, idGrupo)
}
