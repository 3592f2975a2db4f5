package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/academico/internal/app/models"
	"github.com/yigit/academico/internal/db"
	"github.com/yigit/academico/internal/pkg/dberrors"
)

const cursoColumns = "id, codigo, nombre, creditos, horas_semanales"

const (
	insertarCursoSQL            = "SELECT insertar_curso($1, $2, $3, $4)"
	modificarCursoSQL           = "SELECT modificar_curso($1, $2, $3, $4, $5)"
	eliminarCursoIDSQL          = "SELECT eliminar_curso($1)"
	listarCursosSQL             = "SELECT " + cursoColumns + " FROM listar_cursos()"
	buscarCursoIDSQL            = "SELECT " + cursoColumns + " FROM buscar_curso_id($1)"
	buscarCursoCodigoSQL        = "SELECT " + cursoColumns + " FROM buscar_curso_codigo($1)"
	buscarCursosNombreSQL       = "SELECT " + cursoColumns + " FROM buscar_cursos_nombre($1)"
	buscarCursosCarreraSQL      = "SELECT " + cursoColumns + " FROM buscar_cursos_carrera($1)"
	buscarCursosCicloSQL        = "SELECT " + cursoColumns + " FROM buscar_cursos_ciclo($1)"
	buscarCursosCarreraCicloSQL = "SELECT " + cursoColumns + " FROM buscar_cursos_carrera_ciclo($1, $2)"
)

var cursoMessages = dberrors.Messages{
	20401:                        "Ya existe un curso con ese código",
	20402:                        "Los créditos del curso deben ser mayores que cero",
	20403:                        "Las horas semanales del curso deben ser mayores que cero",
	20404:                        "No se puede eliminar el curso porque pertenece a una carrera",
	20405:                        "No se puede eliminar el curso porque tiene grupos",
	dberrors.UniqueViolation:     "Ya existe un curso con ese código",
	dberrors.ForeignKeyViolation: "No se puede eliminar el curso porque pertenece a una carrera",
	dberrors.CheckViolation:      "Los créditos y las horas semanales deben ser mayores que cero",
}

// CursoRepository handles curso database operations
type CursoRepository struct {
	calls storedCalls
}

// NewCursoRepository creates a new CursoRepository
func NewCursoRepository(pool db.Pool) *CursoRepository {
	return &CursoRepository{calls: newStoredCalls(pool, "curso", cursoMessages)}
}

func scanCurso(row pgx.Row) (*models.Curso, error) {
	c := &models.Curso{}
	if err := row.Scan(&c.ID, &c.Codigo, &c.Nombre, &c.Creditos, &c.HorasSemanales); err != nil {
		return nil, err
	}
	return c, nil
}

// Insert creates the curso and returns its id
func (r *CursoRepository) Insert(ctx context.Context, c *models.Curso) (int64, error) {
	return r.calls.insert(ctx, r.calls.db, "insertar el curso", insertarCursoSQL,
		c.Codigo, c.Nombre, c.Creditos, c.HorasSemanales)
}

// Update modifies the curso identified by c.ID
func (r *CursoRepository) Update(ctx context.Context, c *models.Curso) error {
	return r.calls.affected(ctx, r.calls.db, "modificar el curso", "No existe el curso a modificar", modificarCursoSQL,
		c.ID, c.Codigo, c.Nombre, c.Creditos, c.HorasSemanales)
}

// Delete removes a curso that no grupo or carrera uses
func (r *CursoRepository) Delete(ctx context.Context, id int64) error {
	return r.calls.remove(ctx, "eliminar el curso", "No existe el curso a eliminar", eliminarCursoIDSQL, id,
		dependency{
			query: r.calls.exists("grupo g", squirrel.Eq{"cc.pk_curso": id}).
				Join("carrera_curso cc ON cc.id = g.pk_carrera_curso"),
			message: cursoMessages[20405],
		},
		dependency{
			query:   r.calls.exists("carrera_curso", squirrel.Eq{"pk_curso": id}),
			message: cursoMessages[20404],
		},
	)
}

// List returns every curso
func (r *CursoRepository) List(ctx context.Context) ([]*models.Curso, error) {
	return queryList(ctx, &r.calls, "listar los cursos", "No hay cursos registrados", scanCurso, listarCursosSQL)
}

// FindByID returns the curso with the given id
func (r *CursoRepository) FindByID(ctx context.Context, id int64) (*models.Curso, error) {
	return queryOne(ctx, &r.calls, "buscar el curso", "No existe el curso solicitado", scanCurso, buscarCursoIDSQL, id)
}

// FindByCodigo returns the curso with the given codigo
func (r *CursoRepository) FindByCodigo(ctx context.Context, codigo string) (*models.Curso, error) {
	return queryOne(ctx, &r.calls, "buscar el curso", "No existe un curso con ese código", scanCurso, buscarCursoCodigoSQL, codigo)
}

// FindByNombre returns the cursos whose nombre contains the text
func (r *CursoRepository) FindByNombre(ctx context.Context, nombre string) ([]*models.Curso, error) {
	return queryList(ctx, &r.calls, "buscar cursos", "No hay cursos con ese nombre", scanCurso, buscarCursosNombreSQL, nombre)
}

// FindByCarrera returns the curriculum of a carrera
func (r *CursoRepository) FindByCarrera(ctx context.Context, idCarrera int64) ([]*models.Curso, error) {
	return queryList(ctx, &r.calls, "buscar cursos", "La carrera no tiene cursos", scanCurso, buscarCursosCarreraSQL, idCarrera)
}

// FindByCiclo returns the cursos offered in a ciclo by any carrera
func (r *CursoRepository) FindByCiclo(ctx context.Context, idCiclo int64) ([]*models.Curso, error) {
	return queryList(ctx, &r.calls, "buscar cursos", "No hay cursos en el ciclo", scanCurso, buscarCursosCicloSQL, idCiclo)
}

// FindByCarreraCiclo returns the cursos a carrera offers in a ciclo
func (r *CursoRepository) FindByCarreraCiclo(ctx context.Context, idCarrera, idCiclo int64) ([]*models.Curso, error) {
	return queryList(ctx, &r.calls, "buscar cursos", "La carrera no tiene cursos en el ciclo", scanCurso,
		buscarCursosCarreraCicloSQL, idCarrera, idCiclo)
}
