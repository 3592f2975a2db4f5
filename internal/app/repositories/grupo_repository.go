package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/academico/internal/app/models"
	"github.com/yigit/academico/internal/db"
	"github.com/yigit/academico/internal/pkg/dberrors"
)

const grupoColumns = "id, pk_carrera_curso, numero_grupo, horario, pk_profesor"

const (
	insertarGrupoSQL             = "SELECT insertar_grupo($1, $2, $3, $4)"
	modificarGrupoSQL            = "SELECT modificar_grupo($1, $2, $3, $4, $5)"
	eliminarGrupoSQL             = "SELECT eliminar_grupo($1)"
	listarGruposSQL              = "SELECT " + grupoColumns + " FROM listar_grupos()"
	buscarGrupoIDSQL             = "SELECT " + grupoColumns + " FROM buscar_grupo_id($1)"
	buscarGruposCarreraCursoSQL  = "SELECT " + grupoColumns + " FROM buscar_grupos_carrera_curso($1)"
	buscarGruposCarreraCicloSQL  = "SELECT " + grupoColumns + " FROM buscar_grupos_carrera_ciclo($1, $2)"
	buscarGruposCursoCicloSQL    = "SELECT " + grupoColumns + " FROM buscar_grupos_curso_ciclo($1, $2)"
	buscarGruposProfesorSQL      = "SELECT " + grupoColumns + " FROM buscar_grupos_profesor($1)"
	buscarGruposProfesorCicloSQL = "SELECT " + grupoColumns + " FROM buscar_grupos_profesor_ciclo($1, $2)"
	buscarGrupoMatriculaSQL      = "SELECT " + grupoColumns + " FROM buscar_grupo_matricula($1)"
)

var grupoMessages = dberrors.Messages{
	20701:                        "Ya existe un grupo con ese número para el curso",
	20702:                        "El curso de carrera indicado no existe",
	20703:                        "El profesor indicado no existe",
	20704:                        "No se puede eliminar el grupo porque tiene matrículas",
	dberrors.UniqueViolation:     "Ya existe un grupo con ese número para el curso",
	dberrors.ForeignKeyViolation: "El curso de carrera o el profesor indicado no existe",
}

// GrupoRepository handles grupo database operations
type GrupoRepository struct {
	calls storedCalls
}

// NewGrupoRepository creates a new GrupoRepository
func NewGrupoRepository(pool db.Pool) *GrupoRepository {
	return &GrupoRepository{calls: newStoredCalls(pool, "grupo", grupoMessages)}
}

func scanGrupo(row pgx.Row) (*models.Grupo, error) {
	g := &models.Grupo{}
	if err := row.Scan(&g.ID, &g.PkCarreraCurso, &g.NumeroGrupo, &g.Horario, &g.PkProfesor); err != nil {
		return nil, err
	}
	return g, nil
}

// Insert creates the grupo and returns its id
func (r *GrupoRepository) Insert(ctx context.Context, g *models.Grupo) (int64, error) {
	return r.calls.insert(ctx, r.calls.db, "insertar el grupo", insertarGrupoSQL,
		g.PkCarreraCurso, g.NumeroGrupo, g.Horario, g.PkProfesor)
}

// Update modifies the grupo identified by g.ID
func (r *GrupoRepository) Update(ctx context.Context, g *models.Grupo) error {
	return r.calls.affected(ctx, r.calls.db, "modificar el grupo", "No existe el grupo a modificar", modificarGrupoSQL,
		g.ID, g.PkCarreraCurso, g.NumeroGrupo, g.Horario, g.PkProfesor)
}

// Delete removes a grupo without matriculas
func (r *GrupoRepository) Delete(ctx context.Context, id int64) error {
	return r.calls.remove(ctx, "eliminar el grupo", "No existe el grupo a eliminar", eliminarGrupoSQL, id,
		dependency{
			query:   r.calls.exists("matricula", squirrel.Eq{"pk_grupo": id}),
			message: grupoMessages[20704],
		},
	)
}

// List returns every grupo
func (r *GrupoRepository) List(ctx context.Context) ([]*models.Grupo, error) {
	return queryList(ctx, &r.calls, "listar los grupos", "No hay grupos registrados", scanGrupo, listarGruposSQL)
}

// FindByID returns the grupo with the given id
func (r *GrupoRepository) FindByID(ctx context.Context, id int64) (*models.Grupo, error) {
	return queryOne(ctx, &r.calls, "buscar el grupo", "No existe el grupo solicitado", scanGrupo, buscarGrupoIDSQL, id)
}

// FindByCarreraCurso returns the grupos of a carrera-curso
func (r *GrupoRepository) FindByCarreraCurso(ctx context.Context, idCarreraCurso int64) ([]*models.Grupo, error) {
	return queryList(ctx, &r.calls, "buscar grupos", "El curso de carrera no tiene grupos", scanGrupo,
		buscarGruposCarreraCursoSQL, idCarreraCurso)
}

// FindByCarreraCiclo returns the grupos a carrera offers in a ciclo
func (r *GrupoRepository) FindByCarreraCiclo(ctx context.Context, idCarrera, idCiclo int64) ([]*models.Grupo, error) {
	return queryList(ctx, &r.calls, "buscar grupos", "La carrera no tiene grupos en el ciclo", scanGrupo,
		buscarGruposCarreraCicloSQL, idCarrera, idCiclo)
}

// FindByCursoCiclo returns the grupos of a curso in a ciclo
func (r *GrupoRepository) FindByCursoCiclo(ctx context.Context, idCurso, idCiclo int64) ([]*models.Grupo, error) {
	return queryList(ctx, &r.calls, "buscar grupos", "El curso no tiene grupos en el ciclo", scanGrupo,
		buscarGruposCursoCicloSQL, idCurso, idCiclo)
}

// FindByProfesor returns the grupos taught by a profesor
func (r *GrupoRepository) FindByProfesor(ctx context.Context, idProfesor int64) ([]*models.Grupo, error) {
	return queryList(ctx, &r.calls, "buscar grupos", "El profesor no tiene grupos", scanGrupo,
		buscarGruposProfesorSQL, idProfesor)
}

// FindByProfesorCiclo returns the grupos a profesor teaches in a ciclo
func (r *GrupoRepository) FindByProfesorCiclo(ctx context.Context, idProfesor, idCiclo int64) ([]*models.Grupo, error) {
	return queryList(ctx, &r.calls, "buscar grupos", "El profesor no tiene grupos en el ciclo", scanGrupo,
		buscarGruposProfesorCicloSQL, idProfesor, idCiclo)
}

// FindByMatricula returns the grupo a matricula belongs to
func (r *GrupoRepository) FindByMatricula(ctx context.Context, idMatricula int64) (*models.Grupo, error) {
	return queryOne(ctx, &r.calls, "buscar el grupo", "No existe el grupo de la matrícula", scanGrupo,
		buscarGrupoMatriculaSQL, idMatricula)
}
