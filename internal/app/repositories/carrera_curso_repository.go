package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/academico/internal/app/models"
	"github.com/yigit/academico/internal/db"
	"github.com/yigit/academico/internal/pkg/dberrors"
)

const carreraCursoColumns = "id, pk_carrera, pk_curso, pk_ciclo"

const (
	insertarCarreraCursoSQL      = "SELECT insertar_carrera_curso($1, $2, $3)"
	modificarCarreraCursoSQL     = "SELECT modificar_carrera_curso($1, $2, $3, $4)"
	eliminarCarreraCursoSQL      = "SELECT eliminar_carrera_curso($1)"
	tieneGruposSQL               = "SELECT carrera_curso_tiene_grupos($1)"
	listarCarrerasCursosSQL      = "SELECT " + carreraCursoColumns + " FROM listar_carreras_cursos()"
	buscarCarreraCursoIDSQL      = "SELECT " + carreraCursoColumns + " FROM buscar_carrera_curso_id($1)"
	buscarCarrerasCursosCicloSQL = "SELECT " + carreraCursoColumns + " FROM buscar_carreras_cursos_carrera_ciclo($1, $2)"
)

var carreraCursoMessages = dberrors.Messages{
	20501:                        "El curso ya pertenece a la carrera",
	20502:                        "La carrera indicada no existe",
	20503:                        "El curso indicado no existe",
	20504:                        "El ciclo indicado no existe",
	20505:                        "No se puede eliminar el curso de la carrera porque tiene grupos",
	dberrors.UniqueViolation:     "El curso ya pertenece a la carrera",
	dberrors.ForeignKeyViolation: "La carrera, el curso o el ciclo indicado no existe",
}

// CarreraCursoRepository handles the carrera-curso join rows
type CarreraCursoRepository struct {
	calls storedCalls
}

// NewCarreraCursoRepository creates a new CarreraCursoRepository
func NewCarreraCursoRepository(pool db.Pool) *CarreraCursoRepository {
	return &CarreraCursoRepository{calls: newStoredCalls(pool, "carrera_curso", carreraCursoMessages)}
}

func scanCarreraCurso(row pgx.Row) (*models.CarreraCurso, error) {
	cc := &models.CarreraCurso{}
	if err := row.Scan(&cc.ID, &cc.PkCarrera, &cc.PkCurso, &cc.PkCiclo); err != nil {
		return nil, err
	}
	return cc, nil
}

// Insert creates the carrera-curso and returns its id
func (r *CarreraCursoRepository) Insert(ctx context.Context, cc *models.CarreraCurso) (int64, error) {
	return r.calls.insert(ctx, r.calls.db, "insertar el curso de la carrera", insertarCarreraCursoSQL,
		cc.PkCarrera, cc.PkCurso, cc.PkCiclo)
}

// Update modifies the carrera-curso identified by cc.ID
func (r *CarreraCursoRepository) Update(ctx context.Context, cc *models.CarreraCurso) error {
	return r.calls.affected(ctx, r.calls.db, "modificar el curso de la carrera", "No existe el curso de carrera a modificar",
		modificarCarreraCursoSQL, cc.ID, cc.PkCarrera, cc.PkCurso, cc.PkCiclo)
}

// Delete removes a carrera-curso without grupos
func (r *CarreraCursoRepository) Delete(ctx context.Context, id int64) error {
	return r.calls.remove(ctx, "eliminar el curso de la carrera", "No existe el curso de carrera a eliminar", eliminarCarreraCursoSQL, id,
		dependency{
			query:   r.calls.exists("grupo", squirrel.Eq{"pk_carrera_curso": id}),
			message: carreraCursoMessages[20505],
		},
	)
}

// HasGrupos reports whether any grupo belongs to the carrera-curso
func (r *CarreraCursoRepository) HasGrupos(ctx context.Context, id int64) (bool, error) {
	var exists bool
	if err := r.calls.db.QueryRow(ctx, tieneGruposSQL, id).Scan(&exists); err != nil {
		return false, r.calls.translate(err, "consultar los grupos del curso")
	}
	return exists, nil
}

// List returns every carrera-curso
func (r *CarreraCursoRepository) List(ctx context.Context) ([]*models.CarreraCurso, error) {
	return queryList(ctx, &r.calls, "listar los cursos de carrera", "No hay cursos asignados a carreras", scanCarreraCurso, listarCarrerasCursosSQL)
}

// FindByID returns the carrera-curso with the given id
func (r *CarreraCursoRepository) FindByID(ctx context.Context, id int64) (*models.CarreraCurso, error) {
	return queryOne(ctx, &r.calls, "buscar el curso de la carrera", "No existe el curso de carrera solicitado", scanCarreraCurso, buscarCarreraCursoIDSQL, id)
}

// FindByCarreraCiclo returns the offer of a carrera in a ciclo
func (r *CarreraCursoRepository) FindByCarreraCiclo(ctx context.Context, idCarrera, idCiclo int64) ([]*models.CarreraCurso, error) {
	return queryList(ctx, &r.calls, "buscar cursos de carrera", "La carrera no tiene cursos en el ciclo", scanCarreraCurso,
		buscarCarrerasCursosCicloSQL, idCarrera, idCiclo)
}
