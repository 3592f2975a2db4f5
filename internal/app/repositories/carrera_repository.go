package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/academico/internal/app/models"
	"github.com/yigit/academico/internal/db"
	"github.com/yigit/academico/internal/pkg/dberrors"
)

const carreraColumns = "id, codigo, nombre, titulo"

const (
	insertarCarreraSQL      = "SELECT insertar_carrera($1, $2, $3)"
	modificarCarreraSQL     = "SELECT modificar_carrera($1, $2, $3, $4)"
	eliminarCarreraSQL      = "SELECT eliminar_carrera($1)"
	agregarCursoSQL         = "SELECT agregar_curso_carrera($1, $2, $3)"
	eliminarCursoSQL        = "SELECT eliminar_curso_carrera($1, $2)"
	reordenarCursoSQL       = "SELECT reordenar_curso_carrera($1, $2, $3)"
	listarCarrerasSQL       = "SELECT " + carreraColumns + " FROM listar_carreras()"
	buscarCarreraIDSQL      = "SELECT " + carreraColumns + " FROM buscar_carrera_id($1)"
	buscarCarreraCodigoSQL  = "SELECT " + carreraColumns + " FROM buscar_carrera_codigo($1)"
	buscarCarrerasNombreSQL = "SELECT " + carreraColumns + " FROM buscar_carreras_nombre($1)"
)

var carreraMessages = dberrors.Messages{
	20301:                        "Ya existe una carrera con ese código",
	20302:                        "No se puede eliminar la carrera porque tiene cursos asociados",
	20303:                        "No se puede eliminar la carrera porque tiene alumnos inscritos",
	20304:                        "El curso ya pertenece a la carrera",
	20305:                        "El curso o el ciclo indicado no existe",
	20306:                        "El curso no pertenece a la carrera",
	20307:                        "No se puede quitar el curso de la carrera porque tiene grupos",
	dberrors.UniqueViolation:     "Ya existe una carrera con ese código",
	dberrors.ForeignKeyViolation: "La carrera, el curso o el ciclo indicado no existe",
}

// CarreraRepository handles carrera database operations, including the
// curriculum edits (agregar, eliminar, reordenar curso)
type CarreraRepository struct {
	calls storedCalls
}

// NewCarreraRepository creates a new CarreraRepository
func NewCarreraRepository(pool db.Pool) *CarreraRepository {
	return &CarreraRepository{calls: newStoredCalls(pool, "carrera", carreraMessages)}
}

func scanCarrera(row pgx.Row) (*models.Carrera, error) {
	c := &models.Carrera{}
	if err := row.Scan(&c.ID, &c.Codigo, &c.Nombre, &c.Titulo); err != nil {
		return nil, err
	}
	return c, nil
}

// Insert creates the carrera and returns its id
func (r *CarreraRepository) Insert(ctx context.Context, c *models.Carrera) (int64, error) {
	return r.calls.insert(ctx, r.calls.db, "insertar la carrera", insertarCarreraSQL, c.Codigo, c.Nombre, c.Titulo)
}

// Update modifies the carrera identified by c.ID
func (r *CarreraRepository) Update(ctx context.Context, c *models.Carrera) error {
	return r.calls.affected(ctx, r.calls.db, "modificar la carrera", "No existe la carrera a modificar", modificarCarreraSQL,
		c.ID, c.Codigo, c.Nombre, c.Titulo)
}

// Delete removes a carrera without cursos or alumnos
func (r *CarreraRepository) Delete(ctx context.Context, id int64) error {
	return r.calls.remove(ctx, "eliminar la carrera", "No existe la carrera a eliminar", eliminarCarreraSQL, id,
		dependency{
			query:   r.calls.exists("carrera_curso", squirrel.Eq{"pk_carrera": id}),
			message: carreraMessages[20302],
		},
		dependency{
			query:   r.calls.exists("alumno", squirrel.Eq{"pk_carrera": id}),
			message: carreraMessages[20303],
		},
	)
}

// AddCurso places a curso in the carrera's curriculum at the given ciclo and
// returns the id of the new carrera-curso
func (r *CarreraRepository) AddCurso(ctx context.Context, idCarrera, idCurso, idCiclo int64) (int64, error) {
	return r.calls.insert(ctx, r.calls.db, "agregar el curso a la carrera", agregarCursoSQL, idCarrera, idCurso, idCiclo)
}

// RemoveCurso takes a curso out of the carrera's curriculum
func (r *CarreraRepository) RemoveCurso(ctx context.Context, idCarrera, idCurso int64) error {
	return db.WithTransaction(ctx, r.calls.db, func(ctx context.Context, q db.Querier) error {
		err := r.calls.checkDependencies(ctx, q, "quitar el curso de la carrera", dependency{
			query: r.calls.exists("grupo g", squirrel.Eq{"cc.pk_carrera": idCarrera, "cc.pk_curso": idCurso}).
				Join("carrera_curso cc ON cc.id = g.pk_carrera_curso"),
			message: carreraMessages[20307],
		})
		if err != nil {
			return err
		}
		return r.calls.affected(ctx, q, "quitar el curso de la carrera", carreraMessages[20306], eliminarCursoSQL, idCarrera, idCurso)
	})
}

// ReorderCurso moves a curso of the carrera to another ciclo
func (r *CarreraRepository) ReorderCurso(ctx context.Context, idCarrera, idCurso, idCiclo int64) error {
	return r.calls.affected(ctx, r.calls.db, "reordenar el curso", carreraMessages[20306], reordenarCursoSQL,
		idCarrera, idCurso, idCiclo)
}

// List returns every carrera
func (r *CarreraRepository) List(ctx context.Context) ([]*models.Carrera, error) {
	return queryList(ctx, &r.calls, "listar las carreras", "No hay carreras registradas", scanCarrera, listarCarrerasSQL)
}

// FindByID returns the carrera with the given id
func (r *CarreraRepository) FindByID(ctx context.Context, id int64) (*models.Carrera, error) {
	return queryOne(ctx, &r.calls, "buscar la carrera", "No existe la carrera solicitada", scanCarrera, buscarCarreraIDSQL, id)
}

// FindByCodigo returns the carrera with the given codigo
func (r *CarreraRepository) FindByCodigo(ctx context.Context, codigo string) (*models.Carrera, error) {
	return queryOne(ctx, &r.calls, "buscar la carrera", "No existe una carrera con ese código", scanCarrera, buscarCarreraCodigoSQL, codigo)
}

// FindByNombre returns the carreras whose nombre contains the text
func (r *CarreraRepository) FindByNombre(ctx context.Context, nombre string) ([]*models.Carrera, error) {
	return queryList(ctx, &r.calls, "buscar carreras", "No hay carreras con ese nombre", scanCarrera, buscarCarrerasNombreSQL, nombre)
}
