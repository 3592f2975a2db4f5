package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/academico/internal/app/models"
	"github.com/yigit/academico/internal/db"
	"github.com/yigit/academico/internal/pkg/dberrors"
)

const profesorColumns = "id, cedula, nombre, telefono, email"

const (
	insertarProfesorSQL       = "SELECT insertar_profesor($1, $2, $3, $4)"
	modificarProfesorSQL      = "SELECT modificar_profesor($1, $2, $3, $4, $5)"
	eliminarProfesorSQL       = "SELECT eliminar_profesor($1)"
	listarProfesoresSQL       = "SELECT " + profesorColumns + " FROM listar_profesores()"
	buscarProfesorIDSQL       = "SELECT " + profesorColumns + " FROM buscar_profesor_id($1)"
	buscarProfesorCedulaSQL   = "SELECT " + profesorColumns + " FROM buscar_profesor_cedula($1)"
	buscarProfesoresNombreSQL = "SELECT " + profesorColumns + " FROM buscar_profesores_nombre($1)"
)

var profesorMessages = dberrors.Messages{
	20201:                        "Ya existe un profesor con esa cédula",
	20202:                        "La cédula del profesor solo puede contener dígitos",
	20203:                        "El teléfono del profesor solo puede contener dígitos",
	20204:                        "No se puede eliminar el profesor porque tiene grupos asignados",
	20205:                        "No se puede eliminar el profesor porque tiene un usuario asociado",
	dberrors.UniqueViolation:     "Ya existe un profesor con esa cédula",
	dberrors.ForeignKeyViolation: "El profesor tiene grupos asignados",
	dberrors.CheckViolation:      "Los datos del profesor no cumplen el formato requerido",
}

// ProfesorRepository handles profesor database operations
type ProfesorRepository struct {
	calls storedCalls
}

// NewProfesorRepository creates a new ProfesorRepository
func NewProfesorRepository(pool db.Pool) *ProfesorRepository {
	return &ProfesorRepository{calls: newStoredCalls(pool, "profesor", profesorMessages)}
}

func scanProfesor(row pgx.Row) (*models.Profesor, error) {
	p := &models.Profesor{}
	if err := row.Scan(&p.ID, &p.Cedula, &p.Nombre, &p.Telefono, &p.Email); err != nil {
		return nil, err
	}
	return p, nil
}

// Insert creates the profesor and returns its id
func (r *ProfesorRepository) Insert(ctx context.Context, p *models.Profesor) (int64, error) {
	return r.calls.insert(ctx, r.calls.db, "insertar el profesor", insertarProfesorSQL,
		p.Cedula, p.Nombre, p.Telefono, p.Email)
}

// Update modifies the profesor identified by p.ID
func (r *ProfesorRepository) Update(ctx context.Context, p *models.Profesor) error {
	return r.calls.affected(ctx, r.calls.db, "modificar el profesor", "No existe el profesor a modificar", modificarProfesorSQL,
		p.ID, p.Cedula, p.Nombre, p.Telefono, p.Email)
}

// Delete removes a profesor without grupos or usuario
func (r *ProfesorRepository) Delete(ctx context.Context, id int64) error {
	return r.calls.remove(ctx, "eliminar el profesor", "No existe el profesor a eliminar", eliminarProfesorSQL, id,
		dependency{
			query:   r.calls.exists("grupo", squirrel.Eq{"pk_profesor": id}),
			message: profesorMessages[20204],
		},
		dependency{
			query: r.calls.exists("usuario u", squirrel.Eq{"p.id": id, "u.tipo": string(models.TipoProfesor)}).
				Join("profesor p ON p.cedula = u.cedula"),
			message: profesorMessages[20205],
		},
	)
}

// List returns every profesor
func (r *ProfesorRepository) List(ctx context.Context) ([]*models.Profesor, error) {
	return queryList(ctx, &r.calls, "listar los profesores", "No hay profesores registrados", scanProfesor, listarProfesoresSQL)
}

// FindByID returns the profesor with the given id
func (r *ProfesorRepository) FindByID(ctx context.Context, id int64) (*models.Profesor, error) {
	return queryOne(ctx, &r.calls, "buscar el profesor", "No existe el profesor solicitado", scanProfesor, buscarProfesorIDSQL, id)
}

// FindByCedula returns the profesor with the given cedula
func (r *ProfesorRepository) FindByCedula(ctx context.Context, cedula string) (*models.Profesor, error) {
	return queryOne(ctx, &r.calls, "buscar el profesor", "No existe un profesor con esa cédula", scanProfesor, buscarProfesorCedulaSQL, cedula)
}

// FindByNombre returns the profesores whose nombre contains the text
func (r *ProfesorRepository) FindByNombre(ctx context.Context, nombre string) ([]*models.Profesor, error) {
	return queryList(ctx, &r.calls, "buscar profesores", "No hay profesores con ese nombre", scanProfesor, buscarProfesoresNombreSQL, nombre)
}
