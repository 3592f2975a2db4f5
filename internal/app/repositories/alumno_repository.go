package repositories

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/academico/internal/app/models"
	"github.com/yigit/academico/internal/db"
	"github.com/yigit/academico/internal/pkg/dberrors"
)

const alumnoColumns = "id, cedula, nombre, telefono, email, fecha_nacimiento, pk_carrera"

const (
	insertarAlumnoSQL            = "SELECT insertar_alumno($1, $2, $3, $4, $5, $6)"
	modificarAlumnoSQL           = "SELECT modificar_alumno($1, $2, $3, $4, $5, $6, $7)"
	eliminarAlumnoSQL            = "SELECT eliminar_alumno($1)"
	listarAlumnosSQL             = "SELECT " + alumnoColumns + " FROM listar_alumnos()"
	buscarAlumnoIDSQL            = "SELECT " + alumnoColumns + " FROM buscar_alumno_id($1)"
	buscarAlumnoCedulaSQL        = "SELECT " + alumnoColumns + " FROM buscar_alumno_cedula($1)"
	buscarAlumnosNombreSQL       = "SELECT " + alumnoColumns + " FROM buscar_alumnos_nombre($1)"
	buscarAlumnosCarreraSQL      = "SELECT " + alumnoColumns + " FROM buscar_alumnos_carrera($1)"
	buscarAlumnosCarreraCicloSQL = "SELECT " + alumnoColumns + " FROM buscar_alumnos_carrera_ciclo($1, $2)"
)

var alumnoMessages = dberrors.Messages{
	20101:                        "Ya existe un alumno con esa cédula",
	20102:                        "La cédula del alumno debe tener 9 dígitos",
	20103:                        "El teléfono del alumno debe tener 8 dígitos",
	20104:                        "La fecha de nacimiento debe ser anterior a hoy",
	20105:                        "La carrera indicada no existe",
	20106:                        "No se puede eliminar el alumno porque tiene matrículas",
	20107:                        "No se puede eliminar el alumno porque tiene un usuario asociado",
	dberrors.UniqueViolation:     "Ya existe un alumno con esa cédula",
	dberrors.ForeignKeyViolation: "El alumno está relacionado con registros que no existen o que dependen de él",
	dberrors.CheckViolation:      "Los datos del alumno no cumplen el formato requerido",
}

// AlumnoRepository handles alumno database operations
type AlumnoRepository struct {
	calls storedCalls
}

// NewAlumnoRepository creates a new AlumnoRepository
func NewAlumnoRepository(pool db.Pool) *AlumnoRepository {
	return &AlumnoRepository{calls: newStoredCalls(pool, "alumno", alumnoMessages)}
}

func scanAlumno(row pgx.Row) (*models.Alumno, error) {
	a := &models.Alumno{}
	var fecha time.Time
	if err := row.Scan(&a.ID, &a.Cedula, &a.Nombre, &a.Telefono, &a.Email, &fecha, &a.PkCarrera); err != nil {
		return nil, err
	}
	a.FechaNacimiento = models.Date{Time: fecha}
	return a, nil
}

// Insert creates the alumno and returns its id
func (r *AlumnoRepository) Insert(ctx context.Context, a *models.Alumno) (int64, error) {
	return r.calls.insert(ctx, r.calls.db, "insertar el alumno", insertarAlumnoSQL,
		a.Cedula, a.Nombre, a.Telefono, a.Email, a.FechaNacimiento.Time, a.PkCarrera)
}

// Update modifies the alumno identified by a.ID
func (r *AlumnoRepository) Update(ctx context.Context, a *models.Alumno) error {
	return r.calls.affected(ctx, r.calls.db, "modificar el alumno", "No existe el alumno a modificar", modificarAlumnoSQL,
		a.ID, a.Cedula, a.Nombre, a.Telefono, a.Email, a.FechaNacimiento.Time, a.PkCarrera)
}

// Delete removes an alumno without matriculas or usuario
func (r *AlumnoRepository) Delete(ctx context.Context, id int64) error {
	return r.calls.remove(ctx, "eliminar el alumno", "No existe el alumno a eliminar", eliminarAlumnoSQL, id,
		dependency{
			query:   r.calls.exists("matricula", squirrel.Eq{"pk_alumno": id}),
			message: alumnoMessages[20106],
		},
		dependency{
			query: r.calls.exists("usuario u", squirrel.Eq{"a.id": id, "u.tipo": string(models.TipoAlumno)}).
				Join("alumno a ON a.cedula = u.cedula"),
			message: alumnoMessages[20107],
		},
	)
}

// List returns every alumno
func (r *AlumnoRepository) List(ctx context.Context) ([]*models.Alumno, error) {
	return queryList(ctx, &r.calls, "listar los alumnos", "No hay alumnos registrados", scanAlumno, listarAlumnosSQL)
}

// FindByID returns the alumno with the given id
func (r *AlumnoRepository) FindByID(ctx context.Context, id int64) (*models.Alumno, error) {
	return queryOne(ctx, &r.calls, "buscar el alumno", "No existe el alumno solicitado", scanAlumno, buscarAlumnoIDSQL, id)
}

// FindByCedula returns the alumno with the given cedula
func (r *AlumnoRepository) FindByCedula(ctx context.Context, cedula string) (*models.Alumno, error) {
	return queryOne(ctx, &r.calls, "buscar el alumno", "No existe un alumno con esa cédula", scanAlumno, buscarAlumnoCedulaSQL, cedula)
}

// FindByNombre returns the alumnos whose nombre contains the text
func (r *AlumnoRepository) FindByNombre(ctx context.Context, nombre string) ([]*models.Alumno, error) {
	return queryList(ctx, &r.calls, "buscar alumnos", "No hay alumnos con ese nombre", scanAlumno, buscarAlumnosNombreSQL, nombre)
}

// FindByCarrera returns the alumnos of a carrera
func (r *AlumnoRepository) FindByCarrera(ctx context.Context, idCarrera int64) ([]*models.Alumno, error) {
	return queryList(ctx, &r.calls, "buscar alumnos", "No hay alumnos en la carrera", scanAlumno, buscarAlumnosCarreraSQL, idCarrera)
}

// FindByCarreraCiclo returns the alumnos of a carrera enrolled in the given ciclo
func (r *AlumnoRepository) FindByCarreraCiclo(ctx context.Context, idCarrera, idCiclo int64) ([]*models.Alumno, error) {
	return queryList(ctx, &r.calls, "buscar alumnos", "No hay alumnos de la carrera matriculados en el ciclo",
		scanAlumno, buscarAlumnosCarreraCicloSQL, idCarrera, idCiclo)
}
