package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/yigit/academico/internal/app/models"
	"github.com/yigit/academico/internal/db"
	"github.com/yigit/academico/internal/pkg/apperrors"
	"github.com/yigit/academico/internal/pkg/dberrors"
	"github.com/yigit/academico/internal/pkg/logger"
)

// clave is write-only and never selected
const usuarioColumns = "id, cedula, tipo"

const (
	insertarUsuarioSQL     = "SELECT insertar_usuario($1, $2, $3)"
	modificarUsuarioSQL    = "SELECT modificar_usuario($1, $2, $3, $4)"
	eliminarUsuarioSQL     = "SELECT eliminar_usuario($1)"
	listarUsuariosSQL      = "SELECT " + usuarioColumns + " FROM listar_usuarios()"
	buscarUsuarioIDSQL     = "SELECT " + usuarioColumns + " FROM buscar_usuario_id($1)"
	buscarUsuarioCedulaSQL = "SELECT " + usuarioColumns + " FROM buscar_usuario_cedula($1)"
	loginUsuarioSQL        = "SELECT " + usuarioColumns + " FROM login_usuario($1, $2)"
	alumnoPorCedulaSQL     = "SELECT id FROM buscar_alumno_cedula($1)"
	profesorPorCedulaSQL   = "SELECT id FROM buscar_profesor_cedula($1)"
)

var usuarioMessages = dberrors.Messages{
	20901:                    "Ya existe un usuario con esa cédula",
	20902:                    "No existe un alumno o profesor con esa cédula para el tipo indicado",
	20903:                    "El tipo de usuario debe ser Alumno o Profesor",
	dberrors.UniqueViolation: "Ya existe un usuario con esa cédula",
	dberrors.CheckViolation:  "El tipo de usuario debe ser Alumno o Profesor",
}

// linkedPerson is the person row a usuario shadows, removed together with it
type linkedPerson struct {
	calls     *storedCalls
	lookupSQL string
	deleteSQL string
	operation string
}

// UsuarioRepository handles usuario database operations and login
type UsuarioRepository struct {
	calls  storedCalls
	linked map[models.TipoUsuario]linkedPerson
}

// NewUsuarioRepository creates a new UsuarioRepository. The alumno and profesor
// repositories translate the errors of the cascaded deletes.
func NewUsuarioRepository(pool db.Pool, alumnos *AlumnoRepository, profesores *ProfesorRepository) *UsuarioRepository {
	return &UsuarioRepository{
		calls: newStoredCalls(pool, "usuario", usuarioMessages),
		linked: map[models.TipoUsuario]linkedPerson{
			models.TipoAlumno: {
				calls:     &alumnos.calls,
				lookupSQL: alumnoPorCedulaSQL,
				deleteSQL: eliminarAlumnoSQL,
				operation: "eliminar el alumno del usuario",
			},
			models.TipoProfesor: {
				calls:     &profesores.calls,
				lookupSQL: profesorPorCedulaSQL,
				deleteSQL: eliminarProfesorSQL,
				operation: "eliminar el profesor del usuario",
			},
		},
	}
}

func scanUsuario(row pgx.Row) (*models.Usuario, error) {
	u := &models.Usuario{}
	var tipo string
	if err := row.Scan(&u.ID, &u.Cedula, &tipo); err != nil {
		return nil, err
	}
	u.Tipo = models.TipoUsuario(tipo)
	return u, nil
}

// Insert creates the usuario and returns its id
func (r *UsuarioRepository) Insert(ctx context.Context, u *models.Usuario) (int64, error) {
	return r.calls.insert(ctx, r.calls.db, "insertar el usuario", insertarUsuarioSQL, u.Cedula, u.Clave, string(u.Tipo))
}

// Update modifies the usuario identified by u.ID
func (r *UsuarioRepository) Update(ctx context.Context, u *models.Usuario) error {
	return r.calls.affected(ctx, r.calls.db, "modificar el usuario", "No existe el usuario a modificar", modificarUsuarioSQL,
		u.ID, u.Cedula, u.Clave, string(u.Tipo))
}

// Delete removes the usuario and then the alumno or profesor with the same cedula.
// Both deletes commit together or not at all.
func (r *UsuarioRepository) Delete(ctx context.Context, id int64) error {
	return db.WithTransaction(ctx, r.calls.db, func(ctx context.Context, q db.Querier) error {
		u, err := scanUsuario(q.QueryRow(ctx, buscarUsuarioIDSQL, id))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.NewNotFoundError("No existe el usuario a eliminar")
			}
			return r.calls.translate(err, "eliminar el usuario")
		}

		if err := r.calls.affected(ctx, q, "eliminar el usuario", "No existe el usuario a eliminar", eliminarUsuarioSQL, id); err != nil {
			return err
		}

		person, ok := r.linked[u.Tipo]
		if !ok {
			return nil
		}

		var personID int64
		if err := q.QueryRow(ctx, person.lookupSQL, u.Cedula).Scan(&personID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				logger.Warn().Int64("usuarioID", id).Str("tipo", string(u.Tipo)).
					Msg("Usuario had no linked person to delete")
				return nil
			}
			return person.calls.translate(err, person.operation)
		}

		return person.calls.affected(ctx, q, person.operation, "No existe la persona del usuario", person.deleteSQL, personID)
	})
}

// List returns every usuario
func (r *UsuarioRepository) List(ctx context.Context) ([]*models.Usuario, error) {
	return queryList(ctx, &r.calls, "listar los usuarios", "No hay usuarios registrados", scanUsuario, listarUsuariosSQL)
}

// FindByID returns the usuario with the given id
func (r *UsuarioRepository) FindByID(ctx context.Context, id int64) (*models.Usuario, error) {
	return queryOne(ctx, &r.calls, "buscar el usuario", "No existe el usuario solicitado", scanUsuario, buscarUsuarioIDSQL, id)
}

// FindByCedula returns the usuario with the given cedula
func (r *UsuarioRepository) FindByCedula(ctx context.Context, cedula string) (*models.Usuario, error) {
	return queryOne(ctx, &r.calls, "buscar el usuario", "No existe un usuario con esa cédula", scanUsuario, buscarUsuarioCedulaSQL, cedula)
}

// Login returns the usuario whose cedula and clave both match, in one round trip
func (r *UsuarioRepository) Login(ctx context.Context, cedula, clave string) (*models.Usuario, error) {
	return queryOne(ctx, &r.calls, "iniciar sesión", "Cédula o clave incorrecta", scanUsuario, loginUsuarioSQL, cedula, clave)
}
