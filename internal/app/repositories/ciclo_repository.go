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

const cicloColumns = "id, anio, numero, fecha_inicio, fecha_fin, estado"

const (
	insertarCicloSQL     = "SELECT insertar_ciclo($1, $2, $3, $4)"
	modificarCicloSQL    = "SELECT modificar_ciclo($1, $2, $3, $4, $5)"
	eliminarCicloSQL     = "SELECT eliminar_ciclo($1)"
	activarCicloSQL      = "SELECT activar_ciclo($1)"
	listarCiclosSQL      = "SELECT " + cicloColumns + " FROM listar_ciclos()"
	buscarCicloIDSQL     = "SELECT " + cicloColumns + " FROM buscar_ciclo_id($1)"
	buscarCiclosAnioSQL  = "SELECT " + cicloColumns + " FROM buscar_ciclos_anio($1)"
	buscarCicloActivoSQL = "SELECT " + cicloColumns + " FROM buscar_ciclo_activo()"
)

var cicloMessages = dberrors.Messages{
	20601:                    "Ya existe un ciclo con ese año y número",
	20602:                    "La fecha de inicio debe ser anterior a la fecha de fin",
	20603:                    "El número de ciclo debe estar entre 1 y 3",
	20604:                    "No se puede eliminar el ciclo porque tiene cursos asignados",
	20605:                    "El año del ciclo no es válido",
	dberrors.UniqueViolation: "Ya existe un ciclo con ese año y número",
	dberrors.CheckViolation:  "Los datos del ciclo no son válidos",
}

// CicloRepository handles ciclo database operations
type CicloRepository struct {
	calls storedCalls
}

// NewCicloRepository creates a new CicloRepository
func NewCicloRepository(pool db.Pool) *CicloRepository {
	return &CicloRepository{calls: newStoredCalls(pool, "ciclo", cicloMessages)}
}

func scanCiclo(row pgx.Row) (*models.Ciclo, error) {
	c := &models.Ciclo{}
	var inicio, fin time.Time
	var estado string
	if err := row.Scan(&c.ID, &c.Anio, &c.Numero, &inicio, &fin, &estado); err != nil {
		return nil, err
	}
	c.FechaInicio = models.Date{Time: inicio}
	c.FechaFin = models.Date{Time: fin}
	c.Estado = models.EstadoCiclo(estado)
	return c, nil
}

// Insert creates an inactive ciclo and returns its id
func (r *CicloRepository) Insert(ctx context.Context, c *models.Ciclo) (int64, error) {
	return r.calls.insert(ctx, r.calls.db, "insertar el ciclo", insertarCicloSQL,
		c.Anio, c.Numero, c.FechaInicio.Time, c.FechaFin.Time)
}

// Update modifies the ciclo identified by c.ID; the estado is left untouched
func (r *CicloRepository) Update(ctx context.Context, c *models.Ciclo) error {
	return r.calls.affected(ctx, r.calls.db, "modificar el ciclo", "No existe el ciclo a modificar", modificarCicloSQL,
		c.ID, c.Anio, c.Numero, c.FechaInicio.Time, c.FechaFin.Time)
}

// Delete removes a ciclo that no carrera-curso uses
func (r *CicloRepository) Delete(ctx context.Context, id int64) error {
	return r.calls.remove(ctx, "eliminar el ciclo", "No existe el ciclo a eliminar", eliminarCicloSQL, id,
		dependency{
			query:   r.calls.exists("carrera_curso", squirrel.Eq{"pk_ciclo": id}),
			message: cicloMessages[20604],
		},
	)
}

// Activate makes the ciclo the only active one
func (r *CicloRepository) Activate(ctx context.Context, id int64) error {
	return r.calls.affected(ctx, r.calls.db, "activar el ciclo", "No existe el ciclo a activar", activarCicloSQL, id)
}

// List returns every ciclo
func (r *CicloRepository) List(ctx context.Context) ([]*models.Ciclo, error) {
	return queryList(ctx, &r.calls, "listar los ciclos", "No hay ciclos registrados", scanCiclo, listarCiclosSQL)
}

// FindByID returns the ciclo with the given id
func (r *CicloRepository) FindByID(ctx context.Context, id int64) (*models.Ciclo, error) {
	return queryOne(ctx, &r.calls, "buscar el ciclo", "No existe el ciclo solicitado", scanCiclo, buscarCicloIDSQL, id)
}

// FindByAnio returns the ciclos of a year
func (r *CicloRepository) FindByAnio(ctx context.Context, anio int32) ([]*models.Ciclo, error) {
	return queryList(ctx, &r.calls, "buscar ciclos", "No hay ciclos en ese año", scanCiclo, buscarCiclosAnioSQL, anio)
}

// FindActive returns the active ciclo
func (r *CicloRepository) FindActive(ctx context.Context) (*models.Ciclo, error) {
	return queryOne(ctx, &r.calls, "buscar el ciclo activo", "No hay un ciclo activo", scanCiclo, buscarCicloActivoSQL)
}
