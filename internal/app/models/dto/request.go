package dto

import (
	"github.com/yigit/academico/internal/app/models"
)

// Request bodies for insertar/modificar. The same body serves both routes; ID is
// ignored on insert and required on update (checked by the service).
// Binding only checks presence and JSON types. Formats, ranges and lengths are
// enforced by the stored functions so their codes reach the client.

// AlumnoRequest is the body of /api/alumno/insertar and /modificar
type AlumnoRequest struct {
	ID              int64       `json:"id"`
	Cedula          string      `json:"cedula" binding:"required"`
	Nombre          string      `json:"nombre" binding:"required"`
	Telefono        string      `json:"telefono" binding:"required"`
	Email           string      `json:"email" binding:"required"`
	FechaNacimiento models.Date `json:"fechaNacimiento"`
	PkCarrera       int64       `json:"pkCarrera" binding:"required"`
}

// ToModel converts the request to an Alumno
func (r *AlumnoRequest) ToModel() *models.Alumno {
	return &models.Alumno{
		ID:              r.ID,
		Cedula:          r.Cedula,
		Nombre:          r.Nombre,
		Telefono:        r.Telefono,
		Email:           r.Email,
		FechaNacimiento: r.FechaNacimiento,
		PkCarrera:       r.PkCarrera,
	}
}

// ProfesorRequest is the body of /api/profesor/insertar and /modificar
type ProfesorRequest struct {
	ID       int64  `json:"id"`
	Cedula   string `json:"cedula" binding:"required"`
	Nombre   string `json:"nombre" binding:"required"`
	Telefono string `json:"telefono" binding:"required"`
	Email    string `json:"email" binding:"required"`
}

// ToModel converts the request to a Profesor
func (r *ProfesorRequest) ToModel() *models.Profesor {
	return &models.Profesor{
		ID:       r.ID,
		Cedula:   r.Cedula,
		Nombre:   r.Nombre,
		Telefono: r.Telefono,
		Email:    r.Email,
	}
}

// CarreraRequest is the body of /api/carrera/insertar and /modificar
type CarreraRequest struct {
	ID     int64  `json:"id"`
	Codigo string `json:"codigo" binding:"required"`
	Nombre string `json:"nombre" binding:"required"`
	Titulo string `json:"titulo" binding:"required"`
}

// ToModel converts the request to a Carrera
func (r *CarreraRequest) ToModel() *models.Carrera {
	return &models.Carrera{ID: r.ID, Codigo: r.Codigo, Nombre: r.Nombre, Titulo: r.Titulo}
}

// CursoRequest is the body of /api/curso/insertar and /modificar
type CursoRequest struct {
	ID             int64  `json:"id"`
	Codigo         string `json:"codigo" binding:"required"`
	Nombre         string `json:"nombre" binding:"required"`
	Creditos       int32  `json:"creditos"`
	HorasSemanales int32  `json:"horasSemanales"`
}

// ToModel converts the request to a Curso
func (r *CursoRequest) ToModel() *models.Curso {
	return &models.Curso{
		ID:             r.ID,
		Codigo:         r.Codigo,
		Nombre:         r.Nombre,
		Creditos:       r.Creditos,
		HorasSemanales: r.HorasSemanales,
	}
}

// CarreraCursoRequest is the body of /api/carreraCurso/insertar and /modificar
type CarreraCursoRequest struct {
	ID        int64 `json:"id"`
	PkCarrera int64 `json:"pkCarrera" binding:"required"`
	PkCurso   int64 `json:"pkCurso" binding:"required"`
	PkCiclo   int64 `json:"pkCiclo" binding:"required"`
}

// ToModel converts the request to a CarreraCurso
func (r *CarreraCursoRequest) ToModel() *models.CarreraCurso {
	return &models.CarreraCurso{ID: r.ID, PkCarrera: r.PkCarrera, PkCurso: r.PkCurso, PkCiclo: r.PkCiclo}
}

// CicloRequest is the body of /api/ciclo/insertar and /modificar.
// Estado is not accepted; it only changes through /activar.
type CicloRequest struct {
	ID          int64       `json:"id"`
	Anio        int32       `json:"anio"`
	Numero      int32       `json:"numero"`
	FechaInicio models.Date `json:"fechaInicio"`
	FechaFin    models.Date `json:"fechaFin"`
}

// ToModel converts the request to a Ciclo
func (r *CicloRequest) ToModel() *models.Ciclo {
	return &models.Ciclo{
		ID:          r.ID,
		Anio:        r.Anio,
		Numero:      r.Numero,
		FechaInicio: r.FechaInicio,
		FechaFin:    r.FechaFin,
		Estado:      models.CicloInactivo,
	}
}

// GrupoRequest is the body of /api/grupo/insertar and /modificar
type GrupoRequest struct {
	ID             int64  `json:"id"`
	PkCarreraCurso int64  `json:"pkCarreraCurso" binding:"required"`
	NumeroGrupo    int32  `json:"numeroGrupo" binding:"required"`
	Horario        string `json:"horario" binding:"required"`
	PkProfesor     int64  `json:"pkProfesor" binding:"required"`
}

// ToModel converts the request to a Grupo
func (r *GrupoRequest) ToModel() *models.Grupo {
	return &models.Grupo{
		ID:             r.ID,
		PkCarreraCurso: r.PkCarreraCurso,
		NumeroGrupo:    r.NumeroGrupo,
		Horario:        r.Horario,
		PkProfesor:     r.PkProfesor,
	}
}

// MatriculaRequest is the body of /api/matricula/insertar and /modificar.
// Nota may be omitted on insert and defaults to 0.
type MatriculaRequest struct {
	ID       int64 `json:"id"`
	PkAlumno int64 `json:"pkAlumno" binding:"required"`
	PkGrupo  int64 `json:"pkGrupo" binding:"required"`
	Nota     int32 `json:"nota"`
}

// ToModel converts the request to a Matricula
func (r *MatriculaRequest) ToModel() *models.Matricula {
	return &models.Matricula{ID: r.ID, PkAlumno: r.PkAlumno, PkGrupo: r.PkGrupo, Nota: r.Nota}
}

// UsuarioRequest is the body of /api/usuario/insertar and /modificar
type UsuarioRequest struct {
	ID     int64  `json:"id"`
	Cedula string `json:"cedula" binding:"required"`
	Clave  string `json:"clave" binding:"required"`
	Tipo   string `json:"tipo" binding:"required"`
}

// ToModel converts the request to a Usuario
func (r *UsuarioRequest) ToModel() *models.Usuario {
	return &models.Usuario{ID: r.ID, Cedula: r.Cedula, Clave: r.Clave, Tipo: models.TipoUsuario(r.Tipo)}
}
