package models

// Carrera is a degree program
type Carrera struct {
	ID     int64  `json:"id"`
	Codigo string `json:"codigo"`
	Nombre string `json:"nombre"`
	Titulo string `json:"titulo"`
}

// Curso is a course that carreras can include in their curriculum
type Curso struct {
	ID             int64  `json:"id"`
	Codigo         string `json:"codigo"`
	Nombre         string `json:"nombre"`
	Creditos       int32  `json:"creditos"`
	HorasSemanales int32  `json:"horasSemanales"`
}

// CarreraCurso pins a curso into a carrera's curriculum for one ciclo
type CarreraCurso struct {
	ID        int64 `json:"id"`
	PkCarrera int64 `json:"pkCarrera"`
	PkCurso   int64 `json:"pkCurso"`
	PkCiclo   int64 `json:"pkCiclo"`
}

// EstadoCiclo is the activation state of a ciclo
type EstadoCiclo string

const (
	CicloActivo   EstadoCiclo = "activo"
	CicloInactivo EstadoCiclo = "inactivo"
)

// Ciclo is an academic term; at most one is active
type Ciclo struct {
	ID          int64       `json:"id"`
	Anio        int32       `json:"anio"`
	Numero      int32       `json:"numero"`
	FechaInicio Date        `json:"fechaInicio"`
	FechaFin    Date        `json:"fechaFin"`
	Estado      EstadoCiclo `json:"estado"`
}

// Activo reports whether the ciclo is the active one
func (c *Ciclo) Activo() bool {
	return c.Estado == CicloActivo
}

// Grupo is a scheduled section of a carrera-curso taught by one profesor
type Grupo struct {
	ID             int64  `json:"id"`
	PkCarreraCurso int64  `json:"pkCarreraCurso"`
	NumeroGrupo    int32  `json:"numeroGrupo"`
	Horario        string `json:"horario"`
	PkProfesor     int64  `json:"pkProfesor"`
}

// Matricula is a student's enrollment in one grupo, with its grade
type Matricula struct {
	ID       int64 `json:"id"`
	PkAlumno int64 `json:"pkAlumno"`
	PkGrupo  int64 `json:"pkGrupo"`
	Nota     int32 `json:"nota"`
}
