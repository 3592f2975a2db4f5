package models

// Alumno is a student enrolled in one carrera
type Alumno struct {
	ID              int64  `json:"id"`
	Cedula          string `json:"cedula"`
	Nombre          string `json:"nombre"`
	Telefono        string `json:"telefono"`
	Email           string `json:"email"`
	FechaNacimiento Date   `json:"fechaNacimiento"`
	PkCarrera       int64  `json:"pkCarrera"`
}

// Profesor teaches grupos
type Profesor struct {
	ID       int64  `json:"id"`
	Cedula   string `json:"cedula"`
	Nombre   string `json:"nombre"`
	Telefono string `json:"telefono"`
	Email    string `json:"email"`
}

// TipoUsuario tells which person table a Usuario shadows
type TipoUsuario string

const (
	TipoAlumno   TipoUsuario = "Alumno"
	TipoProfesor TipoUsuario = "Profesor"
)

// Usuario is a login account linked by cedula to an Alumno or Profesor.
// Clave is never serialised.
type Usuario struct {
	ID     int64       `json:"id"`
	Cedula string      `json:"cedula"`
	Clave  string      `json:"-"`
	Tipo   TipoUsuario `json:"tipo"`
}
