package repositories

import (
	"github.com/yigit/academico/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	AlumnoRepository       *AlumnoRepository
	ProfesorRepository     *ProfesorRepository
	CarreraRepository      *CarreraRepository
	CursoRepository        *CursoRepository
	CarreraCursoRepository *CarreraCursoRepository
	CicloRepository        *CicloRepository
	GrupoRepository        *GrupoRepository
	MatriculaRepository    *MatriculaRepository
	UsuarioRepository      *UsuarioRepository
}

// NewRepositories initializes all repositories
func NewRepositories(pool db.Pool) *Repositories {
	alumnos := NewAlumnoRepository(pool)
	profesores := NewProfesorRepository(pool)

	return &Repositories{
		AlumnoRepository:       alumnos,
		ProfesorRepository:     profesores,
		CarreraRepository:      NewCarreraRepository(pool),
		CursoRepository:        NewCursoRepository(pool),
		CarreraCursoRepository: NewCarreraCursoRepository(pool),
		CicloRepository:        NewCicloRepository(pool),
		GrupoRepository:        NewGrupoRepository(pool),
		MatriculaRepository:    NewMatriculaRepository(pool),
		UsuarioRepository:      NewUsuarioRepository(pool, alumnos, profesores),
	}
}
