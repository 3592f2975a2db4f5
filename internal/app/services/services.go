// Package services holds the business layer between controllers and
// repositories. Each entity has one service:
//   - AlumnoService, ProfesorService: people records
//   - CarreraService, CursoService, CarreraCursoService: the curriculum
//   - CicloService: academic terms and the active one
//   - GrupoService, MatriculaService: sections and enrollments
//   - UsuarioService: accounts and login
//
// Services validate identifiers, delegate to the repository and wrap
// failures; the error kind set by the repository is preserved.
package services
