package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/academico/internal/app/controllers"
)

// Controllers groups the handlers mounted under /api
type Controllers struct {
	Alumno       *controllers.AlumnoController
	Profesor     *controllers.ProfesorController
	Carrera      *controllers.CarreraController
	Curso        *controllers.CursoController
	CarreraCurso *controllers.CarreraCursoController
	Ciclo        *controllers.CicloController
	Grupo        *controllers.GrupoController
	Matricula    *controllers.MatriculaController
	Usuario      *controllers.UsuarioController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c Controllers) {
	api := router.Group("/api")

	alumno := api.Group("/alumno")
	{
		alumno.POST("/insertar", c.Alumno.Insert)
		alumno.PUT("/modificar", c.Alumno.Update)
		alumno.DELETE("/eliminar/:id", c.Alumno.Delete)
		alumno.GET("/listar", c.Alumno.List)
		alumno.GET("/buscarPorId/:id", c.Alumno.FindByID)
		alumno.GET("/buscarPorCedula", c.Alumno.FindByCedula)
		alumno.GET("/buscarPorNombre", c.Alumno.FindByNombre)
		alumno.GET("/buscarPorCarrera/:idCarrera", c.Alumno.FindByCarrera)
		alumno.GET("/buscarPorCarreraCiclo", c.Alumno.FindByCarreraCiclo)
	}

	profesor := api.Group("/profesor")
	{
		profesor.POST("/insertar", c.Profesor.Insert)
		profesor.PUT("/modificar", c.Profesor.Update)
		profesor.DELETE("/eliminar/:id", c.Profesor.Delete)
		profesor.GET("/listar", c.Profesor.List)
		profesor.GET("/buscarPorId/:id", c.Profesor.FindByID)
		profesor.GET("/buscarPorCedula", c.Profesor.FindByCedula)
		profesor.GET("/buscarPorNombre", c.Profesor.FindByNombre)
	}

	carrera := api.Group("/carrera")
	{
		carrera.POST("/insertar", c.Carrera.Insert)
		carrera.PUT("/modificar", c.Carrera.Update)
		carrera.DELETE("/eliminar/:id", c.Carrera.Delete)
		carrera.GET("/listar", c.Carrera.List)
		carrera.GET("/buscarPorId/:id", c.Carrera.FindByID)
		carrera.GET("/buscarPorCodigo", c.Carrera.FindByCodigo)
		carrera.GET("/buscarPorNombre", c.Carrera.FindByNombre)

		// Curriculum
		carrera.POST("/agregarCurso/:idCarrera/:idCurso/:idCiclo", c.Carrera.AddCurso)
		carrera.DELETE("/eliminarCurso/:idCarrera/:idCurso", c.Carrera.RemoveCurso)
		carrera.PUT("/reordenarCurso/:idCarrera/:idCurso/:idCiclo", c.Carrera.ReorderCurso)
	}

	curso := api.Group("/curso")
	{
		curso.POST("/insertar", c.Curso.Insert)
		curso.PUT("/modificar", c.Curso.Update)
		curso.DELETE("/eliminar/:id", c.Curso.Delete)
		curso.GET("/listar", c.Curso.List)
		curso.GET("/buscarPorId/:id", c.Curso.FindByID)
		curso.GET("/buscarPorCodigo", c.Curso.FindByCodigo)
		curso.GET("/buscarPorNombre", c.Curso.FindByNombre)
		curso.GET("/buscarPorCarrera/:idCarrera", c.Curso.FindByCarrera)
		curso.GET("/buscarPorCiclo/:idCiclo", c.Curso.FindByCiclo)
		curso.GET("/buscarPorCarreraCiclo", c.Curso.FindByCarreraCiclo)
	}

	carreraCurso := api.Group("/carreraCurso")
	{
		carreraCurso.POST("/insertar", c.CarreraCurso.Insert)
		carreraCurso.PUT("/modificar", c.CarreraCurso.Update)
		carreraCurso.DELETE("/eliminar/:id", c.CarreraCurso.Delete)
		carreraCurso.GET("/listar", c.CarreraCurso.List)
		carreraCurso.GET("/buscarPorId/:id", c.CarreraCurso.FindByID)
		carreraCurso.GET("/buscarPorCarreraCiclo", c.CarreraCurso.FindByCarreraCiclo)
		carreraCurso.GET("/tieneGrupos/:id", c.CarreraCurso.HasGrupos)
	}

	ciclo := api.Group("/ciclo")
	{
		ciclo.POST("/insertar", c.Ciclo.Insert)
		ciclo.PUT("/modificar", c.Ciclo.Update)
		ciclo.DELETE("/eliminar/:id", c.Ciclo.Delete)
		ciclo.GET("/listar", c.Ciclo.List)
		ciclo.GET("/buscarPorId/:id", c.Ciclo.FindByID)
		ciclo.GET("/buscarPorAnio/:anio", c.Ciclo.FindByAnio)
		ciclo.GET("/activo", c.Ciclo.FindActive)
		ciclo.PUT("/activar/:id", c.Ciclo.Activate)
	}

	grupo := api.Group("/grupo")
	{
		grupo.POST("/insertar", c.Grupo.Insert)
		grupo.PUT("/modificar", c.Grupo.Update)
		grupo.DELETE("/eliminar/:id", c.Grupo.Delete)
		grupo.GET("/listar", c.Grupo.List)
		grupo.GET("/buscarPorId/:id", c.Grupo.FindByID)
		grupo.GET("/buscarPorCarreraCurso/:idCarreraCurso", c.Grupo.FindByCarreraCurso)
		grupo.GET("/buscarPorCarreraCiclo", c.Grupo.FindByCarreraCiclo)
		grupo.GET("/buscarPorCursoCiclo", c.Grupo.FindByCursoCiclo)
		grupo.GET("/buscarPorProfesor/:idProfesor", c.Grupo.FindByProfesor)
		grupo.GET("/buscarPorProfesorCiclo", c.Grupo.FindByProfesorCiclo)
		grupo.GET("/buscarPorMatricula/:idMatricula", c.Grupo.FindByMatricula)
	}

	matricula := api.Group("/matricula")
	{
		matricula.POST("/insertar", c.Matricula.Insert)
		matricula.PUT("/modificar", c.Matricula.Update)
		matricula.DELETE("/eliminar/:id", c.Matricula.Delete)
		matricula.GET("/listar", c.Matricula.List)
		matricula.GET("/buscarPorId/:id", c.Matricula.FindByID)
		matricula.GET("/listarPorAlumno/:idAlumno", c.Matricula.FindByAlumno)
		matricula.GET("/listarPorAlumnoCiclo", c.Matricula.FindByAlumnoCiclo)
		matricula.GET("/listarPorGrupo/:idGrupo", c.Matricula.FindByGrupo)
	}

	usuario := api.Group("/usuario")
	{
		usuario.POST("/insertar", c.Usuario.Insert)
		usuario.PUT("/modificar", c.Usuario.Update)
		usuario.DELETE("/eliminar/:id", c.Usuario.Delete)
		usuario.GET("/listar", c.Usuario.List)
		usuario.GET("/buscarPorId/:id", c.Usuario.FindByID)
		usuario.GET("/buscarPorCedula", c.Usuario.FindByCedula)
		usuario.POST("/login", c.Usuario.Login)
	}

	router.GET("/ping", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})
}
