package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/academico/internal/app/models/dto"
	"github.com/yigit/academico/internal/app/services"
	"github.com/yigit/academico/internal/middleware"
	"github.com/yigit/academico/internal/pkg/logger"
)

// AlumnoController handles alumno-related operations
type AlumnoController struct {
	alumnoService services.AlumnoService
}

// NewAlumnoController creates a new AlumnoController
func NewAlumnoController(alumnoService services.AlumnoService) *AlumnoController {
	return &AlumnoController{
		alumnoService: alumnoService,
	}
}

// Insert handles alumno creation
func (c *AlumnoController) Insert(ctx *gin.Context) {
	var req dto.AlumnoRequest
	if !bindJSON(ctx, &req) {
		return
	}

	alumno, err := c.alumnoService.Insert(ctx, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	logger.Info().Int64("alumnoId", alumno.ID).Int64("carreraId", alumno.PkCarrera).Msg("Alumno created")
	ctx.JSON(http.StatusCreated, alumno)
}

// Update handles alumno modification
func (c *AlumnoController) Update(ctx *gin.Context) {
	var req dto.AlumnoRequest
	if !bindJSON(ctx, &req) {
		return
	}

	alumno, err := c.alumnoService.Update(ctx, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	logger.Info().Int64("alumnoId", alumno.ID).Msg("Alumno updated")
	ctx.JSON(http.StatusOK, alumno)
}

// Delete removes an alumno without matriculas or usuario
func (c *AlumnoController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.alumnoService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	logger.Info().Int64("alumnoId", id).Msg("Alumno deleted")
	ctx.Status(http.StatusNoContent)
}

// List returns every alumno
func (c *AlumnoController) List(ctx *gin.Context) {
	alumnos, err := c.alumnoService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, alumnos)
}

// FindByID returns one alumno
func (c *AlumnoController) FindByID(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	alumno, err := c.alumnoService.FindByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, alumno)
}

// FindByCedula returns the alumno with the given cedula
func (c *AlumnoController) FindByCedula(ctx *gin.Context) {
	cedula, ok := queryText(ctx, "cedula")
	if !ok {
		return
	}

	alumno, err := c.alumnoService.FindByCedula(ctx, cedula)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, alumno)
}

// FindByNombre returns alumnos whose nombre contains the text
func (c *AlumnoController) FindByNombre(ctx *gin.Context) {
	nombre, ok := queryText(ctx, "nombre")
	if !ok {
		return
	}

	alumnos, err := c.alumnoService.FindByNombre(ctx, nombre)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, alumnos)
}

// FindByCarrera returns the alumnos of a carrera
func (c *AlumnoController) FindByCarrera(ctx *gin.Context) {
	idCarrera, ok := pathID(ctx, "idCarrera")
	if !ok {
		return
	}

	alumnos, err := c.alumnoService.FindByCarrera(ctx, idCarrera)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, alumnos)
}

// FindByCarreraCiclo returns the alumnos of a carrera enrolled in a ciclo's offer
func (c *AlumnoController) FindByCarreraCiclo(ctx *gin.Context) {
	idCarrera, ok := queryID(ctx, "idCarrera")
	if !ok {
		return
	}
	idCiclo, ok := queryID(ctx, "idCiclo")
	if !ok {
		return
	}

	alumnos, err := c.alumnoService.FindByCarreraCiclo(ctx, idCarrera, idCiclo)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, alumnos)
}
