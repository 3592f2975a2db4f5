package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/academico/internal/app/models/dto"
	"github.com/yigit/academico/internal/app/services"
	"github.com/yigit/academico/internal/middleware"
	"github.com/yigit/academico/internal/pkg/logger"
)

// CarreraController handles carrera and curriculum operations
type CarreraController struct {
	carreraService services.CarreraService
}

// NewCarreraController creates a new CarreraController
func NewCarreraController(carreraService services.CarreraService) *CarreraController {
	return &CarreraController{
		carreraService: carreraService,
	}
}

// Insert handles carrera creation
func (c *CarreraController) Insert(ctx *gin.Context) {
	var req dto.CarreraRequest
	if !bindJSON(ctx, &req) {
		return
	}

	carrera, err := c.carreraService.Insert(ctx, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	logger.Info().Int64("carreraId", carrera.ID).Str("codigo", carrera.Codigo).Msg("Carrera created")
	ctx.JSON(http.StatusCreated, carrera)
}

// Update modifies an existing carrera
func (c *CarreraController) Update(ctx *gin.Context) {
	var req dto.CarreraRequest
	if !bindJSON(ctx, &req) {
		return
	}

	carrera, err := c.carreraService.Update(ctx, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	logger.Info().Int64("carreraId", carrera.ID).Msg("Carrera updated")
	ctx.JSON(http.StatusOK, carrera)
}

// Delete removes a carrera without cursos or alumnos
func (c *CarreraController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.carreraService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	logger.Info().Int64("carreraId", id).Msg("Carrera deleted")
	ctx.Status(http.StatusNoContent)
}

// List returns every carrera
func (c *CarreraController) List(ctx *gin.Context) {
	carreras, err := c.carreraService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, carreras)
}

// FindByID returns one carrera
func (c *CarreraController) FindByID(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	carrera, err := c.carreraService.FindByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, carrera)
}

// FindByCodigo returns the carrera with the given codigo
func (c *CarreraController) FindByCodigo(ctx *gin.Context) {
	codigo, ok := queryText(ctx, "codigo")
	if !ok {
		return
	}

	carrera, err := c.carreraService.FindByCodigo(ctx, codigo)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, carrera)
}

// FindByNombre returns carreras whose nombre contains the text
func (c *CarreraController) FindByNombre(ctx *gin.Context) {
	nombre, ok := queryText(ctx, "nombre")
	if !ok {
		return
	}

	carreras, err := c.carreraService.FindByNombre(ctx, nombre)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, carreras)
}

// AddCurso puts a curso into the carrera's curriculum for a ciclo
func (c *CarreraController) AddCurso(ctx *gin.Context) {
	idCarrera, ok := pathID(ctx, "idCarrera")
	if !ok {
		return
	}
	idCurso, ok := pathID(ctx, "idCurso")
	if !ok {
		return
	}
	idCiclo, ok := pathID(ctx, "idCiclo")
	if !ok {
		return
	}

	cc, err := c.carreraService.AddCurso(ctx, idCarrera, idCurso, idCiclo)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	logger.Info().
		Int64("carreraId", idCarrera).
		Int64("cursoId", idCurso).
		Int64("cicloId", idCiclo).
		Msg("Curso added to carrera")
	ctx.JSON(http.StatusCreated, cc)
}

// RemoveCurso takes a curso out of the carrera's curriculum
func (c *CarreraController) RemoveCurso(ctx *gin.Context) {
	idCarrera, ok := pathID(ctx, "idCarrera")
	if !ok {
		return
	}
	idCurso, ok := pathID(ctx, "idCurso")
	if !ok {
		return
	}

	if err := c.carreraService.RemoveCurso(ctx, idCarrera, idCurso); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	logger.Info().Int64("carreraId", idCarrera).Int64("cursoId", idCurso).Msg("Curso removed from carrera")
	ctx.Status(http.StatusNoContent)
}

// ReorderCurso moves a curso of the carrera to another ciclo
func (c *CarreraController) ReorderCurso(ctx *gin.Context) {
	idCarrera, ok := pathID(ctx, "idCarrera")
	if !ok {
		return
	}
	idCurso, ok := pathID(ctx, "idCurso")
	if !ok {
		return
	}
	idCiclo, ok := pathID(ctx, "idCiclo")
	if !ok {
		return
	}

	cc, err := c.carreraService.ReorderCurso(ctx, idCarrera, idCurso, idCiclo)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	logger.Info().
		Int64("carreraId", idCarrera).
		Int64("cursoId", idCurso).
		Int64("cicloId", idCiclo).
		Msg("Curso moved to another ciclo")
	ctx.JSON(http.StatusOK, cc)
}
