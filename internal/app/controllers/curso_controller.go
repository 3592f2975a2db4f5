package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/academico/internal/app/models/dto"
	"github.com/yigit/academico/internal/app/services"
	"github.com/yigit/academico/internal/middleware"
	"github.com/yigit/academico/internal/pkg/logger"
)

// CursoController handles curso-related operations
type CursoController struct {
	cursoService services.CursoService
}

// NewCursoController creates a new CursoController
func NewCursoController(cursoService services.CursoService) *CursoController {
	return &CursoController{
		cursoService: cursoService,
	}
}

// Insert handles curso creation
func (c *CursoController) Insert(ctx *gin.Context) {
	var req dto.CursoRequest
	if !bindJSON(ctx, &req) {
		return
	}

	curso, err := c.cursoService.Insert(ctx, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	logger.Info().Int64("cursoId", curso.ID).Str("codigo", curso.Codigo).Msg("Curso created")
	ctx.JSON(http.StatusCreated, curso)
}

// Update handles curso modification
func (c *CursoController) Update(ctx *gin.Context) {
	var req dto.CursoRequest
	if !bindJSON(ctx, &req) {
		return
	}

	curso, err := c.cursoService.Update(ctx, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	logger.Info().Int64("cursoId", curso.ID).Msg("Curso updated")
	ctx.JSON(http.StatusOK, curso)
}

// Delete removes a curso not linked to any carrera or grupo
func (c *CursoController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.cursoService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	logger.Info().Int64("cursoId", id).Msg("Curso deleted")
	ctx.Status(http.StatusNoContent)
}

// List returns every curso
func (c *CursoController) List(ctx *gin.Context) {
	cursos, err := c.cursoService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, cursos)
}

func (c *CursoController) FindByID(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	curso, err := c.cursoService.FindByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, curso)
}

func (c *CursoController) FindByCodigo(ctx *gin.Context) {
	codigo, ok := queryText(ctx, "codigo")
	if !ok {
		return
	}

	curso, err := c.cursoService.FindByCodigo(ctx, codigo)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, curso)
}

func (c *CursoController) FindByNombre(ctx *gin.Context) {
	nombre, ok := queryText(ctx, "nombre")
	if !ok {
		return
	}

	cursos, err := c.cursoService.FindByNombre(ctx, nombre)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, cursos)
}

// FindByCarrera returns the curriculum of a carrera
func (c *CursoController) FindByCarrera(ctx *gin.Context) {
	idCarrera, ok := pathID(ctx, "idCarrera")
	if !ok {
		return
	}

	cursos, err := c.cursoService.FindByCarrera(ctx, idCarrera)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, cursos)
}

// FindByCiclo returns the cursos offered in a ciclo by any carrera
func (c *CursoController) FindByCiclo(ctx *gin.Context) {
	idCiclo, ok := pathID(ctx, "idCiclo")
	if !ok {
		return
	}

	cursos, err := c.cursoService.FindByCiclo(ctx, idCiclo)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, cursos)
}

func (c *CursoController) FindByCarreraCiclo(ctx *gin.Context) {
	idCarrera, ok := queryID(ctx, "idCarrera")
	if !ok {
		return
	}
	idCiclo, ok := queryID(ctx, "idCiclo")
	if !ok {
		return
	}

	cursos, err := c.cursoService.FindByCarreraCiclo(ctx, idCarrera, idCiclo)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, cursos)
}
