package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/academico/internal/app/models/dto"
	"github.com/yigit/academico/internal/app/services"
	"github.com/yigit/academico/internal/middleware"
	"github.com/yigit/academico/internal/pkg/logger"
)

// MatriculaController handles enrollments
type MatriculaController struct {
	matriculaService services.MatriculaService
}

// NewMatriculaController creates a new MatriculaController
func NewMatriculaController(matriculaService services.MatriculaService) *MatriculaController {
	return &MatriculaController{
		matriculaService: matriculaService,
	}
}

// Insert enrolls an alumno in a grupo
func (c *MatriculaController) Insert(ctx *gin.Context) {
	var req dto.MatriculaRequest
	if !bindJSON(ctx, &req) {
		return
	}

	matricula, err := c.matriculaService.Insert(ctx, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	logger.Info().
		Int64("matriculaId", matricula.ID).
		Int64("alumnoId", matricula.PkAlumno).
		Int64("grupoId", matricula.PkGrupo).
		Msg("Matricula created")
	ctx.JSON(http.StatusCreated, matricula)
}

// Update changes the grupo or the nota of an enrollment
func (c *MatriculaController) Update(ctx *gin.Context) {
	var req dto.MatriculaRequest
	if !bindJSON(ctx, &req) {
		return
	}

	matricula, err := c.matriculaService.Update(ctx, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	logger.Info().Int64("matriculaId", matricula.ID).Int32("nota", matricula.Nota).Msg("Matricula updated")
	ctx.JSON(http.StatusOK, matricula)
}

func (c *MatriculaController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.matriculaService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	logger.Info().Int64("matriculaId", id).Msg("Matricula deleted")
	ctx.Status(http.StatusNoContent)
}

func (c *MatriculaController) List(ctx *gin.Context) {
	matriculas, err := c.matriculaService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, matriculas)
}

func (c *MatriculaController) FindByID(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	matricula, err := c.matriculaService.FindByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, matricula)
}

func (c *MatriculaController) FindByAlumno(ctx *gin.Context) {
	idAlumno, ok := pathID(ctx, "idAlumno")
	if !ok {
		return
	}

	matriculas, err := c.matriculaService.FindByAlumno(ctx, idAlumno)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, matriculas)
}

func (c *MatriculaController) FindByAlumnoCiclo(ctx *gin.Context) {
	idAlumno, ok := queryID(ctx, "idAlumno")
	if !ok {
		return
	}
	idCiclo, ok := queryID(ctx, "idCiclo")
	if !ok {
		return
	}

	matriculas, err := c.matriculaService.FindByAlumnoCiclo(ctx, idAlumno, idCiclo)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, matriculas)
}

func (c *MatriculaController) FindByGrupo(ctx *gin.Context) {
	idGrupo, ok := pathID(ctx, "idGrupo")
	if !ok {
		return
	}

	matriculas, err := c.matriculaService.FindByGrupo(ctx, idGrupo)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, matriculas)
}
