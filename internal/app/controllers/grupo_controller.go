package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/academico/internal/app/models/dto"
	"github.com/yigit/academico/internal/app/services"
	"github.com/yigit/academico/internal/middleware"
	"github.com/yigit/academico/internal/pkg/logger"
)

// GrupoController handles grupo-related operations
type GrupoController struct {
	grupoService services.GrupoService
}

// NewGrupoController creates a new GrupoController
func NewGrupoController(grupoService services.GrupoService) *GrupoController {
	return &GrupoController{
		grupoService: grupoService,
	}
}

func (c *GrupoController) Insert(ctx *gin.Context) {
	var req dto.GrupoRequest
	if !bindJSON(ctx, &req) {
		return
	}

	grupo, err := c.grupoService.Insert(ctx, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	logger.Info().
		Int64("grupoId", grupo.ID).
		Int64("carreraCursoId", grupo.PkCarreraCurso).
		Int64("profesorId", grupo.PkProfesor).
		Msg("Grupo created")
	ctx.JSON(http.StatusCreated, grupo)
}

func (c *GrupoController) Update(ctx *gin.Context) {
	var req dto.GrupoRequest
	if !bindJSON(ctx, &req) {
		return
	}

	grupo, err := c.grupoService.Update(ctx, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	logger.Info().Int64("grupoId", grupo.ID).Msg("Grupo updated")
	ctx.JSON(http.StatusOK, grupo)
}

func (c *GrupoController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.grupoService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	logger.Info().Int64("grupoId", id).Msg("Grupo deleted")
	ctx.Status(http.StatusNoContent)
}

func (c *GrupoController) List(ctx *gin.Context) {
	grupos, err := c.grupoService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, grupos)
}

func (c *GrupoController) FindByID(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	grupo, err := c.grupoService.FindByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, grupo)
}

func (c *GrupoController) FindByCarreraCurso(ctx *gin.Context) {
	idCarreraCurso, ok := pathID(ctx, "idCarreraCurso")
	if !ok {
		return
	}

	grupos, err := c.grupoService.FindByCarreraCurso(ctx, idCarreraCurso)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, grupos)
}

func (c *GrupoController) FindByCarreraCiclo(ctx *gin.Context) {
	idCarrera, ok := queryID(ctx, "idCarrera")
	if !ok {
		return
	}
	idCiclo, ok := queryID(ctx, "idCiclo")
	if !ok {
		return
	}

	grupos, err := c.grupoService.FindByCarreraCiclo(ctx, idCarrera, idCiclo)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, grupos)
}

func (c *GrupoController) FindByCursoCiclo(ctx *gin.Context) {
	idCurso, ok := queryID(ctx, "idCurso")
	if !ok {
		return
	}
	idCiclo, ok := queryID(ctx, "idCiclo")
	if !ok {
		return
	}

	grupos, err := c.grupoService.FindByCursoCiclo(ctx, idCurso, idCiclo)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, grupos)
}

func (c *GrupoController) FindByProfesor(ctx *gin.Context) {
	idProfesor, ok := pathID(ctx, "idProfesor")
	if !ok {
		return
	}

	grupos, err := c.grupoService.FindByProfesor(ctx, idProfesor)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, grupos)
}

func (c *GrupoController) FindByProfesorCiclo(ctx *gin.Context) {
	idProfesor, ok := queryID(ctx, "idProfesor")
	if !ok {
		return
	}
	idCiclo, ok := queryID(ctx, "idCiclo")
	if !ok {
		return
	}

	grupos, err := c.grupoService.FindByProfesorCiclo(ctx, idProfesor, idCiclo)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, grupos)
}

// FindByMatricula returns the grupo an enrollment belongs to
func (c *GrupoController) FindByMatricula(ctx *gin.Context) {
	idMatricula, ok := pathID(ctx, "idMatricula")
	if !ok {
		return
	}

	grupo, err := c.grupoService.FindByMatricula(ctx, idMatricula)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, grupo)
}
