package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/academico/internal/app/models/dto"
	"github.com/yigit/academico/internal/app/services"
	"github.com/yigit/academico/internal/middleware"
	"github.com/yigit/academico/internal/pkg/logger"
)

// CarreraCursoController handles the carrera-curso join rows directly
type CarreraCursoController struct {
	carreraCursoService services.CarreraCursoService
}

// NewCarreraCursoController creates a new CarreraCursoController
func NewCarreraCursoController(carreraCursoService services.CarreraCursoService) *CarreraCursoController {
	return &CarreraCursoController{
		carreraCursoService: carreraCursoService,
	}
}

func (c *CarreraCursoController) Insert(ctx *gin.Context) {
	var req dto.CarreraCursoRequest
	if !bindJSON(ctx, &req) {
		return
	}

	cc, err := c.carreraCursoService.Insert(ctx, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	logger.Info().Int64("carreraCursoId", cc.ID).Msg("CarreraCurso created")
	ctx.JSON(http.StatusCreated, cc)
}

func (c *CarreraCursoController) Update(ctx *gin.Context) {
	var req dto.CarreraCursoRequest
	if !bindJSON(ctx, &req) {
		return
	}

	cc, err := c.carreraCursoService.Update(ctx, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	logger.Info().Int64("carreraCursoId", cc.ID).Msg("CarreraCurso updated")
	ctx.JSON(http.StatusOK, cc)
}

func (c *CarreraCursoController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.carreraCursoService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	logger.Info().Int64("carreraCursoId", id).Msg("CarreraCurso deleted")
	ctx.Status(http.StatusNoContent)
}

func (c *CarreraCursoController) List(ctx *gin.Context) {
	offer, err := c.carreraCursoService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, offer)
}

func (c *CarreraCursoController) FindByID(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	cc, err := c.carreraCursoService.FindByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, cc)
}

func (c *CarreraCursoController) FindByCarreraCiclo(ctx *gin.Context) {
	idCarrera, ok := queryID(ctx, "idCarrera")
	if !ok {
		return
	}
	idCiclo, ok := queryID(ctx, "idCiclo")
	if !ok {
		return
	}

	offer, err := c.carreraCursoService.FindByCarreraCiclo(ctx, idCarrera, idCiclo)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, offer)
}

// HasGrupos answers {"existe": bool}
func (c *CarreraCursoController) HasGrupos(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	exists, err := c.carreraCursoService.HasGrupos(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ExistsResponse{Existe: exists})
}
