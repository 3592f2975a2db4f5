package controllers

import (
	"fmt"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/academico/internal/app/models/dto"
	"github.com/yigit/academico/internal/app/services"
	"github.com/yigit/academico/internal/middleware"
	"github.com/yigit/academico/internal/pkg/logger"
)

// CicloController handles academic terms
type CicloController struct {
	cicloService services.CicloService
}

// NewCicloController creates a new CicloController
func NewCicloController(cicloService services.CicloService) *CicloController {
	return &CicloController{
		cicloService: cicloService,
	}
}

// Insert handles ciclo creation. New ciclos are inactive.
func (c *CicloController) Insert(ctx *gin.Context) {
	var req dto.CicloRequest
	if !bindJSON(ctx, &req) {
		return
	}

	ciclo, err := c.cicloService.Insert(ctx, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	logger.Info().Int64("cicloId", ciclo.ID).Int32("anio", ciclo.Anio).Int32("numero", ciclo.Numero).Msg("Ciclo created")
	ctx.JSON(http.StatusCreated, ciclo)
}

// Update handles ciclo modification; estado is not changed here
func (c *CicloController) Update(ctx *gin.Context) {
	var req dto.CicloRequest
	if !bindJSON(ctx, &req) {
		return
	}

	ciclo, err := c.cicloService.Update(ctx, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	logger.Info().Int64("cicloId", ciclo.ID).Msg("Ciclo updated")
	ctx.JSON(http.StatusOK, ciclo)
}

func (c *CicloController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.cicloService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	logger.Info().Int64("cicloId", id).Msg("Ciclo deleted")
	ctx.Status(http.StatusNoContent)
}

func (c *CicloController) List(ctx *gin.Context) {
	ciclos, err := c.cicloService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, ciclos)
}

func (c *CicloController) FindByID(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	ciclo, err := c.cicloService.FindByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, ciclo)
}

// FindByAnio returns the ciclos of one year
func (c *CicloController) FindByAnio(ctx *gin.Context) {
	anio, ok := pathID(ctx, "anio")
	if !ok {
		return
	}
	if anio > math.MaxInt32 {
		middleware.RespondMalformed(ctx, fmt.Errorf("el parámetro 'anio' está fuera de rango"))
		return
	}

	ciclos, err := c.cicloService.FindByAnio(ctx, int32(anio))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, ciclos)
}

// FindActive returns the active ciclo, 404 when there is none
func (c *CicloController) FindActive(ctx *gin.Context) {
	ciclo, err := c.cicloService.FindActive(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, ciclo)
}

// Activate makes the ciclo the only active one
func (c *CicloController) Activate(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	ciclo, err := c.cicloService.Activate(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	logger.Info().Int64("cicloId", id).Msg("Ciclo activated")
	ctx.JSON(http.StatusOK, ciclo)
}
