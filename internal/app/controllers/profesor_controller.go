package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/academico/internal/app/models/dto"
	"github.com/yigit/academico/internal/app/services"
	"github.com/yigit/academico/internal/middleware"
	"github.com/yigit/academico/internal/pkg/logger"
)

// ProfesorController handles profesor-related operations
type ProfesorController struct {
	profesorService services.ProfesorService
}

// NewProfesorController creates a new ProfesorController
func NewProfesorController(profesorService services.ProfesorService) *ProfesorController {
	return &ProfesorController{
		profesorService: profesorService,
	}
}

func (c *ProfesorController) Insert(ctx *gin.Context) {
	var req dto.ProfesorRequest
	if !bindJSON(ctx, &req) {
		return
	}

	profesor, err := c.profesorService.Insert(ctx, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	logger.Info().Int64("profesorId", profesor.ID).Msg("Profesor created")
	ctx.JSON(http.StatusCreated, profesor)
}

func (c *ProfesorController) Update(ctx *gin.Context) {
	var req dto.ProfesorRequest
	if !bindJSON(ctx, &req) {
		return
	}

	profesor, err := c.profesorService.Update(ctx, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	logger.Info().Int64("profesorId", profesor.ID).Msg("Profesor updated")
	ctx.JSON(http.StatusOK, profesor)
}

func (c *ProfesorController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.profesorService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	logger.Info().Int64("profesorId", id).Msg("Profesor deleted")
	ctx.Status(http.StatusNoContent)
}

func (c *ProfesorController) List(ctx *gin.Context) {
	profesores, err := c.profesorService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, profesores)
}

func (c *ProfesorController) FindByID(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	profesor, err := c.profesorService.FindByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, profesor)
}

func (c *ProfesorController) FindByCedula(ctx *gin.Context) {
	cedula, ok := queryText(ctx, "cedula")
	if !ok {
		return
	}

	profesor, err := c.profesorService.FindByCedula(ctx, cedula)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, profesor)
}

func (c *ProfesorController) FindByNombre(ctx *gin.Context) {
	nombre, ok := queryText(ctx, "nombre")
	if !ok {
		return
	}

	profesores, err := c.profesorService.FindByNombre(ctx, nombre)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, profesores)
}
