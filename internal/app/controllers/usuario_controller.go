package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/academico/internal/app/models/dto"
	"github.com/yigit/academico/internal/app/services"
	"github.com/yigit/academico/internal/middleware"
	"github.com/yigit/academico/internal/pkg/logger"
)

// UsuarioController handles accounts and login
type UsuarioController struct {
	usuarioService services.UsuarioService
}

// NewUsuarioController creates a new UsuarioController
func NewUsuarioController(usuarioService services.UsuarioService) *UsuarioController {
	return &UsuarioController{
		usuarioService: usuarioService,
	}
}

// Insert creates an account for an existing alumno or profesor
func (c *UsuarioController) Insert(ctx *gin.Context) {
	var req dto.UsuarioRequest
	if !bindJSON(ctx, &req) {
		return
	}

	usuario, err := c.usuarioService.Insert(ctx, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	logger.Info().Int64("usuarioId", usuario.ID).Str("tipo", string(usuario.Tipo)).Msg("Usuario created")
	ctx.JSON(http.StatusCreated, usuario)
}

func (c *UsuarioController) Update(ctx *gin.Context) {
	var req dto.UsuarioRequest
	if !bindJSON(ctx, &req) {
		return
	}

	usuario, err := c.usuarioService.Update(ctx, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	logger.Info().Int64("usuarioId", usuario.ID).Msg("Usuario updated")
	ctx.JSON(http.StatusOK, usuario)
}

// Delete removes the account and the alumno or profesor behind it
func (c *UsuarioController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.usuarioService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	logger.Info().Int64("usuarioId", id).Msg("Usuario deleted")
	ctx.Status(http.StatusNoContent)
}

func (c *UsuarioController) List(ctx *gin.Context) {
	usuarios, err := c.usuarioService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, usuarios)
}

func (c *UsuarioController) FindByID(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	usuario, err := c.usuarioService.FindByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, usuario)
}

func (c *UsuarioController) FindByCedula(ctx *gin.Context) {
	cedula, ok := queryText(ctx, "cedula")
	if !ok {
		return
	}

	usuario, err := c.usuarioService.FindByCedula(ctx, cedula)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, usuario)
}

// Login checks cedula and clave
func (c *UsuarioController) Login(ctx *gin.Context) {
	cedula, ok := queryText(ctx, "cedula")
	if !ok {
		return
	}
	// The clave is compared verbatim
	clave, ok := queryRaw(ctx, "clave")
	if !ok {
		return
	}

	usuario, err := c.usuarioService.Login(ctx, cedula, clave)
	if err != nil {
		logger.Debug().Str("cedula", cedula).Msg("Login rejected")
		middleware.HandleAPIError(ctx, err)
		return
	}

	logger.Info().Int64("usuarioId", usuario.ID).Str("tipo", string(usuario.Tipo)).Msg("Usuario logged in")
	ctx.JSON(http.StatusOK, usuario)
}
