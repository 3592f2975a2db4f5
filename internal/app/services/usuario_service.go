package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yigit/academico/internal/app/models"
	"github.com/yigit/academico/internal/pkg/apperrors"
)

// UsuarioRepository is the storage the usuario service needs
type UsuarioRepository interface {
	Insert(ctx context.Context, u *models.Usuario) (int64, error)
	Update(ctx context.Context, u *models.Usuario) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*models.Usuario, error)
	FindByID(ctx context.Context, id int64) (*models.Usuario, error)
	FindByCedula(ctx context.Context, cedula string) (*models.Usuario, error)
	Login(ctx context.Context, cedula, clave string) (*models.Usuario, error)
}

// UsuarioService defines the interface for account operations
type UsuarioService interface {
	Insert(ctx context.Context, u *models.Usuario) (*models.Usuario, error)
	Update(ctx context.Context, u *models.Usuario) (*models.Usuario, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*models.Usuario, error)
	FindByID(ctx context.Context, id int64) (*models.Usuario, error)
	FindByCedula(ctx context.Context, cedula string) (*models.Usuario, error)
	Login(ctx context.Context, cedula, clave string) (*models.Usuario, error)
}

type usuarioServiceImpl struct {
	repo UsuarioRepository
}

// NewUsuarioService creates a new usuario service instance
func NewUsuarioService(repo UsuarioRepository) UsuarioService {
	return &usuarioServiceImpl{repo: repo}
}

func (s *usuarioServiceImpl) Insert(ctx context.Context, u *models.Usuario) (*models.Usuario, error) {
	if err := requireEntity(u, "el usuario"); err != nil {
		return nil, err
	}
	id, err := s.repo.Insert(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("error inserting usuario: %w", err)
	}
	u.ID = id
	return u, nil
}

func (s *usuarioServiceImpl) Update(ctx context.Context, u *models.Usuario) (*models.Usuario, error) {
	if err := requireEntity(u, "el usuario"); err != nil {
		return nil, err
	}
	if err := validateID(u.ID, "el usuario"); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, u); err != nil {
		return nil, fmt.Errorf("error updating usuario %d: %w", u.ID, err)
	}
	return u, nil
}

// Delete removes the account together with the alumno or profesor it shadows
func (s *usuarioServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := validateID(id, "el usuario"); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting usuario %d: %w", id, err)
	}
	return nil
}

func (s *usuarioServiceImpl) List(ctx context.Context) ([]*models.Usuario, error) {
	usuarios, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing usuarios: %w", err)
	}
	return usuarios, nil
}

func (s *usuarioServiceImpl) FindByID(ctx context.Context, id int64) (*models.Usuario, error) {
	if err := validateID(id, "el usuario"); err != nil {
		return nil, err
	}
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving usuario %d: %w", id, err)
	}
	return u, nil
}

func (s *usuarioServiceImpl) FindByCedula(ctx context.Context, cedula string) (*models.Usuario, error) {
	cedula = strings.TrimSpace(cedula)
	if cedula == "" {
		return nil, apperrors.NewBusinessRuleError("La cédula es requerida")
	}
	u, err := s.repo.FindByCedula(ctx, cedula)
	if err != nil {
		return nil, fmt.Errorf("error retrieving usuario by cedula: %w", err)
	}
	return u, nil
}

// Login checks the credentials in a single database call
func (s *usuarioServiceImpl) Login(ctx context.Context, cedula, clave string) (*models.Usuario, error) {
	cedula = strings.TrimSpace(cedula)
	if cedula == "" || clave == "" {
		return nil, apperrors.NewBusinessRuleError("La cédula y la clave son requeridas")
	}
	u, err := s.repo.Login(ctx, cedula, clave)
	if err != nil {
		return nil, fmt.Errorf("error logging in: %w", err)
	}
	return u, nil
}
