package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yigit/academico/internal/app/models"
	"github.com/yigit/academico/internal/pkg/apperrors"
)

// ProfesorRepository is the storage the profesor service needs
type ProfesorRepository interface {
	Insert(ctx context.Context, p *models.Profesor) (int64, error)
	Update(ctx context.Context, p *models.Profesor) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*models.Profesor, error)
	FindByID(ctx context.Context, id int64) (*models.Profesor, error)
	FindByCedula(ctx context.Context, cedula string) (*models.Profesor, error)
	FindByNombre(ctx context.Context, nombre string) ([]*models.Profesor, error)
}

// ProfesorService defines the interface for profesor-related operations
type ProfesorService interface {
	Insert(ctx context.Context, p *models.Profesor) (*models.Profesor, error)
	Update(ctx context.Context, p *models.Profesor) (*models.Profesor, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*models.Profesor, error)
	FindByID(ctx context.Context, id int64) (*models.Profesor, error)
	FindByCedula(ctx context.Context, cedula string) (*models.Profesor, error)
	FindByNombre(ctx context.Context, nombre string) ([]*models.Profesor, error)
}

type profesorServiceImpl struct {
	repo ProfesorRepository
}

// NewProfesorService creates a new profesor service instance
func NewProfesorService(repo ProfesorRepository) ProfesorService {
	return &profesorServiceImpl{repo: repo}
}

func (s *profesorServiceImpl) Insert(ctx context.Context, p *models.Profesor) (*models.Profesor, error) {
	if err := requireEntity(p, "el profesor"); err != nil {
		return nil, err
	}
	id, err := s.repo.Insert(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("error inserting profesor: %w", err)
	}
	p.ID = id
	return p, nil
}

func (s *profesorServiceImpl) Update(ctx context.Context, p *models.Profesor) (*models.Profesor, error) {
	if err := requireEntity(p, "el profesor"); err != nil {
		return nil, err
	}
	if err := validateID(p.ID, "el profesor"); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("error updating profesor %d: %w", p.ID, err)
	}
	return p, nil
}

func (s *profesorServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := validateID(id, "el profesor"); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting profesor %d: %w", id, err)
	}
	return nil
}

func (s *profesorServiceImpl) List(ctx context.Context) ([]*models.Profesor, error) {
	profesores, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing profesores: %w", err)
	}
	return profesores, nil
}

func (s *profesorServiceImpl) FindByID(ctx context.Context, id int64) (*models.Profesor, error) {
	if err := validateID(id, "el profesor"); err != nil {
		return nil, err
	}
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving profesor %d: %w", id, err)
	}
	return p, nil
}

func (s *profesorServiceImpl) FindByCedula(ctx context.Context, cedula string) (*models.Profesor, error) {
	cedula = strings.TrimSpace(cedula)
	if cedula == "" {
		return nil, apperrors.NewBusinessRuleError("La cédula es requerida")
	}
	p, err := s.repo.FindByCedula(ctx, cedula)
	if err != nil {
		return nil, fmt.Errorf("error retrieving profesor by cedula: %w", err)
	}
	return p, nil
}

func (s *profesorServiceImpl) FindByNombre(ctx context.Context, nombre string) ([]*models.Profesor, error) {
	profesores, err := s.repo.FindByNombre(ctx, strings.TrimSpace(nombre))
	if err != nil {
		return nil, fmt.Errorf("error searching profesores by nombre: %w", err)
	}
	return profesores, nil
}
