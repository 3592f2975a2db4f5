package services

import (
	"context"
	"fmt"

	"github.com/yigit/academico/internal/app/models"
	"github.com/yigit/academico/internal/pkg/apperrors"
)

// CicloRepository is the storage the ciclo service needs
type CicloRepository interface {
	Insert(ctx context.Context, c *models.Ciclo) (int64, error)
	Update(ctx context.Context, c *models.Ciclo) error
	Delete(ctx context.Context, id int64) error
	Activate(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*models.Ciclo, error)
	FindByID(ctx context.Context, id int64) (*models.Ciclo, error)
	FindByAnio(ctx context.Context, anio int32) ([]*models.Ciclo, error)
	FindActive(ctx context.Context) (*models.Ciclo, error)
}

// CicloService defines the interface for ciclo-related operations
type CicloService interface {
	Insert(ctx context.Context, c *models.Ciclo) (*models.Ciclo, error)
	Update(ctx context.Context, c *models.Ciclo) (*models.Ciclo, error)
	Delete(ctx context.Context, id int64) error
	Activate(ctx context.Context, id int64) (*models.Ciclo, error)
	List(ctx context.Context) ([]*models.Ciclo, error)
	FindByID(ctx context.Context, id int64) (*models.Ciclo, error)
	FindByAnio(ctx context.Context, anio int32) ([]*models.Ciclo, error)
	FindActive(ctx context.Context) (*models.Ciclo, error)
}

type cicloServiceImpl struct {
	repo CicloRepository
}

// NewCicloService creates a new ciclo service instance
func NewCicloService(repo CicloRepository) CicloService {
	return &cicloServiceImpl{repo: repo}
}

func (s *cicloServiceImpl) validate(c *models.Ciclo) error {
	if err := requireEntity(c, "el ciclo"); err != nil {
		return err
	}
	return firstError(
		requireDate(c.FechaInicio, "La fecha de inicio es requerida"),
		requireDate(c.FechaFin, "La fecha de fin es requerida"),
	)
}

// Insert stores a new ciclo. New ciclos always start inactive.
func (s *cicloServiceImpl) Insert(ctx context.Context, c *models.Ciclo) (*models.Ciclo, error) {
	if err := s.validate(c); err != nil {
		return nil, err
	}
	c.Estado = models.CicloInactivo

	id, err := s.repo.Insert(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("error inserting ciclo: %w", err)
	}
	c.ID = id
	return c, nil
}

// Update changes anio, numero and dates. The estado of the stored row is kept
// and echoed back.
func (s *cicloServiceImpl) Update(ctx context.Context, c *models.Ciclo) (*models.Ciclo, error) {
	if err := s.validate(c); err != nil {
		return nil, err
	}
	if err := validateID(c.ID, "el ciclo"); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("error updating ciclo %d: %w", c.ID, err)
	}

	stored, err := s.repo.FindByID(ctx, c.ID)
	if err != nil {
		return nil, fmt.Errorf("error reading updated ciclo %d: %w", c.ID, err)
	}
	return stored, nil
}

func (s *cicloServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := validateID(id, "el ciclo"); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting ciclo %d: %w", id, err)
	}
	return nil
}

// Activate makes id the only active ciclo and returns it
func (s *cicloServiceImpl) Activate(ctx context.Context, id int64) (*models.Ciclo, error) {
	if err := validateID(id, "el ciclo"); err != nil {
		return nil, err
	}
	if err := s.repo.Activate(ctx, id); err != nil {
		return nil, fmt.Errorf("error activating ciclo %d: %w", id, err)
	}

	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error reading activated ciclo %d: %w", id, err)
	}
	return c, nil
}

func (s *cicloServiceImpl) List(ctx context.Context) ([]*models.Ciclo, error) {
	ciclos, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing ciclos: %w", err)
	}
	return ciclos, nil
}

func (s *cicloServiceImpl) FindByID(ctx context.Context, id int64) (*models.Ciclo, error) {
	if err := validateID(id, "el ciclo"); err != nil {
		return nil, err
	}
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving ciclo %d: %w", id, err)
	}
	return c, nil
}

func (s *cicloServiceImpl) FindByAnio(ctx context.Context, anio int32) ([]*models.Ciclo, error) {
	if anio <= 0 {
		return nil, apperrors.NewBusinessRuleError("El año debe ser un número positivo")
	}
	ciclos, err := s.repo.FindByAnio(ctx, anio)
	if err != nil {
		return nil, fmt.Errorf("error retrieving ciclos of %d: %w", anio, err)
	}
	return ciclos, nil
}

func (s *cicloServiceImpl) FindActive(ctx context.Context) (*models.Ciclo, error) {
	c, err := s.repo.FindActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving active ciclo: %w", err)
	}
	return c, nil
}
