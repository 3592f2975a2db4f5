package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yigit/academico/internal/app/models"
	"github.com/yigit/academico/internal/pkg/apperrors"
)

// AlumnoRepository is the storage the alumno service needs
type AlumnoRepository interface {
	Insert(ctx context.Context, a *models.Alumno) (int64, error)
	Update(ctx context.Context, a *models.Alumno) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*models.Alumno, error)
	FindByID(ctx context.Context, id int64) (*models.Alumno, error)
	FindByCedula(ctx context.Context, cedula string) (*models.Alumno, error)
	FindByNombre(ctx context.Context, nombre string) ([]*models.Alumno, error)
	FindByCarrera(ctx context.Context, idCarrera int64) ([]*models.Alumno, error)
	FindByCarreraCiclo(ctx context.Context, idCarrera, idCiclo int64) ([]*models.Alumno, error)
}

// AlumnoService defines the interface for alumno-related operations
type AlumnoService interface {
	Insert(ctx context.Context, a *models.Alumno) (*models.Alumno, error)
	Update(ctx context.Context, a *models.Alumno) (*models.Alumno, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*models.Alumno, error)
	FindByID(ctx context.Context, id int64) (*models.Alumno, error)
	FindByCedula(ctx context.Context, cedula string) (*models.Alumno, error)
	FindByNombre(ctx context.Context, nombre string) ([]*models.Alumno, error)
	FindByCarrera(ctx context.Context, idCarrera int64) ([]*models.Alumno, error)
	FindByCarreraCiclo(ctx context.Context, idCarrera, idCiclo int64) ([]*models.Alumno, error)
}

type alumnoServiceImpl struct {
	repo AlumnoRepository
}

// NewAlumnoService creates a new alumno service instance
func NewAlumnoService(repo AlumnoRepository) AlumnoService {
	return &alumnoServiceImpl{repo: repo}
}

func (s *alumnoServiceImpl) validate(a *models.Alumno) error {
	if err := requireEntity(a, "el alumno"); err != nil {
		return err
	}
	return requireDate(a.FechaNacimiento, "La fecha de nacimiento es requerida")
}

func (s *alumnoServiceImpl) Insert(ctx context.Context, a *models.Alumno) (*models.Alumno, error) {
	if err := s.validate(a); err != nil {
		return nil, err
	}

	id, err := s.repo.Insert(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("error inserting alumno: %w", err)
	}
	a.ID = id
	return a, nil
}

func (s *alumnoServiceImpl) Update(ctx context.Context, a *models.Alumno) (*models.Alumno, error) {
	if err := s.validate(a); err != nil {
		return nil, err
	}
	if err := validateID(a.ID, "el alumno"); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, a); err != nil {
		return nil, fmt.Errorf("error updating alumno %d: %w", a.ID, err)
	}
	return a, nil
}

func (s *alumnoServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := validateID(id, "el alumno"); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting alumno %d: %w", id, err)
	}
	return nil
}

func (s *alumnoServiceImpl) List(ctx context.Context) ([]*models.Alumno, error) {
	alumnos, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing alumnos: %w", err)
	}
	return alumnos, nil
}

func (s *alumnoServiceImpl) FindByID(ctx context.Context, id int64) (*models.Alumno, error) {
	if err := validateID(id, "el alumno"); err != nil {
		return nil, err
	}
	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving alumno %d: %w", id, err)
	}
	return a, nil
}

func (s *alumnoServiceImpl) FindByCedula(ctx context.Context, cedula string) (*models.Alumno, error) {
	cedula = strings.TrimSpace(cedula)
	if cedula == "" {
		return nil, apperrors.NewBusinessRuleError("La cédula es requerida")
	}
	a, err := s.repo.FindByCedula(ctx, cedula)
	if err != nil {
		return nil, fmt.Errorf("error retrieving alumno by cedula: %w", err)
	}
	return a, nil
}

func (s *alumnoServiceImpl) FindByNombre(ctx context.Context, nombre string) ([]*models.Alumno, error) {
	alumnos, err := s.repo.FindByNombre(ctx, strings.TrimSpace(nombre))
	if err != nil {
		return nil, fmt.Errorf("error searching alumnos by nombre: %w", err)
	}
	return alumnos, nil
}

func (s *alumnoServiceImpl) FindByCarrera(ctx context.Context, idCarrera int64) ([]*models.Alumno, error) {
	if err := validateID(idCarrera, "la carrera"); err != nil {
		return nil, err
	}
	alumnos, err := s.repo.FindByCarrera(ctx, idCarrera)
	if err != nil {
		return nil, fmt.Errorf("error retrieving alumnos of carrera %d: %w", idCarrera, err)
	}
	return alumnos, nil
}

func (s *alumnoServiceImpl) FindByCarreraCiclo(ctx context.Context, idCarrera, idCiclo int64) ([]*models.Alumno, error) {
	if err := firstError(validateID(idCarrera, "la carrera"), validateID(idCiclo, "el ciclo")); err != nil {
		return nil, err
	}
	alumnos, err := s.repo.FindByCarreraCiclo(ctx, idCarrera, idCiclo)
	if err != nil {
		return nil, fmt.Errorf("error retrieving alumnos of carrera %d in ciclo %d: %w", idCarrera, idCiclo, err)
	}
	return alumnos, nil
}
