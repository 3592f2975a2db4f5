package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yigit/academico/internal/app/models"
	"github.com/yigit/academico/internal/pkg/apperrors"
)

// CursoRepository is the storage the curso service needs
type CursoRepository interface {
	Insert(ctx context.Context, c *models.Curso) (int64, error)
	Update(ctx context.Context, c *models.Curso) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*models.Curso, error)
	FindByID(ctx context.Context, id int64) (*models.Curso, error)
	FindByCodigo(ctx context.Context, codigo string) (*models.Curso, error)
	FindByNombre(ctx context.Context, nombre string) ([]*models.Curso, error)
	FindByCarrera(ctx context.Context, idCarrera int64) ([]*models.Curso, error)
	FindByCiclo(ctx context.Context, idCiclo int64) ([]*models.Curso, error)
	FindByCarreraCiclo(ctx context.Context, idCarrera, idCiclo int64) ([]*models.Curso, error)
}

// CursoService defines the interface for curso-related operations
type CursoService interface {
	Insert(ctx context.Context, c *models.Curso) (*models.Curso, error)
	Update(ctx context.Context, c *models.Curso) (*models.Curso, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*models.Curso, error)
	FindByID(ctx context.Context, id int64) (*models.Curso, error)
	FindByCodigo(ctx context.Context, codigo string) (*models.Curso, error)
	FindByNombre(ctx context.Context, nombre string) ([]*models.Curso, error)
	FindByCarrera(ctx context.Context, idCarrera int64) ([]*models.Curso, error)
	FindByCiclo(ctx context.Context, idCiclo int64) ([]*models.Curso, error)
	FindByCarreraCiclo(ctx context.Context, idCarrera, idCiclo int64) ([]*models.Curso, error)
}

type cursoServiceImpl struct {
	repo CursoRepository
}

// NewCursoService creates a new curso service instance
func NewCursoService(repo CursoRepository) CursoService {
	return &cursoServiceImpl{repo: repo}
}

func (s *cursoServiceImpl) Insert(ctx context.Context, c *models.Curso) (*models.Curso, error) {
	if err := requireEntity(c, "el curso"); err != nil {
		return nil, err
	}
	id, err := s.repo.Insert(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("error inserting curso: %w", err)
	}
	c.ID = id
	return c, nil
}

func (s *cursoServiceImpl) Update(ctx context.Context, c *models.Curso) (*models.Curso, error) {
	if err := requireEntity(c, "el curso"); err != nil {
		return nil, err
	}
	if err := validateID(c.ID, "el curso"); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("error updating curso %d: %w", c.ID, err)
	}
	return c, nil
}

func (s *cursoServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := validateID(id, "el curso"); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting curso %d: %w", id, err)
	}
	return nil
}

func (s *cursoServiceImpl) List(ctx context.Context) ([]*models.Curso, error) {
	cursos, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing cursos: %w", err)
	}
	return cursos, nil
}

func (s *cursoServiceImpl) FindByID(ctx context.Context, id int64) (*models.Curso, error) {
	if err := validateID(id, "el curso"); err != nil {
		return nil, err
	}
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving curso %d: %w", id, err)
	}
	return c, nil
}

func (s *cursoServiceImpl) FindByCodigo(ctx context.Context, codigo string) (*models.Curso, error) {
	codigo = strings.TrimSpace(codigo)
	if codigo == "" {
		return nil, apperrors.NewBusinessRuleError("El código es requerido")
	}
	c, err := s.repo.FindByCodigo(ctx, codigo)
	if err != nil {
		return nil, fmt.Errorf("error retrieving curso by codigo: %w", err)
	}
	return c, nil
}

func (s *cursoServiceImpl) FindByNombre(ctx context.Context, nombre string) ([]*models.Curso, error) {
	cursos, err := s.repo.FindByNombre(ctx, strings.TrimSpace(nombre))
	if err != nil {
		return nil, fmt.Errorf("error searching cursos by nombre: %w", err)
	}
	return cursos, nil
}

func (s *cursoServiceImpl) FindByCarrera(ctx context.Context, idCarrera int64) ([]*models.Curso, error) {
	if err := validateID(idCarrera, "la carrera"); err != nil {
		return nil, err
	}
	cursos, err := s.repo.FindByCarrera(ctx, idCarrera)
	if err != nil {
		return nil, fmt.Errorf("error retrieving cursos of carrera %d: %w", idCarrera, err)
	}
	return cursos, nil
}

func (s *cursoServiceImpl) FindByCiclo(ctx context.Context, idCiclo int64) ([]*models.Curso, error) {
	if err := validateID(idCiclo, "el ciclo"); err != nil {
		return nil, err
	}
	cursos, err := s.repo.FindByCiclo(ctx, idCiclo)
	if err != nil {
		return nil, fmt.Errorf("error retrieving cursos of ciclo %d: %w", idCiclo, err)
	}
	return cursos, nil
}

func (s *cursoServiceImpl) FindByCarreraCiclo(ctx context.Context, idCarrera, idCiclo int64) ([]*models.Curso, error) {
	if err := firstError(validateID(idCarrera, "la carrera"), validateID(idCiclo, "el ciclo")); err != nil {
		return nil, err
	}
	cursos, err := s.repo.FindByCarreraCiclo(ctx, idCarrera, idCiclo)
	if err != nil {
		return nil, fmt.Errorf("error retrieving cursos of carrera %d in ciclo %d: %w", idCarrera, idCiclo, err)
	}
	return cursos, nil
}
