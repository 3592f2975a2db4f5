package services

import (
	"context"
	"fmt"

	"github.com/yigit/academico/internal/app/models"
)

// GrupoRepository is the storage the grupo service needs
type GrupoRepository interface {
	Insert(ctx context.Context, g *models.Grupo) (int64, error)
	Update(ctx context.Context, g *models.Grupo) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*models.Grupo, error)
	FindByID(ctx context.Context, id int64) (*models.Grupo, error)
	FindByCarreraCurso(ctx context.Context, idCarreraCurso int64) ([]*models.Grupo, error)
	FindByCarreraCiclo(ctx context.Context, idCarrera, idCiclo int64) ([]*models.Grupo, error)
	FindByCursoCiclo(ctx context.Context, idCurso, idCiclo int64) ([]*models.Grupo, error)
	FindByProfesor(ctx context.Context, idProfesor int64) ([]*models.Grupo, error)
	FindByProfesorCiclo(ctx context.Context, idProfesor, idCiclo int64) ([]*models.Grupo, error)
	FindByMatricula(ctx context.Context, idMatricula int64) (*models.Grupo, error)
}

// GrupoService defines the interface for grupo-related operations
type GrupoService interface {
	Insert(ctx context.Context, g *models.Grupo) (*models.Grupo, error)
	Update(ctx context.Context, g *models.Grupo) (*models.Grupo, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*models.Grupo, error)
	FindByID(ctx context.Context, id int64) (*models.Grupo, error)
	FindByCarreraCurso(ctx context.Context, idCarreraCurso int64) ([]*models.Grupo, error)
	FindByCarreraCiclo(ctx context.Context, idCarrera, idCiclo int64) ([]*models.Grupo, error)
	FindByCursoCiclo(ctx context.Context, idCurso, idCiclo int64) ([]*models.Grupo, error)
	FindByProfesor(ctx context.Context, idProfesor int64) ([]*models.Grupo, error)
	FindByProfesorCiclo(ctx context.Context, idProfesor, idCiclo int64) ([]*models.Grupo, error)
	FindByMatricula(ctx context.Context, idMatricula int64) (*models.Grupo, error)
}

type grupoServiceImpl struct {
	repo GrupoRepository
}

// NewGrupoService creates a new grupo service instance
func NewGrupoService(repo GrupoRepository) GrupoService {
	return &grupoServiceImpl{repo: repo}
}

func (s *grupoServiceImpl) Insert(ctx context.Context, g *models.Grupo) (*models.Grupo, error) {
	if err := requireEntity(g, "el grupo"); err != nil {
		return nil, err
	}
	id, err := s.repo.Insert(ctx, g)
	if err != nil {
		return nil, fmt.Errorf("error inserting grupo: %w", err)
	}
	g.ID = id
	return g, nil
}

func (s *grupoServiceImpl) Update(ctx context.Context, g *models.Grupo) (*models.Grupo, error) {
	if err := requireEntity(g, "el grupo"); err != nil {
		return nil, err
	}
	if err := validateID(g.ID, "el grupo"); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, g); err != nil {
		return nil, fmt.Errorf("error updating grupo %d: %w", g.ID, err)
	}
	return g, nil
}

func (s *grupoServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := validateID(id, "el grupo"); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting grupo %d: %w", id, err)
	}
	return nil
}

func (s *grupoServiceImpl) List(ctx context.Context) ([]*models.Grupo, error) {
	grupos, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing grupos: %w", err)
	}
	return grupos, nil
}

func (s *grupoServiceImpl) FindByID(ctx context.Context, id int64) (*models.Grupo, error) {
	if err := validateID(id, "el grupo"); err != nil {
		return nil, err
	}
	g, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving grupo %d: %w", id, err)
	}
	return g, nil
}

func (s *grupoServiceImpl) FindByCarreraCurso(ctx context.Context, idCarreraCurso int64) ([]*models.Grupo, error) {
	if err := validateID(idCarreraCurso, "el curso de carrera"); err != nil {
		return nil, err
	}
	grupos, err := s.repo.FindByCarreraCurso(ctx, idCarreraCurso)
	if err != nil {
		return nil, fmt.Errorf("error retrieving grupos of carrera_curso %d: %w", idCarreraCurso, err)
	}
	return grupos, nil
}

func (s *grupoServiceImpl) FindByCarreraCiclo(ctx context.Context, idCarrera, idCiclo int64) ([]*models.Grupo, error) {
	if err := firstError(validateID(idCarrera, "la carrera"), validateID(idCiclo, "el ciclo")); err != nil {
		return nil, err
	}
	grupos, err := s.repo.FindByCarreraCiclo(ctx, idCarrera, idCiclo)
	if err != nil {
		return nil, fmt.Errorf("error retrieving grupos of carrera %d in ciclo %d: %w", idCarrera, idCiclo, err)
	}
	return grupos, nil
}

func (s *grupoServiceImpl) FindByCursoCiclo(ctx context.Context, idCurso, idCiclo int64) ([]*models.Grupo, error) {
	if err := firstError(validateID(idCurso, "el curso"), validateID(idCiclo, "el ciclo")); err != nil {
		return nil, err
	}
	grupos, err := s.repo.FindByCursoCiclo(ctx, idCurso, idCiclo)
	if err != nil {
		return nil, fmt.Errorf("error retrieving grupos of curso %d in ciclo %d: %w", idCurso, idCiclo, err)
	}
	return grupos, nil
}

func (s *grupoServiceImpl) FindByProfesor(ctx context.Context, idProfesor int64) ([]*models.Grupo, error) {
	if err := validateID(idProfesor, "el profesor"); err != nil {
		return nil, err
	}
	grupos, err := s.repo.FindByProfesor(ctx, idProfesor)
	if err != nil {
		return nil, fmt.Errorf("error retrieving grupos of profesor %d: %w", idProfesor, err)
	}
	return grupos, nil
}

func (s *grupoServiceImpl) FindByProfesorCiclo(ctx context.Context, idProfesor, idCiclo int64) ([]*models.Grupo, error) {
	if err := firstError(validateID(idProfesor, "el profesor"), validateID(idCiclo, "el ciclo")); err != nil {
		return nil, err
	}
	grupos, err := s.repo.FindByProfesorCiclo(ctx, idProfesor, idCiclo)
	if err != nil {
		return nil, fmt.Errorf("error retrieving grupos of profesor %d in ciclo %d: %w", idProfesor, idCiclo, err)
	}
	return grupos, nil
}

func (s *grupoServiceImpl) FindByMatricula(ctx context.Context, idMatricula int64) (*models.Grupo, error) {
	if err := validateID(idMatricula, "la matrícula"); err != nil {
		return nil, err
	}
	g, err := s.repo.FindByMatricula(ctx, idMatricula)
	if err != nil {
		return nil, fmt.Errorf("error retrieving grupo of matricula %d: %w", idMatricula, err)
	}
	return g, nil
}
