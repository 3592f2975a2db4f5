package services

import (
	"context"
	"fmt"

	"github.com/yigit/academico/internal/app/models"
)

// CarreraCursoRepository is the storage the carrera-curso service needs
type CarreraCursoRepository interface {
	Insert(ctx context.Context, cc *models.CarreraCurso) (int64, error)
	Update(ctx context.Context, cc *models.CarreraCurso) error
	Delete(ctx context.Context, id int64) error
	HasGrupos(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context) ([]*models.CarreraCurso, error)
	FindByID(ctx context.Context, id int64) (*models.CarreraCurso, error)
	FindByCarreraCiclo(ctx context.Context, idCarrera, idCiclo int64) ([]*models.CarreraCurso, error)
}

// CarreraCursoService defines the interface for carrera-curso operations
type CarreraCursoService interface {
	Insert(ctx context.Context, cc *models.CarreraCurso) (*models.CarreraCurso, error)
	Update(ctx context.Context, cc *models.CarreraCurso) (*models.CarreraCurso, error)
	Delete(ctx context.Context, id int64) error
	HasGrupos(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context) ([]*models.CarreraCurso, error)
	FindByID(ctx context.Context, id int64) (*models.CarreraCurso, error)
	FindByCarreraCiclo(ctx context.Context, idCarrera, idCiclo int64) ([]*models.CarreraCurso, error)
}

type carreraCursoServiceImpl struct {
	repo CarreraCursoRepository
}

// NewCarreraCursoService creates a new carrera-curso service instance
func NewCarreraCursoService(repo CarreraCursoRepository) CarreraCursoService {
	return &carreraCursoServiceImpl{repo: repo}
}

func (s *carreraCursoServiceImpl) Insert(ctx context.Context, cc *models.CarreraCurso) (*models.CarreraCurso, error) {
	if err := requireEntity(cc, "el curso de carrera"); err != nil {
		return nil, err
	}
	id, err := s.repo.Insert(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("error inserting carrera_curso: %w", err)
	}
	cc.ID = id
	return cc, nil
}

func (s *carreraCursoServiceImpl) Update(ctx context.Context, cc *models.CarreraCurso) (*models.CarreraCurso, error) {
	if err := requireEntity(cc, "el curso de carrera"); err != nil {
		return nil, err
	}
	if err := validateID(cc.ID, "el curso de carrera"); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, cc); err != nil {
		return nil, fmt.Errorf("error updating carrera_curso %d: %w", cc.ID, err)
	}
	return cc, nil
}

func (s *carreraCursoServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := validateID(id, "el curso de carrera"); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting carrera_curso %d: %w", id, err)
	}
	return nil
}

func (s *carreraCursoServiceImpl) HasGrupos(ctx context.Context, id int64) (bool, error) {
	if err := validateID(id, "el curso de carrera"); err != nil {
		return false, err
	}
	exists, err := s.repo.HasGrupos(ctx, id)
	if err != nil {
		return false, fmt.Errorf("error checking grupos of carrera_curso %d: %w", id, err)
	}
	return exists, nil
}

func (s *carreraCursoServiceImpl) List(ctx context.Context) ([]*models.CarreraCurso, error) {
	offer, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing carrera_curso: %w", err)
	}
	return offer, nil
}

func (s *carreraCursoServiceImpl) FindByID(ctx context.Context, id int64) (*models.CarreraCurso, error) {
	if err := validateID(id, "el curso de carrera"); err != nil {
		return nil, err
	}
	cc, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving carrera_curso %d: %w", id, err)
	}
	return cc, nil
}

func (s *carreraCursoServiceImpl) FindByCarreraCiclo(ctx context.Context, idCarrera, idCiclo int64) ([]*models.CarreraCurso, error) {
	if err := firstError(validateID(idCarrera, "la carrera"), validateID(idCiclo, "el ciclo")); err != nil {
		return nil, err
	}
	offer, err := s.repo.FindByCarreraCiclo(ctx, idCarrera, idCiclo)
	if err != nil {
		return nil, fmt.Errorf("error retrieving carrera_curso of carrera %d in ciclo %d: %w", idCarrera, idCiclo, err)
	}
	return offer, nil
}
