package services

import (
	"context"
	"fmt"

	"github.com/yigit/academico/internal/app/models"
)

// MatriculaRepository is the storage the matricula service needs
type MatriculaRepository interface {
	Insert(ctx context.Context, m *models.Matricula) (int64, error)
	Update(ctx context.Context, m *models.Matricula) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*models.Matricula, error)
	FindByID(ctx context.Context, id int64) (*models.Matricula, error)
	FindByAlumno(ctx context.Context, idAlumno int64) ([]*models.Matricula, error)
	FindByAlumnoCiclo(ctx context.Context, idAlumno, idCiclo int64) ([]*models.Matricula, error)
	FindByGrupo(ctx context.Context, idGrupo int64) ([]*models.Matricula, error)
}

// MatriculaService defines the interface for enrollment operations
type MatriculaService interface {
	Insert(ctx context.Context, m *models.Matricula) (*models.Matricula, error)
	Update(ctx context.Context, m *models.Matricula) (*models.Matricula, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]*models.Matricula, error)
	FindByID(ctx context.Context, id int64) (*models.Matricula, error)
	FindByAlumno(ctx context.Context, idAlumno int64) ([]*models.Matricula, error)
	FindByAlumnoCiclo(ctx context.Context, idAlumno, idCiclo int64) ([]*models.Matricula, error)
	FindByGrupo(ctx context.Context, idGrupo int64) ([]*models.Matricula, error)
}

type matriculaServiceImpl struct {
	repo MatriculaRepository
}

// NewMatriculaService creates a new matricula service instance
func NewMatriculaService(repo MatriculaRepository) MatriculaService {
	return &matriculaServiceImpl{repo: repo}
}

func (s *matriculaServiceImpl) Insert(ctx context.Context, m *models.Matricula) (*models.Matricula, error) {
	if err := requireEntity(m, "la matrícula"); err != nil {
		return nil, err
	}
	id, err := s.repo.Insert(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("error inserting matricula: %w", err)
	}
	m.ID = id
	return m, nil
}

func (s *matriculaServiceImpl) Update(ctx context.Context, m *models.Matricula) (*models.Matricula, error) {
	if err := requireEntity(m, "la matrícula"); err != nil {
		return nil, err
	}
	if err := validateID(m.ID, "la matrícula"); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, m); err != nil {
		return nil, fmt.Errorf("error updating matricula %d: %w", m.ID, err)
	}
	return m, nil
}

func (s *matriculaServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := validateID(id, "la matrícula"); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting matricula %d: %w", id, err)
	}
	return nil
}

func (s *matriculaServiceImpl) List(ctx context.Context) ([]*models.Matricula, error) {
	matriculas, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing matriculas: %w", err)
	}
	return matriculas, nil
}

func (s *matriculaServiceImpl) FindByID(ctx context.Context, id int64) (*models.Matricula, error) {
	if err := validateID(id, "la matrícula"); err != nil {
		return nil, err
	}
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving matricula %d: %w", id, err)
	}
	return m, nil
}

func (s *matriculaServiceImpl) FindByAlumno(ctx context.Context, idAlumno int64) ([]*models.Matricula, error) {
	if err := validateID(idAlumno, "el alumno"); err != nil {
		return nil, err
	}
	matriculas, err := s.repo.FindByAlumno(ctx, idAlumno)
	if err != nil {
		return nil, fmt.Errorf("error retrieving matriculas of alumno %d: %w", idAlumno, err)
	}
	return matriculas, nil
}

func (s *matriculaServiceImpl) FindByAlumnoCiclo(ctx context.Context, idAlumno, idCiclo int64) ([]*models.Matricula, error) {
	if err := firstError(validateID(idAlumno, "el alumno"), validateID(idCiclo, "el ciclo")); err != nil {
		return nil, err
	}
	matriculas, err := s.repo.FindByAlumnoCiclo(ctx, idAlumno, idCiclo)
	if err != nil {
		return nil, fmt.Errorf("error retrieving matriculas of alumno %d in ciclo %d: %w", idAlumno, idCiclo, err)
	}
	return matriculas, nil
}

func (s *matriculaServiceImpl) FindByGrupo(ctx context.Context, idGrupo int64) ([]*models.Matricula, error) {
	if err := validateID(idGrupo, "el grupo"); err != nil {
		return nil, err
	}
	matriculas, err := s.repo.FindByGrupo(ctx, idGrupo)
	if err != nil {
		return nil, fmt.Errorf("error retrieving matriculas of grupo %d: %w", idGrupo, err)
	}
	return matriculas, nil
}
