package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/yigit/academico/internal/app/models"
	"github.com/yigit/academico/internal/pkg/apperrors"
)

// CarreraRepository is the storage the carrera service needs
type CarreraRepository interface {
	Insert(ctx context.Context, c *models.Carrera) (int64, error)
	Update(ctx context.Context, c *models.Carrera) error
	Delete(ctx context.Context, id int64) error
	AddCurso(ctx context.Context, idCarrera, idCurso, idCiclo int64) (int64, error)
	RemoveCurso(ctx context.Context, idCarrera, idCurso int64) error
	ReorderCurso(ctx context.Context, idCarrera, idCurso, idCiclo int64) error
	List(ctx context.Context) ([]*models.Carrera, error)
	FindByID(ctx context.Context, id int64) (*models.Carrera, error)
	FindByCodigo(ctx context.Context, codigo string) (*models.Carrera, error)
	FindByNombre(ctx context.Context, nombre string) ([]*models.Carrera, error)
}

// CarreraService defines the interface for carrera-related operations,
// including the curriculum edits
type CarreraService interface {
	Insert(ctx context.Context, c *models.Carrera) (*models.Carrera, error)
	Update(ctx context.Context, c *models.Carrera) (*models.Carrera, error)
	Delete(ctx context.Context, id int64) error
	AddCurso(ctx context.Context, idCarrera, idCurso, idCiclo int64) (*models.CarreraCurso, error)
	RemoveCurso(ctx context.Context, idCarrera, idCurso int64) error
	ReorderCurso(ctx context.Context, idCarrera, idCurso, idCiclo int64) (*models.CarreraCurso, error)
	List(ctx context.Context) ([]*models.Carrera, error)
	FindByID(ctx context.Context, id int64) (*models.Carrera, error)
	FindByCodigo(ctx context.Context, codigo string) (*models.Carrera, error)
	FindByNombre(ctx context.Context, nombre string) ([]*models.Carrera, error)
}

type carreraServiceImpl struct {
	repo      CarreraRepository
	offerings CarreraCursoRepository
}

// NewCarreraService creates a new carrera service instance. The carrera-curso
// repository is used to return the row a reorder moved.
func NewCarreraService(repo CarreraRepository, offerings CarreraCursoRepository) CarreraService {
	return &carreraServiceImpl{repo: repo, offerings: offerings}
}

func (s *carreraServiceImpl) Insert(ctx context.Context, c *models.Carrera) (*models.Carrera, error) {
	if err := requireEntity(c, "la carrera"); err != nil {
		return nil, err
	}
	id, err := s.repo.Insert(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("error inserting carrera: %w", err)
	}
	c.ID = id
	return c, nil
}

func (s *carreraServiceImpl) Update(ctx context.Context, c *models.Carrera) (*models.Carrera, error) {
	if err := requireEntity(c, "la carrera"); err != nil {
		return nil, err
	}
	if err := validateID(c.ID, "la carrera"); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("error updating carrera %d: %w", c.ID, err)
	}
	return c, nil
}

func (s *carreraServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := validateID(id, "la carrera"); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting carrera %d: %w", id, err)
	}
	return nil
}

func (s *carreraServiceImpl) AddCurso(ctx context.Context, idCarrera, idCurso, idCiclo int64) (*models.CarreraCurso, error) {
	if err := firstError(
		validateID(idCarrera, "la carrera"),
		validateID(idCurso, "el curso"),
		validateID(idCiclo, "el ciclo"),
	); err != nil {
		return nil, err
	}

	id, err := s.repo.AddCurso(ctx, idCarrera, idCurso, idCiclo)
	if err != nil {
		return nil, fmt.Errorf("error adding curso %d to carrera %d: %w", idCurso, idCarrera, err)
	}
	return &models.CarreraCurso{ID: id, PkCarrera: idCarrera, PkCurso: idCurso, PkCiclo: idCiclo}, nil
}

func (s *carreraServiceImpl) RemoveCurso(ctx context.Context, idCarrera, idCurso int64) error {
	if err := firstError(validateID(idCarrera, "la carrera"), validateID(idCurso, "el curso")); err != nil {
		return err
	}
	if err := s.repo.RemoveCurso(ctx, idCarrera, idCurso); err != nil {
		return fmt.Errorf("error removing curso %d from carrera %d: %w", idCurso, idCarrera, err)
	}
	return nil
}

func (s *carreraServiceImpl) ReorderCurso(ctx context.Context, idCarrera, idCurso, idCiclo int64) (*models.CarreraCurso, error) {
	if err := firstError(
		validateID(idCarrera, "la carrera"),
		validateID(idCurso, "el curso"),
		validateID(idCiclo, "el ciclo"),
	); err != nil {
		return nil, err
	}

	if err := s.repo.ReorderCurso(ctx, idCarrera, idCurso, idCiclo); err != nil {
		return nil, fmt.Errorf("error moving curso %d of carrera %d: %w", idCurso, idCarrera, err)
	}

	offer, err := s.offerings.FindByCarreraCiclo(ctx, idCarrera, idCiclo)
	if err != nil {
		return nil, fmt.Errorf("error reading moved curso %d: %w", idCurso, err)
	}
	for _, cc := range offer {
		if cc.PkCurso == idCurso {
			return cc, nil
		}
	}
	return nil, apperrors.NewNotFoundError("El curso no pertenece a la carrera")
}

func (s *carreraServiceImpl) List(ctx context.Context) ([]*models.Carrera, error) {
	carreras, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing carreras: %w", err)
	}
	return carreras, nil
}

func (s *carreraServiceImpl) FindByID(ctx context.Context, id int64) (*models.Carrera, error) {
	if err := validateID(id, "la carrera"); err != nil {
		return nil, err
	}
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving carrera %d: %w", id, err)
	}
	return c, nil
}

func (s *carreraServiceImpl) FindByCodigo(ctx context.Context, codigo string) (*models.Carrera, error) {
	codigo = strings.TrimSpace(codigo)
	if codigo == "" {
		return nil, apperrors.NewBusinessRuleError("El código es requerido")
	}
	c, err := s.repo.FindByCodigo(ctx, codigo)
	if err != nil {
		return nil, fmt.Errorf("error retrieving carrera by codigo: %w", err)
	}
	return c, nil
}

func (s *carreraServiceImpl) FindByNombre(ctx context.Context, nombre string) ([]*models.Carrera, error) {
	carreras, err := s.repo.FindByNombre(ctx, strings.TrimSpace(nombre))
	if err != nil {
		return nil, fmt.Errorf("error searching carreras by nombre: %w", err)
	}
	return carreras, nil
}
