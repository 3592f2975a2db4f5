package services

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/yigit/academico/internal/app/models"
)

// MockAlumnoRepository mocks the AlumnoRepository interface
type MockAlumnoRepository struct {
	mock.Mock
}

func (m *MockAlumnoRepository) Insert(ctx context.Context, a *models.Alumno) (int64, error) {
	args := m.Called(ctx, a)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAlumnoRepository) Update(ctx context.Context, a *models.Alumno) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockAlumnoRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockAlumnoRepository) List(ctx context.Context) ([]*models.Alumno, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Alumno), args.Error(1)
}

func (m *MockAlumnoRepository) FindByID(ctx context.Context, id int64) (*models.Alumno, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Alumno), args.Error(1)
}

func (m *MockAlumnoRepository) FindByCedula(ctx context.Context, cedula string) (*models.Alumno, error) {
	args := m.Called(ctx, cedula)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Alumno), args.Error(1)
}

func (m *MockAlumnoRepository) FindByNombre(ctx context.Context, nombre string) ([]*models.Alumno, error) {
	args := m.Called(ctx, nombre)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Alumno), args.Error(1)
}

func (m *MockAlumnoRepository) FindByCarrera(ctx context.Context, idCarrera int64) ([]*models.Alumno, error) {
	args := m.Called(ctx, idCarrera)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Alumno), args.Error(1)
}

func (m *MockAlumnoRepository) FindByCarreraCiclo(ctx context.Context, idCarrera, idCiclo int64) ([]*models.Alumno, error) {
	args := m.Called(ctx, idCarrera, idCiclo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Alumno), args.Error(1)
}

// MockCarreraRepository mocks the CarreraRepository interface
type MockCarreraRepository struct {
	mock.Mock
}

func (m *MockCarreraRepository) Insert(ctx context.Context, c *models.Carrera) (int64, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCarreraRepository) Update(ctx context.Context, c *models.Carrera) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCarreraRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCarreraRepository) AddCurso(ctx context.Context, idCarrera, idCurso, idCiclo int64) (int64, error) {
	args := m.Called(ctx, idCarrera, idCurso, idCiclo)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCarreraRepository) RemoveCurso(ctx context.Context, idCarrera, idCurso int64) error {
	return m.Called(ctx, idCarrera, idCurso).Error(0)
}

func (m *MockCarreraRepository) ReorderCurso(ctx context.Context, idCarrera, idCurso, idCiclo int64) error {
	return m.Called(ctx, idCarrera, idCurso, idCiclo).Error(0)
}

func (m *MockCarreraRepository) List(ctx context.Context) ([]*models.Carrera, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Carrera), args.Error(1)
}

func (m *MockCarreraRepository) FindByID(ctx context.Context, id int64) (*models.Carrera, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Carrera), args.Error(1)
}

func (m *MockCarreraRepository) FindByCodigo(ctx context.Context, codigo string) (*models.Carrera, error) {
	args := m.Called(ctx, codigo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Carrera), args.Error(1)
}

func (m *MockCarreraRepository) FindByNombre(ctx context.Context, nombre string) ([]*models.Carrera, error) {
	args := m.Called(ctx, nombre)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Carrera), args.Error(1)
}

// MockCarreraCursoRepository mocks the CarreraCursoRepository interface
type MockCarreraCursoRepository struct {
	mock.Mock
}

func (m *MockCarreraCursoRepository) Insert(ctx context.Context, cc *models.CarreraCurso) (int64, error) {
	args := m.Called(ctx, cc)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCarreraCursoRepository) Update(ctx context.Context, cc *models.CarreraCurso) error {
	return m.Called(ctx, cc).Error(0)
}

func (m *MockCarreraCursoRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCarreraCursoRepository) HasGrupos(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCarreraCursoRepository) List(ctx context.Context) ([]*models.CarreraCurso, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.CarreraCurso), args.Error(1)
}

func (m *MockCarreraCursoRepository) FindByID(ctx context.Context, id int64) (*models.CarreraCurso, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.CarreraCurso), args.Error(1)
}

func (m *MockCarreraCursoRepository) FindByCarreraCiclo(ctx context.Context, idCarrera, idCiclo int64) ([]*models.CarreraCurso, error) {
	args := m.Called(ctx, idCarrera, idCiclo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.CarreraCurso), args.Error(1)
}

// MockCicloRepository mocks the CicloRepository interface
type MockCicloRepository struct {
	mock.Mock
}

func (m *MockCicloRepository) Insert(ctx context.Context, c *models.Ciclo) (int64, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCicloRepository) Update(ctx context.Context, c *models.Ciclo) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCicloRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCicloRepository) Activate(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockCicloRepository) List(ctx context.Context) ([]*models.Ciclo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Ciclo), args.Error(1)
}

func (m *MockCicloRepository) FindByID(ctx context.Context, id int64) (*models.Ciclo, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ciclo), args.Error(1)
}

func (m *MockCicloRepository) FindByAnio(ctx context.Context, anio int32) ([]*models.Ciclo, error) {
	args := m.Called(ctx, anio)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Ciclo), args.Error(1)
}

func (m *MockCicloRepository) FindActive(ctx context.Context) (*models.Ciclo, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ciclo), args.Error(1)
}

// MockUsuarioRepository mocks the UsuarioRepository interface
type MockUsuarioRepository struct {
	mock.Mock
}

func (m *MockUsuarioRepository) Insert(ctx context.Context, u *models.Usuario) (int64, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUsuarioRepository) Update(ctx context.Context, u *models.Usuario) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUsuarioRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockUsuarioRepository) List(ctx context.Context) ([]*models.Usuario, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Usuario), args.Error(1)
}

func (m *MockUsuarioRepository) FindByID(ctx context.Context, id int64) (*models.Usuario, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Usuario), args.Error(1)
}

func (m *MockUsuarioRepository) FindByCedula(ctx context.Context, cedula string) (*models.Usuario, error) {
	args := m.Called(ctx, cedula)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Usuario), args.Error(1)
}

func (m *MockUsuarioRepository) Login(ctx context.Context, cedula, clave string) (*models.Usuario, error) {
	args := m.Called(ctx, cedula, clave)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Usuario), args.Error(1)
}
