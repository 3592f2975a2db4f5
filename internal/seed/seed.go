package seed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	appModels "github.com/yigit/academico/internal/app/models"
	appRepos "github.com/yigit/academico/internal/app/repositories"
	"github.com/yigit/academico/internal/pkg/apperrors"
)

type cursoSeed struct {
	curso  appModels.Curso
	numero int32 // ciclo numero inside the demo year
}

var demoCarreras = []appModels.Carrera{
	{Codigo: "INF", Nombre: "Ingeniería en Informática", Titulo: "Bachiller en Ingeniería en Informática"},
	{Codigo: "ADM", Nombre: "Administración de Empresas", Titulo: "Bachiller en Administración"},
}

var demoCursos = map[string][]cursoSeed{
	"INF": {
		{curso: appModels.Curso{Codigo: "INF101", Nombre: "Fundamentos de Programación", Creditos: 4, HorasSemanales: 5}, numero: 1},
		{curso: appModels.Curso{Codigo: "MAT101", Nombre: "Cálculo I", Creditos: 4, HorasSemanales: 5}, numero: 1},
		{curso: appModels.Curso{Codigo: "INF102", Nombre: "Programación Orientada a Objetos", Creditos: 4, HorasSemanales: 5}, numero: 2},
		{curso: appModels.Curso{Codigo: "INF201", Nombre: "Estructuras de Datos", Creditos: 4, HorasSemanales: 5}, numero: 3},
	},
	"ADM": {
		{curso: appModels.Curso{Codigo: "ADM101", Nombre: "Introducción a la Administración", Creditos: 3, HorasSemanales: 4}, numero: 1},
		{curso: appModels.Curso{Codigo: "MAT101", Nombre: "Cálculo I", Creditos: 4, HorasSemanales: 5}, numero: 2},
	},
}

// CreateDefaultData loads a small demo catalogue: the ciclos of the current year
// (the first one active), two carreras and their curriculum. Existing rows are reused,
// so it is safe to run on every start.
func CreateDefaultData(ctx context.Context, repos *appRepos.Repositories, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating demo catalogue (ciclos, carreras, cursos)...")
	var finalErr error

	year := int32(time.Now().Year())
	ciclos, err := ensureCiclos(ctx, repos, year)
	if err != nil {
		lgr.Error().Err(err).Int32("anio", year).Msg("Error creating demo ciclos")
		return err
	}

	if _, err := repos.CicloRepository.FindActive(ctx); apperrors.IsNotFound(err) {
		if err := repos.CicloRepository.Activate(ctx, ciclos[1]); err != nil {
			lgr.Error().Err(err).Msg("Error activating demo ciclo")
			finalErr = errors.Join(finalErr, err)
		}
	}

	cursoIDs := map[string]int64{}
	for _, carrera := range demoCarreras {
		carrera := carrera
		carreraID, err := ensureCarrera(ctx, repos, &carrera)
		if err != nil {
			lgr.Error().Err(err).Str("codigo", carrera.Codigo).Msg("Error creating demo carrera")
			finalErr = errors.Join(finalErr, err)
			continue
		}

		for _, seed := range demoCursos[carrera.Codigo] {
			curso := seed.curso
			cursoID, ok := cursoIDs[curso.Codigo]
			if !ok {
				cursoID, err = ensureCurso(ctx, repos, &curso)
				if err != nil {
					lgr.Error().Err(err).Str("codigo", curso.Codigo).Msg("Error creating demo curso")
					finalErr = errors.Join(finalErr, err)
					continue
				}
				cursoIDs[curso.Codigo] = cursoID
			}

			_, err := repos.CarreraRepository.AddCurso(ctx, carreraID, cursoID, ciclos[seed.numero])
			if err != nil && !apperrors.IsBusinessRule(err) {
				lgr.Error().Err(err).
					Str("carrera", carrera.Codigo).
					Str("curso", curso.Codigo).
					Msg("Error adding demo curso to carrera")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	if finalErr == nil {
		lgr.Info().Msg("Demo catalogue ready")
	}
	return finalErr
}

// ensureCiclos returns the ciclo ids of a year by numero, creating the missing ones
func ensureCiclos(ctx context.Context, repos *appRepos.Repositories, year int32) (map[int32]int64, error) {
	ids := map[int32]int64{}

	existing, err := repos.CicloRepository.FindByAnio(ctx, year)
	if err != nil && !apperrors.IsNotFound(err) {
		return nil, err
	}
	for _, c := range existing {
		ids[c.Numero] = c.ID
	}

	bounds := map[int32][2]time.Month{
		1: {time.January, time.April},
		2: {time.May, time.August},
		3: {time.September, time.December},
	}
	for numero := int32(1); numero <= 3; numero++ {
		if _, ok := ids[numero]; ok {
			continue
		}
		months := bounds[numero]
		ciclo := &appModels.Ciclo{
			Anio:        year,
			Numero:      numero,
			FechaInicio: appModels.NewDate(int(year), months[0], 1),
			FechaFin:    appModels.NewDate(int(year), months[1], 28),
			Estado:      appModels.CicloInactivo,
		}
		id, err := repos.CicloRepository.Insert(ctx, ciclo)
		if err != nil {
			return nil, fmt.Errorf("ciclo %d-%d: %w", year, numero, err)
		}
		ids[numero] = id
	}
	return ids, nil
}

func ensureCarrera(ctx context.Context, repos *appRepos.Repositories, carrera *appModels.Carrera) (int64, error) {
	found, err := repos.CarreraRepository.FindByCodigo(ctx, carrera.Codigo)
	if err == nil {
		return found.ID, nil
	}
	if !apperrors.IsNotFound(err) {
		return 0, err
	}
	return repos.CarreraRepository.Insert(ctx, carrera)
}

func ensureCurso(ctx context.Context, repos *appRepos.Repositories, curso *appModels.Curso) (int64, error) {
	found, err := repos.CursoRepository.FindByCodigo(ctx, curso.Codigo)
	if err == nil {
		return found.ID, nil
	}
	if !apperrors.IsNotFound(err) {
		return 0, err
	}
	return repos.CursoRepository.Insert(ctx, curso)
}
