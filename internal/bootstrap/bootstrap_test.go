package bootstrap

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/academico/internal/app/models"
	"github.com/yigit/academico/internal/app/models/dto"
	"github.com/yigit/academico/internal/config"
)

func newTestRouter(t *testing.T) (*gin.Engine, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	cfg := &config.Config{}
	cfg.Server.Mode = "production"
	cfg.CORS.AllowOrigins = []string{"*"}

	deps := BuildDependencies(mock, zerolog.Nop())
	router, err := SetupRouter(cfg, deps, zerolog.Nop())
	require.NoError(t, err)
	return router, mock
}

func TestRouterServesStoredLookup(t *testing.T) {
	router, mock := newTestRouter(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM buscar_carrera_id($1)")).
		WithArgs(int64(7)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "codigo", "nombre", "titulo"}).
			AddRow(int64(7), "INF", "Ingeniería en Informática", "Bachiller"))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/carrera/buscarPorId/7", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var carrera models.Carrera
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &carrera))
	assert.Equal(t, "INF", carrera.Codigo)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRouterEmptyLookupIsNotFound(t *testing.T) {
	router, mock := newTestRouter(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM listar_ciclos()")).
		WillReturnRows(pgxmock.NewRows([]string{"id", "anio", "numero", "fecha_inicio", "fecha_fin", "estado"}))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ciclo/listar", nil))

	require.Equal(t, http.StatusNotFound, w.Code)
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, dto.CategoryNotFound, body.Error)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRouterFallbacks(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct {
		name   string
		method string
		path   string
		status int
	}{
		{"ping", http.MethodGet, "/ping", http.StatusOK},
		{"unknown route", http.MethodGet, "/api/facultad/listar", http.StatusNotFound},
		{"wrong method", http.MethodPost, "/api/alumno/listar", http.StatusMethodNotAllowed},
		{"non numeric id", http.MethodGet, "/api/grupo/buscarPorId/abc", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.status, w.Code)
		})
	}
}
