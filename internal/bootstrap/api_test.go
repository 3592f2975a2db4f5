package bootstrap

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/academico/internal/app/models"
	"github.com/yigit/academico/internal/app/models/dto"
)

func serve(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestRouterLoginKeepsClaveSpaces(t *testing.T) {
	router, mock := newTestRouter(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT insertar_usuario($1, $2, $3)")).
		WithArgs("123456789", " secreta ", "Alumno").
		WillReturnRows(pgxmock.NewRows([]string{"insertar_usuario"}).AddRow(int64(5)))
	mock.ExpectQuery(regexp.QuoteMeta("FROM login_usuario($1, $2)")).
		WithArgs("123456789", " secreta ").
		WillReturnRows(pgxmock.NewRows([]string{"id", "cedula", "tipo"}).AddRow(int64(5), "123456789", "Alumno"))

	w := serve(router, http.MethodPost, "/api/usuario/insertar",
		`{"cedula":"123456789","clave":" secreta ","tipo":"Alumno"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = serve(router, http.MethodPost, "/api/usuario/login?cedula=123456789&clave=%20secreta%20", "")
	require.Equal(t, http.StatusOK, w.Code)

	var usuario models.Usuario
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &usuario))
	assert.Equal(t, int64(5), usuario.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRouterLoginEmptyClaveIsMalformed(t *testing.T) {
	router, mock := newTestRouter(t)

	w := serve(router, http.MethodPost, "/api/usuario/login?cedula=123456789&clave=", "")
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.CategoryMalformedRequest, decodeError(t, w).Error)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// Format violations pass binding and come back with the stored function's message
func TestRouterFormatViolationsReachStoredFunctions(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		body    string
		call    string
		code    string
		message string
	}{
		{
			name:    "alumno cedula",
			path:    "/api/alumno/insertar",
			body:    `{"cedula":"123","nombre":"Ana","telefono":"88887777","email":"ana@example.com","fechaNacimiento":"2001-05-04","pkCarrera":1}`,
			call:    "SELECT insertar_alumno(",
			code:    "20102",
			message: "La cédula del alumno debe tener 9 dígitos",
		},
		{
			name:    "profesor telefono",
			path:    "/api/profesor/insertar",
			body:    `{"cedula":"111111111","nombre":"Luis","telefono":"88-77","email":"luis@example.com"}`,
			call:    "SELECT insertar_profesor(",
			code:    "20203",
			message: "El teléfono del profesor solo puede contener dígitos",
		},
		{
			name:    "curso creditos",
			path:    "/api/curso/insertar",
			body:    `{"codigo":"MAT-101","nombre":"Cálculo","creditos":0,"horasSemanales":4}`,
			call:    "SELECT insertar_curso(",
			code:    "20402",
			message: "Los créditos del curso deben ser mayores que cero",
		},
		{
			name:    "ciclo numero",
			path:    "/api/ciclo/insertar",
			body:    `{"anio":2026,"numero":7,"fechaInicio":"2026-02-01","fechaFin":"2026-06-30"}`,
			call:    "SELECT insertar_ciclo(",
			code:    "20603",
			message: "El número de ciclo debe estar entre 1 y 3",
		},
		{
			name:    "matricula nota",
			path:    "/api/matricula/insertar",
			body:    `{"pkAlumno":1,"pkGrupo":2,"nota":150}`,
			call:    "SELECT insertar_matricula(",
			code:    "20804",
			message: "La nota debe estar entre 0 y 100",
		},
		{
			name:    "usuario tipo",
			path:    "/api/usuario/insertar",
			body:    `{"cedula":"123456789","clave":"x","tipo":"Admin"}`,
			call:    "SELECT insertar_usuario(",
			code:    "20903",
			message: "El tipo de usuario debe ser Alumno o Profesor",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mock := newTestRouter(t)
			mock.ExpectQuery(regexp.QuoteMeta(tt.call)).
				WillReturnError(&pgconn.PgError{Code: tt.code, Message: tt.name})

			w := serve(router, http.MethodPost, tt.path, tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code)
			body := decodeError(t, w)
			assert.Equal(t, dto.CategoryBusinessRule, body.Error)
			assert.Equal(t, tt.message, body.Message)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRouterMissingFieldIsMalformed(t *testing.T) {
	router, mock := newTestRouter(t)

	w := serve(router, http.MethodPost, "/api/grupo/insertar", `{"pkCarreraCurso":1,"numeroGrupo":1,"horario":"L 8:00"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decodeError(t, w)
	assert.Equal(t, dto.CategoryMalformedRequest, body.Error)
	assert.Contains(t, body.Message, "pkProfesor")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func expectNoDependencies(mock pgxmock.PgxPoolIface, checks int) {
	for i := 0; i < checks; i++ {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS (")).
			WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
	}
}

func TestRouterModuleStatuses(t *testing.T) {
	tests := []struct {
		name       string
		base       string
		insertBody string
		insertCall string
		deleteCall string
		checks     int
		lookupCall string
		columns    []string
	}{
		{
			name:       "profesor",
			base:       "/api/profesor",
			insertBody: `{"cedula":"111111111","nombre":"Luis","telefono":"88887777","email":"luis@example.com"}`,
			insertCall: "SELECT insertar_profesor(",
			deleteCall: "SELECT eliminar_profesor(",
			checks:     2,
			lookupCall: "FROM buscar_profesor_id($1)",
			columns:    []string{"id", "cedula", "nombre", "telefono", "email"},
		},
		{
			name:       "curso",
			base:       "/api/curso",
			insertBody: `{"codigo":"MAT-101","nombre":"Cálculo","creditos":4,"horasSemanales":5}`,
			insertCall: "SELECT insertar_curso(",
			deleteCall: "SELECT eliminar_curso(",
			checks:     2,
			lookupCall: "FROM buscar_curso_id($1)",
			columns:    []string{"id", "codigo", "nombre", "creditos", "horas_semanales"},
		},
		{
			name:       "carrera curso",
			base:       "/api/carreraCurso",
			insertBody: `{"pkCarrera":1,"pkCurso":2,"pkCiclo":3}`,
			insertCall: "SELECT insertar_carrera_curso(",
			deleteCall: "SELECT eliminar_carrera_curso(",
			checks:     1,
			lookupCall: "FROM buscar_carrera_curso_id($1)",
			columns:    []string{"id", "pk_carrera", "pk_curso", "pk_ciclo"},
		},
		{
			name:       "grupo",
			base:       "/api/grupo",
			insertBody: `{"pkCarreraCurso":1,"numeroGrupo":1,"horario":"L-J 8:00","pkProfesor":4}`,
			insertCall: "SELECT insertar_grupo(",
			deleteCall: "SELECT eliminar_grupo(",
			checks:     1,
			lookupCall: "FROM buscar_grupo_id($1)",
			columns:    []string{"id", "pk_carrera_curso", "numero_grupo", "horario", "pk_profesor"},
		},
		{
			name:       "matricula",
			base:       "/api/matricula",
			insertBody: `{"pkAlumno":1,"pkGrupo":2,"nota":90}`,
			insertCall: "SELECT insertar_matricula(",
			deleteCall: "SELECT eliminar_matricula(",
			checks:     0,
			lookupCall: "FROM buscar_matricula_id($1)",
			columns:    []string{"id", "pk_alumno", "pk_grupo", "nota"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mock := newTestRouter(t)

			mock.ExpectQuery(regexp.QuoteMeta(tt.insertCall)).
				WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(21)))
			w := serve(router, http.MethodPost, tt.base+"/insertar", tt.insertBody)
			require.Equal(t, http.StatusCreated, w.Code)
			var created struct {
				ID int64 `json:"id"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
			assert.Equal(t, int64(21), created.ID)

			mock.ExpectBegin()
			expectNoDependencies(mock, tt.checks)
			mock.ExpectQuery(regexp.QuoteMeta(tt.deleteCall)).
				WithArgs(int64(21)).
				WillReturnRows(pgxmock.NewRows([]string{"rows"}).AddRow(int64(1)))
			mock.ExpectCommit()
			w = serve(router, http.MethodDelete, tt.base+"/eliminar/21", "")
			require.Equal(t, http.StatusNoContent, w.Code)

			mock.ExpectQuery(regexp.QuoteMeta(tt.lookupCall)).
				WithArgs(int64(21)).
				WillReturnRows(pgxmock.NewRows(tt.columns))
			w = serve(router, http.MethodGet, tt.base+"/buscarPorId/21", "")
			require.Equal(t, http.StatusNotFound, w.Code)
			assert.Equal(t, dto.CategoryNotFound, decodeError(t, w).Error)

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
