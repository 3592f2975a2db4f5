package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	var alumno Alumno
	require.NoError(t, json.Unmarshal([]byte(`{"cedula":"123456789","fechaNacimiento":"2001-03-15"}`), &alumno))
	assert.Equal(t, NewDate(2001, time.March, 15), alumno.FechaNacimiento)

	out, err := json.Marshal(alumno)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"fechaNacimiento":"2001-03-15"`)

	err = json.Unmarshal([]byte(`{"fechaNacimiento":"15/03/2001"}`), &alumno)
	assert.ErrorContains(t, err, "expected YYYY-MM-DD")
}

func TestZeroDateIsNull(t *testing.T) {
	out, err := json.Marshal(Ciclo{ID: 1})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"fechaInicio":null`)
}

func TestUsuarioHidesClave(t *testing.T) {
	out, err := json.Marshal(Usuario{ID: 3, Cedula: "123456789", Clave: "secreta", Tipo: TipoAlumno})
	require.NoError(t, err)
	assert.NotContains(t, string(out), "secreta")
	assert.JSONEq(t, `{"id":3,"cedula":"123456789","tipo":"Alumno"}`, string(out))
}
