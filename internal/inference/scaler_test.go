package inference

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStandardScaler_RejectsEmpty(t *testing.T) {
	_, err := NewStandardScaler(nil, nil)
	assert.Error(t, err)
}

func TestNewStandardScaler_RejectsLengthMismatch(t *testing.T) {
	_, err := NewStandardScaler([]float64{1, 2}, []float64{1})
	assert.Error(t, err)
}

func TestStandardScaler_Transform(t *testing.T) {
	scaler, err := NewStandardScaler([]float64{1, 2}, []float64{2, 4})
	require.NoError(t, err)

	out, err := scaler.Transform([]float64{3, 10})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, out)
	assert.Equal(t, 2, scaler.Dim())
}

func TestStandardScaler_ZeroScaleEntryPassesThrough(t *testing.T) {
	scaler, err := NewStandardScaler([]float64{2, 3}, []float64{0, 1})
	require.NoError(t, err)

	out, err := scaler.Transform([]float64{5, 5})
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 2}, out)
}

func TestStandardScaler_WrongWidth(t *testing.T) {
	scaler, err := NewStandardScaler([]float64{1, 2}, []float64{1, 1})
	require.NoError(t, err)

	_, err = scaler.Transform([]float64{1})
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestStandardScaler_DoesNotMutateInput(t *testing.T) {
	scaler, err := NewStandardScaler([]float64{1, 1}, []float64{2, 2})
	require.NoError(t, err)

	row := []float64{3, 5}
	_, err = scaler.Transform(row)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 5}, row)
}

func TestLoadScaler_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "my_scaler.json")
	content := `{"format":"standard-scaler/v1","mean":[1,2],"scale":[2,4]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	scaler, err := LoadScaler(path)
	require.NoError(t, err)

	out, err := scaler.Transform([]float64{3, 10})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, out)
}

func TestLoadScaler_UnsupportedFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "my_scaler.json")
	content := `{"format":"standard-scaler/v9","mean":[1],"scale":[1]}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	_, err := LoadScaler(path)
	assert.ErrorContains(t, err, "unsupported format")
}

func TestLoadScaler_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "my_scaler.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := LoadScaler(path)
	assert.Error(t, err)
}

func TestLoadScaler_MissingFile(t *testing.T) {
	_, err := LoadScaler(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
