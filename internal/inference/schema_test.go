package inference

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trainedColumns() []string {
	return []string{
		FeatureAge, FeatureRopeSkip, FeatureReaction, FeatureRun50m,
		FeatureHC, FeatureGender, FeatureWC, FeatureWHR, FeatureCC,
	}
}

func TestNewFeatureSchema_RejectsEmptyList(t *testing.T) {
	_, err := NewFeatureSchema(nil)
	assert.Error(t, err)
}

func TestNewFeatureSchema_RejectsEmptyName(t *testing.T) {
	_, err := NewFeatureSchema([]string{"Age", ""})
	assert.Error(t, err)
}

func TestNewFeatureSchema_RejectsDuplicates(t *testing.T) {
	_, err := NewFeatureSchema([]string{"Age", "WC", "Age"})
	assert.Error(t, err)
}

func TestLoadFeatureSchema_ReadsHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ready_train.csv")
	content := "Age,RopeSkip,Reaction,Run50m,HC,Gender,WC,WHR,CC\n10,120,0.4,9.5,75,1,65,0.867,70\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	schema, err := LoadFeatureSchema(path)
	require.NoError(t, err)
	assert.Equal(t, trainedColumns(), schema.Names())
	assert.Equal(t, 9, schema.Len())
}

func TestLoadFeatureSchema_MissingFile(t *testing.T) {
	_, err := LoadFeatureSchema(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestLoadFeatureSchema_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	_, err := LoadFeatureSchema(path)
	assert.Error(t, err)
}

func TestAssemble_UsesSchemaOrder(t *testing.T) {
	schema, err := NewFeatureSchema([]string{FeatureWC, FeatureAge, FeatureWHR})
	require.NoError(t, err)

	row, err := schema.Assemble(map[string]float64{
		FeatureAge: 10,
		FeatureWHR: 0.86,
		FeatureWC:  65,
	})
	require.NoError(t, err)
	assert.Equal(t, []float64{65, 10, 0.86}, row)
}

func TestAssemble_MissingFeature(t *testing.T) {
	schema, err := NewFeatureSchema(trainedColumns())
	require.NoError(t, err)

	_, err = schema.Assemble(map[string]float64{FeatureAge: 10})
	assert.ErrorIs(t, err, ErrShapeMismatch)
	assert.Contains(t, err.Error(), "missing feature")
}

func TestAssemble_IgnoresUnknownNames(t *testing.T) {
	schema, err := NewFeatureSchema([]string{FeatureAge, FeatureWC})
	require.NoError(t, err)

	row, err := schema.Assemble(map[string]float64{
		FeatureAge: 10,
		FeatureWC:  65,
		"BMI":      22.5,
	})
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 65}, row)
}

func TestNames_ReturnsCopy(t *testing.T) {
	schema, err := NewFeatureSchema([]string{FeatureAge, FeatureWC})
	require.NoError(t, err)

	names := schema.Names()
	names[0] = "tampered"
	assert.Equal(t, []string{FeatureAge, FeatureWC}, schema.Names())
}
