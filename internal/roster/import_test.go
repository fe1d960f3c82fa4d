package roster

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImport(t *testing.T) {
	csv := strings.Join([]string{
		"name,is_under_18",
		"Alice Johnson,true",
		"Bob Smith,no",
		"Carol Davis,",
		"Dana Lee,1",
	}, "\n")

	result, err := Import(strings.NewReader(csv))
	require.NoError(t, err)
	require.Empty(t, result.Errors)
	require.Len(t, result.Records, 4)

	assert.True(t, result.Records[0].IsUnder18)
	assert.False(t, result.Records[1].IsUnder18)
	assert.False(t, result.Records[2].IsUnder18)
	assert.True(t, result.Records[3].IsUnder18)
}

func TestImportNameOnlyHeader(t *testing.T) {
	result, err := Import(strings.NewReader("name\nAlice Johnson\n"))
	require.NoError(t, err)
	require.Len(t, result.Records, 1)
	assert.False(t, result.Records[0].IsUnder18)
}

func TestImportCollectsRowErrors(t *testing.T) {
	csv := strings.Join([]string{
		"name,is_under_18",
		",true",             // missing name
		"Bob Smith,maybe",   // bad boolean token
		"Carol Davis,false", // fine
	}, "\n")

	result, err := Import(strings.NewReader(csv))
	require.NoError(t, err)

	require.Len(t, result.Records, 1)
	assert.Equal(t, "Carol Davis", result.Records[0].Name)

	require.Len(t, result.Errors, 2)
	assert.Equal(t, 2, result.Errors[0].Line)
	assert.Contains(t, result.Errors[0].Message, "name")
	assert.Equal(t, 3, result.Errors[1].Line)
	assert.Contains(t, result.Errors[1].Message, "maybe")
}

func TestImportRequiresHeader(t *testing.T) {
	_, err := Import(strings.NewReader(""))
	assert.Error(t, err)
}

func TestImportRequiresNameColumn(t *testing.T) {
	_, err := Import(strings.NewReader("id,is_under_18\n1,true\n"))
	assert.Error(t, err)
}
