package schema_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zentriq/gong-mcp/pkg/schema"
)

type rangeQuery struct {
	From string `json:"from,omitempty" jsonschema:"title=From,description=Start of the range."`
	To   string `json:"to,omitempty" jsonschema:"title=To,description=End of the range."`
}

type idSelection struct {
	IDs []string `json:"ids" jsonschema:"description=Identifiers to select."`
}

func Test_New(t *testing.T) {
	sc, err := schema.New(reflect.TypeOf(rangeQuery{}))
	require.NoError(t, err)
	require.NotNil(t, sc.Parameters)

	exp := `{
	"type": "object",
	"properties": {
		"from": {
			"type": "string",
			"title": "From",
			"description": "Start of the range."
		},
		"to": {
			"type": "string",
			"title": "To",
			"description": "End of the range."
		}
	}
}`
	assert.JSONEq(t, exp, sc.String())

	// optional fields carry no required list
	assert.Empty(t, sc.Parameters.Required)

	// cached on second use
	sc2, err := schema.New(reflect.TypeOf(rangeQuery{}))
	require.NoError(t, err)
	assert.Same(t, sc, sc2)
}

func Test_New_Required(t *testing.T) {
	sc, err := schema.New(reflect.TypeOf(idSelection{}))
	require.NoError(t, err)
	assert.Equal(t, []string{"ids"}, sc.Parameters.Required)
}
