package scad

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertType(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantValue any
		wantType  Type
	}{
		{name: "integer", raw: "5", wantValue: 5.0, wantType: TypeNumber},
		{name: "negative decimal", raw: "-2.5", wantValue: -2.5, wantType: TypeNumber},
		{name: "true", raw: "true", wantValue: true, wantType: TypeBoolean},
		{name: "false", raw: "false", wantValue: false, wantType: TypeBoolean},
		{name: "string", raw: `"hi"`, wantValue: "hi", wantType: TypeString},
		{name: "empty string", raw: `""`, wantValue: "", wantType: TypeString},
		{name: "number list", raw: "[1,2,3]", wantValue: []float64{1, 2, 3}, wantType: TypeNumberArray},
		{name: "number list with spaces", raw: "[1, 2.5 , 3]", wantValue: []float64{1, 2.5, 3}, wantType: TypeNumberArray},
		{name: "string list", raw: `["a","b"]`, wantValue: []string{"a", "b"}, wantType: TypeStringArray},
		{name: "boolean list", raw: "[true, false]", wantValue: []bool{true, false}, wantType: TypeBooleanArray},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, typ, err := ConvertType(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, typ)
			assert.Equal(t, tt.wantValue, value)
		})
	}
}

func TestConvertType_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr error
	}{
		{name: "reference", raw: "some_other_var", wantErr: ErrUnsupportedValue},
		{name: "expression", raw: "10 * 2", wantErr: ErrUnsupportedValue},
		{name: "exponent", raw: "1e3", wantErr: ErrUnsupportedValue},
		{name: "leading dot", raw: ".5", wantErr: ErrUnsupportedValue},
		{name: "trailing space", raw: "5 ", wantErr: ErrUnsupportedValue},
		{name: "function call", raw: "sin(30)", wantErr: ErrUnsupportedValue},
		{name: "mixed list", raw: `[1,"a"]`, wantErr: ErrInvalidArray},
		{name: "empty list", raw: "[]", wantErr: ErrInvalidArray},
		{name: "negative in list", raw: "[-1,2]", wantErr: ErrInvalidArray},
		{name: "nested list", raw: "[[1,2],[3,4]]", wantErr: ErrInvalidArray},
		{name: "vector of references", raw: "[w, h]", wantErr: ErrInvalidArray},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ConvertType(tt.raw)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestIsReference(t *testing.T) {
	assert.True(t, isReference("width"))
	assert.True(t, isReference("_private"))
	assert.True(t, isReference("[1,\n2]"))
	assert.False(t, isReference("true"))
	assert.False(t, isReference("false"))
	assert.False(t, isReference("42"))
	assert.False(t, isReference(`"text"`))
}

func TestTypeHelpers(t *testing.T) {
	assert.True(t, TypeNumberArray.IsArray())
	assert.False(t, TypeNumber.IsArray())
	assert.Equal(t, TypeString, TypeStringArray.Elem())
	assert.Equal(t, TypeBoolean, TypeBoolean.Elem())
	assert.True(t, TypeBooleanArray.IsValid())
	assert.False(t, Type("").IsValid())
	assert.False(t, Type("vector").IsValid())
}

func TestDisplayName(t *testing.T) {
	tests := map[string]string{
		"wall_thickness": "Wall Thickness",
		"$fn":            "Resolution",
		"$fa":            "$fa",
		"width":          "Width",
		"box__gap":       "Box  Gap",
		"_hidden":        " Hidden",
		"x2":             "X2",
	}

	for name, want := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, want, DisplayName(name))
		})
	}
}
