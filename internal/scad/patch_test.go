package scad

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSource = `// Box width
width = 40; // 10:100
  // Wall
depth = 20.0;

/* [Finish] */
label = "Box"; // 12
tags = ["a","b"];
show_lid = true;
dims = [1, 2, 3]; // [1:3]

module box() {
  cube([width, depth, 10]);
}
width = 5;
`

func TestPatch(t *testing.T) {
	tests := []struct {
		name   string
		source string
		param  Parameter
		want   string
	}{
		{
			name:   "number",
			source: "x = 5; // 1:10\ny = 2;\n",
			param:  Parameter{Name: "x", Type: TypeNumber, Value: 7.5},
			want:   "x = 7.5; // 1:10\ny = 2;\n",
		},
		{
			name:   "legacy untyped number",
			source: "x = 5;\n",
			param:  Parameter{Name: "x", Value: 9.0},
			want:   "x = 9;\n",
		},
		{
			name:   "string with quote",
			source: `s = "a";` + "\n",
			param:  Parameter{Name: "s", Type: TypeString, Value: `say "hi"`},
			want:   `s = "say \"hi\"";` + "\n",
		},
		{
			name:   "string list",
			source: `t = ["a"];` + "\n",
			param:  Parameter{Name: "t", Type: TypeStringArray, Value: []string{"x", "y"}},
			want:   `t = ["x","y"];` + "\n",
		},
		{
			name:   "boolean list",
			source: "b = [true];\n",
			param:  Parameter{Name: "b", Type: TypeBooleanArray, Value: []bool{false, true}},
			want:   "b = [false,true];\n",
		},
		{
			name:   "number list from any slice",
			source: "n = [1,2];\n",
			param:  Parameter{Name: "n", Type: TypeNumberArray, Value: []any{3, 4.5}},
			want:   "n = [3,4.5];\n",
		},
		{
			name:   "indented assignment",
			source: "\t  x = 1;\n",
			param:  Parameter{Name: "x", Type: TypeNumber, Value: 2.0},
			want:   "\t  x = 2;\n",
		},
		{
			name:   "tight spacing kept",
			source: "x=1;//c\n",
			param:  Parameter{Name: "x", Type: TypeNumber, Value: 2.0},
			want:   "x=2;//c\n",
		},
		{
			name:   "only first occurrence",
			source: "x = 1;\nx = 1;\n",
			param:  Parameter{Name: "x", Type: TypeNumber, Value: 2.0},
			want:   "x = 2;\nx = 1;\n",
		},
		{
			name:   "no exponent for large numbers",
			source: "x = 1;\n",
			param:  Parameter{Name: "x", Type: TypeNumber, Value: 1e21},
			want:   "x = 1000000000000000000000;\n",
		},
		{
			name:   "unknown name",
			source: "x = 1;\n",
			param:  Parameter{Name: "y", Type: TypeNumber, Value: 2.0},
			want:   "x = 1;\n",
		},
		{
			name:   "prefix of another name",
			source: "size_x = 1;\n",
			param:  Parameter{Name: "size", Type: TypeNumber, Value: 2.0},
			want:   "size_x = 1;\n",
		},
		{
			name:   "unknown type",
			source: "x = 1;\n",
			param:  Parameter{Name: "x", Type: "vector", Value: 2.0},
			want:   "x = 1;\n",
		},
		{
			name:   "list type with scalar value",
			source: "n = [1];\n",
			param:  Parameter{Name: "n", Type: TypeNumberArray, Value: 2.0},
			want:   "n = [1];\n",
		},
		{
			name:   "assignment outside header",
			source: "module m() {}\nx = 1;\n",
			param:  Parameter{Name: "x", Type: TypeNumber, Value: 2.0},
			want:   "module m() {}\nx = 1;\n",
		},
		{
			name:   "multibyte text before assignment",
			source: "// Größe\nlabel = \"é\";\nx = 1; // ü\n",
			param:  Parameter{Name: "x", Type: TypeNumber, Value: 2.0},
			want:   "// Größe\nlabel = \"é\";\nx = 2; // ü\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Patch(tt.source, tt.param))
		})
	}
}

func TestPatch_EscapingSafety(t *testing.T) {
	t.Run("metacharacters in name", func(t *testing.T) {
		source := "axb = 1;\n"
		assert.Equal(t, source, Patch(source, Parameter{Name: "a.b", Type: TypeNumber, Value: 2.0}))
	})

	t.Run("backreference in value", func(t *testing.T) {
		source := "s = \"hi\"; // note\n"
		got := Patch(source, Parameter{Name: "s", Type: TypeString, Value: "$1 and $&"})
		assert.Equal(t, "s = \"$1 and $&\"; // note\n", got)
	})

	t.Run("regex syntax in name", func(t *testing.T) {
		source := "x = 1;\n"
		assert.Equal(t, source, Patch(source, Parameter{Name: "(x", Type: TypeNumber, Value: 2.0}))
	})
}

func TestPatch_Idempotence(t *testing.T) {
	for _, p := range Extract(sampleSource) {
		t.Run(p.Name, func(t *testing.T) {
			assert.Equal(t, sampleSource, Patch(sampleSource, p))
		})
	}
}

func TestPatch_EquivalentLiteralUntouched(t *testing.T) {
	source := "depth = 20.0;\n"
	assert.Equal(t, source, Patch(source, Parameter{Name: "depth", Type: TypeNumber, Value: 20.0}))
}

func TestPatch_Locality(t *testing.T) {
	patched := Patch(sampleSource, Parameter{Name: "label", Type: TypeString, Value: "Crate"})

	want := `// Box width
width = 40; // 10:100
  // Wall
depth = 20.0;

/* [Finish] */
label = "Crate"; // 12
tags = ["a","b"];
show_lid = true;
dims = [1, 2, 3]; // [1:3]

module box() {
  cube([width, depth, 10]);
}
width = 5;
`
	assert.Equal(t, want, patched)
}

func TestPatch_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		value any
	}{
		{name: "width", value: 55.0},
		{name: "depth", value: 12.25},
		{name: "label", value: "Crate"},
		{name: "tags", value: []string{"x", "y", "z"}},
		{name: "show_lid", value: false},
		{name: "dims", value: []float64{4, 5, 6}},
	}

	original := Extract(sampleSource)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, ok := Find(original, tt.name)
			require.True(t, ok)

			patched := Patch(sampleSource, target.WithValue(tt.value))
			after := Extract(patched)
			require.Len(t, after, len(original))

			for i, p := range after {
				prev := original[i]
				if p.Name != tt.name {
					assert.Equal(t, prev, p)
					continue
				}
				assert.Equal(t, tt.value, p.Value)
				assert.Equal(t, prev.Type, p.Type)
				assert.Equal(t, prev.Group, p.Group)
				assert.Equal(t, prev.Description, p.Description)
				assert.Equal(t, prev.Range, p.Range)
				assert.Equal(t, prev.Options, p.Options)
			}

			assert.Equal(t, target.DefaultValue, target.WithValue(tt.value).DefaultValue)
		})
	}
}

func TestPatchAll(t *testing.T) {
	source := "a = 1;\nb = \"x\";\n"
	got := PatchAll(source, []Parameter{
		{Name: "a", Type: TypeNumber, Value: 2.0},
		{Name: "", Type: TypeNumber, Value: 3.0},
		{Name: "b", Type: TypeString, Value: "y"},
	})
	assert.Equal(t, "a = 2;\nb = \"y\";\n", got)
}

func TestLiteral(t *testing.T) {
	tests := []struct {
		name   string
		typ    Type
		value  any
		want   string
		wantOK bool
	}{
		{name: "integer float", typ: TypeNumber, value: 10.0, want: "10", wantOK: true},
		{name: "fraction", typ: TypeNumber, value: 0.125, want: "0.125", wantOK: true},
		{name: "int", typ: TypeNumber, value: 3, want: "3", wantOK: true},
		{name: "bool", typ: TypeBoolean, value: false, want: "false", wantOK: true},
		{name: "string", typ: TypeString, value: "a", want: `"a"`, wantOK: true},
		{name: "empty list", typ: TypeNumberArray, value: []float64{}, want: "[]", wantOK: true},
		{name: "string list", typ: TypeStringArray, value: []string{`q"`}, want: `["q\""]`, wantOK: true},
		{name: "not a list", typ: TypeStringArray, value: "a", wantOK: false},
		{name: "nil list", typ: TypeBooleanArray, value: nil, wantOK: false},
		{name: "unknown type", typ: "matrix", value: 1, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Literal(tt.typ, tt.value)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
