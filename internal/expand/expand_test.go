package expand

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "//go:build tryexpand\n\npackage p\n\nimport tryutils \"github.com/zacklukem/try-utils\"\n\n"

// expandGolden expands testdata/{name}.try.go and compares the output with
// testdata/golden/{name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/expand -update
func expandGolden(t *testing.T, name string) *Result {
	t.Helper()

	src, err := os.ReadFile(filepath.Join("testdata", name+".try.go"))
	require.NoError(t, err)

	res, err := File(name+".try.go", src, Options{})
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, res.Output)
	return res
}

func TestFile_Golden(t *testing.T) {
	for _, name := range []string{"return", "loops", "comments", "none", "plusbuild"} {
		t.Run(name, func(t *testing.T) {
			expandGolden(t, name)
		})
	}
}

func TestFile_ReturnDirectives(t *testing.T) {
	res := expandGolden(t, "return")

	require.Len(t, res.Directives, 6)
	for _, d := range res.Directives {
		assert.Equal(t, KindReturn, d.Kind)
		assert.Empty(t, d.Label)
	}
	assert.Equal(t, 17, res.Directives[0].Pos.Line)
}

func TestFile_LoopDirectives(t *testing.T) {
	res := expandGolden(t, "loops")

	var kinds []Kind
	var labels []string
	for _, d := range res.Directives {
		kinds = append(kinds, d.Kind)
		labels = append(labels, d.Label)
	}
	assert.Equal(t, []Kind{KindContinue, KindBreak, KindContinue, KindBreak, KindBreak, KindBreak}, kinds)
	assert.Equal(t, []string{"outer", "", "", "_tryLoop1", "rows", "_tryLoop2"}, labels)
}

func TestFile_NoImport(t *testing.T) {
	res := expandGolden(t, "none")
	assert.Empty(t, res.Directives)
}

func TestFile_Options(t *testing.T) {
	src := strings.Replace(header, "tryexpand", "gen", 1) +
		"func f(vs []tryutils.Option[int]) {\n\tfor _, v := range vs {\n\t\tselect {\n\t\tdefault:\n\t\t\t_ = tryutils.Break(v)\n\t\t}\n\t}\n}\n"

	res, err := File("opts.try.go", []byte(src), Options{BuildTag: "gen", TempPrefix: "_t"})
	require.NoError(t, err)

	out := string(res.Output)
	assert.Contains(t, out, "_tv1, _tok1 := tryutils.Get(v)")
	assert.Contains(t, out, "break _tLoop1")
	assert.Contains(t, out, "_tLoop1:\n\tfor _, v := range vs {")
	assert.NotContains(t, out, "//go:build")
}

func TestFile_ShadowedImportIsIgnored(t *testing.T) {
	src := header + `type guard struct{}

func (guard) Return(v tryutils.Option[int], fallback int) int { return fallback }

func f(v tryutils.Option[int]) int {
	tryutils := guard{}
	return tryutils.Return(v, 1)
}
`
	res, err := File("shadow.try.go", []byte(src), Options{})
	require.NoError(t, err)
	assert.Empty(t, res.Directives)
	assert.Contains(t, string(res.Output), "return tryutils.Return(v, 1)")
}

func TestFile_DropsPlusBuildLine(t *testing.T) {
	res := expandGolden(t, "plusbuild")

	out := string(res.Output)
	assert.NotContains(t, out, "+build")
	assert.NotContains(t, out, "//go:build")
	assert.Len(t, res.Directives, 1)
}

func TestFile_BlankImportIsIgnored(t *testing.T) {
	src := "//go:build tryexpand\n\npackage p\n\nimport _ \"github.com/zacklukem/try-utils\"\n"

	res, err := File("blank.try.go", []byte(src), Options{})
	require.NoError(t, err)
	assert.Empty(t, res.Directives)
}

func TestFile_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code string
		line int
	}{
		{
			name: "parse error",
			src:  header + "func f( {\n",
			code: ErrCodeParse,
		},
		{
			name: "missing build constraint",
			src:  "package p\n",
			code: ErrCodeBuildTag,
		},
		{
			name: "other build constraint",
			src:  "//go:build linux\n\npackage p\n",
			code: ErrCodeBuildTag,
			line: 1,
		},
		{
			name: "plus build with other tag",
			src:  "//go:build tryexpand\n// +build linux\n\npackage p\n",
			code: ErrCodeBuildTag,
			line: 2,
		},
		{
			name: "plus build only",
			src:  "// +build tryexpand\n\npackage p\n",
			code: ErrCodeBuildTag,
		},
		{
			name: "dot import",
			src:  "//go:build tryexpand\n\npackage p\n\nimport . \"github.com/zacklukem/try-utils\"\n",
			code: ErrCodeImport,
			line: 5,
		},
		{
			name: "continue outside loop",
			src:  header + "func f(v tryutils.Option[int]) {\n\t_ = tryutils.Continue(v)\n}\n",
			code: ErrCodeNoLoop,
			line: 8,
		},
		{
			name: "break across function literal",
			src:  header + "func f(vs []tryutils.Option[int]) {\n\tfor _, v := range vs {\n\t\tfunc() {\n\t\t\t_ = tryutils.Break(v)\n\t\t}()\n\t}\n}\n",
			code: ErrCodeNoLoop,
			line: 10,
		},
		{
			name: "unknown label",
			src:  header + "func f(v tryutils.Option[int]) {\n\tfor {\n\t\t_ = tryutils.Break(v, \"outer\")\n\t}\n}\n",
			code: ErrCodeLabel,
			line: 9,
		},
		{
			name: "label names a switch",
			src:  header + "func f(v tryutils.Option[int]) {\n\tfor {\n\tsw:\n\t\tswitch {\n\t\tdefault:\n\t\t\t_ = tryutils.Continue(v, \"sw\")\n\t\t}\n\t}\n}\n",
			code: ErrCodeLabel,
			line: 12,
		},
		{
			name: "label is not a string literal",
			src:  header + "func f(v tryutils.Option[int]) {\nouter:\n\tfor {\n\t\t_ = tryutils.Continue(v, outer)\n\t}\n}\n",
			code: ErrCodeArgs,
			line: 10,
		},
		{
			name: "label is not an identifier",
			src:  header + "func f(v tryutils.Option[int]) {\n\tfor {\n\t\t_ = tryutils.Continue(v, \"1st\")\n\t}\n}\n",
			code: ErrCodeArgs,
			line: 9,
		},
		{
			name: "too many arguments",
			src:  header + "func f(v tryutils.Option[int]) {\n\tfor {\n\t\t_ = tryutils.Break(v, \"a\", \"b\")\n\t}\n}\n",
			code: ErrCodeArgs,
			line: 9,
		},
		{
			name: "no value",
			src:  header + "func f() {\n\t_ = tryutils.Return[int]()\n}\n",
			code: ErrCodeArgs,
			line: 8,
		},
		{
			name: "spread fallback",
			src:  header + "func f(v tryutils.Option[int], fb []any) int {\n\tn := tryutils.Return(v, fb...)\n\treturn n\n}\n",
			code: ErrCodeArgs,
			line: 8,
		},
		{
			name: "missing fallback",
			src:  header + "func f(v tryutils.Option[int]) int {\n\tn := tryutils.Return(v)\n\treturn n\n}\n",
			code: ErrCodeFallback,
			line: 8,
		},
		{
			name: "fallback in function without results",
			src:  header + "func f(v tryutils.Option[int]) {\n\t_ = tryutils.Return(v, 1)\n}\n",
			code: ErrCodeFallback,
			line: 8,
		},
		{
			name: "fallback count",
			src:  header + "func f(v tryutils.Option[int]) (int, error) {\n\tn := tryutils.Return(v, 1)\n\treturn n, nil\n}\n",
			code: ErrCodeFallback,
			line: 8,
		},
		{
			name: "nested in expression",
			src:  header + "func f(v tryutils.Option[int]) int {\n\treturn 1 + tryutils.Return(v, 0)\n}\n",
			code: ErrCodePosition,
			line: 8,
		},
		{
			name: "if init",
			src:  header + "func f(v tryutils.Option[int]) int {\n\tif n := tryutils.Return(v, 0); n > 0 {\n\t\treturn n\n\t}\n\treturn 0\n}\n",
			code: ErrCodePosition,
			line: 8,
		},
		{
			name: "package level",
			src:  header + "var x = tryutils.Return(tryutils.Some(1))\n",
			code: ErrCodePosition,
			line: 7,
		},
		{
			name: "multiple assignment",
			src:  header + "func f(v tryutils.Option[int]) int {\n\ta, b := tryutils.Return(v, 0), 1\n\treturn a + b\n}\n",
			code: ErrCodePosition,
			line: 8,
		},
		{
			name: "nested directive",
			src:  header + "func f(v tryutils.Option[tryutils.Option[int]]) int {\n\tn := tryutils.Return(tryutils.Return(v, 0), 0)\n\treturn n\n}\n",
			code: ErrCodePosition,
			line: 8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := File("bad.try.go", []byte(tt.src), Options{})
			require.Error(t, err)
			assert.Nil(t, res)

			errs := Errors(err)
			require.Len(t, errs, 1, "errors: %v", err)
			assert.Equal(t, tt.code, errs[0].Code, errs[0].Error())
			if tt.line > 0 {
				assert.Equal(t, tt.line, errs[0].Pos.Line, errs[0].Error())
			}
			assert.Contains(t, err.Error(), tt.code)
		})
	}
}

func TestFile_CollectsAllErrors(t *testing.T) {
	src := header + `func f(v tryutils.Option[int]) int {
	_ = tryutils.Continue(v)
	n := tryutils.Return(v)
	return n
}
`
	_, err := File("bad.try.go", []byte(src), Options{})
	require.Error(t, err)

	errs := Errors(err)
	require.Len(t, errs, 2)
	assert.Equal(t, ErrCodeNoLoop, errs[0].Code)
	assert.Equal(t, ErrCodeFallback, errs[1].Code)
	assert.Equal(t, "bad.try.go:8:6: E201: tryutils.Continue outside a loop", errs[0].Error())
}

func TestKind_MarshalText(t *testing.T) {
	text, err := KindBreak.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "break", string(text))
	assert.Equal(t, "Continue", KindContinue.String())
}
