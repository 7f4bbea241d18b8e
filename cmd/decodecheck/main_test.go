package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	j "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/decoded"
	"github.com/reoring/decoded/source"
)

func TestParseFieldSpec(t *testing.T) {
	fs, err := parseFieldSpec("age:int?")
	require.NoError(t, err)
	assert.Equal(t, fieldSpec{Name: "age", Type: "int", Optional: true}, fs)

	fs, err = parseFieldSpec("name:string")
	require.NoError(t, err)
	assert.Equal(t, fieldSpec{Name: "name", Type: "string"}, fs)

	for _, bad := range []string{"name", ":int", "name:date"} {
		_, err := parseFieldSpec(bad)
		assert.Error(t, err, bad)
	}
}

func TestCheckFields(t *testing.T) {
	specs, err := parseFieldSpecs([]string{"name:string", "age:int", "nick:string?"})
	require.NoError(t, err)

	root, err := source.JSONBytes([]byte(`{"age":"old"}`))
	require.NoError(t, err)
	e, failed := checkFields(root, specs).ErrorValue()
	require.True(t, failed)
	assert.True(t, decoded.Equal(decoded.NewMultiple(
		decoded.MissingKey{Key: "name"},
		decoded.TypeMismatch{Expected: "Int", Actual: "String"},
	), e), e.String())

	root, err = source.YAMLBytes([]byte("name: ann\nage: 30\n"))
	require.NoError(t, err)
	v, ok := checkFields(root, specs).Value()
	require.True(t, ok)
	assert.Equal(t, map[string]any{"name": "ann", "age": 30}, v)
}

func TestCheckFields_OptionalWrongType(t *testing.T) {
	specs, err := parseFieldSpecs([]string{"nick:string?"})
	require.NoError(t, err)
	root, err := source.JSONBytes([]byte(`{"nick":1}`))
	require.NoError(t, err)
	e, failed := checkFields(root, specs).ErrorValue()
	require.True(t, failed)
	assert.Equal(t, decoded.DecodeError(decoded.TypeMismatch{Expected: "String", Actual: "Number"}), e)
}

func TestBuildReport(t *testing.T) {
	failed := decoded.Failed[map[string]any](decoded.NewMultiple(
		decoded.MissingKey{Key: "name"},
		decoded.NewMultiple(decoded.Custom{Message: "x"}),
	))
	b, err := buildReport("in.json", failed).JSON()
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, j.Unmarshal(b, &got))
	assert.Equal(t, false, got["ok"])
	assert.Equal(t, []any{"MissingKey(name)", "Custom(x)"}, got["leaves"])
	tree := got["error"].(map[string]any)
	assert.Equal(t, "Multiple", tree["type"])
	assert.Len(t, tree["errors"], 2)

	ok := buildReport("in.json", decoded.Succeeded(map[string]any{"n": source.Number("3")}))
	assert.True(t, ok.OK)
	b, err = ok.JSON()
	require.NoError(t, err)
	assert.Contains(t, string(b), `"n": 3`)
}

func TestResolveFormat(t *testing.T) {
	assert.Equal(t, "yaml", resolveFormat("auto", "a/b.YML"))
	assert.Equal(t, "json", resolveFormat("auto", "a/b.json"))
	assert.Equal(t, "yaml", resolveFormat("yaml", "a/b.json"))
}

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func runApp(t *testing.T, args ...string) (string, error) {
	t.Helper()
	app := newApp()
	var out bytes.Buffer
	app.Writer = &out
	err := app.Run(append([]string{"decodecheck"}, args...))
	return out.String(), err
}

func TestApp_TextReport(t *testing.T) {
	bad := writeTemp(t, "bad.json", `{"age":"old"}`)
	out, err := runApp(t, "--field", "name:string", "--field", "age:int", bad)
	require.ErrorIs(t, err, errCheckFailed)
	assert.Equal(t, 1, exitCode(err))
	assert.Equal(t, "Failed(Multiple(MissingKey(name), TypeMismatch(Expected Int, got String)))\n", out)

	good := writeTemp(t, "good.yaml", "name: ann\nage: 30\n")
	out, err = runApp(t, "--field", "name:string", "--field", "age:int", "--field", "nick:string?", good)
	require.NoError(t, err)
	assert.Equal(t, 0, exitCode(err))
	assert.Equal(t, "Succeeded(map[age:30 name:ann])\n", out)
}

func TestApp_JSONReport(t *testing.T) {
	bad := writeTemp(t, "bad.json", `{"age":"old"}`)
	out, err := runApp(t, "--output", "json", "--field", "name:string", "--field", "age:int", bad)
	require.ErrorIs(t, err, errCheckFailed)

	var got map[string]any
	require.NoError(t, j.Unmarshal([]byte(out), &got))
	assert.Equal(t, bad, got["file"])
	assert.Equal(t, false, got["ok"])
	assert.Equal(t, []any{"MissingKey(name)", "TypeMismatch(Expected Int, got String)"}, got["leaves"])
}

func TestApp_EnvFallbacks(t *testing.T) {
	// YAML content behind a .json name: only the env format makes it parse.
	path := writeTemp(t, "doc.json", "name: ann\n")
	t.Setenv("DECODECHECK_FORMAT", "yaml")
	t.Setenv("DECODECHECK_OUTPUT", "json")

	out, err := runApp(t, "--field", "name:string", path)
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, j.Unmarshal([]byte(out), &got))
	assert.Equal(t, true, got["ok"])
	assert.Equal(t, map[string]any{"name": "ann"}, got["value"])

	// Flags win over env.
	out, err = runApp(t, "--format", "yaml", "--output", "text", "--field", "name:string", path)
	require.NoError(t, err)
	assert.Equal(t, "Succeeded(map[name:ann])\n", out)
}

func TestApp_UsageErrors(t *testing.T) {
	path := writeTemp(t, "doc.json", `{}`)

	_, err := runApp(t, "--field", "name:string")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing FILE")
	assert.Equal(t, 1, exitCode(err))

	_, err = runApp(t, "--format", "toml", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown format "toml"`)

	_, err = runApp(t, "--output", "xml", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown output "xml"`)

	_, err = runApp(t, "--field", "name:date", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown type")

	_, err = runApp(t, filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, errCheckFailed)

	_, err = runApp(t, writeTemp(t, "broken.json", `{"a":010}`))
	require.Error(t, err)
	assert.NotErrorIs(t, err, errCheckFailed)
}
