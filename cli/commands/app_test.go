package commands

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/petal-labs/genai/cli/config"
)

func testConfigLoader(path string) (*config.Config, error) {
	return &config.Config{
		Namespace: "genai",
		Surface:   "surface.yaml",
		Color:     "never",
	}, nil
}

func newTestApp() (*App, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	app := NewApp(
		WithConfigLoader(testConfigLoader),
		WithIO(strings.NewReader(""), stdout, stderr),
	)
	return app, stdout, stderr
}

func runApp(t *testing.T, app *App, args ...string) error {
	t.Helper()
	app.root.SetArgs(args)
	return app.Execute()
}

func TestModulesCommand(t *testing.T) {
	app, stdout, _ := newTestApp()

	if err := runApp(t, app, "modules"); err != nil {
		t.Fatalf("modules: %v", err)
	}

	out := stdout.String()
	for _, module := range []string{"genai.schema", "genai.file", "genai.text.generation"} {
		if !strings.Contains(out, module) {
			t.Errorf("modules output missing %s:\n%s", module, out)
		}
	}
}

func TestModulesDetailUnknown(t *testing.T) {
	app, _, _ := newTestApp()

	if err := runApp(t, app, "modules", "genai.nope"); err == nil {
		t.Error("modules for an unregistered module succeeded")
	}
}

func TestResolveCurrentName(t *testing.T) {
	app, stdout, stderr := newTestApp()

	if err := runApp(t, app, "resolve", "PromptResult"); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if !strings.Contains(stdout.String(), "genai.schema.PromptResult") {
		t.Errorf("resolve output missing resolved name:\n%s", stdout.String())
	}
	if stderr.Len() != 0 {
		t.Errorf("current name produced stderr output: %q", stderr.String())
	}
}

func TestResolveDeprecatedName(t *testing.T) {
	app, _, stderr := newTestApp()

	if err := runApp(t, app, "resolve", "UserPromptResult"); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	want := "warning: Class has been renamed from 'UserPromptResult' to 'PromptResult'."
	if !strings.Contains(stderr.String(), want) {
		t.Errorf("stderr = %q, want it to contain %q", stderr.String(), want)
	}
}

func TestResolveUnknownName(t *testing.T) {
	app, _, stderr := newTestApp()

	if err := runApp(t, app, "resolve", "NoSuchClass"); err == nil {
		t.Error("resolve of an unknown name succeeded")
	}
	if !strings.Contains(stderr.String(), "NoSuchClass") {
		t.Errorf("stderr does not name the failing symbol: %q", stderr.String())
	}
}

func TestResolveJSON(t *testing.T) {
	app, stdout, _ := newTestApp()

	if err := runApp(t, app, "--json", "resolve", "UserPromptResult"); err != nil {
		t.Fatalf("resolve: %v", err)
	}

	var out struct {
		Module     string `json:"module"`
		Name       string `json:"name"`
		Deprecated bool   `json:"deprecated"`
		Warning    string `json:"warning"`
	}
	if err := json.Unmarshal(stdout.Bytes(), &out); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, stdout.String())
	}
	if out.Module != "genai.schema" || out.Name != "UserPromptResult" {
		t.Errorf("resolved %s.%s, want genai.schema.UserPromptResult", out.Module, out.Name)
	}
	if !out.Deprecated || out.Warning == "" {
		t.Error("JSON output does not carry the deprecation warning")
	}
}

func TestAuditCommandClean(t *testing.T) {
	app, stdout, _ := newTestApp()

	if err := runApp(t, app, "audit"); err != nil {
		t.Fatalf("audit: %v", err)
	}
	if !strings.Contains(stdout.String(), "surface is clean") {
		t.Errorf("audit output = %q", stdout.String())
	}
}

func TestSurfaceWriteAndCheck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "surface.yaml")

	app, _, _ := newTestApp()
	if err := runApp(t, app, "surface", "--write", "--file", path); err != nil {
		t.Fatalf("surface --write: %v", err)
	}

	app2, stdout, _ := newTestApp()
	if err := runApp(t, app2, "surface", "--check", "--file", path); err != nil {
		t.Fatalf("surface --check: %v", err)
	}
	if !strings.Contains(stdout.String(), "still resolve") {
		t.Errorf("surface check output = %q", stdout.String())
	}
}

func TestVersionCommand(t *testing.T) {
	app, stdout, _ := newTestApp()

	if err := runApp(t, app, "version"); err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(stdout.String(), "genai "+Version) {
		t.Errorf("version output = %q", stdout.String())
	}
}
