package dialogue

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kb-labs/projgen/internal/generator"
	"github.com/kb-labs/projgen/internal/generator/node"
	"github.com/kb-labs/projgen/internal/logger"
	"github.com/kb-labs/projgen/internal/prompt"
	"github.com/kb-labs/projgen/internal/registry"
)

// fakeGenerator records the path it was asked to generate into.
type fakeGenerator struct {
	paths []string
}

func (f *fakeGenerator) Generate(ctx context.Context, projectPath string) (*generator.Result, error) {
	f.paths = append(f.paths, projectPath)
	return &generator.Result{ProjectDir: projectPath}, nil
}

func newController(p prompt.Prompter, gens map[string]generator.Generator, out *bytes.Buffer) *Controller {
	return &Controller{Prompter: p, Generators: gens, Log: logger.NewDiscard(), Out: out}
}

// TestLanguageQuestion verifies NodeJS is listed first and is the default.
func TestLanguageQuestion(t *testing.T) {
	q := LanguageQuestion()
	if q.Choices[0].Value != LanguageNode || q.Default != LanguageNode {
		t.Errorf("first choice = %q, default = %q; want NodeJS", q.Choices[0].Value, q.Default)
	}
	if len(q.Choices) != 2 {
		t.Errorf("choices = %v, want NodeJS and C++", q.Choices)
	}
}

// TestRunDispatchesAbsolutePath verifies the generator receives an absolute path.
func TestRunDispatchesAbsolutePath(t *testing.T) {
	fake := &fakeGenerator{}
	var out bytes.Buffer
	c := newController(prompt.NewPreset(), map[string]generator.Generator{LanguageNode: fake}, &out)

	res, err := c.Run(context.Background(), "demo")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res == nil {
		t.Fatal("Run() result = nil, want result from generator")
	}

	cwd, _ := os.Getwd()
	want := filepath.Join(cwd, "demo")
	if len(fake.paths) != 1 || fake.paths[0] != want {
		t.Errorf("generator paths = %v, want [%s]", fake.paths, want)
	}
}

// TestRunEmptyDestinationIsCWD verifies an empty destination means the working directory.
func TestRunEmptyDestinationIsCWD(t *testing.T) {
	fake := &fakeGenerator{}
	c := newController(prompt.NewPreset(), map[string]generator.Generator{LanguageNode: fake}, &bytes.Buffer{})

	if _, err := c.Run(context.Background(), ""); err != nil {
		t.Fatal(err)
	}
	cwd, _ := os.Getwd()
	if fake.paths[0] != cwd {
		t.Errorf("generator path = %q, want %q", fake.paths[0], cwd)
	}
}

// TestRunUnsupportedLanguage verifies the not-supported message and that no
// generator runs.
func TestRunUnsupportedLanguage(t *testing.T) {
	fake := &fakeGenerator{}
	var out bytes.Buffer
	p := prompt.NewPreset().Set(QuestionLanguage, LanguageNative)
	c := newController(p, map[string]generator.Generator{LanguageNode: fake}, &out)

	res, err := c.Run(context.Background(), "demo")
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if res != nil {
		t.Errorf("Run() result = %+v, want nil", res)
	}
	if got := out.String(); got != "C++ projects are not yet supported.\n" {
		t.Errorf("output = %q", got)
	}
	if len(fake.paths) != 0 {
		t.Errorf("generator called for unsupported language: %v", fake.paths)
	}
}

// TestRunUnsupportedWritesNothing verifies the real NodeJS table leaves the
// filesystem untouched for C++.
func TestRunUnsupportedWritesNothing(t *testing.T) {
	reg, err := registry.Default()
	if err != nil {
		t.Fatal(err)
	}
	p := prompt.NewPreset().Set(QuestionLanguage, LanguageNative)
	gens := map[string]generator.Generator{
		LanguageNode: &node.Generator{Prompter: p, Registry: reg, Log: logger.NewDiscard()},
	}
	dir := filepath.Join(t.TempDir(), "native")

	if _, err := newController(p, gens, &bytes.Buffer{}).Run(context.Background(), dir); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Errorf("destination should not exist, stat err = %v", err)
	}
	if got := strings.Join(p.Asked(), ","); got != QuestionLanguage {
		t.Errorf("asked = %s, want only the language question", got)
	}
}

// TestRunLanguagePreselected verifies Language skips the prompt.
func TestRunLanguagePreselected(t *testing.T) {
	fake := &fakeGenerator{}
	p := prompt.NewPreset()
	c := newController(p, map[string]generator.Generator{LanguageNode: fake}, &bytes.Buffer{})
	c.Language = LanguageNode

	if _, err := c.Run(context.Background(), "demo"); err != nil {
		t.Fatal(err)
	}
	if len(p.Asked()) != 0 {
		t.Errorf("asked = %v, want no prompts", p.Asked())
	}
	if len(fake.paths) != 1 {
		t.Errorf("generator calls = %d, want 1", len(fake.paths))
	}
}

// TestRunLanguageInvalid verifies an unknown preselected language is rejected.
func TestRunLanguageInvalid(t *testing.T) {
	c := newController(prompt.NewPreset(), map[string]generator.Generator{}, &bytes.Buffer{})
	c.Language = "Rust"

	_, err := c.Run(context.Background(), "demo")
	if !errors.Is(err, prompt.ErrInvalidAnswer) {
		t.Errorf("Run() error = %v, want ErrInvalidAnswer", err)
	}
}

// TestRunPromptCancelled verifies a cancelled language prompt is returned unchanged.
func TestRunPromptCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := newController(prompt.NewPreset(), map[string]generator.Generator{LanguageNode: &fakeGenerator{}}, &bytes.Buffer{})

	if _, err := c.Run(ctx, "demo"); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
}

// TestRunEndToEnd verifies the demo scenario through the real NodeJS generator.
func TestRunEndToEnd(t *testing.T) {
	reg, err := registry.Default()
	if err != nil {
		t.Fatal(err)
	}
	p := prompt.NewPreset().Set(node.KeyVersion, "1.2.3")
	gens := map[string]generator.Generator{
		LanguageNode: &node.Generator{Prompter: p, Registry: reg, Log: logger.NewDiscard()},
	}
	dir := filepath.Join(t.TempDir(), "demo")

	res, err := newController(p, gens, &bytes.Buffer{}).Run(context.Background(), dir)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(res.Files) != 2 {
		t.Fatalf("Files = %v", res.Files)
	}
	data, err := os.ReadFile(filepath.Join(dir, "package.json"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"name":"demo","version":"1.2.3","type":"commonjs","private":true`) {
		t.Errorf("package.json = %s", data)
	}
}
