package commands

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap/zaptest"

	"twee/config"
	"twee/state"
	"twee/twee"
)

const goodStory = `:: StoryTitle
My Story

:: StoryData
{"ifid": "D674C58C-DEFA-4F70-B7A2-27742230C0FC", "start": "Start"}

:: Start
Go [[Next]]

:: Next
End.
`

// setupTestEnv creates a test environment with proper context and logger
func setupTestEnv(t *testing.T) context.Context {
	t.Helper()

	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	ctx := state.ContextWithEnv(context.Background())
	env := state.EnvFromContext(ctx)
	env.Log = zaptest.NewLogger(t)
	env.Cfg = cfg
	return ctx
}

func runCommand(ctx context.Context, sub *cli.Command, args ...string) error {
	app := &cli.Command{Name: "twee", Commands: []*cli.Command{sub}}
	return app.Run(ctx, append([]string{"twee", sub.Name}, args...))
}

func writeStory(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "story.twee")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("unable to write story: %v", err)
	}
	return path
}

func TestCheckWellFormedStory(t *testing.T) {
	ctx := setupTestEnv(t)
	path := writeStory(t, goodStory)

	if err := runCommand(ctx, &cli.Command{Name: "check", Action: Check}, path); err != nil {
		t.Fatalf("check failed on well formed story: %v", err)
	}
}

func TestCheckFindsProblems(t *testing.T) {
	ctx := setupTestEnv(t)
	path := writeStory(t, ":: Start\nGo [[Nowhere]]\n")

	err := runCommand(ctx, &cli.Command{Name: "check", Action: Check}, path)
	if err == nil {
		t.Fatal("expected problems to be reported")
	}
	if !strings.Contains(err.Error(), "problem") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCheckMissingFile(t *testing.T) {
	ctx := setupTestEnv(t)

	if err := runCommand(ctx, &cli.Command{Name: "check", Action: Check}, filepath.Join(t.TempDir(), "no-such.twee")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestCreateStory(t *testing.T) {
	ctx := setupTestEnv(t)
	dir := t.TempDir()

	sub := &cli.Command{Name: "create", Action: Create, Flags: []cli.Flag{
		&cli.StringFlag{Name: "format", Value: "Harlowe"},
		&cli.StringFlag{Name: "format-version", Value: "3.3.5"},
		&cli.BoolFlag{Name: "overwrite"},
	}}
	if err := runCommand(ctx, sub, "My Grand Adventure", dir); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	path := filepath.Join(dir, "my-grand-adventure.twee")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("story file not created: %v", err)
	}
	story, err := twee.Parse(string(data), zaptest.NewLogger(t))
	if err != nil {
		t.Fatalf("created story does not parse: %v", err)
	}
	if title, _ := story.Title(); title != "My Grand Adventure" {
		t.Fatalf("title mismatch: %q", title)
	}
	if story.Start() == nil {
		t.Fatal("start passage not resolved")
	}
	sd := story.Data()
	if sd == nil || len(sd.IFID) != 36 || sd.IFID != strings.ToUpper(sd.IFID) {
		t.Fatalf("bad story data: %+v", sd)
	}
	if sd.Format != "Harlowe" || sd.FormatVersion != "3.3.5" {
		t.Fatalf("bad format: %+v", sd)
	}
}

func TestCreateRefusesToOverwrite(t *testing.T) {
	ctx := setupTestEnv(t)
	dir := t.TempDir()

	sub := func() *cli.Command {
		return &cli.Command{Name: "create", Action: Create, Flags: []cli.Flag{
			&cli.StringFlag{Name: "format", Value: "Harlowe"},
			&cli.StringFlag{Name: "format-version", Value: "3.3.5"},
			&cli.BoolFlag{Name: "overwrite"},
		}}
	}
	if err := runCommand(ctx, sub(), "Twice", dir); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := runCommand(ctx, sub(), "Twice", dir); err == nil {
		t.Fatal("expected error on existing destination")
	}
	if err := runCommand(ctx, sub(), "--overwrite", "Twice", dir); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
}

func TestInfoAndLinksRun(t *testing.T) {
	ctx := setupTestEnv(t)
	path := writeStory(t, goodStory)

	info := &cli.Command{Name: "info", Action: Info, Flags: []cli.Flag{
		&cli.BoolFlag{Name: "passages", Aliases: []string{"p"}},
	}}
	if err := runCommand(ctx, info, "--passages", path); err != nil {
		t.Fatalf("info failed: %v", err)
	}
	if err := runCommand(ctx, &cli.Command{Name: "links", Action: Links}, path); err != nil {
		t.Fatalf("links failed: %v", err)
	}
}
