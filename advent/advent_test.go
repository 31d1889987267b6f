package main

import (
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"testing"

	"github.com/kr/pretty"
)

func TestNameLess(t *testing.T) {
	names := []string{"10a", "2b", "5shell", "1b", "8", "5b", "1a", "5a"}
	sort.Slice(names, func(i, j int) bool { return nameLess(names[i], names[j]) })
	want := []string{"1a", "1b", "2b", "5a", "5b", "5shell", "8", "10a"}
	if diff := pretty.Diff(names, want); len(diff) > 0 {
		t.Errorf("order differs:\n%s", diff)
	}
}

func TestAllDaysRegistered(t *testing.T) {
	for _, name := range []string{
		"1a", "1b", "2a", "2b", "3a", "3b", "4a", "4b",
		"5a", "5b", "5shell", "6a", "6b", "7a", "7b", "8",
	} {
		if _, ok := solutions[name]; !ok {
			t.Errorf("solution %q not registered", name)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	cfg, err := loadConfig(filepath.Join(dir, "missing.ini"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.workers != runtime.NumCPU() || cfg.humanize || cfg.inputDir != "" {
		t.Errorf("defaults: got %+v", cfg)
	}

	path := filepath.Join(dir, "advent.ini")
	const contents = `
[input]
dir = /tmp/inputs

[run]
workers = 3
humanize = true
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	want := config{inputDir: "/tmp/inputs", workers: 3, humanize: true}
	if cfg != want {
		t.Errorf("got %+v; want %+v", cfg, want)
	}

	if err := os.WriteFile(path, []byte("[run]\nworkers = zero\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadConfig(path); err == nil {
		t.Error("bad workers value: got nil error")
	}
}

func TestInputFromDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "day6.txt"), []byte(day6Sample), 0o644); err != nil {
		t.Fatal(err)
	}
	e := &env{day: 6, cfg: config{inputDir: dir}}
	defer e.close()
	got, err := day6a(e)
	if err != nil {
		t.Fatal(err)
	}
	if got != 288 {
		t.Errorf("got %v; want 288", got)
	}
}

func TestFormatAnswer(t *testing.T) {
	for _, tt := range []struct {
		ans   any
		human bool
		want  string
	}{
		{1234567, false, "1234567"},
		{1234567, true, "1,234,567"},
		{uint64(382895070), true, "382,895,070"},
		{uint64(1<<64 - 1), true, "18446744073709551615"},
		{"abc", true, "abc"},
	} {
		if got := formatAnswer(tt.ans, tt.human); got != tt.want {
			t.Errorf("formatAnswer(%v, %t): got %q; want %q", tt.ans, tt.human, got, tt.want)
		}
	}
}

func runSample(t *testing.T, fn solution, input string) any {
	t.Helper()
	e := &env{in: strings.NewReader(input), cfg: config{workers: 2}}
	got, err := fn(e)
	if err != nil {
		t.Fatal(err)
	}
	return got
}
