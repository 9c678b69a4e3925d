package compose

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"golang.org/x/text/encoding/charmap"

	"spt/config"
	"spt/render"
	"spt/state"
)

const runScript = `
title: Demo
runs:
  - text: Alice
    class: strong
  - image: icons/vip.png
    width: 10
messages:
  - user: Bob
    labels: [default]
    content: ": hi"
`

// setupTestEnv creates a test environment with proper context and logger
func setupTestEnv(t *testing.T) (context.Context, *state.LocalEnv) {
	t.Helper()
	logger := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	ctx := state.ContextWithEnv(t.Context())
	env := state.EnvFromContext(ctx)
	env.Log = logger
	env.Cfg = cfg
	return ctx, env
}

func writeFile(t *testing.T, name string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(name), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(name, data, 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func writeZip(t *testing.T, name string, entries map[string][]byte) {
	t.Helper()
	out, err := os.Create(name)
	if err != nil {
		t.Fatalf("create zip: %v", err)
	}
	defer out.Close()
	w := zip.NewWriter(out)
	for entry, data := range entries {
		fw, err := w.Create(entry)
		if err != nil {
			t.Fatalf("create %s: %v", entry, err)
		}
		if _, err := fw.Write(data); err != nil {
			t.Fatalf("write %s: %v", entry, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
}

func readDump(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	return string(data)
}

func TestProcess_SingleFile(t *testing.T) {
	ctx, _ := setupTestEnv(t)
	src, dst := t.TempDir(), t.TempDir()
	writeFile(t, filepath.Join(src, "chat.yaml"), []byte(runScript))
	writeFile(t, filepath.Join(src, "icons", "vip.png"), pngAsset(t, 20, 10))

	if err := process(ctx, filepath.Join(src, "chat.yaml"), dst, config.OutputFmtYaml, zaptest.NewLogger(t)); err != nil {
		t.Fatalf("process() error = %v", err)
	}
	out := readDump(t, filepath.Join(dst, "chat.yaml"))
	for _, want := range []string{"source: chat.yaml", "kind: typeface", "kind: image", "char: B"} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q:\n%s", want, out)
		}
	}
}

func TestProcess_Formats(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "chat.yaml"), []byte(runScript))
	writeFile(t, filepath.Join(src, "icons", "vip.png"), pngAsset(t, 20, 10))

	for _, name := range config.OutputFmtNames() {
		format, _ := config.ParseOutputFmt(name)
		t.Run(name, func(t *testing.T) {
			ctx, _ := setupTestEnv(t)
			dst := t.TempDir()
			if err := process(ctx, filepath.Join(src, "chat.yaml"), dst, format, zaptest.NewLogger(t)); err != nil {
				t.Fatalf("process() error = %v", err)
			}
			data, err := os.ReadFile(filepath.Join(dst, "chat"+format.Ext()))
			if err != nil {
				t.Fatalf("read output: %v", err)
			}
			switch format {
			case config.OutputFmtXhtml:
				if !strings.Contains(string(data), "<title>Demo</title>") || !strings.Contains(string(data), "data:image/png;base64,") {
					t.Errorf("unexpected xhtml:\n%s", data)
				}
			case config.OutputFmtBundle:
				if !strings.HasPrefix(string(data), "PK") {
					t.Error("bundle is not a zip archive")
				}
			case config.OutputFmtIon:
				d, err := render.ReadIon(data)
				if err != nil {
					t.Fatalf("ReadIon() error = %v", err)
				}
				if len(d.Results) != 2 {
					t.Errorf("got %d results, want 2", len(d.Results))
				}
			}
		})
	}
}

func TestProcess_Overwrite(t *testing.T) {
	ctx, env := setupTestEnv(t)
	src, dst := t.TempDir(), t.TempDir()
	writeFile(t, filepath.Join(src, "chat.yaml"), []byte("runs:\n  - text: new"))
	writeFile(t, filepath.Join(dst, "chat.yaml"), []byte("old"))

	log := zaptest.NewLogger(t)
	if err := process(ctx, filepath.Join(src, "chat.yaml"), dst, config.OutputFmtYaml, log); err == nil {
		t.Fatal("expected error for existing output")
	}
	if readDump(t, filepath.Join(dst, "chat.yaml")) != "old" {
		t.Error("existing output modified")
	}

	env.Overwrite = true
	if err := process(ctx, filepath.Join(src, "chat.yaml"), dst, config.OutputFmtYaml, log); err != nil {
		t.Fatalf("process() error = %v", err)
	}
	if !strings.Contains(readDump(t, filepath.Join(dst, "chat.yaml")), "char: n") {
		t.Error("output was not replaced")
	}
}

func TestProcess_Directory(t *testing.T) {
	ctx, _ := setupTestEnv(t)
	src, dst := t.TempDir(), t.TempDir()
	writeFile(t, filepath.Join(src, "a.yaml"), []byte("runs:\n  - text: a"))
	writeFile(t, filepath.Join(src, "nested", "b.yml"), []byte("runs:\n  - text: b"))
	writeFile(t, filepath.Join(src, "notes.txt"), []byte("not a script"))
	writeZip(t, filepath.Join(src, "nested", "pack.zip"), map[string][]byte{
		"c.yaml": []byte("runs:\n  - text: c"),
	})

	if err := process(ctx, src, dst, config.OutputFmtIon, zaptest.NewLogger(t)); err != nil {
		t.Fatalf("process() error = %v", err)
	}
	for _, name := range []string{"a.ion", filepath.Join("nested", "b.ion"), filepath.Join("nested", "c.ion")} {
		if _, err := os.Stat(filepath.Join(dst, name)); err != nil {
			t.Errorf("missing output %s: %v", name, err)
		}
	}
}

func TestProcess_DirectoryNoDirs(t *testing.T) {
	ctx, env := setupTestEnv(t)
	env.NoDirs = true
	src, dst := t.TempDir(), t.TempDir()
	writeFile(t, filepath.Join(src, "nested", "b.yml"), []byte("runs:\n  - text: b"))

	if err := process(ctx, src, dst, config.OutputFmtYaml, zaptest.NewLogger(t)); err != nil {
		t.Fatalf("process() error = %v", err)
	}
	if _, err := os.Stat(filepath.Join(dst, "b.yaml")); err != nil {
		t.Errorf("missing output: %v", err)
	}
}

func TestProcess_PartialFailure(t *testing.T) {
	ctx, _ := setupTestEnv(t)
	src, dst := t.TempDir(), t.TempDir()
	writeFile(t, filepath.Join(src, "good.yaml"), []byte("runs:\n  - text: ok"))
	writeFile(t, filepath.Join(src, "bad.yaml"), []byte("runs:\n  - text: ok\n    color: nope"))
	writeFile(t, filepath.Join(src, "broken.yaml"), []byte("runs: [\n"))

	err := process(ctx, src, dst, config.OutputFmtYaml, zaptest.NewLogger(t))
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "bad.yaml") || !strings.Contains(err.Error(), "broken.yaml") {
		t.Errorf("error does not name failed scripts: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dst, "good.yaml")); err != nil {
		t.Errorf("good script was not processed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dst, "bad.yaml")); err == nil {
		t.Error("output written for failed script")
	}
}

func TestProcess_Archive(t *testing.T) {
	src, dst := t.TempDir(), t.TempDir()
	zipPath := filepath.Join(src, "scripts.zip")
	writeZip(t, zipPath, map[string][]byte{
		"chat/one.yaml":      []byte(runScript),
		"chat/icons/vip.png": pngAsset(t, 20, 10),
		"other/two.yaml":     []byte("runs:\n  - text: two"),
		"readme.txt":         []byte("hello"),
	})

	t.Run("whole archive", func(t *testing.T) {
		ctx, _ := setupTestEnv(t)
		out := filepath.Join(dst, "all")
		if err := process(ctx, zipPath, out, config.OutputFmtYaml, zaptest.NewLogger(t)); err != nil {
			t.Fatalf("process() error = %v", err)
		}
		for _, name := range []string{filepath.Join("chat", "one.yaml"), filepath.Join("other", "two.yaml")} {
			if _, err := os.Stat(filepath.Join(out, name)); err != nil {
				t.Errorf("missing output %s: %v", name, err)
			}
		}
	})

	t.Run("path in archive", func(t *testing.T) {
		ctx, _ := setupTestEnv(t)
		out := filepath.Join(dst, "part")
		if err := process(ctx, filepath.Join(zipPath, "chat"), out, config.OutputFmtYaml, zaptest.NewLogger(t)); err != nil {
			t.Fatalf("process() error = %v", err)
		}
		if _, err := os.Stat(filepath.Join(out, "chat", "one.yaml")); err != nil {
			t.Errorf("missing output: %v", err)
		}
		if _, err := os.Stat(filepath.Join(out, "other")); err == nil {
			t.Error("script outside of requested path processed")
		}
	})
}

func TestProcess_CodePage(t *testing.T) {
	ctx, env := setupTestEnv(t)
	env.CodePage = charmap.Windows1251
	src, dst := t.TempDir(), t.TempDir()

	encoded, err := charmap.Windows1251.NewEncoder().String("runs:\n  - text: Привет")
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	writeFile(t, filepath.Join(src, "ru.yaml"), []byte(encoded))

	if err := process(ctx, filepath.Join(src, "ru.yaml"), dst, config.OutputFmtYaml, zaptest.NewLogger(t)); err != nil {
		t.Fatalf("process() error = %v", err)
	}
	if !strings.Contains(readDump(t, filepath.Join(dst, "ru.yaml")), "char: П") {
		t.Error("script was not decoded from code page")
	}
}

func TestProcess_Errors(t *testing.T) {
	ctx, _ := setupTestEnv(t)
	dir := t.TempDir()
	log := zaptest.NewLogger(t)

	t.Run("nonexistent", func(t *testing.T) {
		if err := process(ctx, "/nonexistent/path/chat.yaml", dir, config.OutputFmtYaml, log); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("not a script", func(t *testing.T) {
		name := filepath.Join(dir, "notes.txt")
		writeFile(t, name, []byte("hello"))
		if err := process(ctx, name, dir, config.OutputFmtYaml, log); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("directory with tail", func(t *testing.T) {
		if err := process(ctx, filepath.Join(dir, "missing", "chat.yaml"), dir, config.OutputFmtYaml, log); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("cancelled", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		if err := process(cctx, dir, dir, config.OutputFmtYaml, log); err == nil {
			t.Error("expected error")
		}
	})
}
