package loader

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
	"time"
)

// MemFS is an in-memory file system for testing.
type MemFS struct {
	files map[string][]byte
}

func NewMemFS() *MemFS {
	return &MemFS{files: make(map[string][]byte)}
}

func (m *MemFS) AddFile(path string, content string) {
	m.files[path] = []byte(content)
}

func (m *MemFS) ReadFile(path string) ([]byte, error) {
	data, ok := m.files[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return data, nil
}

func (m *MemFS) Stat(path string) (fs.FileInfo, error) {
	if _, ok := m.files[path]; ok {
		return &memFileInfo{name: path}, nil
	}
	return nil, fs.ErrNotExist
}

type memFileInfo struct {
	name string
}

func (f *memFileInfo) Name() string       { return f.name }
func (f *memFileInfo) Size() int64        { return 0 }
func (f *memFileInfo) Mode() fs.FileMode  { return 0644 }
func (f *memFileInfo) ModTime() time.Time { return time.Now() }
func (f *memFileInfo) IsDir() bool        { return false }
func (f *memFileInfo) Sys() any           { return nil }

func TestTOMLLoader_Load(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/config.toml", `
undo_levels = 50
system_clipboard = true

[keymaps.normal]
"Ctrl+s" = "save_file"
`)

	config, err := NewTOMLLoaderWithFS(memfs, "/config.toml").Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if config["undo_levels"] != int64(50) {
		t.Errorf("undo_levels = %v (%T), want 50", config["undo_levels"], config["undo_levels"])
	}
	if config["system_clipboard"] != true {
		t.Errorf("system_clipboard = %v, want true", config["system_clipboard"])
	}

	keymaps, ok := config["keymaps"].(map[string]any)
	if !ok {
		t.Fatalf("keymaps is %T", config["keymaps"])
	}
	normal, ok := keymaps["normal"].(map[string]any)
	if !ok || normal["Ctrl+s"] != "save_file" {
		t.Errorf("keymaps.normal = %v", keymaps["normal"])
	}
}

func TestTOMLLoader_LoadNonExistent(t *testing.T) {
	config, err := NewTOMLLoaderWithFS(NewMemFS(), "/missing.toml").Load()
	if err != nil {
		t.Errorf("Load() error = %v, want nil", err)
	}
	if config != nil {
		t.Errorf("Load() = %v, want nil", config)
	}
}

func TestTOMLLoader_LoadInvalid(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/bad.toml", "undo_levels = = 3\n")

	_, err := NewTOMLLoaderWithFS(memfs, "/bad.toml").Load()
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("Load() error = %v, want *ParseError", err)
	}
	if perr.Path != "/bad.toml" {
		t.Errorf("Path = %q", perr.Path)
	}
	if perr.Line != 1 {
		t.Errorf("Line = %d, want 1", perr.Line)
	}
}

func TestYAMLLoader_Load(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/config.yaml", `
indent_unit: "\t"
sequence_timeout: 500ms
keymaps:
  insert:
    Ctrl+h: delete_char
`)

	config, err := NewYAMLLoaderWithFS(memfs, "/config.yaml").Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if config["indent_unit"] != "\t" {
		t.Errorf("indent_unit = %q", config["indent_unit"])
	}
	if config["sequence_timeout"] != "500ms" {
		t.Errorf("sequence_timeout = %v", config["sequence_timeout"])
	}
	keymaps := config["keymaps"].(map[string]any)
	insert := keymaps["insert"].(map[string]any)
	if insert["Ctrl+h"] != "delete_char" {
		t.Errorf("keymaps.insert = %v", insert)
	}
}

func TestYAMLLoader_LoadFromReader(t *testing.T) {
	_, err := NewYAMLLoader("").LoadFromReader(strings.NewReader("a: [1, 2\n"))
	var perr *ParseError
	if !errors.As(err, &perr) || perr.Path != "<reader>" {
		t.Errorf("LoadFromReader() error = %v, want ParseError from <reader>", err)
	}
}

func TestForPath(t *testing.T) {
	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{"a.toml", "toml", false},
		{"a.YAML", "yaml", false},
		{"a.yml", "yaml", false},
		{"a.json", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			l, err := ForPath(nil, tt.path)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedFormat) {
					t.Errorf("ForPath() error = %v, want ErrUnsupportedFormat", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ForPath() error = %v", err)
			}
			switch l.(type) {
			case *TOMLLoader:
				if tt.want != "toml" {
					t.Errorf("got TOML loader for %s", tt.path)
				}
			case *YAMLLoader:
				if tt.want != "yaml" {
					t.Errorf("got YAML loader for %s", tt.path)
				}
			}
		})
	}
}

func TestEnvLoader(t *testing.T) {
	l := NewEnvLoader("MODALKIT_")
	l.environ = func() []string {
		return []string{
			"HOME=/root",
			"MODALKIT_UNDO_LEVELS=20",
			"MODALKIT_SYSTEM_CLIPBOARD=yes",
			"MODALKIT_LOG_LEVEL=debug",
			"MODALKIT_KEYMAPS=ignored",
		}
	}

	config, err := l.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(config) != 3 {
		t.Errorf("len(config) = %d, want 3: %v", len(config), config)
	}
	if config["undo_levels"] != int64(20) || config["system_clipboard"] != true || config["log_level"] != "debug" {
		t.Errorf("config = %v", config)
	}
}

func TestDeepMerge(t *testing.T) {
	dst := map[string]any{
		"undo_levels": 10,
		"keymaps":     map[string]any{"normal": map[string]any{"j": "cursor_down"}},
	}
	src := map[string]any{
		"undo_levels": 20,
		"keymaps":     map[string]any{"normal": map[string]any{"k": "cursor_up"}},
	}

	got := DeepMerge(dst, src)
	if got["undo_levels"] != 20 {
		t.Errorf("undo_levels = %v", got["undo_levels"])
	}
	normal := got["keymaps"].(map[string]any)["normal"].(map[string]any)
	if normal["j"] != "cursor_down" || normal["k"] != "cursor_up" {
		t.Errorf("normal = %v", normal)
	}
}
