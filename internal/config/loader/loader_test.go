package loader

import (
	"errors"
	"io/fs"
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
func (f *memFileInfo) ModTime() time.Time { return time.Time{} }
func (f *memFileInfo) IsDir() bool        { return false }
func (f *memFileInfo) Sys() any           { return nil }

func TestForFile(t *testing.T) {
	memfs := NewMemFS()

	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{"/a/config.toml", "toml", false},
		{"/a/config.TOML", "toml", false},
		{"/a/config.yaml", "yaml", false},
		{"/a/config.yml", "yaml", false},
		{"/a/config.json", "", true},
		{"/a/config", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			l, err := ForFile(memfs, tt.path)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ForFile(%q) expected error", tt.path)
				}
				return
			}
			if err != nil {
				t.Fatalf("ForFile(%q) error: %v", tt.path, err)
			}
			var got string
			switch l.(type) {
			case *TOMLLoader:
				got = "toml"
			case *YAMLLoader:
				got = "yaml"
			}
			if got != tt.want {
				t.Errorf("ForFile(%q) = %s loader, want %s", tt.path, got, tt.want)
			}
		})
	}
}

func TestParseError_Error(t *testing.T) {
	tests := []struct {
		err  *ParseError
		want string
	}{
		{&ParseError{Path: "c.toml", Line: 3, Column: 7, Message: "bad"}, "parse error in c.toml at line 3, column 7: bad"},
		{&ParseError{Path: "c.toml", Line: 3, Message: "bad"}, "parse error in c.toml at line 3: bad"},
		{&ParseError{Path: "c.toml", Message: "bad"}, "parse error in c.toml: bad"},
	}

	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("Error() = %q, want %q", got, tt.want)
		}
	}

	inner := errors.New("inner")
	pe := &ParseError{Path: "x", Err: inner}
	if !errors.Is(pe, inner) {
		t.Error("ParseError should unwrap to its cause")
	}
}

func TestDeepMerge(t *testing.T) {
	dst := map[string]any{
		"dispatcher": map[string]any{
			"delay":   "1s",
			"metrics": false,
		},
		"logging": map[string]any{
			"level": "warn",
		},
	}
	src := map[string]any{
		"dispatcher": map[string]any{
			"delay": "250ms",
		},
		"actuator": map[string]any{
			"backend": "trace",
		},
	}

	got := DeepMerge(dst, src)

	dispatcher := got["dispatcher"].(map[string]any)
	if dispatcher["delay"] != "250ms" {
		t.Errorf("dispatcher.delay = %v, want 250ms", dispatcher["delay"])
	}
	if dispatcher["metrics"] != false {
		t.Errorf("dispatcher.metrics = %v, want false (kept from dst)", dispatcher["metrics"])
	}
	if got["logging"].(map[string]any)["level"] != "warn" {
		t.Error("logging.level should be kept from dst")
	}
	if got["actuator"].(map[string]any)["backend"] != "trace" {
		t.Error("actuator.backend should be added from src")
	}
}

func TestDeepMerge_ReplacesNonMaps(t *testing.T) {
	dst := map[string]any{"dispatcher": "scalar"}
	src := map[string]any{"dispatcher": map[string]any{"delay": "1s"}}

	got := DeepMerge(dst, src)
	if _, ok := got["dispatcher"].(map[string]any); !ok {
		t.Errorf("dispatcher = %T, want map", got["dispatcher"])
	}
}

func TestDeepMerge_Nil(t *testing.T) {
	if got := DeepMerge(nil, nil); got == nil || len(got) != 0 {
		t.Errorf("DeepMerge(nil, nil) = %v, want empty map", got)
	}

	dst := map[string]any{"a": 1}
	if got := DeepMerge(dst, nil); got["a"] != 1 {
		t.Errorf("DeepMerge(dst, nil) = %v", got)
	}
}
