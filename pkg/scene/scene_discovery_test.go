package scene

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestTitleCase(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"box-spiral", "Box Spiral"},
		{"sphere_grid", "Sphere Grid"},
		{"my-custom-scene", "My Custom Scene"},
		{"simple", "Simple"},
		{"UPPER-case", "Upper Case"},
		{"", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			result := titleCase(tc.input)
			if result != tc.expected {
				t.Errorf("titleCase(%q) = %q, want %q", tc.input, result, tc.expected)
			}
		})
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

func TestDiscoverSceneFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.xml"), "<scene/>")
	writeFile(t, filepath.Join(dir, "a.xml"), "<scene/>")
	writeFile(t, filepath.Join(dir, "C.XML"), "<scene/>")
	writeFile(t, filepath.Join(dir, "notes.txt"), "not a scene")
	if err := os.Mkdir(filepath.Join(dir, "nested.xml"), 0755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	t.Run("directory", func(t *testing.T) {
		files, err := DiscoverSceneFiles(dir)
		if err != nil {
			t.Fatalf("DiscoverSceneFiles() error: %v", err)
		}
		expected := []string{
			filepath.Join(dir, "C.XML"),
			filepath.Join(dir, "a.xml"),
			filepath.Join(dir, "b.xml"),
		}
		if !reflect.DeepEqual(files, expected) {
			t.Errorf("DiscoverSceneFiles() = %v, want %v", files, expected)
		}
	})

	t.Run("single file", func(t *testing.T) {
		// Files are returned as given, whatever their extension
		path := filepath.Join(dir, "notes.txt")
		files, err := DiscoverSceneFiles(path)
		if err != nil {
			t.Fatalf("DiscoverSceneFiles() error: %v", err)
		}
		if !reflect.DeepEqual(files, []string{path}) {
			t.Errorf("DiscoverSceneFiles() = %v, want [%s]", files, path)
		}
	})

	t.Run("missing path", func(t *testing.T) {
		if _, err := DiscoverSceneFiles(filepath.Join(dir, "missing")); err == nil {
			t.Error("Expected error for missing path")
		}
	})

	t.Run("empty directory", func(t *testing.T) {
		files, err := DiscoverSceneFiles(t.TempDir())
		if err != nil {
			t.Fatalf("DiscoverSceneFiles() error: %v", err)
		}
		if len(files) != 0 {
			t.Errorf("Expected no files, got %v", files)
		}
	})
}

func TestParseSceneMetadata(t *testing.T) {
	testCases := []struct {
		name     string
		content  string
		expected SceneInfo
	}{
		{
			name: "complete_metadata.xml",
			content: `<?xml version="1.0" encoding="UTF-8" ?>
<!-- Scene: Box Spiral -->
<!-- Description: Fifty boxes on a spiral -->
<!-- Group: Generated -->
<scene>
  <image>800 600</image>
</scene>`,
			expected: SceneInfo{
				ID:          "xml:complete_metadata",
				Name:        "Box Spiral",
				Description: "Fifty boxes on a spiral",
				Group:       "Generated",
				Type:        "xml",
			},
		},
		{
			name: "partial_metadata.xml",
			content: `<!-- Description: Just a sphere -->
<scene/>`,
			expected: SceneInfo{
				ID:          "xml:partial_metadata",
				Name:        "Partial Metadata",
				Description: "Just a sphere",
				Group:       "Scene Files",
				Type:        "xml",
			},
		},
		{
			name: "late_comment.xml",
			content: `<scene>
<!-- Scene: Ignored -->
</scene>`,
			expected: SceneInfo{
				ID:    "xml:late_comment",
				Name:  "Late Comment",
				Group: "Scene Files",
				Type:  "xml",
			},
		},
	}

	dir := t.TempDir()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name)
			writeFile(t, path, tc.content)

			info, err := ParseSceneMetadata(path)
			if err != nil {
				t.Fatalf("ParseSceneMetadata() error: %v", err)
			}

			tc.expected.FilePath = path
			if info != tc.expected {
				t.Errorf("ParseSceneMetadata() = %+v, want %+v", info, tc.expected)
			}
		})
	}
}

func TestListXMLScenes_MissingDirectory(t *testing.T) {
	scenes, err := ListXMLScenes(filepath.Join(t.TempDir(), "missing"))
	if err != nil {
		t.Errorf("ListXMLScenes() error: %v", err)
	}
	if scenes == nil || len(scenes) != 0 {
		t.Errorf("ListXMLScenes() = %v, expected empty slice", scenes)
	}
}

func TestListAllScenes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "zeta.xml"), "<!-- Group: Alpha -->\n<scene/>")
	writeFile(t, filepath.Join(dir, "spiral.xml"), "<scene/>")

	response, err := ListAllScenes(dir)
	if err != nil {
		t.Fatalf("ListAllScenes() error: %v", err)
	}

	var groupNames []string
	for _, group := range response.Groups {
		groupNames = append(groupNames, group.Name)
	}
	expectedGroups := []string{BuiltinGroup, "Alpha", "Scene Files"}
	if !reflect.DeepEqual(groupNames, expectedGroups) {
		t.Fatalf("Groups = %v, want %v", groupNames, expectedGroups)
	}

	builtIn := response.Groups[0]
	if len(builtIn.Scenes) != len(BuiltinSceneNames()) {
		t.Errorf("Built-in scenes count = %d, want %d", len(builtIn.Scenes), len(BuiltinSceneNames()))
	}
	for _, info := range builtIn.Scenes {
		if info.Type != "builtin" {
			t.Errorf("Built-in scene %s has type %q", info.ID, info.Type)
		}
	}

	if got := response.Groups[2].Scenes[0].ID; got != "xml:spiral" {
		t.Errorf("Scene file ID = %q, want xml:spiral", got)
	}
}
