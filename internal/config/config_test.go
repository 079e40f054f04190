package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/webfacts/presencescore/internal/model"
)

func TestDefaultCategoryWeightsSumTo100(t *testing.T) {
	t.Parallel()

	total := 0.0
	for _, w := range DefaultCategoryWeights() {
		total += w
	}
	if total != 100 {
		t.Errorf("default category weights sum to %v, want 100", total)
	}
}

func TestDefaultCategoryWeightsCoverAllCategories(t *testing.T) {
	t.Parallel()

	weights := DefaultCategoryWeights()
	for _, c := range model.AllCategories() {
		if _, ok := weights[c]; !ok {
			t.Errorf("category %s has no default weight", c)
		}
	}
}

func TestDefaultTopicWeightsCoverAllTopics(t *testing.T) {
	t.Parallel()

	weights := DefaultTopicWeights()
	for _, topic := range model.AllTopics() {
		if weights[topic] != 1 {
			t.Errorf("topic %s default weight = %v, want 1", topic, weights[topic])
		}
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr error
	}{
		{
			name:    "valid config",
			modify:  func(c *Config) {},
			wantErr: nil,
		},
		{
			name:    "missing snapshot",
			modify:  func(c *Config) { c.SnapshotFile = "" },
			wantErr: ErrNoSnapshot,
		},
		{
			name: "conflicting report formats",
			modify: func(c *Config) {
				c.JSONReport = true
				c.MarkdownReport = true
			},
			wantErr: ErrConflictingReportFormats,
		},
		{
			name: "negative category weight",
			modify: func(c *Config) {
				c.Weights = &File{CategoryWeights: map[string]float64{"findability": -1}}
			},
			wantErr: ErrNegativeWeight,
		},
		{
			name: "all category weights zeroed",
			modify: func(c *Config) {
				zero := make(map[string]float64)
				for _, cat := range model.AllCategories() {
					zero[string(cat)] = 0
				}
				c.Weights = &File{CategoryWeights: zero}
			},
			wantErr: ErrZeroWeightSum,
		},
		{
			name: "negative topic weight",
			modify: func(c *Config) {
				c.Weights = &File{TopicWeights: map[string]float64{"backlinks": -2}}
			},
			wantErr: ErrNegativeWeight,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := NewConfig()
			cfg.SnapshotFile = "findings.json"
			tt.modify(cfg)

			err := cfg.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCategoryWeightsOverride(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()
	cfg.Weights = &File{
		CategoryWeights: map[string]float64{"findability": 50},
	}
	weights := cfg.CategoryWeights()
	if weights[model.CategoryFindability] != 50 {
		t.Errorf("findability weight = %v, want 50", weights[model.CategoryFindability])
	}
	if weights[model.CategoryReputation] != DefaultWeightReputation {
		t.Errorf("reputation weight = %v, want the default", weights[model.CategoryReputation])
	}
}

func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("missing file returns ErrConfigNotFound", func(t *testing.T) {
		t.Parallel()
		_, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("LoadConfigFile() error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("valid file parses", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		content := "categoryWeights:\n  findability: 40\ntopicWeights:\n  backlinks: 2\n"
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}

		cf, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("LoadConfigFile() error = %v", err)
		}
		if cf.CategoryWeights["findability"] != 40 {
			t.Errorf("findability = %v, want 40", cf.CategoryWeights["findability"])
		}
		if cf.TopicWeights["backlinks"] != 2 {
			t.Errorf("backlinks = %v, want 2", cf.TopicWeights["backlinks"])
		}
	})

	t.Run("malformed YAML fails", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		if err := os.WriteFile(path, []byte(":\tnot yaml"), 0o600); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadConfigFile(path); err == nil {
			t.Error("LoadConfigFile() expected an error for malformed YAML")
		}
	})
}

func TestFindConfigFileExplicitPath(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "custom.yml")
	if err := os.WriteFile(path, []byte("{}"), 0o600); err != nil {
		t.Fatal(err)
	}
	if got := FindConfigFile(path); got != path {
		t.Errorf("FindConfigFile(%q) = %q, want the explicit path", path, got)
	}
	if got := FindConfigFile(filepath.Join(t.TempDir(), "missing")); got != "" {
		t.Errorf("FindConfigFile() = %q, want empty for a missing explicit path", got)
	}
}
