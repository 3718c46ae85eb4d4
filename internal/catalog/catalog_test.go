package catalog

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileRepository(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		wantErr error
		want    []string
	}{
		{name: "valid", file: "patterns.json", want: []string{"Factory Method", "Abstract Factory"}},
		{name: "missing", file: "missing.json", wantErr: ErrNoFile},
		{name: "empty", file: "empty.json", wantErr: ErrNoData},
		{name: "malformed", file: "broken.json", wantErr: ErrDecoding},
		{name: "unknown category", file: "unknown_category.json", wantErr: ErrDecoding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := FileRepository{Path: filepath.Join("testdata", tt.file)}

			patterns, err := repo.Patterns(context.Background())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, patterns)
				return
			}

			require.NoError(t, err)
			names := make([]string, 0, len(patterns))
			for _, p := range patterns {
				names = append(names, p.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestFileRepository_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := FileRepository{Path: filepath.Join("testdata", "patterns.json")}.Patterns(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestEmbeddedRepository(t *testing.T) {
	patterns, err := EmbeddedRepository{}.Patterns(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, patterns)

	seen := map[Category]bool{}
	for _, p := range patterns {
		assert.NotEmpty(t, p.Name)
		seen[p.Category] = true
	}
	for _, c := range Categories() {
		assert.True(t, seen[c], "no pattern in %s", c)
	}
}

func TestNewRepository(t *testing.T) {
	assert.IsType(t, EmbeddedRepository{}, NewRepository(""))
	assert.Equal(t, FileRepository{Path: "x.json"}, NewRepository("x.json"))
}

func TestCategoryJSON(t *testing.T) {
	var c Category
	require.NoError(t, json.Unmarshal([]byte(`"Behavioral"`), &c))
	assert.Equal(t, Behavioral, c)

	data, err := json.Marshal(Architectural)
	require.NoError(t, err)
	assert.JSONEq(t, `"Architectural"`, string(data))

	assert.Error(t, json.Unmarshal([]byte(`"Concurrency"`), &c))
	assert.Error(t, json.Unmarshal([]byte(`3`), &c))
}

func TestCategorySortOrder(t *testing.T) {
	categories := Categories()
	for i := 1; i < len(categories); i++ {
		assert.Less(t, categories[i-1].SortOrder(), categories[i].SortOrder())
	}
	assert.Equal(t, "Unknown", Category(42).String())
}

func TestDetailsDescription(t *testing.T) {
	p := Pattern{
		Name:             "Adapter",
		ShortDescription: "short",
		Intent:           "intent",
		Applicability:    "applicability",
		Structure:        "structure",
		Participants:     []string{"Target", "Adaptee"},
		Implementation:   "implementation",
	}

	want := "short\nintent\napplicability\nstructure\nPattern participants: \n-Target\n-Adaptee\n\nimplementation"
	assert.Equal(t, want, p.DetailsDescription())

	p.Collaboration = "collaboration"
	assert.Contains(t, p.DetailsDescription(), "-Adaptee\ncollaboration\nimplementation")
}
