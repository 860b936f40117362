package repository

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/chatpick/pkg/domain"
)

func fullSettings() domain.Settings {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
	return domain.Settings{ChatName: "Test Chat", Prefix: "[LOG]", Keywords: []string{"a", "b"}, DateFrom: &from, DateTo: &to}
}

func TestNewFileRepository(t *testing.T) {
	t.Run("creates missing dir", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "dir", "settings.json")
		repo, err := NewFileRepository(path)
		require.NoError(t, err)
		assert.Equal(t, path, repo.Path())
		assert.DirExists(t, filepath.Dir(path))

		exists, err := repo.Exists()
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := NewFileRepository("")
		require.Error(t, err)
	})
}

func TestFileRepository_SaveLoad(t *testing.T) {
	for _, name := range []string{"settings.json", "settings.yml", "settings.yaml", "settings.conf"} {
		t.Run(name, func(t *testing.T) {
			repo, err := NewFileRepository(filepath.Join(t.TempDir(), name))
			require.NoError(t, err)

			require.NoError(t, repo.Save(fullSettings()))
			exists, err := repo.Exists()
			require.NoError(t, err)
			assert.True(t, exists)

			got, err := repo.Load()
			require.NoError(t, err)
			assert.Equal(t, fullSettings(), got)
		})
	}
}

func TestFileRepository_SaveEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	repo, err := NewFileRepository(path)
	require.NoError(t, err)
	require.NoError(t, repo.Save(domain.Settings{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, map[string]any{"chat_name": nil, "prefix": nil, "keywords": []any{}, "date_from": nil, "date_to": nil}, raw)

	got, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, domain.Settings{}, got)
}

func TestFileRepository_EmptyKeywordsReloadAsUnset(t *testing.T) {
	repo, err := NewFileRepository(filepath.Join(t.TempDir(), "settings.json"))
	require.NoError(t, err)
	s := fullSettings()
	s.Keywords = []string{}
	require.NoError(t, repo.Save(s))

	got, err := repo.Load()
	require.NoError(t, err)
	assert.Nil(t, got.Keywords)
}

func TestFileRepository_Load(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    domain.Settings
		wantErr string
		badDate bool
	}{
		{
			name:    "original format with nulls",
			file:    "settings.json",
			content: `{"chat_name": "chat", "prefix": null, "keywords": null, "date_from": "01.02.2024", "date_to": null}`,
			want: func() domain.Settings {
				d := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
				return domain.Settings{ChatName: "chat", DateFrom: &d}
			}(),
		},
		{
			name:    "keywords kept as stored",
			file:    "settings.json",
			content: `{"chat_name": null, "prefix": "p", "keywords": ["Mixed", "x"], "date_from": null, "date_to": null}`,
			want:    domain.Settings{Prefix: "p", Keywords: []string{"Mixed", "x"}},
		},
		{
			name:    "yaml",
			file:    "settings.yml",
			content: "chat_name: chat\nprefix: '>'\nkeywords: [a]\ndate_from: null\ndate_to: \"31.12.2024\"\n",
			want: func() domain.Settings {
				d := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
				return domain.Settings{ChatName: "chat", Prefix: ">", Keywords: []string{"a"}, DateTo: &d}
			}(),
		},
		{
			name:    "bad date_from",
			file:    "settings.json",
			content: `{"chat_name": null, "prefix": null, "keywords": [], "date_from": "2024-01-01", "date_to": null}`,
			wantErr: "date_from",
			badDate: true,
		},
		{
			name:    "bad date_to",
			file:    "settings.json",
			content: `{"chat_name": null, "prefix": null, "keywords": [], "date_from": null, "date_to": "31/12/2024"}`,
			wantErr: "date_to",
			badDate: true,
		},
		{
			name:    "broken json",
			file:    "settings.json",
			content: `{"chat_name": `,
			wantErr: "parse settings",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))
			repo, err := NewFileRepository(path)
			require.NoError(t, err)

			got, err := repo.Load()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				if tt.badDate {
					assert.ErrorIs(t, err, domain.ErrMalformedDate)
				} else {
					assert.NotErrorIs(t, err, domain.ErrMalformedDate)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFileRepository_LoadMissing(t *testing.T) {
	repo, err := NewFileRepository(filepath.Join(t.TempDir(), "settings.json"))
	require.NoError(t, err)
	_, err = repo.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read settings")
}

func TestSchema(t *testing.T) {
	data, err := json.Marshal(Schema())
	require.NoError(t, err)
	for _, key := range []string{"chat_name", "prefix", "keywords", "date_from", "date_to"} {
		assert.Contains(t, string(data), `"`+key+`"`)
	}
}
