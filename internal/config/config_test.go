package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nikolayk812/shopcart/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "shopcart.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		file      string
		env       map[string]string
		want      config.Config
		wantError string
	}{
		{
			name: "env only: ok",
			env: map[string]string{
				"SHOPCART_DATABASE_URL": "postgres://localhost/shop",
			},
			want: config.Config{
				DatabaseURL: "postgres://localhost/shop",
				LogMode:     "development",
				Owner:       "Ewolo",
				Currency:    "USD",
				ListLimit:   10,
			},
		},
		{
			name: "file with env override: ok",
			file: "database_url: postgres://file/shop\nowner: Alice\ncurrency: EUR\nlist_limit: 5\n",
			env: map[string]string{
				"SHOPCART_OWNER":      "Bob",
				"SHOPCART_LOG_MODE":   "production",
				"SHOPCART_LIST_LIMIT": "25",
			},
			want: config.Config{
				DatabaseURL: "postgres://file/shop",
				LogMode:     "production",
				Owner:       "Bob",
				Currency:    "EUR",
				ListLimit:   25,
			},
		},
		{
			name:      "missing database url: error",
			wantError: "database_url is empty",
		},
		{
			name: "non-numeric limit: error",
			env: map[string]string{
				"SHOPCART_DATABASE_URL": "postgres://localhost/shop",
				"SHOPCART_LIST_LIMIT":   "many",
			},
			wantError: `cfg.applyEnv: SHOPCART_LIST_LIMIT[many] is not a number: strconv.Atoi: parsing "many": invalid syntax`,
		},
		{
			name:      "invalid yaml: error",
			file:      "owner: [unterminated",
			wantError: "yaml.Unmarshal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, name := range []string{"DATABASE_URL", "LOG_MODE", "OWNER", "CURRENCY", "LIST_LIMIT"} {
				t.Setenv("SHOPCART_"+name, "")
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			var path string
			if tt.file != "" {
				path = writeFile(t, tt.file)
			}

			cfg, err := config.Load(path)
			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	cfg := config.Default()
	cfg.DatabaseURL = "postgres://localhost/shop"
	require.NoError(t, cfg.Validate())
	assert.Equal(t, currency.USD, cfg.CurrencyUnit())

	cfg.Owner = " "
	cfg.ListLimit = 0
	cfg.Currency = "ZZZ"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "owner is empty")
	assert.Contains(t, err.Error(), "list_limit[0] must be positive")
	assert.Contains(t, err.Error(), "currency[ZZZ] is not valid")
}
