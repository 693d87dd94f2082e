package cache

import (
	"encoding/json"
	"testing"
	"time"
)

func TestConfig_UnmarshalJSON_DurationStrings(t *testing.T) {
	tests := []struct {
		name     string
		jsonData string
		want     Config
		wantErr  bool
	}{
		{
			name: "duration strings",
			jsonData: `{
				"enabled": true,
				"max_size": 10000,
				"ttl": "1h",
				"cleanup_interval": "5m"
			}`,
			want: Config{
				Enabled:         true,
				MaxSize:         10000,
				TTL:             1 * time.Hour,
				CleanupInterval: 5 * time.Minute,
			},
			wantErr: false,
		},
		{
			name: "integer nanoseconds",
			jsonData: `{
				"enabled": true,
				"max_size": 100,
				"ttl": 3600000000000,
				"cleanup_interval": 300000000000
			}`,
			want: Config{
				Enabled:         true,
				MaxSize:         100,
				TTL:             1 * time.Hour,
				CleanupInterval: 5 * time.Minute,
			},
			wantErr: false,
		},
		{
			name: "mixed formats",
			jsonData: `{
				"enabled": true,
				"max_size": 500,
				"ttl": "2h30m",
				"cleanup_interval": 60000000000
			}`,
			want: Config{
				Enabled:         true,
				MaxSize:         500,
				TTL:             2*time.Hour + 30*time.Minute,
				CleanupInterval: 1 * time.Minute,
			},
			wantErr: false,
		},
		{
			name: "invalid duration string",
			jsonData: `{
				"enabled": true,
				"ttl": "invalid"
			}`,
			wantErr: true,
		},
		{
			name: "minimal config",
			jsonData: `{
				"enabled": false
			}`,
			want: Config{
				Enabled: false,
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Config
			err := json.Unmarshal([]byte(tt.jsonData), &got)

			if (err != nil) != tt.wantErr {
				t.Errorf("Config.UnmarshalJSON() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr {
				if got.Enabled != tt.want.Enabled {
					t.Errorf("Enabled = %v, want %v", got.Enabled, tt.want.Enabled)
				}
				if got.MaxSize != tt.want.MaxSize {
					t.Errorf("MaxSize = %v, want %v", got.MaxSize, tt.want.MaxSize)
				}
				if got.TTL != tt.want.TTL {
					t.Errorf("TTL = %v, want %v", got.TTL, tt.want.TTL)
				}
				if got.CleanupInterval != tt.want.CleanupInterval {
					t.Errorf("CleanupInterval = %v, want %v", got.CleanupInterval, tt.want.CleanupInterval)
				}
			}
		})
	}
}

func TestConfig_UnmarshalJSON_ScorePoolExample(t *testing.T) {
	// The similarity score pool as it appears in deployed config
	jsonData := `{
		"enabled": true,
		"max_size": 10000,
		"ttl": "1h",
		"cleanup_interval": "5m"
	}`

	var cfg Config
	if err := json.Unmarshal([]byte(jsonData), &cfg); err != nil {
		t.Fatalf("UnmarshalJSON() failed: %v", err)
	}

	if cfg.TTL != 1*time.Hour {
		t.Errorf("TTL = %v, want 1h", cfg.TTL)
	}

	if cfg.CleanupInterval != 5*time.Minute {
		t.Errorf("CleanupInterval = %v, want 5m", cfg.CleanupInterval)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() failed: %v", err)
	}
}

func TestConfig_Defaults(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should validate, got %v", err)
	}
	if !cfg.Enabled {
		t.Error("DefaultConfig should be enabled")
	}
	if cfg.MaxSize <= 0 || cfg.TTL <= 0 || cfg.CleanupInterval <= 0 {
		t.Errorf("DefaultConfig has non-positive bounds: %+v", cfg)
	}
}
