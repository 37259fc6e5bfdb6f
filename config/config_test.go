package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"jwt": map[string]any{
			"expireMinutes": 60,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "JWT_EXPIREMINUTES", want: "jwt.expireMinutes"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestValidate_ProductionRequiresSecret(t *testing.T) {
	cfg := &Config{}
	cfg.Env.Env = "production"

	if err := validate(cfg); err == nil {
		t.Fatal("expected error for empty jwt secret in production")
	}

	cfg.JWT.Secret = DevFallbackSecret
	if err := validate(cfg); err == nil {
		t.Fatal("expected error for dev fallback secret in production")
	}

	cfg.JWT.Secret = "a-real-secret"
	if err := validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_DevAllowsEmptySecret(t *testing.T) {
	cfg := &Config{}
	cfg.Env.Env = "local"

	if err := validate(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.JWT.Algorithm != "HS256" {
		t.Fatalf("default algorithm = %q, want HS256", cfg.JWT.Algorithm)
	}
	if cfg.JWT.ExpireMinutes != 60 {
		t.Fatalf("default expireMinutes = %d, want 60", cfg.JWT.ExpireMinutes)
	}
	if cfg.Summary == nil || !cfg.Summary.Enabled {
		t.Fatal("summary worker should default to enabled")
	}
}
