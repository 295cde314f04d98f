package config

import "testing"

func TestOverrideFromEnv(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "6432")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("SMTP_HOST", "smtp.internal")
	t.Setenv("SMTP_PORT", "587")
	t.Setenv("IMAP_USER", "inbox@internal")
	t.Setenv("SERVER_PORT", ":9090")

	cfg := &Config{}
	cfg.DB.Host = "localhost"
	cfg.JWT.Secret = "file-secret"
	overrideFromEnv(cfg)

	if cfg.DB.Host != "db.internal" {
		t.Errorf("DB.Host = %q, want db.internal", cfg.DB.Host)
	}
	if cfg.DB.Port != 6432 {
		t.Errorf("DB.Port = %d, want 6432", cfg.DB.Port)
	}
	if cfg.JWT.Secret != "env-secret" {
		t.Errorf("JWT.Secret = %q, want env-secret", cfg.JWT.Secret)
	}
	if cfg.SMTP.Host != "smtp.internal" || cfg.SMTP.Port != 587 {
		t.Errorf("SMTP = %q:%d, want smtp.internal:587", cfg.SMTP.Host, cfg.SMTP.Port)
	}
	if cfg.IMAP.User != "inbox@internal" {
		t.Errorf("IMAP.User = %q, want inbox@internal", cfg.IMAP.User)
	}
	if cfg.Server.Port != ":9090" {
		t.Errorf("Server.Port = %q, want :9090", cfg.Server.Port)
	}
}

func TestOverrideFromEnv_BadPortIgnored(t *testing.T) {
	t.Setenv("DB_PORT", "not-a-number")

	cfg := &Config{}
	cfg.DB.Port = 5432
	overrideFromEnv(cfg)

	if cfg.DB.Port != 5432 {
		t.Errorf("DB.Port = %d, want 5432 (bad value ignored)", cfg.DB.Port)
	}
}
