package config

import "testing"

func TestGetString(t *testing.T) {
	cfg := map[string]string{"PORT": "9090", "EMPTY": ""}

	if got := GetString(cfg, "PORT", "8080"); got != "9090" {
		t.Errorf("GetString(PORT) = %q, want %q", got, "9090")
	}
	if got := GetString(cfg, "MISSING", "fallback"); got != "fallback" {
		t.Errorf("GetString(MISSING) = %q, want %q", got, "fallback")
	}
	// A key present with an empty value wins over the default
	if got := GetString(cfg, "EMPTY", "fallback"); got != "" {
		t.Errorf("GetString(EMPTY) = %q, want empty string", got)
	}
	if got := GetString(nil, "PORT", "8080"); got != "8080" {
		t.Errorf("GetString on nil map = %q, want %q", got, "8080")
	}
}

func TestGetInt(t *testing.T) {
	cfg := map[string]string{"TIMEOUT": "30", "NOT_A_NUMBER": "abc"}

	if got := GetInt(cfg, "TIMEOUT", 180); got != 30 {
		t.Errorf("GetInt(TIMEOUT) = %d, want 30", got)
	}
	if got := GetInt(cfg, "MISSING", 180); got != 180 {
		t.Errorf("GetInt(MISSING) = %d, want 180", got)
	}
	if got := GetInt(cfg, "NOT_A_NUMBER", 180); got != 180 {
		t.Errorf("GetInt(NOT_A_NUMBER) = %d, want 180", got)
	}
}

func TestGetBool(t *testing.T) {
	cfg := map[string]string{"ENABLED": "true", "DISABLED": "0", "GARBAGE": "yep"}

	if !GetBool(cfg, "ENABLED", false) {
		t.Error("GetBool(ENABLED) = false, want true")
	}
	if GetBool(cfg, "DISABLED", true) {
		t.Error("GetBool(DISABLED) = true, want false")
	}
	if !GetBool(cfg, "GARBAGE", true) {
		t.Error("GetBool(GARBAGE) = false, want the default true")
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		entry string
		key   string
		value string
	}{
		{"PORT=8080", "PORT", "8080"},
		{"DSN=host=localhost port=5432", "DSN", "host=localhost port=5432"},
		{"FLAG", "FLAG", ""},
		{"EMPTY=", "EMPTY", ""},
	}

	for _, tt := range tests {
		key, value := split(tt.entry)
		if key != tt.key || value != tt.value {
			t.Errorf("split(%q) = (%q, %q), want (%q, %q)", tt.entry, key, value, tt.key, tt.value)
		}
	}
}
