package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"backends": map[string]any{
			"users": map[string]any{
				"baseUrl": "http://localhost:3001",
			},
			"timeout": "10s",
		},
		"env": map[string]any{
			"serviceName": "agora",
		},
		"jwt": map[string]any{
			"secret": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "BACKENDS_USERS_BASEURL", want: "backends.users.baseUrl"},
		{envKey: "BACKENDS_TIMEOUT", want: "backends.timeout"},
		{envKey: "ENV_SERVICENAME", want: "env.serviceName"},
		{envKey: "JWT_SECRET", want: "jwt.secret"},
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
