package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"dbname":  "newsbite",
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"token": map[string]any{
			"accessTTL": "60m",
		},
		"rateLimit": map[string]any{
			"perMinute": 60,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_DBNAME", want: "postgres.dbname"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "TOKEN_ACCESSTTL", want: "token.accessTTL"},
		{envKey: "RATELIMIT_PERMINUTE", want: "rateLimit.perMinute"},
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
