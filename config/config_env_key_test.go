package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"storage": map[string]any{
			"namespace": "samma",
			"redis": map[string]any{
				"addr": "localhost:6379",
			},
		},
		"session": map[string]any{
			"welcomeDelay": "500ms",
		},
		"pricing": map[string]any{
			"freeShippingThreshold": 149,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "STORAGE_NAMESPACE", want: "storage.namespace"},
		{envKey: "STORAGE_REDIS_ADDR", want: "storage.redis.addr"},
		{envKey: "SESSION_WELCOMEDELAY", want: "session.welcomeDelay"},
		{envKey: "PRICING_FREESHIPPINGTHRESHOLD", want: "pricing.freeShippingThreshold"},
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
