package main

import (
	"os"
	"path/filepath"
	"testing"
)

// resetFlags restores global flag state after each test.
func resetFlags(t *testing.T) {
	t.Helper()
	origURL, origFmt := flagURL, flagFmt
	t.Cleanup(func() {
		flagURL = origURL
		flagFmt = origFmt
	})
}

// writeTestConfig writes content to $HOME/.wikigraph/config.yaml under a temp HOME.
func writeTestConfig(t *testing.T, content string) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	if content == "" {
		return
	}
	dir := filepath.Join(home, ".wikigraph")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestResolveConfig(t *testing.T) {
	tests := []struct {
		name    string
		flag    string
		env     string
		config  string
		wantURL string
	}{
		{
			name:    "default when nothing set",
			flag:    defaultURL,
			wantURL: defaultURL,
		},
		{
			name:    "env overrides default",
			flag:    defaultURL,
			env:     "http://env-server:9090",
			config:  "url: http://from-file:8080\n",
			wantURL: "http://env-server:9090",
		},
		{
			name:    "explicit flag wins over env",
			flag:    "http://explicit-flag:1234",
			env:     "http://env-server:9090",
			wantURL: "http://explicit-flag:1234",
		},
		{
			name:    "flat config file",
			flag:    defaultURL,
			config:  "url: http://from-file:8080\n",
			wantURL: "http://from-file:8080",
		},
		{
			name: "active profile",
			flag: defaultURL,
			config: "active_profile: staging\nprofiles:\n" +
				"  default:\n    url: http://default:8000\n" +
				"  staging:\n    url: http://staging:8000\n",
			wantURL: "http://staging:8000",
		},
		{
			name:    "default profile when none active",
			flag:    defaultURL,
			config:  "url: http://flat:1\nprofiles:\n  default:\n    url: http://profile:2\n",
			wantURL: "http://profile:2",
		},
		{
			name:    "malformed yaml ignored",
			flag:    defaultURL,
			config:  "url: [unterminated\n",
			wantURL: defaultURL,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resetFlags(t)
			writeTestConfig(t, tc.config)
			t.Setenv("WIKIGRAPH_URL", tc.env)

			flagURL = tc.flag
			resolveConfig()

			if flagURL != tc.wantURL {
				t.Errorf("flagURL: got %q, want %q", flagURL, tc.wantURL)
			}
		})
	}
}

func TestWriteConfigRoundTrip(t *testing.T) {
	resetFlags(t)
	writeTestConfig(t, "")
	t.Setenv("WIKIGRAPH_URL", "")

	path, err := writeConfig("http://written:7000")
	if err != nil {
		t.Fatalf("writeConfig: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("config permissions: got %o, want 600", perm)
	}

	flagURL = defaultURL
	resolveConfig()
	if flagURL != "http://written:7000" {
		t.Errorf("flagURL after write: got %q", flagURL)
	}
}
