package config

import (
	"strings"
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		Server:   ServerConfig{Port: 8080, ShutdownTimeout: time.Second, RequestTimeout: time.Minute},
		API:      APIConfig{BaseURL: "https://api.example.com/v1", Timeout: time.Second},
		View:     ViewConfig{PageSizes: []int{5, 10, 20}, DefaultPageSize: 10},
		Mutation: MutationConfig{MaxWaitTime: time.Second},
		Rate:     RateLimitConfig{Enabled: true, RequestsPerMinute: 100},
		Logging:  LoggingConfig{Level: "info", Format: "text"},
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want %q", cfg.Server.Host, "0.0.0.0")
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 8080)
	}
	if cfg.API.BaseURL != "https://api.escuelajs.co/api/v1" {
		t.Errorf("API.BaseURL = %q, want default", cfg.API.BaseURL)
	}
	if cfg.View.DefaultPageSize != 10 {
		t.Errorf("View.DefaultPageSize = %d, want %d", cfg.View.DefaultPageSize, 10)
	}
	wantSizes := []int{5, 10, 20, 50}
	if len(cfg.View.PageSizes) != len(wantSizes) {
		t.Fatalf("View.PageSizes = %v, want %v", cfg.View.PageSizes, wantSizes)
	}
	for i, v := range wantSizes {
		if cfg.View.PageSizes[i] != v {
			t.Errorf("View.PageSizes[%d] = %d, want %d", i, cfg.View.PageSizes[i], v)
		}
	}
	if cfg.Mutation.MaxWaitTime != 10*time.Second {
		t.Errorf("Mutation.MaxWaitTime = %v, want %v", cfg.Mutation.MaxWaitTime, 10*time.Second)
	}
}

func TestLoad_OverrideDefaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("VIEW_PAGE_SIZES", "10, 25 ,100")
	t.Setenv("VIEW_DEFAULT_PAGE_SIZE", "25")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 9090)
	}
	if len(cfg.View.PageSizes) != 3 || cfg.View.PageSizes[1] != 25 {
		t.Errorf("View.PageSizes = %v, want [10 25 100]", cfg.View.PageSizes)
	}
	if cfg.View.DefaultPageSize != 25 {
		t.Errorf("View.DefaultPageSize = %d, want %d", cfg.View.DefaultPageSize, 25)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
	}
}

func TestLoad_AltEnvVar(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://localhost:9000/api")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.API.BaseURL != "http://localhost:9000/api" {
		t.Errorf("API.BaseURL = %q, want %q", cfg.API.BaseURL, "http://localhost:9000/api")
	}
}

func TestLoad_Duration(t *testing.T) {
	t.Setenv("SERVER_READ_TIMEOUT", "45s")
	t.Setenv("MUTATION_MAX_WAIT_TIME", "1m30s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.ReadTimeout != 45*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want %v", cfg.Server.ReadTimeout, 45*time.Second)
	}
	if cfg.Mutation.MaxWaitTime != 90*time.Second {
		t.Errorf("Mutation.MaxWaitTime = %v, want %v", cfg.Mutation.MaxWaitTime, 90*time.Second)
	}
}

func TestLoad_InvalidIntegerList(t *testing.T) {
	t.Setenv("VIEW_PAGE_SIZES", "10,ten")

	if _, err := Load(); err == nil {
		t.Fatal("Load() expected error for non-numeric page size")
	}
}

func TestLoad_CommaSeparatedSlice(t *testing.T) {
	t.Setenv("TRUSTED_PROXIES", "10.0.0.0/8, 172.16.0.0/12 , 192.168.0.0/16")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	expected := []string{"10.0.0.0/8", "172.16.0.0/12", "192.168.0.0/16"}
	if len(cfg.Security.TrustedProxies) != len(expected) {
		t.Fatalf("TrustedProxies length = %d, want %d", len(cfg.Security.TrustedProxies), len(expected))
	}
	for i, v := range expected {
		if cfg.Security.TrustedProxies[i] != v {
			t.Errorf("TrustedProxies[%d] = %q, want %q", i, cfg.Security.TrustedProxies[i], v)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid config",
			mutate: func(*Config) {},
		},
		{
			name:    "invalid port",
			mutate:  func(c *Config) { c.Server.Port = 99999 },
			wantErr: "SERVER_PORT",
		},
		{
			name:    "relative API URL",
			mutate:  func(c *Config) { c.API.BaseURL = "/api/v1" },
			wantErr: "PRODUCT_API_URL",
		},
		{
			name:    "zero API timeout",
			mutate:  func(c *Config) { c.API.Timeout = 0 },
			wantErr: "PRODUCT_API_TIMEOUT",
		},
		{
			name:    "default page size not offered",
			mutate:  func(c *Config) { c.View.DefaultPageSize = 15 },
			wantErr: "VIEW_DEFAULT_PAGE_SIZE",
		},
		{
			name:    "non-positive page size",
			mutate:  func(c *Config) { c.View.PageSizes = []int{0, 10} },
			wantErr: "VIEW_PAGE_SIZES",
		},
		{
			name:    "zero mutation wait",
			mutate:  func(c *Config) { c.Mutation.MaxWaitTime = 0 },
			wantErr: "MUTATION_MAX_WAIT_TIME",
		},
		{
			name:    "invalid log level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: "LOG_LEVEL",
		},
		{
			name:    "invalid log format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "LOG_FORMAT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() expected error mentioning %s", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error should mention %s: %v", tt.wantErr, err)
			}
		})
	}
}

func TestServerAddr(t *testing.T) {
	tests := []struct {
		host string
		port int
		want string
	}{
		{"", 8080, ":8080"},
		{"0.0.0.0", 8080, "0.0.0.0:8080"},
		{"127.0.0.1", 3000, "127.0.0.1:3000"},
	}

	for _, tt := range tests {
		cfg := &ServerConfig{Host: tt.host, Port: tt.port}
		if got := cfg.Addr(); got != tt.want {
			t.Errorf("Addr() with host=%q, port=%d = %q, want %q", tt.host, tt.port, got, tt.want)
		}
	}
}

func TestConfigString(t *testing.T) {
	cfg := validConfig()
	str := cfg.String()
	for _, want := range []string{"Port: 8080", "https://api.example.com/v1", "DefaultPageSize: 10"} {
		if !strings.Contains(str, want) {
			t.Errorf("String() = %q, missing %q", str, want)
		}
	}
}
