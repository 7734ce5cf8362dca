package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load 应成功: %v", err)
	}
	if cfg.Server.Port != 5000 {
		t.Errorf("期望默认端口 5000，实际=%d", cfg.Server.Port)
	}
	if cfg.Database.Path != "campus_events.db" {
		t.Errorf("期望默认 db.path=campus_events.db，实际=%s", cfg.Database.Path)
	}
	if cfg.Report.TopActiveDefault != 3 {
		t.Errorf("期望 top_active_default=3，实际=%d", cfg.Report.TopActiveDefault)
	}
	if cfg.RateLimit.Window != time.Minute {
		t.Errorf("期望 rate_limit.window=1m，实际=%s", cfg.RateLimit.Window)
	}
	if !cfg.Feature.StrictRating {
		t.Error("期望 strict_rating 默认开启")
	}
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.yaml")
	content := "server:\n  port: 8088\ndb:\n  path: /tmp/events.db\nlog:\n  level: debug\n"
	if err := os.WriteFile(file, []byte(content), 0o600); err != nil {
		t.Fatalf("写入配置文件失败: %v", err)
	}
	t.Setenv("CAMPUS_LOG_LEVEL", "warn")

	cfg, err := Load(file)
	if err != nil {
		t.Fatalf("Load 应成功: %v", err)
	}
	if cfg.Server.Port != 8088 {
		t.Errorf("期望文件端口 8088，实际=%d", cfg.Server.Port)
	}
	if cfg.Database.Path != "/tmp/events.db" {
		t.Errorf("期望 db.path=/tmp/events.db，实际=%s", cfg.Database.Path)
	}
	// 环境变量优先于配置文件
	if cfg.Log.Level != "warn" {
		t.Errorf("期望 log.level=warn，实际=%s", cfg.Log.Level)
	}
}

func TestLoad_PortEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "7001")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load 应成功: %v", err)
	}
	if cfg.Server.Port != 7001 {
		t.Errorf("期望 PORT 生效 7001，实际=%d", cfg.Server.Port)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:   ServerConfig{Port: 5000},
			Database: DatabaseConfig{Path: "x.db"},
			Report:   ReportConfig{TopActiveDefault: 3, TopActiveMax: 100},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"合法配置", func(c *Config) {}, false},
		{"端口越界", func(c *Config) { c.Server.Port = 70000 }, true},
		{"端口为0", func(c *Config) { c.Server.Port = 0 }, true},
		{"数据库路径为空", func(c *Config) { c.Database.Path = " " }, true},
		{"默认条数为0", func(c *Config) { c.Report.TopActiveDefault = 0 }, true},
		{"上限小于默认", func(c *Config) { c.Report.TopActiveMax = 2 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() err=%v, wantErr=%v", err, tt.wantErr)
			}
		})
	}
}

func TestDatabaseConfig_DSN(t *testing.T) {
	file := DatabaseConfig{Path: "campus.db", BusyTimeoutMS: 5000}
	dsn := file.DSN()
	for _, want := range []string{"campus.db?", "_foreign_keys=on", "_busy_timeout=5000", "_journal_mode=WAL"} {
		if !strings.Contains(dsn, want) {
			t.Errorf("DSN %q 缺少 %q", dsn, want)
		}
	}

	mem := DatabaseConfig{Path: ":memory:"}
	if !mem.IsMemory() {
		t.Error("期望 :memory: 识别为内存数据库")
	}
	if strings.Contains(mem.DSN(), "_journal_mode") {
		t.Errorf("内存数据库不应设置 WAL: %s", mem.DSN())
	}

	uri := DatabaseConfig{Path: "file:test?mode=memory&cache=shared"}
	if !strings.Contains(uri.DSN(), "cache=shared&_foreign_keys=on") {
		t.Errorf("已有查询参数时应使用 & 拼接: %s", uri.DSN())
	}
}
