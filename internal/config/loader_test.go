package config_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/okian/sheetboard/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()

		convey.Convey("When loading config with defaults only", func() {
			clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9080")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
				convey.So(cfg.CORSAllowedOrigins, convey.ShouldResemble, []string{"*"})
			})

			convey.Convey("And missing credentials should not fail loading", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Credentials().Complete(), convey.ShouldBeFalse)
			})
		})

		convey.Convey("When loading credentials from unprefixed environment variables", func() {
			clearConfigEnvVars()
			_ = os.Setenv("SHEET_ID", "sheet-123")
			_ = os.Setenv("GOOGLE_API_KEY", `"key-456"`)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then the credentials should be populated and normalized", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.SheetID, convey.ShouldEqual, "sheet-123")
				convey.So(cfg.Credentials().APIKey, convey.ShouldEqual, "key-456")
				convey.So(cfg.Credentials().Complete(), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When loading config with prefixed environment variables", func() {
			clearConfigEnvVars()
			_ = os.Setenv("SHEETBOARD_ADDR", ":8080")
			_ = os.Setenv("SHEETBOARD_LOG_LEVEL", "debug")
			_ = os.Setenv("SHEETBOARD_LOG_FORMAT", "json")
			_ = os.Setenv("SHEETBOARD_UPSTREAM_TIMEOUT", "5s")
			_ = os.Setenv("SHEETBOARD_SHEETS_ENDPOINT", "http://localhost:8085/")
			_ = os.Setenv("SHEETBOARD_CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should override defaults with env vars", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
				convey.So(cfg.LogFormat, convey.ShouldEqual, "json")
				convey.So(cfg.UpstreamTimeout, convey.ShouldEqual, 5*time.Second)
				convey.So(cfg.SheetsEndpoint, convey.ShouldEqual, "http://localhost:8085/")
				convey.So(cfg.CORSAllowedOrigins, convey.ShouldResemble, []string{"https://a.example", "https://b.example"})
			})
		})

		convey.Convey("When loading config with YAML file", func() {
			clearConfigEnvVars()
			yamlContent := `
addr: ":9090"
log_level: warn
sheet_id: from-file
google_api_key: file-key
upstream_timeout: 2s
cors_allowed_origins:
  - https://club.example
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("SHEETBOARD_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load from YAML file", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
				convey.So(cfg.LogLevel, convey.ShouldEqual, "warn")
				convey.So(cfg.SheetID, convey.ShouldEqual, "from-file")
				convey.So(cfg.GoogleAPIKey, convey.ShouldEqual, "file-key")
				convey.So(cfg.UpstreamTimeout, convey.ShouldEqual, 2*time.Second)
				convey.So(cfg.CORSAllowedOrigins, convey.ShouldResemble, []string{"https://club.example"})
			})
		})

		convey.Convey("When loading config with both file and environment variables", func() {
			clearConfigEnvVars()
			yamlContent := `
addr: ":9090"
sheet_id: from-file
`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("SHEETBOARD_CONFIG", tmpFile)
			_ = os.Setenv("SHEETBOARD_ADDR", ":8080")
			_ = os.Setenv("SHEET_ID", "from-env")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then environment variables should override file values", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.SheetID, convey.ShouldEqual, "from-env")
			})
		})

		convey.Convey("When loading config with invalid YAML file", func() {
			clearConfigEnvVars()
			tmpFile := createTempConfigFile(`invalid: yaml: content: [`)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("SHEETBOARD_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a load error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with non-existent file", func() {
			clearConfigEnvVars()
			_ = os.Setenv("SHEETBOARD_CONFIG", "/non/existent/file.yaml")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with empty addr", func() {
			clearConfigEnvVars()
			yamlContent := `addr: ""`
			tmpFile := createTempConfigFile(yamlContent)
			defer func() { _ = os.Remove(tmpFile) }()

			_ = os.Setenv("SHEETBOARD_CONFIG", tmpFile)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return a validation error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(err.Error(), convey.ShouldContainSubstring, "addr must not be empty")
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})

		convey.Convey("When loading config with an invalid duration", func() {
			clearConfigEnvVars()
			_ = os.Setenv("SHEETBOARD_UPSTREAM_TIMEOUT", "soon")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then it should return an error", func() {
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})
	})
}

// Helper functions.

func clearConfigEnvVars() {
	envVars := []string{
		"SHEETBOARD_CONFIG",
		"SHEETBOARD_ADDR",
		"SHEETBOARD_LOG_LEVEL",
		"SHEETBOARD_LOG_FORMAT",
		"SHEETBOARD_UPSTREAM_TIMEOUT",
		"SHEETBOARD_SHEETS_ENDPOINT",
		"SHEETBOARD_CORS_ALLOWED_ORIGINS",
		"SHEET_ID",
		"GOOGLE_API_KEY",
	}
	for _, envVar := range envVars {
		_ = os.Unsetenv(envVar)
	}
}

func createTempConfigFile(content string) string {
	tmpFile, err := os.CreateTemp("", "sheetboard-config-*.yaml")
	if err != nil {
		panic(err)
	}

	if _, err := tmpFile.WriteString(content); err != nil {
		panic(err)
	}

	if err := tmpFile.Close(); err != nil {
		panic(err)
	}

	return tmpFile.Name()
}
