package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/mastery/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func clearConfigEnvVars() {
	for _, key := range []string{
		"MASTERY_CONFIG",
		"MASTERY_LOG_LEVEL",
		"MASTERY_DATA_FILE",
		"MASTERY_METRICS_ADDR",
		"MASTERY_LIST_LIMIT",
	} {
		_ = os.Unsetenv(key)
	}
}

func TestConfigLoader(t *testing.T) {
	convey.Convey("Given a config loader", t, func() {
		ctx := context.Background()
		clearConfigEnvVars()

		convey.Convey("When loading with defaults only", func() {
			cfg, err := config.Load(ctx)

			convey.Convey("Then it should load successfully with defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
				convey.So(cfg.DataFile, convey.ShouldEqual, "mastery.json")
				convey.So(cfg.MetricsAddr, convey.ShouldEqual, "")
				convey.So(cfg.ListLimit, convey.ShouldEqual, 0)
			})
		})

		convey.Convey("When loading with environment variables", func() {
			_ = os.Setenv("MASTERY_LOG_LEVEL", "debug")
			_ = os.Setenv("MASTERY_DATA_FILE", "/tmp/skills.json")
			_ = os.Setenv("MASTERY_METRICS_ADDR", ":9090")
			_ = os.Setenv("MASTERY_LIST_LIMIT", "25")
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then env vars should override defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "debug")
				convey.So(cfg.DataFile, convey.ShouldEqual, "/tmp/skills.json")
				convey.So(cfg.MetricsAddr, convey.ShouldEqual, ":9090")
				convey.So(cfg.ListLimit, convey.ShouldEqual, 25)
			})
		})

		convey.Convey("When loading with a YAML file", func() {
			dir := t.TempDir()
			path := filepath.Join(dir, "mastery.yaml")
			yamlBody := "log_level: warn\ndata_file: custom.json\nlist_limit: 10\n"
			convey.So(os.WriteFile(path, []byte(yamlBody), 0o644), convey.ShouldBeNil)

			_ = os.Setenv("MASTERY_CONFIG", path)
			defer clearConfigEnvVars()

			cfg, err := config.Load(ctx)

			convey.Convey("Then file values should override defaults", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "warn")
				convey.So(cfg.DataFile, convey.ShouldEqual, "custom.json")
				convey.So(cfg.ListLimit, convey.ShouldEqual, 10)
			})

			convey.Convey("And env should take precedence over the file", func() {
				_ = os.Setenv("MASTERY_LOG_LEVEL", "error")

				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.LogLevel, convey.ShouldEqual, "error")
				convey.So(cfg.DataFile, convey.ShouldEqual, "custom.json")
			})
		})

		convey.Convey("When the config file path is bogus", func() {
			_ = os.Setenv("MASTERY_CONFIG", "/nonexistent/mastery.yaml")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)

			convey.Convey("Then loading should fail", func() {
				convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When data_file is blanked out", func() {
			_ = os.Setenv("MASTERY_DATA_FILE", "")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)

			convey.Convey("Then validation should fail", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})

		convey.Convey("When list_limit is negative", func() {
			_ = os.Setenv("MASTERY_LIST_LIMIT", "-5")
			defer clearConfigEnvVars()

			_, err := config.Load(ctx)

			convey.Convey("Then validation should fail", func() {
				convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
			})
		})
	})
}
