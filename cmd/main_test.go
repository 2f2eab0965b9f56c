package main

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/okian/sheetboard/internal/config"
	"github.com/okian/sheetboard/pkg/logger"
	"github.com/okian/sheetboard/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func TestMainConfiguration(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.Convey("When configuration comes from the environment", func() {
			_ = os.Setenv("SHEETBOARD_ADDR", ":8080")
			_ = os.Setenv("SHEET_ID", "sheet-123")
			_ = os.Setenv("GOOGLE_API_KEY", "key-456")
			defer func() {
				_ = os.Unsetenv("SHEETBOARD_ADDR")
				_ = os.Unsetenv("SHEET_ID")
				_ = os.Unsetenv("GOOGLE_API_KEY")
			}()

			convey.Convey("Then configuration should be loadable", func() {
				cfg, err := config.Load(context.Background())
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.Credentials().Complete(), convey.ShouldBeTrue)
			})
		})
	})
}

func TestRun(t *testing.T) {
	convey.Convey("Given a valid configuration", t, func() {
		_ = os.Setenv("SHEETBOARD_ADDR", "127.0.0.1:0")
		defer func() { _ = os.Unsetenv("SHEETBOARD_ADDR") }()

		convey.Convey("When the context is cancelled", func() {
			ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
			defer cancel()

			convey.Convey("Then the server should shut down cleanly", func() {
				convey.So(run(ctx), convey.ShouldBeNil)
			})
		})
	})

	convey.Convey("Given an invalid configuration", t, func() {
		_ = os.Setenv("SHEETBOARD_LOG_FORMAT", "xml")
		defer func() { _ = os.Unsetenv("SHEETBOARD_LOG_FORMAT") }()

		convey.Convey("Then run should fail before listening", func() {
			err := run(context.Background())
			convey.So(err, convey.ShouldNotBeNil)
		})
	})
}

func TestSystemMetrics(t *testing.T) {
	convey.Convey("Given the system metrics updater", t, func() {
		convey.Convey("When the context expires", func() {
			ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
			defer cancel()

			convey.Convey("Then it should return", func() {
				convey.So(func() { startSystemMetricsUpdater(ctx) }, convey.ShouldNotPanic)
			})
		})

		convey.Convey("When updating once", func() {
			updateSystemMetrics()

			convey.Convey("Then the goroutine gauge should be set", func() {
				n, err := testutil.GatherAndCount(metrics.GetRegistry(), "sheetboard_leaderboard_system_goroutines")
				convey.So(err, convey.ShouldBeNil)
				convey.So(n, convey.ShouldEqual, 1)
			})
		})
	})
}
