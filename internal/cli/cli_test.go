package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func execute(args ...string) error {
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(context.Background())
}

func TestCommandTree(t *testing.T) {
	convey.Convey("Given the root command", t, func() {
		names := make(map[string]bool)
		for _, c := range rootCmd.Commands() {
			names[c.Name()] = true
		}

		convey.Convey("Then every operation should be registered", func() {
			for _, want := range []string{"add", "apply", "list", "practice", "progress", "session", "stats"} {
				convey.So(names[want], convey.ShouldBeTrue)
			}
		})
	})
}

func TestCommandsEndToEnd(t *testing.T) {
	convey.Convey("Given a temp storage file", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "mastery.json")
		t.Setenv("MASTERY_DATA_FILE", path)
		loadErr = nil
		force = false

		convey.Convey("When adding a technical skill", func() {
			err := execute("add", "technical", "Go", "-c", "Programming", "-d", "7")

			convey.Convey("Then the collection should be persisted", func() {
				convey.So(err, convey.ShouldBeNil)
				_, statErr := os.Stat(path)
				convey.So(statErr, convey.ShouldBeNil)
			})

			convey.Convey("And a fresh run should see it", func() {
				convey.So(err, convey.ShouldBeNil)
				convey.So(execute("progress", "Go", "80"), convey.ShouldBeNil)
				convey.So(execute("practice", "Go", "12.5"), convey.ShouldBeNil)
				convey.So(execute("list"), convey.ShouldBeNil)
				convey.So(execute("stats"), convey.ShouldBeNil)
			})

			convey.Convey("And adding the same name again should fail", func() {
				convey.So(err, convey.ShouldBeNil)
				dupErr := execute("add", "technical", "Go", "-c", "Programming", "-d", "5")
				convey.So(dupErr, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When logging an application on a soft skill", func() {
			convey.So(execute("add", "soft", "Mentoring", "-c", "Leadership", "-a", "0"), convey.ShouldBeNil)

			convey.Convey("Then apply should succeed", func() {
				convey.So(execute("apply", "Mentoring"), convey.ShouldBeNil)
			})
		})

		convey.Convey("When the storage file is corrupt", func() {
			convey.So(os.WriteFile(path, []byte("garbage"), 0o644), convey.ShouldBeNil)

			convey.Convey("Then read-only commands should still run", func() {
				convey.So(execute("list"), convey.ShouldBeNil)
			})

			convey.Convey("And mutating commands should refuse to overwrite without --force", func() {
				err := execute("add", "technical", "Rust", "-c", "Programming", "-d", "9")
				convey.So(err, convey.ShouldNotBeNil)
			})

			convey.Convey("But --force should allow starting over", func() {
				err := execute("--force", "add", "technical", "Rust", "-c", "Programming", "-d", "9")
				convey.So(err, convey.ShouldBeNil)

				loadErr = nil
				force = false
				convey.So(execute("list"), convey.ShouldBeNil)
			})
		})
	})
}
