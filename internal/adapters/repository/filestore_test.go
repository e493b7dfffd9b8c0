package repository_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	repository "github.com/okian/mastery/internal/adapters/repository"
	skill "github.com/okian/mastery/internal/domain/skill"
	. "github.com/smartystreets/goconvey/convey"
)

func TestFileStoreLoad(t *testing.T) {
	Convey("Given a file store", t, func() {
		ctx := context.Background()
		dir := t.TempDir()
		path := filepath.Join(dir, "mastery.json")
		store := repository.NewFileStore(repository.WithPath(path))

		Convey("When the storage file does not exist", func() {
			skills, err := store.Load(ctx)

			Convey("Then it should yield an empty collection, not an error", func() {
				So(err, ShouldBeNil)
				So(skills, ShouldBeEmpty)
			})
		})

		Convey("When the file is not valid JSON", func() {
			So(os.WriteFile(path, []byte("not json at all"), 0o644), ShouldBeNil)

			_, err := store.Load(ctx)

			Convey("Then it should fail with corrupt data", func() {
				So(errors.Is(err, repository.ErrCorruptData), ShouldBeTrue)
			})
		})

		Convey("When the file holds an object instead of an array", func() {
			So(os.WriteFile(path, []byte(`{"skills": []}`), 0o644), ShouldBeNil)

			_, err := store.Load(ctx)

			Convey("Then it should fail with corrupt data", func() {
				So(errors.Is(err, repository.ErrCorruptData), ShouldBeTrue)
			})
		})

		Convey("When a record carries an unrecognized skillType", func() {
			payload := `[
  {"name": "Go", "category": "Programming", "progress": 10, "practiceHours": 1, "skillType": "technical", "difficulty": 5},
  {"name": "Mystery", "category": "Unknown", "progress": 10, "practiceHours": 1, "skillType": "hybrid"}
]`
			So(os.WriteFile(path, []byte(payload), 0o644), ShouldBeNil)

			skills, err := store.Load(ctx)

			Convey("Then the whole load should fail rather than dropping the record", func() {
				So(errors.Is(err, repository.ErrCorruptData), ShouldBeTrue)
				So(skills, ShouldBeNil)
			})
		})

		Convey("When two records share a name", func() {
			payload := `[
  {"name": "Go", "category": "Programming", "progress": 10, "practiceHours": 1, "skillType": "technical", "difficulty": 5},
  {"name": "Go", "category": "Programming", "progress": 20, "practiceHours": 2, "skillType": "technical", "difficulty": 6}
]`
			So(os.WriteFile(path, []byte(payload), 0o644), ShouldBeNil)

			_, err := store.Load(ctx)

			Convey("Then the load should fail with corrupt data", func() {
				So(errors.Is(err, repository.ErrCorruptData), ShouldBeTrue)
			})
		})

		Convey("When a minimal version-0 record omits id and timestamps", func() {
			payload := `[{"name": "Go", "category": "Programming", "progress": 50, "practiceHours": 10, "skillType": "technical", "difficulty": 7}]`
			So(os.WriteFile(path, []byte(payload), 0o644), ShouldBeNil)

			skills, err := store.Load(ctx)

			Convey("Then it should load and backfill an id", func() {
				So(err, ShouldBeNil)
				So(skills, ShouldHaveLength, 1)
				So(skills[0].ID(), ShouldNotBeEmpty)
				So(skills[0].Name(), ShouldEqual, "Go")
			})
		})
	})
}

func TestFileStoreSave(t *testing.T) {
	Convey("Given a file store and a small collection", t, func() {
		ctx := context.Background()
		dir := t.TempDir()
		path := filepath.Join(dir, "mastery.json")
		store := repository.NewFileStore(repository.WithPath(path))

		tech, err := skill.NewTechnical("Go", "Programming", 7)
		So(err, ShouldBeNil)
		So(tech.UpdateProgress(80), ShouldBeNil)
		So(tech.LogPractice(40), ShouldBeNil)

		soft, err := skill.NewSoft("Public Speaking", "Communication", 10)
		So(err, ShouldBeNil)
		So(soft.UpdateProgress(60), ShouldBeNil)
		So(soft.LogPractice(25), ShouldBeNil)

		skills := []skill.Skill{tech, soft}

		Convey("When saving and loading back", func() {
			So(store.Save(ctx, skills), ShouldBeNil)
			loaded, err := store.Load(ctx)

			Convey("Then the collection should round-trip in order", func() {
				So(err, ShouldBeNil)
				So(loaded, ShouldHaveLength, 2)
				So(loaded[0].Name(), ShouldEqual, "Go")
				So(loaded[1].Name(), ShouldEqual, "Public Speaking")
			})

			Convey("And every computed score should survive", func() {
				So(err, ShouldBeNil)
				So(loaded[0].MasteryScore(), ShouldAlmostEqual, tech.MasteryScore(), 1e-9)
				So(loaded[1].MasteryScore(), ShouldAlmostEqual, soft.MasteryScore(), 1e-9)
			})

			Convey("And no temporary file should linger", func() {
				_, statErr := os.Stat(path + ".tmp")
				So(os.IsNotExist(statErr), ShouldBeTrue)
			})
		})

		Convey("When saving an empty collection", func() {
			So(store.Save(ctx, nil), ShouldBeNil)
			loaded, err := store.Load(ctx)

			Convey("Then loading back should yield an empty collection", func() {
				So(err, ShouldBeNil)
				So(loaded, ShouldBeEmpty)
			})
		})

		Convey("When the temporary file cannot be written", func() {
			So(store.Save(ctx, skills), ShouldBeNil)
			before, err := os.ReadFile(path)
			So(err, ShouldBeNil)

			// A directory squatting on the temp path makes the write fail.
			So(os.Mkdir(path+".tmp", 0o755), ShouldBeNil)
			saveErr := store.Save(ctx, skills)

			Convey("Then it should fail with a persistence error", func() {
				So(errors.Is(saveErr, repository.ErrPersistence), ShouldBeTrue)
			})

			Convey("And the prior file should remain intact", func() {
				after, err := os.ReadFile(path)
				So(err, ShouldBeNil)
				So(string(after), ShouldEqual, string(before))
			})
		})

		Convey("When the target directory does not exist", func() {
			ghost := repository.NewFileStore(repository.WithPath(filepath.Join(dir, "missing", "mastery.json")))
			err := ghost.Save(ctx, skills)

			Convey("Then it should fail with a persistence error", func() {
				So(errors.Is(err, repository.ErrPersistence), ShouldBeTrue)
			})
		})
	})
}
