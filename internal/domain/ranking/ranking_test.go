package ranking_test

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/okian/sheetboard/internal/domain/ranking"
	"github.com/okian/sheetboard/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func TestBuild(t *testing.T) {
	Convey("Given spreadsheet rows with a header", t, func() {
		header := []string{"id", "name", "points"}

		Convey("When two players are listed in ascending order", func() {
			rows := [][]string{header, {"1", "Alice", "10"}, {"2", "Bob", "20"}}
			entries := ranking.Build(rows)

			Convey("Then the highest score should come first", func() {
				b, err := json.Marshal(entries)
				So(err, ShouldBeNil)
				So(string(b), ShouldEqual, `[{"id":"2","name":"Bob","points":20},{"id":"1","name":"Alice","points":10}]`)
			})
		})

		Convey("When only the header is present", func() {
			entries := ranking.Build([][]string{header})

			Convey("Then the leaderboard should be an empty array", func() {
				So(entries, ShouldNotBeNil)
				So(entries, ShouldBeEmpty)
				b, _ := json.Marshal(entries)
				So(string(b), ShouldEqual, `[]`)
			})
		})

		Convey("When there are no rows at all", func() {
			Convey("Then nil and empty input should both give an empty array", func() {
				So(ranking.Build(nil), ShouldBeEmpty)
				So(ranking.Build([][]string{}), ShouldBeEmpty)
				b, _ := json.Marshal(ranking.Build(nil))
				So(string(b), ShouldEqual, `[]`)
			})
		})

		Convey("When rows are short", func() {
			rows := [][]string{header, {"1", "Alice"}, {"2"}, {}}
			entries := ranking.Build(rows)

			Convey("Then missing cells should be absent and points zero", func() {
				So(len(entries), ShouldEqual, 3)
				So(*entries[0].Name, ShouldEqual, "Alice")
				So(entries[0].Points, ShouldEqual, 0)
				So(*entries[1].ID, ShouldEqual, "2")
				So(entries[1].Name, ShouldBeNil)
				So(entries[2].ID, ShouldBeNil)
				So(entries[2].Name, ShouldBeNil)
			})
		})

		Convey("When rows carry extra columns", func() {
			entries := ranking.Build([][]string{header, {"1", "Alice", "7", "extra", "more"}})

			Convey("Then only the first three columns should be used", func() {
				b, _ := json.Marshal(entries)
				So(string(b), ShouldEqual, `[{"id":"1","name":"Alice","points":7}]`)
			})
		})

		Convey("When scores tie", func() {
			rows := [][]string{header, {"a", "A", "5"}, {"b", "B", "9"}, {"c", "C", "5"}, {"d", "D", "5"}}
			entries := ranking.Build(rows)

			Convey("Then tied rows should keep spreadsheet order", func() {
				ids := make([]string, len(entries))
				for i, e := range entries {
					ids[i] = *e.ID
				}
				So(ids, ShouldResemble, []string{"b", "a", "c", "d"})
			})
		})

		Convey("When many rows are given", func() {
			rows := [][]string{header}
			for i := 0; i < 50; i++ {
				rows = append(rows, []string{fmt.Sprint(i), fmt.Sprintf("p%d", i), fmt.Sprint((i * 37) % 11)})
			}
			entries := ranking.Build(rows)

			Convey("Then there should be one entry per data row, sorted descending", func() {
				So(len(entries), ShouldEqual, 50)
				So(ranking.IsSorted(entries), ShouldBeTrue)
			})
		})

		Convey("When the header row looks like data", func() {
			entries := ranking.Build([][]string{{"9", "Zed", "999"}, {"1", "Alice", "1"}})

			Convey("Then it should still be skipped", func() {
				So(len(entries), ShouldEqual, 1)
				So(*entries[0].ID, ShouldEqual, "1")
			})
		})
	})
}

func TestParsePoints(t *testing.T) {
	Convey("Given point cells", t, func() {
		cases := []struct {
			in   string
			want float64
		}{
			{"", 0},
			{"   ", 0},
			{"0", 0},
			{"10", 10},
			{" 42 ", 42},
			{"-3", -3},
			{"+5", 5},
			{"2.5", 2.5},
			{".5", 0.5},
			{"1e3", 1000},
			{"0x10", 16},
			{"0o17", 15},
			{"0b101", 5},
			{"0xFFFFFFFFFFFFFFFFFF", math.Ldexp(1, 72)},
			{"0b" + strings.Repeat("1", 70), math.Ldexp(1, 70)},
			{"0x" + strings.Repeat("F", 300), 0},
			{"abc", 0},
			{"12abc", 0},
			{"1,000", 0},
			{"NaN", 0},
			{"Infinity", 0},
			{"-Infinity", 0},
			{"inf", 0},
			{"0x1p4", 0},
			{"-0x10", 0},
			{"1_000", 0},
		}

		for _, tc := range cases {
			tc := tc
			Convey(fmt.Sprintf("When parsing %q", tc.in), func() {
				So(ranking.ParsePoints(tc.in), ShouldEqual, tc.want)
			})
		}
	})
}

func TestIsSorted(t *testing.T) {
	Convey("Given leaderboard entries", t, func() {
		Convey("Then descending and equal runs should be sorted", func() {
			So(ranking.IsSorted(nil), ShouldBeTrue)
			So(ranking.IsSorted([]types.Entry{{Points: 3}, {Points: 3}, {Points: 1}}), ShouldBeTrue)
		})

		Convey("Then an increasing pair should not be sorted", func() {
			So(ranking.IsSorted([]types.Entry{{Points: 1}, {Points: 2}}), ShouldBeFalse)
		})
	})
}
