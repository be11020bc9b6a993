package pitch_test

import (
	"testing"

	"github.com/okian/stuffscore/internal/domain/pitch"
	. "github.com/smartystreets/goconvey/convey"
)

func TestPitchTypeRow_UsageFraction(t *testing.T) {
	Convey("Given pitch type rows", t, func() {
		Convey("When usage is present", func() {
			r := pitch.PitchTypeRow{UsagePct: pitch.Float(62.5)}
			So(r.UsageFraction(), ShouldAlmostEqual, 0.625, 1e-12)
		})

		Convey("When usage is missing", func() {
			r := pitch.PitchTypeRow{}
			So(r.UsageFraction(), ShouldEqual, 0)
		})
	})
}

func TestSummary_HasData(t *testing.T) {
	Convey("Given pitcher summaries", t, func() {
		So(pitch.Summary{Pitcher: pitch.Pitcher{ID: 1}}.HasData(), ShouldBeFalse)
		So(pitch.Summary{Rows: []pitch.PitchTypeRow{{PitchType: "FF"}}}.HasData(), ShouldBeTrue)
	})
}

func TestHighlightsOf(t *testing.T) {
	Convey("Given a pitcher's arsenal", t, func() {
		rows := []pitch.PitchTypeRow{
			{PitchType: "FF", UsagePct: pitch.Float(45.2), AvgSpeed: pitch.Float(95.1), AvgHitExitSpeed: pitch.Float(91.3)},
			{PitchType: "SL", UsagePct: pitch.Float(30.1), AvgSpeed: pitch.Float(86.4), AvgHitExitSpeed: pitch.Float(84.0)},
			{PitchType: "CH", UsagePct: pitch.Float(24.7), AvgSpeed: nil, AvgHitExitSpeed: nil},
		}

		Convey("When computing highlights", func() {
			h, ok := pitch.HighlightsOf(rows)

			Convey("Then the most used, hardest and soft contact pitches should be picked", func() {
				So(ok, ShouldBeTrue)
				So(h.MostUsed.PitchType, ShouldEqual, "FF")
				So(*h.MostUsed.Value, ShouldEqual, 45.2)
				So(h.Hardest.PitchType, ShouldEqual, "FF")
				So(h.SoftContact.PitchType, ShouldEqual, "SL")
				So(*h.SoftContact.Value, ShouldEqual, 84.0)
			})
		})

		Convey("When usage is missing on the first row", func() {
			h, ok := pitch.HighlightsOf([]pitch.PitchTypeRow{
				{PitchType: "KN"},
				{PitchType: "FF", UsagePct: pitch.Float(10)},
			})
			So(ok, ShouldBeTrue)
			So(h.MostUsed.PitchType, ShouldEqual, "FF")
		})

		Convey("When usages tie", func() {
			h, _ := pitch.HighlightsOf([]pitch.PitchTypeRow{
				{PitchType: "SI", UsagePct: pitch.Float(50)},
				{PitchType: "CU", UsagePct: pitch.Float(50)},
			})
			So(h.MostUsed.PitchType, ShouldEqual, "SI")
		})

		Convey("When no row has speed or exit speed data", func() {
			h, ok := pitch.HighlightsOf([]pitch.PitchTypeRow{{PitchType: "FF", UsagePct: pitch.Float(100)}})
			So(ok, ShouldBeTrue)
			So(h.Hardest, ShouldBeNil)
			So(h.SoftContact, ShouldBeNil)
		})

		Convey("When there are no rows", func() {
			_, ok := pitch.HighlightsOf(nil)
			So(ok, ShouldBeFalse)
		})
	})
}
