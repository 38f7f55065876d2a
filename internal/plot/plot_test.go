package plot_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/cubelife/internal/lifetime"
	"github.com/san-kum/cubelife/internal/plot"
)

var _ = Describe("Build", func() {
	var (
		model lifetime.LinearModel
		chart *plot.Chart
	)

	BeforeEach(func() {
		model = lifetime.DefaultModel()
		var err error
		chart, err = plot.Build(model, lifetime.DefaultSampleSet(), plot.DefaultOptions())
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("curve", func() {
		It("evaluates the model at every dense sample", func() {
			Expect(chart.CurveX).To(HaveLen(500))
			Expect(chart.CurveY).To(HaveLen(500))
			for i, x := range chart.CurveX {
				Expect(chart.CurveY[i]).To(BeNumerically("~", model.Eval(x), 1e-9))
			}
		})

		It("spans the calibration points exactly", func() {
			Expect(chart.CurveY[0]).To(Equal(0.0))
			Expect(chart.MaxCurve()).To(Equal(960.0))
		})
	})

	Describe("challenge points", func() {
		It("annotates each challenge level with its rounded lifetime", func() {
			Expect(chart.Points).To(HaveLen(9))
			want := []string{"0", "69", "137", "206", "274", "343", "411", "480", "549"}
			for i, p := range chart.Points {
				Expect(p.X).To(Equal(lifetime.DefaultChallenges[i]))
				Expect(p.Y).To(BeNumerically("~", model.Eval(p.X), 1e-9))
				Expect(p.Label).To(Equal(want[i]))
			}
		})

		It("increases strictly", func() {
			for i := 1; i < len(chart.Points); i++ {
				Expect(chart.Points[i].Y).To(BeNumerically(">", chart.Points[i-1].Y))
			}
		})

		It("reports the secondary value at the fixed ratio", func() {
			for _, p := range chart.Points {
				Expect(p.Secondary).To(Equal(p.Y / 16))
			}
		})

		It("finds points by input", func() {
			Expect(chart.PointIndex(25)).To(Equal(3))
			Expect(chart.PointIndex(55)).To(Equal(-1))
		})
	})

	Describe("primary axis", func() {
		It("ticks from zero in steps of 80 up to the curve maximum", func() {
			Expect(chart.PrimaryTicks).To(HaveLen(13))
			for i, t := range chart.PrimaryTicks {
				Expect(t.Value).To(Equal(float64(i) * 80))
			}
			last := chart.PrimaryTicks[len(chart.PrimaryTicks)-1]
			Expect(last.Value).To(BeNumerically(">=", chart.MaxCurve()))
			Expect(last.Label).To(Equal("960"))
		})

		It("pads the data range and covers every tick", func() {
			Expect(chart.PrimaryRange.Min).To(BeNumerically("~", -48, 1e-9))
			Expect(chart.PrimaryRange.Max).To(BeNumerically("~", 1008, 1e-9))
		})
	})

	Describe("secondary axis", func() {
		It("divides the primary ticks by the ratio", func() {
			Expect(chart.SecondaryTicks).To(HaveLen(len(chart.PrimaryTicks)))
			for i, t := range chart.SecondaryTicks {
				Expect(t.Value).To(Equal(chart.PrimaryTicks[i].Value / 16))
			}
			Expect(chart.SecondaryTicks[1].Label).To(Equal("5d"))
			Expect(chart.SecondaryTicks[12].Value).To(Equal(60.0))
			Expect(chart.SecondaryTicks[12].Label).To(Equal("60d"))
		})

		It("derives its range from the displayed primary limits", func() {
			Expect(chart.SecondaryRange.Min).To(Equal(chart.PrimaryRange.Min / 16))
			Expect(chart.SecondaryRange.Max).To(Equal(chart.PrimaryRange.Max / 16))
		})

		It("keeps corresponding ticks at the same relative height", func() {
			for i, p := range chart.PrimaryTicks {
				s := chart.SecondaryTicks[i]
				fp := (p.Value - chart.PrimaryRange.Min) / chart.PrimaryRange.Span()
				fs := (s.Value - chart.SecondaryRange.Min) / chart.SecondaryRange.Span()
				Expect(fs).To(BeNumerically("~", fp, 1e-12))
			}
		})
	})

	Describe("input axis", func() {
		It("uses the explicit tick list", func() {
			Expect(chart.XTicks).To(HaveLen(15))
			Expect(chart.XTicks[0]).To(Equal(plot.Tick{Value: 10, Label: "10"}))
			Expect(chart.XTicks[14]).To(Equal(plot.Tick{Value: 80, Label: "80"}))
		})

		It("pads the sampled domain by the margin", func() {
			Expect(chart.XRange.Min).To(BeNumerically("~", 6.5, 1e-9))
			Expect(chart.XRange.Max).To(BeNumerically("~", 83.5, 1e-9))
		})
	})

	It("carries the default labels", func() {
		Expect(chart.Labels.Title).To(Equal("Cube Lifetime Function"))
		Expect(chart.Labels.XAxis).To(Equal("Challenge Level (Bits)"))
		Expect(chart.Labels.Primary).To(Equal("Cube Lifetime (Epochs)"))
		Expect(chart.Labels.Secondary).To(Equal("Cube Lifetime (Days)"))
	})
})

var _ = Describe("Build errors", func() {
	samples := lifetime.DefaultSampleSet()

	It("rejects a degenerate conversion ratio", func() {
		opts := plot.DefaultOptions()
		opts.Units.PerUnit = 0
		_, err := plot.Build(lifetime.DefaultModel(), samples, opts)
		Expect(err).To(MatchError(lifetime.ErrInvalidRatio))
	})

	It("rejects a non-positive increment", func() {
		opts := plot.DefaultOptions()
		opts.Increment = -80
		_, err := plot.Build(lifetime.DefaultModel(), samples, opts)
		Expect(err).To(MatchError(plot.ErrInvalidIncrement))
	})

	It("rejects an increment that would produce too many ticks", func() {
		opts := plot.DefaultOptions()
		opts.Increment = 1e-15
		_, err := plot.Build(lifetime.DefaultModel(), samples, opts)
		Expect(err).To(MatchError(plot.ErrInvalidIncrement))
	})

	It("rejects an empty curve", func() {
		_, err := plot.Build(lifetime.DefaultModel(), lifetime.SampleSet{}, plot.DefaultOptions())
		Expect(err).To(MatchError(plot.ErrEmptySamples))
	})
})

var _ = DescribeTable("PrimaryTicks",
	func(max, inc float64, wantLast float64, wantLen int) {
		ticks := plot.PrimaryTicks(max, inc)
		Expect(ticks).To(HaveLen(wantLen))
		Expect(ticks[0].Value).To(Equal(0.0))
		Expect(ticks[len(ticks)-1].Value).To(Equal(wantLast))
	},
	Entry("exact multiple", 960.0, 80.0, 960.0, 13),
	Entry("rounds up past the maximum", 970.0, 80.0, 1040.0, 14),
	Entry("single interval", 1.0, 80.0, 80.0, 2),
	Entry("non-positive maximum", -5.0, 80.0, 0.0, 1),
	Entry("huge increment", 960.0, 1e308, 1e308, 2),
)

var _ = DescribeTable("CheckIncrement",
	func(max, inc float64, valid bool) {
		err := plot.CheckIncrement(max, inc)
		if valid {
			Expect(err).NotTo(HaveOccurred())
		} else {
			Expect(err).To(MatchError(plot.ErrInvalidIncrement))
		}
	},
	Entry("default axis", 960.0, 80.0, true),
	Entry("non-positive maximum", -5.0, 80.0, true),
	Entry("largest allowed tick count", 9999.0, 1.0, true),
	Entry("one tick too many", 10000.0, 1.0, false),
	Entry("tiny increment", 960.0, 1e-15, false),
	Entry("overflowing tick count", 1e308, 1e-300, false),
	Entry("zero increment", 960.0, 0.0, false),
	Entry("infinite increment", 960.0, math.Inf(1), false),
	Entry("infinite maximum", math.Inf(1), 80.0, false),
	Entry("NaN maximum", math.NaN(), 80.0, false),
)

var _ = Describe("Range", func() {
	It("scales both limits", func() {
		r := plot.Range{Min: -48, Max: 1008}.Scale(16)
		Expect(r.Min).To(Equal(-3.0))
		Expect(r.Max).To(Equal(63.0))
		Expect(math.Abs(r.Span() - 66)).To(BeNumerically("<", 1e-12))
	})
})
