package headmap

import (
	"image/color"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/headmap/internal/scene"
)

var _ = Describe("Cloud", func() {
	var (
		graph *scene.Graph
		cloud *Cloud
	)

	BeforeEach(func() {
		graph = scene.New()
		var err error
		cloud, err = Build(graph,
			[]Vertex{{0, 0, 0}, {1, 1, 1}},
			[]Series{{1, 3}, {2, 4}},
			DefaultOptions())
		Expect(err).NotTo(HaveOccurred())
	})

	It("creates one sphere per vertex under the root", func() {
		Expect(graph.Spheres()).To(HaveLen(2))
		Expect(cloud.Root.Name).To(Equal("Head"))
		Expect(cloud.Root.Children).To(HaveLen(2))
		Expect(cloud.Points[1].Sphere.Position).To(Equal(scene.Vec3{X: 5, Y: 5, Z: 5}))
	})

	It("orients the root to face forward", func() {
		got := cloud.Points[1].Sphere.WorldPosition()
		want := scene.Rotate(scene.Euler(-90, 90, 0), scene.Vec3{X: 5, Y: 5, Z: 5})
		Expect(got.X).To(BeNumerically("~", want.X, 1e-9))
		Expect(got.Y).To(BeNumerically("~", want.Y, 1e-9))
		Expect(got.Z).To(BeNumerically("~", want.Z, 1e-9))
	})

	It("computes the global range", func() {
		Expect(cloud.Range).To(Equal(ValueRange{Min: 1, Max: 4}))
		Expect(cloud.Len()).To(Equal(2))
	})

	It("colors points by their value at the current timestep", func() {
		cloud.Seek(0)
		Expect(cloud.Points[0].Sphere.Color).To(Equal(color.RGBA{255, 0, 0, 255}))
		Expect(cloud.Points[1].Sphere.Color).To(Equal(color.RGBA{170, 85, 0, 255}))
		Expect(cloud.Points[0].Sphere.Scale.X).To(BeNumerically("~", MinScale, 1e-12))

		cloud.Seek(1)
		Expect(cloud.Timestep()).To(Equal(1))
		Expect(cloud.Points[0].Sphere.Color).To(Equal(color.RGBA{85, 170, 0, 255}))
		Expect(cloud.Points[1].Sphere.Color).To(Equal(color.RGBA{0, 255, 0, 255}))
		Expect(cloud.Points[1].Sphere.Scale).To(Equal(scene.Vec3{X: MaxScale, Y: MaxScale, Z: MaxScale}))
	})

	It("spins the root every frame", func() {
		before := cloud.Root.Rotation
		cloud.Animate(1.0 / 60)
		Expect(cloud.Root.Rotation).NotTo(Equal(before))

		angle := 2 * math.Acos(math.Min(1, math.Abs(before.Inverse().Mul(cloud.Root.Rotation).W)))
		Expect(angle).To(BeNumerically("~", 0.5*math.Pi/180, 1e-9))
	})

	It("summarizes values per timestep", func() {
		Expect(cloud.Values(1)).To(Equal([]float64{3, 4}))
		Expect(cloud.MeanSeries()).To(Equal([]float64{1.5, 3.5}))
	})

	DescribeTable("rejects inconsistent input",
		func(verts []Vertex, series []Series, want error) {
			g := scene.New()
			c, err := Build(g, verts, series, DefaultOptions())
			Expect(err).To(MatchError(want))
			Expect(c).To(BeNil())
			Expect(g.Spheres()).To(BeEmpty())
		},
		Entry("more vertices than series", []Vertex{{}, {}}, []Series{{1, 2}}, ErrLineCountMismatch),
		Entry("ragged series", []Vertex{{}, {}}, []Series{{1, 2}, {1}}, ErrSeriesLength),
		Entry("no values", []Vertex{{}}, []Series{{}}, ErrEmptyData),
	)
})
