package layout

import (
	"math"
	"math/rand"

	"github.com/Horopapera/Mind-Map-generator/internal/outline"
)

// ForceOptions tunes the force-directed simulation.
type ForceOptions struct {
	Iterations int
	Width      float64
	Height     float64
	Seed       int64
}

// DefaultForceOptions returns the simulation defaults.
func DefaultForceOptions() ForceOptions {
	return ForceOptions{
		Iterations: 200,
		Width:      900,
		Height:     700,
		Seed:       1,
	}
}

// Force runs a Fruchterman-Reingold style simulation over the visible nodes:
// every pair repels, every parent-child edge attracts, and a cooling
// temperature caps per-step displacement. The RNG is seeded from the options
// so identical input produces identical output.
func Force(f *outline.Forest, opts ForceOptions) *Result {
	if opts.Iterations <= 0 {
		opts.Iterations = 200
	}
	if opts.Width <= 0 {
		opts.Width = 900
	}
	if opts.Height <= 0 {
		opts.Height = 700
	}

	res := &Result{Kind: KindForce, Width: opts.Width, Height: opts.Height}
	visible(f, func(n, parent *outline.Node) {
		res.Nodes = append(res.Nodes, placed(n, parent, 0, 0))
		if parent != nil {
			res.Edges = append(res.Edges, Edge{From: parent.ID, To: n.ID})
		}
	})
	count := len(res.Nodes)
	if count == 0 {
		return res
	}

	index := make(map[int]int, count)
	for i, p := range res.Nodes {
		index[p.ID] = i
	}

	// Deterministic initial scatter.
	rng := rand.New(rand.NewSource(opts.Seed))
	for i := range res.Nodes {
		res.Nodes[i].X = opts.Width * rng.Float64()
		res.Nodes[i].Y = opts.Height * rng.Float64()
	}
	if count == 1 {
		res.Nodes[0].X = opts.Width / 2
		res.Nodes[0].Y = opts.Height / 2
		return res
	}

	area := opts.Width * opts.Height
	k := math.Sqrt(area / float64(count))
	temp := opts.Width / 10

	dx := make([]float64, count)
	dy := make([]float64, count)

	for iter := 0; iter < opts.Iterations; iter++ {
		for i := range dx {
			dx[i], dy[i] = 0, 0
		}

		// Repulsion between all pairs.
		for i := 0; i < count; i++ {
			for j := i + 1; j < count; j++ {
				ddx := res.Nodes[i].X - res.Nodes[j].X
				ddy := res.Nodes[i].Y - res.Nodes[j].Y
				dist := math.Hypot(ddx, ddy)
				if dist < 0.01 {
					// Coincident nodes get a deterministic nudge.
					ddx, ddy, dist = 0.1, 0.1, math.Sqrt2*0.1
				}
				force := k * k / dist
				dx[i] += ddx / dist * force
				dy[i] += ddy / dist * force
				dx[j] -= ddx / dist * force
				dy[j] -= ddy / dist * force
			}
		}

		// Attraction along edges.
		for _, e := range res.Edges {
			i, j := index[e.From], index[e.To]
			ddx := res.Nodes[i].X - res.Nodes[j].X
			ddy := res.Nodes[i].Y - res.Nodes[j].Y
			dist := math.Hypot(ddx, ddy)
			if dist < 0.01 {
				continue
			}
			force := dist * dist / k
			dx[i] -= ddx / dist * force
			dy[i] -= ddy / dist * force
			dx[j] += ddx / dist * force
			dy[j] += ddy / dist * force
		}

		// Apply displacement, capped by temperature, clamped to the frame.
		for i := 0; i < count; i++ {
			disp := math.Hypot(dx[i], dy[i])
			if disp < 0.01 {
				continue
			}
			step := math.Min(disp, temp)
			res.Nodes[i].X += dx[i] / disp * step
			res.Nodes[i].Y += dy[i] / disp * step
			res.Nodes[i].X = math.Min(opts.Width-10, math.Max(10, res.Nodes[i].X))
			res.Nodes[i].Y = math.Min(opts.Height-10, math.Max(10, res.Nodes[i].Y))
		}

		// Linear cooling.
		temp *= 1 - float64(iter+1)/float64(opts.Iterations)
		if temp < 0.1 {
			break
		}
	}

	return res
}
