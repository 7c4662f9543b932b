package main

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/forge3d/forge/pkg/entity"
	"github.com/forge3d/forge/pkg/math3"
	"github.com/forge3d/forge/pkg/scene"
)

func demoCmd() *cobra.Command {
	var showMetrics bool

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Build a small scene and show reactive propagation",
		Long: `Builds a triangle face and an edge over shared vertices, subscribes to
their derived properties, then moves a vertex and reassigns an edge
endpoint to show derived values recomputing.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, showMetrics)
		},
	}

	cmd.Flags().BoolVar(&showMetrics, "metrics", false, "Print scene gauges after the demo")

	return cmd
}

func runDemo(cmd *cobra.Command, showMetrics bool) error {
	out := cmd.OutOrStdout()

	s := scene.New("demo")
	defer s.Dispose()

	v1 := entity.NewVertex(math3.Vec3{})
	v2 := entity.NewVertex(math3.Vec3{X: 1})
	v3 := entity.NewVertex(math3.Vec3{Y: 1})
	for _, v := range []*entity.Vertex{v1, v2, v3} {
		s.Add(v.EditorObject)
	}

	face, err := entity.NewFace(v1, v2, v3)
	if err != nil {
		return err
	}
	s.Add(face.EditorObject)

	edge, err := entity.NewEdge(v1, v2)
	if err != nil {
		return err
	}
	s.Add(edge.EditorObject)

	normalSub := face.Normal.Subscribe(func(n math3.Vec3) {
		fmt.Fprintf(out, "face normal -> (%.3f, %.3f, %.3f)\n", n.X, n.Y, n.Z)
	})
	defer normalSub.Release()
	areaSub := face.Area.Subscribe(func(a float64) {
		fmt.Fprintf(out, "face area   -> %.3f\n", a)
	})
	defer areaSub.Release()
	lengthSub := edge.Length.Subscribe(func(l float64) {
		fmt.Fprintf(out, "edge length -> %.3f\n", l)
	})
	defer lengthSub.Release()

	ctx := context.Background()

	fmt.Fprintln(out, "-- moving first vertex to (0,0,1)")
	s.Apply(ctx, "move-vertex", func() {
		v1.SetPosition(math3.Vec3{Z: 1})
	})

	fmt.Fprintln(out, "-- reassigning edge end to a vertex at (3,4,0)")
	far := entity.NewVertex(math3.Vec3{X: 3, Y: 4})
	s.Add(far.EditorObject)
	s.Apply(ctx, "reassign-endpoint", func() {
		edge.SetB(far)
	})

	if showMetrics {
		reg := prometheus.NewRegistry()
		if err := reg.Register(scene.NewCollector(s)); err != nil {
			return err
		}
		families, err := reg.Gather()
		if err != nil {
			return err
		}
		for _, mf := range families {
			for _, m := range mf.GetMetric() {
				fmt.Fprintf(out, "%s %v\n", mf.GetName(), m.GetGauge().GetValue())
			}
		}
	}

	return nil
}
