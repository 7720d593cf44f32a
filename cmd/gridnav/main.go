// Command gridnav plans a route over an occupancy map image.
//
// Usage:
//
//	gridnav -map office.pgm -algo bug2 -start 3,4 -goal 40,22 -out route.png
//
// Map pixels at least -threshold bright are free. Coordinates are image
// pixels; the loader's blocked border is accounted for internally.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridnav/grid"
	"github.com/katalvlaran/gridnav/mapio"
	"github.com/katalvlaran/gridnav/planner"
	"github.com/katalvlaran/gridnav/valueiter"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("gridnav: ")
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("gridnav", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	mapPath := fs.String("map", "", "occupancy map image (PNG, PBM, PGM or PPM)")
	algo := fs.String("algo", "bug1", "planner: bug1, bug2 or value")
	startArg := fs.String("start", "", "start pixel as x,y")
	goalArg := fs.String("goal", "", "goal pixel as x,y")
	threshold := fs.Uint("threshold", uint(mapio.DefaultThreshold), "minimum gray level of a free pixel (0-255)")
	maxSteps := fs.Int("max-steps", 100000, "step budget (0 for none)")
	check := fs.Bool("check", true, "reject unreachable goals before planning")
	out := fs.String("out", "", "write the rendered route to this PNG file")
	scale := fs.Int("scale", 4, "pixels per cell in the rendered image")
	distances := fs.Bool("distances", false, "shade the value-iteration distance map into the image")
	verbose := fs.Bool("v", false, "log every step")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *mapPath == "" {
		return errors.New("missing -map")
	}
	if *threshold > 255 {
		return fmt.Errorf("threshold must be between 0 and 255 (got %d)", *threshold)
	}
	kind, err := planner.ParseKind(*algo)
	if err != nil {
		return err
	}
	start, err := parseCell(*startArg)
	if err != nil {
		return fmt.Errorf("-start: %w", err)
	}
	goal, err := parseCell(*goalArg)
	if err != nil {
		return fmt.Errorf("-goal: %w", err)
	}

	g, err := mapio.Load(*mapPath, uint8(*threshold))
	if err != nil {
		return err
	}
	// shift into the padded grid
	start, goal = start.Add(1, 1), goal.Add(1, 1)
	log.Printf("map %s: %dx%d cells, %s %v -> %v", *mapPath, g.Width-2, g.Height-2, kind, start.Add(-1, -1), goal.Add(-1, -1))

	p, err := planner.New(kind, g, start, goal)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := []planner.Option{planner.WithContext(ctx), planner.WithMaxSteps(*maxSteps)}
	if *check {
		opts = append(opts, planner.WithReachabilityCheck(g, goal))
	}
	if *verbose {
		opts = append(opts, planner.WithOnStep(func(step int, pos grid.Cell) error {
			log.Printf("step %d: %v", step, pos.Add(-1, -1))
			return nil
		}))
	}

	res, runErr := planner.Run(p, opts...)
	if res != nil {
		fmt.Printf("steps=%d moves=%d length=%.3f reached=%t\n", res.Steps, len(res.Moves())-1, res.Length(), p.Finished())
	}
	if *out != "" && res != nil {
		if err := writeImage(*out, g, p, res, start, goal, *scale, *distances); err != nil {
			return err
		}
		log.Printf("wrote %s", *out)
	}

	return runErr
}

func writeImage(path string, g *grid.Grid, p planner.Planner, res *planner.Result, start, goal grid.Cell, scale int, distances bool) error {
	opts := mapio.DefaultRenderOptions()
	opts.Scale = scale
	opts.Path = res.Moves()
	opts.Start, opts.Goal, opts.ShowEndpoints = start, goal, true
	if vi, ok := p.(*valueiter.Planner); ok && distances {
		opts.Distances = vi.DistanceMap()
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := mapio.Render(f, g, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// parseCell reads "x,y".
func parseCell(s string) (grid.Cell, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return grid.Cell{}, fmt.Errorf("want x,y (got %q)", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return grid.Cell{}, err
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return grid.Cell{}, err
	}
	return grid.Cell{X: x, Y: y}, nil
}
