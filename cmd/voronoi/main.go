package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"

	"github.com/urfave/cli/v3"

	voronoilib "github.com/fortunesweep/voronoi"
	"github.com/fortunesweep/voronoi/options"
	"github.com/fortunesweep/voronoi/point"
)

func main() {
	cmd := &cli.Command{
		Name:      "voronoi",
		Usage:     "Builds a Voronoi diagram and prints the result to stdout as JSON",
		UsageText: "voronoi [--number <value> --minx <value> --maxx <value> --miny <value> --maxy <value>] [--bounds minx,miny,maxx,maxy]",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "number",
				Usage:    "Number of random sites to generate when no sites are piped in on stdin",
				Value:    10,
				Aliases:  []string{"n"},
				OnlyOnce: true,
				Validator: func(u int64) error {
					if u <= 0 {
						return fmt.Errorf("number must be greater than zero")
					}
					return nil
				},
			},
			&cli.FloatFlag{Name: "minx", Usage: "Minimum X value for random site generation", OnlyOnce: true, Value: 0},
			&cli.FloatFlag{Name: "maxx", Usage: "Maximum X value for random site generation", OnlyOnce: true, Value: 10},
			&cli.FloatFlag{Name: "miny", Usage: "Minimum Y value for random site generation", OnlyOnce: true, Value: 0},
			&cli.FloatFlag{Name: "maxy", Usage: "Maximum Y value for random site generation", OnlyOnce: true, Value: 10},
			&cli.StringFlag{
				Name:     "bounds",
				Usage:    "Clip the diagram to \"minx,miny,maxx,maxy\"; omit to leave faces unbounded",
				OnlyOnce: true,
			},
		},
		HideVersion: true,
		Action:      run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(_ context.Context, cmd *cli.Command) error {
	sites, err := readSites(cmd)
	if err != nil {
		return err
	}

	var opts []options.GeometryOptionsFunc
	if raw := cmd.String("bounds"); raw != "" {
		minX, minY, maxX, maxY, err := parseBounds(raw)
		if err != nil {
			return err
		}
		opts = append(opts, options.WithBounds(minX, minY, maxX, maxY))
	}

	diagram, err := voronoilib.Build(sites, opts...)
	if err != nil {
		return err
	}

	b, err := json.Marshal(diagram)
	if err != nil {
		return err
	}
	fmt.Print(string(b))
	return nil
}

// readSites reads newline-delimited-JSON-free JSON sites from stdin if any
// are piped in, and otherwise generates "number" random points within the
// minx/miny/maxx/maxy rectangle.
func readSites(cmd *cli.Command) ([]point.Point, error) {
	stat, err := os.Stdin.Stat()
	if err == nil && (stat.Mode()&os.ModeCharDevice) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		if len(data) > 0 {
			var raw []point.Point
			if err := json.Unmarshal(data, &raw); err != nil {
				return nil, fmt.Errorf("parsing sites from stdin: %w", err)
			}
			return raw, nil
		}
	}

	minX, maxX := cmd.Float("minx"), cmd.Float("maxx")
	minY, maxY := cmd.Float("miny"), cmd.Float("maxy")
	if minX >= maxX {
		return nil, fmt.Errorf("maxx must be greater than minx")
	}
	if minY >= maxY {
		return nil, fmt.Errorf("maxy must be greater than miny")
	}

	n := int(cmd.Int("number"))
	sites := make([]point.Point, n)
	for i := range sites {
		sites[i] = point.New(randomInRange(minX, maxX), randomInRange(minY, maxY))
	}
	return sites, nil
}

func randomInRange(min, max float64) float64 {
	return min + rand.Float64()*(max-min)
}

func parseBounds(raw string) (minX, minY, maxX, maxY float64, err error) {
	n, err := fmt.Sscanf(raw, "%g,%g,%g,%g", &minX, &minY, &maxX, &maxY)
	if err != nil || n != 4 {
		return 0, 0, 0, 0, fmt.Errorf("bounds must be of the form minx,miny,maxx,maxy")
	}
	return minX, minY, maxX, maxY, nil
}
