// Command gridpath runs an A* search described by a YAML scenario file and
// prints the resulting path.
//
// Usage:
//
//	gridpath -genScenario              # write scenario.yaml and exit
//	gridpath -scenario scenario.yaml   # solve it
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/grid"
)

type cliArgs struct {
	scenarioFile string
	genScenario  bool
	cardinal     bool
}

func parseArgs() cliArgs {
	scenarioFile := flag.String("scenario", "scenario.yaml", "YAML scenario to solve; use -genScenario to produce an example")
	genScenario := flag.Bool("genScenario", false, "Generate an example scenario file, then exit")
	cardinal := flag.Bool("cardinal", false, "Restrict movement to the four cardinal directions")
	flag.Parse()

	return cliArgs{
		scenarioFile: *scenarioFile,
		genScenario:  *genScenario,
		cardinal:     *cardinal,
	}
}

// point is a grid coordinate as written in scenario files.
type point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// scenario describes one search: a tile map ('.' open, '#' wall) plus
// endpoints. The optional cardinal key mirrors the -cardinal flag.
type scenario struct {
	Map      []string `yaml:"map"`
	Start    point    `yaml:"start"`
	Goal     point    `yaml:"goal"`
	Cardinal bool     `yaml:"cardinal"`
}

func genScenarioFile(filename string) error {
	example := scenario{
		Map: []string{
			".......",
			"..#..#.",
			"..##.#.",
			"..#..#.",
			"..####.",
			".......",
			".......",
		},
		Start: point{X: 0, Y: 0},
		Goal:  point{X: 6, Y: 6},
	}
	out, err := yaml.Marshal(example)
	if err != nil {
		return err
	}

	return os.WriteFile(filename, out, 0644)
}

func loadScenario(filename string) (*scenario, error) {
	raw, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	var sc scenario
	if err := yaml.Unmarshal(raw, &sc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filename, err)
	}

	return &sc, nil
}

func main() {
	args := parseArgs()

	if args.genScenario {
		if err := genScenarioFile(args.scenarioFile); err != nil {
			log.Fatalf("Error generating scenario file: %s", err)
		}
		fmt.Printf("Wrote example scenario to %s\n", args.scenarioFile)
		os.Exit(0)
	}

	sc, err := loadScenario(args.scenarioFile)
	if err != nil {
		log.Fatalf("Error loading scenario: %s", err)
	}

	g, err := grid.ParseTiles(strings.Join(sc.Map, "\n"))
	if err != nil {
		log.Fatalf("Error building grid: %s", err)
	}
	if _, err := g.CostAt(sc.Start.X, sc.Start.Y); err != nil {
		log.Fatalf("Bad scenario start: %s", err)
	}
	if _, err := g.CostAt(sc.Goal.X, sc.Goal.Y); err != nil {
		log.Fatalf("Bad scenario goal: %s", err)
	}

	opts := []astar.Option{}
	if args.cardinal || sc.Cardinal {
		opts = append(opts, astar.WithCardinalOnly())
	}

	start := g.Index(sc.Start.X, sc.Start.Y)
	goal := g.Index(sc.Goal.X, sc.Goal.Y)
	path, err := astar.FindPath(g, start, goal, opts...)
	if errors.Is(err, astar.ErrUnreachable) {
		fmt.Println("No path exists.")
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("Search failed: %s", err)
	}

	fmt.Printf("Path from (%d,%d) to (%d,%d), %d steps:\n",
		sc.Start.X, sc.Start.Y, sc.Goal.X, sc.Goal.Y, len(path))
	for _, idx := range path {
		x, y := g.Coordinate(idx)
		fmt.Printf("  (%d,%d)\n", x, y)
	}
}
