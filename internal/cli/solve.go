package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridstar/render"
	"github.com/katalvlaran/gridstar/scenario"
)

// scenarioFlags override fields of a loaded scenario.
type scenarioFlags struct {
	heuristic string
	conn      string
}

func (sf *scenarioFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&sf.heuristic, "heuristic", "", "Override the scenario heuristic: euclidean, chebyshev or zero")
	cmd.Flags().StringVar(&sf.conn, "conn", "", "Override the scenario connectivity: conn8 or conn4")
}

// load reads the scenario at path and applies the overrides.
func (sf *scenarioFlags) load(path string) (*scenario.Scenario, error) {
	sc, err := scenario.Load(path)
	if err != nil {
		return nil, err
	}
	if sf.heuristic != "" {
		sc.Heuristic = sf.heuristic
	}
	if sf.conn != "" {
		sc.Conn = sf.conn
	}

	return sc, nil
}

func newSolveCmd(gf *globalFlags) *cobra.Command {
	sf := &scenarioFlags{}
	var geoJSON bool

	cmd := &cobra.Command{
		Use:   "solve <scenario.yaml>",
		Short: "Solve a scenario and print the path",
		Long: `Load a YAML scenario, run A* and print the outcome.

Scenario format:

  name: corridor
  conn: conn8          # conn8 (default) or conn4
  heuristic: chebyshev # euclidean (default), chebyshev or zero
  grid:
    - "..#."
    - ".##."
    - "...."
  start: [0, 0]
  goal: [0, 3]`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := sf.load(args[0])
			if err != nil {
				return err
			}
			g, res, err := sc.Solve()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case geoJSON:
				data, err := render.GeoJSON(g, res)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, string(data))
				return err
			case gf.jsonOutput:
				return outputJSON(out, newSolveOutput(sc.Name, res))
			}

			printStatus(out, res)
			if sc.Name != "" {
				printLabelValue(out, "Scenario", sc.Name)
			}
			printLabelValue(out, "Cost", res.Cost)
			printLabelValue(out, "Expanded", res.Expanded)
			printLabelValue(out, "Steps", len(res.Path))
			_, _ = fmt.Fprintln(out)
			_, err = fmt.Fprint(out, overlay(g, res))
			return err
		},
	}
	sf.register(cmd)
	cmd.Flags().BoolVar(&geoJSON, "geojson", false, "Print the result as a GeoJSON FeatureCollection")

	return cmd
}
