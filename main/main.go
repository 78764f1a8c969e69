package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/tabinterp"
	"github.com/phil-mansfield/tabinterp/io"
)

func main() {
	// The main function manages input sanitization and calls the
	// secondary main functions for each mode. The code tries to fail
	// gracefully if the user provides incorrect input.

	var (
		eval, exampleConfig string
	)
	vars := map[string]*string{
		"Eval":          &eval,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&eval, "Eval", "",
		"Configuration file for [Eval] mode.",
	)
	flag.StringVar(
		&exampleConfig, "ExampleConfig", "",
		"Prints an example configuration file of the specified type to "+
			"stdout. 'Eval' is the only accepted argument.",
	)

	flag.Parse()

	modeName, err := getModeName(vars)
	if err != nil {
		log.Fatal(err.Error())
	}

	switch modeName {
	case "Eval":
		wrap := io.DefaultEvalWrapper()
		err := gcfg.ReadFileInto(wrap, eval)
		if err != nil {
			log.Fatal(err.Error())
		}
		con := &wrap.Eval

		if !con.ValidTableFile() {
			log.Fatal("Invalid/non-existent 'TableFile' value.")
		} else if !con.ValidLaw() {
			log.Fatalf("Invalid 'Law' value, '%s'.", con.Law)
		} else if !con.ValidColumns() {
			log.Fatalf(
				"Invalid column values, XColumn = %d and YColumn = %d.",
				con.XColumn, con.YColumn,
			)
		}

		if !con.ValidPointsFile() && !con.ValidSweep() {
			log.Fatal(
				"You must set either a valid 'PointsFile' or a valid " +
					"'XStart', 'XEnd', and 'Samples' sweep.",
			)
		}

		evalMain(con)

	case "ExampleConfig":
		switch exampleConfig {
		case "Eval":
			fmt.Println(io.ExampleEvalFile)
		default:
			log.Fatal(
				"Unrecognized 'ExampleConfig' argument. 'Eval' is the " +
					"only recognized argument.",
			)
		}
	default:
		panic("Impossible")
	}
}

// getModeName returns the name of the mode and fails with a descriptive
// error if the user provided less or more than one mode flag.
func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" {
			setNames = append(setNames, name)
		}
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but tabinterp_cmd only "+
				"accepts one flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}

// evalMain reads the table and query points named by the config, evaluates
// the configured law at every query point, and writes "x y" pairs.
func evalMain(con *io.EvalConfig) {
	if con.ValidLogFile() {
		lf, err := os.Create(con.LogFile)
		if err != nil {
			log.Fatal(err.Error())
		}
		defer lf.Close()
		log.SetOutput(lf)
	}

	xs, ys, err := io.ReadColumns(con.TableFile, con.XColumn, con.YColumn)
	if err != nil {
		log.Fatal(err.Error())
	}
	if len(xs) < con.MinTableLen() {
		log.Fatalf(
			"Table %s has %d rows, but law '%s' needs at least %d.",
			con.TableFile, len(xs), con.Law, con.MinTableLen(),
		)
	}

	var pts []float64
	if con.ValidPointsFile() {
		pts, err = io.ReadPoints(con.PointsFile)
	} else {
		pts, err = con.QueryPoints()
	}
	if err != nil {
		log.Fatal(err.Error())
	}

	log.Printf(
		"Evaluating %d points against %d table rows under law '%s'.",
		len(pts), len(xs), con.Law,
	)

	tab := tabinterp.NewTable(xs, ys)

	var vals []float64
	if con.SplineLaw() {
		vals = tabinterp.NewSpline(tab).EvalAll(pts)
	} else {
		law, _ := con.LawValue()
		vals, err = tab.EvalAll(pts, law)
		if err != nil {
			log.Fatal(err.Error())
		}
	}

	out := os.Stdout
	if con.ValidOutput() {
		out, err = os.Create(con.Output)
		if err != nil {
			log.Fatal(err.Error())
		}
		defer out.Close()
	}

	for i := range pts {
		fmt.Fprintf(out, "%g %g\n", pts[i], vals[i])
	}
}
