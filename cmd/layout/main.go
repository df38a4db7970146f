// Command layout runs this module's layout engine against a WPT-schema
// JSON fixture and prints the resulting ViewTree as canonical JSON.
//
// Grounded on SCKelemen-layout/cmd/wptest's eval/run/list command surface,
// rebuilt on github.com/urfave/cli/v3 instead of that tool's
// github.com/SCKelemen/clix - clix is an unfetchable sibling module the
// teacher only resolves via its own local replace directive, not a real
// dependency this module can carry.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
	"github.com/viewcore/layout"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	app := newApp()
	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:        "layout",
		Usage:       "run the CSS layout engine against a WPT-schema JSON fixture",
		Description: "Loads a WPTTest fixture (see wpt_schema.go), lays it out, and prints the result as a frozen ViewTree.",
		Commands: []*cli.Command{
			newRunCommand(),
			newEvalCommand(),
			newSVGCommand(),
		},
	}
}

func newRunCommand() *cli.Command {
	var width, height, rootFontSize float64
	return &cli.Command{
		Name:  "run",
		Usage: "lay out a fixture file and print its ViewTree as JSON",
		Flags: []cli.Flag{
			&cli.FloatFlag{Name: "width", Value: 1024, Destination: &width},
			&cli.FloatFlag{Name: "height", Value: 768, Destination: &height},
			&cli.FloatFlag{Name: "root-font-size", Value: 16, Destination: &rootFontSize},
		},
		Arguments: []cli.Argument{&cli.StringArg{Name: "fixture"}},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.StringArg("fixture")
			test, err := layout.LoadWPTTest(path)
			if err != nil {
				return err
			}
			root, err := test.BuildLayout()
			if err != nil {
				return err
			}

			viewport := layout.Rect{Width: width, Height: height}
			layout.LayoutWithPositioning(root, layout.Loose(width, height), viewport)
			tree := layout.BuildViewTree(root)

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(tree)
		},
	}
}

func newSVGCommand() *cli.Command {
	var width, height, rootFontSize float64
	return &cli.Command{
		Name:  "svg",
		Usage: "lay out a fixture file and print its ViewTree as an SVG document",
		Flags: []cli.Flag{
			&cli.FloatFlag{Name: "width", Value: 1024, Destination: &width},
			&cli.FloatFlag{Name: "height", Value: 768, Destination: &height},
			&cli.FloatFlag{Name: "root-font-size", Value: 16, Destination: &rootFontSize},
		},
		Arguments: []cli.Argument{&cli.StringArg{Name: "fixture"}},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.StringArg("fixture")
			test, err := layout.LoadWPTTest(path)
			if err != nil {
				return err
			}
			root, err := test.BuildLayout()
			if err != nil {
				return err
			}

			viewport := layout.Rect{Width: width, Height: height}
			layout.LayoutWithPositioning(root, layout.Loose(width, height), viewport)
			tree := layout.BuildViewTree(root)

			_, err = fmt.Fprint(os.Stdout, layout.RenderViewTreeSVG(tree))
			return err
		},
	}
}

func newEvalCommand() *cli.Command {
	return &cli.Command{
		Name:      "eval",
		Usage:     "lay out a fixture and check its CEL assertions",
		Arguments: []cli.Argument{&cli.StringArg{Name: "fixture"}},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.StringArg("fixture")
			test, err := layout.LoadWPTTest(path)
			if err != nil {
				return err
			}
			root, err := test.BuildLayout()
			if err != nil {
				return err
			}
			layout.Layout(root, layout.Loose(test.Constraints.Width, test.Constraints.Height))

			env, err := layout.NewLayoutCELEnv(root)
			if err != nil {
				return err
			}

			failures := 0
			for _, result := range test.Results {
				for _, el := range result.Elements {
					for _, r := range env.EvaluateAll(el.Assertions) {
						if !r.Passed {
							fmt.Fprintf(os.Stderr, "%s: %s: %s\n", el.Path, r.Assertion.Expression, r.Error)
							failures++
						}
					}
				}
			}
			if failures > 0 {
				return fmt.Errorf("%d assertion(s) failed", failures)
			}
			fmt.Fprintln(os.Stdout, "ok")
			return nil
		},
	}
}
