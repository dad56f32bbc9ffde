package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/deadzone/levels"
	"github.com/urfave/cli/v2"
)

func main() {
	app := cli.NewApp()

	app.Name = "tiletable"
	app.Usage = "Inspect the water and dead zone autotile tables"

	app.Commands = []*cli.Command{
		{
			Name:  "water",
			Usage: "Print the 16 water masks with frame and collision shape",
			Action: func(c *cli.Context) error {
				if err := writeWaterTable(os.Stdout); err != nil {
					return cli.Exit(err, 1)
				}
				return nil
			},
		},
		{
			Name:      "wall",
			Usage:     "Print the wall layers for every mask, or for the given mask bits",
			ArgsUsage: "[BITS...]",
			Action: func(c *cli.Context) error {
				var bits []uint16
				for _, arg := range c.Args().Slice() {
					b, err := strconv.ParseUint(arg, 0, 16)
					if err != nil {
						return cli.Exit(fmt.Errorf("parse mask %q: %w", arg, err), 1)
					}
					bits = append(bits, uint16(b))
				}
				if err := writeWallTable(os.Stdout, bits); err != nil {
					return cli.Exit(err, 1)
				}
				return nil
			},
		},
		{
			Name:      "preview",
			Usage:     "Render an autotiled level in the terminal",
			ArgsUsage: "LEVEL",
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				lvl, err := levels.LoadLevelFromFS(c.Args().First())
				if err != nil {
					return cli.Exit(err, 1)
				}
				g, err := levels.GridFromLevel(lvl)
				if err != nil {
					return cli.Exit(err, 1)
				}

				screen, err := tcell.NewScreen()
				if err != nil {
					return cli.Exit(err, 1)
				}
				if err := screen.Init(); err != nil {
					return cli.Exit(err, 1)
				}
				defer screen.Fini()

				title := lvl.Name
				if title == "" {
					title = c.Args().First()
				}
				if err := runPreview(screen, title+"  (q to quit)", g, lvl.WallOverrides()); err != nil {
					return cli.Exit(err, 1)
				}
				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
