package main

import (
	"fmt"
	"os"

	"github.com/achilleasa/spheretrace/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "spheretrace"
	app.Usage = "render sphere scenes using path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringFlag{
			Name:  "log-level",
			Usage: "log level: debug, info, notice, warning or error",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a scene to an image file",
			Description: `
Load a scene description (.json, .yaml, .yml or a .zip bundle; local path or
http(s) URL), trace it on all available cpu cores and write the frame to an
image file (.png, .bmp, .tif or .tiff).

With --watch the command keeps running after the first frame and re-renders
whenever the local scene file changes.`,
			ArgsUsage: "scene_file",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "width",
					Value: 400,
					Usage: "frame width; the height is derived from the camera aspect ratio",
				},
				cli.IntFlag{
					Name:  "samples-per-pixel, s",
					Value: 100,
					Usage: "samples per pixel",
				},
				cli.IntFlag{
					Name:  "depth",
					Value: 50,
					Usage: "max number of bounces per path",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "image.png",
					Usage: "image filename for the rendered frame",
				},
				cli.IntFlag{
					Name:  "workers",
					Value: 0,
					Usage: "number of cpu tracers; 0 uses all cpus",
				},
				cli.Uint64Flag{
					Name:  "seed",
					Value: 0,
					Usage: "seed for reproducible renders; 0 selects a random seed",
				},
				cli.BoolFlag{
					Name:  "no-bvh",
					Usage: "test every sphere instead of using a BVH",
				},
				cli.BoolFlag{
					Name:  "watch",
					Usage: "re-render when the scene file changes",
				},
				cli.StringFlag{
					Name:  "scheduler",
					Value: "round-robin",
					Usage: "row scheduler: round-robin or perfect",
				},
			},
			Action: cmd.RenderFrame,
		},
		{
			Name:      "scene-info",
			Usage:     "display scene statistics",
			ArgsUsage: "scene_file",
			Action:    cmd.ShowSceneInfo,
		},
		{
			Name:  "generate",
			Usage: "generate a random spheres scene",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "seed",
					Value: 0,
					Usage: "generator seed; 0 selects a random seed",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "scene.json",
					Usage: "scene filename (.json, .yaml, .yml or .zip)",
				},
			},
			Action: cmd.GenerateScene,
		},
		{
			Name:   "list-devices",
			Usage:  "list the cpus available for rendering",
			Action: cmd.ListDevices,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
