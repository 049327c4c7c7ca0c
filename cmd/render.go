package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/achilleasa/spheretrace/asset/frame"
	"github.com/achilleasa/spheretrace/asset/scene/reader"
	"github.com/achilleasa/spheretrace/renderer"
	"github.com/achilleasa/spheretrace/tracer"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Render a still frame and optionally keep re-rendering it when the scene
// file changes.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("missing scene file argument")
	}
	sceneFile := ctx.Args().First()

	opts, err := renderOptions(ctx)
	if err != nil {
		return err
	}

	scheduler, err := schedulerByName(ctx.String("scheduler"))
	if err != nil {
		return err
	}

	outFile := ctx.String("out")
	if !frame.Supported(filepath.Ext(outFile)) {
		return fmt.Errorf("unsupported output image format %q", filepath.Ext(outFile))
	}

	if err = renderScene(sceneFile, outFile, scheduler, opts); err != nil {
		return err
	}

	if !ctx.Bool("watch") {
		return nil
	}
	return watchScene(sceneFile, func() error {
		return renderScene(sceneFile, outFile, scheduler, opts)
	})
}

func renderOptions(ctx *cli.Context) (renderer.Options, error) {
	opts := renderer.DefaultOptions()

	if ctx.Int("width") <= 0 {
		return opts, renderer.ErrInvalidFrameSize
	}
	if ctx.Int("samples-per-pixel") <= 0 {
		return opts, renderer.ErrNoSamples
	}
	if ctx.Int("depth") < 0 {
		return opts, fmt.Errorf("max depth must not be negative; got %d", ctx.Int("depth"))
	}

	opts.FrameW = uint32(ctx.Int("width"))
	opts.SamplesPerPixel = uint32(ctx.Int("samples-per-pixel"))
	opts.MaxDepth = uint32(ctx.Int("depth"))
	opts.NumWorkers = ctx.Int("workers")
	opts.Seed = ctx.Uint64("seed")
	opts.UseBvh = !ctx.Bool("no-bvh")
	return opts, nil
}

func schedulerByName(name string) (tracer.BlockScheduler, error) {
	switch name {
	case "", "round-robin":
		return tracer.NewRoundRobinScheduler(), nil
	case "perfect":
		return tracer.NewPerfectScheduler(), nil
	}
	return nil, fmt.Errorf("unknown scheduler %q; expected round-robin or perfect", name)
}

// Load the scene, render it and write the frame to outFile.
func renderScene(sceneFile, outFile string, scheduler tracer.BlockScheduler, opts renderer.Options) error {
	sc, err := reader.ReadScene(sceneFile)
	if err != nil {
		return err
	}
	logger.Infof("loaded %d objects from %s", len(sc.Objects), sceneFile)

	r, err := renderer.NewDefault(sc, scheduler, opts)
	if err != nil {
		return err
	}
	defer r.Close()

	if err = r.Render(); err != nil {
		return err
	}

	if err = frame.Write(r.Frame().Image(), outFile); err != nil {
		return err
	}

	displayFrameStats(r.Stats())
	return nil
}

func displayFrameStats(stats renderer.FrameStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Tracer", "Rows", "% of frame", "Render time"})
	for _, stat := range stats.Tracers {
		table.Append([]string{
			stat.Id,
			fmt.Sprintf("%d", stat.BlockH),
			fmt.Sprintf("%02.1f %%", stat.FramePercent),
			stat.RenderTime.String(),
		})
	}
	table.SetFooter([]string{"", "", "TOTAL", stats.RenderTime.String()})

	table.Render()
	logger.Noticef("frame statistics\n%s", buf.String())
}
