package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/achilleasa/spheretrace/asset/scene"
	"github.com/achilleasa/spheretrace/asset/scene/reader"
	"github.com/achilleasa/spheretrace/asset/scene/writer"
	core "github.com/achilleasa/spheretrace/scene"
	"github.com/achilleasa/spheretrace/types"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Display scene info.
func ShowSceneInfo(ctx *cli.Context) error {
	setupLogging(ctx)

	if ctx.NArg() != 1 {
		return errors.New("missing scene file argument")
	}

	sc, err := reader.ReadScene(ctx.Args().First())
	if err != nil {
		return err
	}

	logger.Noticef("scene information:\n%s", sceneStats(sc))
	return nil
}

// Render a table with object counts and scene bounds.
func sceneStats(sc *core.Scene) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Property", "Value"})

	moving := 0
	for index := range sc.Objects {
		if sc.Objects[index].Moving {
			moving++
		}
	}

	counts := sc.MaterialCounts()
	table.Append([]string{"Spheres", fmt.Sprintf("%d", len(sc.Objects))})
	table.Append([]string{"Moving spheres", fmt.Sprintf("%d", moving)})
	for _, mt := range []core.MaterialType{core.LambertianMaterial, core.MetalMaterial, core.DielectricMaterial} {
		table.Append([]string{fmt.Sprintf("%s materials", mt), fmt.Sprintf("%d", counts[mt])})
	}

	bounds := core.SphereList(sc.Objects).BBox()
	table.Append([]string{"Bounds min", fmt.Sprintf("%v", bounds.Min())})
	table.Append([]string{"Bounds max", fmt.Sprintf("%v", bounds.Max())})
	table.Append([]string{"Camera", fmt.Sprintf("%v -> %v, vfov %.1f, aspect %.3f", sc.Camera.LookFrom, sc.Camera.LookAt, sc.Camera.VFov, sc.Camera.AspectRatio)})

	table.Render()
	return buf.String()
}

// Generate a random spheres scene and write it to a file.
func GenerateScene(ctx *cli.Context) error {
	setupLogging(ctx)

	seed := ctx.Uint64("seed")
	if seed == 0 {
		seed = rand.Uint64()
	}

	doc := scene.Generate(types.NewRandomSource(seed, seed))
	outFile := ctx.String("out")
	if err := writer.WriteScene(doc, outFile); err != nil {
		return err
	}

	logger.Noticef("wrote scene with %d objects to %s (seed: %d)", len(doc.Objects), outFile, seed)
	return nil
}
