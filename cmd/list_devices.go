package cmd

import (
	"bytes"
	"fmt"
	"runtime"

	"github.com/achilleasa/spheretrace/renderer"
	"github.com/olekukonko/tablewriter"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/urfave/cli"
)

// List the host cpus that the renderer can attach tracers to.
func ListDevices(ctx *cli.Context) error {
	setupLogging(ctx)

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Property", "Value"})

	infos, err := cpu.Info()
	if err != nil {
		logger.Warningf("could not query cpu info: %v", err)
	}
	// Linux reports one entry per logical cpu.
	seen := make(map[string]bool)
	for _, info := range infos {
		model := fmt.Sprintf("%s (%.0f MHz)", info.ModelName, info.Mhz)
		if seen[model] {
			continue
		}
		seen[model] = true
		table.Append([]string{"CPU", model})
	}

	if cores, err := cpu.Counts(false); err == nil {
		table.Append([]string{"Physical cores", fmt.Sprintf("%d", cores)})
	}
	if threads, err := cpu.Counts(true); err == nil {
		table.Append([]string{"Logical cores", fmt.Sprintf("%d", threads)})
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		table.Append([]string{"Memory", fmt.Sprintf("%d MiB total, %d MiB available", vm.Total>>20, vm.Available>>20)})
	}
	table.Append([]string{"GOMAXPROCS", fmt.Sprintf("%d", runtime.GOMAXPROCS(0))})
	table.SetFooter([]string{"Render workers", fmt.Sprintf("%d", renderer.DefaultOptions().Workers())})

	table.Render()
	logger.Noticef("system provides:\n%s", buf.String())
	return nil
}
