package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	cli "github.com/urfave/cli/v2"

	"mos6502/asm"
	"mos6502/cpu"
	"mos6502/debugger"
	"mos6502/mem"
	"mos6502/peripheral"
)

// Exit codes distinguish what went wrong: 0 on clean BRK, 1 on an assembly
// error (bad source), 2 on a CPU fault (illegal opcode or handler panic).
const (
	exitOK           = 0
	exitAssembleFail = 1
	exitCPUFault     = 2
)

// defaultOutPath derives build's default output path from the source file
// name: its base name with the extension replaced by ".bin".
func defaultOutPath(srcPath string) string {
	base := filepath.Base(srcPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return base + ".bin"
}

func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

const fbWidth, fbHeight = 32, 32

func newBus() (*mem.Bus, *peripheral.Framebuffer) {
	var bus mem.Bus
	fb := peripheral.NewFramebuffer(peripheral.AddrFramebuffer, fbWidth, fbHeight)
	bus.RegisterRange(peripheral.AddrFramebuffer, peripheral.AddrFramebuffer+fbWidth*fbHeight-1, fb)
	bus.RegisterHandler(peripheral.AddrRNG, peripheral.RNG{})
	bus.RegisterHandler(peripheral.AddrCharOut, peripheral.NewCharOut(os.Stdout))
	bus.RegisterHandler(peripheral.AddrKeyIn, &peripheral.KeyIn{})
	bus.RegisterHandler(peripheral.AddrFlushTrigger, peripheral.NewFlushTrigger(nil))
	return &bus, fb
}

func assembleFile(path string, start uint16) (*asm.Result, error) {
	src, err := readSource(path)
	if err != nil {
		return nil, err
	}
	return asm.Assemble(src, start)
}

func runAction(c *cli.Context) error {
	if c.Args().Len() < 1 {
		return cli.Exit("missing source file argument", exitAssembleFail)
	}
	start := uint16(c.Uint("start"))

	result, err := assembleFile(c.Args().First(), start)
	if err != nil {
		return cli.Exit(fmt.Sprintf("assembly failed: %v", err), exitAssembleFail)
	}

	bus, _ := newBus()
	core := cpu.New(bus, result.Start)

	if c.Bool("debug") {
		bus.Load(result.Image, result.Start)
		if err := debugger.Run(core, result.Start, result.LineMap); err != nil {
			return cli.Exit(fmt.Sprintf("cpu fault: %v", err), exitCPUFault)
		}
		return nil
	}

	if err := core.Run(result.Image); err != nil {
		return cli.Exit(fmt.Sprintf("cpu fault: %v", err), exitCPUFault)
	}
	return nil
}

func buildAction(c *cli.Context) error {
	if c.Args().Len() < 1 {
		return cli.Exit("missing source file argument", exitAssembleFail)
	}
	start := uint16(c.Uint("start"))

	result, err := assembleFile(c.Args().First(), start)
	if err != nil {
		return cli.Exit(fmt.Sprintf("assembly failed: %v", err), exitAssembleFail)
	}

	out := c.String("out")
	if out == "" {
		out = defaultOutPath(c.Args().First())
	}
	if err := os.WriteFile(out, result.Image, 0644); err != nil {
		return cli.Exit(fmt.Sprintf("could not write %s: %v", out, err), exitAssembleFail)
	}
	return nil
}

func main() {
	app := &cli.App{
		Name:  "mos6502",
		Usage: "assemble and run 6502 programs",
		Commands: []*cli.Command{
			{
				Name:      "run",
				Usage:     "assemble a source file and execute it",
				ArgsUsage: "<source.asm>",
				Action:    runAction,
				Flags: []cli.Flag{
					&cli.UintFlag{Name: "start", Value: uint(cpu.DefaultStart), Usage: "load/start address"},
					&cli.BoolFlag{Name: "debug", Usage: "step through execution in an interactive TUI"},
				},
			},
			{
				Name:      "build",
				Usage:     "assemble a source file to a raw binary image",
				ArgsUsage: "<source.asm>",
				Action:    buildAction,
				Flags: []cli.Flag{
					&cli.UintFlag{Name: "start", Value: uint(cpu.DefaultStart), Usage: "origin address"},
					&cli.StringFlag{Name: "out", Usage: "output file path (default: source name with .bin suffix)"},
				},
			},
		},
	}
	// cli.Exit errors carry their own code and are handled inside Run;
	// anything else (usage errors) lands here.
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitAssembleFail)
	}
}
