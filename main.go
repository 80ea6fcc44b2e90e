package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/bouncing-balls/internal/config"
	"github.com/iburimskiy/bouncing-balls/internal/game"
	"github.com/iburimskiy/bouncing-balls/internal/physics"
)

// usageOutput receives flag errors and usage text.
var usageOutput io.Writer = os.Stderr

func parseOptions(args []string) (config.Options, error) {
	opts := config.Default()

	fs := flag.NewFlagSet("balls", flag.ContinueOnError)
	fs.SetOutput(usageOutput)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: balls [flags] [balls-per-spawn]\n\nSpace or a mouse click spawns balls, Esc quits.\n\n")
		fs.PrintDefaults()
	}
	fs.IntVar(&opts.WindowWidth, "width", opts.WindowWidth, "initial window width")
	fs.IntVar(&opts.WindowHeight, "height", opts.WindowHeight, "initial window height")
	fs.Int64Var(&opts.Seed, "seed", 0, "random seed (0 = time based)")
	boundary := fs.String("boundary", physics.BoundaryExact.String(), "edge test: exact or truncate (legacy integer comparison)")
	colorMode := fs.String("color", string(config.ColorRGB), "ball colors: rgb or hsv")
	fs.BoolVar(&opts.Sound, "sound", false, "click on every bounce (toggle with M)")
	fs.BoolVar(&opts.HUD, "hud", false, "show the stats overlay (toggle with H)")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}

	switch fs.NArg() {
	case 0:
	case 1:
		n, err := strconv.Atoi(fs.Arg(0))
		if err != nil {
			return opts, fmt.Errorf("balls per spawn must be an integer, got %q", fs.Arg(0))
		}
		opts.BallInc = n
	default:
		return opts, fmt.Errorf("expected at most one argument, got %d", fs.NArg())
	}

	mode, err := physics.ParseBoundaryMode(*boundary)
	if err != nil {
		return opts, err
	}
	opts.Boundary = mode
	opts.Color = config.ColorMode(*colorMode)

	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	return opts, opts.Validate()
}

func main() {
	opts, err := parseOptions(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "balls:", err)
		os.Exit(2)
	}

	g, err := game.NewGame(opts, rand.New(rand.NewSource(opts.Seed)), game.SystemClock)
	if err != nil {
		fatal(err)
	}
	defer g.Close()

	ebiten.SetWindowSize(opts.WindowWidth, opts.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		g.Close()
		fatal(err)
	}
}

// fatal reports a startup or rendering failure on stderr and in a dialog,
// then exits non-zero.
func fatal(err error) {
	fmt.Fprintln(os.Stderr, "balls:", err)
	_ = zenity.Error(err.Error(), zenity.Title("balls"))
	os.Exit(1)
}
