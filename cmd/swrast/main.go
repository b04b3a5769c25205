// swrast - CPU software triangle rasterizer, viewed in a terminal.
//
// Controls:
//
//	Mouse drag  - Orbit the camera
//	Scroll      - Zoom in/out
//	P           - Toggle orthographic/perspective projection
//	G           - Toggle Gouraud/flat shading
//	[ / ]       - Decrease/increase ambient intensity
//	Esc         - Quit
package main

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	uv "github.com/charmbracelet/ultraviolet"
	"github.com/spf13/cobra"

	"github.com/sean-h/swrast/internal/session"
	"github.com/sean-h/swrast/pkg/loader"
	"github.com/sean-h/swrast/pkg/math3d"
	"github.com/sean-h/swrast/pkg/raster"
	"github.com/sean-h/swrast/pkg/term"
)

const version = "0.1.0"

const targetFPS = 60

var backgroundColor = color.RGBA{R: 30, G: 30, B: 40, A: 255}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	var (
		modelPath    string
		materialPath string
		width        uint
		height       uint
		showVersion  bool
		helpAlias    bool
	)

	root := &cobra.Command{
		Use:           "swrast",
		Short:         "CPU software triangle rasterizer, viewed in a terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if helpAlias {
				return cmd.Help()
			}
			if showVersion {
				fmt.Fprintln(os.Stdout, version)
				return nil
			}
			if modelPath == "" {
				return fmt.Errorf("--model is required")
			}
			return run(logger, modelPath, materialPath, int(width), int(height))
		},
	}

	// --model/--m, --width/--w, and --version/--v are each two long
	// flags sharing one destination variable. --height's own --h alias
	// is deliberately not registered: the original parameter table
	// gives both --help and --height a --h alias, but its help check
	// runs before alias matching, so --h always resolves to help there
	// too. --h below is wired only to helpAlias, reproducing that same
	// resolution without the original's now-unreachable --height
	// alias.
	root.Flags().StringVar(&modelPath, "model", "", "path to the .obj mesh (required)")
	root.Flags().StringVar(&modelPath, "m", "", "alias of --model")
	root.Flags().StringVar(&materialPath, "material", "", "path to the TOML material manifest")
	root.Flags().UintVar(&width, "width", 80, "initial viewport width in terminal columns")
	root.Flags().UintVar(&width, "w", 80, "alias of --width")
	root.Flags().UintVar(&height, "height", 24, "initial viewport height in terminal rows")
	root.Flags().BoolVar(&showVersion, "version", false, "print the program version and exit")
	root.Flags().BoolVar(&showVersion, "v", false, "alias of --version")
	root.Flags().BoolVar(&helpAlias, "h", false, "alias of --help")

	if err := root.Execute(); err != nil {
		logger.Error("swrast: fatal", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, modelPath, materialPath string, width, height int) error {
	mesh, err := loader.LoadMesh(modelPath)
	if err != nil {
		return fmt.Errorf("load mesh: %w", err)
	}

	var material *raster.Material
	if materialPath != "" {
		material, err = loader.LoadMaterial(materialPath)
		if err != nil {
			return fmt.Errorf("load material: %w", err)
		}
	}

	terminal := uv.DefaultTerminal()

	termWidth, termHeight := width, height
	if w, h, err := terminal.GetSize(); err == nil && w > 0 && h > 0 {
		termWidth, termHeight = w, h
	}

	if err := terminal.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}
	terminal.EnterAltScreen()
	terminal.HideCursor()
	terminal.Resize(termWidth, termHeight)

	fmt.Fprint(os.Stdout, "\x1b[?1003h\x1b[?1006h")

	fb := term.NewFramebuffer(termWidth, termHeight*2)
	rasterizer := &raster.Rasterizer{}
	rasterizer.Resize(fb.Width, fb.Height)
	scr := uv.NewScreenBuffer(termWidth, termHeight)

	sess := session.New(10, targetFPS)
	lightDir := math3d.V3(0.5, -1, -0.3).Normalize()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	var mouseDown bool
	var lastMouseX, lastMouseY int

	go func() {
		for ev := range terminal.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				termWidth, termHeight = ev.Width, ev.Height
				terminal.Erase()
				terminal.Resize(termWidth, termHeight)
				fb.Resize(termWidth, termHeight*2)
				rasterizer.Resize(fb.Width, fb.Height)

			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape"), ev.MatchString("ctrl+c"):
					cancel()
					return
				case ev.MatchString("p"):
					sess.ToggleProjection()
				case ev.MatchString("g"):
					sess.ToggleSmoothShading()
				case ev.MatchString("["):
					sess.AdjustAmbient(-0.05)
				case ev.MatchString("]"):
					sess.AdjustAmbient(0.05)
				}

			case uv.MouseClickEvent:
				mouseDown = true
				lastMouseX, lastMouseY = ev.X, ev.Y

			case uv.MouseReleaseEvent:
				mouseDown = false

			case uv.MouseMotionEvent:
				if mouseDown {
					dx := ev.X - lastMouseX
					dy := ev.Y - lastMouseY
					sess.ApplyOrbitImpulse(float64(dx)*0.03, float64(dy)*0.03)
					lastMouseX, lastMouseY = ev.X, ev.Y
				}

			case uv.MouseWheelEvent:
				switch ev.Button {
				case uv.MouseWheelUp:
					sess.Zoom(0.5)
				case uv.MouseWheelDown:
					sess.Zoom(-0.5)
				}
			}
		}
	}()

	cleanup := func() {
		fmt.Fprint(os.Stdout, "\x1b[?1003l\x1b[?1006l")
		terminal.ExitAltScreen()
		terminal.ShowCursor()
		terminal.Shutdown(context.Background())
	}

	frameInterval := time.Second / time.Duration(targetFPS)

	for {
		select {
		case <-ctx.Done():
			cleanup()
			return nil
		default:
		}

		frameStart := time.Now()

		sess.Tick()

		fb.Clear(backgroundColor)

		params := sess.FrameParams(lightDir)
		if material != nil {
			params.Albedo = material.Albedo
		}

		if err := rasterizer.Render(fb, []*raster.Mesh{mesh}, sess.Camera(), params); err != nil {
			logger.Warn("render", "error", err)
		}

		scr = uv.NewScreenBuffer(termWidth, termHeight)
		fb.Draw(scr, uv.Rect(0, 0, termWidth, termHeight))
		if err := terminal.Display(scr); err != nil {
			cleanup()
			return fmt.Errorf("display: %w", err)
		}

		if elapsed := time.Since(frameStart); elapsed < frameInterval {
			time.Sleep(frameInterval - elapsed)
		}
	}
}
