// Command paintdemo replays a paint session script and saves the canvas.
//
// Usage:
//
//	paintdemo -script session.yaml -output canvas.png
//
// Without -script a built-in demo session is replayed.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strings"

	"github.com/gogpu/paintkit"
	"github.com/gogpu/paintkit/script"
	"github.com/gogpu/paintkit/session"
)

// demoScript sketches a few shapes, smudges across them and embosses the result.
const demoScript = `
width: 640
height: 480
steps:
  - color: blue
  - width: 10
  - press: [40, 60]
  - drag: [[120, 90], [200, 60], [280, 120], [360, 80]]
  - release: true
  - tool: rectangle
  - color: red
  - press: [80, 200]
  - drag: [[260, 320]]
  - release: true
  - tool: oval
  - color: "#22aa44"
  - press: [300, 180]
  - drag: [[540, 400]]
  - release: true
  - tool: line
  - color: black
  - width: 3
  - press: [20, 440]
  - drag: [[620, 240]]
  - release: true
  - tool: smudge
  - press: [60, 260]
  - drag: [[200, 260], [420, 300], [580, 300]]
  - release: true
  - command: Blur 5, Emboss
`

func main() {
	var (
		scriptPath = flag.String("script", "", "session script (YAML); empty runs the built-in demo")
		output     = flag.String("output", "canvas.png", "output file")
		workers    = flag.Int("workers", runtime.GOMAXPROCS(0), "filter goroutines")
		verbose    = flag.Bool("v", false, "log every step")
	)
	flag.Parse()

	if *verbose {
		paintkit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, *scriptPath, *output, *workers); err != nil {
		log.Fatalf("paintdemo: %v", err)
	}
}

func run(ctx context.Context, scriptPath, output string, workers int) error {
	s, err := loadScript(scriptPath)
	if err != nil {
		return err
	}

	sess := s.NewSession(session.WithWorkers(workers))
	defer sess.Close()

	if err := s.Run(ctx, sess); err != nil {
		return err
	}
	if err := sess.SavePNG(output); err != nil {
		return err
	}

	c := sess.Canvas()
	log.Printf("Canvas saved to %s (%dx%d, %d steps)\n", output, c.Width(), c.Height(), len(s.Steps))
	return nil
}

func loadScript(path string) (*script.Script, error) {
	if path == "" {
		return script.Load(strings.NewReader(demoScript))
	}
	return script.LoadFile(path)
}
