// Command swrdemo renders the swr demo scenes to a PNG file.
//
// Settings come from SWRDEMO_* environment variables and can be
// overridden by flags:
//
//	SWRDEMO_SCENE=mesh swrdemo -zoom 4 -output mesh.png
package main

import (
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"

	"golang.org/x/image/draw"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/swr"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		slog.Error("swrdemo failed", "err", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.logLevel()}))
	slog.SetDefault(logger)
	swr.SetLogger(logger)

	bm, err := render(cfg.Scene, cfg.Width, cfg.Height)
	if err != nil {
		return err
	}
	img := zoom(bm, cfg.Zoom)
	if err := writePNG(cfg.Output, img); err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	logger.Info("demo saved",
		"scene", cfg.Scene,
		"output", cfg.Output,
		"size", p.Sprintf("%dx%d", img.Bounds().Dx(), img.Bounds().Dy()),
		"painted", p.Sprintf("%d pixels", painted(bm)))
	return nil
}

// render draws the named scene into a new bitmap.
func render(name string, w, h int) (*swr.Bitmap, error) {
	fn, ok := scenes[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q", name)
	}
	bm := swr.NewBitmap(w, h)
	c, err := swr.NewCanvas(bm)
	if err != nil {
		return nil, err
	}
	if err := fn(c); err != nil {
		return nil, fmt.Errorf("scene %s: %w", name, err)
	}
	return bm, nil
}

// zoom magnifies bm by an integer factor without smoothing, so single
// pixels stay visible.
func zoom(bm *swr.Bitmap, factor int) image.Image {
	if factor <= 1 {
		return bm.ToRGBA()
	}
	dst := image.NewRGBA(image.Rect(0, 0, bm.Width*factor, bm.Height*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), bm, bm.Bounds(), draw.Src, nil)
	return dst
}

func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}

// painted returns the number of pixels with nonzero alpha.
func painted(bm *swr.Bitmap) int {
	n := 0
	for y := range bm.Height {
		for _, p := range bm.Row(y) {
			if p.A() != 0 {
				n++
			}
		}
	}
	return n
}
