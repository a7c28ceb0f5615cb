package app

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/rook-computer/alerticon/internal/iconfile"
	"github.com/rook-computer/alerticon/internal/render"
)

// SuccessMessage is printed to Stdout once both icon files are in place.
const SuccessMessage = "Icons created successfully!"

type App struct {
	Render func() *image.RGBA
	Files  iconfile.Writer
	Stdout io.Writer
	Logger Logger

	// Root is the directory the output paths are resolved against.
	Root string
}

func New(logger Logger) *App {
	if logger == nil {
		logger = NoopLogger{}
	}
	files := iconfile.NewFileWriter()
	files.Logger = logger
	return &App{
		Render: render.RenderIcon,
		Files:  files,
		Stdout: os.Stdout,
		Logger: logger,
		Root:   ".",
	}
}

// Run renders the icon, writes the PNG and ICO outputs and prints the
// confirmation line. Nothing is printed when writing fails.
func (app *App) Run(ctx context.Context) error {
	if app.Render == nil || app.Files == nil {
		return errors.New("app not configured")
	}
	logger := app.Logger
	if logger == nil {
		logger = NoopLogger{}
	}

	canvas := app.Render()
	logger.Infof("render", "canvas %dx%d drawn", canvas.Bounds().Dx(), canvas.Bounds().Dy())

	pngData, err := iconfile.EncodePNG(canvas)
	if err != nil {
		logger.Errorf("app", "%v", err)
		return err
	}
	icoData, err := iconfile.EncodeICO(canvas)
	if err != nil {
		logger.Errorf("app", "%v", err)
		return err
	}

	files := []iconfile.File{
		{Path: filepath.Join(app.Root, iconfile.PNGPath), Data: pngData},
		{Path: filepath.Join(app.Root, iconfile.ICOPath), Data: icoData},
	}
	if err := app.Files.WriteAll(ctx, files); err != nil {
		return err
	}

	stdout := app.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	_, err = fmt.Fprintln(stdout, SuccessMessage)
	return err
}
