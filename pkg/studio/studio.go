package studio

import (
	"fmt"
	"image"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"bitgale/pkg/imgio"
	"bitgale/pkg/mixer"
)

func New(loader *imgio.Loader, saver *imgio.Saver, reg *mixer.Registry, logger *zap.Logger) *Studio {
	return &Studio{
		loader: loader,
		saver:  saver,
		reg:    reg,
		log:    logger,
	}
}

// Studio runs effect chains over images: load, glitch, restore resolution, save.
type Studio struct {
	loader *imgio.Loader
	saver  *imgio.Saver
	reg    *mixer.Registry
	log    *zap.Logger
}

func (s *Studio) Registry() *mixer.Registry {
	return s.reg
}

// Render applies commands, in order, to the image at src and writes the result to dst.
// Commands are parsed before anything is read so a typo fails fast.
func (s *Studio) Render(src, dst string, commands []string) (string, error) {
	effs, err := s.reg.BuildAll(commands)
	if err != nil {
		return "", fmt.Errorf("parse effects failed: %w", err)
	}

	source, err := s.loader.Load(src)
	if err != nil {
		return "", fmt.Errorf("load image failed: %w", err)
	}

	img, err := s.Process(source, effs)
	if err != nil {
		return "", err
	}

	path, err := s.saver.Save(img, dst)
	if err != nil {
		return "", fmt.Errorf("save image failed: %w", err)
	}

	return path, nil
}

// Apply runs a ';' separated chain over an in-memory image.
func (s *Studio) Apply(img image.Image, chain string) (image.Image, []string, error) {
	effs, err := s.reg.BuildChain(chain)
	if err != nil {
		return nil, nil, fmt.Errorf("parse effects failed: %w", err)
	}

	out, err := s.Process(s.loader.FromImage(img), effs)
	if err != nil {
		return nil, nil, err
	}

	names := lo.Map(effs, func(e mixer.Effect, _ int) string { return e.Name() })
	return out, names, nil
}

// Save stores img through the studio's saver.
func (s *Studio) Save(img image.Image, path string) (string, error) {
	return s.saver.Save(img, path)
}

func (s *Studio) Process(src *imgio.Source, effs []mixer.Effect) (image.Image, error) {
	start := time.Now()
	chain := mixer.NewChain(mixer.WithLogger(s.log), mixer.WithEffect(effs...))

	g, err := chain.Apply(src.Grid)
	if err != nil {
		return nil, fmt.Errorf("apply effects failed: %w", err)
	}

	out := imgio.Upscale(g.Image(), src)

	s.log.With(
		zap.Strings("effects", chain.Names()),
		zap.Bool("thumb", src.Thumb()),
		zap.Int("w", out.Bounds().Dx()),
		zap.Int("h", out.Bounds().Dy()),
		zap.String("cost", time.Since(start).String()),
	).Info("rendered")

	return out, nil
}
