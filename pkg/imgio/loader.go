package imgio

import (
	"bytes"
	"image"
	"io"
	"os"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"bitgale/pkg/pixel"
)

// Images above DefaultMaxWidth*DefaultMaxHeight pixels are worked on as a downscaled copy.
const (
	DefaultMaxWidth  = 1920
	DefaultMaxHeight = 1080
)

// Source is a decoded image ready for the effects.
type Source struct {
	Grid pixel.Grid
	// Original is the size of the decoded image, before any downscale.
	Original image.Point
	// Loaded is the size of Grid as it was produced.
	Loaded image.Point
}

func (s *Source) Thumb() bool {
	return s.Original != s.Loaded
}

func NewLoader(fs afero.Fs, logger *zap.Logger, opts ...LoaderOption) *Loader {
	l := &Loader{
		fs:   fs,
		cli:  resty.New().SetDoNotParseResponse(true),
		log:  logger.With(zap.String("via", "imgio-loader")),
		maxW: DefaultMaxWidth,
		maxH: DefaultMaxHeight,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

type Loader struct {
	fs   afero.Fs
	cli  *resty.Client
	log  *zap.Logger
	maxW int
	maxH int
}

// Load reads an image from the filesystem, or over HTTP when path is an http(s) URL.
func (l *Loader) Load(path string) (*Source, error) {
	var bs []byte
	var err error

	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		bs, err = l.fetch(path)
	} else {
		bs, err = afero.ReadFile(l.fs, path)
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrNotFound, "%s", path)
		}
	}

	if err != nil {
		return nil, err
	}

	l.log.With(zap.String("path", path), zap.Int("bytes", len(bs))).Debug("read")

	return l.Decode(bytes.NewReader(bs))
}

func (l *Loader) Decode(r io.Reader) (*Source, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, errors.Wrapf(ErrDecode, "%v", err)
	}

	return l.FromImage(img), nil
}

// FromImage converts img to a Source, downscaling it when it exceeds the size ceiling.
func (l *Loader) FromImage(img image.Image) *Source {
	orig := img.Bounds().Size()

	if l.maxW > 0 && l.maxH > 0 && orig.X*orig.Y > l.maxW*l.maxH {
		img = imaging.Fit(img, l.maxW, l.maxH, imaging.Lanczos)
		l.log.With(
			zap.Int("w", orig.X),
			zap.Int("h", orig.Y),
			zap.Int("thumb-w", img.Bounds().Dx()),
			zap.Int("thumb-h", img.Bounds().Dy()),
		).Info("larger than ceiling, working on a downscaled copy")
	}

	return &Source{
		Grid:     pixel.FromImage(img),
		Original: orig,
		Loaded:   img.Bounds().Size(),
	}
}

// Upscale brings an effect result computed on a thumbnail back to full resolution.
// Results that kept the thumbnail size get exactly the original size, others are
// scaled by the same factor. Nearest neighbour keeps the hard glitch edges.
func Upscale(img image.Image, src *Source) image.Image {
	if !src.Thumb() {
		return img
	}

	size := img.Bounds().Size()
	if size == src.Loaded {
		return imaging.Resize(img, src.Original.X, src.Original.Y, imaging.NearestNeighbor)
	}

	f := float64(src.Original.X) / float64(src.Loaded.X)
	w := int(float64(size.X)*f + 0.5)
	h := int(float64(size.Y)*f + 0.5)
	return imaging.Resize(img, w, h, imaging.NearestNeighbor)
}
