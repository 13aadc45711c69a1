package studio

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math/rand"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bitgale/pkg/imgio"
	"bitgale/pkg/mixer"
	"bitgale/pkg/pixel"
)

func newStudio(t *testing.T, opts ...imgio.LoaderOption) (*Studio, afero.Fs) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/out", 0755))

	img := image.NewNRGBA(image.Rect(0, 0, 8, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, color.NRGBA{R: uint8(x * 30), G: uint8(y * 60), B: 10, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	require.NoError(t, afero.WriteFile(fs, "/in.png", buf.Bytes(), 0644))

	log := zap.NewNop()
	s := New(
		imgio.NewLoader(fs, log, opts...),
		imgio.NewSaver(fs, log),
		mixer.NewRegistry(rand.New(rand.NewSource(1))),
		log,
	)
	return s, fs
}

func readGrid(t *testing.T, fs afero.Fs, path string) pixel.Grid {
	bs, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(bs))
	require.NoError(t, err)
	return pixel.FromImage(img)
}

func TestRender(t *testing.T) {
	s, fs := newStudio(t)

	path, err := s.Render("/in.png", "/out/a.png", []string{"extend -dis 8", "offset -cnl g -dis 0"})
	require.NoError(t, err)
	assert.Equal(t, "/out/a.png", path)

	g := readGrid(t, fs, path)
	require.Equal(t, 8, g.Width())
	require.Equal(t, 4, g.Height())
	for y, row := range g {
		for _, p := range row {
			assert.Equal(t, pixel.Pixel{0, uint8(y * 60), 10}, p)
		}
	}
}

func TestRenderThumbnailRestoresSize(t *testing.T) {
	s, fs := newStudio(t, imgio.WithMaxSize(4, 2))

	path, err := s.Render("/in.png", "/out/b.png", []string{"sort -mode r"})
	require.NoError(t, err)

	g := readGrid(t, fs, path)
	assert.Equal(t, 8, g.Width())
	assert.Equal(t, 4, g.Height())
}

func TestRenderErrors(t *testing.T) {
	s, fs := newStudio(t)

	_, err := s.Render("/in.png", "/out/c.png", []string{"blur"})
	assert.True(t, errors.Is(err, mixer.ErrUnknownEffect), "got %v", err)

	_, err = s.Render("/nope.png", "/out/c.png", nil)
	assert.True(t, errors.Is(err, imgio.ErrNotFound), "got %v", err)

	_, err = s.Render("/in.png", "/out/c.png", []string{"offset -dis 99"})
	assert.True(t, errors.Is(err, pixel.ErrInvalidOption), "got %v", err)

	exists, err := afero.Exists(fs, "/out/c.png")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = s.Render("/in.png", "/out/c.png", nil)
	require.NoError(t, err)
	_, err = s.Render("/in.png", "/out/c.png", nil)
	assert.True(t, errors.Is(err, imgio.ErrOverwriteDenied), "got %v", err)
}

func TestApply(t *testing.T) {
	s, _ := newStudio(t)

	src := image.NewNRGBA(image.Rect(0, 0, 3, 5))
	out, names, err := s.Apply(src, "rotate -ang 90 -fix true; extend")
	require.NoError(t, err)
	assert.Equal(t, []string{"rotate", "extend"}, names)
	assert.Equal(t, image.Pt(5, 3), out.Bounds().Size())

	_, _, err = s.Apply(src, "rotate -ang 10")
	assert.True(t, errors.Is(err, pixel.ErrInvalidAngle), "got %v", err)
}

func TestApplyConcurrent(t *testing.T) {
	s, _ := newStudio(t)
	src := image.NewNRGBA(image.Rect(0, 0, 6, 4))

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				out, names, err := s.Apply(src, "shift -dis 5")
				if assert.NoError(t, err) {
					assert.Equal(t, []string{"shift"}, names)
					assert.Equal(t, image.Pt(6, 4), out.Bounds().Size())
				}
			}
		}()
	}
	wg.Wait()
}
