package imgio

import (
	"bytes"
	"image"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/inhies/go-bytesize"
	"github.com/pkg/errors"
	"github.com/rs/xid"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

func NewSaver(fs afero.Fs, logger *zap.Logger, opts ...SaverOption) *Saver {
	s := &Saver{
		fs:  fs,
		log: logger.With(zap.String("via", "imgio-saver")),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

type Saver struct {
	fs        afero.Fs
	log       *zap.Logger
	overwrite bool
	mkdirs    bool
}

// Save encodes img in the format named by the path's extension and writes it.
// A path ending in a separator names a directory; the file then gets a generated
// PNG name. The written path is returned.
func (s *Saver) Save(img image.Image, path string) (string, error) {
	if path == "" {
		return "", errors.Wrap(ErrPath, "empty path")
	}

	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		path = filepath.Join(path, xid.New().String()+".png")
	}

	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		return "", errors.Wrapf(ErrPath, "%s: %v", path, err)
	}

	dir := filepath.Dir(path)
	if exists, err := afero.DirExists(s.fs, dir); err != nil {
		return "", err
	} else if !exists {
		if !s.mkdirs {
			return "", errors.Wrapf(ErrPath, "dir %s not exists", dir)
		}
		if err := s.fs.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
	}

	if exists, err := afero.Exists(s.fs, path); err != nil {
		return "", err
	} else if exists && !s.overwrite {
		return "", errors.Wrapf(ErrOverwriteDenied, "%s", path)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format); err != nil {
		return "", err
	}

	if err := afero.WriteFile(s.fs, path, buf.Bytes(), 0644); err != nil {
		return "", err
	}

	s.log.With(
		zap.String("path", path),
		zap.String("size", bytesize.New(float64(buf.Len())).String()),
	).Debug("image saved")

	return path, nil
}

// EncodePNG renders img as PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
