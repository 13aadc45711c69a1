package imgio

import (
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// NewFs returns the OS filesystem, rooted at dir when dir is set.
func NewFs(dir string) (afero.Fs, error) {
	fs := afero.NewOsFs()
	if dir == "" {
		return fs, nil
	}

	if exists, err := afero.DirExists(fs, dir); err != nil {
		return nil, err
	} else if !exists {
		return nil, errors.Wrapf(ErrPath, "dir %s not exists", dir)
	}

	return afero.NewBasePathFs(fs, dir), nil
}
