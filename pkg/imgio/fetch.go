package imgio

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
)

func (l *Loader) fetch(url string) ([]byte, error) {
	resp, err := l.cli.R().Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetch %s failed: %w", url, err)
	}

	defer func() {
		_ = resp.RawBody().Close()
	}()

	if resp.StatusCode() == http.StatusNotFound {
		return nil, errors.Wrapf(ErrNotFound, "%s", url)
	} else if resp.IsError() {
		return nil, fmt.Errorf("fetch %s failed: %s", url, resp.Status())
	}

	bar := progressbar.DefaultBytes(resp.RawResponse.ContentLength, fmt.Sprintf("Downloading %s", url))

	var buf bytes.Buffer
	if _, err := io.Copy(io.MultiWriter(&buf, bar), resp.RawBody()); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
