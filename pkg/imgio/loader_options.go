package imgio

import "github.com/go-resty/resty/v2"

type LoaderOption func(l *Loader)

// WithMaxSize sets the downscale ceiling. Zero disables downscaling.
func WithMaxSize(w, h int) LoaderOption {
	return func(l *Loader) {
		l.maxW = w
		l.maxH = h
	}
}

func WithClient(cli *resty.Client) LoaderOption {
	return func(l *Loader) {
		l.cli = cli.SetDoNotParseResponse(true)
	}
}
