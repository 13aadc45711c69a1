package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"bitgale/pkg/imgio"
	"bitgale/pkg/mixer"
	"bitgale/pkg/studio"
)

var in = flag.StringP("in", "i", "", "source image path or http(s) url")
var out = flag.StringP("out", "o", "", "output path, a trailing / generates a name")
var effects = flag.StringArrayP("effect", "e", nil, "effect command, repeatable, applied in order")
var root = flag.String("root", "", "resolve local paths under this dir")
var seed = flag.Int64("seed", 0, "random seed for shift, 0 picks one")
var overwrite = flag.Bool("overwrite", false, "replace an existing output")
var mkdir = flag.Bool("mkdir", false, "create missing output dirs")
var maxWidth = flag.Int("max-width", imgio.DefaultMaxWidth, "work on a downscaled copy above this width*height, 0 disables")
var maxHeight = flag.Int("max-height", imgio.DefaultMaxHeight, "work on a downscaled copy above this width*height, 0 disables")
var list = flag.Bool("list", false, "list effects and exit")
var debug = flag.Bool("debug", false, "set debug")

func main() {
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	reg := mixer.NewRegistry(rand.New(rand.NewSource(*seed)))

	if *list {
		fmt.Print(reg.Usage())
		return
	}

	if *in == "" || *out == "" {
		flag.Usage()
		os.Exit(2)
	}

	logger, err := newLogger(*debug)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	fs, err := imgio.NewFs(*root)
	if err != nil {
		logger.With(zap.Error(err)).Fatal("open root failed")
	}

	st := studio.New(
		imgio.NewLoader(fs, logger, imgio.WithMaxSize(*maxWidth, *maxHeight)),
		imgio.NewSaver(fs, logger, imgio.WithOverwrite(*overwrite), imgio.WithMakeDirs(*mkdir)),
		reg,
		logger,
	)

	path, err := st.Render(*in, *out, *effects)
	if err != nil {
		logger.With(zap.Error(err)).Fatal("render failed")
	}

	logger.With(zap.String("path", path), zap.Int64("seed", *seed)).Info("saved")
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
