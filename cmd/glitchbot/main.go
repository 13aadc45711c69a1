package main

import (
	"math/rand"
	"time"

	flag "github.com/spf13/pflag"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"bitgale/pkg/bot"
	"bitgale/pkg/imgio"
	"bitgale/pkg/mixer"
	"bitgale/pkg/studio"
)

var tgToken = flag.String("tg-token", "", "telegram bot token")
var seed = flag.Int64("seed", 0, "random seed for shift, 0 picks one")
var maxWidth = flag.Int("max-width", imgio.DefaultMaxWidth, "work on a downscaled copy above this width*height")
var maxHeight = flag.Int("max-height", imgio.DefaultMaxHeight, "work on a downscaled copy above this width*height")
var history = flag.Int("history", 5, "results kept per chat for /undo")
var saveDir = flag.String("save-dir", "", "enable /save into this dir")
var debug = flag.Bool("debug", false, "set debug")

func main() {
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	fx.New(
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),
		fx.Provide(
			func() (*zap.Logger, error) {
				if *debug {
					return zap.NewDevelopment()
				}
				return zap.NewProduction()
			},
			func() mixer.Rand {
				return rand.New(rand.NewSource(*seed))
			},
			func(logger *zap.Logger) (*imgio.Loader, *imgio.Saver, error) {
				fs, err := imgio.NewFs("")
				if err != nil {
					return nil, nil, err
				}
				return imgio.NewLoader(fs, logger, imgio.WithMaxSize(*maxWidth, *maxHeight)),
					imgio.NewSaver(fs, logger, imgio.WithMakeDirs(true)),
					nil
			},
			func() *bot.History {
				return bot.NewHistory(*history)
			},
			mixer.NewRegistry,
			studio.New,
			func(st *studio.Studio, h *bot.History, logger *zap.Logger) (*bot.Bot, error) {
				return bot.New(*tgToken, st, h, logger, bot.WithSaveDir(*saveDir))
			},
		),
		fx.Invoke(
			bot.Serve,
		),
	).Run()
}
