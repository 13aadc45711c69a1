package bot

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/inhies/go-bytesize"
	"go.uber.org/fx"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"bitgale/pkg/imgio"
	"bitgale/pkg/studio"
)

func New(token string, st *studio.Studio, h *History, logger *zap.Logger, opts ...Option) (*Bot, error) {
	pref := tele.Settings{
		Token: token,
		Poller: &tele.LongPoller{
			Timeout: 30 * time.Second,
		},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, err
	}

	bot := &Bot{
		b:   b,
		st:  st,
		h:   h,
		log: logger.With(zap.String("via", "bot")),
	}

	for _, opt := range opts {
		opt(bot)
	}

	return bot, nil
}

type Bot struct {
	b       *tele.Bot
	st      *studio.Studio
	h       *History
	log     *zap.Logger
	saveDir string
}

func (b *Bot) handleBase() {
	usage := func(context tele.Context) error {
		return context.Reply(helpText(b.st.Registry().Usage()))
	}

	b.b.Handle("/start", usage)
	b.b.Handle("/help", usage)
	b.b.Handle("/effects", usage)
}

func (b *Bot) handleImage() {
	b.b.Handle(tele.OnPhoto, func(context tele.Context) error {
		msg := context.Message()
		return b.glitchFile(context, &msg.Photo.File, msg.Caption)
	})

	b.b.Handle(tele.OnDocument, func(context tele.Context) error {
		msg := context.Message()
		if !strings.HasPrefix(msg.Document.MIME, "image/") {
			return context.Reply("Only images are supported")
		}
		return b.glitchFile(context, &msg.Document.File, msg.Caption)
	})
}

func (b *Bot) handleAction() {
	b.b.Handle("/apply", func(context tele.Context) error {
		log := b.h.Curr(context.Chat().ID)
		if log == nil {
			return context.Reply("Send an image first")
		}

		return b.glitch(context, log.img, context.Message().Payload)
	})

	b.b.Handle("/undo", func(context tele.Context) error {
		log := b.h.Undo(context.Chat().ID)
		if log == nil {
			return context.Reply("Nothing to undo")
		}

		return b.reply(context, log.img, log.effects)
	})

	b.b.Handle("/save", func(context tele.Context) error {
		if b.saveDir == "" {
			return context.Reply("Saving is disabled")
		}

		log := b.h.Curr(context.Chat().ID)
		if log == nil {
			return context.Reply("Current no image")
		}

		path, err := b.st.Save(log.img, strings.TrimRight(b.saveDir, "/")+"/")
		if err != nil {
			return context.Reply(fmt.Sprintf("save failed: %s", err))
		}

		return context.Reply(fmt.Sprintf("Saved as %s", path))
	})
}

func (b *Bot) glitchFile(context tele.Context, file *tele.File, chain string) error {
	rc, err := b.b.File(file)
	if err != nil {
		return context.Reply(fmt.Sprintf("download failed: %s", err))
	}
	defer rc.Close()

	img, err := imaging.Decode(rc, imaging.AutoOrientation(true))
	if err != nil {
		return context.Reply(fmt.Sprintf("decode failed: %s", err))
	}

	b.h.Push(context.Chat().ID, img, nil)

	if strings.TrimSpace(chain) == "" {
		return context.Reply("Got it, now /apply some effects")
	}

	return b.glitch(context, img, chain)
}

func (b *Bot) glitch(context tele.Context, img image.Image, chain string) error {
	out, names, err := b.st.Apply(img, chain)
	if err != nil {
		b.log.With(zap.Int64("chat", context.Chat().ID), zap.Error(err)).Debug("apply failed")
		return context.Reply(fmt.Sprintf("apply failed: %s", err))
	}

	b.h.Push(context.Chat().ID, out, names)

	return b.reply(context, out, names)
}

func (b *Bot) reply(context tele.Context, img image.Image, names []string) error {
	bs, err := imgio.EncodePNG(img)
	if err != nil {
		return context.Reply(fmt.Sprintf("encode failed: %s", err))
	}

	return context.Reply(&tele.Document{
		File:     tele.FromReader(bytes.NewReader(bs)),
		FileName: "glitch.png",
		Caption:  caption(names, len(bs)),
	})
}

func (b *Bot) Start() {
	b.handleBase()
	b.handleImage()
	b.handleAction()
	go b.b.Start()
}

func (b *Bot) Stop() {
	go b.b.Stop()
}

// Serve ties the bot polling loop to the fx application lifetime.
func Serve(b *Bot, lifecycle fx.Lifecycle) {
	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			b.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			b.Stop()
			return nil
		},
	})
}

func caption(names []string, size int) string {
	applied := "original"
	if len(names) > 0 {
		applied = strings.Join(names, " > ")
	}
	return fmt.Sprintf("%s (%s)", applied, bytesize.New(float64(size)).String())
}

func helpText(usage string) string {
	lines := []string{
		"Send an image with a caption of effects to glitch it, e.g.",
		"sort -mode r -thr 90; shift -dis 30",
		"",
		"/apply <effects> glitch the last result again",
		"/undo step back one result",
		"/save archive the last result",
		"",
		usage,
	}
	return strings.Join(lines, "\n")
}
