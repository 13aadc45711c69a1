package bot

type Option func(b *Bot)

// WithSaveDir enables /save, results are written under dir with generated names.
func WithSaveDir(dir string) Option {
	return func(b *Bot) {
		b.saveDir = dir
	}
}
