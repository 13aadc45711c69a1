package imgio

type SaverOption func(s *Saver)

// WithOverwrite allows replacing existing files.
func WithOverwrite(ok bool) SaverOption {
	return func(s *Saver) {
		s.overwrite = ok
	}
}

// WithMakeDirs creates missing parent directories instead of failing.
func WithMakeDirs(ok bool) SaverOption {
	return func(s *Saver) {
		s.mkdirs = ok
	}
}
