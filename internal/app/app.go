package app

// Open wires the application and loads the configured network file, if any.
func Open(cfg Config) (*Wire, error) {
	w, err := NewWire(cfg)
	if err != nil {
		return nil, err
	}
	if cfg.DataFile != "" {
		if err := w.Files.Load(); err != nil {
			w.Close()
			return nil, err
		}
	}
	return w, nil
}

// Close releases the network and flushes the logger.
func (w *Wire) Close() {
	w.Registry.Close()
	_ = w.Log.Sync()
}
