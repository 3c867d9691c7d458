// Package assets loads and caches images, sprite sheets, atlases and fonts.
//
// A Manager replaces a process-wide resource singleton: create one per
// application, share it between goroutines and close it on shutdown.
//
//	m := assets.NewManager(assets.WithCacheSize(256))
//	defer m.Close()
//
//	hero, err := m.SpriteSheet("sprites/hero.png", assets.GridSpec{Width: 32, Height: 32})
//	if err != nil {
//	    return err
//	}
//
// Results are cached by absolute path and load parameters, so repeated calls
// return the same value. Watch evicts entries whose files change on disk;
// the next call reloads them.
package assets
