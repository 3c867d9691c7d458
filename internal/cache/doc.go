// Package cache provides the generic LRU cache behind the asset manager.
//
//	c := cache.New[string, *sr.Image](64)
//	img, hit, err := c.GetOrCreate(path, func() (*sr.Image, error) {
//		return sr.Load(path)
//	})
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
