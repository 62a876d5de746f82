// SPDX-License-Identifier: Unlicense OR MIT

package app

import "errors"

var (
	// ErrAssetMissing is returned by LoadAsset when no bundled asset
	// has the given name.
	ErrAssetMissing = errors.New("app: asset missing")
	// ErrEmptyBuffer is returned by LoadAsset when the asset exists
	// but its contents cannot be mapped.
	ErrEmptyBuffer = errors.New("app: asset has empty buffer")
)

// assetManager abstracts AAssetManager so the loader can be exercised
// against a fake.
type assetManager interface {
	// open returns nil if no asset has the given name.
	open(name string) asset
}

// asset is one open native asset handle. buffer returns a view into
// the asset's contents, valid until close, or nil if the contents
// cannot be mapped. close releases the handle; it is called at most
// once.
type asset interface {
	buffer() []byte
	close()
}

// loadAsset returns an owned copy of the named asset's contents. The
// native handle is closed exactly once on every path.
func loadAsset(mgr assetManager, name string) ([]byte, error) {
	a := mgr.open(name)
	if a == nil {
		return nil, ErrAssetMissing
	}
	defer a.close()
	buf := a.buffer()
	if buf == nil {
		return nil, ErrEmptyBuffer
	}
	out := make([]byte, len(buf))
	copy(out, buf)
	return out, nil
}
