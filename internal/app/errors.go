package app

import "errors"

// ErrHeadless is returned by Play when the binary was built without the
// ebiten tag.
var ErrHeadless = errors.New("windowed display requires building with the 'ebiten' tag")
