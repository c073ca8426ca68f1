//go:build !cgo

package tesseract

import "errors"

// errNotLinked is returned by every entry point when the binary was built
// with CGO_ENABLED=0.
var errNotLinked = errors.New("built without cgo, libtesseract not linked")

func newClient() (client, error) { return nil, errNotLinked }

func libraryVersion() (string, error) { return "", errNotLinked }

func installedLanguages() ([]string, error) { return nil, errNotLinked }
