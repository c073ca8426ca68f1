//go:build cgo

package tesseract

import "github.com/otiai10/gosseract/v2"

func newClient() (client, error) { return gosseract.NewClient(), nil }

func libraryVersion() (string, error) { return gosseract.Version(), nil }

func installedLanguages() ([]string, error) { return gosseract.GetAvailableLanguages() }
