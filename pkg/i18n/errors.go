package i18n

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyLanguage        = errors.New("i18n: language cannot be empty")
	ErrInvalidLanguage      = errors.New("i18n: invalid language code")
	ErrDuplicateLanguage    = errors.New("i18n: duplicate language")
	ErrEmptyNamespace       = errors.New("i18n: namespace cannot be empty")
	ErrReferenceNotListed   = errors.New("i18n: reference language is not in the language list")
	ErrNilFS                = errors.New("i18n: file system cannot be nil")
	ErrDocumentNotFound     = errors.New("i18n: translation document not found")
	ErrInvalidDocument      = errors.New("i18n: invalid translation document")
	ErrUnsupportedExtension = errors.New("i18n: unsupported document extension")
)

// LoadError describes a translation document that could not be loaded.
// The language it belongs to is treated as empty.
type LoadError struct {
	Lang string
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("loading %q: %v", e.Lang, e.Err)
	}
	return fmt.Sprintf("loading %q from %q: %v", e.Lang, e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
