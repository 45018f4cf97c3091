package i18n

import "errors"

var (
	ErrEmptyKey        = errors.New("i18n: translation key cannot be empty")
	ErrEmptyLanguage   = errors.New("i18n: language cannot be empty")
	ErrIncompleteTable = errors.New("i18n: incomplete translation table")
)
