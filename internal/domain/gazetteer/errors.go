package gazetteer

import "errors"

var (
	ErrLanguageNotSupported = errors.New("language not supported")
)
