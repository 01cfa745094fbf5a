package history

import "errors"

var (
	// ErrDecode возвращается, когда blob журнала повреждён
	ErrDecode = errors.New("history.repository: failed to decode history blob")

	// ErrEncode возвращается при ошибке сериализации журнала
	ErrEncode = errors.New("history.repository: failed to encode history blob")

	// ErrWrite возвращается при ошибке записи файла журнала
	ErrWrite = errors.New("history.repository: failed to write history file")

	// ErrRead возвращается при ошибке чтения файла журнала
	ErrRead = errors.New("history.repository: failed to read history file")
)
