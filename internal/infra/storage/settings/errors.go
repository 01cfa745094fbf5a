package settings

import "errors"

var (
	// ErrNotFound возвращается, когда файл настроек ещё не создан
	ErrNotFound = errors.New("settings.repository: settings file not found")

	// ErrDecode возвращается, когда blob настроек повреждён
	ErrDecode = errors.New("settings.repository: failed to decode settings blob")

	// ErrEncode возвращается при ошибке сериализации настроек
	ErrEncode = errors.New("settings.repository: failed to encode settings blob")

	// ErrWrite возвращается при ошибке записи файла настроек
	ErrWrite = errors.New("settings.repository: failed to write settings file")

	// ErrRead возвращается при ошибке чтения файла настроек
	ErrRead = errors.New("settings.repository: failed to read settings file")
)
