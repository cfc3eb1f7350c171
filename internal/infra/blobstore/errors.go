package blobstore

import "errors"

var (
	// ErrInvalidPath возвращается для пустого пути или пути вне хранилища
	ErrInvalidPath = errors.New("blobstore: invalid object path")

	// ErrAlreadyExists возвращается, если объект с таким путем уже загружен
	ErrAlreadyExists = errors.New("blobstore: object already exists")

	// ErrWrite возвращается при ошибке записи на диск
	ErrWrite = errors.New("blobstore: failed to write object")
)
