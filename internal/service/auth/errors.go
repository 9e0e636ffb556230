package auth

import "errors"

var (
	// ErrEmptyCredentials возвращается, когда не указан логин или пароль
	ErrEmptyCredentials = errors.New("auth.service: username and password are required")

	// ErrInvalidCredentials возвращается при неверной паре логин/пароль
	ErrInvalidCredentials = errors.New("auth.service: invalid credentials")

	// ErrUserExists возвращается при регистрации занятого логина
	ErrUserExists = errors.New("auth.service: username already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("auth.service: invalid input data")

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = errors.New("auth.service: internal error")
)
