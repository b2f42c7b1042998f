package service

import (
	"errors"
	"strings"
)

var (
	// ErrValidation - некорректные входные данные (ошибка клиента)
	ErrValidation = errors.New("validation failed")
	// ErrNoDonorsFound - корректный запрос, но подходящих доноров в радиусе нет
	ErrNoDonorsFound = errors.New("no donors found nearby")
	// ErrStoreUnavailable - хранилище недоступно или запрос к нему завершился ошибкой
	ErrStoreUnavailable = errors.New("donor store unavailable")

	ErrDonorNotFound   = errors.New("donor not found")
	ErrDonorExists     = errors.New("donor already exists")
	ErrNotGuest        = errors.New("donor is not a guest")
	ErrRequestNotFound = errors.New("pending blood request not found")
)

// ValidationError перечисляет поля, не прошедшие проверку
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "invalid or missing fields: " + strings.Join(e.Fields, ", ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func (e *ValidationError) add(field string) {
	e.Fields = append(e.Fields, field)
}

// orNil возвращает nil, если ни одно поле не добавлено
func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}
