// Package syncer содержит синхронизаторы — владельцев локальных копий
// серверных коллекций. Каждый синхронизатор выполняет сетевые операции,
// вливает ответы сервера в свое состояние и извещает подписчиков об
// изменениях. Состояние публикуется только целиком: новый срез собирается
// копированием, опубликованный срез никогда не изменяется на месте.
package syncer

import "errors"

// Ошибки локальной валидации. Возникают до сетевого вызова,
// состояние при них не меняется.
var (
	ErrEmptyDescription = errors.New("описание задачи пустое")
	ErrEmptyFields      = errors.New("все поля должны быть заполнены")
)

// IsValidationError сообщает, является ли ошибка отказом локальной валидации
func IsValidationError(err error) bool {
	return errors.Is(err, ErrEmptyDescription) || errors.Is(err, ErrEmptyFields)
}
