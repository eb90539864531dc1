package seed

import "errors"

var (
	// ErrReadFile возвращается, когда файл seed-данных не удалось прочитать
	ErrReadFile = errors.New("seed: failed to read file")

	// ErrParse возвращается при некорректном YAML
	ErrParse = errors.New("seed: failed to parse fixtures")

	// ErrInvalidFixture возвращается при некорректной записи (тип, время, ссылки)
	ErrInvalidFixture = errors.New("seed: invalid fixture")

	// ErrApply возвращается, когда запись не удалось сохранить в хранилище
	ErrApply = errors.New("seed: failed to apply fixtures")
)
