package iocli

//go:generate moq -out io_mock.go . IO

// IO абстрагирует терминал CLI: вывод, чтение ответа пользователя и
// определение, поддерживает ли вывод цвет
type IO interface {
	Println(a ...any)
	Printf(format string, a ...any)
	ReadInput(prompt string) (string, error)
	IsTerminal() bool
	Write(p []byte) (n int, err error)
}
