// internal/logger/logger.go
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"github.com/gookit/color"
)

// Level — уровень важности сообщения
type Level int

const (
	Info Level = iota
	Warning
	Error
)

// Tag возвращает метку уровня в квадратных скобках.
func (l Level) Tag() string {
	switch l {
	case Info:
		return "[INFO]"
	case Warning:
		return "[WARNING]"
	case Error:
		return "[ERROR]"
	default:
		return "[UNKNOWN]"
	}
}

func (l Level) colorTag() string {
	switch l {
	case Info:
		return "green"
	case Warning:
		return "yellow"
	case Error:
		return "red"
	default:
		return "gray"
	}
}

var (
	mu      sync.Mutex
	out     = log.New(os.Stderr, "", log.LstdFlags)
	colored = true
)

// SetOutput перенаправляет вывод логгера.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out.SetOutput(w)
}

// SetFlags меняет флаги стандартного логгера (дата, время).
func SetFlags(flags int) {
	mu.Lock()
	defer mu.Unlock()
	out.SetFlags(flags)
}

// SetColor включает или выключает цветные метки.
func SetColor(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	colored = enabled
}

// Format собирает строку без цвета.
func Format(level Level, text string) string {
	return level.Tag() + " " + text
}

func write(level Level, text string) {
	mu.Lock()
	defer mu.Unlock()
	if !colored {
		out.Println(Format(level, text))
		return
	}
	tag := level.colorTag()
	out.Println(color.Sprintf("<%s>%s</> %s", tag, level.Tag(), text))
}

// Print печатает сообщение с уровнем.
func Print(text string, level Level) {
	write(level, text)
}

// Printf — форматированный вариант Print.
func Printf(level Level, format string, args ...any) {
	write(level, fmt.Sprintf(format, args...))
}

// Value печатает "текст: значение".
func Value(text string, v any, level Level) {
	write(level, fmt.Sprintf("%s: %v", text, v))
}

// Memory печатает адрес указателя.
func Memory(text string, ptr any, level Level) {
	write(level, fmt.Sprintf("%s: %p", text, ptr))
}

func Infof(format string, args ...any)  { Printf(Info, format, args...) }
func Warnf(format string, args ...any)  { Printf(Warning, format, args...) }
func Errorf(format string, args ...any) { Printf(Error, format, args...) }
