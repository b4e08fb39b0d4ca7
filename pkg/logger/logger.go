package logger

import (
	"bytes"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger пишет цветной консольный лог в буфер, чтобы демо-страница
// могла показать журнал прогона рядом с диаграммой
type ZapLogger struct {
	log *zap.Logger
	buf *bytes.Buffer
}

func New(level zapcore.Level) *ZapLogger {
	buf := &bytes.Buffer{}

	config := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    colorLevelEncoder,
		EncodeTime:     timeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	encoder := zapcore.NewConsoleEncoder(config)
	core := zapcore.NewCore(encoder, zapcore.AddSync(buf), level)

	return &ZapLogger{
		log: zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1), zap.AddStacktrace(zapcore.ErrorLevel)),
		buf: buf,
	}
}

// Nop - логгер, который никуда не пишет. Для библиотечных вызовов
// и тестов
func Nop() *ZapLogger {
	return &ZapLogger{log: zap.NewNop(), buf: &bytes.Buffer{}}
}

func timeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("[2006-01-02 | 15:04:05]"))
}

func colorLevelEncoder(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	var colorCode string
	switch level {
	case zapcore.DebugLevel:
		colorCode = "\033[36m" // Cyan
	case zapcore.InfoLevel:
		colorCode = "\033[32m" // Green
	case zapcore.WarnLevel:
		colorCode = "\033[33m" // Yellow
	case zapcore.ErrorLevel:
		colorCode = "\033[31m" // Red
	default:
		colorCode = "\033[0m"
	}
	enc.AppendString(colorCode + level.String() + "\033[0m")
}

func (z *ZapLogger) Debug(msg string, fields ...zap.Field) {
	z.log.Debug(msg, fields...)
}

func (z *ZapLogger) Info(msg string, fields ...zap.Field) {
	z.log.Info(msg, fields...)
}

func (z *ZapLogger) Warn(msg string, fields ...zap.Field) {
	z.log.Warn(msg, fields...)
}

func (z *ZapLogger) Error(msg string, fields ...zap.Field) {
	z.log.Error(msg, fields...)
}

// Reset очищает накопленный журнал
func (z *ZapLogger) Reset() {
	z.buf.Reset()
}

// HTML возвращает накопленный журнал как <pre> с цветными span
// вместо ANSI-кодов
func (z *ZapLogger) HTML() string {
	return ansiToHTML(z.buf.String())
}

var ansiRe = regexp.MustCompile(`\033\[(\d+)m`)

var colorMap = map[string]string{
	"31": "red",
	"32": "green",
	"33": "yellow",
	"34": "blue",
	"36": "cyan",
}

// ansiToHTML переводит ANSI-коды цвета в span со встроенным стилем
func ansiToHTML(input string) string {
	var result strings.Builder
	var lastIndex int
	open := false

	result.WriteString("<pre>")
	for _, match := range ansiRe.FindAllStringIndex(input, -1) {
		start, end := match[0], match[1]
		if start > lastIndex {
			result.WriteString(input[lastIndex:start])
		}
		code := input[start+2 : end-1]
		if color, ok := colorMap[code]; ok {
			if open {
				result.WriteString("</span>")
			}
			result.WriteString(`<span style="color: ` + color + `;">`)
			open = true
		} else if code == "0" && open {
			result.WriteString("</span>")
			open = false
		}
		lastIndex = end
	}
	if lastIndex < len(input) {
		result.WriteString(input[lastIndex:])
	}
	if open {
		result.WriteString("</span>")
	}
	result.WriteString("</pre>")
	return result.String()
}
