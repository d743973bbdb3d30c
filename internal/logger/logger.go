package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// DefaultFile is the on-disk log, relative to the working directory.
const DefaultFile = "logs/lab.log"

// maxLines bounds the in-memory history the console shows.
const maxLines = 500

const stampFormat = "2006-01-02 15:04:05"

// Options configures New.
type Options struct {
	Level string // logrus level name; empty means info
	File  string // empty disables the file sink
	Out   io.Writer
}

// Logger is a logrus logger that also keeps recent lines in memory for the
// developer console.
type Logger struct {
	*logrus.Logger
	lines *lineHook
	file  *os.File
}

// New builds a logger writing to opts.Out (stderr when nil) and, when set, appending to opts.File.
func New(opts Options) (*Logger, error) {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: stampFormat})

	level := logrus.InfoLevel
	if opts.Level != "" {
		lv, err := logrus.ParseLevel(opts.Level)
		if err != nil {
			return nil, errors.Wrapf(err, "log level %q", opts.Level)
		}
		level = lv
	}
	l.SetLevel(level)

	out := opts.Out
	if out == nil {
		out = os.Stderr
	}
	lg := &Logger{Logger: l, lines: &lineHook{}}
	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0755); err != nil {
			return nil, errors.Wrap(err, "create log directory")
		}
		f, err := os.OpenFile(opts.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, errors.Wrap(err, "open log file")
		}
		lg.file = f
		out = io.MultiWriter(out, f)
	}
	l.SetOutput(out)
	l.AddHook(lg.lines)
	return lg, nil
}

// Log records a console line (typed input or command output) at info level.
func (l *Logger) Log(line string) {
	l.WithField("source", "console").Info(line)
}

// Lines returns a copy of the recent lines, oldest first. Each is prefixed with [timestamp].
func (l *Logger) Lines() []string {
	return l.lines.snapshot()
}

// Close releases the file sink.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

type lineHook struct {
	mu    sync.Mutex
	lines []string
}

func (h *lineHook) Levels() []logrus.Level { return logrus.AllLevels }

func (h *lineHook) Fire(e *logrus.Entry) error {
	line := "[" + e.Time.Format(stampFormat) + "] "
	if e.Level != logrus.InfoLevel {
		line += strings.ToUpper(e.Level.String()) + " "
	}
	line += e.Message
	for k, v := range e.Data {
		if k == "source" {
			continue
		}
		line += fmt.Sprintf(" %s=%v", k, v)
	}

	h.mu.Lock()
	h.lines = append(h.lines, line)
	if len(h.lines) > maxLines {
		h.lines = append(h.lines[:0], h.lines[len(h.lines)-maxLines:]...)
	}
	h.mu.Unlock()
	return nil
}

func (h *lineHook) snapshot() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.lines))
	copy(out, h.lines)
	return out
}
