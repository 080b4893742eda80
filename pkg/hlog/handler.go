package hlog

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/apex/log"
)

var levelToStrings = [...]string{
	log.DebugLevel: "DEBUG",
	log.InfoLevel:  "INFO",
	log.WarnLevel:  "WARN",
	log.ErrorLevel: "ERROR",
	log.FatalLevel: "FATAL",
}

// Handler writes one line per entry: timestamp, level, message, then the
// entry fields sorted by name.
type Handler struct {
	mu     sync.Mutex
	writer io.Writer
}

func NewHandler(w io.Writer) *Handler {
	return &Handler{writer: w}
}

func (h *Handler) HandleLog(e *log.Entry) error {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	h.mu.Lock()
	defer h.mu.Unlock()

	fmt.Fprintf(h.writer, "%s %s %s", e.Timestamp.Format("2006-01-02 15:04:05"), levelToStrings[e.Level], e.Message)
	for _, name := range names {
		fmt.Fprintf(h.writer, " %s=%v", name, e.Fields[name])
	}
	fmt.Fprintln(h.writer)

	return nil
}
