package core

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/biolink/biolink-model-toolkit/internal/types"
)

// Warning is one structured diagnostic event recorded by a fallible
// lookup. The core never prints warnings; callers read and clear the log
// explicitly.
type Warning struct {
	Category types.WarningCategory
	Message  string
	Context  string
}

// WarningLog is an append-only diagnostic buffer scoped to a single
// index. Each index owns its own log, so concurrent sessions against
// different schema versions never interleave. Appends and reads are
// serialized by a single mutex; call rates do not justify anything finer.
type WarningLog struct {
	mu      sync.Mutex
	entries []Warning
}

func NewWarningLog() *WarningLog {
	return &WarningLog{}
}

// Append records a warning event.
func (l *WarningLog) Append(category types.WarningCategory, context string, message string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, Warning{
		Category: category,
		Message:  message,
		Context:  context,
	})
}

// All returns a copy of the recorded entries in append order.
func (l *WarningLog) All() []Warning {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Warning, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of recorded entries.
func (l *WarningLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Dump renders the log as text grouped by category. It does not clear
// the log.
func (l *WarningLog) Dump() string {
	entries := l.All()
	if len(entries) == 0 {
		return ""
	}
	grouped := map[types.WarningCategory][]Warning{}
	for _, entry := range entries {
		grouped[entry.Category] = append(grouped[entry.Category], entry)
	}
	categories := make([]string, 0, len(grouped))
	for category := range grouped {
		categories = append(categories, string(category))
	}
	sort.Strings(categories)

	var b strings.Builder
	for _, category := range categories {
		fmt.Fprintf(&b, "%s:\n", category)
		for _, entry := range grouped[types.WarningCategory(category)] {
			fmt.Fprintf(&b, "\t%s | %s\n", entry.Context, entry.Message)
		}
	}
	return b.String()
}

// Clear empties the log.
func (l *WarningLog) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = nil
}
