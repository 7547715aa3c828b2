package logging

import (
	"context"
	"sync"
)

type Level string

const (
	LevelDebug   Level = "debug"
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

type Record struct {
	Level   Level
	Message string
	Entries []LogEntry
}

// FakeLogger keeps every record in memory.
type FakeLogger struct {
	Records []Record
	lock    sync.Mutex
}

func NewFakeLogger() *FakeLogger {
	return &FakeLogger{}
}

func (l *FakeLogger) Debug(ctx context.Context, msg string, entries ...LogEntry) {
	l.log(LevelDebug, msg, entries)
}

func (l *FakeLogger) Info(ctx context.Context, msg string, entries ...LogEntry) {
	l.log(LevelInfo, msg, entries)
}

func (l *FakeLogger) Warning(ctx context.Context, msg string, entries ...LogEntry) {
	l.log(LevelWarning, msg, entries)
}

func (l *FakeLogger) Error(ctx context.Context, msg string, entries ...LogEntry) {
	l.log(LevelError, msg, entries)
}

func (l *FakeLogger) log(level Level, msg string, entries []LogEntry) {
	l.lock.Lock()
	defer l.lock.Unlock()
	l.Records = append(l.Records, Record{Level: level, Message: msg, Entries: entries})
}

func (l *FakeLogger) CountAt(level Level) int {
	l.lock.Lock()
	defer l.lock.Unlock()
	count := 0
	for _, r := range l.Records {
		if r.Level == level {
			count++
		}
	}
	return count
}
