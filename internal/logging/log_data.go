package logging

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

type LogData struct {
	mutex     *sync.Mutex
	timeItems map[string]int64
	dataItems map[string]interface{}
	logger    *logrus.Logger
}

func NewLogData(logger *logrus.Logger) *LogData {
	return &LogData{
		mutex:     &sync.Mutex{},
		timeItems: make(map[string]int64),
		dataItems: make(map[string]interface{}),
		logger:    logger,
	}
}

func (l *LogData) AddTiming(entryName string) func() {
	startTime := time.Now()

	return func() {
		timeSince := time.Since(startTime).Milliseconds()
		l.mutex.Lock()
		defer l.mutex.Unlock()
		l.timeItems[entryName] = timeSince
	}
}

func (l *LogData) AddToExistingTiming(entryName string) func() {
	startTime := time.Now()

	return func() {
		timeSince := time.Since(startTime).Milliseconds()
		l.mutex.Lock()
		defer l.mutex.Unlock()
		l.timeItems[entryName] += timeSince
	}
}

func (l *LogData) AddData(key string, value interface{}) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.dataItems[key] = value
}

func (l *LogData) Log() *logrus.Entry {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	fields := make(logrus.Fields, len(l.dataItems)+len(l.timeItems))
	for key, value := range l.dataItems {
		fields[key] = value
	}
	for key, value := range l.timeItems {
		fields[key] = value
	}

	return logrus.NewEntry(l.logger).WithFields(fields)
}

type logDataKey struct{}

// WithLogData returns a copy of ctx carrying l.
func WithLogData(ctx context.Context, l *LogData) context.Context {
	return context.WithValue(ctx, logDataKey{}, l)
}

// GetLogData returns the LogData stored in ctx, or nil.
func GetLogData(ctx context.Context) *LogData {
	l, _ := ctx.Value(logDataKey{}).(*LogData)
	return l
}
