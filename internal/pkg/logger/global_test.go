package logger

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func resetGlobalLogger() {
	mu.Lock()
	globalLogger = nil
	mu.Unlock()
}

func TestGetGlobalLogger_InstallsDefaultOnce(t *testing.T) {
	resetGlobalLogger()

	first := GetGlobalLogger()
	assert.NotNil(t, first)
	assert.Same(t, first, GetGlobalLogger())
}

func TestGetGlobalLogger_ConcurrentFirstUse(t *testing.T) {
	resetGlobalLogger()

	const readers = 32
	loggers := make([]*ZapLogger, readers)
	var wg sync.WaitGroup
	wg.Add(readers)
	for i := 0; i < readers; i++ {
		go func(i int) {
			defer wg.Done()
			loggers[i] = GetGlobalLogger()
		}(i)
	}
	wg.Wait()

	for i := range loggers {
		assert.Same(t, loggers[0], loggers[i])
	}
}

func TestSetGlobalLogger_ReplacesDefault(t *testing.T) {
	resetGlobalLogger()

	zl, err := zap.NewDevelopment()
	assert.NoError(t, err)
	custom := &ZapLogger{Logger: zl, sugar: zl.Sugar()}

	SetGlobalLogger(custom)
	assert.Same(t, custom, GetGlobalLogger())
}
