package assert

import (
	"os"
	"sync/atomic"

	plog "github.com/phuslu/log"
)

// swapWriter lets SetLogWriter replace the destination while assertions are
// failing on other goroutines.
type swapWriter struct {
	w atomic.Pointer[plog.Writer]
}

func (s *swapWriter) WriteEntry(e *plog.Entry) (int, error) {
	return (*s.w.Load()).WriteEntry(e)
}

func (s *swapWriter) set(writer plog.Writer) { s.w.Store(&writer) }

var logWriter = func() *swapWriter {
	s := &swapWriter{}
	s.set(&plog.IOWriter{Writer: os.Stderr})
	return s
}()

// log reports failed assertions right before the panic, so the diagnostic
// survives even if something up the stack recovers.
var log = &plog.Logger{
	Level:   plog.ErrorLevel,
	Writer:  logWriter,
	Context: plog.NewContext(nil).Str("component", "assert").Value(),
}

// SetLogWriter changes where assertion failures are logged. Default is stderr.
// Safe to call concurrently with failing assertions.
func SetLogWriter(writer plog.Writer) { logWriter.set(writer) }

// SetLogLevel changes the level threshold of the assertion logger.
// Failures are logged at error level, so anything above that silences them.
func SetLogLevel(level plog.Level) { log.SetLevel(level) }
