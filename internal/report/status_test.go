package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"movetest/internal/driver"
)

func TestReporter_WriteStatus_Uncolored(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, false)
	r.WriteStatus(driver.StatusPass, "0x1::counter::incr")
	assert.Equal(t, "PASS 0x1::counter::incr\n", buf.String())
}

func TestReporter_WriteStatus_ConcurrentWritesStayAtomic(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf, false)

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			r.WriteStatus(driver.StatusPass, "0x1::counter::incr")
			done <- struct{}{}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
	assert.Equal(t, 8, bytes.Count(buf.Bytes(), []byte("\n")))
}
