package logger

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Noop(t *testing.T) {
	l := &Noop{}

	l.Debugf("debug")
	l.Infof("info")
	l.Warnf("warn")
	l.Errorf("error")
}

func Test_StdOut(t *testing.T) {
	var result []string
	l := &stdOut{func(msg string) {
		result = append(result, msg)
	}}

	err := io.ErrClosedPipe

	l.Debugf("%s, %d, %v", "gate wait", 10, err)
	l.Infof("%s", "document accepted")
	l.Warnf("retrying %d", 2)
	l.Errorf("status %d: %s", 500, "bad signature")
	l.Errorf("empty args")
	l.Errorf("less args: %s", "one", "two")

	assert.Equal(t, 6, len(result))
	assert.Equal(t, "[DEBUG] gate wait, 10, io: read/write on closed pipe", result[0])
	assert.Equal(t, "[INFO] document accepted", result[1])
	assert.Equal(t, "[WARN] retrying 2", result[2])
	assert.Equal(t, "[ERROR] status 500: bad signature", result[3])
	assert.Equal(t, "[ERROR] empty args", result[4])
	assert.Equal(t, "[ERROR] less args: one%!(EXTRA string=two)", result[5])
}
