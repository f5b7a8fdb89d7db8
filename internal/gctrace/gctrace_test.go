package gctrace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
)

func Test_RegisterFlags_defaultsDisabled(t *testing.T) {
	assert := assert.New(t)
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)

	opts := RegisterFlags(fs)
	assert.False(opts.Enabled)
	assert.Empty(opts.File)

	assert.NoError(fs.Parse([]string{"--trace", "--trace-file", "out.log"}))
	assert.True(opts.Enabled)
	assert.Equal("out.log", opts.File)
}

func Test_NewListener_disabledReturnsNilFunc(t *testing.T) {
	assert := assert.New(t)

	fn, closeFn, err := NewListener(&Options{Enabled: false})
	assert.NoError(err)
	assert.Nil(fn)
	assert.NotNil(closeFn)
	assert.NoError(closeFn())
}

func Test_NewListener_writesToFile(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "trace.log")

	fn, closeFn, err := NewListener(&Options{Enabled: true, File: path})
	assert.NoError(err)
	assert.NotNil(fn)

	fn("state: 0")
	fn("action: shift")
	assert.NoError(closeFn())

	contents, err := os.ReadFile(path)
	assert.NoError(err)
	assert.Contains(string(contents), "state: 0")
	assert.Contains(string(contents), "action: shift")
}
