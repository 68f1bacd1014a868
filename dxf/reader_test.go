package dxf

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReaderNextScansCodeValuePairs(t *testing.T) {
	r := NewReader(strings.NewReader("0\nLINE\n8\n0\n10\n1.500000\n"))

	p, err := r.Next()
	assert.NoError(t, err)
	assert.Equal(t, Pair{Code: 0, Value: "LINE"}, p)

	p, err = r.Next()
	assert.NoError(t, err)
	assert.Equal(t, Pair{Code: 8, Value: "0"}, p)

	p, err = r.Next()
	assert.NoError(t, err)
	assert.Equal(t, Pair{Code: 10, Value: "1.500000"}, p)

	_, err = r.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReaderUnreadReturnsPairAgain(t *testing.T) {
	r := NewReader(strings.NewReader("0\nLINE\n8\n0\n"))

	first, err := r.Next()
	assert.NoError(t, err)

	second, err := r.Next()
	assert.NoError(t, err)

	r.Unread(second)

	replayed, err := r.Next()
	assert.NoError(t, err)
	assert.Equal(t, second, replayed)

	assert.Equal(t, Pair{Code: 0, Value: "LINE"}, first)
}

func TestReaderNextRejectsNonIntegerGroupCode(t *testing.T) {
	r := NewReader(strings.NewReader("not-a-code\nvalue\n"))
	_, err := r.Next()
	assert.Error(t, err)
}

func TestReaderNextRejectsDanglingGroupCode(t *testing.T) {
	r := NewReader(strings.NewReader("0\n"))
	_, err := r.Next()
	assert.Error(t, err)
	assert.NotErrorIs(t, err, io.EOF)
}
