package todo

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLine(t *testing.T) {
	tests := []struct {
		name string
		todo Todo
		want string
	}{
		{"open", Todo{ID: 1, Description: "buy milk"}, "- [ ] 1: buy milk"},
		{"done", Todo{ID: 2, Description: "write report", Done: true}, "- [x] 2: write report"},
		{"empty description", Todo{ID: 42}, "- [ ] 42: "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.todo.Line())
		})
	}
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, []Todo{
		{ID: 1, Description: "buy milk"},
		{ID: 2, Description: "write report", Done: true},
	})
	require.NoError(t, err)
	assert.Equal(t, "- [ ] List of todos:\n- [ ] 1: buy milk\n- [x] 2: write report\n", buf.String())
}

func TestFormat(t *testing.T) {
	assert.Equal(t, Header+"\n", Format(nil))
	assert.Equal(t, Header+"\n- [x] 7: ship it\n", Format([]Todo{{ID: 7, Description: "ship it", Done: true}}))
}

func TestRenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, nil))
	assert.Equal(t, Header+"\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestRenderWriteError(t *testing.T) {
	err := Render(failingWriter{}, []Todo{{ID: 1, Description: "a"}})
	assert.Error(t, err)
}
