package model_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikhrachel/go-cave/model"
	"github.com/sheikhrachel/go-cave/rules"
)

func TestTerminalRenderer_Binary(t *testing.T) {
	var buf bytes.Buffer
	r := &model.TerminalRenderer{Out: &buf}
	r.Display(model.BinaryCave(parseCave(t, "#.", ".#")), 0)
	assert.Equal(t, "██  \n  ██\n", buf.String())
}

func TestTerminalRenderer_Graded(t *testing.T) {
	g, err := model.NewGridFromRows([][]int{{0, 1, 2, 3}})
	require.NoError(t, err)

	var buf bytes.Buffer
	r := &model.TerminalRenderer{Out: &buf}
	r.Display(model.GradedCave(g), 3)
	assert.Equal(t, "██▓▓▒▒  \n", buf.String())
}

func TestTerminalRenderer_SkipsMalformedCave(t *testing.T) {
	cases := []struct {
		name string
		cave model.Cave
	}{
		{"GradedWithoutGrid", model.Cave{Mode: rules.Graded}},
		{"BinaryWithoutGrid", model.Cave{Mode: rules.Binary}},
		{"UnknownMode", model.Cave{Mode: rules.Mode(3), Binary: parseCave(t, "#")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			r := &model.TerminalRenderer{Out: &buf}
			assert.NotPanics(t, func() { r.Display(tc.cave, 3) })
			assert.Empty(t, buf.String())
		})
	}
}
