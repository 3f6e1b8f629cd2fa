//go:build console

package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleStopsAtEndOfInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		menus int
	}{
		{"empty", "", 1},
		{"choice without newline", "1", 1},
		{"choice then end", "1\n", 2},
		{"invalid then end", "x\n", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess, _ := newTestSession(t)
			var out bytes.Buffer

			done := make(chan struct{})
			go func() {
				NewConsoleApp(sess, strings.NewReader(tt.input), &out).Run()
				close(done)
			}()
			select {
			case <-done:
			case <-time.After(5 * time.Second):
				require.FailNow(t, "console did not return at end of input")
			}

			assert.Equal(t, tt.menus, strings.Count(out.String(), "=== Graphics Settings Manager ==="))
			assert.LessOrEqual(t, strings.Count(out.String(), "Invalid choice"), 1)
		})
	}
}

func TestConsoleExitChoice(t *testing.T) {
	sess, _ := newTestSession(t)
	var out bytes.Buffer

	NewConsoleApp(sess, strings.NewReader("1\n10\n1\n"), &out).Run()
	assert.Contains(t, out.String(), "No applications found.")
	assert.Contains(t, out.String(), "Goodbye!")
	assert.Equal(t, 2, strings.Count(out.String(), "=== Graphics Settings Manager ==="))
}
