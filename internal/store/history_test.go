package store

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tom7834/Bookstore-Patterns/pkg/core/errors"
	"github.com/Tom7834/Bookstore-Patterns/pkg/core/log"
)

func logMessages(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func TestHistory_ExecuteAndUndo(t *testing.T) {
	s, buf := seeded(t)
	var logs bytes.Buffer
	h := NewHistory(log.NewWithConfig(log.Config{Level: log.LevelDebug, Format: log.FormatJSON, Output: &logs}))

	require.NoError(t, h.Execute(NewUpdateBookQuantityCommand(s.Catalog, 1, 10, buf)))
	require.NoError(t, h.Execute(NewUpdateBookQuantityCommand(s.Catalog, 1, 5, buf)))
	assert.Equal(t, 2, h.Len())

	ok, err := h.Undo()
	require.NoError(t, err)
	assert.True(t, ok)

	b, _ := s.Catalog.Book(1)
	assert.Equal(t, 10, b.Quantity)

	entries := logMessages(t, &logs)
	require.Len(t, entries, 3)
	assert.Equal(t, "command executed", entries[0]["message"])
	assert.Equal(t, "UpdateBookQuantityCommand", entries[0]["command"])
	assert.Equal(t, "store.history", entries[0]["logger"])
	assert.Equal(t, "command undone", entries[2]["message"])
	assert.Equal(t, float64(1), entries[2]["depth"])
}

func TestHistory_FailedCommandIsNotRecorded(t *testing.T) {
	s, buf := seeded(t)
	var logs bytes.Buffer
	h := NewHistory(log.NewWithConfig(log.Config{Level: log.LevelWarn, Format: log.FormatJSON, Output: &logs}))

	err := h.Execute(NewUpdateOrderStatusCommand(s.Orders, 42, StatusCompleted, buf))
	assert.True(t, errors.HasCode(err, errors.CodeNotFound))
	assert.Zero(t, h.Len())

	entries := logMessages(t, &logs)
	require.Len(t, entries, 1)
	assert.Equal(t, "command failed", entries[0]["message"])
	assert.Equal(t, "warn", entries[0]["level"])
}

func TestHistory_EmptyUndo(t *testing.T) {
	h := NewHistory(nil)

	ok, err := h.Undo()
	assert.False(t, ok)
	assert.NoError(t, err)
}

func TestCommandName(t *testing.T) {
	assert.Equal(t, "MacroCommand", commandName(NewMacroCommand()))
	assert.Equal(t, "CheckStockCommand", commandName(&CheckStockCommand{}))
}
