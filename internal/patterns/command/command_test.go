package command

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdmin_ExecuteAndUndo(t *testing.T) {
	var buf bytes.Buffer
	catalog := &Catalog{}
	book := &CatalogBook{Title: "Python для початківців", Price: 250}

	admin := &Admin{}
	admin.ExecuteCommand(NewAddBookCommand(catalog, book, &buf))
	admin.ExecuteCommand(NewUpdatePriceCommand(book, 300, &buf))

	assert.Equal(t, []*CatalogBook{book}, catalog.Books())
	assert.Equal(t, 300, book.Price)
	assert.Equal(t, 2, admin.Pending())

	assert.True(t, admin.UndoCommand())
	assert.Equal(t, 250, book.Price)

	assert.True(t, admin.UndoCommand())
	assert.Empty(t, catalog.Books())
	assert.False(t, admin.UndoCommand())

	assert.Equal(t, "Книга 'Python для початківців' додана в каталог.\n"+
		"Ціна книги 'Python для початківців' оновлена на 300 гривень.\n"+
		"Ціна книги 'Python для початківців' відновлена на 250 гривень.\n"+
		"Книга 'Python для початківців' видалена з каталогу.\n", buf.String())
}

func TestUpdatePriceCommand_CapturesPriceAtCreation(t *testing.T) {
	var buf bytes.Buffer
	book := &CatalogBook{Title: "x", Price: 100}

	cmd := NewUpdatePriceCommand(book, 300, &buf)
	book.Price = 200
	cmd.Execute()
	cmd.Undo()

	assert.Equal(t, 100, book.Price)
}

func TestAddBookCommand_UndoWhenAlreadyRemoved(t *testing.T) {
	var buf bytes.Buffer
	catalog := &Catalog{}
	cmd := NewAddBookCommand(catalog, &CatalogBook{Title: "x"}, &buf)

	cmd.Execute()
	cmd.Undo()
	buf.Reset()
	cmd.Undo()

	assert.Empty(t, buf.String())
	assert.Empty(t, catalog.Books())
}
