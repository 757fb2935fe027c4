package prototype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBook_Clone(t *testing.T) {
	original := &Book{
		Title:  "Володар перснів",
		Author: "Дж. Р. Р. Толкін",
		Price:  500,
		Genre:  "Фентезі",
		ISBN:   "978-617-12-1234-5",
		Tags:   []string{"класика"},
	}

	clone := original.Clone()
	clone.Price = 450
	clone.Tags[0] = "знижка"
	clone.Tags = append(clone.Tags, "подарунок")

	assert.NotSame(t, original, clone)
	assert.Equal(t, 500, original.Price)
	assert.Equal(t, []string{"класика"}, original.Tags)
	assert.Equal(t, "Книга: Володар перснів, Автор: Дж. Р. Р. Толкін, Жанр: Фентезі, Ціна: 450, ISBN: 978-617-12-1234-5",
		clone.String())
}

func TestBook_CloneNil(t *testing.T) {
	var b *Book
	assert.Nil(t, b.Clone())
}
