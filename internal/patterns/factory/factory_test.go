package factory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tom7834/Bookstore-Patterns/pkg/core/errors"
)

func TestFactories(t *testing.T) {
	tests := []struct {
		name     string
		factory  BookFactory
		title    string
		author   string
		price    string
		expected string
	}{
		{
			name:     "fiction",
			factory:  FictionBookFactory{},
			title:    "1984",
			author:   "Джордж Орвелл",
			price:    "12.99",
			expected: `Художня книга: "1984" - Джордж Орвелл, $12.99`,
		},
		{
			name:     "science pads cents",
			factory:  ScienceBookFactory{},
			title:    "Коротка історія часу",
			author:   "Стівен Хокінг",
			price:    "15.5",
			expected: `Наукова книга: "Коротка історія часу" - Стівен Хокінг, $15.50`,
		},
		{
			name:     "rounds to cents",
			factory:  FictionBookFactory{},
			title:    "Дюна",
			author:   "Френк Герберт",
			price:    "9.999",
			expected: `Художня книга: "Дюна" - Френк Герберт, $10.00`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			book := tt.factory.CreateBook(tt.title, tt.author, decimal.RequireFromString(tt.price))
			assert.Equal(t, tt.expected, book.Info())
			assert.Equal(t, tt.title, book.Title())
			assert.Equal(t, tt.author, book.Author())
		})
	}
}

func TestFactoryFor(t *testing.T) {
	f, err := FactoryFor(KindScience)
	require.NoError(t, err)
	assert.IsType(t, ScienceBook{}, f.CreateBook("a", "b", decimal.Zero))

	_, err = FactoryFor("poetry")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, errors.CodeNotFound))
}

func TestKinds(t *testing.T) {
	assert.Equal(t, []Kind{KindFiction, KindScience}, Kinds())
}
