package main

import (
	"github.com/stretchr/testify/assert"
	"gridCore/contracts"
	"testing"
)

func TestCellJsonSerializer_Marshal(t *testing.T) {
	serializer := NewCellJsonSerializer()

	cell := &contracts.CellState{Id: "1-2", Content: "value1", DependentCells: []string{"3-4"}}
	serialized, err := serializer.Marshal(cell)

	assert.NoError(t, err)
	assert.NotContains(t, string(serialized), "3-4")
	// source cell is untouched
	assert.Equal(t, []string{"3-4"}, cell.DependentCells)
}

func TestCellJsonSerializer_Unmarshal(t *testing.T) {
	serializer := NewCellJsonSerializer()

	t.Run("valid_data", func(t *testing.T) {
		bold := true
		expected := &contracts.CellState{
			Id:      "1-2",
			Content: "value1",
			Formula: "=R0C0",
			Style:   contracts.CellStyle{Bold: &bold, Color: "red", FontSize: 14},
		}

		serialized, err := serializer.Marshal(expected)
		assert.NoError(t, err)

		actual, err := serializer.Unmarshal(serialized)
		assert.NoError(t, err)
		assert.Equal(t, expected, actual)
	})

	t.Run("empty_data", func(t *testing.T) {
		cell, err := serializer.Unmarshal([]byte{})

		assert.ErrorIs(t, err, SerializerError)
		assert.Nil(t, cell)
	})

	t.Run("invalid_data", func(t *testing.T) {
		cell, err := serializer.Unmarshal([]byte{' ', 'q', 'r'})

		assert.ErrorIs(t, err, SerializerError)
		assert.Nil(t, cell)
	})

	t.Run("missing_id", func(t *testing.T) {
		cell, err := serializer.Unmarshal([]byte(`{"content":"x"}`))

		assert.ErrorIs(t, err, SerializerError)
		assert.Nil(t, cell)
	})
}
