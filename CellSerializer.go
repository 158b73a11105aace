package main

import (
	"errors"
	"fmt"
	json "github.com/bytedance/sonic"
	"gridCore/contracts"
)

var SerializerError = errors.New("invalid serialized data")

// CellJsonSerializer stores cell state without its dependent-set, which lives in the dependency tree
type CellJsonSerializer struct {
}

func NewCellJsonSerializer() *CellJsonSerializer {
	return &CellJsonSerializer{}
}

func (s *CellJsonSerializer) Marshal(cell *contracts.CellState) ([]byte, error) {
	stored := *cell
	stored.DependentCells = nil

	return json.Marshal(&stored)
}

func (s *CellJsonSerializer) Unmarshal(data []byte) (*contracts.CellState, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty data", SerializerError)
	}

	cell := &contracts.CellState{}
	if err := json.Unmarshal(data, cell); err != nil {
		return nil, fmt.Errorf("%w: %s (data: %v)", SerializerError, err.Error(), string(data))
	}

	if cell.Id == "" {
		return nil, fmt.Errorf("%w: missing cell id (data: %v)", SerializerError, string(data))
	}

	return cell, nil
}
