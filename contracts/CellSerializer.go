package contracts

type CellSerializer interface {
	Marshal(cell *CellState) ([]byte, error)
	Unmarshal(data []byte) (*CellState, error)
}
