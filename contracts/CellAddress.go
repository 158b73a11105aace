package contracts

import (
	"errors"
	"strconv"
)

// AddressSeparator splits row and column tokens, also used between sheet name and address in element ids
const AddressSeparator = "-"

type CellAddress struct {
	Row int
	Col int
}

func (a CellAddress) String() string {
	return strconv.Itoa(a.Row) + AddressSeparator + strconv.Itoa(a.Col)
}

var InvalidAddressError = errors.New("invalid cell address")

var FocusTargetMissingError = errors.New("focus target element not found")

type AddressCodec interface {
	Encode(row int, col int) (string, error)
	Decode(address string) (CellAddress, error)
	ElementId(sheet string, address string) string
}
