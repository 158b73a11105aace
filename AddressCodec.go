package main

import (
	"fmt"
	"gridCore/contracts"
	"strconv"
	"strings"
)

type AddressCodec struct{}

func NewAddressCodec() *AddressCodec {
	return &AddressCodec{}
}

func (codec *AddressCodec) Encode(row int, col int) (string, error) {
	if row < 0 || col < 0 {
		return "", fmt.Errorf("row %d, col %d: %w", row, col, contracts.InvalidAddressError)
	}

	return contracts.CellAddress{Row: row, Col: col}.String(), nil
}

func (codec *AddressCodec) Decode(address string) (contracts.CellAddress, error) {
	tokens := strings.Split(address, contracts.AddressSeparator)
	if len(tokens) != 2 {
		return contracts.CellAddress{}, fmt.Errorf("`%s`: %w", address, contracts.InvalidAddressError)
	}

	row, err := codec.parseToken(tokens[0])
	if err != nil {
		return contracts.CellAddress{}, fmt.Errorf("`%s` row: %w", address, err)
	}

	col, err := codec.parseToken(tokens[1])
	if err != nil {
		return contracts.CellAddress{}, fmt.Errorf("`%s` col: %w", address, err)
	}

	return contracts.CellAddress{Row: row, Col: col}, nil
}

func (codec *AddressCodec) ElementId(sheet string, address string) string {
	return sheet + contracts.AddressSeparator + address
}

// parseToken accepts canonical base-10 digits only: no sign, no whitespace, no leading zeros.
// One cell has exactly one address text, `01-2` is not another spelling of `1-2`.
func (codec *AddressCodec) parseToken(token string) (int, error) {
	if token == "" || (len(token) > 1 && token[0] == '0') {
		return 0, contracts.InvalidAddressError
	}

	for _, char := range token {
		if char < '0' || char > '9' {
			return 0, contracts.InvalidAddressError
		}
	}

	value, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", contracts.InvalidAddressError, err.Error())
	}

	return value, nil
}
