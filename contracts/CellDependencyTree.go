package contracts

import "go.etcd.io/bbolt"

type CellDependencyTree interface {
	// SetDependsOn
	/**
	 * Example, for formula `0-0 = R1C0 + R2C0`:
	 * `0-0` depends on `1-0` and `2-0`, so `0-0` joins their dependent-sets
	 *  SetDependsOn(tx, sheet, "0-0", []string{"1-0", "2-0"})
	 * Passing an empty list severs every edge where `0-0` is the dependant.
	 */
	SetDependsOn(tx *bbolt.Tx, sheetId []byte, dependantCellId string, dependingOnCellIds []string) error

	// GetDirectDependants returns the one-hop dependent-set of a cell
	GetDirectDependants(tx *bbolt.Tx, sheetId []byte, dependingOnCellId string) []string

	// GetDependants
	/**
	 * Transitive closure of the dependent-set, cycle safe.
	 * For `0-0 = R1C0` and `0-1 = R0C0 * 2`, GetDependants("1-0") returns ["0-0", "0-1"]
	 */
	GetDependants(tx *bbolt.Tx, sheetId []byte, dependingOnCellId string) []string

	DropSheet(tx *bbolt.Tx, sheetId []byte) error
}
