package main

import (
	"gridCore/contracts"
	"regexp"
	"strconv"
)

// Canonicalizer maps formula cell references (`R{row}C{col}`, any case) onto cell addresses.
// Addresses themselves can't appear in formulas: `1-2` reads as subtraction.
type Canonicalizer struct {
	codec      contracts.AddressCodec
	refRegex   *regexp.Regexp
	exactRegex *regexp.Regexp
}

func NewCanonicalizer(codec contracts.AddressCodec) *Canonicalizer {
	return &Canonicalizer{
		codec:      codec,
		refRegex:   regexp.MustCompile(`(?i)\bR(\d+)C(\d+)\b`),
		exactRegex: regexp.MustCompile(`^R(\d+)C(\d+)$`),
	}
}

func (c *Canonicalizer) Canonicalize(formula string) string {
	return c.refRegex.ReplaceAllString(formula, "R${1}C${2}")
}

func (c *Canonicalizer) RefToAddress(ref string) (string, bool) {
	match := c.exactRegex.FindStringSubmatch(ref)
	if match == nil {
		return "", false
	}

	// refs may carry leading zeros, R03C004 is the cell 3-4
	row, rowErr := strconv.Atoi(match[1])
	col, colErr := strconv.Atoi(match[2])
	if rowErr != nil || colErr != nil {
		return "", false
	}

	address, err := c.codec.Encode(row, col)
	if err != nil {
		return "", false
	}

	return address, true
}

func (c *Canonicalizer) AddressToRef(address string) (string, error) {
	cellAddress, err := c.codec.Decode(address)
	if err != nil {
		return "", err
	}

	return "R" + strconv.Itoa(cellAddress.Row) + "C" + strconv.Itoa(cellAddress.Col), nil
}
