// Package yarnlock parses yarn lock files, both the classic v1 text format and the YAML format
// written by yarn 2 and later.
package yarnlock

import (
	"bufio"
	"bytes"
	"os"

	"go.trai.ch/deparse/internal/core/domain"
	"go.trai.ch/deparse/internal/core/ports"
	"go.trai.ch/zerr"
)

const metadataKey = "__metadata"

var _ ports.LockfileParser = (*Parser)(nil)

// Parser implements ports.LockfileParser.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads the lock file at path.
func (p *Parser) Parse(path string) (*domain.LockTable, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read lock file"), "path", path)
	}
	table, err := Decode(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return table, nil
}

// Decode parses lock file contents, detecting the format from the presence of a __metadata block.
func Decode(data []byte) (*domain.LockTable, error) {
	if isBerry(data) {
		return decodeBerry(data)
	}
	return decodeClassic(data)
}

func isBerry(data []byte) bool {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := bytes.TrimRight(scanner.Bytes(), "\r")
		if bytes.HasPrefix(line, []byte(metadataKey+":")) {
			return true
		}
	}
	return false
}

func invalid(line int, reason string) error {
	err := zerr.With(zerr.Wrap(domain.ErrLockfileInvalid, "cannot parse classic lock file"), "line", line)
	return zerr.With(err, "reason", reason)
}
