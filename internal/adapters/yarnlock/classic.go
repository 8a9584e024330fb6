package yarnlock

import (
	"strconv"
	"strings"

	"go.trai.ch/deparse/internal/core/domain"
)

type classicBlock int

const (
	blockNone classicBlock = iota
	blockDependencies
	blockIgnored
)

// decodeClassic parses the yarn v1 format:
//
//	chalk@^2.0.0, "chalk@^2.4.2":
//	  version "2.4.2"
//	  dependencies:
//	    ansi-styles "^3.2.1"
func decodeClassic(data []byte) (*domain.LockTable, error) {
	table := domain.NewLockTable()

	var (
		entry *domain.LockEntry
		block = blockNone
	)

	lines := strings.Split(string(data), "\n")
	for i, raw := range lines {
		lineNo := i + 1
		line := strings.TrimRight(raw, "\r \t")
		trimmed := strings.TrimLeft(line, " ")
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if strings.HasPrefix(trimmed, "\t") {
			return nil, invalid(lineNo, "tab indentation")
		}
		indent := len(line) - len(trimmed)

		switch {
		case indent == 0:
			if !strings.HasSuffix(trimmed, ":") {
				return nil, invalid(lineNo, "expected entry header")
			}
			intents, err := splitKeys(strings.TrimSuffix(trimmed, ":"))
			if err != nil {
				return nil, invalid(lineNo, err.Error())
			}
			entry = &domain.LockEntry{}
			block = blockNone
			table.Set(entry, intents...)

		case entry == nil:
			return nil, invalid(lineNo, "field outside of an entry")

		case indent <= 2:
			block = blockNone
			if strings.HasSuffix(trimmed, ":") {
				key, err := unquote(strings.TrimSuffix(trimmed, ":"))
				if err != nil {
					return nil, invalid(lineNo, err.Error())
				}
				if key == "dependencies" {
					block = blockDependencies
					if entry.Dependencies == nil {
						entry.Dependencies = []domain.DependencyRequest{}
					}
				} else {
					block = blockIgnored
				}
				continue
			}
			fields, err := splitFields(trimmed)
			if err != nil {
				return nil, invalid(lineNo, err.Error())
			}
			if len(fields) >= 2 && fields[0] == "version" {
				entry.Version = fields[1]
			}

		default:
			if block != blockDependencies {
				continue
			}
			fields, err := splitFields(trimmed)
			if err != nil {
				return nil, invalid(lineNo, err.Error())
			}
			if len(fields) != 2 {
				return nil, invalid(lineNo, "expected name and range")
			}
			entry.Dependencies = append(entry.Dependencies, domain.NewDependencyRequest(fields[0], fields[1]))
		}
	}

	return table, nil
}

// splitKeys splits an entry header into intents. Keys are comma separated and may be quoted.
func splitKeys(header string) ([]domain.Intent, error) {
	var (
		intents []domain.Intent
		inQuote bool
		start   int
	)
	emit := func(part string) error {
		key, err := unquote(strings.TrimSpace(part))
		if err != nil {
			return err
		}
		if key != "" {
			intents = append(intents, domain.Intent(key))
		}
		return nil
	}
	for i := 0; i < len(header); i++ {
		switch header[i] {
		case '\\':
			if inQuote {
				i++
			}
		case '"':
			inQuote = !inQuote
		case ',':
			if !inQuote {
				if err := emit(header[start:i]); err != nil {
					return nil, err
				}
				start = i + 1
			}
		}
	}
	if inQuote {
		return nil, strconv.ErrSyntax
	}
	if err := emit(header[start:]); err != nil {
		return nil, err
	}
	return intents, nil
}

// splitFields splits a line on spaces outside of double quotes and unquotes each field.
func splitFields(line string) ([]string, error) {
	var (
		fields  []string
		inQuote bool
		start   = -1
	)
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == '\\' && inQuote:
			i++
		case c == '"':
			if start < 0 {
				start = i
			}
			inQuote = !inQuote
		case c == ' ' && !inQuote:
			if start >= 0 {
				field, err := unquote(line[start:i])
				if err != nil {
					return nil, err
				}
				fields = append(fields, field)
				start = -1
			}
		default:
			if start < 0 {
				start = i
			}
		}
	}
	if inQuote {
		return nil, strconv.ErrSyntax
	}
	if start >= 0 {
		field, err := unquote(line[start:])
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)
	}
	return fields, nil
}

func unquote(s string) (string, error) {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return strconv.Unquote(s)
	}
	return s, nil
}
