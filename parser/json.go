package parser

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
)

// DecodeJSON decodes a single JSON document into a value of type T.
func DecodeJSON[T any](data []byte) (T, error) {
	var result T
	if err := json.Unmarshal(data, &result); err != nil {
		return result, fmt.Errorf("failed to decode JSON: %w", err)
	}
	return result, nil
}

// DecodeJSONLines decodes newline-delimited JSON, one value of type T per
// non-empty line. Line numbers in errors are 1-based.
func DecodeJSONLines[T any](data []byte) ([]T, error) {
	var results []T
	scanner := bufio.NewScanner(bytes.NewReader(data))

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()

		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}

		var item T
		if err := json.Unmarshal(line, &item); err != nil {
			return nil, fmt.Errorf("failed to decode JSON at line %d: %w", lineNum, err)
		}
		results = append(results, item)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading JSON lines: %w", err)
	}

	return results, nil
}
