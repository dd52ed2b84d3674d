package step

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Address is a register-address literal: a decimal or hexadecimal integer, or
// a symbolic token. The literal form is preserved verbatim so that 0x1F stays
// hexadecimal in generated code and configuration files. Positions are
// 1-based and derived from the address's place in the step's list.
type Address struct {
	literal string
	numeric bool
}

// NumericAddress builds an address from an integer value.
func NumericAddress(v int64) Address {
	return Address{literal: strconv.FormatInt(v, 10), numeric: true}
}

// ParseAddress builds an address from a literal token, classifying it as
// numeric when it parses as a decimal or 0x-prefixed integer.
func ParseAddress(token string) Address {
	trimmed := strings.TrimSpace(token)
	_, err := strconv.ParseInt(trimmed, 0, 64)
	return Address{literal: trimmed, numeric: err == nil}
}

// String returns the literal exactly as it will appear in generated code.
func (a Address) String() string {
	return a.literal
}

// IsNumeric reports whether the literal is an integer rather than a symbol.
func (a Address) IsNumeric() bool {
	return a.numeric
}

// IsZero reports whether the address is empty.
func (a Address) IsZero() bool {
	return a.literal == ""
}

// MarshalJSON emits plain decimal literals as JSON numbers and everything
// else (hex literals, symbols) as strings, keeping the original form intact.
func (a Address) MarshalJSON() ([]byte, error) {
	if _, err := strconv.ParseInt(a.literal, 10, 64); err == nil {
		return []byte(a.literal), nil
	}
	return json.Marshal(a.literal)
}

// UnmarshalJSON accepts a number or a string literal.
func (a *Address) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("step: address: %w", err)
	}
	switch v := raw.(type) {
	case float64:
		*a = NumericAddress(int64(v))
	case string:
		*a = ParseAddress(v)
	default:
		return fmt.Errorf("step: address must be a number or string, got %T", raw)
	}
	return nil
}

// UnmarshalYAML accepts any scalar token.
func (a *Address) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("step: address must be a scalar, got %v", node.Kind)
	}
	*a = ParseAddress(node.Value)
	return nil
}
