package entities

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// lenientInt decodes the loosely typed numbers found in stored sheets.
// Decimals are truncated toward zero, numeric strings are parsed, values
// past the 32-bit range are clamped and anything else becomes zero.
// A JSON null leaves the current value untouched.
type lenientInt int

// UnmarshalJSON implements json.Unmarshaler.
func (n *lenientInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	f, ok := parseNumber(data)
	if !ok {
		*n = 0
		return nil
	}
	*n = lenientInt(truncateInt(f))
	return nil
}

// parseNumber reads a JSON number or a string holding one.
func parseNumber(data []byte) (float64, bool) {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		return f, true
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func truncateInt(f float64) int {
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt32:
		return math.MaxInt32
	case f <= math.MinInt32:
		return math.MinInt32
	}
	return int(f)
}

func lenientMap(m map[string]int) map[string]lenientInt {
	if m == nil {
		return nil
	}
	out := make(map[string]lenientInt, len(m))
	for k, v := range m {
		out[k] = lenientInt(v)
	}
	return out
}

func strictMap(m map[string]lenientInt) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = int(v)
	}
	return out
}

// UnmarshalJSON decodes a character, accepting decimals and numeric
// strings wherever the sheet stores an integer.
func (c *Character) UnmarshalJSON(data []byte) error {
	type plain Character
	aux := struct {
		*plain
		AC          lenientInt            `json:"ac"`
		Age         lenientInt            `json:"age"`
		CurrentHP   lenientInt            `json:"currentHp"`
		CurrentMana lenientInt            `json:"currentMana"`
		Level       lenientInt            `json:"level"`
		Adena       lenientInt            `json:"adena"`
		XP          lenientInt            `json:"xp"`
		Skills      map[string]lenientInt `json:"skills"`
	}{
		plain:       (*plain)(c),
		AC:          lenientInt(c.AC),
		Age:         lenientInt(c.Age),
		CurrentHP:   lenientInt(c.CurrentHP),
		CurrentMana: lenientInt(c.CurrentMana),
		Level:       lenientInt(c.Level),
		Adena:       lenientInt(c.Adena),
		XP:          lenientInt(c.XP),
		Skills:      lenientMap(c.Skills),
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	c.AC = int(aux.AC)
	c.Age = int(aux.Age)
	c.CurrentHP = int(aux.CurrentHP)
	c.CurrentMana = int(aux.CurrentMana)
	c.Level = int(aux.Level)
	c.Adena = int(aux.Adena)
	c.XP = int(aux.XP)
	if aux.Skills != nil {
		c.Skills = strictMap(aux.Skills)
	}
	return nil
}

// UnmarshalJSON implements json.Unmarshaler. Unknown keys are ignored.
func (a *Attributes) UnmarshalJSON(data []byte) error {
	var values map[string]lenientInt
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	for key, v := range values {
		if p, ok := a.field(key); ok {
			*p = int(v)
		}
	}
	return nil
}

// UnmarshalJSON implements json.Unmarshaler. Unknown keys are ignored.
func (p *Powers) UnmarshalJSON(data []byte) error {
	var values map[string]lenientInt
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	for key, v := range values {
		if f, ok := p.field(key); ok {
			*f = int(v)
		}
	}
	return nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Talent) UnmarshalJSON(data []byte) error {
	type plain Talent
	aux := struct {
		*plain
		Level lenientInt `json:"level"`
	}{plain: (*plain)(t), Level: lenientInt(t.Level)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	t.Level = int(aux.Level)
	return nil
}
