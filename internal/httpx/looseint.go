package httpx

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

// LooseInt accepts a JSON number or a string and coerces it to an int by its
// leading integer prefix ("3h" -> 3, "2.7" -> 2, 2.7 -> 2).
//
// Present reports whether the input counts as given: absent, null, false, 0
// and "" do not. A present value without an integer prefix ("abc", true)
// has Parsed == false and Value == 0.
type LooseInt struct {
	Raw     string
	Present bool
	Parsed  bool
	Value   int
}

var errLooseIntType = errors.New("expected a number or a string")

func (n *LooseInt) UnmarshalJSON(data []byte) error {
	*n = LooseInt{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return errLooseIntType
	}

	switch data[0] {
	case 'n':
		if string(data) != "null" {
			return errLooseIntType
		}
		return nil
	case 't', 'f':
		b, err := strconv.ParseBool(string(data))
		if err != nil {
			return errLooseIntType
		}
		if b {
			n.Raw = "true"
			n.Present = true
		}
		return nil
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		n.Raw = s
		if s == "" {
			return nil
		}
		n.Present = true
		n.Value, n.Parsed = parseIntPrefix(s)
		return nil
	case '[', '{':
		return errLooseIntType
	}

	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return errLooseIntType
	}
	n.Raw = string(data)
	if f == 0 {
		return nil
	}
	n.Present = true
	t := math.Trunc(f)
	// float64(math.MaxInt) rounds up to 2^63, which is already out of range.
	if t >= math.MaxInt || t < math.MinInt {
		return nil
	}
	n.Value = int(t)
	n.Parsed = true
	return nil
}

func (n LooseInt) MarshalJSON() ([]byte, error) {
	if !n.Present {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(n.Value)), nil
}

func parseIntPrefix(s string) (int, bool) {
	s = strings.TrimLeft(s, " \t\n\r\f\v")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}
	v, err := strconv.ParseInt(s[:end], 10, strconv.IntSize)
	if err != nil {
		return 0, false
	}
	return int(v), true
}
