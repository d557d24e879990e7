package httpx

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
)

// LooseString accepts a JSON string, number or boolean and keeps its text
// (123 -> "123", true -> "true"). null, false and 0 read as "", so
// "required" treats them like a missing field.
type LooseString string

var errLooseStringType = errors.New("expected a string, number or boolean")

func (s *LooseString) UnmarshalJSON(data []byte) error {
	*s = ""
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return errLooseStringType
	}

	switch data[0] {
	case '"':
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = LooseString(v)
		return nil
	case 'n':
		if string(data) != "null" {
			return errLooseStringType
		}
		return nil
	case 't', 'f':
		b, err := strconv.ParseBool(string(data))
		if err != nil {
			return errLooseStringType
		}
		if b {
			*s = "true"
		}
		return nil
	case '[', '{':
		return errLooseStringType
	}

	f, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return errLooseStringType
	}
	if f != 0 {
		*s = LooseString(strconv.FormatFloat(f, 'f', -1, 64))
	}
	return nil
}

func (s LooseString) String() string {
	return string(s)
}
