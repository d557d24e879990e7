package httpx

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLooseStringUnmarshal(t *testing.T) {
	cases := map[string]string{
		`"Erika"`:         "Erika",
		`""`:              "",
		`123`:             "123",
		`4917112345678`:   "4917112345678",
		`1.50`:            "1.5",
		`-2`:              "-2",
		`0`:               "",
		`true`:            "true",
		`false`:           "",
		`null`:            "",
		`"  spaced  "`:    "  spaced  ",
		`"<b>Stefan</b>"`: "<b>Stefan</b>",
	}
	for in, want := range cases {
		var s LooseString
		require.NoError(t, json.Unmarshal([]byte(in), &s), in)
		assert.Equal(t, want, s.String(), in)
	}
}

func TestLooseStringRejectsObjects(t *testing.T) {
	var s LooseString
	assert.Error(t, json.Unmarshal([]byte(`{"first":"Erika"}`), &s))
	assert.Error(t, json.Unmarshal([]byte(`["Erika"]`), &s))
}

func TestLooseStringInStruct(t *testing.T) {
	var req struct {
		Name  LooseString `json:"name"`
		Phone LooseString `json:"phone"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"name":42,"phone":"0171"}`), &req))
	assert.Equal(t, LooseString("42"), req.Name)
	assert.Equal(t, LooseString("0171"), req.Phone)
}
