package schema

import (
	"encoding/json"
	"strconv"
)

// ID is an entity identifier. The backend is not consistent about identifier
// encoding: some endpoints emit JSON numbers, others emit strings for the same
// entity. ID accepts both and normalizes to a string.
type ID string

// UnmarshalJSON accepts either a JSON string or a JSON number.
func (i *ID) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*i = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*i = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*i = ID(n.String())
	return nil
}

// MarshalJSON always emits a string.
func (i ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(i))
}

func (i ID) String() string { return string(i) }

// Int returns the numeric value of the identifier, when it has one.
func (i ID) Int() (int64, bool) {
	v, err := strconv.ParseInt(string(i), 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
