package rdelta

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// MarshalJSON implements the json.Marshaler interface. The delta is
// encoded as its Fields form: zero relative offsets and unset absolute
// overrides are omitted.
func (rd RelativeDelta) MarshalJSON() ([]byte, error) {
	return json.Marshal(rd.Fields())
}

// UnmarshalJSON implements the json.Unmarshaler interface. The decoded
// fields pass through Build, so hand-written payloads are validated and
// normalized into canonical form.
func (rd *RelativeDelta) UnmarshalJSON(data []byte) error {
	var f Fields
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	built, err := FromFields(f).Build()
	if err != nil {
		return err
	}
	*rd = built
	return nil
}

// MarshalYAML implements the yaml.Marshaler interface.
func (rd RelativeDelta) MarshalYAML() (interface{}, error) {
	return rd.Fields(), nil
}

// UnmarshalYAML implements the yaml.Unmarshaler interface. Like
// UnmarshalJSON, the decoded fields pass through Build.
func (rd *RelativeDelta) UnmarshalYAML(value *yaml.Node) error {
	var f Fields
	if err := value.Decode(&f); err != nil {
		return err
	}
	built, err := FromFields(f).Build()
	if err != nil {
		return err
	}
	*rd = built
	return nil
}
