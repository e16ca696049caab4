package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// CheckpointExamList is the report detail snapshot persisted as JSONB.
type CheckpointExamList []CheckpointExam

// Value marshals the list to JSON for persistence.
func (l CheckpointExamList) Value() (driver.Value, error) {
	if l == nil {
		l = CheckpointExamList{}
	}
	data, err := json.Marshal([]CheckpointExam(l))
	if err != nil {
		return nil, fmt.Errorf("marshal checkpoint exam list: %w", err)
	}
	return data, nil
}

// Scan unmarshals a JSONB payload into the list.
func (l *CheckpointExamList) Scan(value interface{}) error {
	data, err := jsonBytes(value)
	if err != nil {
		return fmt.Errorf("scan checkpoint exam list: %w", err)
	}
	if len(data) == 0 {
		*l = CheckpointExamList{}
		return nil
	}
	return json.Unmarshal(data, (*[]CheckpointExam)(l))
}

// IntList is a JSONB-backed list of integers.
type IntList []int

// Value marshals the list to JSON for persistence.
func (l IntList) Value() (driver.Value, error) {
	if l == nil {
		l = IntList{}
	}
	data, err := json.Marshal([]int(l))
	if err != nil {
		return nil, fmt.Errorf("marshal int list: %w", err)
	}
	return data, nil
}

// Scan unmarshals a JSONB payload into the list.
func (l *IntList) Scan(value interface{}) error {
	data, err := jsonBytes(value)
	if err != nil {
		return fmt.Errorf("scan int list: %w", err)
	}
	if len(data) == 0 {
		*l = IntList{}
		return nil
	}
	return json.Unmarshal(data, (*[]int)(l))
}

// StringList is a JSONB-backed list of free-text entries.
type StringList []string

// Value marshals the list to JSON for persistence.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	data, err := json.Marshal([]string(l))
	if err != nil {
		return nil, fmt.Errorf("marshal string list: %w", err)
	}
	return data, nil
}

// Scan unmarshals a JSONB payload into the list.
func (l *StringList) Scan(value interface{}) error {
	data, err := jsonBytes(value)
	if err != nil {
		return fmt.Errorf("scan string list: %w", err)
	}
	if len(data) == 0 {
		*l = StringList{}
		return nil
	}
	return json.Unmarshal(data, (*[]string)(l))
}

func jsonBytes(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("unsupported type %T", value)
	}
}
