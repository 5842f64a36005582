// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// LocationDataType names a partition of the catalog. Every value maps 1:1 to
// a subdirectory of the storage data root.
type LocationDataType string

const (
	// Dataset describes data provided by the pillars.
	Dataset LocationDataType = "dataset"

	// StorageTarget describes a possible storage location for workflow results.
	StorageTarget LocationDataType = "storage_target"

	// AirflowConnections describes connection definitions consumed by Airflow.
	AirflowConnections LocationDataType = "airflow_connections"
)

// ErrUnknownLocationDataType is returned by [ParseLocationDataType] for any
// value outside the closed set of partitions.
var ErrUnknownLocationDataType = errors.New("unknown location data type")

// LocationDataTypes returns the closed set of partitions in declaration order.
func LocationDataTypes() []LocationDataType {
	return []LocationDataType{Dataset, StorageTarget, AirflowConnections}
}

// ParseLocationDataType converts s into a [LocationDataType]. Only exact
// matches of the known partition names are accepted.
func ParseLocationDataType(s string) (LocationDataType, error) {
	for _, t := range LocationDataTypes() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLocationDataType, s)
}

// String implements [fmt.Stringer].
func (t LocationDataType) String() string {
	return string(t)
}

// LocationData is the public payload stored for one catalog object.
type LocationData struct {
	// Name is the human readable name of the object.
	Name string `json:"name"`

	// URL points at the described data or storage location.
	URL string `json:"url"`

	// Metadata holds free-form key/value pairs. A nil map is serialised as
	// JSON null.
	Metadata map[string]string `json:"metadata"`
}

// ObjectRef addresses one catalog object.
type ObjectRef struct {
	Type LocationDataType
	ID   string
}

// StoredData is the on-disk envelope around [LocationData].
//
// Users lists the identifiers that own the object. It is set to the creator
// when the object is added and is never changed by updates.
type StoredData struct {
	ActualData LocationData `json:"actualData"`
	Users      []string     `json:"users"`
}

// ListEntry is one row of a partition listing. It is serialised as a
// two-element JSON array: ["name", "id"].
type ListEntry struct {
	Name string
	ID   string
}

// MarshalJSON implements [json.Marshaler].
func (e ListEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{e.Name, e.ID})
}

// UnmarshalJSON implements [json.Unmarshaler].
func (e *ListEntry) UnmarshalJSON(b []byte) error {
	var pair []string
	if err := json.Unmarshal(b, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("list entry must have 2 elements, got %d", len(pair))
	}
	e.Name, e.ID = pair[0], pair[1]
	return nil
}

// Secret is a single key/value pair submitted for an object's secrets.
type Secret struct {
	Key    string `json:"key"`
	Secret string `json:"secret"`
}
