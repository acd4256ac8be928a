// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"sort"
)

// Typed record shapes used by the form layer. They are always serialized to
// JSON before storage; the defect engine only ever sees the JSON form.

// PanelSpecs is the main fire alarm panel block.
type PanelSpecs struct {
	Model          string `json:"model,omitempty"`
	BatteryStatus  string `json:"batteryStatus,omitempty"`
	BatteryRemarks string `json:"batteryRemarks,omitempty"`
	BatteryPhoto   string `json:"batteryPhoto,omitempty"`
}

// PanelItem is one card, zone or indicator row of the fire alarm panel.
type PanelItem struct {
	Name    string   `json:"name"`
	ZoneNo  string   `json:"zoneNo,omitempty"`
	Status  string   `json:"status"`
	Remarks string   `json:"remarks,omitempty"`
	Photo   string   `json:"photo,omitempty"`
	Photos  []string `json:"photos,omitempty"`
}

// PanelRecord is the checklist_<id> record.
type PanelRecord struct {
	IsNA           bool        `json:"isNA,omitempty"`
	PanelSpecs     PanelSpecs  `json:"panelSpecs"`
	CardConditions []PanelItem `json:"cardConditions,omitempty"`
	Zones          []PanelItem `json:"zones,omitempty"`
	Indicators     []PanelItem `json:"indicators,omitempty"`
}

// PumpSection is one pump of a pump set, e.g. the duty or jockey pump.
type PumpSection struct {
	Mode     string   `json:"mode,omitempty"`
	Status   string   `json:"status,omitempty"`
	Pressure string   `json:"pressure,omitempty"`
	Remarks  string   `json:"remarks,omitempty"`
	Photo    string   `json:"photo,omitempty"`
	Photos   []string `json:"photos,omitempty"`
}

// PumpRecord is the pump_<type>_<id> record.
type PumpRecord struct {
	IsNA        bool         `json:"isNA,omitempty"`
	DutyPump    *PumpSection `json:"dutyPump,omitempty"`
	StandbyPump *PumpSection `json:"standbyPump,omitempty"`
	JockeyPump  *PumpSection `json:"jockeyPump,omitempty"`
	Controller  *PumpSection `json:"controller,omitempty"`
	Remarks     string       `json:"remarks,omitempty"`
	Photos      []string     `json:"photos,omitempty"`
}

// Item is one asset row of an items record. Results maps field names such
// as "hoseStatus" to vocabulary values and is flattened into the item.
type Item struct {
	Location string            `json:"location,omitempty"`
	SerialNo string            `json:"serialNo,omitempty"`
	Results  map[string]string `json:"-"`
	Remarks  string            `json:"remarks,omitempty"`
	Photo    string            `json:"photo,omitempty"`
	Photos   []string          `json:"photos,omitempty"`
}

// ItemsRecord is the object form of an items record. Bare arrays are also
// accepted by the defect engine.
type ItemsRecord struct {
	IsNA  bool   `json:"isNA,omitempty"`
	Items []Item `json:"items"`
}

// MarshalJSON flattens Results into the item object. Result fields are
// written in sorted order after the identifying fields.
func (i Item) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	write := func(key string, value any) error {
		b, err := json.Marshal(value)
		if err != nil {
			return err
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		k, _ := json.Marshal(key)
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(b)
		return nil
	}

	if i.Location != "" {
		if err := write("location", i.Location); err != nil {
			return nil, err
		}
	}
	if i.SerialNo != "" {
		if err := write("serialNo", i.SerialNo); err != nil {
			return nil, err
		}
	}

	keys := make([]string, 0, len(i.Results))
	for k := range i.Results {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := write(k, i.Results[k]); err != nil {
			return nil, err
		}
	}

	if i.Remarks != "" {
		if err := write("remarks", i.Remarks); err != nil {
			return nil, err
		}
	}
	if i.Photo != "" {
		if err := write("photo", i.Photo); err != nil {
			return nil, err
		}
	}
	if len(i.Photos) > 0 {
		if err := write("photos", i.Photos); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// SystemRecord is the stored JSON of one category of one inspection.
type SystemRecord struct {
	InspectionID string          `json:"inspectionId"`
	SystemID     SystemID        `json:"systemId"`
	Raw          json.RawMessage `json:"record"`
}
