// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SystemID identifies one equipment category of an inspection.
type SystemID string

// Known equipment categories.
const (
	SystemFireAlarm      SystemID = "fire-alarm"
	SystemGasSuppression SystemID = "gas-suppression"
	SystemHoseReelPump   SystemID = "hosereel-pump"
	SystemWetRiserPump   SystemID = "wetriser-pump"
	SystemSprinklerPump  SystemID = "sprinkler-pump"
	SystemHydrantPump    SystemID = "hydrant-pump"
	SystemHoseReel       SystemID = "hosereel"
	SystemHydrant        SystemID = "hydrant"
	SystemDryRiser       SystemID = "dry-riser"
	SystemWetRiser       SystemID = "wet-riser"
	SystemExtinguisher   SystemID = "extinguisher"
	SystemEmergencyLight SystemID = "emergency-light"
	SystemExitSign       SystemID = "exit-sign"
)

// RecordShape selects the defect extraction rule applied to a category's
// stored record.
type RecordShape int

const (
	// ShapePanel is the fire alarm panel: panelSpecs, cardConditions, zones
	// and indicators.
	ShapePanel RecordShape = iota + 1

	// ShapeItems is an array of homogeneous items, or an object wrapping an
	// items array.
	ShapeItems

	// ShapeSections is an object whose object-valued fields are named
	// sections (pump sets).
	ShapeSections
)

// System describes one entry of the fixed category catalog.
type System struct {
	ID    SystemID
	Title string

	// KeyPrefix is prepended to the inspection id to form the storage key,
	// e.g. "pump_hosereel_".
	KeyPrefix string
	Shape     RecordShape
}

// Catalog is the fixed, ordered list of inspected categories. Reports list
// categories in exactly this order.
var Catalog = []System{
	{ID: SystemFireAlarm, Title: "Fire Alarm Panel", KeyPrefix: "checklist_", Shape: ShapePanel},
	{ID: SystemGasSuppression, Title: "Gas Suppression", KeyPrefix: "gas_suppression_", Shape: ShapeItems},
	{ID: SystemHoseReelPump, Title: "Hose Reel Pump", KeyPrefix: "pump_hosereel_", Shape: ShapeSections},
	{ID: SystemWetRiserPump, Title: "Wet Riser Pump", KeyPrefix: "pump_wetriser_", Shape: ShapeSections},
	{ID: SystemSprinklerPump, Title: "Sprinkler Pump", KeyPrefix: "pump_sprinkler_", Shape: ShapeSections},
	{ID: SystemHydrantPump, Title: "Hydrant Pump", KeyPrefix: "pump_hydrant_", Shape: ShapeSections},
	{ID: SystemHoseReel, Title: "Hose Reel", KeyPrefix: "equip_hosereel_", Shape: ShapeItems},
	{ID: SystemHydrant, Title: "Hydrant", KeyPrefix: "equip_hydrant_", Shape: ShapeItems},
	{ID: SystemDryRiser, Title: "Dry Riser", KeyPrefix: "equip_dryriser_", Shape: ShapeItems},
	{ID: SystemWetRiser, Title: "Wet Riser", KeyPrefix: "equip_wetriser_", Shape: ShapeItems},
	{ID: SystemExtinguisher, Title: "Fire Extinguisher", KeyPrefix: "extinguisher_", Shape: ShapeItems},
	{ID: SystemEmergencyLight, Title: "Emergency Light", KeyPrefix: "light_emergency_", Shape: ShapeItems},
	{ID: SystemExitSign, Title: "Exit Sign", KeyPrefix: "light_exit_", Shape: ShapeItems},
}

// LookupSystem returns the catalog entry for id.
func LookupSystem(id SystemID) (System, bool) {
	for _, s := range Catalog {
		if s.ID == id {
			return s, true
		}
	}
	return System{}, false
}
