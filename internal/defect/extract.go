// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package defect

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/unitytechnetwork/Afifi-sub000/models"
)

// mainPanelLocation is the location reported for panel-level findings.
const mainPanelLocation = "Main Panel"

// locationKeys are tried in order to name an item.
var locationKeys = []string{"location", "area", "zone", "name", "serialNo", "label"}

// rule extracts defect rows from a parsed record. Rules fill in location,
// label, path, finding and evidence; [Extract] fills in the rest.
type rule func(sys models.System, root gjson.Result, vocab Vocabulary) []models.DefectEntry

var rules = map[models.RecordShape]rule{
	models.ShapePanel:    extractPanel,
	models.ShapeItems:    extractItems,
	models.ShapeSections: extractSections,
}

// Extract returns the defects found in one category record, in source order.
// It returns nil for blank, malformed and N/A records. The category rule runs
// first; every matching leaf it did not cover follows, with its dotted path as
// label. Item IDs are relative to the item list, so a bare array and the same
// array wrapped as {"items":[...]} yield the same IDs.
func Extract(sys models.System, raw []byte, vocab Vocabulary) []models.DefectEntry {
	if !gjson.ValidBytes(raw) {
		return nil
	}
	root := gjson.ParseBytes(raw)
	if isNA(root) {
		return nil
	}

	var entries []models.DefectEntry
	if fn, ok := rules[sys.Shape]; ok {
		entries = fn(sys, root, vocab)
	}
	entries = append(entries, extractUncovered(sys, root, vocab, entries)...)

	for i := range entries {
		entries[i].ID = string(sys.ID) + ":" + entries[i].ID
		entries[i].SystemID = sys.ID
		entries[i].Category = sys.Title
		entries[i].Severity = DefaultSeverity(entries[i].Finding)
		entries[i].State = models.DefectOpen
	}
	return entries
}

func extractPanel(sys models.System, root gjson.Result, vocab Vocabulary) []models.DefectEntry {
	var out []models.DefectEntry

	specs := root.Get("panelSpecs")
	if battery := specs.Get("batteryStatus"); battery.Type == gjson.String && vocab.Contains(battery.Str) {
		out = append(out, models.DefectEntry{
			ID:       "panelSpecs.batteryStatus",
			Location: mainPanelLocation,
			Label:    "Standby Battery",
			Finding:  battery.Str,
			Remarks:  specs.Get("batteryRemarks").String(),
			Photo:    specs.Get("batteryPhoto").String(),
		})
	}

	lists := []struct {
		key   string
		label func(i int, item gjson.Result) string
		loc   func(item gjson.Result) string
	}{
		{
			key:   "cardConditions",
			label: func(i int, item gjson.Result) string { return "Card: " + itemName(i, item) },
			loc:   func(gjson.Result) string { return mainPanelLocation },
		},
		{
			key: "zones",
			label: func(i int, item gjson.Result) string {
				no := item.Get("zoneNo").String()
				if no == "" {
					no = strconv.Itoa(i + 1)
				}
				return fmt.Sprintf("Zone %s: %s", no, itemName(i, item))
			},
			loc: func(item gjson.Result) string { return itemName(-1, item) },
		},
		{
			key:   "indicators",
			label: func(i int, item gjson.Result) string { return "Indicator: " + itemName(i, item) },
			loc:   func(gjson.Result) string { return mainPanelLocation },
		},
	}

	for _, l := range lists {
		forEachIndexed(root.Get(l.key), func(i int, item gjson.Result) {
			finding, ok := firstMatch(item, vocab)
			if !ok {
				return
			}
			loc := l.loc(item)
			if loc == "" {
				loc = mainPanelLocation
			}
			out = append(out, models.DefectEntry{
				ID:       l.key + "." + strconv.Itoa(i),
				Location: loc,
				Label:    l.label(i, item),
				Finding:  finding,
				Remarks:  item.Get("remarks").String(),
				Photo:    photoOf(item),
			})
		})
	}
	return out
}

func extractItems(sys models.System, root gjson.Result, vocab Vocabulary) []models.DefectEntry {
	items := root
	if root.IsObject() {
		items = root.Get("items")
	}
	if !items.IsArray() {
		return nil
	}

	var out []models.DefectEntry
	forEachIndexed(items, func(i int, item gjson.Result) {
		if !item.IsObject() {
			return
		}
		loc := locationOf(item)
		if loc == "" {
			loc = fmt.Sprintf("Item %d", i+1)
		}
		remarks, photo := item.Get("remarks").String(), photoOf(item)
		walkLeaves(item, strconv.Itoa(i), "", func(path, key, value string) {
			if !vocab.Contains(value) {
				return
			}
			out = append(out, models.DefectEntry{
				ID:       path,
				Location: loc,
				Label:    Humanize(key),
				Finding:  value,
				Remarks:  remarks,
				Photo:    photo,
			})
		})
	})
	return out
}

func extractSections(sys models.System, root gjson.Result, vocab Vocabulary) []models.DefectEntry {
	if !root.IsObject() {
		return nil
	}
	recordRemarks, recordPhoto := root.Get("remarks").String(), photoOf(root)

	var out []models.DefectEntry
	root.ForEach(func(k, section gjson.Result) bool {
		key := k.Str
		if section.IsObject() {
			title := Humanize(key)
			remarks, photo := section.Get("remarks").String(), photoOf(section)
			if remarks == "" {
				remarks = recordRemarks
			}
			if photo == "" {
				photo = recordPhoto
			}
			walkLeaves(section, key, "", func(path, leafKey, value string) {
				if !vocab.Contains(value) {
					return
				}
				out = append(out, models.DefectEntry{
					ID:       path,
					Location: title,
					Label:    Humanize(leafKey),
					Finding:  value,
					Remarks:  remarks,
					Photo:    photo,
				})
			})
			return true
		}

		walkLeaves(section, key, key, func(path, leafKey, value string) {
			if !vocab.Contains(value) {
				return
			}
			out = append(out, models.DefectEntry{
				ID:       path,
				Location: sys.Title,
				Label:    Humanize(leafKey),
				Finding:  value,
				Remarks:  recordRemarks,
				Photo:    recordPhoto,
			})
		})
		return true
	})
	return out
}

// extractUncovered reports the matching leaves outside every entry in
// covered. A leaf is covered when its ID equals an entry ID or lies under it.
func extractUncovered(sys models.System, root gjson.Result, vocab Vocabulary, covered []models.DefectEntry) []models.DefectEntry {
	ids := make(map[string]struct{}, len(covered))
	for _, e := range covered {
		ids[e.ID] = struct{}{}
	}

	wrapped := sys.Shape == models.ShapeItems && root.IsObject() && root.Get("items").IsArray()

	var out []models.DefectEntry
	walkLeaves(root, "", "", func(path, _, value string) {
		if !vocab.Contains(value) {
			return
		}
		id := path
		if wrapped {
			id = strings.TrimPrefix(path, "items.")
		}
		if underAny(id, ids) {
			return
		}
		out = append(out, models.DefectEntry{
			ID:       id,
			Location: sys.Title,
			Label:    id,
			Finding:  value,
		})
	})
	return out
}

// underAny reports whether id or one of its dotted ancestors is in ids.
func underAny(id string, ids map[string]struct{}) bool {
	for {
		if _, ok := ids[id]; ok {
			return true
		}
		i := strings.LastIndexByte(id, '.')
		if i < 0 {
			return false
		}
		id = id[:i]
	}
}

// walkLeaves calls fn for every string leaf under r in document order. path
// is the dotted path from the record root and key is the nearest object key.
func walkLeaves(r gjson.Result, path, key string, fn func(path, key, value string)) {
	switch r.Type {
	case gjson.String:
		fn(path, key, r.Str)
	case gjson.JSON:
		if r.IsArray() {
			forEachIndexed(r, func(i int, v gjson.Result) {
				walkLeaves(v, join(path, strconv.Itoa(i)), key, fn)
			})
			return
		}
		r.ForEach(func(k, v gjson.Result) bool {
			walkLeaves(v, join(path, k.Str), k.Str, fn)
			return true
		})
	}
}

func forEachIndexed(r gjson.Result, fn func(i int, v gjson.Result)) {
	if !r.IsArray() {
		return
	}
	i := 0
	r.ForEach(func(_, v gjson.Result) bool {
		fn(i, v)
		i++
		return true
	})
}

func join(path, elem string) string {
	if path == "" {
		return elem
	}
	return path + "." + elem
}

// firstMatch returns the first vocabulary value found in r.
func firstMatch(r gjson.Result, vocab Vocabulary) (string, bool) {
	var (
		finding string
		found   bool
	)
	walkLeaves(r, "", "", func(_, _, value string) {
		if !found && vocab.Contains(value) {
			finding, found = value, true
		}
	})
	return finding, found
}

func itemName(i int, item gjson.Result) string {
	for _, k := range []string{"name", "label"} {
		if v := item.Get(k); v.Exists() && v.String() != "" {
			return v.String()
		}
	}
	if i < 0 {
		return ""
	}
	return "#" + strconv.Itoa(i+1)
}

func locationOf(item gjson.Result) string {
	for _, k := range locationKeys {
		if v := item.Get(k); v.Exists() && v.String() != "" {
			return v.String()
		}
	}
	return ""
}

// photoOf returns photo, or the first element of photos.
func photoOf(r gjson.Result) string {
	if p := r.Get("photo"); p.Type == gjson.String && p.Str != "" {
		return p.Str
	}
	return r.Get("photos.0").String()
}
