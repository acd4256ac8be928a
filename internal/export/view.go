// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package export

import (
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
	"time"

	"github.com/unitytechnetwork/Afifi-sub000/models"
)

const notRecorded = "-"

var funcs = texttemplate.FuncMap{
	"inc":         func(i int) int { return i + 1 },
	"statusClass": statusClass,
	"marker":      marker,
}

// reportView is the data handed to both templates.
type reportView struct {
	Title        string
	InspectionID string
	Client       string
	Location     string
	Date         string
	Technician   string
	ReportStatus string
	CertifiedBy  string
	CertifiedAt  string
	Overall      models.Status
	Rows         []models.SystemStatus
	Defects      []models.DefectEntry
	Evidence     []evidence
	Generated    string
}

type evidence struct {
	Photo   htmltemplate.URL
	Caption string
}

func (r *Renderer) view(s models.Summary) reportView {
	v := reportView{
		Title:        reportTitle,
		InspectionID: s.InspectionID,
		Client:       notRecorded,
		Location:     notRecorded,
		Date:         notRecorded,
		Technician:   notRecorded,
		ReportStatus: notRecorded,
		Overall:      s.Overall,
		Rows:         s.Systems,
		Defects:      s.Defects,
		Generated:    r.now().Format("2006-01-02 15:04"),
	}

	if in := s.Inspection; in != nil {
		v.Client = orDash(in.ClientName)
		v.Location = orDash(in.Location)
		v.Date = orDash(in.Date)
		v.Technician = orDash(strings.TrimSpace(in.TechnicianName + " " + idSuffix(in.TechnicianID)))
		v.ReportStatus = in.Status.String()
		v.CertifiedBy = in.CertifiedBy
		if in.CertifiedAt != nil {
			v.CertifiedAt = in.CertifiedAt.Format(time.DateOnly)
		}
	}

	for _, d := range s.Defects {
		photo, ok := safePhoto(d.Photo)
		if !ok {
			continue
		}
		v.Evidence = append(v.Evidence, evidence{
			Photo:   photo,
			Caption: d.Category + " / " + d.Location + ": " + d.Label,
		})
	}
	return v
}

// safePhoto accepts embedded images and web links; anything else is dropped.
func safePhoto(s string) (htmltemplate.URL, bool) {
	lower := strings.ToLower(s)
	switch {
	case strings.HasPrefix(lower, "data:image/"),
		strings.HasPrefix(lower, "https://"),
		strings.HasPrefix(lower, "http://"):
		return htmltemplate.URL(s), true
	default:
		return "", false
	}
}

func statusClass(s models.Status) string {
	if s == models.StatusNA {
		return "status-NA"
	}
	return "status-" + s.String()
}

func marker(s models.Status) string {
	switch s {
	case models.StatusNormal:
		return "[OK]"
	case models.StatusFault:
		return "[!!]"
	case models.StatusNA:
		return "[NA]"
	default:
		return "[..]"
	}
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return notRecorded
	}
	return s
}

func idSuffix(id string) string {
	if id == "" {
		return ""
	}
	return "(" + id + ")"
}
