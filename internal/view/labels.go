package view

import "renoboard/internal/project"

// Display labels for the fixed wire values. Unknown values fall through
// unchanged so a hand-edited import still renders.

var categoryLabels = map[string]string{
	"isolation":   "Insulation",
	"chauffage":   "Heating",
	"electricite": "Electrical",
	"plomberie":   "Plumbing",
	"menuiseries": "Joinery",
	"toiture":     "Roofing",
	"finitions":   "Finishing",
}

// CategoryLabel returns the display name of a work/material category.
func CategoryLabel(category string) string {
	if l, ok := categoryLabels[category]; ok {
		return l
	}
	return category
}

var subsidyStatusLabels = map[string]string{
	project.SubsidyRequested: "Requested",
	project.SubsidyPending:   "Pending",
	project.SubsidyReceived:  "Received",
	project.SubsidyRefused:   "Refused",
}

// SubsidyStatusLabel returns the display name of a subsidy status.
func SubsidyStatusLabel(status string) string {
	if l, ok := subsidyStatusLabels[status]; ok {
		return l
	}
	return status
}

var materialStatusLabels = map[string]string{
	project.MaterialQuoted:    "Quoted",
	project.MaterialOrdered:   "Ordered",
	project.MaterialDelivered: "Delivered",
	project.MaterialInStock:   "In stock",
}

// MaterialStatusLabel returns the display name of a material status.
func MaterialStatusLabel(status string) string {
	if l, ok := materialStatusLabels[status]; ok {
		return l
	}
	return status
}

var subtaskMarkers = map[string]string{
	project.SubtaskDone:       "✓",
	project.SubtaskInProgress: "●",
	project.SubtaskPending:    "○",
}

// SubtaskMarker returns the checklist marker for a subtask status.
func SubtaskMarker(status string) string {
	if m, ok := subtaskMarkers[status]; ok {
		return m
	}
	return "○"
}
