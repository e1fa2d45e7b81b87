package models

import (
	"encoding/json"
	"fmt"
)

// PCBStatus is the lifecycle status of a board record
type PCBStatus string

const (
	PCBStatusActive   PCBStatus = "active"
	PCBStatusArchived PCBStatus = "archived"
	PCBStatusPriority PCBStatus = "priority"
)

// Severity ranks how serious a fault pattern is
type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// AnalysisStatus is the health of an analyzed component
type AnalysisStatus string

const (
	AnalysisHealthy AnalysisStatus = "healthy"
	AnalysisWarning AnalysisStatus = "warning"
	AnalysisFaulty  AnalysisStatus = "faulty"
)

// BlockStatus is the health of a functional block
type BlockStatus string

const (
	BlockOperational BlockStatus = "operational"
	BlockDegraded    BlockStatus = "degraded"
	BlockFailed      BlockStatus = "failed"
)

// Display holds the presentation attributes of an enumerated value
type Display struct {
	Label string `json:"label"`
	Color string `json:"color"` // hex RGB
	Icon  string `json:"icon"`
}

const (
	colorGreen   = "#10B981"
	colorAmber   = "#F59E0B"
	colorRed     = "#EF4444"
	colorDarkRed = "#991B1B"
	colorGray    = "#6B7280"
)

var pcbStatusDisplay = map[PCBStatus]Display{
	PCBStatusActive:   {Label: "Active", Color: colorGreen, Icon: "check-circle"},
	PCBStatusPriority: {Label: "Priority", Color: colorAmber, Icon: "trending-up"},
	PCBStatusArchived: {Label: "Archived", Color: colorGray, Icon: "clock"},
}

var severityDisplay = map[Severity]Display{
	SeverityLow:      {Label: "Low", Color: colorGreen, Icon: "alert-circle"},
	SeverityMedium:   {Label: "Medium", Color: colorAmber, Icon: "alert-circle"},
	SeverityHigh:     {Label: "High", Color: colorRed, Icon: "alert-circle"},
	SeverityCritical: {Label: "Critical", Color: colorDarkRed, Icon: "alert-circle"},
}

var analysisStatusDisplay = map[AnalysisStatus]Display{
	AnalysisHealthy: {Label: "Healthy", Color: colorGreen, Icon: "check-circle"},
	AnalysisWarning: {Label: "Warning", Color: colorAmber, Icon: "alert-triangle"},
	AnalysisFaulty:  {Label: "Faulty", Color: colorRed, Icon: "alert-triangle"},
}

var blockStatusDisplay = map[BlockStatus]Display{
	BlockOperational: {Label: "Operational", Color: colorGreen, Icon: "check-circle"},
	BlockDegraded:    {Label: "Degraded", Color: colorAmber, Icon: "alert-triangle"},
	BlockFailed:      {Label: "Failed", Color: colorRed, Icon: "alert-triangle"},
}

// PCBStatuses returns every board status.
func PCBStatuses() []PCBStatus {
	return []PCBStatus{PCBStatusActive, PCBStatusArchived, PCBStatusPriority}
}

// Severities returns every severity from least to most serious.
func Severities() []Severity {
	return []Severity{SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical}
}

// AnalysisStatuses returns every component analysis status.
func AnalysisStatuses() []AnalysisStatus {
	return []AnalysisStatus{AnalysisHealthy, AnalysisWarning, AnalysisFaulty}
}

// BlockStatuses returns every functional block status.
func BlockStatuses() []BlockStatus {
	return []BlockStatus{BlockOperational, BlockDegraded, BlockFailed}
}

// Display returns the presentation attributes of s.
func (s PCBStatus) Display() (Display, bool) {
	d, ok := pcbStatusDisplay[s]
	return d, ok
}

// Display returns the presentation attributes of s.
func (s Severity) Display() (Display, bool) {
	d, ok := severityDisplay[s]
	return d, ok
}

// Display returns the presentation attributes of s.
func (s AnalysisStatus) Display() (Display, bool) {
	d, ok := analysisStatusDisplay[s]
	return d, ok
}

// Display returns the presentation attributes of s.
func (s BlockStatus) Display() (Display, bool) {
	d, ok := blockStatusDisplay[s]
	return d, ok
}

// Valid reports whether s is a known board status.
func (s PCBStatus) Valid() bool {
	_, ok := pcbStatusDisplay[s]
	return ok
}

// Valid reports whether s is a known severity.
func (s Severity) Valid() bool {
	_, ok := severityDisplay[s]
	return ok
}

// Valid reports whether s is a known analysis status.
func (s AnalysisStatus) Valid() bool {
	_, ok := analysisStatusDisplay[s]
	return ok
}

// Valid reports whether s is a known block status.
func (s BlockStatus) Valid() bool {
	_, ok := blockStatusDisplay[s]
	return ok
}

func (s *PCBStatus) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, s, "pcb status")
}

func (s *Severity) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, s, "severity")
}

func (s *AnalysisStatus) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, s, "analysis status")
}

func (s *BlockStatus) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, s, "block status")
}

type enum interface {
	~string
	Valid() bool
}

func unmarshalEnum[T enum](data []byte, dst *T, name string) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	v := T(raw)
	if !v.Valid() {
		return fmt.Errorf("unknown %s: %q", name, raw)
	}
	*dst = v
	return nil
}
