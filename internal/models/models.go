// Package models defines the data structures used throughout the PCB Lab engine.
// It contains the scan result produced by the simulator, the static catalog
// entities (components, supplier offers, PCB records, fault patterns, tools,
// analysis dashboards, pricing), and the user held by the session.
package models

import (
	"slices"
	"time"
)

// ScanMode identifies how a scan was triggered
type ScanMode string

const (
	ScanModeCapture ScanMode = "capture"
	ScanModeUpload  ScanMode = "upload"
)

// UploadMetadata describes the file that triggered an upload scan
type UploadMetadata struct {
	FileName   string    `json:"fileName"`
	SizeBytes  int64     `json:"sizeBytes"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// ScanResult is the outcome of a simulated board analysis
type ScanResult struct {
	ComponentsFound       int             `json:"componentsFound"`
	FaultsDetected        int             `json:"faultsDetected"`
	Confidence            float64         `json:"confidence"`            // percentage, 0-100
	ProcessingTimeSeconds float64         `json:"processingTimeSeconds"` // reported, not measured
	PCBType               string          `json:"pcbType"`
	FunctionalBlocks      []string        `json:"functionalBlocks"`
	Timestamp             string          `json:"timestamp"` // RFC 3339
	Upload                *UploadMetadata `json:"upload,omitempty"`
}

// Clone returns a deep copy of the result
func (r *ScanResult) Clone() *ScanResult {
	if r == nil {
		return nil
	}
	c := *r
	c.FunctionalBlocks = slices.Clone(r.FunctionalBlocks)
	if r.Upload != nil {
		u := *r.Upload
		c.Upload = &u
	}
	return &c
}

// ComponentCategory is the fixed set of component catalog categories
type ComponentCategory string

const (
	CategoryMicrocontrollers  ComponentCategory = "Microcontrollers"
	CategoryVoltageRegulators ComponentCategory = "Voltage Regulators"
	CategoryRFModules         ComponentCategory = "RF Modules"
	CategoryCapacitors        ComponentCategory = "Capacitors"
	CategoryResistors         ComponentCategory = "Resistors"
)

// ComponentCategories lists every component category in display order.
var ComponentCategories = []ComponentCategory{
	CategoryMicrocontrollers,
	CategoryVoltageRegulators,
	CategoryRFModules,
	CategoryCapacitors,
	CategoryResistors,
}

// ComponentRecord is an electronic part in the sourcing catalog
type ComponentRecord struct {
	ID             string            `json:"id"`
	PartNumber     string            `json:"partNumber"`
	Description    string            `json:"description"`
	Manufacturer   string            `json:"manufacturer"`
	Category       ComponentCategory `json:"category"`
	PackageType    string            `json:"packageType"`
	Specifications []string          `json:"specifications"`
	DatasheetURL   string            `json:"datasheetUrl,omitempty"`
}

// SupplierOffer is one supplier's offer for a component
type SupplierOffer struct {
	ID                   string  `json:"id"`
	SupplierName         string  `json:"supplierName"`
	Price                float64 `json:"price"`
	Currency             string  `json:"currency"`
	StockQuantity        int     `json:"stockQuantity"`
	LeadTime             string  `json:"leadTime"` // human readable range, e.g. "1-2 days"
	MinimumOrderQuantity int     `json:"minimumOrderQuantity"`
	Rating               float64 `json:"rating"` // 0-5
	Verified             bool    `json:"verified"`
	Location             string  `json:"location"`
	WebsiteURL           string  `json:"websiteUrl"`
}

// ComponentListing groups a component with all of its supplier offers
type ComponentListing struct {
	Component ComponentRecord `json:"component"`
	Offers    []SupplierOffer `json:"offers"`
}

// PCBRecord is an entry in the board database
type PCBRecord struct {
	ID                string    `json:"id"`
	Model             string    `json:"model"`
	Manufacturer      string    `json:"manufacturer"`
	Category          string    `json:"category"`
	CommonFaultsCount int       `json:"commonFaultsCount"`
	SuccessRate       float64   `json:"successRate"` // percentage, 0-100
	LastUpdated       string    `json:"lastUpdated"` // YYYY-MM-DD
	Description       string    `json:"description"`
	Status            PCBStatus `json:"status"`
}

// FaultPattern is a known failure mode of a board model
type FaultPattern struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	PCBModel  string   `json:"pcbModel"` // free text, not a foreign key
	Frequency int      `json:"frequency"`
	Severity  Severity `json:"severity"`
	Symptoms  []string `json:"symptoms"`
	Solution  string   `json:"solution"`
}

// ToolCategory is the fixed set of tool categories
type ToolCategory string

const (
	ToolCategoryCalculators   ToolCategory = "Calculators"
	ToolCategoryAnalysis      ToolCategory = "Analysis"
	ToolCategoryReference     ToolCategory = "Reference"
	ToolCategoryFiles         ToolCategory = "Files"
	ToolCategoryDocumentation ToolCategory = "Documentation"
	ToolCategoryExport        ToolCategory = "Export"
)

// ToolCategories lists every tool category in display order.
var ToolCategories = []ToolCategory{
	ToolCategoryCalculators,
	ToolCategoryAnalysis,
	ToolCategoryReference,
	ToolCategoryFiles,
	ToolCategoryDocumentation,
	ToolCategoryExport,
}

// ToolDescriptor describes an entry of the tools panel
type ToolDescriptor struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Category    ToolCategory `json:"category"`
	Icon        string       `json:"icon"`
	Color       string       `json:"color"`
	Features    []string     `json:"features,omitempty"`
}

// BoardLocation is a position on the board image, in percent of width/height
type BoardLocation struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ComponentAnalysis is a component identified on the analysis dashboard
type ComponentAnalysis struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Type       string         `json:"type"`
	Status     AnalysisStatus `json:"status"`
	Confidence float64        `json:"confidence"`
	Location   BoardLocation  `json:"location"`
	Specs      string         `json:"specs"`
}

// FunctionalBlock is a board subsystem on the analysis dashboard
type FunctionalBlock struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Components int         `json:"components"`
	Status     BlockStatus `json:"status"`
	Icon       string      `json:"icon"`
}

// PricingPlan is a subscription plan offered on the website
type PricingPlan struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       string   `json:"price"`
	Period      string   `json:"period"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	Popular     bool     `json:"popular,omitempty"`
	Color       string   `json:"color"`
}

// Service is a repair or analysis service offered on the website
type Service struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	Features    []string `json:"features"`
	Icon        string   `json:"icon"`
	Color       string   `json:"color"`
}

// ContactInfo holds the literal contact strings of the business.
// They are handed to a platform URL opener untouched.
type ContactInfo struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Website  string `json:"website"`
	Location string `json:"location"`
}

// EmailURL returns the mailto link for the contact address
func (c ContactInfo) EmailURL() string {
	return "mailto:" + c.Email
}

// PhoneURL returns the tel link for the contact phone number
func (c ContactInfo) PhoneURL() string {
	return "tel:" + c.Phone
}

// User is the identity held by a session after a successful login or registration
type User struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Company string `json:"company,omitempty"`
	Phone   string `json:"phone,omitempty"`
}
