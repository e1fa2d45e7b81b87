// Package catalog holds the static seed data of the PCB Lab engine and the
// pure query functions over it: component search, supplier offer sorting and
// aggregation, board and fault pattern search, and tool filtering.
//
// The package-level functions never mutate their inputs. Catalog bundles the
// collections together with logging and query metrics for the CLI and the
// HTTP layer.
package catalog

import (
	"slices"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"pcblab/internal/metrics"
	"pcblab/internal/models"
)

// Tools with a dedicated detail view
const (
	ToolOhmCalculator  = "resistance-calculator"
	ToolTraceAnalyzer  = "pcb-tracer"
	ToolCrossReference = "component-finder"
	ToolBOMGenerator   = "bom-generator"
)

// ToolView identifies which detail view a tool opens
type ToolView string

const (
	ViewCalculator     ToolView = "calculator"
	ViewTraceAnalyzer  ToolView = "trace-analyzer"
	ViewCrossReference ToolView = "cross-reference"
	ViewBOMGenerator   ToolView = "bom-generator"
	ViewComingSoon     ToolView = "coming-soon"
)

const comingSoonMessage = "This tool is currently under development and will be available in a future update."

// BOMStats are the demonstrative figures shown by the BOM generator
type BOMStats struct {
	Components    int    `json:"components"`
	UniqueParts   int    `json:"uniqueParts"`
	EstimatedCost string `json:"estimatedCost"`
}

// ToolDetail is what a tool shows once opened
type ToolDetail struct {
	Tool           models.ToolDescriptor `json:"tool"`
	View           ToolView              `json:"view"`
	Available      bool                  `json:"available"`
	Summary        string                `json:"summary"`
	RecentSearches []string              `json:"recentSearches,omitempty"`
	BOM            *BOMStats             `json:"bom,omitempty"`
}

// Categories lists the filter values offered by each catalog screen.
// "all" is implied and not included.
type Categories struct {
	Components []models.ComponentCategory `json:"components"`
	PCBs       []string                   `json:"pcbs"`
	Tools      []models.ToolCategory      `json:"tools"`
}

// Catalog is the in-memory catalog. It is read-only after construction.
type Catalog struct {
	Listings   []models.ComponentListing
	PCBRecords []models.PCBRecord
	Faults     []models.FaultPattern
	Tools      []models.ToolDescriptor
	Analyses   []models.ComponentAnalysis
	Blocks     []models.FunctionalBlock
	Plans      []models.PricingPlan
	Services   []models.Service
	Contact    models.ContactInfo

	logger zerolog.Logger
}

// Default returns a catalog filled with fresh copies of the seed data
func Default() *Catalog {
	return &Catalog{
		Listings:   seedListings(),
		PCBRecords: seedPCBRecords(),
		Faults:     seedFaultPatterns(),
		Tools:      seedTools(),
		Analyses:   seedAnalyses(),
		Blocks:     seedBlocks(),
		Plans:      seedPlans(),
		Services:   seedServices(),
		Contact:    seedContact(),
		logger:     log.With().Str("component", "catalog").Logger(),
	}
}

func (c *Catalog) query(entity string) *zerolog.Event {
	metrics.RecordCatalogQuery(entity)
	return c.logger.Debug().Str("entity", entity)
}

// Components searches the component listings
func (c *Catalog) Components(query, category string) []models.ComponentListing {
	out := FilterComponents(c.Listings, query, category)
	c.query("component").Str("query", query).Str("category", category).Int("matches", len(out)).Msg("Component search")
	return out
}

// Component returns one listing by component id
func (c *Catalog) Component(id string) (models.ComponentListing, error) {
	c.query("component").Str("id", id).Msg("Component lookup")
	listing, err := FindComponent(c.Listings, id)
	if err != nil {
		return models.ComponentListing{}, err
	}
	listing.Offers = slices.Clone(listing.Offers)
	return listing, nil
}

// OfferView is a listing's offers in the requested order with their summary
type OfferView struct {
	ComponentID string                 `json:"componentId"`
	Sort        SortKey                `json:"sort"`
	Offers      []models.SupplierOffer `json:"offers"`
	Summary
}

// Offers returns the offers of component id sorted by key
func (c *Catalog) Offers(id string, key SortKey) (OfferView, error) {
	c.query("offer").Str("id", id).Str("sort", string(key)).Msg("Offer listing")

	listing, err := FindComponent(c.Listings, id)
	if err != nil {
		return OfferView{}, err
	}
	sorted, err := SortOffers(listing.Offers, key)
	if err != nil {
		return OfferView{}, err
	}
	return OfferView{
		ComponentID: id,
		Sort:        key,
		Offers:      sorted,
		Summary:     Summarize(listing),
	}, nil
}

// PCBs searches the board database
func (c *Catalog) PCBs(query, category string) []models.PCBRecord {
	out := FilterPCBRecords(c.PCBRecords, query, category)
	c.query("pcb").Str("query", query).Str("category", category).Int("matches", len(out)).Msg("Board search")
	return out
}

// FaultPatterns searches the known fault patterns
func (c *Catalog) FaultPatterns(query string) []models.FaultPattern {
	out := FilterFaultPatterns(c.Faults, query)
	c.query("fault").Str("query", query).Int("matches", len(out)).Msg("Fault search")
	return out
}

// ToolList filters the tools panel by category
func (c *Catalog) ToolList(category string) []models.ToolDescriptor {
	out := FilterTools(c.Tools, category)
	c.query("tool").Str("category", category).Int("matches", len(out)).Msg("Tool listing")
	return out
}

// ToolDetail resolves the detail view of tool id
func (c *Catalog) ToolDetail(id string) (ToolDetail, error) {
	c.query("tool").Str("id", id).Msg("Tool detail")

	tool, err := FindTool(c.Tools, id)
	if err != nil {
		return ToolDetail{}, err
	}

	d := ToolDetail{Tool: tool, Available: true}
	switch tool.ID {
	case ToolOhmCalculator:
		d.View = ViewCalculator
		d.Summary = "Enter two known values, e.g. V=5 I=0.1"
	case ToolTraceAnalyzer:
		d.View = ViewTraceAnalyzer
		d.Summary = "Analyze PCB trace patterns and generate routing documentation."
	case ToolCrossReference:
		d.View = ViewCrossReference
		d.Summary = "Find equivalent components and suitable alternatives."
		for _, l := range c.Listings {
			d.RecentSearches = append(d.RecentSearches, l.Component.PartNumber)
		}
	case ToolBOMGenerator:
		d.View = ViewBOMGenerator
		d.Summary = "Generate comprehensive Bill of Materials from PCB analysis."
		d.BOM = &BOMStats{Components: 47, UniqueParts: 12, EstimatedCost: "$23.45"}
	default:
		d.View = ViewComingSoon
		d.Available = false
		d.Summary = comingSoonMessage
	}
	return d, nil
}

// ComponentAnalyses returns the dashboard analyses in status
func (c *Catalog) ComponentAnalyses(status string) ([]models.ComponentAnalysis, error) {
	c.query("analysis").Str("status", status).Msg("Analysis listing")
	return FilterAnalyses(c.Analyses, status)
}

// FunctionalBlocks returns the dashboard's functional blocks
func (c *Catalog) FunctionalBlocks() []models.FunctionalBlock {
	c.query("block").Msg("Block listing")
	return slices.Clone(c.Blocks)
}

// PricingPlans returns the subscription plans
func (c *Catalog) PricingPlans() []models.PricingPlan {
	c.query("plan").Msg("Plan listing")
	return slices.Clone(c.Plans)
}

// ServiceList returns the services offered on the website
func (c *Catalog) ServiceList() []models.Service {
	c.query("service").Msg("Service listing")
	return slices.Clone(c.Services)
}

// Plan looks up a pricing plan
func (c *Catalog) Plan(id string) (models.PricingPlan, error) {
	c.query("plan").Str("id", id).Msg("Plan lookup")
	return FindPlan(c.Plans, id)
}

// Categories returns the filter values of every catalog screen
func (c *Catalog) Categories() Categories {
	return Categories{
		Components: slices.Clone(models.ComponentCategories),
		PCBs:       slices.Clone(PCBCategories),
		Tools:      slices.Clone(models.ToolCategories),
	}
}
