package catalog

import (
	"cmp"
	"slices"
	"strings"

	"pcblab/internal/apperrors"
	"pcblab/internal/models"
)

// AllCategories is the category value that disables category filtering.
const AllCategories = "all"

// SortKey selects the ordering applied to supplier offers
type SortKey string

const (
	SortByPrice    SortKey = "price"    // ascending
	SortByStock    SortKey = "stock"    // descending
	SortByRating   SortKey = "rating"   // descending
	SortByLeadTime SortKey = "leadTime" // ascending, compared as text
)

// SortKeys lists the accepted sort keys in menu order.
var SortKeys = []SortKey{SortByPrice, SortByStock, SortByRating, SortByLeadTime}

// ParseSortKey converts s into a SortKey. An empty string selects price.
func ParseSortKey(s string) (SortKey, error) {
	if s == "" {
		return SortByPrice, nil
	}
	for _, k := range SortKeys {
		if strings.EqualFold(string(k), s) {
			return k, nil
		}
	}
	return "", apperrors.NewValidationError("sort", apperrors.ReasonUnknown, "unknown sort key "+s)
}

func isAll(category string) bool {
	return category == "" || strings.EqualFold(category, AllCategories)
}

// containsFold reports whether any field contains query, ignoring case.
func containsFold(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// FilterComponents returns the listings whose part number, description or
// manufacturer contains query and whose category matches. Input order is kept.
func FilterComponents(listings []models.ComponentListing, query, category string) []models.ComponentListing {
	out := make([]models.ComponentListing, 0, len(listings))
	for _, l := range listings {
		c := l.Component
		if !isAll(category) && string(c.Category) != category {
			continue
		}
		if !containsFold(query, c.PartNumber, c.Description, c.Manufacturer) {
			continue
		}
		out = append(out, l)
	}
	return out
}

// SortOffers returns a sorted copy of offers. Ties keep their input order.
func SortOffers(offers []models.SupplierOffer, key SortKey) ([]models.SupplierOffer, error) {
	var less func(a, b models.SupplierOffer) int
	switch key {
	case SortByPrice:
		less = func(a, b models.SupplierOffer) int { return cmp.Compare(a.Price, b.Price) }
	case SortByStock:
		less = func(a, b models.SupplierOffer) int { return cmp.Compare(b.StockQuantity, a.StockQuantity) }
	case SortByRating:
		less = func(a, b models.SupplierOffer) int { return cmp.Compare(b.Rating, a.Rating) }
	case SortByLeadTime:
		// "10-12 days" sorts before "2-3 days"; lead times are free text.
		less = func(a, b models.SupplierOffer) int { return strings.Compare(a.LeadTime, b.LeadTime) }
	default:
		return nil, apperrors.NewValidationError("sort", apperrors.ReasonUnknown, "unknown sort key "+string(key))
	}

	sorted := slices.Clone(offers)
	slices.SortStableFunc(sorted, less)
	return sorted, nil
}

// BestPrice returns the lowest offer price.
func BestPrice(offers []models.SupplierOffer) (float64, error) {
	if len(offers) == 0 {
		return 0, apperrors.ErrEmptyCollection
	}
	best := offers[0].Price
	for _, o := range offers[1:] {
		best = min(best, o.Price)
	}
	return best, nil
}

// TotalStock sums the stock of all offers
func TotalStock(offers []models.SupplierOffer) int {
	total := 0
	for _, o := range offers {
		total += o.StockQuantity
	}
	return total
}

// Summary aggregates the offers of one listing
type Summary struct {
	BestPrice  float64 `json:"bestPrice"`
	TotalStock int     `json:"totalStock"`
	OfferCount int     `json:"offerCount"`
	HasOffers  bool    `json:"hasOffers"`
}

// Summarize computes the offer summary of a listing. A listing without
// offers yields HasOffers=false rather than an error.
func Summarize(listing models.ComponentListing) Summary {
	s := Summary{
		TotalStock: TotalStock(listing.Offers),
		OfferCount: len(listing.Offers),
	}
	if best, err := BestPrice(listing.Offers); err == nil {
		s.BestPrice = best
		s.HasOffers = true
	}
	return s
}

// FilterPCBRecords matches query against model and manufacturer.
func FilterPCBRecords(records []models.PCBRecord, query, category string) []models.PCBRecord {
	out := make([]models.PCBRecord, 0, len(records))
	for _, r := range records {
		if !isAll(category) && r.Category != category {
			continue
		}
		if containsFold(query, r.Model, r.Manufacturer) {
			out = append(out, r)
		}
	}
	return out
}

// FilterFaultPatterns matches query against title and board model.
func FilterFaultPatterns(patterns []models.FaultPattern, query string) []models.FaultPattern {
	out := make([]models.FaultPattern, 0, len(patterns))
	for _, p := range patterns {
		if containsFold(query, p.Title, p.PCBModel) {
			out = append(out, p)
		}
	}
	return out
}

// FilterTools keeps the tools of category; "all" in any case keeps every tool.
func FilterTools(tools []models.ToolDescriptor, category string) []models.ToolDescriptor {
	out := make([]models.ToolDescriptor, 0, len(tools))
	for _, t := range tools {
		if isAll(category) || string(t.Category) == category {
			out = append(out, t)
		}
	}
	return out
}

// FilterAnalyses keeps the analyses in status. An empty or "all" status keeps
// everything; any other value outside the enum is rejected.
func FilterAnalyses(analyses []models.ComponentAnalysis, status string) ([]models.ComponentAnalysis, error) {
	if isAll(status) {
		return slices.Clone(analyses), nil
	}
	want := models.AnalysisStatus(strings.ToLower(status))
	if !want.Valid() {
		return nil, apperrors.NewValidationError("status", apperrors.ReasonUnknown, "unknown analysis status "+status)
	}
	out := make([]models.ComponentAnalysis, 0, len(analyses))
	for _, a := range analyses {
		if a.Status == want {
			out = append(out, a)
		}
	}
	return out, nil
}

func find[T any](items []T, entity, id string, idOf func(T) string) (T, error) {
	for _, it := range items {
		if idOf(it) == id {
			return it, nil
		}
	}
	var zero T
	return zero, apperrors.NotFound(entity, id)
}

// FindComponent looks up a listing by component id
func FindComponent(listings []models.ComponentListing, id string) (models.ComponentListing, error) {
	return find(listings, "component", id, func(l models.ComponentListing) string { return l.Component.ID })
}

// FindPCB looks up a board record by id
func FindPCB(records []models.PCBRecord, id string) (models.PCBRecord, error) {
	return find(records, "pcb", id, func(r models.PCBRecord) string { return r.ID })
}

// FindFault looks up a fault pattern by id
func FindFault(patterns []models.FaultPattern, id string) (models.FaultPattern, error) {
	return find(patterns, "fault", id, func(p models.FaultPattern) string { return p.ID })
}

// FindTool looks up a tool by id
func FindTool(tools []models.ToolDescriptor, id string) (models.ToolDescriptor, error) {
	return find(tools, "tool", id, func(t models.ToolDescriptor) string { return t.ID })
}

// FindPlan looks up a pricing plan by id
func FindPlan(plans []models.PricingPlan, id string) (models.PricingPlan, error) {
	return find(plans, "plan", id, func(p models.PricingPlan) string { return p.ID })
}
