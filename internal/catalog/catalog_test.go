package catalog

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pcblab/internal/apperrors"
	"pcblab/internal/models"
)

func partNumbers(listings []models.ComponentListing) []string {
	out := make([]string, 0, len(listings))
	for _, l := range listings {
		out = append(out, l.Component.PartNumber)
	}
	return out
}

func offerIDs(offers []models.SupplierOffer) []string {
	out := make([]string, 0, len(offers))
	for _, o := range offers {
		out = append(out, o.ID)
	}
	return out
}

func TestSeedCounts(t *testing.T) {
	c := Default()

	offers := 0
	for _, l := range c.Listings {
		offers += len(l.Offers)
	}
	assert.Len(t, c.Listings, 3)
	assert.Equal(t, 7, offers)
	assert.Len(t, c.PCBRecords, 4)
	assert.Len(t, c.Faults, 4)
	assert.Len(t, c.Tools, 9)
	assert.Len(t, c.Analyses, 4)
	assert.Len(t, c.Blocks, 4)
	assert.Len(t, c.Plans, 3)
	assert.Len(t, c.Services, 3)
}

func TestDefaultReturnsFreshCopies(t *testing.T) {
	a := Default()
	a.Listings[0].Offers[0].Price = 999
	a.Tools[0].Name = "changed"

	b := Default()
	assert.Equal(t, 2.45, b.Listings[0].Offers[0].Price)
	assert.Equal(t, "Resistance Calculator", b.Tools[0].Name)
}

func TestFilterComponents(t *testing.T) {
	listings := Default().Listings

	tests := []struct {
		name     string
		query    string
		category string
		want     []string
	}{
		{"empty query keeps order", "", "all", []string{"ATmega328P-PU", "LM7805CT", "ESP32-WROOM-32"}},
		{"case-insensitive part number", "esp32", "all", []string{"ESP32-WROOM-32"}},
		{"manufacturer", "microchip", "all", []string{"ATmega328P-PU"}},
		{"description", "regulator", "all", []string{"LM7805CT"}},
		{"category only", "", "Voltage Regulators", []string{"LM7805CT"}},
		{"query and category are ANDed", "esp32", "Microcontrollers", []string{}},
		{"declared but empty category", "", "Capacitors", []string{}},
		{"no match", "nonexistent", "all", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterComponents(listings, tt.query, tt.category)
			assert.Equal(t, tt.want, partNumbers(got))
		})
	}
}

func TestFilterComponentsIsSubset(t *testing.T) {
	listings := Default().Listings
	for _, q := range []string{"", "a", "5", "wifi", "zzz"} {
		got := FilterComponents(listings, q, "all")
		assert.LessOrEqual(t, len(got), len(listings))
		for _, l := range got {
			assert.Contains(t, listings, l)
		}
	}
}

func TestSortOffers(t *testing.T) {
	offers := Default().Listings[0].Offers

	tests := []struct {
		key  SortKey
		want []string
	}{
		{SortByPrice, []string{"2", "1", "3"}},
		{SortByStock, []string{"1", "3", "2"}},
		{SortByRating, []string{"1", "2", "3"}},
		{SortByLeadTime, []string{"1", "2", "3"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			sorted, err := SortOffers(offers, tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, offerIDs(sorted))
			assert.ElementsMatch(t, offers, sorted)
		})
	}

	// input untouched
	assert.Equal(t, []string{"1", "2", "3"}, offerIDs(offers))
}

func TestSortOffersIsStable(t *testing.T) {
	offers := []models.SupplierOffer{
		{ID: "a", Price: 1, Rating: 4.5},
		{ID: "b", Price: 1, Rating: 4.5},
		{ID: "c", Price: 0.5, Rating: 4.5},
	}

	byPrice, err := SortOffers(offers, SortByPrice)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a", "b"}, offerIDs(byPrice))

	byRating, err := SortOffers(offers, SortByRating)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, offerIDs(byRating))
}

func TestSortOffersLeadTimeIsLexicographic(t *testing.T) {
	offers := []models.SupplierOffer{
		{ID: "slow", LeadTime: "2-3 days"},
		{ID: "slower", LeadTime: "10-12 days"},
	}
	sorted, err := SortOffers(offers, SortByLeadTime)
	require.NoError(t, err)
	assert.Equal(t, []string{"slower", "slow"}, offerIDs(sorted))
}

func TestSortOffersUnknownKey(t *testing.T) {
	_, err := SortOffers(Default().Listings[0].Offers, SortKey("distance"))

	var verr *apperrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "sort", verr.Field)
}

func TestParseSortKey(t *testing.T) {
	k, err := ParseSortKey("")
	require.NoError(t, err)
	assert.Equal(t, SortByPrice, k)

	k, err = ParseSortKey("LEADTIME")
	require.NoError(t, err)
	assert.Equal(t, SortByLeadTime, k)

	_, err = ParseSortKey("cheapest")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestBestPriceAndTotalStock(t *testing.T) {
	offers := Default().Listings[0].Offers

	best, err := BestPrice(offers)
	require.NoError(t, err)
	assert.Equal(t, 2.38, best)
	for _, o := range offers {
		assert.LessOrEqual(t, best, o.Price)
	}

	assert.Equal(t, 36470, TotalStock(offers))
}

func TestBestPriceEmpty(t *testing.T) {
	_, err := BestPrice(nil)
	assert.True(t, errors.Is(err, apperrors.ErrEmptyCollection))
	assert.Equal(t, 0, TotalStock(nil))
}

func TestSummarize(t *testing.T) {
	s := Summarize(Default().Listings[1])
	assert.Equal(t, Summary{BestPrice: 0.89, TotalStock: 44500, OfferCount: 2, HasOffers: true}, s)

	empty := Summarize(models.ComponentListing{})
	assert.False(t, empty.HasOffers)
	assert.Zero(t, empty.OfferCount)
}

func TestSummarizeZeroPrice(t *testing.T) {
	s := Summarize(models.ComponentListing{
		Offers: []models.SupplierOffer{{ID: "free", Price: 0, StockQuantity: 3}},
	})
	assert.True(t, s.HasOffers)
	assert.Zero(t, s.BestPrice)

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"bestPrice":0`)
}

func TestQueriesAreRepeatable(t *testing.T) {
	listings := Default().Listings

	for _, q := range []string{"", "esp", "10uF"} {
		first := FilterComponents(listings, q, "all")
		second := FilterComponents(listings, q, "all")
		assert.Equal(t, first, second, "query %q", q)
	}

	for _, key := range SortKeys {
		first, err := SortOffers(listings[0].Offers, key)
		require.NoError(t, err)
		second, err := SortOffers(listings[0].Offers, key)
		require.NoError(t, err)
		assert.Equal(t, first, second, "sort %s", key)
	}
}

func TestFilterPCBRecords(t *testing.T) {
	records := Default().PCBRecords

	got := FilterPCBRecords(records, "pi", "all")
	require.Len(t, got, 1)
	assert.Equal(t, "Raspberry Pi 4B", got[0].Model)

	got = FilterPCBRecords(records, "STMICRO", "")
	require.Len(t, got, 1)
	assert.Equal(t, "STM32F407G-DISC1", got[0].Model)

	got = FilterPCBRecords(records, "", "WiFi Module")
	require.Len(t, got, 1)
	assert.Equal(t, "ESP32-DevKitC", got[0].Model)

	assert.Len(t, FilterPCBRecords(records, "", "all"), 4)
}

func TestFilterFaultPatterns(t *testing.T) {
	patterns := Default().Faults

	got := FilterFaultPatterns(patterns, "arduino")
	require.Len(t, got, 2)
	assert.Equal(t, "Power Regulator Failure", got[0].Title)
	assert.Equal(t, "USB Controller Malfunction", got[1].Title)

	got = FilterFaultPatterns(patterns, "crystal")
	require.Len(t, got, 1)
	assert.Equal(t, models.SeverityMedium, got[0].Severity)

	assert.Len(t, FilterFaultPatterns(patterns, ""), 4)
}

func TestFilterTools(t *testing.T) {
	tools := Default().Tools

	assert.Len(t, FilterTools(tools, "All"), 9)
	assert.Len(t, FilterTools(tools, "all"), 9)
	assert.Len(t, FilterTools(tools, "Analysis"), 3)
	assert.Len(t, FilterTools(tools, "Calculators"), 2)
	assert.Empty(t, FilterTools(tools, "Simulation"))
}

func TestFilterAnalyses(t *testing.T) {
	analyses := Default().Analyses

	healthy, err := FilterAnalyses(analyses, "healthy")
	require.NoError(t, err)
	assert.Len(t, healthy, 2)

	all, err := FilterAnalyses(analyses, "all")
	require.NoError(t, err)
	assert.Len(t, all, 4)

	_, err = FilterAnalyses(analyses, "broken")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestFindNotFound(t *testing.T) {
	c := Default()

	_, err := FindComponent(c.Listings, "42")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	_, err = FindPCB(c.PCBRecords, "42")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	_, err = FindFault(c.Faults, "42")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	_, err = FindTool(c.Tools, "oscilloscope")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	_, err = FindPlan(c.Plans, "gold")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	plan, err := FindPlan(c.Plans, "professional")
	require.NoError(t, err)
	assert.True(t, plan.Popular)
}

func TestCatalogOffers(t *testing.T) {
	c := Default()

	view, err := c.Offers("3", SortByStock)
	require.NoError(t, err)
	assert.Equal(t, []string{"7", "6"}, offerIDs(view.Offers))
	assert.Equal(t, 3.95, view.BestPrice)
	assert.Equal(t, 2130, view.TotalStock)

	_, err = c.Offers("9", SortByPrice)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = c.Offers("1", SortKey("bogus"))
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestToolDetail(t *testing.T) {
	c := Default()

	tests := []struct {
		id        string
		view      ToolView
		available bool
	}{
		{ToolOhmCalculator, ViewCalculator, true},
		{ToolTraceAnalyzer, ViewTraceAnalyzer, true},
		{ToolCrossReference, ViewCrossReference, true},
		{ToolBOMGenerator, ViewBOMGenerator, true},
		{"thermal-analyzer", ViewComingSoon, false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			d, err := c.ToolDetail(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.view, d.View)
			assert.Equal(t, tt.available, d.Available)
			assert.NotEmpty(t, d.Summary)
		})
	}

	d, err := c.ToolDetail(ToolTraceAnalyzer)
	require.NoError(t, err)
	assert.Len(t, d.Tool.Features, 5)

	d, err = c.ToolDetail(ToolCrossReference)
	require.NoError(t, err)
	assert.Equal(t, []string{"ATmega328P-PU", "LM7805CT", "ESP32-WROOM-32"}, d.RecentSearches)

	_, err = c.ToolDetail("nope")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCategories(t *testing.T) {
	cats := Default().Categories()
	assert.Contains(t, cats.Components, models.CategoryCapacitors)
	assert.Contains(t, cats.Components, models.CategoryResistors)
	assert.Len(t, cats.PCBs, 4)
	assert.Len(t, cats.Tools, 6)

	cats.PCBs[0] = "changed"
	cats.Components[0] = "changed"
	fresh := Default().Categories()
	assert.NotEqual(t, "changed", fresh.PCBs[0])
	assert.NotEqual(t, models.ComponentCategory("changed"), fresh.Components[0])
}

func TestAccessorsReturnCopies(t *testing.T) {
	c := Default()

	blocks := c.FunctionalBlocks()
	blocks[0].Name = "changed"
	assert.NotEqual(t, "changed", c.FunctionalBlocks()[0].Name)

	plans := c.PricingPlans()
	require.NotEmpty(t, plans)
	plans[0].Name = "changed"
	assert.NotEqual(t, "changed", c.PricingPlans()[0].Name)

	services := c.ServiceList()
	require.NotEmpty(t, services)
	services[0].Title = "changed"
	assert.NotEqual(t, "changed", c.ServiceList()[0].Title)

	listing, err := c.Component(c.Listings[0].Component.ID)
	require.NoError(t, err)
	listing.Offers[0].Price = -1
	assert.NotEqual(t, -1.0, c.Listings[0].Offers[0].Price)
}
