// Package ai defines the optional content-generation service used for
// plot descriptions, Vastu analysis, nearby-amenity lookups, and
// development visualizations. The service is capability-flagged: when
// disabled or failing it yields ErrUnavailable, and no mutation
// pipeline ever depends on it succeeding.
package ai

import (
	"context"
	"errors"

	"github.com/plotvista/plotvista/internal/models"
)

// ErrUnavailable is returned when generation is disabled or the
// upstream model cannot serve the request.
var ErrUnavailable = errors.New("content generation is not available")

// VastuReport is a traditional-architecture compatibility assessment.
type VastuReport struct {
	Rating    int      `json:"rating"`
	Summary   string   `json:"summary"`
	Positives []string `json:"positives"`
	Negatives []string `json:"negatives"`
}

// Amenities lists notable facilities near a plot's location.
type Amenities struct {
	Schools   []string `json:"schools"`
	Hospitals []string `json:"hospitals"`
	Markets   []string `json:"markets"`
	Transport []string `json:"transport"`
}

// Image is a generated image with its media type.
type Image struct {
	MIMEType string
	Data     []byte
}

// MarketInsights are homepage teaser statements derived from the full
// plot inventory. They never reference individual plot numbers.
type MarketInsights struct {
	HotspotArea         string `json:"hotspotArea"`
	TrendingOpportunity string `json:"trendingOpportunity"`
	InvestmentTeaser    string `json:"investmentTeaser"`
}

// FallbackInsights returns the fixed insights served when generation
// is disabled or failing. The homepage shows these instead of an
// error.
func FallbackInsights() *MarketInsights {
	return &MarketInsights{
		HotspotArea:         "Multiple premium locations with excellent connectivity and growth potential.",
		TrendingOpportunity: "High-demand plots with optimal facing directions and sizes for modern construction.",
		InvestmentTeaser:    "Exclusive properties in emerging areas with strong appreciation prospects.",
	}
}

// Generator produces AI-assisted content for plot listings.
type Generator interface {
	// Enabled reports whether generation can be attempted at all.
	Enabled() bool
	// GenerateDescription writes marketing text for a plot.
	GenerateDescription(ctx context.Context, plot models.Plot) (string, error)
	// AnalyzeVastu rates a plot's orientation and layout.
	AnalyzeVastu(ctx context.Context, plot models.Plot) (*VastuReport, error)
	// NearbyAmenities looks up facilities around a location.
	NearbyAmenities(ctx context.Context, villageName, areaName string) (*Amenities, error)
	// GenerateSitePlan renders a site-plan image for a plot.
	GenerateSitePlan(ctx context.Context, plot models.Plot) (*Image, error)
	// VisualizeFutureDevelopment renders the area's likely development
	// around the given plot image.
	VisualizeFutureDevelopment(ctx context.Context, image []byte, location string) (*Image, error)
	// MarketInsights summarizes the plot inventory into homepage
	// teaser statements.
	MarketInsights(ctx context.Context, plots []models.Plot) (*MarketInsights, error)
}

// Disabled is the Generator used when no API key is configured. Every
// call reports ErrUnavailable.
type Disabled struct{}

func (Disabled) Enabled() bool { return false }

func (Disabled) GenerateDescription(context.Context, models.Plot) (string, error) {
	return "", ErrUnavailable
}

func (Disabled) AnalyzeVastu(context.Context, models.Plot) (*VastuReport, error) {
	return nil, ErrUnavailable
}

func (Disabled) NearbyAmenities(context.Context, string, string) (*Amenities, error) {
	return nil, ErrUnavailable
}

func (Disabled) GenerateSitePlan(context.Context, models.Plot) (*Image, error) {
	return nil, ErrUnavailable
}

func (Disabled) VisualizeFutureDevelopment(context.Context, []byte, string) (*Image, error) {
	return nil, ErrUnavailable
}

func (Disabled) MarketInsights(context.Context, []models.Plot) (*MarketInsights, error) {
	return nil, ErrUnavailable
}
