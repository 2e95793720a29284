package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/plotvista/plotvista/internal/models"
)

// Default models for text and image generation.
const (
	textModel  = "gemini-2.0-flash"
	imageModel = "gemini-2.0-flash-exp"
)

// Gemini generates content through the Gemini API.
type Gemini struct {
	client *genai.Client
}

// NewGemini creates a Gemini-backed Generator.
func NewGemini(ctx context.Context, apiKey string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &Gemini{client: client}, nil
}

func (g *Gemini) Enabled() bool { return true }

func plotSummary(plot models.Plot) string {
	return fmt.Sprintf("plot number %s in %s, %s; size %s; facing %s",
		plot.PlotNumber, plot.VillageName, plot.AreaName, plot.PlotSize, plot.PlotFacing)
}

// generateText runs a plain text prompt.
func (g *Gemini) generateText(ctx context.Context, prompt string) (string, error) {
	result, err := g.client.Models.GenerateContent(ctx, textModel, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	text := result.Text()
	if text == "" {
		return "", ErrUnavailable
	}
	return text, nil
}

// generateJSON runs a prompt in JSON response mode and unmarshals the
// result into out.
func (g *Gemini) generateJSON(ctx context.Context, prompt string, out any) error {
	result, err := g.client.Models.GenerateContent(ctx, textModel, genai.Text(prompt),
		&genai.GenerateContentConfig{ResponseMIMEType: "application/json"})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err := json.Unmarshal([]byte(result.Text()), out); err != nil {
		return fmt.Errorf("%w: malformed model output: %v", ErrUnavailable, err)
	}
	return nil
}

// generateImage runs a prompt in image response mode and returns the
// first inline image part.
func (g *Gemini) generateImage(ctx context.Context, contents []*genai.Content) (*Image, error) {
	result, err := g.client.Models.GenerateContent(ctx, imageModel, contents,
		&genai.GenerateContentConfig{ResponseModalities: []string{"TEXT", "IMAGE"}})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	for _, cand := range result.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return &Image{MIMEType: part.InlineData.MIMEType, Data: part.InlineData.Data}, nil
			}
		}
	}
	return nil, ErrUnavailable
}

func (g *Gemini) GenerateDescription(ctx context.Context, plot models.Plot) (string, error) {
	prompt := fmt.Sprintf(
		"Write a short, factual property listing description for a land plot: %s. "+
			"Two or three sentences, no superlatives about price.", plotSummary(plot))
	return g.generateText(ctx, prompt)
}

func (g *Gemini) AnalyzeVastu(ctx context.Context, plot models.Plot) (*VastuReport, error) {
	prompt := fmt.Sprintf(
		"Assess Vastu compatibility for a land plot: %s. "+
			`Respond as JSON: {"rating": 1-10, "summary": string, "positives": [string], "negatives": [string]}.`,
		plotSummary(plot))
	var report VastuReport
	if err := g.generateJSON(ctx, prompt, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (g *Gemini) NearbyAmenities(ctx context.Context, villageName, areaName string) (*Amenities, error) {
	prompt := fmt.Sprintf(
		"List notable amenities near %s, %s. "+
			`Respond as JSON: {"schools": [string], "hospitals": [string], "markets": [string], "transport": [string]}.`,
		areaName, villageName)
	var amenities Amenities
	if err := g.generateJSON(ctx, prompt, &amenities); err != nil {
		return nil, err
	}
	return &amenities, nil
}

func (g *Gemini) GenerateSitePlan(ctx context.Context, plot models.Plot) (*Image, error) {
	prompt := fmt.Sprintf(
		"Draw a clean top-down site plan sketch for a land plot: %s.", plotSummary(plot))
	return g.generateImage(ctx, genai.Text(prompt))
}

func (g *Gemini) MarketInsights(ctx context.Context, plots []models.Plot) (*MarketInsights, error) {
	// With no inventory there is nothing to analyze.
	if len(plots) == 0 {
		return &MarketInsights{
			HotspotArea:         "A variety of premium plots are available across several promising locations.",
			TrendingOpportunity: "Plots suitable for immediate construction and long-term investment are currently listed.",
			InvestmentTeaser:    "Explore our exclusive listings to find properties with significant growth potential.",
		}, nil
	}
	var sb strings.Builder
	sb.WriteString("You are a real estate market analyst for a consultancy in India. " +
		"Generate high-level teaser insights from this list of available plots. " +
		"Do not mention specific plot numbers; frame everything as a market opportunity.\n")
	for _, p := range plots {
		fmt.Fprintf(&sb, "- Location: %s, %s | Facing: %s | Size: %s\n",
			p.AreaName, p.VillageName, p.PlotFacing, p.PlotSize)
	}
	sb.WriteString(`Respond as JSON: {"hotspotArea": string, "trendingOpportunity": string, "investmentTeaser": string}.`)
	var insights MarketInsights
	if err := g.generateJSON(ctx, sb.String(), &insights); err != nil {
		return nil, err
	}
	return &insights, nil
}

func (g *Gemini) VisualizeFutureDevelopment(ctx context.Context, image []byte, location string) (*Image, error) {
	parts := []*genai.Part{
		genai.NewPartFromText(fmt.Sprintf(
			"Render how the area around this plot in %s could look after five years of development.", location)),
		genai.NewPartFromBytes(image, "image/jpeg"),
	}
	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
	return g.generateImage(ctx, contents)
}
