package lightspeed

import (
	"encoding/json"
	"sort"
	"strconv"

	"catalogfeed_api/internal/catalog/models"
)

// mapProduct converts an API product into the raw model. Variants and images
// arrive keyed by id, so they are ordered deterministically here: variants by
// sortOrder (id on ties), images by sortOrder.
func mapProduct(p apiProduct) models.RawProduct {
	raw := models.RawProduct{
		ID:          strconv.FormatInt(p.ID, 10),
		Title:       p.FullTitle,
		Description: p.Description,
		URLSlug:     p.URL,
		Brand:       mapBrand(p.Brand),
	}

	variants := make([]apiVariant, 0, len(p.Variants))
	for _, v := range p.Variants {
		variants = append(variants, v)
	}
	sort.Slice(variants, func(i, j int) bool {
		if variants[i].SortOrder != variants[j].SortOrder {
			return variants[i].SortOrder < variants[j].SortOrder
		}
		return variants[i].ID < variants[j].ID
	})
	for _, v := range variants {
		raw.Variants = append(raw.Variants, models.RawVariant{
			ID:            strconv.FormatInt(v.ID, 10),
			Title:         v.Title,
			StockLevel:    v.StockLevel,
			StockTracking: v.StockTracking,
			PriceIncl:     v.PriceIncl,
			OldPriceIncl:  v.OldPriceIncl,
			EAN:           v.EAN,
			ArticleCode:   v.ArticleCode,
			Weight:        v.Weight,
		})
	}

	for _, c := range p.Categories {
		raw.Categories = append(raw.Categories, models.RawCategory{
			ID:        c.ID,
			Depth:     c.Depth,
			SortOrder: c.SortOrder,
			URL:       c.URL,
			Title:     c.Title,
			Enabled:   c.IsVisible,
		})
	}

	images := make([]apiImage, 0, len(p.Images))
	for _, img := range p.Images {
		images = append(images, img)
	}
	sort.Slice(images, func(i, j int) bool {
		if images[i].SortOrder != images[j].SortOrder {
			return images[i].SortOrder < images[j].SortOrder
		}
		return images[i].ID < images[j].ID
	})
	for _, img := range images {
		raw.Images = append(raw.Images, models.RawImage{Src: img.Src, SortOrder: img.SortOrder})
	}

	return raw
}

// mapBrand decodes the brand field, which the API sends as either an object
// or `false` when the product has no brand.
func mapBrand(raw json.RawMessage) *models.RawBrand {
	if len(raw) == 0 || raw[0] != '{' {
		return nil
	}
	var brand apiBrand
	if err := json.Unmarshal(raw, &brand); err != nil || brand.Title == "" {
		return nil
	}
	return &models.RawBrand{Title: brand.Title}
}
