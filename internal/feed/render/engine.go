// Package render turns canonical records into feed text via text/template.
// The helper functions below are part of the data contract with the feed
// templates and must keep their exact semantics.
package render

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"text/template"
	"time"

	"catalogfeed_api/config"
	"catalogfeed_api/internal/feed/model"
	"catalogfeed_api/pkg/logger"
)

// Engine renders feed templates against the shop metadata and a record set.
type Engine struct {
	templatesDir string
	shop         config.ShopConfig
	location     *time.Location
	now          func() time.Time
	logger       *logger.BaseLogger
}

func NewEngine(shop config.ShopConfig, templatesDir string, logWriter io.Writer) (*Engine, error) {
	location, err := time.LoadLocation(shop.Timezone)
	if err != nil {
		return nil, fmt.Errorf("loading shop timezone %q: %w", shop.Timezone, err)
	}
	return &Engine{
		templatesDir: templatesDir,
		shop:         shop,
		location:     location,
		now:          time.Now,
		logger:       logger.NewLogger(logWriter, "[TemplateEngine]"),
	}, nil
}

// templateContext is what the feed templates see.
type templateContext struct {
	Shop     config.ShopConfig
	Products []model.Record
	Date     string
}

// Render executes the named template file against the record set.
func (e *Engine) Render(templateFilename string, records []model.Record) (string, error) {
	path := filepath.Join(e.templatesDir, templateFilename)
	tmpl, err := template.New(templateFilename).Funcs(e.funcMap()).ParseFiles(path)
	if err != nil {
		return "", fmt.Errorf("parsing template %s: %w", path, err)
	}

	var out strings.Builder
	ctx := templateContext{
		Shop:     e.shop,
		Products: records,
		Date:     e.now().In(e.location).Format("2006-01-02 15:04:05 MST"),
	}
	if err := tmpl.Execute(&out, ctx); err != nil {
		return "", fmt.Errorf("rendering template %s: %w", path, err)
	}
	e.logger.Log("rendered %s with %d records", templateFilename, len(records))
	return out.String(), nil
}

func (e *Engine) funcMap() template.FuncMap {
	return template.FuncMap{
		"cdata":    cdata,
		"url":      e.absoluteURL,
		"urlimage": imageURL,
		"limit":    limitList,
		"money":    money,
	}
}

// cdata wraps non-empty free text in a CDATA section.
func cdata(value string) string {
	if value == "" {
		return value
	}
	return "<![CDATA[ " + value + " ]]>"
}

// absoluteURL forces https and prefixes the shop domain unless the value is
// already absolute on it (with or without www).
func (e *Engine) absoluteURL(value string) string {
	if value == "" {
		return value
	}
	value = strings.ReplaceAll(value, "http://", "https://")
	domain := e.shop.Domain
	bareDomain := strings.Replace(domain, "://www.", "://", 1)
	if !strings.HasPrefix(value, domain) && !strings.HasPrefix(value, bareDomain) {
		value = domain + value
	}
	return value
}

// imageURL swaps the thumbnail suffix for the full-image one.
func imageURL(value string) string {
	return strings.ReplaceAll(value, "/file.jpg", "/image.jpg")
}

// limitList truncates a list to at most n entries.
func limitList(n int, values []string) []string {
	if n < 0 || n >= len(values) {
		return values
	}
	return values[:n]
}

// money normalizes a monetary value to exactly two decimal digits, stripping
// currency symbols and thousands separators first.
func money(value interface{}) (string, error) {
	switch v := value.(type) {
	case float64:
		return strconv.FormatFloat(v, 'f', 2, 64), nil
	case string:
		cleaned := strings.NewReplacer("$", "", ",", "").Replace(v)
		parsed, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return "", fmt.Errorf("formatting money value %q: %w", v, err)
		}
		return strconv.FormatFloat(parsed, 'f', 2, 64), nil
	default:
		return "", fmt.Errorf("formatting money value: unsupported type %T", value)
	}
}
