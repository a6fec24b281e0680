package ccvshop

// API response DTOs. CCV Shop pages with start/limit and nests variants as
// attribute combinations with structured option values; categories arrive as
// a breadcrumb path, root first.
type productsResponse struct {
	Items []apiProduct `json:"items"`
}

type apiProduct struct {
	ID          int64          `json:"id"`
	IsVisible   bool           `json:"is_visible"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Slug        string         `json:"slug"`
	Brand       *apiBrand      `json:"brand"`
	Variants    []apiVariant   `json:"attribute_combinations"`
	Categories  []apiCategory  `json:"categories"`
	Photos      []apiPhoto     `json:"photos"`
}

type apiBrand struct {
	Name string `json:"name"`
}

type apiVariant struct {
	ID             int64       `json:"id"`
	Stock          int         `json:"stock"`
	AllowBackorder bool        `json:"allow_backorder"`
	Price          float64     `json:"price"`
	OldPrice       float64     `json:"old_price"`
	EAN            string      `json:"ean"`
	SKU            string      `json:"sku"`
	Weight         float64     `json:"weight"`
	Options        []apiOption `json:"options"`
}

type apiOption struct {
	Name  string `json:"option_name"`
	Value string `json:"option_value"`
}

// apiCategory is one step of the product's category path; disabled steps are
// present but must not appear in the built hierarchy.
type apiCategory struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
}

type apiPhoto struct {
	FileURL   string `json:"file_url"`
	SortOrder int    `json:"sort_order"`
}
