package instance

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Category is one selectable entry of the permitted-category enumeration.
type Category struct {
	ID          string `yaml:"id" json:"id"`
	Label       string `yaml:"label,omitempty" json:"label,omitempty"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// DisplayLabel returns the label, falling back to a title-cased id.
func (c Category) DisplayLabel() string {
	if c.Label != "" {
		return c.Label
	}
	return cases.Title(language.English).String(c.ID)
}

// Catalog is the ordered, static set of categories offered by the create
// form. It is configuration, not derived from the instance list.
type Catalog struct {
	categories []Category
	index      map[string]int
}

// NewCatalog builds a catalog. Entries with an empty id are skipped and
// later duplicates of an id are ignored.
func NewCatalog(categories []Category) *Catalog {
	c := &Catalog{index: make(map[string]int, len(categories))}
	for _, cat := range categories {
		if cat.ID == "" {
			continue
		}
		if _, dup := c.index[cat.ID]; dup {
			continue
		}
		c.index[cat.ID] = len(c.categories)
		c.categories = append(c.categories, cat)
	}
	return c
}

// DefaultCatalog returns the tables offered when no categories are
// configured.
func DefaultCatalog() *Catalog {
	return NewCatalog(DefaultCategories())
}

// DefaultCategories returns the built-in category enumeration.
func DefaultCategories() []Category {
	return []Category{
		{ID: "Sales", Label: "Sales", Description: "Orders, customers and revenue"},
		{ID: "HR", Label: "HR", Description: "Employees, departments and payroll"},
		{ID: "Inventory", Label: "Inventory", Description: "Products, stock levels and warehouses"},
		{ID: "Finance", Label: "Finance", Description: "Ledgers, invoices and budgets"},
		{ID: "Support", Label: "Support", Description: "Tickets, agents and SLAs"},
	}
}

// All returns the categories in display order.
func (c *Catalog) All() []Category {
	out := make([]Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// Len returns the number of categories.
func (c *Catalog) Len() int {
	return len(c.categories)
}

// Get looks up a category by id.
func (c *Catalog) Get(id string) (Category, bool) {
	i, ok := c.index[id]
	if !ok {
		return Category{}, false
	}
	return c.categories[i], true
}

// Has reports whether id is part of the catalog.
func (c *Catalog) Has(id string) bool {
	_, ok := c.index[id]
	return ok
}
