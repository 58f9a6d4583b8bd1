// Package catalog provides the store's product list. The data is embedded
// at build time and validated into domain products at load; it is read-only
// input to the rest of the core.
package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/AhmedELNajjar-dev/Journey/internal/app/store/domain"
)

//go:embed products.yaml
var productsYAML []byte

type productRecord struct {
	ID            string         `yaml:"id"`
	Name          string         `yaml:"name"`
	Description   string         `yaml:"description"`
	Price         int64          `yaml:"price"`
	DiscountPrice *int64         `yaml:"discount_price"`
	Images        []string       `yaml:"images"`
	Sizes         []string       `yaml:"sizes"`
	Gender        string         `yaml:"gender"`
	Color         string         `yaml:"color"`
	Stock         map[string]int `yaml:"stock"`
}

type catalogFile struct {
	Products []productRecord `yaml:"products"`
}

// Load parses and validates the embedded catalog.
func Load() ([]*domain.Product, error) {
	return Parse(productsYAML)
}

// Parse builds domain products from raw catalog YAML.
func Parse(data []byte) ([]*domain.Product, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	products := make([]*domain.Product, 0, len(file.Products))
	seen := make(map[string]bool, len(file.Products))
	for _, rec := range file.Products {
		if rec.ID == "" {
			return nil, fmt.Errorf("catalog entry %q has no id", rec.Name)
		}
		if seen[rec.ID] {
			return nil, fmt.Errorf("duplicate product id %q", rec.ID)
		}
		seen[rec.ID] = true

		p, err := toDomain(rec)
		if err != nil {
			return nil, fmt.Errorf("invalid catalog entry %q: %w", rec.ID, err)
		}
		products = append(products, p)
	}
	return products, nil
}

func toDomain(rec productRecord) (*domain.Product, error) {
	gender, err := domain.ParseGender(rec.Gender)
	if err != nil {
		return nil, err
	}

	sizes := make([]domain.Size, 0, len(rec.Sizes))
	for _, raw := range rec.Sizes {
		size, err := domain.ParseSize(raw)
		if err != nil {
			return nil, err
		}
		sizes = append(sizes, size)
	}

	stock := make(map[domain.Size]int, len(rec.Stock))
	for raw, count := range rec.Stock {
		size, err := domain.ParseSize(raw)
		if err != nil {
			return nil, err
		}
		stock[size] = count
	}

	price := domain.NewMoneyFromUnits(rec.Price)
	var discountPrice *domain.Money
	if rec.DiscountPrice != nil {
		discountPrice = domain.NewMoneyFromUnits(*rec.DiscountPrice)
	}

	return domain.NewProduct(
		rec.ID,
		rec.Name,
		rec.Description,
		price,
		discountPrice,
		rec.Images,
		sizes,
		gender,
		rec.Color,
		stock,
	)
}
