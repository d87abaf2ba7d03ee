package catalog

type ProductCategory string

const (
	CategoryApparel   ProductCategory = "apparel"
	CategoryEquipment ProductCategory = "equipment"
	CategoryWellness  ProductCategory = "wellness"
)

// Product is an immutable boutique catalog entry, defined at build time.
type Product struct {
	ID          string
	Name        string
	PriceCents  int64
	Description string
	Image       string
	Category    ProductCategory
}

var products = []Product{
	{
		ID:          "1",
		Name:        "Grip Socks - Petal Pink",
		PriceCents:  1800,
		Description: "Ground yourself with stability. Non-slip, breathable cotton blend.",
		Image:       "https://images.unsplash.com/photo-1506629082955-511b1aa562c8?q=80&w=400&auto=format&fit=crop",
		Category:    CategoryApparel,
	},
	{
		ID:          "2",
		Name:        "The Halo Ring",
		PriceCents:  4500,
		Description: "A resistance ring tailored to tone and sculpture the inner thighs.",
		Image:       "https://images.unsplash.com/photo-1571019614242-c5c5dee9f50b?q=80&w=400&auto=format&fit=crop",
		Category:    CategoryEquipment,
	},
	{
		ID:          "3",
		Name:        "Anointing Oil Roller",
		PriceCents:  3200,
		Description: "Frankincense and Myrrh blend for post-workout recovery.",
		Image:       "https://images.unsplash.com/photo-1608571423902-eed4a5ad8108?q=80&w=400&auto=format&fit=crop",
		Category:    CategoryWellness,
	},
}

func Products() []Product {
	out := make([]Product, len(products))
	copy(out, products)
	return out
}

func FindProduct(id string) (Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
