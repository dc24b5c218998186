package memory

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ssstores/storefront/internal/catalog/domain"
)

const productsPerCategory = 214

type categorySpec struct {
	key    string
	name   string
	items  []string
	brands []string
	colors []string
	tags   []string
	sizes  []string
}

var categories = []categorySpec{
	{
		key:  "menswear",
		name: "Menswear",
		items: []string{
			"T-Shirt", "Shirt", "Jeans", "Chinos", "Hoodie", "Sweater", "Jacket", "Blazer", "Polo", "Tank Top",
			"Shorts", "Tracksuit", "Suit", "Vest", "Cardigan", "Sweatshirt", "Joggers", "Cargo Pants", "Dress Shirt", "Henley",
		},
		brands: []string{"Nike", "Adidas", "Zara", "H&M", "Uniqlo", "Levi's", "Tommy Hilfiger", "Calvin Klein", "Ralph Lauren", "Gap"},
		colors: []string{"Black", "White", "Navy", "Gray", "Blue", "Red", "Green", "Khaki", "Brown", "Burgundy"},
		tags:   []string{"casual", "formal", "comfortable", "stylish", "cotton", "denim"},
		sizes:  []string{"XS", "S", "M", "L", "XL", "XXL"},
	},
	{
		key:  "womenwear",
		name: "Womenwear",
		items: []string{
			"Dress", "Blouse", "Skirt", "Jeans", "Top", "Sweater", "Cardigan", "Jacket", "Pants", "Jumpsuit",
			"Blazer", "T-Shirt", "Tank Top", "Shorts", "Leggings", "Coat", "Hoodie", "Tunic", "Kimono", "Romper",
		},
		brands: []string{"Zara", "H&M", "Forever 21", "Mango", "ASOS", "Uniqlo", "Gap", "Banana Republic", "Ann Taylor", "Loft"},
		colors: []string{"Black", "White", "Pink", "Red", "Blue", "Navy", "Beige", "Gray", "Purple", "Green"},
		tags:   []string{"elegant", "chic", "trendy", "comfortable", "versatile", "fashionable"},
		sizes:  []string{"XS", "S", "M", "L", "XL", "XXL"},
	},
	{
		key:  "footwear",
		name: "Footwear",
		items: []string{
			"Sneakers", "Boots", "Sandals", "Heels", "Flats", "Loafers", "Oxford", "Running Shoes", "Dress Shoes", "Casual Shoes",
			"Ankle Boots", "Pumps", "Wedges", "Slip-ons", "High Tops", "Basketball Shoes", "Hiking Boots", "Ballet Flats", "Moccasins", "Espadrilles",
		},
		brands: []string{"Nike", "Adidas", "Converse", "Vans", "Puma", "New Balance", "Reebok", "Timberland", "Dr. Martens", "Clarks"},
		colors: []string{"Black", "White", "Brown", "Tan", "Navy", "Gray", "Red", "Blue", "Green", "Pink"},
		tags:   []string{"comfortable", "durable", "athletic", "casual", "walking", "running"},
		sizes:  []string{"6", "7", "8", "9", "10", "11", "12"},
	},
	{
		key:  "home",
		name: "Home",
		items: []string{
			"Cushion", "Throw Blanket", "Candle", "Vase", "Picture Frame", "Lamp", "Mirror", "Rug", "Curtains", "Plant Pot",
			"Wall Art", "Storage Box", "Decorative Bowl", "Clock", "Bookend", "Coaster Set", "Table Runner", "Pillow Cover", "Ornament", "Basket",
		},
		brands: []string{"IKEA", "West Elm", "Target", "HomeGoods", "Pottery Barn", "CB2", "Urban Outfitters", "Anthropologie", "World Market", "Wayfair"},
		colors: []string{"White", "Beige", "Gray", "Black", "Navy", "Gold", "Silver", "Green", "Blue", "Pink"},
		tags:   []string{"decorative", "modern", "cozy", "stylish", "functional", "contemporary"},
		sizes:  []string{"Small", "Medium", "Large"},
	},
	{
		key:  "electronics",
		name: "Electronics",
		items: []string{
			"Smartphone", "Laptop", "Tablet", "Headphones", "Speaker", "Smartwatch", "Camera", "Gaming Console", "Monitor", "Keyboard",
			"Mouse", "Charger", "Power Bank", "Earbuds", "Webcam", "Hard Drive", "USB Cable", "Phone Case", "Screen Protector", "Adapter",
		},
		brands: []string{"Apple", "Samsung", "Sony", "LG", "HP", "Dell", "Lenovo", "Asus", "Acer", "Microsoft"},
		colors: []string{"Black", "White", "Silver", "Space Gray", "Rose Gold", "Blue", "Red", "Green", "Purple", "Gold"},
		tags:   []string{"tech", "gadget", "wireless", "portable", "smart", "digital"},
		sizes:  []string{"32GB", "64GB", "128GB", "256GB"},
	},
	{
		key:  "lifestyle",
		name: "Lifestyle",
		items: []string{
			"Backpack", "Wallet", "Sunglasses", "Watch", "Jewelry", "Perfume", "Handbag", "Scarf", "Hat", "Belt",
			"Umbrella", "Travel Mug", "Water Bottle", "Notebook", "Pen Set", "Keychain", "Phone Holder", "Luggage", "Tote Bag", "Crossbody Bag",
		},
		brands: []string{"Coach", "Michael Kors", "Kate Spade", "Fossil", "Ray-Ban", "Oakley", "Tumi", "Samsonite", "Herschel", "JanSport"},
		colors: []string{"Black", "Brown", "Tan", "Navy", "Red", "Pink", "White", "Gray", "Gold", "Silver"},
		tags:   []string{"accessory", "premium", "luxury", "practical", "travel", "everyday"},
		sizes:  []string{"One Size", "Small", "Medium", "Large"},
	},
	{
		key:  "fitness",
		name: "Fitness",
		items: []string{
			"Yoga Mat", "Dumbbells", "Resistance Bands", "Water Bottle", "Gym Bag", "Protein Shaker", "Fitness Tracker", "Jump Rope", "Foam Roller", "Kettlebell",
			"Exercise Ball", "Yoga Block", "Workout Gloves", "Ankle Weights", "Pull-up Bar", "Ab Wheel", "Balance Board", "Massage Ball", "Stretching Strap", "Weight Plates",
		},
		brands: []string{"Nike", "Adidas", "Under Armour", "Lululemon", "Reebok", "Puma", "Fitbit", "Garmin", "TRX", "Bowflex"},
		colors: []string{"Black", "Gray", "Blue", "Pink", "Purple", "Green", "Red", "White", "Orange", "Yellow"},
		tags:   []string{"workout", "exercise", "training", "gym", "health", "active"},
		sizes:  []string{"Light", "Medium", "Heavy"},
	},
}

// GenerateCatalog builds the full product catalog: seven categories with
// 214 products each, ids dense and 1-based. The seed makes the catalog
// reproducible across restarts and in tests.
func GenerateCatalog(seed int64) []domain.Product {
	rng := rand.New(rand.NewSource(seed))
	products := make([]domain.Product, 0, len(categories)*productsPerCategory)
	id := 1

	for _, cat := range categories {
		for i := 0; i < productsPerCategory; i++ {
			item := cat.items[rng.Intn(len(cat.items))]
			brand := cat.brands[rng.Intn(len(cat.brands))]
			color := cat.colors[rng.Intn(len(cat.colors))]

			basePrice := rng.Intn(200) + 20
			discount := 0
			if rng.Float64() > 0.7 {
				discount = rng.Intn(30) + 5
			}
			originalPrice := basePrice
			if discount > 0 {
				originalPrice = int(float64(basePrice) / (1 - float64(discount)/100))
			}

			slug := strings.ReplaceAll(strings.ToLower(item), " ", "-")
			image := func() string {
				return fmt.Sprintf("/images/%s/%s-%d.jpg", cat.key, slug, rng.Intn(5)+1)
			}

			products = append(products, domain.Product{
				ID:            id,
				Title:         fmt.Sprintf("%s %s %s", brand, color, item),
				Category:      cat.key,
				CategoryName:  cat.name,
				Brand:         brand,
				Color:         color,
				Price:         decimal.NewFromInt(int64(basePrice)),
				OriginalPrice: decimal.NewFromInt(int64(originalPrice)),
				Discount:      discount,
				Description:   describe(rng, item, brand, color),
				Image:         image(),
				Images:        []string{image(), image(), image()},
				Stock:         rng.Intn(100) + 10,
				InStock:       true,
				Rating:        float64(int((rng.Float64()*2+3)*10)) / 10,
				Reviews:       rng.Intn(500) + 10,
				Tags:          pickTags(rng, item, cat),
				Sizes:         cat.sizes,
				Featured:      rng.Float64() > 0.9,
				NewArrival:    rng.Float64() > 0.8,
				Bestseller:    rng.Float64() > 0.85,
			})
			id++
		}
	}

	return products
}

var descriptionTemplates = []string{
	"Premium quality %s from %s. Crafted with attention to detail and modern styling.",
	"Comfortable and stylish %s perfect for everyday use. Made with high-quality materials.",
	"Classic %s with a contemporary twist. Versatile piece that offers exceptional value.",
}

func describe(rng *rand.Rand, item, brand, color string) string {
	lower := strings.ToLower(item)
	base := fmt.Sprintf(descriptionTemplates[rng.Intn(len(descriptionTemplates))], lower, brand)
	return fmt.Sprintf("%s Available in %s color. This %s %s offers exceptional value and quality construction.",
		base, strings.ToLower(color), brand, lower)
}

func pickTags(rng *rand.Rand, item string, cat categorySpec) []string {
	n := rng.Intn(3) + 2
	if n > len(cat.tags) {
		n = len(cat.tags)
	}
	tags := []string{strings.ToLower(item), cat.key}
	return append(tags, cat.tags[:n]...)
}
