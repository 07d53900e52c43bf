package catalog

import (
	"github.com/exclusive-store/server/internal/model"
	"github.com/shopspring/decimal"
)

// DemoProducts is served when no CATALOG_URL is configured.
var DemoProducts = model.ProductList{
	{
		ID:          "prod-001",
		Name:        "Breed Dry Dog Food",
		Category:    "pets",
		Price:       decimal.RequireFromString("100.00"),
		Description: "Dry food for adult dogs of all breeds",
		Image:       "/images/products/dog-food.png",
		Rating:      3,
		Reviews:     35,
		InStock:     true,
	},
	{
		ID:          "prod-002",
		Name:        "CANON EOS DSLR Camera",
		Category:    "cameras",
		Price:       decimal.RequireFromString("360.00"),
		Description: "24.1MP APS-C DSLR with 18-55mm kit lens",
		Image:       "/images/products/canon-eos.png",
		Rating:      4,
		Reviews:     95,
		InStock:     true,
	},
	{
		ID:          "prod-003",
		Name:        "ASUS FHD Gaming Laptop",
		Category:    "laptops",
		Price:       decimal.RequireFromString("700.00"),
		Description: "15.6-inch 144Hz gaming laptop, Ryzen 7, RTX 3050",
		Image:       "/images/products/asus-laptop.png",
		Rating:      5,
		Reviews:     325,
		InStock:     true,
	},
	{
		ID:          "prod-004",
		Name:        "Curology Product Set",
		Category:    "beauty",
		Price:       decimal.RequireFromString("500.00"),
		Description: "Cleanser, moisturiser and custom formula",
		Image:       "/images/products/curology.png",
		Rating:      4,
		Reviews:     145,
		InStock:     false,
	},
	{
		ID:          "prod-005",
		Name:        "Kids Electric Car",
		Category:    "toys",
		Price:       decimal.RequireFromString("960.00"),
		Description: "12V ride-on car with remote control",
		Image:       "/images/products/electric-car.png",
		Rating:      5,
		Reviews:     65,
		InStock:     true,
		IsNew:       true,
	},
	{
		ID:          "prod-006",
		Name:        "Jr. Zoom Soccer Cleats",
		Category:    "sports",
		Price:       decimal.RequireFromString("1160.00"),
		Description: "Firm-ground cleats for junior players",
		Image:       "/images/products/soccer-cleats.png",
		Rating:      5,
		Reviews:     35,
		InStock:     true,
	},
	{
		ID:          "prod-007",
		Name:        "GP11 Shooter USB Gamepad",
		Category:    "gaming",
		Price:       decimal.RequireFromString("660.00"),
		Description: "Wired USB gamepad with dual vibration",
		Image:       "/images/products/gamepad.png",
		Rating:      4.5,
		Reviews:     55,
		InStock:     true,
		IsNew:       true,
	},
	{
		ID:          "prod-008",
		Name:        "Quilted Satin Jacket",
		Category:    "fashion",
		Price:       decimal.RequireFromString("660.00"),
		Description: "Water-resistant quilted jacket",
		Image:       "/images/products/satin-jacket.png",
		Rating:      4.5,
		Reviews:     55,
		InStock:     true,
	},
	{
		ID:          "prod-009",
		Name:        "HAVIT HV-G92 Gamepad",
		Category:    "gaming",
		Price:       decimal.RequireFromString("160.00"),
		Discount:    40,
		Description: "Wireless gamepad for PC and console",
		Image:       "/images/products/havit-gamepad.png",
		Rating:      5,
		Reviews:     88,
		InStock:     true,
	},
	{
		ID:          "prod-010",
		Name:        "AK-900 Wired Keyboard",
		Category:    "gaming",
		Price:       decimal.RequireFromString("1160.00"),
		Discount:    35,
		Description: "Mechanical RGB keyboard",
		Image:       "/images/products/ak900-keyboard.png",
		Rating:      4,
		Reviews:     75,
		InStock:     true,
	},
	{
		ID:          "prod-011",
		Name:        "IPS LCD Gaming Monitor",
		Category:    "monitors",
		Price:       decimal.RequireFromString("400.00"),
		Discount:    30,
		Description: "27-inch IPS, 165Hz, 1ms",
		Image:       "/images/products/gaming-monitor.png",
		Rating:      5,
		Reviews:     99,
		InStock:     true,
	},
	{
		ID:          "prod-012",
		Name:        "S-Series Comfort Chair",
		Category:    "furniture",
		Price:       decimal.RequireFromString("400.00"),
		Discount:    25,
		Description: "Ergonomic office chair with lumbar support",
		Image:       "/images/products/comfort-chair.png",
		Rating:      4.5,
		Reviews:     99,
		InStock:     false,
		IsNew:       true,
	},
}
