// Package seed holds the built-in demo dataset: the product catalog, the demo
// account, and one historical order.
package seed

import (
	"context"
	"errors"
	"fmt"

	"techstore/internal/domain"
	"techstore/internal/storage"
)

// Catalog returns the demo product catalog.
func Catalog() []domain.Product {
	return []domain.Product{
		{
			ID:          1,
			Name:        "MacBook Pro 16-inch",
			Description: "Powerful laptop with M2 Pro chip, 16GB RAM, 512GB SSD. Perfect for professionals and creatives.",
			PriceCents:  249999,
			Category:    domain.CategoryComputers,
			Image:       "./OIP.webp",
			Rating:      4.8,
			Reviews:     125,
			InStock:     true,
			Features:    []string{"M2 Pro Chip", "16-inch Retina Display", "16GB Unified Memory", "512GB SSD Storage", "Up to 22 hours battery life"},
			Specs: []domain.SpecEntry{
				{Label: "Processor", Value: "Apple M2 Pro"},
				{Label: "Memory", Value: "16GB"},
				{Label: "Storage", Value: "512GB SSD"},
				{Label: "Display", Value: "16.2-inch Liquid Retina XDR"},
				{Label: "Battery", Value: "Up to 22 hours"},
			},
		},
		{
			ID:          2,
			Name:        "iPhone 15 Pro",
			Description: "Latest iPhone with A17 Pro chip, 48MP camera, and titanium design.",
			PriceCents:  99999,
			Category:    domain.CategoryPhones,
			Image:       "./iphone-15-pro-.webp",
			Rating:      4.9,
			Reviews:     89,
			InStock:     true,
			Features:    []string{"A17 Pro Chip", "48MP Main Camera", "Titanium Design", "USB-C Port", "iOS 17"},
			Specs: []domain.SpecEntry{
				{Label: "Processor", Value: "A17 Pro"},
				{Label: "Memory", Value: "8GB"},
				{Label: "Storage", Value: "256GB"},
				{Label: "Display", Value: "6.1-inch Super Retina XDR"},
				{Label: "Battery", Value: "Up to 23 hours"},
			},
		},
		{
			ID:          3,
			Name:        "Samsung Galaxy S24",
			Description: "Android flagship with Snapdragon 8 Gen 3, 200MP camera, and AI features.",
			PriceCents:  89999,
			Category:    domain.CategoryPhones,
			Image:       "./04_S24Series-GalaxyAI-KV_PC.jpg",
			Rating:      4.7,
			Reviews:     67,
			InStock:     true,
			Features:    []string{"Snapdragon 8 Gen 3", "200MP Camera", "AI-Powered Features", "120Hz Display", "Android 14"},
			Specs: []domain.SpecEntry{
				{Label: "Processor", Value: "Snapdragon 8 Gen 3"},
				{Label: "Memory", Value: "12GB"},
				{Label: "Storage", Value: "256GB"},
				{Label: "Display", Value: "6.8-inch Dynamic AMOLED 2X"},
				{Label: "Battery", Value: "5000mAh"},
			},
		},
		{
			ID:          4,
			Name:        "Sony WH-1000XM5",
			Description: "Premium noise-cancelling headphones with industry-leading sound quality.",
			PriceCents:  39999,
			Category:    domain.CategoryElectronics,
			Image:       "./img_9663.avif",
			Rating:      4.8,
			Reviews:     210,
			InStock:     true,
			Features:    []string{"Industry-leading noise cancellation", "30-hour battery life", "Multipoint connection", "Voice assistant support", "Foldable design"},
			Specs: []domain.SpecEntry{
				{Label: "Type", Value: "Over-ear"},
				{Label: "Battery", Value: "30 hours"},
				{Label: "Connectivity", Value: "Bluetooth 5.2"},
				{Label: "Weight", Value: "250g"},
				{Label: "Features", Value: "Noise Cancelling, Voice Assistant"},
			},
		},
		{
			ID:          5,
			Name:        "Dell XPS 15",
			Description: "Premium Windows laptop with Intel Core i9 and 4K OLED display.",
			PriceCents:  219999,
			Category:    domain.CategoryComputers,
			Image:       "./91WgL3IbNIL._AC_SL1500_.jpg",
			Rating:      4.6,
			Reviews:     92,
			InStock:     true,
			Features:    []string{"Intel Core i9-13900H", "15.6-inch 4K OLED", "32GB RAM", "1TB SSD", "NVIDIA RTX 4070"},
			Specs: []domain.SpecEntry{
				{Label: "Processor", Value: "Intel Core i9-13900H"},
				{Label: "Memory", Value: "32GB"},
				{Label: "Storage", Value: "1TB SSD"},
				{Label: "Display", Value: "15.6-inch 4K OLED"},
				{Label: "Graphics", Value: "NVIDIA RTX 4070"},
			},
		},
		{
			ID:          6,
			Name:        "Apple Watch Series 9",
			Description: "Advanced smartwatch with health monitoring and fitness tracking.",
			PriceCents:  42999,
			Category:    domain.CategoryElectronics,
			Image:       "./Apple-Watch-S9-hero-230912_Full-Bleed-Image.jpg.large.jpg",
			Rating:      4.7,
			Reviews:     156,
			InStock:     true,
			Features:    []string{"Blood Oxygen app", "ECG app", "Always-On Retina display", "Water resistant 50m", "GPS + Cellular"},
			Specs: []domain.SpecEntry{
				{Label: "Display", Value: "Always-On Retina LTPO OLED"},
				{Label: "Processor", Value: "S9 SiP"},
				{Label: "Storage", Value: "64GB"},
				{Label: "Battery", Value: "Up to 18 hours"},
				{Label: "Features", Value: "GPS, Cellular, Health Monitoring"},
			},
		},
		{
			ID:          7,
			Name:        "Logitech MX Master 3S",
			Description: "Advanced wireless mouse for professionals with MagSpeed scrolling.",
			PriceCents:  9999,
			Category:    domain.CategoryAccessories,
			Image:       "./Logitech-MX-Master-3S.jpg",
			Rating:      4.8,
			Reviews:     312,
			InStock:     true,
			Features:    []string{"8K DPI sensor", "MagSpeed electromagnetic scrolling", "70-day battery life", "Darkfield tracking", "Flow cross-computer control"},
			Specs: []domain.SpecEntry{
				{Label: "Sensor", Value: "Darkfield 8K DPI"},
				{Label: "Connectivity", Value: "Bluetooth & USB receiver"},
				{Label: "Battery", Value: "Up to 70 days"},
				{Label: "Buttons", Value: "7 programmable buttons"},
				{Label: "Compatibility", Value: "Windows, macOS, Linux"},
			},
		},
		{
			ID:          8,
			Name:        "Samsung Odyssey G9",
			Description: "49-inch super ultrawide gaming monitor with 240Hz refresh rate.",
			PriceCents:  129999,
			Category:    domain.CategoryElectronics,
			Image:       "./Samsung-Odyssey-OLED-G9-lead.webp",
			Rating:      4.5,
			Reviews:     78,
			InStock:     true,
			Features:    []string{"49-inch Dual QHD", "240Hz refresh rate", "1ms response time", "QLED technology", "HDR1000"},
			Specs: []domain.SpecEntry{
				{Label: "Size", Value: "49-inch"},
				{Label: "Resolution", Value: "5120x1440"},
				{Label: "Refresh Rate", Value: "240Hz"},
				{Label: "Panel", Value: "QLED"},
				{Label: "Response Time", Value: "1ms"},
			},
		},
		{
			ID:          9,
			Name:        "AirPods Pro (2nd Gen)",
			Description: "Wireless earbuds with active noise cancellation and spatial audio.",
			PriceCents:  24999,
			Category:    domain.CategoryAccessories,
			Image:       "./airpodsmirror.jpg",
			Rating:      4.7,
			Reviews:     189,
			InStock:     true,
			Features:    []string{"Active Noise Cancellation", "Adaptive Transparency", "Personalized Spatial Audio", "6-hour battery life", "Wireless charging case"},
			Specs: []domain.SpecEntry{
				{Label: "Type", Value: "In-ear"},
				{Label: "Battery", Value: "6 hours (with ANC)"},
				{Label: "Connectivity", Value: "Bluetooth 5.3"},
				{Label: "Features", Value: "Noise Cancellation, Spatial Audio"},
				{Label: "Case", Value: "Wireless charging"},
			},
		},
		{
			ID:          10,
			Name:        "PlayStation 5",
			Description: "Next-gen gaming console with ultra-high speed SSD and ray tracing.",
			PriceCents:  49999,
			Category:    domain.CategoryElectronics,
			Image:       "./sony-playstation-5-2560x1440-19022.jpg",
			Rating:      4.8,
			Reviews:     234,
			InStock:     true,
			Features:    []string{"Ultra-high speed SSD", "Ray tracing", "4K 120fps", "Tempest 3D AudioTech", "DualSense wireless controller"},
			Specs: []domain.SpecEntry{
				{Label: "Processor", Value: "AMD Zen 2"},
				{Label: "Graphics", Value: "AMD RDNA 2"},
				{Label: "Memory", Value: "16GB GDDR6"},
				{Label: "Storage", Value: "825GB SSD"},
				{Label: "Output", Value: "4K 120Hz, 8K"},
			},
		},
		{
			ID:          11,
			Name:        "Microsoft Surface Pro 9",
			Description: "Versatile 2-in-1 laptop with touchscreen and detachable keyboard.",
			PriceCents:  129999,
			Category:    domain.CategoryComputers,
			Image:       "./IMG_0575.jpeg",
			Rating:      4.5,
			Reviews:     56,
			InStock:     true,
			Features:    []string{"13-inch PixelSense touchscreen", "Intel Core i7", "16GB RAM", "512GB SSD", "Windows 11 Pro"},
			Specs: []domain.SpecEntry{
				{Label: "Processor", Value: "Intel Core i7-1255U"},
				{Label: "Memory", Value: "16GB"},
				{Label: "Storage", Value: "512GB SSD"},
				{Label: "Display", Value: "13-inch PixelSense"},
				{Label: "Battery", Value: "Up to 15.5 hours"},
			},
		},
		{
			ID:          12,
			Name:        "Google Pixel 8 Pro",
			Description: "Google flagship phone with Tensor G3 chip and advanced camera system.",
			PriceCents:  89999,
			Category:    domain.CategoryPhones,
			Image:       "./maxresdefault.jpg",
			Rating:      4.6,
			Reviews:     45,
			InStock:     true,
			Features:    []string{"Google Tensor G3", "Triple camera system", "Super Actua display", "30W fast charging", "7 years of updates"},
			Specs: []domain.SpecEntry{
				{Label: "Processor", Value: "Google Tensor G3"},
				{Label: "Memory", Value: "12GB"},
				{Label: "Storage", Value: "256GB"},
				{Label: "Display", Value: "6.7-inch LTPO OLED"},
				{Label: "Battery", Value: "5050mAh"},
			},
		},
	}
}

// Users returns the demo account list.
func Users() []domain.User {
	return []domain.User{
		{
			ID:        1,
			Email:     "demo@techstore.com",
			Password:  "demo123",
			Name:      "Demo User",
			Role:      "user",
			CreatedAt: "2024-01-01",
			Preferences: domain.Preferences{
				Theme:         domain.ThemeLight,
				Language:      domain.LanguageEN,
				Notifications: true,
			},
		},
	}
}

// Orders returns the demo account's historical order.
func Orders() []domain.Order {
	catalog := Catalog()
	return []domain.Order{
		{
			ID:     "1",
			UserID: 1,
			Lines: []domain.CartLine{
				{Product: catalog[0], Quantity: 1},
				{Product: catalog[8], Quantity: 1},
			},
			TotalCents:      274998,
			Status:          domain.OrderStatusDelivered,
			Date:            "2024-01-15",
			ShippingAddress: "123 Tech Street, Digital City",
		},
	}
}

// Apply writes the demo dataset into the store. Keys that already hold state
// are left alone, so reseeding a live backend cannot wipe user activity.
func Apply(ctx context.Context, store storage.Store) error {
	writes := []struct {
		key   string
		value interface{}
	}{
		{storage.KeyProducts, Catalog()},
		{storage.KeyOrders, Orders()},
	}
	for _, w := range writes {
		if _, err := store.Get(ctx, w.key); err == nil {
			continue
		} else if !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("check %s: %w", w.key, err)
		}
		if err := storage.WriteJSON(ctx, store, w.key, w.value); err != nil {
			return fmt.Errorf("seed %s: %w", w.key, err)
		}
	}
	return nil
}
