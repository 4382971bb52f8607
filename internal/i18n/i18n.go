// Package i18n carries the storefront's display strings as typed bundles.
// The key set is closed: a missing translation is a compile error, not a
// runtime fallback to a raw key.
package i18n

import "techstore/internal/domain"

// Translations is one language's complete string set.
type Translations struct {
	// Navigation
	Home     string `json:"home"`
	Products string `json:"products"`
	About    string `json:"about"`
	Contact  string `json:"contact"`

	// Hero
	HeroTitle    string `json:"heroTitle"`
	HeroSubtitle string `json:"heroSubtitle"`
	ShopNow      string `json:"shopNow"`
	LearnMore    string `json:"learnMore"`

	// Products section
	FeaturedProducts string `json:"featuredProducts"`
	BrowseCollection string `json:"browseCollection"`

	// Search
	SearchPlaceholder string `json:"searchPlaceholder"`
	NoResults         string `json:"noResults"`
	SearchCleared     string `json:"searchCleared"`

	// Product actions
	ViewDetails string `json:"viewDetails"`
	AddToCart   string `json:"addToCart"`
	BuyNow      string `json:"buyNow"`

	// Auth modal
	SignIn             string `json:"signIn"`
	CreateAccount      string `json:"createAccount"`
	FullName           string `json:"fullName"`
	Email              string `json:"email"`
	Password           string `json:"password"`
	ConfirmPassword    string `json:"confirmPassword"`
	DontHaveAccount    string `json:"dontHaveAccount"`
	AlreadyHaveAccount string `json:"alreadyHaveAccount"`

	// Cart
	ShoppingCart     string `json:"shoppingCart"`
	CartEmpty        string `json:"cartEmpty"`
	ContinueShopping string `json:"continueShopping"`
	Checkout         string `json:"checkout"`
	Subtotal         string `json:"subtotal"`
	Tax              string `json:"tax"`
	Total            string `json:"total"`
	Remove           string `json:"remove"`
	Quantity         string `json:"quantity"`

	// Contact form
	ContactTitle    string `json:"contactTitle"`
	ContactSubtitle string `json:"contactSubtitle"`
	YourName        string `json:"yourName"`
	YourEmail       string `json:"yourEmail"`
	YourMessage     string `json:"yourMessage"`
	SendMessage     string `json:"sendMessage"`

	// Notifications
	AddedToCart     string `json:"addedToCart"`
	RemovedFromCart string `json:"removedFromCart"`
	CartUpdated     string `json:"cartUpdated"`
	MessageSent     string `json:"messageSent"`
	LoginSuccess    string `json:"loginSuccess"`
	RegisterSuccess string `json:"registerSuccess"`

	// Category display names, keyed by the category enum.
	Categories map[domain.Category]string `json:"categories"`
}

// For returns the bundle for lang, falling back to English for anything
// unrecognized.
func For(lang domain.Language) Translations {
	switch lang {
	case domain.LanguageRU:
		return russian
	case domain.LanguageUZ:
		return uzbek
	default:
		return english
	}
}

// CategoryName returns the display name of a category in the given language.
func CategoryName(lang domain.Language, cat domain.Category) string {
	if name, ok := For(lang).Categories[cat]; ok {
		return name
	}
	return string(cat)
}
