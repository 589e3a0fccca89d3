package seed

import (
	"github.com/shopspring/decimal"

	"github.com/mevans2120/mm-ec-poc/internal/catalog"
)

// ProductSeed is one entry of the fixed catalog shipped with the storefront.
// StripePriceID must point at a real, active price in the Stripe account the
// storefront runs against, or checkout for that product fails.
type ProductSeed struct {
	Title         string
	Slug          string
	Description   string
	Price         decimal.Decimal
	Type          catalog.ProductType
	StripePriceID string
	Featured      bool
	Order         int
}

// Products is the full catalog, in display order.
var Products = []ProductSeed{
	{
		Title:         "Soul Search Workbook",
		Slug:          "soul-search-workbook",
		Description:   "A comprehensive digital workbook to help you discover your true career calling. Explore your values, passions, and strengths through guided exercises and reflective prompts.",
		Price:         decimal.RequireFromString("19.99"),
		Type:          catalog.TypeDigital,
		StripePriceID: "price_1SxDnEAUnkaWZ0lgCqtsgn86",
		Featured:      true,
		Order:         1,
	},
	{
		Title:         "Research Workbook",
		Slug:          "research-workbook",
		Description:   "Learn how to research career paths, industries, and companies effectively. This workbook provides frameworks and templates for gathering the information you need to make informed career decisions.",
		Price:         decimal.RequireFromString("19.99"),
		Type:          catalog.TypeDigital,
		StripePriceID: "price_1SxDnFAUnkaWZ0lgZcslueNF",
		Order:         2,
	},
	{
		Title:         "Job Search Workbook",
		Slug:          "job-search-workbook",
		Description:   "Your complete guide to landing your dream job. Covers resume writing, networking strategies, interview preparation, and salary negotiation tactics.",
		Price:         decimal.RequireFromString("19.99"),
		Type:          catalog.TypeDigital,
		StripePriceID: "price_1SxDnFAUnkaWZ0lgHwAxFPB4",
		Order:         3,
	},
	{
		Title:         "3-Workbook Bundle",
		Slug:          "workbook-bundle",
		Description:   "Get all three workbooks at a discounted price! Includes Soul Search, Research, and Job Search workbooks — everything you need for a complete career transformation.",
		Price:         decimal.RequireFromString("49.99"),
		Type:          catalog.TypeBundle,
		StripePriceID: "price_1SxDnGAUnkaWZ0lgSYpww40z",
		Featured:      true,
		Order:         4,
	},
	{
		Title:         "Five Elements Assessment",
		Slug:          "five-elements-assessment",
		Description:   "Discover your unique career personality through this interactive assessment based on the Five Elements framework. Receive personalized insights and career recommendations.",
		Price:         decimal.RequireFromString("29.99"),
		Type:          catalog.TypeDigital,
		StripePriceID: "price_1SxDnGAUnkaWZ0lgBZsJv1JL",
		Featured:      true,
		Order:         5,
	},
	{
		Title:         "Career Empowerment Webinar",
		Slug:          "career-empowerment-webinar",
		Description:   "A recorded 90-minute masterclass on taking control of your career. Learn proven strategies for career advancement, work-life balance, and professional fulfillment.",
		Price:         decimal.RequireFromString("39.99"),
		Type:          catalog.TypeDigital,
		StripePriceID: "price_1SxDnHAUnkaWZ0lgjOZcfyLk",
		Order:         6,
	},
	{
		Title:         "How-To Book (ebook)",
		Slug:          "how-to-book",
		Description:   "Maggie Mistal's complete guide to career change and fulfillment. This ebook distills decades of coaching experience into actionable advice you can implement today.",
		Price:         decimal.RequireFromString("14.99"),
		Type:          catalog.TypeDigital,
		StripePriceID: "price_1SxDnHAUnkaWZ0lgKmG4xhQ9",
		Order:         7,
	},
	{
		Title:         "Physical Workbook Set",
		Slug:          "physical-workbook-set",
		Description:   "Premium printed versions of all three workbooks, shipped directly to your door. Perfect for those who prefer pen and paper for their career exploration journey.",
		Price:         decimal.RequireFromString("59.99"),
		Type:          catalog.TypePhysical,
		StripePriceID: "price_1SxDnIAUnkaWZ0lgBi4Heycp",
		Order:         8,
	},
}
