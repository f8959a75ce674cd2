package cache

// Category is one of the fixed data domains tracked independently by the
// cache. The set is closed; unknown categories are never materialized.
type Category string

const (
	CategoryLobbying       Category = "lobbying"
	CategoryCongress       Category = "congress"
	CategoryContracts      Category = "contracts"
	CategoryNews           Category = "news"
	CategoryQuotes         Category = "quotes"
	CategoryHomepage       Category = "homepage"
	CategoryIntraday       Category = "intraday"
	CategorySectors        Category = "sectors"
	CategoryMarketOverview Category = "marketOverview"
)

// Categories lists every known category, in index order.
func Categories() []Category {
	return []Category{
		CategoryLobbying,
		CategoryCongress,
		CategoryContracts,
		CategoryNews,
		CategoryQuotes,
		CategoryHomepage,
		CategoryIntraday,
		CategorySectors,
		CategoryMarketOverview,
	}
}

// payloadRef is the blob locator for a category's payload.
func payloadRef(c Category) string {
	return string(c) + "Cache"
}
