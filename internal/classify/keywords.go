package classify

import "github.com/SanthoshArigela/smartscan/internal/model"

// keywordTable maps every category to its dictionary of merchant names,
// domain terms and synonyms. Scoring iterates categories in declaration
// order (model.AllCategories), never over this map directly, so results stay
// deterministic. Keyword order within a category matters: label derivation
// breaks length ties by first occurrence.
var keywordTable = map[model.Category][]string{
	model.CategoryFood: {
		"zomato", "swiggy", "eats", "food", "restaurant", "cafe", "bistro",
		"diner", "kitchen", "bar", "pub", "bakery", "sweets", "mcdonalds",
		"kfc", "dominos", "pizza", "burger", "king", "subway", "starbucks",
		"coffee", "tea", "chai", "biryani", "kebab", "tandoor", "thali",
		"breakfast", "lunch", "dinner", "menu", "table", "dine", "mess",
		"hotel", "serving",
	},
	model.CategoryTransport: {
		"uber", "ola", "rapido", "lyft", "ride", "trip", "cab", "taxi",
		"auto", "driver", "fare", "fuel", "petrol", "diesel", "gas", "cng",
		"shell", "hp", "indian oil", "pump", "station", "parking", "toll",
		"fastag", "metro", "train", "bus", "flight", "airline", "ticket",
	},
	model.CategoryShopping: {
		"amazon", "flipkart", "myntra", "ajio", "meesho", "nykaa", "retail",
		"store", "mart", "market", "mall", "zara", "h&m", "trends", "zudio",
		"max", "pantaloons", "westside", "decathlon", "ikea", "clothing",
		"apparel", "fashion", "garments", "textile", "silk", "saree",
		"boutique", "grocery", "supermarket",
	},
	model.CategoryEntertainment: {
		"movie", "cinema", "theatre", "film", "show", "screen", "multiplex",
		"imax", "pvr", "inox", "cinepolis", "bookmyshow", "netflix", "prime",
		"hotstar", "spotify", "youtube", "subscription", "game", "gaming",
		"fun", "park", "resort",
	},
	model.CategoryBills: {
		"bill", "recharge", "topup", "prepaid", "postpaid", "broadband",
		"wifi", "fiber", "internet", "electricity", "power", "bescom",
		"water", "gas", "cylinder", "lpg", "indane", "airtel", "jio", "vi",
		"vodafone", "bsnl", "act", "tax", "utgst", "cgst", "sgst",
	},
}

// Keywords returns a copy of the dictionary for one category, for
// introspection (the CLI lists them).
func Keywords(c model.Category) []string {
	words := keywordTable[c]
	out := make([]string, len(words))
	copy(out, words)
	return out
}
