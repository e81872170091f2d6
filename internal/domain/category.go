package domain

// Category describes one entry of the fixed storefront taxonomy. The set is
// closed: admins pick from it, they cannot add new categories.
type Category struct {
	Key         string `json:"key"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

const CategoryMachinery = "machinery"

// Categories lists the storefront taxonomy in display order.
var Categories = []Category{
	{Key: "seeds-organic", Title: "Organic Seeds", Description: "Naturally sourced seeds for healthier crops"},
	{Key: "seeds-inorganic", Title: "Inorganic Seeds", Description: "Scientifically improved seeds for better yield"},
	{Key: "fertilizers-organic", Title: "Organic Fertilizers", Description: "Eco-friendly fertilizers for sustainable farming"},
	{Key: "fertilizers-inorganic", Title: "Inorganic Fertilizers", Description: "Boost crop productivity with chemical fertilizers"},
	{Key: "trees-fruit", Title: "Fruit Trees", Description: "Grow your own fruits with our best tree varieties"},
	{Key: "trees-ornamental", Title: "Ornamental Trees", Description: "Beautify farms and gardens with ornamental trees"},
	{Key: "poultry-chick", Title: "Chick", Description: "Supplies and feed for chick farming"},
	{Key: "poultry-duck", Title: "Duck", Description: "All you need for duck rearing"},
	{Key: "poultry-turkey", Title: "Turkey", Description: "Top-quality turkeys and accessories"},
	{Key: "vegetables", Title: "Vegetables", Description: "Farm-fresh vegetables and their seeds"},
	{Key: CategoryMachinery, Title: "Agricultural Machinery", Description: "Modern equipment to enhance productivity"},
	{Key: "dairy", Title: "Dairy", Description: "Fresh and healthy dairy products"},
}

// ValidCategory reports whether key belongs to the fixed taxonomy.
func ValidCategory(key string) bool {
	for _, c := range Categories {
		if c.Key == key {
			return true
		}
	}
	return false
}
