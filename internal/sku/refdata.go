package sku

// Category describes one category code with its subcategory labels.
type Category struct {
	Name          string            `json:"name"`
	Subcategories map[string]string `json:"subcategories"`
}

// Reference lookup maps, keyed by code. These are starting values
// carried over from the legacy SKU tool; extend as the assortment
// grows. The allocator does not consult them: codes outside the maps
// still allocate normally.
var (
	CategoryMap = map[string]Category{
		"01": {Name: "Groceries & Staples", Subcategories: map[string]string{
			"1": "Noodle", "2": "Sauce", "3": "Spices", "4": "Pulses & Beans",
			"5": "Tea", "6": "Flour", "7": "Oil",
		}},
		"02": {Name: "Rice", Subcategories: map[string]string{
			"1": "Basmati", "2": "Sella Basmati", "3": "Idli", "4": "Soona Masoori",
			"5": "Brown", "6": "Glutonious", "7": "Jasmin", "8": "Sushi",
			"9": "Puffed Rice", "10": "Rice Flakes",
		}},
		"03": {Name: "Fresh", Subcategories: map[string]string{
			"1": "Meat", "2": "Vegetable", "3": "Fruit",
		}},
		"04": {Name: "Frozen", Subcategories: map[string]string{
			"1": "Whole Fish", "2": "Block Fish", "3": "Vegetable",
			"4": "Pastry", "5": "Meat", "6": "Dessert",
		}},
		"05": {Name: "Beverages", Subcategories: map[string]string{
			"1": "Soft drinks", "2": "Juice", "3": "Smoothie", "4": "Ice Tea",
			"5": "Bubble Tea", "6": "Falooda", "7": "Sparkling", "8": "Herbal",
			"9": "Limonade", "10": "Aloevera",
		}},
		"06": {Name: "Sweets & Deserts", Subcategories: map[string]string{
			"1": "Icecream", "2": "Coconut Desert", "3": "Handmade",
		}},
		"07": {Name: "Snacks & Munching", Subcategories: map[string]string{
			"1": "Chips", "2": "Biscuits", "3": "Rusk", "4": "Chanachur",
		}},
		"08": {Name: "Non-Food", Subcategories: map[string]string{
			"1": "Incense", "2": "Utensils", "3": "Kitchen Accessories",
		}},
	}

	VendorMap = map[string]string{
		"001": "A", "002": "AASHIRVAAD", "003": "ACECOOK", "004": "AFROASE",
		"005": "AGARBATTI", "006": "AHMED", "007": "AKASH", "008": "ANNAM",
		"009": "ANNY", "010": "AROD-D", "011": "ASH K", "012": "ASHOKA",
		"013": "ASIAN CHOICE", "014": "ATOOM", "015": "AQUAPEARL", "016": "BAIJIA",
		"017": "BAMBOO TREE", "018": "BICANO", "019": "BIK", "020": "BINGGRAE",
		"021": "BIBIGO", "022": "BOMBAY", "023": "BRITANNIA", "024": "CARNATION",
		"025": "CARABAO", "026": "CHIU CHOW", "027": "CHUPA CHUPS", "028": "COCK",
		"029": "COCON", "030": "COFE", "031": "CROWN FARM", "032": "CYPRESSA",
		"033": "DAN", "034": "DABUR", "035": "DETTOL", "036": "DOUX",
		"037": "EAGLOBE", "038": "EFP", "039": "ELEFANT", "040": "ELEPHANT",
		"041": "ENCONA", "042": "EVERBEST", "043": "FARMER", "044": "FOCO",
		"045": "GENKI RAMUNE", "046": "GINGERBON", "047": "GITS", "048": "GOGI",
		"049": "GOLESTAN", "050": "GOLD KILI", "051": "GOLDEN MOUNTAIN",
		"052": "GREEN FARM", "053": "GREEN TABLE", "054": "HAIDILAO",
		"055": "HALDIRAM", "056": "HAOHAO", "057": "HEALTHY BOY", "058": "HEERA",
		"059": "HEER", "060": "HEINZ",
	}

	QuantityMap = map[string]string{
		"1": "250g/ml",
		"2": "500g/ml",
		"3": "1000g/ml",
		"4": "3000g/ml",
		"5": "5000g/ml",
		"6": "8000g/ml",
		"7": "10000g/ml",
		"8": "15000g/ml",
		"9": "20000g/ml",
	}
)
