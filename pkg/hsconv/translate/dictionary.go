// Package translate provides EN→VI translation of HS code descriptions via
// a static dictionary, a persistent cache, and optional AI providers.
package translate

import "sort"

// Dictionary maps English HS descriptions to Vietnamese translations.
// Seeded from the curated tariff terminology list; extend here or via the
// cache file.
var Dictionary = map[string]string{
	// Animals & animal products
	"Animals; live": "Động vật; sống",
	"Horses, asses, mules and hinnies; live":              "Ngựa, lừa, la và cái la; sống",
	"Horses; live, pure-bred breeding animals":            "Ngựa; sống, động vật giống thuần chủng",
	"Horses; live, other than pure-bred breeding animals": "Ngựa; sống, không phải động vật giống thuần chủng",
	"Asses; live":           "Lừa; sống",
	"Mules and hinnies; live": "La và cái la; sống",
	"Bovine animals; live":    "Động vật thuộc họ ngựa vằn; sống",
	"Cattle; live, pure-bred breeding animals":            "Gia súc; sống, động vật giống thuần chủng",
	"Cattle; live, other than pure-bred breeding animals": "Gia súc; sống, không phải động vật giống thuần chủng",

	// Meat products
	"Meat of horses":         "Thịt ngựa",
	"Meat of cattle":         "Thịt gia súc",
	"Swine meat":             "Thịt heo",
	"Meat of sheep or goats": "Thịt cừu hoặc dê",
	"Meat of poultry":        "Thịt gia cầm",

	// Fish & seafood
	"Fish":        "Cá",
	"Crustaceans": "Động vật chân khớp nước",
	"Molluscs and other aquatic invertebrates": "Thân mềm và các động vật không xương sống dưới nước khác",

	// Dairy & eggs
	"Milk and milk products": "Sữa và các sản phẩm từ sữa",
	"Eggs":  "Trứng",
	"Honey": "Mật ong",

	// Vegetables & fruits
	"Edible vegetables and certain roots and tubers": "Rau ăn được và một số rau củ nhất định",
	"Edible fruit and nuts":   "Trái cây ăn được và hạt",
	"Coffee, tea and spices":  "Cà phê, trà và gia vị",

	// Grains
	"Cereals":          "Ngũ cốc",
	"Milling products": "Sản phẩm xay",
	"Oil seeds and oleaginous fruits": "Hạt dầu và quả oleaginous",

	// Sugar
	"Sugar and sugar confectionery": "Đường và kẹo đường",

	// Beverages & food industry
	"Beverages, vinegar and vinegar substitutes":                        "Đồ uống, dấm và các chất thay thế dấm",
	"Residues and waste from the food industries":                       "Dư lượu và chất thải từ các ngành công nghiệp thực phẩm",
	"Residues and waste from the food industries; prepared animal feed": "Dư lượng và chất thải từ các ngành công nghiệp thực phẩm; thức ăn gia súc chuẩn bị",

	// Mineral products
	"Mineral products": "Sản phẩm khoáng chất",
	"Salt; sulphur; earth and stone; lime and cement": "Muối; lưu huỳnh; đất và đá; vôi và xi-măng",
	"Ores, slag and ash": "Quặng, xỉ và tro",
	"Mineral fuels, mineral oils and products of their distillation": "Nhiên liệu khoáng chất, dầu khoáng chất và các sản phẩm của sự chưng cất của chúng",

	// Chemicals
	"Organic chemicals":            "Hóa chất hữu cơ",
	"Inorganic chemicals":          "Hóa chất vô cơ",
	"Pharmaceutical products":      "Sản phẩm dược phẩm",
	"Fertilisers":                  "Phân bón",
	"Plastics and articles thereof": "Chất dẻo và các bài viết từ đó",
	"Rubber and articles thereof":   "Cao su và các bài viết từ đó",

	// Leather
	"Hides and skins":             "Da",
	"Leather":                     "Da thuộc",
	"Furskins and artificial fur": "Lông thú và lông nhân tạo",

	// Wood & paper
	"Wood and articles of wood; wood charcoal":            "Gỗ và các bài viết gỗ; than chế gỗ",
	"Pulp of wood or other fibrous cellulosic material":   "Bột gỗ hoặc các vật liệu xenluloza sợi khác",
	"Paper and paperboard and articles thereof":           "Giấy và bìa carton và các bài viết từ đó",

	// Textiles
	"Textiles and textile articles":      "Vải dệt và các bài viết dệt",
	"Silk":                               "Lụa",
	"Wool and fine or coarse animal hair": "Len và tóc mịn hoặc thô từ động vật",
	"Cotton":                             "Bông",
	"Yarn":                               "Sợi",
	"Woven fabrics":                      "Vải dệt",
	"Knitted or crocheted fabrics":       "Vải dệt kim hoặc móc",
	"Articles of apparel":                "Bài viết quần áo",
	"Footwear":                           "Giày",
	"Headgear":                           "Mũ",
	"Umbrellas":                          "Ô",
	"Artificial flowers":                 "Hoa nhân tạo",

	// Ceramics & glass
	"Ceramics and products of ceramics": "Gốm sứ và các sản phẩm gốm sứ",
	"Glass and glassware":               "Thủy tinh và các vật từ thủy tinh",

	// Precious metals
	"Precious metals and metals clad with precious metal": "Kim loại quý và kim loại bọc bằng kim loại quý",
	"Pearls": "Ngọc trai",

	// Base metals
	"Iron and steel":               "Sắt và thép",
	"Articles of iron and steel":   "Bài viết từ sắt và thép",
	"Copper and articles thereof":  "Đồng và các bài viết từ đó",
	"Nickel and articles thereof":  "Niken và các bài viết từ đó",
	"Tin and articles thereof":     "Thiếc và các bài viết từ đó",
	"Aluminium and articles thereof": "Nhôm và các bài viết từ đó",
	"Lead and articles thereof":    "Chì và các bài viết từ đó",
	"Zinc and articles thereof":    "Kẽm và các bài viết từ đó",

	// Machinery & electrical
	"Machinery and mechanical appliances":          "Máy móc và các thiết bị cơ khí",
	"Electrical machinery and equipment":           "Máy điện và thiết bị điện",
	"Boilers, machinery and mechanical appliances": "Nồi hơi, máy móc và các thiết bị cơ khí",

	// Transport
	"Vehicles other than railway or tramway rolling stock":       "Phương tiện vận tải khác ngoài xe lăn đường sắt hoặc xe điện",
	"Railway or tramway locomotives, rolling stock and parts":    "Tàu hỏa hoặc tàu điện, xe lăn và các bộ phận",
	"Aircraft":                        "Máy bay",
	"Ships and floating structures":   "Tàu thuyền và các cấu trúc nổi",

	// Optical & precision
	"Optical instruments":  "Dụng cụ quang học",
	"Surgical instruments": "Dụng cụ phẫu thuật",
	"Clocks and watches":   "Đồng hồ và đồng hồ đeo tay",
	"Musical instruments":  "Dụng cụ âm nhạc",

	// Miscellaneous
	"Miscellaneous manufactured articles": "Các bài viết sản xuất khác",
	"Toys and games":                      "Đồ chơi và trò chơi",
	"Arms and ammunition":                 "Vũ khí và đạn dược",
	"Works of art":                        "Tác phẩm nghệ thuật",
}

// dictionaryKeys holds the dictionary keys in sorted order. Partial matching
// iterates this slice instead of the map so the winning key is the same on
// every run.
var dictionaryKeys = sortedDictionaryKeys()

func sortedDictionaryKeys() []string {
	keys := make([]string, 0, len(Dictionary))
	for k := range Dictionary {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
