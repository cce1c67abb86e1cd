// catalog_data.go
//
// Seed catalog. Editing this file and redeploying is how catalog changes
// ship; nothing mutates these records at runtime.

package main

var seedProducts = []Product{
	{
		ID:            1,
		Name:          "Samsung Galaxy S24 Ultra 256GB",
		Price:         1850000,
		OriginalPrice: 2100000,
		Image:         "/images/samsung-s24-ultra.jpg",
		Images: []string{
			"/images/samsung-s24-ultra.jpg",
			"/images/samsung-s24-ultra-2.jpg",
			"/images/samsung-s24-ultra-3.jpg",
			"/images/samsung-s24-ultra-4.jpg",
		},
		Rating:      4.8,
		Reviews:     2847,
		Category:    "Smartphones",
		Brand:       "Samsung",
		Description: "The most powerful Galaxy smartphone yet, featuring the revolutionary S Pen, advanced AI photography, and all-day battery life. Perfect for professionals and content creators.",
		Features: []string{
			"6.8-inch Dynamic AMOLED 2X display with 120Hz",
			"200MP main camera with 100x Space Zoom",
			"Built-in S Pen with Air Actions",
			"Snapdragon 8 Gen 3 processor",
			"5000mAh battery with 45W fast charging",
			"IP68 water and dust resistance",
		},
		Specifications: []Specification{
			{"Display", "6.8-inch Dynamic AMOLED 2X, 3120 x 1440"},
			{"Processor", "Snapdragon 8 Gen 3"},
			{"RAM", "12GB"},
			{"Storage", "256GB"},
			{"Camera", "200MP + 50MP + 12MP + 10MP"},
			{"Battery", "5000mAh"},
			{"OS", "Android 14 with One UI 6.1"},
			{"Weight", "232g"},
		},
		IsOnSale:     true,
		Badge:        "Flagship",
		InStock:      true,
		StockCount:   15,
		IsNew:        true,
		IsTrending:   true,
		FreeShipping: true,
		FastDelivery: true,
		Warranty:     "2 Year Warranty",
		ReturnPolicy: "30-Day Returns",
	},
	{
		ID:            2,
		Name:          "iPhone 15 Pro Max 256GB",
		Price:         2200000,
		OriginalPrice: 2450000,
		Image:         "/images/iphone-15-pro-max.jpg",
		Images: []string{
			"/images/iphone-15-pro-max.jpg",
			"/images/iphone-15-pro-max-2.jpg",
			"/images/iphone-15-pro-max-3.jpg",
			"/images/iphone-15-pro-max-4.jpg",
		},
		Rating:      4.9,
		Reviews:     3521,
		Category:    "Smartphones",
		Brand:       "Apple",
		Description: "The ultimate iPhone experience with titanium design, A17 Pro chip, and the most advanced camera system ever in an iPhone.",
		Features: []string{
			"6.7-inch Super Retina XDR display with ProMotion",
			"A17 Pro chip with 6-core GPU",
			"Pro camera system with 5x Telephoto",
			"Action Button for quick shortcuts",
			"USB-C with USB 3 support",
			"Titanium design with Ceramic Shield",
		},
		Specifications: []Specification{
			{"Display", "6.7-inch Super Retina XDR OLED"},
			{"Processor", "A17 Pro chip"},
			{"RAM", "8GB"},
			{"Storage", "256GB"},
			{"Camera", "48MP + 12MP + 12MP"},
			{"Battery", "4441mAh"},
			{"OS", "iOS 17"},
			{"Weight", "221g"},
		},
		IsOnSale:     true,
		Badge:        "Premium",
		InStock:      true,
		StockCount:   8,
		IsNew:        true,
		IsTrending:   true,
		FreeShipping: true,
		FastDelivery: true,
		Warranty:     "1 Year Warranty",
		ReturnPolicy: "14-Day Returns",
	},
	{
		ID:            3,
		Name:          "Dell XPS 13 Plus Intel Core i7",
		Price:         1650000,
		OriginalPrice: 1850000,
		Image:         "/images/dell-xps-13-plus.jpg",
		Images: []string{
			"/images/dell-xps-13-plus.jpg",
			"/images/dell-xps-13-plus-2.jpg",
			"/images/dell-xps-13-plus-3.jpg",
			"/images/dell-xps-13-plus-4.jpg",
		},
		Rating:      4.6,
		Reviews:     1892,
		Category:    "Laptops",
		Brand:       "Dell",
		Description: "Ultra-premium laptop with stunning 13.4-inch OLED display, latest Intel processors, and sleek minimalist design perfect for professionals.",
		Features: []string{
			"13.4-inch 3.5K OLED InfinityEdge display",
			"12th Gen Intel Core i7-1280P processor",
			"16GB LPDDR5 RAM",
			"512GB PCIe NVMe SSD",
			"Premium aluminum construction",
		},
		Specifications: []Specification{
			{"Display", "13.4-inch 3.5K OLED (3456 x 2160)"},
			{"Processor", "Intel Core i7-1280P"},
			{"RAM", "16GB LPDDR5"},
			{"Storage", "512GB SSD"},
			{"Battery", "55Wh, up to 12 hours"},
			{"OS", "Windows 11 Pro"},
			{"Weight", "1.26kg"},
		},
		IsOnSale:     true,
		InStock:      true,
		StockCount:   12,
		FreeShipping: true,
		FastDelivery: true,
		Warranty:     "2 Year Warranty",
		ReturnPolicy: "30-Day Returns",
	},
	{
		ID:            4,
		Name:          "Sony WH-1000XM5 Wireless Headphones",
		Price:         485000,
		OriginalPrice: 550000,
		Image:         "/images/sony-wh1000xm5.jpg",
		Images: []string{
			"/images/sony-wh1000xm5.jpg",
			"/images/sony-wh1000xm5-2.jpg",
			"/images/sony-wh1000xm5-3.jpg",
			"/images/sony-wh1000xm5-4.jpg",
		},
		Rating:      4.7,
		Reviews:     4156,
		Category:    "Audio",
		Brand:       "Sony",
		Description: "Industry-leading noise canceling headphones with exceptional sound quality, all-day comfort, and crystal-clear call quality.",
		Features: []string{
			"Industry-leading noise canceling technology",
			"30-hour battery life with quick charge",
			"Speak-to-Chat technology",
			"Multipoint Bluetooth connection",
			"360 Reality Audio support",
		},
		Specifications: []Specification{
			{"Driver", "30mm dynamic drivers"},
			{"Frequency Response", "4Hz - 40kHz"},
			{"Battery Life", "30 hours (ANC on)"},
			{"Charging", "USB-C, 3 min = 3 hours playback"},
			{"Connectivity", "Bluetooth 5.2, NFC"},
			{"Weight", "250g"},
		},
		IsOnSale:     true,
		Badge:        "Best Seller",
		InStock:      true,
		StockCount:   25,
		IsTrending:   true,
		FreeShipping: true,
		Warranty:     "2 Year Warranty",
		ReturnPolicy: "30-Day Returns",
	},
	{
		ID:            5,
		Name:          "iPad Pro 12.9-inch M2 256GB",
		Price:         1450000,
		OriginalPrice: 1650000,
		Image:         "/images/ipad-pro-129.jpg",
		Images: []string{
			"/images/ipad-pro-129.jpg",
			"/images/ipad-pro-129-2.jpg",
			"/images/ipad-pro-129-3.jpg",
			"/images/ipad-pro-129-4.jpg",
		},
		Rating:      4.8,
		Reviews:     2341,
		Category:    "Tablets",
		Brand:       "Apple",
		Description: "The ultimate iPad experience with M2 chip performance, stunning Liquid Retina XDR display, and all-day battery life.",
		Features: []string{
			"12.9-inch Liquid Retina XDR display",
			"M2 chip with 8-core CPU and 10-core GPU",
			"Apple Pencil (2nd generation) support",
			"Magic Keyboard compatibility",
			"All-day battery life",
		},
		Specifications: []Specification{
			{"Display", "12.9-inch Liquid Retina XDR"},
			{"Processor", "Apple M2 chip"},
			{"RAM", "8GB"},
			{"Storage", "256GB"},
			{"Battery", "Up to 10 hours"},
			{"OS", "iPadOS 17"},
			{"Weight", "682g"},
		},
		IsOnSale:     true,
		InStock:      true,
		StockCount:   18,
		IsNew:        true,
		FreeShipping: true,
		FastDelivery: true,
		Warranty:     "1 Year Warranty",
		ReturnPolicy: "14-Day Returns",
	},
	{
		ID:            6,
		Name:          "Apple Watch Series 9 GPS 45mm",
		Price:         650000,
		OriginalPrice: 720000,
		Image:         "/images/apple-watch-s9.jpg",
		Images: []string{
			"/images/apple-watch-s9.jpg",
			"/images/apple-watch-s9-2.jpg",
			"/images/apple-watch-s9-3.jpg",
			"/images/apple-watch-s9-4.jpg",
		},
		Rating:      4.6,
		Reviews:     1876,
		Category:    "Wearables",
		Brand:       "Apple",
		Description: "The most advanced Apple Watch yet with S9 chip, Double Tap gesture, and comprehensive health monitoring capabilities.",
		Features: []string{
			"S9 SiP with 4-core Neural Engine",
			"Double Tap gesture control",
			"Always-On Retina display",
			"Blood Oxygen and ECG monitoring",
			"Water resistant to 50 meters",
		},
		Specifications: []Specification{
			{"Display", "45mm Always-On Retina LTPO OLED"},
			{"Processor", "S9 SiP with Neural Engine"},
			{"Storage", "64GB"},
			{"Battery", "Up to 18 hours"},
			{"OS", "watchOS 10"},
			{"Water Resistance", "50 meters"},
		},
		IsOnSale:     true,
		Badge:        "Health Focus",
		InStock:      true,
		StockCount:   22,
		IsNew:        true,
		FreeShipping: true,
		Warranty:     "1 Year Warranty",
		ReturnPolicy: "14-Day Returns",
	},
	{
		ID:            7,
		Name:          "PlayStation 5 Spider-Man 2 Bundle",
		Price:         950000,
		OriginalPrice: 1100000,
		Image:         "/images/ps5-spiderman2.jpg",
		Images: []string{
			"/images/ps5-spiderman2.jpg",
			"/images/ps5-spiderman2-2.jpg",
			"/images/ps5-spiderman2-3.jpg",
			"/images/ps5-spiderman2-4.jpg",
		},
		Rating:      4.9,
		Reviews:     3247,
		Category:    "Gaming",
		Brand:       "Sony",
		Description: "Next-generation gaming console with lightning-fast SSD, ray tracing, and 3D audio. Includes Marvel's Spider-Man 2 game.",
		Features: []string{
			"Custom AMD Zen 2 CPU and RDNA 2 GPU",
			"Ultra-high speed SSD with 825GB storage",
			"Ray tracing and 4K gaming support",
			"DualSense wireless controller included",
			"Marvel's Spider-Man 2 game included",
		},
		Specifications: []Specification{
			{"CPU", "AMD Zen 2, 8 cores at 3.5GHz"},
			{"GPU", "AMD RDNA 2, 10.28 TFLOPs"},
			{"RAM", "16GB GDDR6"},
			{"Storage", "825GB Custom SSD"},
			{"Optical Drive", "4K UHD Blu-ray"},
			{"Weight", "4.5kg"},
		},
		IsOnSale:     true,
		Badge:        "Bundle Deal",
		InStock:      true,
		StockCount:   6,
		IsTrending:   true,
		FreeShipping: true,
		FastDelivery: true,
		Warranty:     "1 Year Warranty",
		ReturnPolicy: "30-Day Returns",
	},
	{
		ID:            8,
		Name:          "Canon EOS R6 Mark II Mirrorless Camera",
		Price:         3200000,
		OriginalPrice: 3650000,
		Image:         "/images/canon-r6-mark2.jpg",
		Images: []string{
			"/images/canon-r6-mark2.jpg",
			"/images/canon-r6-mark2-2.jpg",
			"/images/canon-r6-mark2-3.jpg",
			"/images/canon-r6-mark2-4.jpg",
		},
		Rating:      4.7,
		Reviews:     892,
		Category:    "Cameras",
		Brand:       "Canon",
		Description: "Professional full-frame mirrorless camera with 24.2MP sensor, advanced autofocus, and exceptional low-light performance.",
		Features: []string{
			"24.2MP full-frame CMOS sensor",
			"DIGIC X image processor",
			"In-body 5-axis image stabilization",
			"4K 60p video recording",
			"Weather-sealed magnesium alloy body",
		},
		Specifications: []Specification{
			{"Sensor", "24.2MP Full-Frame CMOS"},
			{"Processor", "DIGIC X"},
			{"ISO Range", "100-102,400 (expandable)"},
			{"Video", "4K 60p, Full HD 180p"},
			{"Storage", "Dual SD card slots"},
			{"Weight", "588g (body only)"},
		},
		IsOnSale:     true,
		Badge:        "Professional",
		InStock:      true,
		StockCount:   4,
		FreeShipping: true,
		Warranty:     "2 Year Warranty",
		ReturnPolicy: "30-Day Returns",
	},
}
