package catalog

// Fallback returns the sample catalog used whenever the generative API is
// unavailable or returns something unusable. Two items ship with zero stock
// so the out-of-stock paths are exercised out of the box.
func Fallback() []Product {
	return []Product{
		{ID: "fallback-1", Name: "Eco SoundBlaster Pro", Description: "Immersive sound, crafted with sustainable materials.", Price: 79.99, Category: "Audio", ImageURL: "https://via.placeholder.com/300x200/28A745/FFFFFF?Text=Eco+Speaker", Stock: 15},
		{ID: "fallback-2", Name: "ConnectHub Max", Description: "The ultimate smart home command center.", Price: 129.99, Category: "Smart Home", ImageURL: "https://via.placeholder.com/300x200/FFC107/000000?Text=Smart+Hub", Stock: 8},
		{ID: "fallback-3", Name: "LapPro UltraSlim X", Description: "Power and portability redefined.", Price: 999.99, Category: "Computing", ImageURL: "https://via.placeholder.com/300x200/17A2B8/FFFFFF?Text=Laptop", Stock: 5},
		{ID: "fallback-4", Name: "PixelView Monitor 27\"", Description: "Stunning 4K resolution with vibrant colors for professionals.", Price: 349.50, Category: "Computing", ImageURL: "https://via.placeholder.com/300x200/6F42C1/FFFFFF?Text=Monitor", Stock: 12},
		{ID: "fallback-5", Name: "GamerX Headset Elite", Description: "Crystal clear audio for competitive gaming, 7.1 surround.", Price: 89.99, Category: "Gaming", ImageURL: "https://via.placeholder.com/300x200/DC3545/FFFFFF?Text=Gaming+Headset", Stock: 0},
		{ID: "fallback-6", Name: "ActionCam Pro 5K", Description: "Capture life's adventures in breathtaking 5K detail.", Price: 299.00, Category: "Cameras", ImageURL: "https://via.placeholder.com/300x200/FD7E14/FFFFFF?Text=Action+Cam", Stock: 20},
		{ID: "fallback-7", Name: "FitTrack Smartband V3", Description: "Monitor your health and fitness goals with precision.", Price: 49.99, Category: "Wearables", ImageURL: "https://via.placeholder.com/300x200/E83E8C/FFFFFF?Text=Smartband", Stock: 25},
		{ID: "fallback-8", Name: "SkyDrone Explorer", Description: "Easy-to-fly drone with HD camera, perfect for beginners.", Price: 199.99, Category: "Drones", ImageURL: "https://via.placeholder.com/300x200/20C997/FFFFFF?Text=Drone", Stock: 7},
		{ID: "fallback-9", Name: "Nova Smartphone Z1", Description: "Flagship features at a budget-friendly price point.", Price: 399.00, Category: "Mobiles", ImageURL: "https://via.placeholder.com/300x200/6610F2/FFFFFF?Text=Smartphone", Stock: 18},
		{ID: "fallback-10", Name: "HomeCinema LED TV 55\"", Description: "Experience movies like never before with this 4K HDR TV.", Price: 549.99, Category: "TV & Video", ImageURL: "https://via.placeholder.com/300x200/198754/FFFFFF?Text=Smart+TV", Stock: 3},
		{ID: "fallback-11", Name: "Wireless Charging Pad", Description: "Fast and convenient charging for all your Qi-enabled devices.", Price: 29.99, Category: "Accessories", ImageURL: "https://via.placeholder.com/300x200/6C757D/FFFFFF?Text=Charger", Stock: 30},
		{ID: "fallback-12", Name: "Portable SSD 1TB", Description: "Blazing fast external storage for your files and media.", Price: 119.99, Category: "Accessories", ImageURL: "https://via.placeholder.com/300x200/343A40/FFFFFF?Text=SSD", Stock: 0},
	}
}

// DefaultCategoryImages maps known categories to their placeholder tiles on
// the category navigation screen.
var DefaultCategoryImages = map[string]string{
	"Audio":       "https://via.placeholder.com/150/007BFF/FFFFFF?Text=Audio",
	"Smart Home":  "https://via.placeholder.com/150/FFC107/000000?Text=Smart+Home",
	"Computing":   "https://via.placeholder.com/150/17A2B8/FFFFFF?Text=Computing",
	"Gaming":      "https://via.placeholder.com/150/DC3545/FFFFFF?Text=Gaming",
	"Cameras":     "https://via.placeholder.com/150/28A745/FFFFFF?Text=Cameras",
	"Wearables":   "https://via.placeholder.com/150/6F42C1/FFFFFF?Text=Wearables",
	"Drones":      "https://via.placeholder.com/150/FD7E14/FFFFFF?Text=Drones",
	"Accessories": "https://via.placeholder.com/150/6C757D/FFFFFF?Text=Accessories",
	"Mobiles":     "https://via.placeholder.com/150/E83E8C/FFFFFF?Text=Mobiles",
	"TV & Video":  "https://via.placeholder.com/150/20C997/FFFFFF?Text=TV",
	"Default":     "https://via.placeholder.com/150/CCCCCC/000000?Text=Category",
}

// CategoryImage returns the tile image for a category, falling back to the
// generic one.
func CategoryImage(name string) string {
	if url, ok := DefaultCategoryImages[name]; ok {
		return url
	}
	return DefaultCategoryImages["Default"]
}
