package shared

import "bitespot/internal/domain"

func coords(lat, lon float64) *domain.Coords { return &domain.Coords{Lat: lat, Lon: lon} }

// SeedRestaurants is the starter catalog loaded by cmd/seeder.
var SeedRestaurants = []domain.Restaurant{
	{
		ID:               1,
		Name:             "Annapoorna Gowrishankar",
		Cuisine:          []string{"South Indian"},
		PriceRange:       domain.PriceBudget,
		Location:         "RS Puram",
		Area:             "RS Puram",
		Coords:           coords(11.0055, 76.9539),
		SpecialtyDishes:  []string{"Ghee Roast Dosa", "Sambar Idli", "Filter Coffee"},
		Ambiance:         "Bustling traditional vegetarian hall",
		Description:      "A Coimbatore institution serving crisp dosas, fluffy idlis and legendary sambar since 1968. Quick service and unbeatable filter coffee keep the queues long at breakfast.",
		Rating:           4.5,
		ReviewCount:      2310,
		OpeningHours:     "6:00 AM - 10:30 PM",
		Tags:             []string{"comfort-food"},
		MealTimes:        []domain.MealTime{domain.Breakfast, domain.Lunch, domain.Snacks, domain.Dinner},
		Vibes:            []string{"family-friendly"},
		TasteTags:        []string{"savory", "mild"},
		FeatureTags:      []string{"ac", "takeaway", "parking"},
		DietaryTags:      []string{"vegetarian"},
		WeatherTags:      []string{"chai", "hot-beverages", "comfort-food"},
		Ingredients:      []string{"rice", "lentils", "ghee", "dairy"},
		Allergens:        []string{"dairy", "gluten"},
		AllergenFriendly: []string{"nut-free options"},
	},
	{
		ID:               2,
		Name:             "That's Y On The Go",
		Cuisine:          []string{"Italian", "Continental"},
		PriceRange:       domain.PriceModerate,
		Location:         "Race Course",
		Area:             "Race Course",
		Coords:           coords(11.0003, 76.9702),
		SpecialtyDishes:  []string{"Wood-Fired Margherita", "Alfredo Pasta", "Tiramisu"},
		Ambiance:         "Cozy candle-lit bistro",
		Description:      "Wood-fired pizzas with blistered crusts and molten cheese, hand-rolled pastas and an indulgent dessert counter. The dim lighting and corner tables make it a favourite date spot.",
		Rating:           4.2,
		ReviewCount:      980,
		OpeningHours:     "12:00 PM - 11:00 PM",
		Tags:             []string{"romantic"},
		MealTimes:        []domain.MealTime{domain.Lunch, domain.Dinner, domain.LateNight},
		Vibes:            []string{"romantic"},
		TasteTags:        []string{"creamy", "rich"},
		FeatureTags:      []string{"ac", "wifi", "bar"},
		DietaryTags:      []string{"vegetarian", "non-veg"},
		WeatherTags:      []string{"comfort-food"},
		Ingredients:      []string{"wheat", "cheese", "dairy", "tomato"},
		Allergens:        []string{"dairy", "gluten"},
		AllergenFriendly: []string{"vegan cheese available"},
	},
	{
		ID:               3,
		Name:             "Haribhavanam",
		Cuisine:          []string{"South Indian", "Chettinad"},
		PriceRange:       domain.PriceModerate,
		Location:         "Gandhipuram",
		Area:             "Gandhipuram",
		Coords:           coords(11.0183, 76.9674),
		SpecialtyDishes:  []string{"Chicken Chettinad", "Mutton Biryani", "Parotta"},
		Ambiance:         "Lively family dining",
		Description:      "Fiery Chettinad gravies, flaky parottas and a seeraga samba biryani with serious pepper heat. Weekend lunches are packed with large family tables.",
		Rating:           4.4,
		ReviewCount:      1675,
		OpeningHours:     "11:00 AM - 11:30 PM",
		Tags:             []string{"comfort-food"},
		MealTimes:        []domain.MealTime{domain.Lunch, domain.Dinner},
		Vibes:            []string{"family-friendly", "group-hangout"},
		TasteTags:        []string{"spicy", "savory"},
		FeatureTags:      []string{"ac", "parking", "takeaway"},
		DietaryTags:      []string{"non-veg"},
		WeatherTags:      []string{"hot-meals", "warm-food"},
		Ingredients:      []string{"chicken", "mutton", "rice", "spices"},
		Allergens:        []string{"gluten"},
		AllergenFriendly: []string{"dairy-free gravies"},
	},
	{
		ID:               4,
		Name:             "Cascade Chinese Kitchen",
		Cuisine:          []string{"Chinese", "Asian"},
		PriceRange:       domain.PriceModerate,
		Location:         "Peelamedu",
		Area:             "Peelamedu",
		Coords:           coords(11.0260, 77.0060),
		SpecialtyDishes:  []string{"Hot & Sour Soup", "Dragon Chicken", "Hakka Noodles"},
		Ambiance:         "Modern pan-Asian diner",
		Description:      "Wok-tossed noodles, steaming soup bowls and indo-chinese classics with generous portions. The hot and sour soup is the monsoon favourite.",
		Rating:           4.1,
		ReviewCount:      742,
		OpeningHours:     "12:00 PM - 10:30 PM",
		MealTimes:        []domain.MealTime{domain.Lunch, domain.Dinner},
		Vibes:            []string{"group-hangout"},
		TasteTags:        []string{"spicy", "tangy"},
		FeatureTags:      []string{"ac", "delivery"},
		DietaryTags:      []string{"non-veg", "vegetarian"},
		WeatherTags:      []string{"hot-soup", "soups", "warm-food"},
		Ingredients:      []string{"noodles", "chicken", "soy", "egg"},
		Allergens:        []string{"soy", "eggs", "gluten"},
		AllergenFriendly: []string{},
	},
	{
		ID:               5,
		Name:             "Brooklyn Burger Co",
		Cuisine:          []string{"American", "Fast Food"},
		PriceRange:       domain.PriceBudget,
		Location:         "Saibaba Colony",
		Area:             "Saibaba Colony",
		Coords:           coords(11.0240, 76.9440),
		SpecialtyDishes:  []string{"Smash Burger", "Loaded Fries", "Oreo Shake"},
		Ambiance:         "Casual grab-and-go joint",
		Description:      "Double-smashed patties with crispy edges, gooey cheese pulls and thick shakes. Cheap, fast and open late for post-movie cravings.",
		Rating:           4.0,
		ReviewCount:      530,
		OpeningHours:     "11:00 AM - 1:00 AM",
		MealTimes:        []domain.MealTime{domain.Lunch, domain.Snacks, domain.Dinner, domain.LateNight},
		Vibes:            []string{"fun-cafe", "group-hangout"},
		TasteTags:        []string{"savory", "crispy"},
		FeatureTags:      []string{"takeaway", "delivery", "wifi"},
		DietaryTags:      []string{"non-veg"},
		WeatherTags:      []string{"comfort-food"},
		Ingredients:      []string{"beef", "wheat", "cheese", "dairy"},
		Allergens:        []string{"dairy", "gluten"},
		AllergenFriendly: []string{},
	},
	{
		ID:               6,
		Name:             "Zaitoon Grill House",
		Cuisine:          []string{"North Indian", "Mughlai"},
		PriceRange:       domain.PricePremium,
		Location:         "Avinashi Road",
		Area:             "Avinashi Road",
		Coords:           coords(11.0310, 77.0390),
		SpecialtyDishes:  []string{"Tandoori Platter", "Butter Chicken", "Hyderabadi Biryani"},
		Ambiance:         "Plush dining with live ghazals",
		Description:      "Charcoal-smoked kebabs, silky butter chicken and dum biryani served under chandeliers. Live music on weekends and a well-stocked bar make it the celebration default.",
		Rating:           4.6,
		ReviewCount:      1980,
		OpeningHours:     "12:00 PM - 11:30 PM",
		Tags:             []string{"romantic"},
		MealTimes:        []domain.MealTime{domain.Lunch, domain.Dinner},
		Vibes:            []string{"romantic", "family-friendly"},
		TasteTags:        []string{"smoky", "rich"},
		FeatureTags:      []string{"ac", "bar", "live-music", "parking"},
		DietaryTags:      []string{"non-veg"},
		WeatherTags:      []string{"hot-meals", "warm-food"},
		Ingredients:      []string{"chicken", "mutton", "dairy", "nuts", "rice"},
		Allergens:        []string{"dairy", "nuts"},
		AllergenFriendly: []string{"gluten-free tandoori"},
	},
	{
		ID:               7,
		Name:             "Green Bowl Cafe",
		Cuisine:          []string{"Continental", "Health Food"},
		PriceRange:       domain.PriceModerate,
		Location:         "Vadavalli",
		Area:             "Vadavalli",
		Coords:           coords(11.0260, 76.9030),
		SpecialtyDishes:  []string{"Quinoa Buddha Bowl", "Avocado Toast", "Cold-Pressed Juice"},
		Ambiance:         "Sunlit garden cafe",
		Description:      "Salads, grain bowls and smoothies built around local organic produce. Outdoor seating under mango trees, strong wifi and quiet corners for laptop mornings.",
		Rating:           4.3,
		ReviewCount:      415,
		OpeningHours:     "8:00 AM - 9:00 PM",
		MealTimes:        []domain.MealTime{domain.Breakfast, domain.Lunch, domain.Snacks},
		Vibes:            []string{"quiet-study"},
		TasteTags:        []string{"mild", "flavorful"},
		FeatureTags:      []string{"outdoor-seating", "wifi", "pet-friendly"},
		DietaryTags:      []string{"vegetarian", "vegan", "healthy", "gluten-free"},
		WeatherTags:      []string{"juices", "refreshing"},
		Ingredients:      []string{"quinoa", "avocado", "vegetables", "fruit"},
		Allergens:        []string{},
		AllergenFriendly: []string{"nut-free", "dairy-free", "gluten-free"},
	},
	{
		ID:               8,
		Name:             "Sree Ananda Bhavan Chaat Corner",
		Cuisine:          []string{"North Indian", "Street Food"},
		PriceRange:       domain.PriceBudget,
		Location:         "Town Hall",
		Area:             "Town Hall",
		Coords:           coords(10.9950, 76.9610),
		SpecialtyDishes:  []string{"Onion Pakoras", "Masala Chai", "Pani Puri"},
		Ambiance:         "Street-side evening stall",
		Description:      "Crispy pakoras straight out of the kadai, cutting chai and tangy chaat. The go-to spot when it drizzles and the whole street smells of fried batter.",
		Rating:           4.4,
		ReviewCount:      890,
		OpeningHours:     "3:00 PM - 10:00 PM",
		Tags:             []string{"comfort-food"},
		MealTimes:        []domain.MealTime{domain.Snacks, domain.Dinner},
		Vibes:            []string{"fun-cafe"},
		TasteTags:        []string{"crispy", "tangy", "spicy"},
		FeatureTags:      []string{"takeaway"},
		DietaryTags:      []string{"vegetarian"},
		WeatherTags:      []string{"pakoras", "chai", "hot-beverages", "comfort-food"},
		Ingredients:      []string{"gram flour", "onion", "tea", "dairy"},
		Allergens:        []string{"dairy"},
		AllergenFriendly: []string{"gluten-free pakoras"},
	},
	{
		ID:               9,
		Name:             "Polar Bear Ice Cream Parlour",
		Cuisine:          []string{"Desserts"},
		PriceRange:       domain.PriceBudget,
		Location:         "DB Road",
		Area:             "RS Puram",
		Coords:           coords(11.0080, 76.9500),
		SpecialtyDishes:  []string{"Gadbad Sundae", "Tender Coconut Ice Cream", "Fruit Salad"},
		Ambiance:         "Retro family parlour",
		Description:      "Towering sundaes, seasonal fruit scoops and the tender coconut ice cream everyone grew up on. Summer evenings mean a line out the door.",
		Rating:           4.5,
		ReviewCount:      1240,
		OpeningHours:     "11:00 AM - 11:30 PM",
		MealTimes:        []domain.MealTime{domain.Snacks, domain.Dessert, domain.LateNight},
		Vibes:            []string{"family-friendly", "fun-cafe"},
		TasteTags:        []string{"sweet"},
		FeatureTags:      []string{"ac", "takeaway"},
		DietaryTags:      []string{"vegetarian"},
		WeatherTags:      []string{"ice-cream", "cold-desserts", "chilled"},
		Ingredients:      []string{"dairy", "sugar", "fruit", "nuts"},
		Allergens:        []string{"dairy", "nuts"},
		AllergenFriendly: []string{"sorbet options"},
	},
	{
		ID:               10,
		Name:             "Dindigul Thalappakatti",
		Cuisine:          []string{"South Indian", "Hyderabadi"},
		PriceRange:       domain.PriceModerate,
		Location:         "Cross Cut Road",
		Area:             "Gandhipuram",
		Coords:           coords(11.0160, 76.9660),
		SpecialtyDishes:  []string{"Seeraga Samba Biryani", "Chicken 65", "Mutton Chukka"},
		Ambiance:         "No-frills biryani hall",
		Description:      "The famous seeraga samba mutton biryani with its signature black pepper punch. Fast turnover, generous raita and a takeaway counter that never sleeps.",
		Rating:           4.3,
		ReviewCount:      2050,
		OpeningHours:     "11:30 AM - 11:00 PM",
		MealTimes:        []domain.MealTime{domain.Lunch, domain.Dinner, domain.LateNight},
		Vibes:            []string{"family-friendly"},
		TasteTags:        []string{"spicy", "flavorful"},
		FeatureTags:      []string{"ac", "takeaway", "delivery", "parking"},
		DietaryTags:      []string{"non-veg"},
		WeatherTags:      []string{"hot-meals"},
		Ingredients:      []string{"rice", "mutton", "chicken", "dairy", "spices"},
		Allergens:        []string{"dairy"},
		AllergenFriendly: []string{"nut-free"},
	},
}
