package mysql

const upsertRestaurantSQL = `
INSERT INTO restaurants
  (id, name, description, ambiance, location, area, lat, lon, price_range,
   rating, review_count, opening_hours, cuisine, specialty_dishes, tags,
   meal_times, vibes, taste_tags, feature_tags, dietary_tags, weather_tags,
   ingredients, allergens, allergen_friendly)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  name              = VALUES(name),
  description       = VALUES(description),
  ambiance          = VALUES(ambiance),
  location          = VALUES(location),
  area              = VALUES(area),
  lat               = VALUES(lat),
  lon               = VALUES(lon),
  price_range       = VALUES(price_range),
  rating            = VALUES(rating),
  review_count      = VALUES(review_count),
  opening_hours     = VALUES(opening_hours),
  cuisine           = VALUES(cuisine),
  specialty_dishes  = VALUES(specialty_dishes),
  tags              = VALUES(tags),
  meal_times        = VALUES(meal_times),
  vibes             = VALUES(vibes),
  taste_tags        = VALUES(taste_tags),
  feature_tags      = VALUES(feature_tags),
  dietary_tags      = VALUES(dietary_tags),
  weather_tags      = VALUES(weather_tags),
  ingredients       = VALUES(ingredients),
  allergens         = VALUES(allergens),
  allergen_friendly = VALUES(allergen_friendly),
  updated_at        = CURRENT_TIMESTAMP
`

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

// selectRestaurantsSQL is the shared SELECT; FindAll appends WHERE clauses
// for whichever predicates the filter sets.
const selectRestaurantsSQL = `
SELECT
  id, name, description, ambiance, location, area, lat, lon, price_range,
  rating, review_count, opening_hours, cuisine, specialty_dishes, tags,
  meal_times, vibes, taste_tags, feature_tags, dietary_tags, weather_tags,
  ingredients, allergens, allergen_friendly
FROM restaurants
`
