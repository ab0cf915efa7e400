// Package data holds the built-in Guadeloupe site catalog used to seed
// an empty database.
package data

import "github.com/discoverguadeloupe/backend/internal/domain/entities"

// DefaultSites returns the built-in catalog. Callers get fresh copies
// and may mutate them freely.
func DefaultSites() []*entities.Site {
	return []*entities.Site{
		{
			ID:          "la-soufriere",
			Name:        "La Soufrière Volcano",
			Description: "Active volcano and highest peak in the Lesser Antilles at 1,467m. Challenging hike through tropical rainforest with stunning crater views and sulfur vents.",
			Image:       "https://www.vert-intense.com/wp-content/uploads/2023/08/soufriere_guadeloupe001-e1700262658112.jpg",
			Duration:    "4-6 hours",
			CrowdLevel:  entities.CrowdLevelMedium,
			Rating:      4.9,
			Popularity:  entities.PopularityMustSee,
			Category:    "Nature",
			Coordinates: entities.Coordinates{Lat: 16.0447, Lng: -61.6647},
		},
		{
			ID:          "pointe-des-chateaux",
			Name:        "Pointe des Châteaux",
			Description: "Dramatic rocky peninsula where the Atlantic Ocean meets the Caribbean Sea. Features stunning coastal views, a cross monument, and pristine beaches.",
			Image:       "https://karibbeancars.fr/wp-content/uploads/2019/02/80635600.jpg",
			Duration:    "2-3 hours",
			CrowdLevel:  entities.CrowdLevelHigh,
			Rating:      4.8,
			Popularity:  entities.PopularityMustSee,
			Category:    "Landmark",
			Coordinates: entities.Coordinates{Lat: 16.2450, Lng: -61.1700},
		},
		{
			ID:          "carbet-falls",
			Name:        "Carbet Falls",
			Description: "Three spectacular waterfalls cascading through lush rainforest in the Basse-Terre National Park. The second fall (110m) is the most accessible.",
			Image:       "https://dynamic-media-cdn.tripadvisor.com/media/photo-o/09/c0/50/36/carbet-falls-chutes-de.jpg?w=1200&h=-1&s=1",
			Duration:    "2-3 hours",
			CrowdLevel:  entities.CrowdLevelMedium,
			Rating:      4.7,
			Popularity:  entities.PopularityMustSee,
			Category:    "Nature",
			Coordinates: entities.Coordinates{Lat: 16.0167, Lng: -61.7000},
		},
		{
			ID:          "memorial-acte",
			Name:        "Memorial ACTe",
			Description: "World-class museum dedicated to the history and memory of slavery and the slave trade. Housed in a striking modern building in Pointe-à-Pitre.",
			Image:       "https://memoire-esclavage.org/sites/default/files/styles/large/public/2021-06/memorial-acte-vacance-guadeloupe.jpeg?itok=k88SyUHR",
			Duration:    "2-3 hours",
			CrowdLevel:  entities.CrowdLevelLow,
			Rating:      4.8,
			Popularity:  entities.PopularityPopular,
			Category:    "Museum",
			Coordinates: entities.Coordinates{Lat: 16.2400, Lng: -61.5350},
		},
		{
			ID:          "grande-anse-beach",
			Name:        "Grande Anse Beach",
			Description: "Long golden sand beach on Basse-Terre with calm waters, palm trees, and local food vendors. Perfect for swimming and relaxation.",
			Image:       "https://www.lodge-coco.com/wp-content/uploads/2020/05/Plage-Grande-Anse-Deshaies-Guadeloupe-1000.jpg",
			Duration:    "2-4 hours",
			CrowdLevel:  entities.CrowdLevelMedium,
			Rating:      4.7,
			Popularity:  entities.PopularityPopular,
			Category:    "Beach",
			Coordinates: entities.Coordinates{Lat: 16.3000, Lng: -61.7900},
		},
		{
			ID:          "cousteau-reserve",
			Name:        "Jacques Cousteau Reserve",
			Description: "Protected marine park around Pigeon Island with coral reefs, sea turtles, and tropical fish. Premier snorkeling and diving destination.",
			Image:       "https://www.rentiles.fr/client/cache/_webp/contenu/615_461_1527770137_80_615_461____1__image-principale_1140.webp",
			Duration:    "3-4 hours",
			CrowdLevel:  entities.CrowdLevelMedium,
			Rating:      4.9,
			Popularity:  entities.PopularityMustSee,
			Category:    "Experience",
			Coordinates: entities.Coordinates{Lat: 16.1667, Lng: -61.7833},
		},
		{
			ID:          "les-saintes",
			Name:        "Les Saintes Archipelago",
			Description: "Charming island group with Fort Napoleon, Pain de Sucre beach, and colorful villages. Day trip by ferry from Trois-Rivières.",
			Image:       "https://www.lesilesdeguadeloupe.com/app/uploads/2025/02/guadeloupe-19797-aurelien-brusini-1.webp",
			Duration:    "6-8 hours",
			CrowdLevel:  entities.CrowdLevelMedium,
			Rating:      4.8,
			Popularity:  entities.PopularityPopular,
			Category:    "Experience",
			Coordinates: entities.Coordinates{Lat: 15.8667, Lng: -61.5833},
		},
		{
			ID:          "pointe-noire",
			Name:        "Pointe-Noire",
			Description: "Picturesque coastal village known for wood crafts, vanilla plantations, and beautiful black sand beaches. Gateway to the rainforest.",
			Image:       "https://www.lesilesdeguadeloupe.com/app/uploads/2025/07/pointenoire-plage-petiteanse-5-min.webp",
			Duration:    "2-3 hours",
			CrowdLevel:  entities.CrowdLevelLow,
			Rating:      4.5,
			Popularity:  entities.PopularityHiddenGem,
			Category:    "Village",
			Coordinates: entities.Coordinates{Lat: 16.2067, Lng: -61.7800},
		},
		{
			ID:          "distillery-damoiseau",
			Name:        "Damoiseau Distillery",
			Description: "Working rum distillery offering tours and tastings. Learn about traditional rhum agricole production on Grande-Terre.",
			Image:       "https://www.france-voyage.com/visuals/photos/distillerie-damoiseau-29162_w600.webp",
			Duration:    "1-2 hours",
			CrowdLevel:  entities.CrowdLevelLow,
			Rating:      4.6,
			Popularity:  entities.PopularityPopular,
			Category:    "Experience",
			Coordinates: entities.Coordinates{Lat: 16.3300, Lng: -61.4300},
		},
		{
			ID:          "la-desirade",
			Name:        "La Désirade Island",
			Description: "Remote, peaceful island with unspoiled beaches, hiking trails, and traditional Creole culture. Accessible by ferry from Saint-François.",
			Image:       "https://i0.wp.com/guadeloupe-destination.com/wp-content/uploads/2019/11/desirade-01.jpg?fit=1029%2C684&ssl=1",
			Duration:    "6-8 hours",
			CrowdLevel:  entities.CrowdLevelLow,
			Rating:      4.6,
			Popularity:  entities.PopularityHiddenGem,
			Category:    "Island",
			Coordinates: entities.Coordinates{Lat: 16.3167, Lng: -61.0167},
		},
		{
			ID:          "jardin-botanique",
			Name:        "Botanical Garden of Deshaies",
			Description: "Stunning 7-hectare tropical garden with exotic plants, waterfalls, and colorful birds. Former property of French singer Coluche.",
			Image:       "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcSdg4EVczDniAnCEggQAA6jXG0VYcoK1mptPg&s",
			Duration:    "1.5-2 hours",
			CrowdLevel:  entities.CrowdLevelLow,
			Rating:      4.7,
			Popularity:  entities.PopularityPopular,
			Category:    "Garden",
			Coordinates: entities.Coordinates{Lat: 16.3100, Lng: -61.7950},
		},
		{
			ID:          "port-louis",
			Name:        "Port-Louis Beach",
			Description: "Beautiful beach with golden sand and turquoise waters on Grande-Terre's north coast. Popular for swimming and local cuisine.",
			Image:       "https://encrypted-tbn0.gstatic.com/images?q=tbn:ANd9GcR6VDKbMGFE9jjhO7WOt6CL19GTykh983lT4g&s",
			Duration:    "2-3 hours",
			CrowdLevel:  entities.CrowdLevelMedium,
			Rating:      4.5,
			Popularity:  entities.PopularityPopular,
			Category:    "Beach",
			Coordinates: entities.Coordinates{Lat: 16.4300, Lng: -61.5300},
		},
	}
}
