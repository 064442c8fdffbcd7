package dataset

import "rental-optimizer/domain"

// Sample market data for four European cities. Yields are average gross
// rental yields in percent, prices are EUR per square meter.
var sampleCities = []domain.City{
	{
		Name:       "Lisbon",
		Country:    "Portugal",
		CenterLat:  38.7169,
		CenterLon:  -9.139,
		Zoom:       11,
		Regulation: "AL license required for short-term rentals",
		Neighborhoods: []domain.Neighborhood{
			{Name: "Alfama", Lat: 38.7112, Lon: -9.1304, AvgYieldPct: 5.2, AvgPriceSqm: 4500},
			{Name: "Graça", Lat: 38.7203, Lon: -9.1324, AvgYieldPct: 6.1, AvgPriceSqm: 3800},
			{Name: "Baixa", Lat: 38.7101, Lon: -9.1393, AvgYieldPct: 4.8, AvgPriceSqm: 6200},
			{Name: "Chiado", Lat: 38.7084, Lon: -9.1414, AvgYieldPct: 5.6, AvgPriceSqm: 5800},
			{Name: "Parque das Nações", Lat: 38.7687, Lon: -9.0934, AvgYieldPct: 7.3, AvgPriceSqm: 3200},
			{Name: "Cascais", Lat: 38.6966, Lon: -9.4226, AvgYieldPct: 4.2, AvgPriceSqm: 7500},
			{Name: "Sintra", Lat: 38.7995, Lon: -9.3773, AvgYieldPct: 3.8, AvgPriceSqm: 2900},
			{Name: "Belém", Lat: 38.6979, Lon: -9.2028, AvgYieldPct: 5.9, AvgPriceSqm: 4800},
			{Name: "Santos", Lat: 38.7058, Lon: -9.1528, AvgYieldPct: 6.4, AvgPriceSqm: 5200},
			{Name: "Príncipe Real", Lat: 38.7155, Lon: -9.1463, AvgYieldPct: 5.1, AvgPriceSqm: 6800},
			{Name: "Campo de Ourique", Lat: 38.7217, Lon: -9.1663, AvgYieldPct: 5.7, AvgPriceSqm: 4200},
			{Name: "Estrela", Lat: 38.7094, Lon: -9.1604, AvgYieldPct: 4.9, AvgPriceSqm: 5500},
			{Name: "Lapa", Lat: 38.7064, Lon: -9.1683, AvgYieldPct: 4.5, AvgPriceSqm: 7200},
			{Name: "Avenidas Novas", Lat: 38.7436, Lon: -9.1476, AvgYieldPct: 6.8, AvgPriceSqm: 3600},
			{Name: "Benfica", Lat: 38.7499, Lon: -9.2170, AvgYieldPct: 7.1, AvgPriceSqm: 2800},
		},
	},
	{
		Name:       "Madrid",
		Country:    "Spain",
		CenterLat:  40.4168,
		CenterLon:  -3.7038,
		Zoom:       11,
		Regulation: "Registration required, max 90 days/year in some areas",
		Neighborhoods: []domain.Neighborhood{
			{Name: "Malasaña", Lat: 40.4267, Lon: -3.7012, AvgYieldPct: 6.8, AvgPriceSqm: 3800},
			{Name: "Chueca", Lat: 40.4235, Lon: -3.6958, AvgYieldPct: 7.2, AvgPriceSqm: 4200},
			{Name: "La Latina", Lat: 40.4139, Lon: -3.7081, AvgYieldPct: 6.1, AvgPriceSqm: 3200},
			{Name: "Sol", Lat: 40.4165, Lon: -3.7026, AvgYieldPct: 5.4, AvgPriceSqm: 5500},
			{Name: "Retiro", Lat: 40.4130, Lon: -3.6844, AvgYieldPct: 5.9, AvgPriceSqm: 4800},
			{Name: "Salamanca", Lat: 40.4318, Lon: -3.6823, AvgYieldPct: 4.8, AvgPriceSqm: 6800},
			{Name: "Chamberí", Lat: 40.4378, Lon: -3.7033, AvgYieldPct: 6.3, AvgPriceSqm: 4500},
			{Name: "Lavapiés", Lat: 40.4088, Lon: -3.7004, AvgYieldPct: 7.5, AvgPriceSqm: 2900},
			{Name: "Moncloa", Lat: 40.4351, Lon: -3.7180, AvgYieldPct: 5.7, AvgPriceSqm: 4000},
			{Name: "Argüelles", Lat: 40.4274, Lon: -3.7181, AvgYieldPct: 6.0, AvgPriceSqm: 3900},
			{Name: "Conde Duque", Lat: 40.4289, Lon: -3.7113, AvgYieldPct: 6.4, AvgPriceSqm: 4100},
			{Name: "Justicia", Lat: 40.4210, Lon: -3.6976, AvgYieldPct: 6.9, AvgPriceSqm: 4300},
			{Name: "Cortes", Lat: 40.4145, Lon: -3.7003, AvgYieldPct: 5.8, AvgPriceSqm: 4600},
			{Name: "Universidad", Lat: 40.4198, Lon: -3.7081, AvgYieldPct: 6.2, AvgPriceSqm: 3700},
			{Name: "Embajadores", Lat: 40.4067, Lon: -3.7035, AvgYieldPct: 7.3, AvgPriceSqm: 2800},
		},
	},
	{
		Name:       "Paris",
		Country:    "France",
		CenterLat:  48.8566,
		CenterLon:  2.3522,
		Zoom:       11,
		Regulation: "Primary residence rule, 120 days/year limit",
		Neighborhoods: []domain.Neighborhood{
			{Name: "Le Marais", Lat: 48.8566, Lon: 2.3522, AvgYieldPct: 4.2, AvgPriceSqm: 9800},
			{Name: "Saint-Germain", Lat: 48.8540, Lon: 2.3347, AvgYieldPct: 3.8, AvgPriceSqm: 11200},
			{Name: "Montmartre", Lat: 48.8867, Lon: 2.3431, AvgYieldPct: 5.1, AvgPriceSqm: 7800},
			{Name: "Bastille", Lat: 48.8532, Lon: 2.3695, AvgYieldPct: 4.9, AvgPriceSqm: 8200},
			{Name: "République", Lat: 48.8676, Lon: 2.3637, AvgYieldPct: 5.3, AvgPriceSqm: 7500},
			{Name: "Belleville", Lat: 48.8720, Lon: 2.3808, AvgYieldPct: 6.2, AvgPriceSqm: 6800},
			{Name: "Oberkampf", Lat: 48.8665, Lon: 2.3712, AvgYieldPct: 5.8, AvgPriceSqm: 7200},
			{Name: "Canal Saint-Martin", Lat: 48.8708, Lon: 2.3658, AvgYieldPct: 5.5, AvgPriceSqm: 7600},
			{Name: "Pigalle", Lat: 48.8823, Lon: 2.3370, AvgYieldPct: 4.7, AvgPriceSqm: 8500},
			{Name: "Châtelet", Lat: 48.8584, Lon: 2.3470, AvgYieldPct: 3.9, AvgPriceSqm: 10500},
			{Name: "Latin Quarter", Lat: 48.8503, Lon: 2.3447, AvgYieldPct: 4.1, AvgPriceSqm: 9200},
			{Name: "Trocadéro", Lat: 48.8635, Lon: 2.2851, AvgYieldPct: 3.2, AvgPriceSqm: 12800},
			{Name: "Opéra", Lat: 48.8708, Lon: 2.3322, AvgYieldPct: 3.6, AvgPriceSqm: 10900},
			{Name: "Louvre", Lat: 48.8606, Lon: 2.3376, AvgYieldPct: 3.4, AvgPriceSqm: 11800},
			{Name: "Nation", Lat: 48.8473, Lon: 2.3964, AvgYieldPct: 5.7, AvgPriceSqm: 6900},
		},
	},
	{
		Name:       "Berlin",
		Country:    "Germany",
		CenterLat:  52.5200,
		CenterLon:  13.4050,
		Zoom:       11,
		Regulation: "Zweckentfremdungsverbot - strict regulations apply",
		Neighborhoods: []domain.Neighborhood{
			{Name: "Mitte", Lat: 52.5200, Lon: 13.4050, AvgYieldPct: 5.8, AvgPriceSqm: 4800},
			{Name: "Prenzlauer Berg", Lat: 52.5403, Lon: 13.4104, AvgYieldPct: 6.4, AvgPriceSqm: 4200},
			{Name: "Kreuzberg", Lat: 52.4987, Lon: 13.4034, AvgYieldPct: 7.1, AvgPriceSqm: 3600},
			{Name: "Friedrichshain", Lat: 52.5095, Lon: 13.4531, AvgYieldPct: 6.9, AvgPriceSqm: 3800},
			{Name: "Charlottenburg", Lat: 52.5045, Lon: 13.3096, AvgYieldPct: 5.2, AvgPriceSqm: 5200},
			{Name: "Neukölln", Lat: 52.4814, Lon: 13.4370, AvgYieldPct: 7.8, AvgPriceSqm: 3200},
			{Name: "Schöneberg", Lat: 52.4862, Lon: 13.3500, AvgYieldPct: 6.2, AvgPriceSqm: 4000},
			{Name: "Wedding", Lat: 52.5504, Lon: 13.3669, AvgYieldPct: 7.5, AvgPriceSqm: 2900},
			{Name: "Moabit", Lat: 52.5194, Lon: 13.3441, AvgYieldPct: 6.7, AvgPriceSqm: 3700},
			{Name: "Tempelhof", Lat: 52.4730, Lon: 13.3846, AvgYieldPct: 6.0, AvgPriceSqm: 3900},
			{Name: "Wilmersdorf", Lat: 52.4864, Lon: 13.3089, AvgYieldPct: 5.6, AvgPriceSqm: 4600},
			{Name: "Steglitz", Lat: 52.4569, Lon: 13.3171, AvgYieldPct: 5.9, AvgPriceSqm: 4100},
			{Name: "Zehlendorf", Lat: 52.4333, Lon: 13.2619, AvgYieldPct: 4.8, AvgPriceSqm: 5800},
			{Name: "Spandau", Lat: 52.5370, Lon: 13.1956, AvgYieldPct: 6.3, AvgPriceSqm: 3300},
			{Name: "Reinickendorf", Lat: 52.5755, Lon: 13.3249, AvgYieldPct: 6.8, AvgPriceSqm: 3400},
		},
	},
}
