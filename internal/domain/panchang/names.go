package panchang

// Name tables for the five limbs plus rashi. Indices used throughout the
// service are 1-based, matching traditional numbering.

// TithiNames lists the 30 lunar days, Shukla 1-15 then Krishna 16-30.
var TithiNames = [30]string{
	"Pratipada", "Dwitiya", "Tritiya", "Chaturthi", "Panchami",
	"Shashthi", "Saptami", "Ashtami", "Navami", "Dashami",
	"Ekadashi", "Dwadashi", "Trayodashi", "Chaturdashi", "Purnima",
	"Pratipada", "Dwitiya", "Tritiya", "Chaturthi", "Panchami",
	"Shashthi", "Saptami", "Ashtami", "Navami", "Dashami",
	"Ekadashi", "Dwadashi", "Trayodashi", "Chaturdashi", "Amavasya",
}

// NakshatraNames lists the 27 lunar mansions starting at Ashwini.
var NakshatraNames = [27]string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira",
	"Ardra", "Punarvasu", "Pushya", "Ashlesha", "Magha",
	"Purva Phalguni", "Uttara Phalguni", "Hasta", "Chitra", "Swati",
	"Vishakha", "Anuradha", "Jyeshtha", "Mula", "Purva Ashadha",
	"Uttara Ashadha", "Shravana", "Dhanishta", "Shatabhisha",
	"Purva Bhadrapada", "Uttara Bhadrapada", "Revati",
}

// YogaNames lists the 27 yogas starting at Vishkambha.
var YogaNames = [27]string{
	"Vishkambha", "Priti", "Ayushman", "Saubhagya", "Shobhana",
	"Atiganda", "Sukarma", "Dhriti", "Shula", "Ganda",
	"Vriddhi", "Dhruva", "Vyaghata", "Harshana", "Vajra",
	"Siddhi", "Vyatipata", "Variyan", "Parigha", "Shiva",
	"Siddha", "Sadhya", "Shubha", "Shukla", "Brahma",
	"Indra", "Vaidhriti",
}

// KaranaNames lists the 7 repeating karanas followed by the 4 fixed ones.
var KaranaNames = [11]string{
	"Bava", "Balava", "Kaulava", "Taitila", "Garaja",
	"Vanija", "Vishti", "Shakuni", "Chatushpada", "Nagava", "Kimstughna",
}

// VaaraNames maps time.Weekday order (Sunday first) to vaara names.
var VaaraNames = [7]string{
	"Ravivara", "Somavara", "Mangalavara", "Budhavara",
	"Guruvara", "Shukravara", "Shanivara",
}

// RashiNames lists the 12 zodiacal signs starting at Mesha.
var RashiNames = [12]string{
	"Mesha", "Vrishabha", "Mithuna", "Karka", "Simha", "Kanya",
	"Tula", "Vrishchika", "Dhanu", "Makara", "Kumbha", "Meena",
}

// NakshatraIndexByName resolves a nakshatra name to its 1-based index.
// Returns 0 when the name is unknown.
func NakshatraIndexByName(name string) int {
	for i, n := range NakshatraNames {
		if n == name {
			return i + 1
		}
	}
	return 0
}

// RashiIndexByName resolves a rashi name to its 1-based index.
// Returns 0 when the name is unknown.
func RashiIndexByName(name string) int {
	for i, n := range RashiNames {
		if n == name {
			return i + 1
		}
	}
	return 0
}
