package models

import "math/rand"

// Quote is a motivational verse or hadith shown on the landing screens.
type Quote struct {
	Arabic      string `json:"arabic"`
	Translation string `json:"translation"`
	Source      string `json:"source"`
}

var quotes = []Quote{
	{
		Arabic:      "اقْرَأْ وَرَبُّكَ الْأَكْرَمُ",
		Translation: "Bacalah, dan Tuhanmulah Yang Maha Mulia",
		Source:      "QS. Al-'Alaq: 3",
	},
	{
		Arabic:      "خَيْرُكُمْ مَنْ تَعَلَّمَ الْقُرْآنَ وَعَلَّمَهُ",
		Translation: "Sebaik-baik kalian adalah yang mempelajari Al-Qur'an dan mengajarkannya",
		Source:      "HR. Bukhari",
	},
	{
		Arabic:      "إِنَّ هَٰذَا الْقُرْآنَ يَهْدِي لِلَّتِي هِيَ أَقْوَمُ",
		Translation: "Sesungguhnya Al-Qur'an ini memberikan petunjuk kepada jalan yang lebih lurus",
		Source:      "QS. Al-Isra: 9",
	},
	{
		Arabic:      "وَلَقَدْ يَسَّرْنَا الْقُرْآنَ لِلذِّكْرِ",
		Translation: "Dan sungguh, telah Kami mudahkan Al-Qur'an untuk peringatan",
		Source:      "QS. Al-Qamar: 17",
	},
	{
		Arabic:      "اَلْقُرْآنُ شَافِعٌ مُشَفَّعٌ",
		Translation: "Al-Qur'an adalah pemberi syafaat yang syafaatnya diterima",
		Source:      "HR. Ibnu Hibban",
	},
}

// Quotes returns every quote.
func Quotes() []Quote {
	return append([]Quote(nil), quotes...)
}

// RandomQuote picks one quote using r, or the global source when r is nil.
func RandomQuote(r *rand.Rand) Quote {
	if r == nil {
		return quotes[rand.Intn(len(quotes))]
	}
	return quotes[r.Intn(len(quotes))]
}
