package gazetteer

import "slices"

// Dua is a supplication with its translations.
type Dua struct {
	ID                 string `json:"id"`
	TitleKurdish       string `json:"title_kurdish"`
	TitleArabic        string `json:"title_arabic"`
	Kurdish            string `json:"kurdish"`
	Arabic             string `json:"arabic"`
	Transliteration    string `json:"transliteration"`
	TranslationKurdish string `json:"translation_kurdish"`
	TranslationEnglish string `json:"translation_english"`
}

// DuaCollection groups duas by time of day.
type DuaCollection struct {
	Morning []Dua `json:"morning_duas"`
	Evening []Dua `json:"evening_duas"`
}

// Verse is a Quran verse with its surah names and translations.
type Verse struct {
	ID               string `json:"id"`
	SurahNumber      int    `json:"surah_number"`
	VerseNumber      int    `json:"verse_number"`
	Arabic           string `json:"arabic"`
	Kurdish          string `json:"kurdish"`
	Transliteration  string `json:"transliteration"`
	English          string `json:"english"`
	SurahNameArabic  string `json:"surah_name_arabic"`
	SurahNameKurdish string `json:"surah_name_kurdish"`
	SurahNameEnglish string `json:"surah_name_english"`
}

var duas = DuaCollection{
	Morning: []Dua{
		{
			ID:                 stableID("dua", "morning/bismillah"),
			TitleKurdish:       "دوعای بەیانی",
			TitleArabic:        "دعاء الصباح",
			Kurdish:            "بیسمیل‌لاهیر ڕەحمانیر ڕەحیم",
			Arabic:             "بِسْمِ اللَّهِ الرَّحْمَـنِ الرَّحِيمِ",
			Transliteration:    "Bismillahir rahmanir raheem",
			TranslationKurdish: "بە ناوی خوای بەخشندە و میهرەبان",
			TranslationEnglish: "In the name of Allah, the Most Gracious, the Most Merciful",
		},
		{
			ID:                 stableID("dua", "morning/hamd"),
			TitleKurdish:       "دوعای حەمد",
			TitleArabic:        "دعاء الحمد",
			Kurdish:            "هەموو ستایش بۆ خوایە",
			Arabic:             "الْحَمْدُ للّهِ رَبِّ الْعَالَمِينَ",
			Transliteration:    "Alhamdulillahi rabbil alameen",
			TranslationKurdish: "هەموو ستایش بۆ خوای گەورەی جیهانیانە",
			TranslationEnglish: "All praise is due to Allah, Lord of all worlds",
		},
	},
	Evening: []Dua{
		{
			ID:                 stableID("dua", "evening/protection"),
			TitleKurdish:       "دوعای ئێوارە",
			TitleArabic:        "دعاء المساء",
			Kurdish:            "خوایا بمانپارێزە لە هەموو خراپە",
			Arabic:             "اللَّهُمَّ أَجِرْنِي مِنَ النَّارِ",
			Transliteration:    "Allahumma ajirni minan naar",
			TranslationKurdish: "خوایا لە ئاگرەکە بمپارێزە",
			TranslationEnglish: "O Allah, save me from the Fire",
		},
	},
}

var verses = []Verse{
	{
		ID:               stableID("verse", "1:1"),
		SurahNumber:      1,
		VerseNumber:      1,
		Arabic:           "بِسْمِ اللَّهِ الرَّحْمَـٰنِ الرَّحِيمِ",
		Kurdish:          "بە ناوی خوای بەخشندە و میهرەبان",
		Transliteration:  "Bismillahir-Rahmanir-Raheem",
		English:          "In the name of Allah, the Most Gracious, the Most Merciful",
		SurahNameArabic:  "الفاتحة",
		SurahNameKurdish: "فاتیحە",
		SurahNameEnglish: "Al-Fatihah",
	},
	{
		ID:               stableID("verse", "1:2"),
		SurahNumber:      1,
		VerseNumber:      2,
		Arabic:           "الْحَمْدُ لِلَّهِ رَبِّ الْعَالَمِينَ",
		Kurdish:          "هەموو ستایش بۆ خوای گەورەی جیهانیانە",
		Transliteration:  "Alhamdulillahi Rabbil-alameen",
		English:          "All praise is due to Allah, Lord of all the worlds",
		SurahNameArabic:  "الفاتحة",
		SurahNameKurdish: "فاتیحە",
		SurahNameEnglish: "Al-Fatihah",
	},
}

// Duas returns a copy of the dua collection.
func Duas() DuaCollection {
	return DuaCollection{
		Morning: slices.Clone(duas.Morning),
		Evening: slices.Clone(duas.Evening),
	}
}

// Verses returns a copy of the verse table.
func Verses() []Verse {
	return slices.Clone(verses)
}
