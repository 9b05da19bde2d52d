// Package language resolves the languages the reader picks to supported BCP 47 codes.
package language

import (
	"context"
	"strings"

	"github.com/Muhammadzainattiq/DuoRead-FE-BE/internal/domain"
	"github.com/cleitonmarx/symbiont/depend"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// languageNames lists the languages offered in the reading UI by their display name.
var languageNames = []struct{ name, code string }{
	{"English", "en"},
	{"Spanish", "es"},
	{"French", "fr"},
	{"German", "de"},
	{"Italian", "it"},
	{"Portuguese", "pt"},
	{"Russian", "ru"},
	{"Chinese (Mandarin)", "zh"},
	{"Chinese (Cantonese)", "zh-Hant"},
	{"Japanese", "ja"},
	{"Korean", "ko"},
	{"Arabic", "ar"},
	{"Hindi", "hi"},
	{"Bengali", "bn"},
	{"Urdu", "ur"},
	{"Punjabi", "pa"},
	{"Turkish", "tr"},
	{"Persian (Farsi)", "fa"},
	{"Dutch", "nl"},
	{"Swedish", "sv"},
	{"Norwegian", "no"},
	{"Danish", "da"},
	{"Finnish", "fi"},
	{"Polish", "pl"},
	{"Czech", "cs"},
	{"Hungarian", "hu"},
	{"Romanian", "ro"},
	{"Bulgarian", "bg"},
	{"Croatian", "hr"},
	{"Serbian", "sr"},
	{"Greek", "el"},
	{"Hebrew", "he"},
	{"Thai", "th"},
	{"Vietnamese", "vi"},
	{"Indonesian", "id"},
	{"Malay", "ms"},
	{"Tagalog (Filipino)", "tl"},
	{"Tamil", "ta"},
	{"Telugu", "te"},
	{"Marathi", "mr"},
	{"Gujarati", "gu"},
	{"Kannada", "kn"},
	{"Malayalam", "ml"},
	{"Odia", "or"},
	{"Assamese", "as"},
	{"Punjabi (Gurmukhi)", "pa-Guru"},
	{"Kashmiri", "ks"},
	{"Sindhi", "sd"},
	{"Konkani", "kok"},
	{"Manipuri", "mni"},
	{"Bodo", "brx"},
	{"Sanskrit", "sa"},
	{"Nepali", "ne"},
	{"Sinhala", "si"},
	{"Tibetan", "bo"},
	{"Burmese", "my"},
	{"Khmer", "km"},
	{"Lao", "lo"},
	{"Mongolian", "mn"},
	{"Georgian", "ka"},
	{"Armenian", "hy"},
	{"Azerbaijani", "az"},
	{"Kazakh", "kk"},
	{"Kyrgyz", "ky"},
	{"Tajik", "tg"},
	{"Turkmen", "tk"},
	{"Uzbek", "uz"},
	{"Uighur", "ug"},
	{"Tatar", "tt"},
	{"Bashkir", "ba"},
	{"Chuvash", "cv"},
	{"Chechen", "ce"},
	{"Ingush", "inh"},
	{"Kabardian", "kbd"},
	{"Adyghe", "ady"},
	{"Abkhaz", "ab"},
	{"Ossetian", "os"},
	{"Avar", "av"},
	{"Lak", "lbe"},
	{"Dargwa", "dar"},
	{"Lezgin", "lez"},
	{"Tabasaran", "tab"},
	{"Rutul", "rut"},
	{"Tsakhur", "tkr"},
	{"Aghul", "agx"},
	{"Udi", "udi"},
	{"Khinalug", "kjj"},
	{"Budukh", "bdk"},
	{"Kryts", "kry"},
	{"Judeo-Tat", "jdt"},
	{"Tindi", "tin"},
	{"Botlikh", "bph"},
	{"Chamalal", "cji"},
	{"Bagvalal", "kva"},
	{"Andi", "ani"},
	{"Tsez", "ddo"},
	{"Hinukh", "gin"},
	{"Khwarshi", "khv"},
	{"Bezhta", "kap"},
	{"Hunzib", "huz"},
	{"Godoberi", "gdo"},
	{"Karata", "kpt"},
	{"Akhvakh", "akv"},
	{"Afrikaans", "af"},
	{"Swahili", "sw"},
	{"Yoruba", "yo"},
	{"Igbo", "ig"},
	{"Hausa", "ha"},
	{"Amharic", "am"},
	{"Somali", "so"},
	{"Oromo", "om"},
	{"Tigrinya", "ti"},
	{"Wolof", "wo"},
	{"Fulani", "ff"},
	{"Mandinka", "mnk"},
	{"Bambara", "bm"},
	{"Ewe", "ee"},
	{"Twi", "tw"},
	{"Ga", "gaa"},
	{"Zulu", "zu"},
	{"Xhosa", "xh"},
	{"Setswana", "tn"},
	{"Sesotho", "st"},
	{"Northern Sotho", "nso"},
	{"Tswana", "tn"},
	{"Venda", "ve"},
	{"Tsonga", "ts"},
	{"Swati", "ss"},
	{"Ndebele", "nd"},
	{"Kinyarwanda", "rw"},
	{"Kirundi", "rn"},
	{"Luganda", "lg"},
	{"Luo", "luo"},
	{"Kikuyu", "ki"},
	{"Luhya", "luy"},
	{"Kamba", "kam"},
	{"Meru", "mer"},
	{"Embu", "ebu"},
	{"Tharaka", "thk"},
	{"Mbeere", "mbr"},
	{"Gikuyu", "ki"},
	{"Catalan", "ca"},
	{"Basque", "eu"},
	{"Galician", "gl"},
	{"Welsh", "cy"},
	{"Irish", "ga"},
	{"Scottish Gaelic", "gd"},
	{"Breton", "br"},
	{"Cornish", "kw"},
	{"Manx", "gv"},
	{"Faroese", "fo"},
	{"Icelandic", "is"},
	{"Luxembourgish", "lb"},
	{"Albanian", "sq"},
	{"Macedonian", "mk"},
	{"Bosnian", "bs"},
	{"Montenegrin", "cnr"},
	{"Slovenian", "sl"},
	{"Slovak", "sk"},
	{"Latvian", "lv"},
	{"Lithuanian", "lt"},
	{"Estonian", "et"},
	{"Maltese", "mt"},
	{"Cypriot Greek", "el-CY"},
	{"Esperanto", "eo"},
	{"Interlingua", "ia"},
	{"Ido", "io"},
	{"Volapük", "vo"},
	{"Novial", "nov"},
	{"Lojban", "jbo"},
	{"Klingon", "tlh"},
	{"Quenya", "qya"},
	{"Sindarin", "sjn"},
}

// Resolver implements domain.LanguageResolver.
// It accepts a supported code in any casing, a tag whose base language is supported,
// a name from the UI list or the English display name of a supported language.
type Resolver struct {
	byName map[string]string
	byTag  map[string]string
}

// NewResolver creates a Resolver over the UI language list.
func NewResolver() Resolver {
	r := Resolver{
		byName: map[string]string{},
		byTag:  map[string]string{},
	}
	for _, l := range languageNames {
		if _, ok := r.byName[strings.ToLower(l.name)]; !ok {
			r.byName[strings.ToLower(l.name)] = l.code
		}
	}

	namer := display.English.Languages()
	for _, l := range languageNames {
		tag, err := language.Parse(l.code)
		if err != nil {
			continue
		}
		if _, ok := r.byTag[tag.String()]; !ok {
			r.byTag[tag.String()] = l.code
		}
		name := strings.ToLower(namer.Name(tag))
		if _, ok := r.byName[name]; name != "" && !ok {
			r.byName[name] = l.code
		}
	}
	return r
}

// Resolve implements domain.LanguageResolver.
func (r Resolver) Resolve(lang string) (string, bool) {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return "", false
	}
	if code, ok := r.byName[strings.ToLower(lang)]; ok {
		return code, true
	}

	tag, err := language.Parse(lang)
	if err != nil {
		return "", false
	}
	if code, ok := r.byTag[tag.String()]; ok {
		return code, true
	}
	if base, confidence := tag.Base(); confidence != language.No {
		if code, ok := r.byTag[base.String()]; ok {
			return code, true
		}
	}
	return "", false
}

// InitLanguageResolver registers the language resolver.
type InitLanguageResolver struct{}

// Initialize registers domain.LanguageResolver in the dependency container.
func (i InitLanguageResolver) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.LanguageResolver](NewResolver())
	return ctx, nil
}
