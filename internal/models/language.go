package models

// Language is a supported content language code.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageKannada Language = "kn"
	LanguageHindi   Language = "hi"
	LanguageTamil   Language = "ta"
	LanguageTelugu  Language = "te"
)

// LanguageOption pairs a language code with its display names.
type LanguageOption struct {
	Code       Language `json:"code"`
	Name       string   `json:"name"`
	NativeName string   `json:"nativeName"`
}

// Languages lists every supported language in display order.
var Languages = []LanguageOption{
	{Code: LanguageEnglish, Name: "English", NativeName: "English"},
	{Code: LanguageKannada, Name: "Kannada", NativeName: "ಕನ್ನಡ"},
	{Code: LanguageHindi, Name: "Hindi", NativeName: "हिन्दी"},
	{Code: LanguageTamil, Name: "Tamil", NativeName: "தமிழ்"},
	{Code: LanguageTelugu, Name: "Telugu", NativeName: "తెలుగు"},
}

// Valid reports whether l is one of the supported language codes.
func (l Language) Valid() bool {
	for _, opt := range Languages {
		if opt.Code == l {
			return true
		}
	}
	return false
}

// ContentType is a kind of marketing copy the generator can produce.
type ContentType string

const (
	ContentTypeCaption     ContentType = "caption"
	ContentTypeDescription ContentType = "description"
	ContentTypeHashtags    ContentType = "hashtags"
	ContentTypePoster      ContentType = "poster"
	ContentTypeEngagement  ContentType = "engagement"
)

// ContentTypes lists every valid content type.
var ContentTypes = []ContentType{
	ContentTypeCaption,
	ContentTypeDescription,
	ContentTypeHashtags,
	ContentTypePoster,
	ContentTypeEngagement,
}

// Valid reports whether c is one of the known content types.
func (c ContentType) Valid() bool {
	for _, t := range ContentTypes {
		if t == c {
			return true
		}
	}
	return false
}

// IndustryOption pairs an industry value with its display label.
type IndustryOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Industries lists the industry choices offered during business setup.
var Industries = []IndustryOption{
	{Value: "retail", Label: "Retail & Shopping"},
	{Value: "food_beverage", Label: "Food & Beverage"},
	{Value: "fashion", Label: "Fashion & Apparel"},
	{Value: "beauty", Label: "Beauty & Wellness"},
	{Value: "healthcare", Label: "Healthcare"},
	{Value: "education", Label: "Education & Training"},
	{Value: "technology", Label: "Technology"},
	{Value: "home_services", Label: "Home Services"},
	{Value: "automotive", Label: "Automotive"},
	{Value: "real_estate", Label: "Real Estate"},
	{Value: "fitness", Label: "Fitness & Sports"},
	{Value: "photography", Label: "Photography & Media"},
	{Value: "crafts", Label: "Arts & Crafts"},
	{Value: "other", Label: "Other"},
}
