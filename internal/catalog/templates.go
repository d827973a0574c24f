package catalog

import (
	"fmt"
	"strings"

	"github.com/bizlingo/bizlingo-be/internal/models"
)

// templates is the full catalog. Caption, description, hashtags and poster
// are populated for all five languages; engagement has no templates in any
// language, so requests for it render to the empty string.
var templates = map[models.ContentType]map[models.Language]TemplateFn{
	models.ContentTypeCaption: {
		models.LanguageEnglish: func(req Request) string {
			priceText := ""
			if hasPrice(req) {
				priceText = fmt.Sprintf(" at just ₹%s", rupees(req.Price))
			}
			return fmt.Sprintf("✨ Introducing %s%s!\n\n%s\n\n🛍️ Perfect for those who appreciate quality and style. Don't miss out on this amazing offer!\n\n#SmallBusiness #ShopLocal #%s",
				req.ProductName, priceText, req.BusinessDescription, hashtagify(req.ProductName))
		},
		models.LanguageKannada: func(req Request) string {
			priceText := ""
			if hasPrice(req) {
				priceText = fmt.Sprintf(" ಕೇವಲ ₹%sಕ್ಕೆ", rupees(req.Price))
			}
			return fmt.Sprintf("✨ %s ಪರಿಚಯಿಸುತ್ತಿದ್ದೇವೆ%s!\n\n%s\n\n🛍️ ಗುಣಮಟ್ಟ ಮತ್ತು ಶೈಲಿಯನ್ನು ಮೆಚ್ಚುವವರಿಗೆ ಪರಿಪೂರ್ಣ. ಈ ಅದ್ಭುತ ಆಫರ್ ತಪ್ಪಿಸಿಕೊಳ್ಳಬೇಡಿ!",
				req.ProductName, priceText, req.BusinessDescription)
		},
		models.LanguageHindi: func(req Request) string {
			priceText := ""
			if hasPrice(req) {
				priceText = fmt.Sprintf(" सिर्फ ₹%s में", rupees(req.Price))
			}
			return fmt.Sprintf("✨ पेश है %s%s!\n\n%s\n\n🛍️ उन लोगों के लिए जो गुणवत्ता और स्टाइल की कद्र करते हैं। यह अद्भुत ऑफर न चूकें!",
				req.ProductName, priceText, req.BusinessDescription)
		},
		models.LanguageTamil: func(req Request) string {
			priceText := ""
			if hasPrice(req) {
				priceText = fmt.Sprintf(" வெறும் ₹%sக்கு", rupees(req.Price))
			}
			return fmt.Sprintf("✨ %s அறிமுகம்%s!\n\n%s\n\n🛍️ தரம் மற்றும் பாணியை பாராட்டுபவர்களுக்கு சரியானது. இந்த அற்புதமான சலுகையை தவறவிடாதீர்கள்!",
				req.ProductName, priceText, req.BusinessDescription)
		},
		models.LanguageTelugu: func(req Request) string {
			priceText := ""
			if hasPrice(req) {
				priceText = fmt.Sprintf(" కేవలం ₹%sకి", rupees(req.Price))
			}
			return fmt.Sprintf("✨ %s పరిచయం%s!\n\n%s\n\n🛍️ నాణ్యత మరియు శైలిని అభినందించే వారికి పర్ఫెక్ట్. ఈ అద్భుతమైన ఆఫర్ మిస్ అవ్వకండి!",
				req.ProductName, priceText, req.BusinessDescription)
		},
	},

	models.ContentTypeDescription: {
		models.LanguageEnglish: func(req Request) string {
			priceText := ""
			if hasPrice(req) {
				priceText = fmt.Sprintf(" at just ₹%s", rupees(req.Price))
			}
			return fmt.Sprintf("Discover %s - where quality meets excellence%s.\n\n%s\n\nKey Features:\n• Premium quality materials\n• Crafted with attention to detail\n• Perfect for everyday use\n• Exceptional value for money\n\nOrder now and experience the difference!",
				req.ProductName, priceText, req.BusinessDescription)
		},
		models.LanguageKannada: func(req Request) string {
			priceText := ""
			if hasPrice(req) {
				priceText = fmt.Sprintf(" ಕೇವಲ ₹%s", rupees(req.Price))
			}
			return fmt.Sprintf("%s ಅನ್ನು ಅನ್ವೇಷಿಸಿ - ಅಲ್ಲಿ ಗುಣಮಟ್ಟವು ಶ್ರೇಷ್ಠತೆಯನ್ನು ಭೇಟಿಯಾಗುತ್ತದೆ%s.\n\n%s\n\nಪ್ರಮುಖ ವೈಶಿಷ್ಟ್ಯಗಳು:\n• ಪ್ರೀಮಿಯಂ ಗುಣಮಟ್ಟದ ಸಾಮಗ್ರಿಗಳು\n• ವಿವರಗಳಿಗೆ ಗಮನ ಕೊಟ್ಟು ರಚಿಸಲಾಗಿದೆ",
				req.ProductName, priceText, req.BusinessDescription)
		},
		models.LanguageHindi: func(req Request) string {
			priceText := ""
			if hasPrice(req) {
				priceText = fmt.Sprintf(" सिर्फ ₹%s में", rupees(req.Price))
			}
			return fmt.Sprintf("%s की खोज करें - जहाँ गुणवत्ता उत्कृष्टता से मिलती है%s.\n\n%s\n\nमुख्य विशेषताएं:\n• प्रीमियम गुणवत्ता वाली सामग्री\n• विस्तार पर ध्यान देकर बनाया गया",
				req.ProductName, priceText, req.BusinessDescription)
		},
		models.LanguageTamil: func(req Request) string {
			priceText := ""
			if hasPrice(req) {
				priceText = fmt.Sprintf(" வெறும் ₹%sக்கு", rupees(req.Price))
			}
			return fmt.Sprintf("%s கண்டறியுங்கள் - தரம் சிறப்பை சந்திக்கும் இடம்%s.\n\n%s\n\nமுக்கிய அம்சங்கள்:\n• பிரீமியம் தர பொருட்கள்\n• விவரங்களுக்கு கவனம் செலுத்தி வடிவமைக்கப்பட்டது",
				req.ProductName, priceText, req.BusinessDescription)
		},
		models.LanguageTelugu: func(req Request) string {
			priceText := ""
			if hasPrice(req) {
				priceText = fmt.Sprintf(" కేవలం ₹%sకి", rupees(req.Price))
			}
			return fmt.Sprintf("%s కనుగొనండి - నాణ్యత శ్రేష్ఠతను కలుసుకునే చోటు%s.\n\n%s\n\nప్రధాన లక్షణాలు:\n• ప్రీమియం నాణ్యత పదార్థాలు\n• వివరాలకు శ్రద్ధతో రూపొందించబడింది",
				req.ProductName, priceText, req.BusinessDescription)
		},
	},

	models.ContentTypeHashtags: {
		models.LanguageEnglish: func(req Request) string {
			return fmt.Sprintf("#%s #SmallBusiness #ShopLocal #SupportSmall #QualityProducts #HandmadeWithLove #ShopSmall #LocalBusiness #Entrepreneur #BusinessOwner #IndianBusiness #MadeInIndia #ShopIndian",
				hashtagify(req.ProductName))
		},
		models.LanguageKannada: func(req Request) string {
			return fmt.Sprintf("#%s #ಸಣ್ಣವ್ಯಾಪಾರ #ಸ್ಥಳೀಯಖರೀದಿ #ಭಾರತೀಯ #ಗುಣಮಟ್ಟ #ಕನ್ನಡ", hashtagify(req.ProductName))
		},
		models.LanguageHindi: func(req Request) string {
			return fmt.Sprintf("#%s #छोटाव्यवसाय #स्थानीयखरीदें #भारतीय #गुणवत्ता #हिंदी #भारतमेंनिर्मित", hashtagify(req.ProductName))
		},
		models.LanguageTamil: func(req Request) string {
			return fmt.Sprintf("#%s #சிறுவணிகம் #உள்ளூர்கடை #இந்தியன் #தரமான #தமிழ்", hashtagify(req.ProductName))
		},
		models.LanguageTelugu: func(req Request) string {
			return fmt.Sprintf("#%s #చిన్నవ్యాపారం #స్థానికఖరీదు #భారతీయ #నాణ్యత #తెలుగు", hashtagify(req.ProductName))
		},
	},

	models.ContentTypePoster: {
		models.LanguageEnglish: func(req Request) string {
			headline := "BEST QUALITY"
			if hasPrice(req) {
				headline = fmt.Sprintf("SPECIAL PRICE: ₹%s", rupees(req.Price))
			}
			return fmt.Sprintf("🌟 %s 🌟\n\n%s\n\n✓ Premium Quality\n✓ Fast Delivery\n✓ Customer Satisfaction\n\n📞 Contact us today!\n\n%s",
				strings.ToUpper(req.ProductName), headline, req.BusinessDescription)
		},
		models.LanguageKannada: func(req Request) string {
			headline := "ಅತ್ಯುತ್ತಮ ಗುಣಮಟ್ಟ"
			if hasPrice(req) {
				headline = fmt.Sprintf("ವಿಶೇಷ ಬೆಲೆ: ₹%s", rupees(req.Price))
			}
			return fmt.Sprintf("🌟 %s 🌟\n\n%s\n\n✓ ಪ್ರೀಮಿಯಂ ಗುಣಮಟ್ಟ\n✓ ವೇಗದ ವಿತರಣೆ\n\n📞 ಇಂದೇ ಸಂಪರ್ಕಿಸಿ!",
				strings.ToUpper(req.ProductName), headline)
		},
		models.LanguageHindi: func(req Request) string {
			headline := "सर्वोत्तम गुणवत्ता"
			if hasPrice(req) {
				headline = fmt.Sprintf("विशेष मूल्य: ₹%s", rupees(req.Price))
			}
			return fmt.Sprintf("🌟 %s 🌟\n\n%s\n\n✓ प्रीमियम गुणवत्ता\n✓ तेज़ डिलीवरी\n\n📞 आज ही संपर्क करें!",
				strings.ToUpper(req.ProductName), headline)
		},
		models.LanguageTamil: func(req Request) string {
			headline := "சிறந்த தரம்"
			if hasPrice(req) {
				headline = fmt.Sprintf("சிறப்பு விலை: ₹%s", rupees(req.Price))
			}
			return fmt.Sprintf("🌟 %s 🌟\n\n%s\n\n✓ பிரீமியம் தரம்\n✓ விரைவான டெலிவரி\n\n📞 இன்றே தொடர்பு கொள்ளுங்கள்!",
				strings.ToUpper(req.ProductName), headline)
		},
		models.LanguageTelugu: func(req Request) string {
			headline := "అత్యుత్తమ నాణ్యత"
			if hasPrice(req) {
				headline = fmt.Sprintf("ప్రత్యేక ధర: ₹%s", rupees(req.Price))
			}
			return fmt.Sprintf("🌟 %s 🌟\n\n%s\n\n✓ ప్రీమియం నాణ్యత\n✓ వేగవంతమైన డెలివరీ\n\n📞 ఈరోజే సంప్రదించండి!",
				strings.ToUpper(req.ProductName), headline)
		},
	},
}
