// Package locale serves the translated strings for every supported language.
package locale

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"obsydia_retail/internal/domain/entities"
)

//go:embed catalogs/*.yaml
var catalogFS embed.FS

type Catalog struct {
	Language struct {
		Names map[string]string `yaml:"names" json:"names"`
	} `yaml:"language" json:"language"`
	Services     map[string]string `yaml:"services" json:"services"`
	Errors       map[string]string `yaml:"errors" json:"errors"`
	Confirmation struct {
		Message        string `yaml:"message" json:"message"`
		PaymentMessage string `yaml:"payment_message" json:"paymentMessage"`
	} `yaml:"confirmation" json:"confirmation"`
	Email EmailCatalog `yaml:"email" json:"email"`
}

type EmailCatalog struct {
	CustomerSubject     string      `yaml:"customer_subject" json:"customerSubject"`
	AdminSubject        string      `yaml:"admin_subject" json:"adminSubject"`
	QuoteSubject        string      `yaml:"quote_subject" json:"quoteSubject"`
	Intro               string      `yaml:"intro" json:"intro"`
	AdminIntro          string      `yaml:"admin_intro" json:"adminIntro"`
	QuoteIntro          string      `yaml:"quote_intro" json:"quoteIntro"`
	SummaryTitle        string      `yaml:"summary_title" json:"summaryTitle"`
	ServicesTitle       string      `yaml:"services_title" json:"servicesTitle"`
	QuoteItemsTitle     string      `yaml:"quote_items_title" json:"quoteItemsTitle"`
	QuoteTotal          string      `yaml:"quote_total" json:"quoteTotal"`
	QuoteNotes          string      `yaml:"quote_notes" json:"quoteNotes"`
	PaymentTitle        string      `yaml:"payment_title" json:"paymentTitle"`
	PaymentInstructions string      `yaml:"payment_instructions" json:"paymentInstructions"`
	NextSteps           string      `yaml:"next_steps" json:"nextSteps"`
	NoNotes             string      `yaml:"no_notes" json:"noNotes"`
	NoServices          string      `yaml:"no_services" json:"noServices"`
	NotProvided         string      `yaml:"not_provided" json:"notProvided"`
	Labels              EmailLabels `yaml:"labels" json:"labels"`
}

type EmailLabels struct {
	Name      string `yaml:"name" json:"name"`
	Email     string `yaml:"email" json:"email"`
	Phone     string `yaml:"phone" json:"phone"`
	Address   string `yaml:"address" json:"address"`
	Location  string `yaml:"location" json:"location"`
	Language  string `yaml:"language" json:"language"`
	Notes     string `yaml:"notes" json:"notes"`
	OrderID   string `yaml:"order_id" json:"orderId"`
	Timestamp string `yaml:"timestamp" json:"timestamp"`
}

var catalogs = mustLoad()

func mustLoad() map[string]*Catalog {
	out := make(map[string]*Catalog, len(entities.SupportedLanguages))
	for _, lang := range entities.SupportedLanguages {
		raw, err := catalogFS.ReadFile("catalogs/" + lang + ".yaml")
		if err != nil {
			panic(fmt.Sprintf("locale: missing catalog %s: %v", lang, err))
		}
		var c Catalog
		if err := yaml.Unmarshal(raw, &c); err != nil {
			panic(fmt.Sprintf("locale: invalid catalog %s: %v", lang, err))
		}
		out[lang] = &c
	}
	return out
}

// Get returns the catalog for lang, falling back to the default language.
func Get(lang string) *Catalog {
	return catalogs[entities.NormalizeLanguage(lang)]
}

// ErrorMessage returns the message for an order error code. Unknown codes
// use the "required" message.
func (c *Catalog) ErrorMessage(code string) string {
	if msg, ok := c.Errors[code]; ok && msg != "" {
		return msg
	}
	return c.Errors["required"]
}

// ServiceName returns the display name for a service or quote item key.
func (c *Catalog) ServiceName(key string) string {
	if name, ok := c.Services[key]; ok && name != "" {
		return name
	}
	return key
}

// LanguageName returns the display name of lang in this catalog.
func (c *Catalog) LanguageName(lang string) string {
	if name, ok := c.Language.Names[lang]; ok && name != "" {
		return name
	}
	return lang
}
