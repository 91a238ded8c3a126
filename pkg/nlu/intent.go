package nlu

import "strings"

// Intent classifies a customer message. The three values are also the only
// strings accepted by the chat_interactions intent column, so adding one
// requires a coordinated schema change.
type Intent string

const (
	IntentFAQ           Intent = "FAQ"
	IntentProductSearch Intent = "PRODUCT_SEARCH"
	IntentOther         Intent = "OTHER"
)

// Keywords FAQ (logistique, retours, livraison, commandes...)
var faqKeywords = []string{
	"livraison",
	"délais",
	"délai",
	"retour",
	"retours",
	"remboursement",
	"remboursé",
	"commande",
	"colis",
	"expédition",
	"expédier",
	"suivi",
	"track",
	"tracking",
	"annuler ma commande",
	"annulation",
}

// Keywords recherche produit
var productKeywords = []string{
	"je cherche",
	"je recherche",
	"je voudrais",
	"je veux",
	"trouver",
	"recherche",
	"produit",
	"article",
	"t-shirt",
	"chaussure",
	"chaussures",
	"pantalon",
	"montre",
	"sac",
	"casquette",
}

// Classifier maps raw text to an Intent with ordered keyword lists.
// FAQ keywords win over product keywords. Default decides the no-match
// policy: IntentOther (strict) or IntentFAQ (every unmatched query still
// attempts semantic retrieval).
type Classifier struct {
	Default Intent
}

func NewClassifier(defaultIntent Intent) *Classifier {
	if defaultIntent == "" {
		defaultIntent = IntentOther
	}
	return &Classifier{Default: defaultIntent}
}

// Detect is deterministic and pure: case-insensitive substring matching,
// FAQ list first.
func (c *Classifier) Detect(message string) Intent {
	text := strings.ToLower(message)

	if containsAny(text, faqKeywords) {
		return IntentFAQ
	}

	if containsAny(text, productKeywords) {
		return IntentProductSearch
	}

	return c.Default
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
