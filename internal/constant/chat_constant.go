package constant

// Fallback reasons recorded on interactions that never reached generation.
const (
	FallbackReasonNoSources = "no_sources"
	FallbackReasonLowScore  = "low_score"
	FallbackReasonNoProduct = "no_product"
	FallbackReasonOther     = "other"
)

// Canned assistant replies, served without an LLM call.
const (
	FaqFallbackMessage = "Je suis désolé, je n'ai pas trouvé d'information précise à ce sujet dans ma base de connaissances. Pouvez-vous reformuler ou contacter le support ?"

	ProductFallbackMessage = "Je n'ai pas trouvé de produit correspondant à votre recherche. Essayez avec d'autres mots-clés ou parcourez notre catalogue."

	OutOfScopeMessage = "Je suis l’assistant virtuel de ShopyVerse. " +
		"Je peux vous aider concernant la livraison, les retours, les commandes et la recherche de produits. " +
		"Cette question sort de mon domaine d’expertise. " +
		"Pouvez-vous reformuler votre demande en lien avec votre expérience sur ShopyVerse ?"
)
