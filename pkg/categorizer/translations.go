package categorizer

import (
	"strings"
	"unicode/utf8"
)

// providerCategoryNames maps the aggregator's category identifiers to
// the pt-BR display names the product shows. Unmapped values fall back
// to a title-cased version of the raw string.
var providerCategoryNames = map[string]string{
	"GROCERIES":                "Mercado",
	"RESTAURANTS":              "Restaurantes",
	"FOOD_AND_DRINKS":          "Alimentação",
	"TRANSPORT":                "Transporte",
	"TAXI_AND_RIDE_HAILING":    "Transporte por aplicativo",
	"GASOLINE":                 "Combustível",
	"TRAVEL":                   "Viagens",
	"ENTERTAINMENT":            "Lazer",
	"SHOPPING":                 "Compras",
	"ONLINE_SHOPPING":          "Compras online",
	"HEALTH":                   "Saúde",
	"PHARMACY":                 "Farmácia",
	"EDUCATION":                "Educação",
	"UTILITIES":                "Contas de consumo",
	"TELECOMMUNICATIONS":       "Telefonia e internet",
	"RENT":                     "Aluguel",
	"SALARY":                   "Salário",
	"INCOME":                   "Receitas",
	"INVESTMENTS":              "Investimentos",
	"INTEREST_AND_DIVIDENDS":   "Juros e dividendos",
	"TRANSFERS":                "Transferências",
	"PIX":                      "Pix",
	"LOANS":                    "Empréstimos",
	"CREDIT_CARD_PAYMENT":      "Pagamento de fatura",
	"BANK_FEES":                "Tarifas bancárias",
	"TAXES":                    "Impostos",
	"INSURANCE":                "Seguros",
	"SERVICES":                 "Serviços",
	"GYMS_AND_FITNESS_CENTERS": "Academia",
}

func translateProviderCategory(raw string) string {
	key := strings.ToUpper(strings.TrimSpace(raw))
	key = strings.ReplaceAll(key, " ", "_")

	if name, ok := providerCategoryNames[key]; ok {
		return name
	}

	return titleCase(raw)
}

func titleCase(raw string) string {
	words := strings.Fields(strings.ToLower(strings.ReplaceAll(raw, "_", " ")))

	for i, word := range words {
		// Decode the leading rune; slicing a byte would corrupt accented
		// words like "água".
		first, size := utf8.DecodeRuneInString(word)
		if first == utf8.RuneError {
			continue
		}

		words[i] = strings.ToUpper(string(first)) + word[size:]
	}

	return strings.Join(words, " ")
}
